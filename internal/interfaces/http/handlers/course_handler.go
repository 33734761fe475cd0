package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"swea-cms.backend/internal/interfaces/http/response"
	"swea-cms.backend/internal/usecases"
)

type CourseHandler struct {
	service *usecases.CourseService
}

func NewCourseHandler(service *usecases.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GET /api/v1/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, course)
}

// POST /api/v1/admin/courses
func (h *CourseHandler) Create(c *gin.Context) {
	input, image, err := h.bindInput(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.service.Create(c.Request.Context(), input, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, course)
}

// PUT /api/v1/admin/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, image, err := h.bindInput(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.service.Update(c.Request.Context(), id, input, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, course)
}

// DELETE /api/v1/admin/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, permanentFlag(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Course deleted"})
}

// POST /api/v1/admin/courses/:id/restore
func (h *CourseHandler) Restore(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, course)
}

func (h *CourseHandler) bindInput(c *gin.Context) (usecases.CourseInput, *multipart.FileHeader, error) {
	date, err := formDate(c, "date")
	if err != nil {
		return usecases.CourseInput{}, nil, err
	}
	memberIDs, err := formUUIDs(c, "member_ids")
	if err != nil {
		return usecases.CourseInput{}, nil, err
	}
	image, err := formFile(c, "image")
	if err != nil {
		return usecases.CourseInput{}, nil, err
	}

	return usecases.CourseInput{
		Title:       formText(c, "title"),
		CourseName:  formText(c, "course_name"),
		Description: formText(c, "description"),
		Date:        date,
		URL:         formNullString(c, "url"),
		Tags:        formTags(c, "tags"),
		MemberIDs:   memberIDs,
	}, image, nil
}
