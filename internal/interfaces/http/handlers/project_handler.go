package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"swea-cms.backend/internal/interfaces/http/response"
	"swea-cms.backend/internal/usecases"
)

type ProjectHandler struct {
	service *usecases.ProjectService
}

func NewProjectHandler(service *usecases.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// GET /api/v1/projects
func (h *ProjectHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GET /api/v1/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	project, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, project)
}

// POST /api/v1/admin/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	input, image, err := h.bindInput(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	project, err := h.service.Create(c.Request.Context(), input, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, project)
}

// PUT /api/v1/admin/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
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
	project, err := h.service.Update(c.Request.Context(), id, input, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, project)
}

// DELETE /api/v1/admin/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, permanentFlag(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Project deleted"})
}

// POST /api/v1/admin/projects/:id/restore
func (h *ProjectHandler) Restore(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	project, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, project)
}

func (h *ProjectHandler) bindInput(c *gin.Context) (usecases.ProjectInput, *multipart.FileHeader, error) {
	date, err := formDate(c, "date_of_completion")
	if err != nil {
		return usecases.ProjectInput{}, nil, err
	}
	content, err := formJSON(c, "content")
	if err != nil {
		return usecases.ProjectInput{}, nil, err
	}
	images, err := formJSON(c, "images")
	if err != nil {
		return usecases.ProjectInput{}, nil, err
	}
	testimonials, err := formJSON(c, "testimonials")
	if err != nil {
		return usecases.ProjectInput{}, nil, err
	}
	heroImage, err := formFile(c, "hero_image")
	if err != nil {
		return usecases.ProjectInput{}, nil, err
	}

	return usecases.ProjectInput{
		Title:            formText(c, "title"),
		Author:           formText(c, "author"),
		DateOfCompletion: date,
		Status:           c.PostForm("status"),
		Content:          content,
		Tags:             formTags(c, "tags"),
		Images:           images,
		Testimonials:     testimonials,
	}, heroImage, nil
}
