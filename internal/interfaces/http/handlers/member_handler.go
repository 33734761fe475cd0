package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"swea-cms.backend/internal/interfaces/http/response"
	"swea-cms.backend/internal/usecases"
)

type MemberHandler struct {
	service *usecases.MemberService
}

func NewMemberHandler(service *usecases.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

// GET /api/v1/members
func (h *MemberHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GET /api/v1/members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	member, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, member)
}

// POST /api/v1/admin/members
func (h *MemberHandler) Create(c *gin.Context) {
	input, image, err := h.bindInput(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	member, err := h.service.Create(c.Request.Context(), input, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, member)
}

// PUT /api/v1/admin/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
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
	member, err := h.service.Update(c.Request.Context(), id, input, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, member)
}

// DELETE /api/v1/admin/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, permanentFlag(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Member deleted"})
}

// POST /api/v1/admin/members/:id/restore
func (h *MemberHandler) Restore(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	member, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, member)
}

func (h *MemberHandler) bindInput(c *gin.Context) (usecases.MemberInput, *multipart.FileHeader, error) {
	image, err := formFile(c, "image")
	if err != nil {
		return usecases.MemberInput{}, nil, err
	}

	return usecases.MemberInput{
		Name:                 formText(c, "name"),
		Email:                c.PostForm("email"),
		UniversityDepartment: formText(c, "university_department"),
	}, image, nil
}
