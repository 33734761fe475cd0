package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"swea-cms.backend/internal/interfaces/http/response"
	"swea-cms.backend/internal/usecases"
)

type ResearchHandler struct {
	service *usecases.ResearchService
}

func NewResearchHandler(service *usecases.ResearchService) *ResearchHandler {
	return &ResearchHandler{service: service}
}

// GET /api/v1/research
func (h *ResearchHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GET /api/v1/research/:id
func (h *ResearchHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	research, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, research)
}

// POST /api/v1/admin/research
func (h *ResearchHandler) Create(c *gin.Context) {
	input, image, err := h.bindInput(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	research, err := h.service.Create(c.Request.Context(), input, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, research)
}

// PUT /api/v1/admin/research/:id
func (h *ResearchHandler) Update(c *gin.Context) {
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
	research, err := h.service.Update(c.Request.Context(), id, input, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, research)
}

// DELETE /api/v1/admin/research/:id
func (h *ResearchHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, permanentFlag(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Research item deleted"})
}

// POST /api/v1/admin/research/:id/restore
func (h *ResearchHandler) Restore(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	research, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, research)
}

func (h *ResearchHandler) bindInput(c *gin.Context) (usecases.ResearchInput, *multipart.FileHeader, error) {
	date, err := formDate(c, "date_of_completion")
	if err != nil {
		return usecases.ResearchInput{}, nil, err
	}
	content, err := formJSON(c, "content")
	if err != nil {
		return usecases.ResearchInput{}, nil, err
	}
	images, err := formJSON(c, "images")
	if err != nil {
		return usecases.ResearchInput{}, nil, err
	}
	testimonials, err := formJSON(c, "testimonials")
	if err != nil {
		return usecases.ResearchInput{}, nil, err
	}
	heroImage, err := formFile(c, "hero_image")
	if err != nil {
		return usecases.ResearchInput{}, nil, err
	}

	return usecases.ResearchInput{
		Title:            formText(c, "title"),
		Author:           formText(c, "author"),
		DateOfCompletion: date,
		Content:          content,
		Tags:             formTags(c, "tags"),
		Images:           images,
		Testimonials:     testimonials,
	}, heroImage, nil
}
