package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"swea-cms.backend/internal/interfaces/http/response"
	"swea-cms.backend/internal/usecases"
)

type NewsHandler struct {
	service *usecases.NewsService
}

func NewNewsHandler(service *usecases.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

// List returns a page of news, or all matches when ?search= is given.
// GET /api/v1/news
func (h *NewsHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Get returns one news item.
// GET /api/v1/news/:id
func (h *NewsHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	news, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, news)
}

// Create creates a news item from a multipart form.
// POST /api/v1/admin/news
func (h *NewsHandler) Create(c *gin.Context) {
	input, image, err := h.bindInput(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	news, err := h.service.Create(c.Request.Context(), input, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, news)
}

// Update overwrites a news item.
// PUT /api/v1/admin/news/:id
func (h *NewsHandler) Update(c *gin.Context) {
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

	news, err := h.service.Update(c.Request.Context(), id, input, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, news)
}

// Delete soft deletes, or removes permanently with ?permanent=true.
// DELETE /api/v1/admin/news/:id
func (h *NewsHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, permanentFlag(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "News item deleted"})
}

// Restore brings back a soft-deleted news item.
// POST /api/v1/admin/news/:id/restore
func (h *NewsHandler) Restore(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	news, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, news)
}

func (h *NewsHandler) bindInput(c *gin.Context) (usecases.NewsInput, *multipart.FileHeader, error) {
	date, err := formDate(c, "date")
	if err != nil {
		return usecases.NewsInput{}, nil, err
	}
	image, err := formFile(c, "image")
	if err != nil {
		return usecases.NewsInput{}, nil, err
	}

	return usecases.NewsInput{
		Title:       formText(c, "title"),
		Description: formText(c, "description"),
		Date:        date,
		URLRedirect: formNullString(c, "url_redirect"),
	}, image, nil
}
