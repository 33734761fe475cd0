package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"swea-cms.backend/internal/interfaces/http/response"
	"swea-cms.backend/internal/usecases"
)

type PodcastHandler struct {
	service *usecases.PodcastService
}

func NewPodcastHandler(service *usecases.PodcastService) *PodcastHandler {
	return &PodcastHandler{service: service}
}

// GET /api/v1/podcasts
func (h *PodcastHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GET /api/v1/podcasts/:id
func (h *PodcastHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	podcast, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, podcast)
}

// POST /api/v1/admin/podcasts
func (h *PodcastHandler) Create(c *gin.Context) {
	input, image, err := h.bindInput(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	podcast, err := h.service.Create(c.Request.Context(), input, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, podcast)
}

// PUT /api/v1/admin/podcasts/:id
func (h *PodcastHandler) Update(c *gin.Context) {
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
	podcast, err := h.service.Update(c.Request.Context(), id, input, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, podcast)
}

// DELETE /api/v1/admin/podcasts/:id
func (h *PodcastHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, permanentFlag(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Podcast deleted"})
}

// POST /api/v1/admin/podcasts/:id/restore
func (h *PodcastHandler) Restore(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	podcast, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, podcast)
}

func (h *PodcastHandler) bindInput(c *gin.Context) (usecases.PodcastInput, *multipart.FileHeader, error) {
	date, err := formDate(c, "date")
	if err != nil {
		return usecases.PodcastInput{}, nil, err
	}
	memberIDs, err := formUUIDs(c, "member_ids")
	if err != nil {
		return usecases.PodcastInput{}, nil, err
	}
	image, err := formFile(c, "image")
	if err != nil {
		return usecases.PodcastInput{}, nil, err
	}

	return usecases.PodcastInput{
		Title:       formText(c, "title"),
		PodcastName: formText(c, "podcast_name"),
		Description: formText(c, "description"),
		Date:        date,
		URL:         formNullString(c, "url"),
		Tags:        formTags(c, "tags"),
		MemberIDs:   memberIDs,
	}, image, nil
}
