package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"swea-cms.backend/internal/interfaces/http/response"
	"swea-cms.backend/internal/usecases"
)

type TeamHandler struct {
	service *usecases.TeamService
}

func NewTeamHandler(service *usecases.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

// List returns team members in display order.
// GET /api/v1/team
func (h *TeamHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GET /api/v1/team/:id
func (h *TeamHandler) Get(c *gin.Context) {
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

// Create inserts a member at the requested display position.
// POST /api/v1/admin/team
func (h *TeamHandler) Create(c *gin.Context) {
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

// Update rewrites a member and moves it to the requested position.
// PUT /api/v1/admin/team/:id
func (h *TeamHandler) Update(c *gin.Context) {
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

// Delete removes a member and closes the display-order gap.
// DELETE /api/v1/admin/team/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, permanentFlag(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Team member deleted"})
}

// Restore brings a member back at the end of the display order.
// POST /api/v1/admin/team/:id/restore
func (h *TeamHandler) Restore(c *gin.Context) {
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

func (h *TeamHandler) bindInput(c *gin.Context) (usecases.TeamInput, *multipart.FileHeader, error) {
	socials, err := formJSONMap(c, "socials")
	if err != nil {
		return usecases.TeamInput{}, nil, err
	}
	image, err := formFile(c, "image")
	if err != nil {
		return usecases.TeamInput{}, nil, err
	}

	return usecases.TeamInput{
		Name:    formText(c, "name"),
		Role:    formText(c, "role"),
		Bio:     formText(c, "bio"),
		Order:   formInt(c, "order"),
		Socials: socials,
		Email:   formNullString(c, "email"),
	}, image, nil
}
