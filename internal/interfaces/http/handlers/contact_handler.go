package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "swea-cms.backend/internal/domain/errors"
	"swea-cms.backend/internal/interfaces/http/response"
	"swea-cms.backend/internal/usecases"
)

type ContactHandler struct {
	service *usecases.ContactService
}

func NewContactHandler(service *usecases.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Create accepts a public contact form message.
// POST /api/v1/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	var input usecases.ContactInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("name, email and content are required"))
		return
	}

	contact, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, contact)
}

// List returns a page of contact messages.
// GET /api/v1/admin/contacts
func (h *ContactHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Get returns one contact message.
// GET /api/v1/admin/contacts/:id
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	contact, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, contact)
}

// Delete removes a contact message.
// DELETE /api/v1/admin/contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, permanentFlag(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Contact message deleted"})
}
