package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "swea-cms.backend/internal/domain/errors"
	"swea-cms.backend/internal/interfaces/http/response"
	"swea-cms.backend/internal/usecases"
)

type SubscriberHandler struct {
	service *usecases.SubscriberService
}

func NewSubscriberHandler(service *usecases.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{service: service}
}

// Subscribe signs an address up for the newsletter.
// POST /api/v1/subscribers
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var input usecases.SubscribeInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("email is required"))
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sub)
}

// Unsubscribe permanently drops an address.
// DELETE /api/v1/subscribers?email=...
func (h *SubscriberHandler) Unsubscribe(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Error(c, domainerrors.BadRequest("email query parameter is required"))
		return
	}
	if err := h.service.Unsubscribe(c.Request.Context(), email); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Unsubscribed"})
}

// List returns a page of subscribers.
// GET /api/v1/admin/subscribers
func (h *SubscriberHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), listParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Broadcast queues a newsletter to every subscriber.
// POST /api/v1/admin/subscribers/broadcast
func (h *SubscriberHandler) Broadcast(c *gin.Context) {
	var input usecases.BroadcastInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("subject and body are required"))
		return
	}

	queued, err := h.service.Broadcast(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Newsletter queued",
		"queued":  queued,
	})
}
