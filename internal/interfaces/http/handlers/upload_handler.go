package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "swea-cms.backend/internal/domain/errors"
	"swea-cms.backend/internal/infrastructure/storage"
	"swea-cms.backend/internal/interfaces/http/response"
)

// UploadHandler stores standalone files (e.g. images referenced from
// dashboard-owned JSON content) and hands back the stored path plus the
// public URL.
type UploadHandler struct {
	store storage.Storage
}

func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{store: store}
}

// POST /api/v1/admin/uploads
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := formFile(c, "file")
	if err != nil {
		response.Error(c, err)
		return
	}
	if file == nil {
		response.Error(c, domainerrors.BadRequest("file is required"))
		return
	}

	path, err := h.store.Save(c.Request.Context(), file, "uploads")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"path": path,
		"url":  h.store.PublicURL(path),
	})
}

// DELETE /api/v1/admin/uploads?path=...
func (h *UploadHandler) Delete(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		response.Error(c, domainerrors.BadRequest("path query parameter is required"))
		return
	}

	removed, err := h.store.Delete(c.Request.Context(), path)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !removed {
		response.Error(c, domainerrors.NotFound("file not found"))
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "File deleted"})
}
