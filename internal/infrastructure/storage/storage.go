// Package storage abstracts where uploaded files live. Both backends share
// one validation pass and one naming scheme; the backend is chosen by
// configuration at startup, never by branching at call sites.
package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	domainerrors "swea-cms.backend/internal/domain/errors"
)

// Storage is the capability every file backend provides. Save returns the
// stored path/key which is what gets persisted on records; PublicURL turns
// that back into something a browser can fetch.
type Storage interface {
	Save(ctx context.Context, file *multipart.FileHeader, dir string) (string, error)
	Delete(ctx context.Context, path string) (bool, error)
	Exists(ctx context.Context, path string) (bool, error)
	PublicURL(path string) string
}

// DefaultMaxFileSize caps uploads at 10 MB.
const DefaultMaxFileSize = 10 << 20

var (
	allowedExtensions = map[string]bool{
		".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
		".pdf": true,
	}
	allowedMIMEPrefixes = []string{"image/", "application/pdf"}
)

// ValidateFile checks extension, size and sniffed MIME type before anything
// touches a backend. Violations come back as a ValidationError listing every
// reason, so the dashboard can show them all at once.
func ValidateFile(file *multipart.FileHeader, maxSize int64) error {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	verr := domainerrors.NewValidationError()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		verr.Add("file", fmt.Sprintf("file type %q is not allowed", ext))
	}

	if file.Size > maxSize {
		verr.Add("file", fmt.Sprintf("file exceeds the maximum size of %d bytes", maxSize))
	}

	if mimeType, err := sniffMIME(file); err == nil && !mimeAllowed(mimeType) {
		verr.Add("file", fmt.Sprintf("content type %q is not allowed", mimeType))
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func sniffMIME(file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if n == 0 && err != nil {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

func mimeAllowed(mimeType string) bool {
	for _, prefix := range allowedMIMEPrefixes {
		if strings.HasPrefix(mimeType, prefix) {
			return true
		}
	}
	return false
}
