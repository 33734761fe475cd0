package storage

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"swea-cms.backend/pkg/utils"
)

// LocalStorage writes files under a configured root directory and serves
// them from a static base URL. Stored paths are relative to the root.
type LocalStorage struct {
	root        string
	baseURL     string
	maxFileSize int64
}

func NewLocalStorage(root, baseURL string, maxFileSize int64) *LocalStorage {
	return &LocalStorage{
		root:        root,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		maxFileSize: maxFileSize,
	}
}

// Save validates the upload and writes it to root/dir with a unique name.
func (s *LocalStorage) Save(ctx context.Context, file *multipart.FileHeader, dir string) (string, error) {
	if err := ValidateFile(file, s.maxFileSize); err != nil {
		return "", err
	}

	name := utils.UniqueFilename(file.Filename)
	relPath := filepath.ToSlash(filepath.Join(dir, name))
	fullPath := filepath.Join(s.root, dir, name)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return "", err
	}
	return relPath, nil
}

// resolve maps a stored path onto the root. Paths that escape the root
// (absolute, or with ".." components) resolve to nothing.
func (s *LocalStorage) resolve(path string) (string, bool) {
	rel := filepath.FromSlash(path)
	if !filepath.IsLocal(rel) {
		return "", false
	}
	return filepath.Join(s.root, rel), true
}

// Delete removes a stored file. Returns false when the file did not exist.
func (s *LocalStorage) Delete(ctx context.Context, path string) (bool, error) {
	full, ok := s.resolve(path)
	if !ok {
		return false, nil
	}
	err := os.Remove(full)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Exists reports whether a stored file is present.
func (s *LocalStorage) Exists(ctx context.Context, path string) (bool, error) {
	full, ok := s.resolve(path)
	if !ok {
		return false, nil
	}
	_, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// PublicURL prefixes the stored path with the static base URL.
func (s *LocalStorage) PublicURL(path string) string {
	return s.baseURL + "/" + strings.TrimPrefix(path, "/")
}
