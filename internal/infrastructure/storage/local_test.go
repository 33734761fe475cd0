package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "swea-cms.backend/internal/domain/errors"
)

// minimal PNG signature so MIME sniffing sees image/png
var pngBytes = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestLocalStorage_SaveAndRoundTrip(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage(root, "/static/uploads", 0)

	fh := makeFileHeader(t, "photo.png", pngBytes)
	path, err := s.Save(context.Background(), fh, "uploads")
	require.NoError(t, err)
	assert.Contains(t, path, "uploads/")
	assert.Contains(t, path, "photo.png")

	exists, err := s.Exists(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, exists)

	assert.Equal(t, "/static/uploads/"+path, s.PublicURL(path))

	stored, err := os.ReadFile(filepath.Join(root, path))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, stored)

	ok, err := s.Delete(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, ok)

	exists, err = s.Exists(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, exists)

	ok, err = s.Delete(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, ok, "deleting a missing file reports false")
}

func TestLocalStorage_PathEscapesRoot(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage(filepath.Join(root, "files"), "/static", 0)

	outside := filepath.Join(root, "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep out"), 0o644))

	for _, path := range []string{"../secret.txt", "a/../../secret.txt", "/etc/passwd"} {
		ok, err := s.Delete(context.Background(), path)
		require.NoError(t, err)
		assert.False(t, ok, "path %q must not resolve", path)

		exists, err := s.Exists(context.Background(), path)
		require.NoError(t, err)
		assert.False(t, exists, "path %q must not resolve", path)
	}

	_, err := os.Stat(outside)
	assert.NoError(t, err, "file outside the root survives")
}

func TestLocalStorage_UniqueNames(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "/static", 0)

	fh := makeFileHeader(t, "photo.png", pngBytes)
	first, err := s.Save(context.Background(), fh, "uploads")
	require.NoError(t, err)
	second, err := s.Save(context.Background(), fh, "uploads")
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "same filename never collides")
}

func TestValidateFile_DisallowedExtension(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage(root, "/static", 0)

	fh := makeFileHeader(t, "malware.exe", []byte("not an image"))
	_, err := s.Save(context.Background(), fh, "uploads")

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Fields["file"])

	// nothing reached storage
	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestValidateFile_SizeCap(t *testing.T) {
	fh := makeFileHeader(t, "big.png", pngBytes)
	err := ValidateFile(fh, 4)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields["file"][0], "maximum size")
}

func TestValidateFile_CollectsAllReasons(t *testing.T) {
	fh := makeFileHeader(t, "script.sh", []byte("#!/bin/sh\necho hi\n"))
	err := ValidateFile(fh, 4)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.GreaterOrEqual(t, len(verr.Fields["file"]), 2, "extension and size both reported")
}

func TestValidateFile_ValidPNG(t *testing.T) {
	fh := makeFileHeader(t, "ok.png", pngBytes)
	assert.NoError(t, ValidateFile(fh, 0))
}
