package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SanitizeFilename strips path components and replaces characters that are
// unsafe in object keys or on disk. The extension is preserved lowercase.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.TrimSuffix(name, filepath.Ext(name))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		cleaned = "file"
	}
	return cleaned + ext
}

// UniqueFilename prefixes a sanitized filename with a UUID so concurrent
// uploads of the same file never collide.
func UniqueFilename(name string) string {
	return uuid.New().String() + "_" + SanitizeFilename(name)
}
