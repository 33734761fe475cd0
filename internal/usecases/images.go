package usecases

import (
	"context"
	"mime/multipart"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"swea-cms.backend/internal/infrastructure/storage"
	"swea-cms.backend/pkg/logger"
)

// saveImage stores an uploaded file and returns its path. A nil file means
// the caller did not upload anything and the zero value comes back.
func saveImage(ctx context.Context, store storage.Storage, file *multipart.FileHeader, dir string) (null.String, error) {
	if file == nil {
		return null.String{}, nil
	}
	path, err := store.Save(ctx, file, dir)
	if err != nil {
		return null.String{}, err
	}
	return null.StringFrom(path), nil
}

// replaceImage stores the new upload and drops the previous file. The old
// file failing to delete is logged, not surfaced; the record already points
// at the new path.
func replaceImage(ctx context.Context, store storage.Storage, file *multipart.FileHeader, dir string, old null.String) (null.String, error) {
	if file == nil {
		return old, nil
	}
	path, err := saveImage(ctx, store, file, dir)
	if err != nil {
		return old, err
	}
	if old.Valid && old.String != "" {
		if _, err := store.Delete(ctx, old.String); err != nil {
			logger.Warn(ctx, "failed to remove replaced file",
				zap.String("path", old.String), zap.Error(err))
		}
	}
	return path, nil
}
