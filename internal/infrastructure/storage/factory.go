package storage

import (
	"fmt"

	"swea-cms.backend/internal/config"
)

// FromConfig selects the storage backend once at startup.
func FromConfig(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case "local", "":
		return NewLocalStorage(cfg.LocalRoot, cfg.LocalBaseURL, cfg.MaxFileSize), nil
	case "oss":
		return NewOSSStorage(cfg.OSSEndpoint, cfg.OSSBucket, cfg.OSSKeyID, cfg.OSSKeySecret, cfg.MaxFileSize)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
