package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mahimathinakaran/wastewise/config"
)

// Store is the blob-storage collaborator for uploaded report images. Save
// returns the public URL under which the image is reachable.
type Store interface {
	Save(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

// New selects the storage backend from config.
func New(cfg *config.Config) (Store, error) {
	switch cfg.StorageBackend {
	case "r2":
		return NewR2Store(&cfg.R2), nil
	case "local":
		return NewLocalStore(cfg.UploadDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// ImageKey derives a collision-resistant object key for an uploaded image from
// the submission time, the owner and the original file extension.
func ImageKey(userID uint, filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%d_%d_%s%s", time.Now().UnixNano(), userID, uuid.New().String(), ext)
}
