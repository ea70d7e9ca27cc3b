package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore writes images to a directory on disk. The router serves the
// directory at /uploads, so the returned URL is a site-relative path.
type LocalStore struct {
	Dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{Dir: dir}, nil
}

func (s *LocalStore) Save(_ context.Context, key, _ string, data []byte) (string, error) {
	path := filepath.Join(s.Dir, key)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return "/uploads/" + key, nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	return os.Remove(filepath.Join(s.Dir, key))
}
