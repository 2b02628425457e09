package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON file per collection under a data directory. It is
// the default driver and needs no external services.
type FileStore struct {
	dataDir string
}

// NewFileStore ensures the data directory exists and returns a handle.
func NewFileStore(dataDir string) (*FileStore, error) {
	if dataDir == "" {
		dataDir = "./data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{dataDir: dataDir}, nil
}

// Get reads the payload stored for key, or (nil, nil) when absent.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	payload, err := os.ReadFile(s.resolve(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read collection %s: %w", key, err)
	}
	return payload, nil
}

// Put overwrites the payload stored for key.
func (s *FileStore) Put(_ context.Context, key string, payload []byte) error {
	if err := os.WriteFile(s.resolve(key), payload, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) resolve(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}
