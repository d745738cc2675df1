package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStorage keeps uploaded documents under a single root directory.
// Callers only ever see the generated file name (the storage path); the
// absolute location stays internal.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &LocalStorage{root: root}, nil
}

// Save writes the file under a collision-resistant name built from the owner
// id, a timestamp and a random suffix. Two concurrent uploads can never race
// on the same name.
func (s *LocalStorage) Save(data []byte, originalName string, userID int64) (string, int64, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("%d_%s_%s%s", userID, time.Now().UTC().Format("20060102150405"), uuid.NewString(), ext)

	path := filepath.Join(s.root, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	return name, int64(len(data)), nil
}

// Read returns the stored file's contents. A missing file surfaces as
// os.ErrNotExist so callers can distinguish it from I/O failures.
func (s *LocalStorage) Read(storagePath string) ([]byte, error) {
	return os.ReadFile(s.FullPath(storagePath))
}

// Delete removes a stored file. Deleting a missing file is not an error;
// it reports found=false.
func (s *LocalStorage) Delete(storagePath string) (bool, error) {
	path := s.FullPath(storagePath)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, err
	}
	return true, nil
}

// FullPath resolves a storage path to an absolute location. Internal use
// only (the renderer reads from disk); never returned to clients.
func (s *LocalStorage) FullPath(storagePath string) string {
	if filepath.IsAbs(storagePath) {
		return storagePath
	}
	return filepath.Join(s.root, storagePath)
}
