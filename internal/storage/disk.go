package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store abstracts where uploaded payloads live. The backend only ever needs
// save/remove/exists; retrieval streams straight from the returned path.
type Store interface {
	Save(name string, r io.Reader) (path string, size int64, err error)
	Remove(path string) error
	Exists(path string) bool
}

// DiskStore keeps uploads in a flat directory under root.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{root: root}, nil
}

// Save writes the payload and reports the size actually written, never the
// size the client declared.
func (s *DiskStore) Save(name string, r io.Reader) (string, int64, error) {
	path := filepath.Join(s.root, name)

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to stat written file: %w", err)
	}
	return path, info.Size(), nil
}

// Remove deletes the backing file; a file that is already gone is not an error.
func (s *DiskStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

func (s *DiskStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
