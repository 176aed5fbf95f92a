package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
)

// Ensure FileStore implements the interface.
var _ driven.FileStore = (*FileStore)(nil)

// File modes for stored documents.
const (
	dirPerm  = 0700
	filePerm = 0600
)

// FileStore writes documents to the local filesystem.
type FileStore struct {
	root string
}

// DefaultRoot returns ~/.payslips/storage.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".payslips", "storage"), nil
}

// NewFileStore creates a file store rooted at root.
// If root is empty, defaults to ~/.payslips/storage.
func NewFileStore(root string) (*FileStore, error) {
	if root == "" {
		var err error
		if root, err = DefaultRoot(); err != nil {
			return nil, err
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	return &FileStore{root: abs}, nil
}

// Root returns the storage root directory.
func (s *FileStore) Root() string {
	return s.root
}

// Exists reports whether a file or directory exists at path.
func (s *FileStore) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// MkdirAll creates a directory and any missing parents.
func (s *FileStore) MkdirAll(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.MkdirAll(path, dirPerm)
}

// Remove deletes the file at path.
func (s *FileStore) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Remove(path)
}

// WriteFile writes content to path, creating or truncating it.
func (s *FileStore) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, content, filePerm)
}

// FSInfo reports free and total space of the filesystem holding path.
func (s *FileStore) FSInfo(ctx context.Context, path string) (domain.FSInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.FSInfo{}, err
	}

	info, err := diskUsage(path)
	if err != nil {
		return domain.FSInfo{}, fmt.Errorf("disk usage of %s: %w", path, err)
	}
	return info, nil
}
