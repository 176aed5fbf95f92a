package memory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
	"github.com/custodia-labs/payslip-cli/internal/core/ports/driven"
)

// Ensure FileStore implements the interface.
var _ driven.FileStore = (*FileStore)(nil)

// FileStore is an in-memory implementation of driven.FileStore.
// Failure fields let tests drive the retrieval error paths.
type FileStore struct {
	mu    sync.RWMutex
	root  string
	files map[string][]byte
	dirs  map[string]bool
	info  domain.FSInfo

	writes  int
	removes int

	// WriteErr is returned by every WriteFile call when set.
	WriteErr error

	// MkdirErr is returned by every MkdirAll call when set.
	MkdirErr error

	// DropWrites makes WriteFile succeed without storing anything.
	DropWrites bool
}

// NewFileStore creates an empty store rooted at root with 1 GiB free.
func NewFileStore(root string) *FileStore {
	return &FileStore{
		root:  root,
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
		info:  domain.FSInfo{FreeSpace: 1 << 30, TotalSpace: 1 << 32},
	}
}

// SetFreeSpace changes the free space reported by FSInfo.
func (s *FileStore) SetFreeSpace(free int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info.FreeSpace = free
}

// Root returns the storage root directory.
func (s *FileStore) Root() string {
	return s.root
}

// Exists reports whether a file or directory exists at path.
func (s *FileStore) Exists(_ context.Context, path string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	path = filepath.Clean(path)
	_, isFile := s.files[path]
	return isFile || s.dirs[path], nil
}

// MkdirAll creates a directory and its parents.
func (s *FileStore) MkdirAll(_ context.Context, path string) error {
	if s.MkdirErr != nil {
		return s.MkdirErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for dir := filepath.Clean(path); ; dir = filepath.Dir(dir) {
		s.dirs[dir] = true
		if parent := filepath.Dir(dir); parent == dir {
			break
		}
	}
	return nil
}

// Remove deletes the file at path.
func (s *FileStore) Remove(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	path = filepath.Clean(path)
	if _, ok := s.files[path]; !ok {
		return fmt.Errorf("remove %s: %w", path, os.ErrNotExist)
	}
	delete(s.files, path)
	s.removes++
	return nil
}

// WriteFile stores content at path. The parent directory must exist.
func (s *FileStore) WriteFile(_ context.Context, path string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++

	if s.WriteErr != nil {
		return s.WriteErr
	}
	path = filepath.Clean(path)
	if !s.dirs[filepath.Dir(path)] {
		return fmt.Errorf("write %s: %w", path, os.ErrNotExist)
	}
	if s.DropWrites {
		return nil
	}
	s.files[path] = append([]byte(nil), content...)
	return nil
}

// FSInfo reports the configured capacity.
func (s *FileStore) FSInfo(_ context.Context, _ string) (domain.FSInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info, nil
}

// ReadFile returns a stored file's content.
func (s *FileStore) ReadFile(path string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.files[filepath.Clean(path)]
	return content, ok
}

// Files returns the stored file paths in sorted order.
func (s *FileStore) Files() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Writes returns the number of WriteFile calls.
func (s *FileStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Removes returns the number of successful Remove calls.
func (s *FileStore) Removes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.removes
}
