package mocks

import (
	"fmt"
	"os"
	"sync"

	"github.com/user/deskbridge/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string]string
	dirs  map[string]bool

	ReadFileFunc  func(path string) (string, error)
	WriteFileFunc func(path string, contents string) error
	ExistsFunc    func(path string) (bool, error)
	MkdirAllFunc  func(path string) error
}

// NewFileSystem creates a new mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string]string),
		dirs:  make(map[string]bool),
	}
}

func (m *FileSystem) ReadFile(path string) (string, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.files[path]; ok {
		return data, nil
	}
	return "", &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
}

func (m *FileSystem) WriteFile(path string, contents string) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(path, contents)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dirs[path] {
		return fmt.Errorf("open %s: is a directory", path)
	}
	m.files[path] = contents
	return nil
}

func (m *FileSystem) Exists(path string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.files[path]; ok {
		return true, nil
	}
	if _, ok := m.dirs[path]; ok {
		return true, nil
	}
	return false, nil
}

func (m *FileSystem) MkdirAll(path string) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = true
	return nil
}

// GetFile returns the contents of a file (for test verification).
func (m *FileSystem) GetFile(path string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	return data, ok
}

// Remove deletes a file, simulating an external removal.
func (m *FileSystem) Remove(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
	delete(m.dirs, path)
}

var _ ports.FileSystem = (*FileSystem)(nil)
