// Package fileio is the file collaborator of the configuration store.
//
// The store reads whole files and writes whole buffers, nothing else, so the
// interface has exactly those two operations. Failures are classified into the
// OPEN_FILE, READ_FILE and WRITE_FILE kinds of the errors package.
package fileio

import (
	"io"
	"os"
	"sync"

	suzuerrors "github.com/suzu-editor/suzu/internal/errors"
)

// FileIO is an interface for reading and writing whole files
type FileIO interface {
	// ReadAll returns the full contents of the file at path
	ReadAll(path string) ([]byte, error)

	// WriteAll writes data to path, truncating it unless appendMode is set
	WriteAll(path string, data []byte, appendMode bool) error
}

// OSFileIO implements FileIO using the os package
type OSFileIO struct {
	// Perm is the mode used when a file is created. Zero means 0644.
	Perm os.FileMode
}

// NewOSFileIO creates a new OSFileIO
func NewOSFileIO() *OSFileIO {
	return &OSFileIO{Perm: 0644}
}

// ReadAll opens path and reads it to the end
func (f *OSFileIO) ReadAll(path string) ([]byte, error) {
	if path == "" {
		return nil, suzuerrors.InvalidParameter("file path cannot be empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, suzuerrors.WrapPath(suzuerrors.ErrCodeOpenFile, path, "cannot open file", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, suzuerrors.WrapPath(suzuerrors.ErrCodeReadFile, path, "cannot read file", err)
	}
	return data, nil
}

// WriteAll opens path for writing and writes data in one call
func (f *OSFileIO) WriteAll(path string, data []byte, appendMode bool) error {
	if path == "" {
		return suzuerrors.InvalidParameter("file path cannot be empty")
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	perm := f.Perm
	if perm == 0 {
		perm = 0644
	}

	file, err := os.OpenFile(path, flags, perm)
	if err != nil {
		return suzuerrors.WrapPath(suzuerrors.ErrCodeOpenFile, path, "cannot open file", err)
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return suzuerrors.WrapPath(suzuerrors.ErrCodeWriteFile, path, "cannot write file", err)
	}
	if err := file.Close(); err != nil {
		return suzuerrors.WrapPath(suzuerrors.ErrCodeWriteFile, path, "cannot write file", err)
	}
	return nil
}

// MockFileIO is an in-memory implementation for testing
type MockFileIO struct {
	mu    sync.Mutex
	Files map[string][]byte

	ReadAllFunc  func(path string) ([]byte, error)
	WriteAllFunc func(path string, data []byte, appendMode bool) error
	Calls        []FileCall
}

// FileCall records a file operation for verification
type FileCall struct {
	Op     string
	Path   string
	Append bool
}

// NewMockFileIO creates a MockFileIO seeded with the given files
func NewMockFileIO(files map[string]string) *MockFileIO {
	m := &MockFileIO{Files: make(map[string][]byte)}
	for path, content := range files {
		m.Files[path] = []byte(content)
	}
	return m
}

// ReadAll calls the mock function or serves from Files
func (m *MockFileIO) ReadAll(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, FileCall{Op: "read", Path: path})
	if m.ReadAllFunc != nil {
		return m.ReadAllFunc(path)
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, suzuerrors.WrapPath(suzuerrors.ErrCodeOpenFile, path, "cannot open file", os.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}

// WriteAll calls the mock function or stores into Files
func (m *MockFileIO) WriteAll(path string, data []byte, appendMode bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, FileCall{Op: "write", Path: path, Append: appendMode})
	if m.WriteAllFunc != nil {
		return m.WriteAllFunc(path, data, appendMode)
	}
	if m.Files == nil {
		m.Files = make(map[string][]byte)
	}
	if appendMode {
		m.Files[path] = append(m.Files[path], data...)
	} else {
		m.Files[path] = append([]byte(nil), data...)
	}
	return nil
}

// Content returns the current contents of path as a string
func (m *MockFileIO) Content(path string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Files[path]
	return string(data), ok
}
