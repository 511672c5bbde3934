package fileio

import (
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"syscall"
)

// FS is the byte-level file system the editor reads and writes through.
type FS interface {
	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating or truncating it.
	WriteFile(path string, data []byte, perm fs.FileMode) error
}

// OSFS implements FS using the operating system's file system.
type OSFS struct{}

// Ensure OSFS implements FS.
var _ FS = OSFS{}

// ReadFile reads the entire file content.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file, creating it if necessary.
func (OSFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// MemFS implements FS in memory. Directories are implicit: any path can be
// written unless it has been marked read-only with Deny.
type MemFS struct {
	files  map[string][]byte
	denied map[string]bool
}

// Ensure MemFS implements FS.
var _ FS = (*MemFS)(nil)

// NewMemFS creates an empty in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{
		files:  make(map[string][]byte),
		denied: make(map[string]bool),
	}
}

// ReadFile reads the entire file content.
func (m *MemFS) ReadFile(filePath string) ([]byte, error) {
	filePath = cleanPath(filePath)
	data, ok := m.files[filePath]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// WriteFile stores a copy of data at filePath.
func (m *MemFS) WriteFile(filePath string, data []byte, _ fs.FileMode) error {
	filePath = cleanPath(filePath)
	if m.denied[filePath] {
		return &fs.PathError{Op: "write", Path: filePath, Err: syscall.EACCES}
	}
	m.files[filePath] = append([]byte(nil), data...)
	return nil
}

// AddFile is a convenience method for adding files during setup.
func (m *MemFS) AddFile(filePath, content string) {
	m.files[cleanPath(filePath)] = []byte(content)
}

// Deny makes writes to filePath fail with a permission error.
func (m *MemFS) Deny(filePath string) {
	m.denied[cleanPath(filePath)] = true
}

// Files returns all file paths in the file system.
func (m *MemFS) Files() []string {
	files := make([]string, 0, len(m.files))
	for f := range m.files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// cleanPath normalizes a path.
func cleanPath(p string) string {
	p = path.Clean(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
