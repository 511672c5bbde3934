package fileio

import (
	"errors"
	"io/fs"
)

// DefaultPerm is the mode given to newly created files.
const DefaultPerm fs.FileMode = 0o644

// Loader reads a document as lines.
type Loader interface {
	Load(path string) ([]string, error)
}

// Saver writes a document's lines.
type Saver interface {
	Save(path string, lines []string) error
}

// Info describes a loaded file.
type Info struct {
	Path       string
	Encoding   Encoding
	LineEnding LineEnding
	Lines      int
	Exists     bool
}

// Files loads and saves documents on an FS.
type Files struct {
	fs FS
}

// Ensure Files implements Loader and Saver.
var (
	_ Loader = (*Files)(nil)
	_ Saver  = (*Files)(nil)
)

// New creates a Files over fsys. A nil fsys uses the OS file system.
func New(fsys FS) *Files {
	if fsys == nil {
		fsys = OSFS{}
	}
	return &Files{fs: fsys}
}

// Load reads path as lines with terminators and any byte order mark
// removed.
func (f *Files) Load(path string) ([]string, error) {
	lines, _, err := f.Read(path)
	return lines, err
}

// Read is Load that also reports what was found on disk.
func (f *Files) Read(path string) ([]string, Info, error) {
	info := Info{Path: path}
	raw, err := f.fs.ReadFile(path)
	if err != nil {
		return nil, info, err
	}
	info.Exists = true
	info.Encoding = DetectEncoding(raw)
	info.LineEnding = DetectLineEnding(raw)

	content, err := Decode(raw)
	if err != nil {
		return nil, info, err
	}
	lines := SplitLines(content)
	info.Lines = len(lines)
	return lines, info, nil
}

// Save writes lines to path, each followed by a newline.
func (f *Files) Save(path string, lines []string) error {
	return f.fs.WriteFile(path, JoinLines(lines), DefaultPerm)
}

// LoadOrEmpty loads path, falling back to a single empty line when the
// file is missing or unreadable. The error is returned for logging only.
func LoadOrEmpty(l Loader, path string) ([]string, error) {
	lines, err := l.Load(path)
	if err != nil || len(lines) == 0 {
		return []string{""}, err
	}
	return lines, nil
}

// IsNotExist reports whether err means the file does not exist yet.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
