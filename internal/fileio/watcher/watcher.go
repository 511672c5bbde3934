// Package watcher reports changes other programs make to the file being
// edited.
//
// A FileWatcher follows one file at a time. It watches the file's
// directory rather than the file itself, so editors and tools that save
// by writing a temporary file and renaming it over the original are
// still seen. Rapid changes are coalesced into a single Event delivered
// after a quiet period.
package watcher

import (
	"errors"
	"strings"
	"time"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
	ErrNotWatching   = errors.New("no file is being watched")
)

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates the file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates the file was written to.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
	// OpChmod indicates file permissions were changed.
	OpChmod
)

var opNames = []struct {
	op   Op
	name string
}{
	{OpCreate, "CREATE"},
	{OpWrite, "WRITE"},
	{OpRemove, "REMOVE"},
	{OpRename, "RENAME"},
	{OpChmod, "CHMOD"},
}

// String returns the names of the operations in op joined by '|'.
func (op Op) String() string {
	var names []string
	for _, n := range opNames {
		if op.Has(n.op) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(names, "|")
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Gone reports whether the file no longer exists under its name.
func (op Op) Gone() bool {
	return op&(OpRemove|OpRename) != 0 && op&(OpCreate|OpWrite) == 0
}

// Event represents a change to the watched file.
type Event struct {
	// Path is the absolute path of the file.
	Path string

	// Op combines every operation seen during the quiet period.
	Op Op

	// Timestamp is when the last operation occurred.
	Timestamp time.Time
}

// Handler receives coalesced events. It runs on the watcher's timer
// goroutine and must not block.
type Handler func(event Event)

// Stats provides watcher status information.
type Stats struct {
	// Path is the watched file, or "".
	Path string

	// TotalEvents is the number of events delivered.
	TotalEvents int64

	// Errors is the number of errors reported by the file system.
	Errors int64

	// LastError is the most recent error.
	LastError error
}

// Config configures a FileWatcher.
type Config struct {
	// DebounceDelay is the quiet period before an event is delivered.
	DebounceDelay time.Duration
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: 100 * time.Millisecond,
	}
}

// Option configures a FileWatcher.
type Option func(*Config)

// WithDebounceDelay sets the quiet period.
func WithDebounceDelay(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.DebounceDelay = d
		}
	}
}
