package clipboard

import (
	"errors"
	"slices"
	"strings"
)

// Common errors for clipboard operations.
var (
	ErrNothingToCopy   = errors.New("nothing to copy")
	ErrClipboardEmpty  = errors.New("clipboard empty")
	ErrCutBufferEmpty  = errors.New("cut buffer empty")
	ErrSystemClipboard = errors.New("system clipboard unavailable")
)

// SystemClipboard receives a copy of everything placed on the Clipboard.
type SystemClipboard interface {
	WriteAll(text string) error
}

// Clipboard holds the fragments of the last copied span. The first and last
// fragments may be partial lines; interior fragments are whole lines.
// Each copy replaces the previous content wholesale.
type Clipboard struct {
	fragments []string
	sink      SystemClipboard
}

// New creates an empty clipboard. When sink is non-nil, every Set is
// mirrored to it.
func New(sink SystemClipboard) *Clipboard {
	return &Clipboard{sink: sink}
}

// Set replaces the content with fragments. The in-editor copy always
// succeeds; the returned error only reports a failed mirror to the system
// clipboard.
func (c *Clipboard) Set(fragments []string) error {
	c.fragments = slices.Clone(fragments)
	if c.sink == nil || len(fragments) == 0 {
		return nil
	}
	if err := c.sink.WriteAll(c.Text()); err != nil {
		return errors.Join(ErrSystemClipboard, err)
	}
	return nil
}

// Fragments returns a copy of the held fragments.
func (c *Clipboard) Fragments() []string {
	return slices.Clone(c.fragments)
}

// Text returns the fragments joined with newlines.
func (c *Clipboard) Text() string {
	return strings.Join(c.fragments, "\n")
}

// Len returns the number of fragments (lines) held.
func (c *Clipboard) Len() int {
	return len(c.fragments)
}

// IsEmpty returns true if nothing has been copied.
func (c *Clipboard) IsEmpty() bool {
	return len(c.fragments) == 0
}

// Clear drops the content.
func (c *Clipboard) Clear() {
	c.fragments = nil
}
