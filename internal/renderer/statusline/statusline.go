// Package statusline provides the status bar and help line UI components.
package statusline

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/dshills/az/internal/renderer/backend"
	"github.com/dshills/az/internal/renderer/core"
)

// HelpText is shown on the help line when no message is pending.
const HelpText = "^S:Save  ^Q:Quit  ^Z:Undo  ^F:Find  ^R:Replace  ^K:Cut  ^U:Paste  RClick:Paste"

// Ellipsis marks truncated text.
const Ellipsis = "..."

// minErrorWidth is the narrowest error slot worth truncating into. Below it
// the error text is drawn whole and clipped by the screen edge.
const minErrorWidth = 15

// StatusLine renders the status bar (file, position and diagnostic) and
// the help line below it.
type StatusLine struct {
	// Display state
	filename   string // Current filename (empty for a new file)
	modified   bool   // Buffer has unsaved changes
	line       int    // Current line (1-indexed for display)
	col        int    // Current column (1-indexed for display)
	totalLines int    // Total lines in buffer

	// Diagnostic display
	diagLine int // 1-based line of the diagnostic, 0 for none
	diagMsg  string

	// Message display
	message    string
	hasMessage bool

	theme core.Theme
	width int
}

// New creates a new status line drawn with theme.
func New(theme core.Theme) *StatusLine {
	return &StatusLine{theme: theme, line: 1, col: 1, totalLines: 1}
}

// SetFile updates the displayed filename and modified mark.
func (s *StatusLine) SetFile(filename string, modified bool) {
	s.filename = filename
	s.modified = modified
}

// SetPosition updates the cursor position (1-indexed) and line count.
func (s *StatusLine) SetPosition(line, col, total int) {
	s.line = line
	s.col = col
	s.totalLines = total
}

// SetDiagnostic shows msg for 1-based line. A line of 0 clears it.
func (s *StatusLine) SetDiagnostic(line int, msg string) {
	s.diagLine = line
	s.diagMsg = msg
}

// SetMessage replaces the help text with msg.
func (s *StatusLine) SetMessage(msg string) {
	s.message = msg
	s.hasMessage = true
}

// ClearMessage restores the help text.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.hasMessage = false
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Left returns the file section: modified mark and name.
func (s *StatusLine) Left() string {
	mark := ' '
	if s.modified {
		mark = '*'
	}
	name := s.filename
	if name == "" {
		name = "New file"
	}
	return fmt.Sprintf(" %c %s ", mark, name)
}

// Center returns the position section.
func (s *StatusLine) Center() string {
	percent := 0
	if s.totalLines > 0 {
		percent = s.line * 100 / s.totalLines
	}
	return fmt.Sprintf("Line %d/%d (%d%%), Col %d ", s.line, s.totalLines, percent, s.col)
}

// ErrorText returns the diagnostic section, truncated to half the width,
// or "" when there is no diagnostic.
func (s *StatusLine) ErrorText() string {
	if s.diagLine <= 0 {
		return ""
	}
	text := fmt.Sprintf("⚠ L%d: %s", s.diagLine, s.diagMsg)
	if limit := s.width/2 - 2; Width(text) > limit && limit > minErrorWidth {
		text = Truncate(text, limit)
	}
	return text
}

// Help returns the help line text: the pending message or HelpText.
func (s *StatusLine) Help() string {
	if s.hasMessage {
		return s.message
	}
	return HelpText
}

// Render draws the status bar at row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	fill := core.NewStyledCell(' ', s.theme.Status)
	b.Fill(core.RectFromSize(row, 0, 1, s.width), fill)

	center := s.Center()
	centerX := max((s.width-Width(center))/2, 0)

	left := s.Left()
	if Width(left) > centerX {
		left = Truncate(left, centerX)
	}
	drawString(b, 0, row, left, s.theme.Status, s.width)
	drawString(b, centerX, row, center, s.theme.Status, s.width)

	if text := s.ErrorText(); text != "" {
		w := Width(text)
		x := s.width/2 + 5
		if x+w >= s.width {
			x = s.width - w - 1
		}
		drawString(b, max(x, 0), row, text, s.theme.StatusErr, s.width)
	}
}

// RenderHelp draws the help line at row.
func (s *StatusLine) RenderHelp(b backend.Backend, row int) {
	style := s.theme.Help
	b.Fill(core.RectFromSize(row, 0, 1, s.width), core.NewStyledCell(' ', style))
	drawString(b, 0, row, Truncate(s.Help(), s.width), style, s.width)
}

// drawString writes s from column x, one grapheme per cell, stopping before
// column limit.
func drawString(b backend.Backend, x, row int, s string, style core.Style, limit int) {
	state := -1
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if width == 0 {
			continue
		}
		if x+width > limit {
			break
		}
		r := []rune(cluster)[0]
		b.SetCell(x, row, core.Cell{Rune: r, Width: width, Style: style})
		x += width
	}
}
