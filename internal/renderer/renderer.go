package renderer

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/dshills/az/internal/engine/buffer"
	"github.com/dshills/az/internal/engine/syntax"
	"github.com/dshills/az/internal/renderer/backend"
	"github.com/dshills/az/internal/renderer/core"
	"github.com/dshills/az/internal/renderer/layout"
	"github.com/dshills/az/internal/renderer/statusline"
)

// Document is the editor state the renderer draws.
// *engine.Editor implements it.
type Document interface {
	// VisibleRows lays out the text area with highlights applied.
	VisibleRows() []layout.ScreenRow

	// LineText returns the content of a line (0-indexed).
	LineText(row int) string

	// LineCount returns the total number of lines.
	LineCount() int

	// Cursor returns the cursor position.
	Cursor() buffer.Point

	// CursorScreen returns the cursor's screen cell and whether it is in
	// the text area.
	CursorScreen() (x, y int, ok bool)

	// Filename returns the file name, or "" for a new file.
	Filename() string

	// Modified reports unsaved changes.
	Modified() bool

	// Diagnostic returns the first syntax problem, if any.
	Diagnostic() (syntax.Diagnostic, bool)

	// Status returns the pending status message, if any.
	Status() (string, bool)

	// StatusRow and HelpRow locate the two chrome rows.
	StatusRow() int
	HelpRow() int
}

// GutterDigits is the width of the line-number label. The gutter is the
// label, a space and a separator.
const GutterDigits = 4

// Separator divides the gutter from the text.
const Separator = '│'

// Options configures the renderer.
type Options struct {
	Theme core.Theme
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{Theme: core.DefaultTheme()}
}

// Renderer paints a Document onto a backend.
type Renderer struct {
	// Configuration
	opts Options

	backend backend.Backend
	status  *statusline.StatusLine

	// Prompt state: while prompting, the help line shows the prompt and
	// its input and the cursor sits after them.
	prompt    string
	prompting bool

	frameCount uint64
}

// New creates a new renderer with the given backend and options.
func New(b backend.Backend, opts Options) *Renderer {
	return &Renderer{
		opts:    opts,
		backend: b,
		status:  statusline.New(opts.Theme),
	}
}

// SetPrompt shows text (the question plus what has been typed so far) on
// the help line until ClearPrompt.
func (r *Renderer) SetPrompt(text string) {
	r.prompt = text
	r.prompting = true
}

// ClearPrompt returns the help line to messages and help text.
func (r *Renderer) ClearPrompt() {
	r.prompt = ""
	r.prompting = false
}

// Prompting reports whether a prompt is shown.
func (r *Renderer) Prompting() bool {
	return r.prompting
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// Render draws one full frame of doc.
func (r *Renderer) Render(doc Document) {
	width, _ := r.backend.Size()
	r.backend.Clear()

	for _, row := range doc.VisibleRows() {
		r.renderGutter(row)
		r.renderText(doc.LineText(row.Line), row)
	}

	r.updateStatus(doc, width)
	r.status.Render(r.backend, doc.StatusRow())

	if r.prompting {
		r.renderPrompt(doc.HelpRow(), width)
	} else {
		r.status.RenderHelp(r.backend, doc.HelpRow())
		r.renderCursor(doc)
	}

	r.backend.Show()
	r.frameCount++
}

// renderGutter draws the line number, or blanks on continuation rows.
func (r *Renderer) renderGutter(row layout.ScreenRow) {
	label := formatLineNumber(row.Line+1, row.Numbered)
	for x, ch := range label {
		r.backend.SetCell(x, row.Screen, core.NewStyledCell(ch, r.opts.Theme.Gutter))
	}
	r.backend.SetCell(len(label), row.Screen, core.NewStyledCell(Separator, r.opts.Theme.Separator))
}

// renderText draws the bytes of text that fall on row.
func (r *Renderer) renderText(text string, row layout.ScreenRow) {
	x := gutterWidth()
	for col := row.Start; col < row.End && col < len(text); col++ {
		style := r.opts.Theme.Text
		switch {
		case row.Has(layout.HighlightError, col):
			style = r.opts.Theme.Error
		case row.Has(layout.HighlightSelection, col):
			style = r.opts.Theme.Selection
		}
		r.backend.SetCell(x, row.Screen, core.Cell{Rune: displayRune(text[col]), Width: 1, Style: style})
		x++
	}
}

// updateStatus copies the document state into the status line.
func (r *Renderer) updateStatus(doc Document, width int) {
	s := r.status
	s.Resize(width)
	s.SetFile(doc.Filename(), doc.Modified())

	cur := doc.Cursor()
	s.SetPosition(cur.Row+1, cur.Col+1, doc.LineCount())

	if d, ok := doc.Diagnostic(); ok {
		s.SetDiagnostic(d.Line, d.Message)
	} else {
		s.SetDiagnostic(0, "")
	}

	if msg, ok := doc.Status(); ok {
		s.SetMessage(msg)
	} else {
		s.ClearMessage()
	}
}

// renderPrompt draws the prompt on the help line with the cursor after it.
func (r *Renderer) renderPrompt(row, width int) {
	style := r.opts.Theme.Help
	r.backend.Fill(core.RectFromSize(row, 0, 1, width), core.NewStyledCell(' ', style))

	// Keep the tail visible when the input is wider than the screen.
	text := r.prompt
	for statusline.Width(text) >= width && text != "" {
		_, text, _, _ = uniseg.FirstGraphemeClusterInString(text, -1)
	}
	x := 0
	for _, ch := range text {
		cell := core.NewStyledCell(ch, style)
		r.backend.SetCell(x, row, cell)
		x += max(cell.Width, 1)
	}
	r.backend.ShowCursor(x, row)
}

// renderCursor places the terminal cursor over the document cursor.
func (r *Renderer) renderCursor(doc Document) {
	x, y, ok := doc.CursorScreen()
	if !ok {
		r.backend.HideCursor()
		return
	}
	r.backend.ShowCursor(x, y)
}

// gutterWidth returns the number of columns left of the text.
func gutterWidth() int {
	return GutterDigits + 2
}

// formatLineNumber returns the gutter label for a 1-based line number.
// Continuation rows get blanks. Numbers too wide for the gutter keep their
// low digits.
func formatLineNumber(num int, numbered bool) string {
	if !numbered {
		return fmt.Sprintf("%*s ", GutterDigits, "")
	}
	label := fmt.Sprintf("%*d ", GutterDigits, num)
	return label[len(label)-GutterDigits-1:]
}

// displayRune returns the glyph for a document byte. Columns are bytes,
// so anything that is not printable ASCII is shown as a placeholder to keep
// every byte in its own cell.
func displayRune(b byte) rune {
	switch {
	case b == '\t':
		return ' '
	case b < 0x20 || b >= 0x7f:
		return '?'
	default:
		return rune(b)
	}
}
