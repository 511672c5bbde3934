package engine

import (
	"errors"
	"testing"

	"github.com/dshills/az/internal/engine/search"
	"github.com/dshills/az/internal/input/mouse"
	"github.com/dshills/az/internal/renderer/layout"
	"github.com/google/go-cmp/cmp"
)

func newEditor(lines ...string) *Editor {
	return New(WithLines(lines))
}

func assertLines(t *testing.T, e *Editor, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, e.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func assertCursor(t *testing.T, e *Editor, row, col int) {
	t.Helper()
	if got := e.Cursor(); got != (Point{Row: row, Col: col}) {
		t.Errorf("Cursor() = %v, want (%d:%d)", got, row, col)
	}
}

func assertStatus(t *testing.T, e *Editor, want string) {
	t.Helper()
	got, ok := e.Status()
	if !ok || got != want {
		t.Errorf("Status() = %q (visible %v), want %q", got, ok, want)
	}
}

type recordingSink struct {
	texts []string
	err   error
}

func (r *recordingSink) WriteAll(text string) error {
	r.texts = append(r.texts, text)
	return r.err
}

// ============================================================================
// Basic Operations
// ============================================================================

func TestNew(t *testing.T) {
	e := New()

	assertLines(t, e, "")
	assertCursor(t, e, 0, 0)
	if e.Modified() {
		t.Error("new editor should not be modified")
	}
	if e.HasSelection() {
		t.Error("new editor should have no selection")
	}
}

func TestLoadResetsState(t *testing.T) {
	e := newEditor("old")
	e.End()
	_ = e.InsertChar('!')

	e.Load([]string{"new", "content"})

	assertLines(t, e, "new", "content")
	assertCursor(t, e, 0, 0)
	if e.Modified() || e.UndoCount() != 0 {
		t.Errorf("Load left modified=%v undo=%d", e.Modified(), e.UndoCount())
	}
}

func TestModifiedTracking(t *testing.T) {
	e := newEditor("abc")

	_ = e.InsertChar('x')
	if !e.Modified() {
		t.Fatal("edit should mark the document modified")
	}
	e.MarkSaved()
	if e.Modified() {
		t.Fatal("MarkSaved should clear the flag")
	}
	_ = e.Undo()
	if !e.Modified() {
		t.Error("undo should mark the document modified")
	}
}

func TestReadOnly(t *testing.T) {
	e := New(WithLines([]string{"abc"}), WithReadOnly())

	if err := e.InsertChar('x'); !errors.Is(err, ErrReadOnly) {
		t.Errorf("InsertChar() error = %v, want ErrReadOnly", err)
	}
	if err := e.InsertNewline(); !errors.Is(err, ErrReadOnly) {
		t.Errorf("InsertNewline() error = %v, want ErrReadOnly", err)
	}
	assertLines(t, e, "abc")
	assertStatus(t, e, "Read-only")
}

// ============================================================================
// Typing and Deletion
// ============================================================================

func TestInsertChar(t *testing.T) {
	e := newEditor("ac")
	e.Move(0, 1)

	if err := e.InsertChar('b'); err != nil {
		t.Fatalf("InsertChar() error = %v", err)
	}

	assertLines(t, e, "abc")
	assertCursor(t, e, 0, 2)
	if e.PreferredColumn() != 2 {
		t.Errorf("PreferredColumn() = %d, want 2", e.PreferredColumn())
	}
}

func TestInsertCharReplacesSelection(t *testing.T) {
	e := newEditor("hello world")
	e.Select(Point{Row: 0, Col: 0}, Point{Row: 0, Col: 5})

	_ = e.InsertChar('X')

	assertLines(t, e, "X world")
	assertCursor(t, e, 0, 1)
	if e.HasSelection() {
		t.Error("typing should consume the selection")
	}
}

func TestInsertNewline(t *testing.T) {
	e := newEditor("hello world")
	e.MoveTo(Point{Row: 0, Col: 5})

	_ = e.InsertNewline()

	assertLines(t, e, "hello", " world")
	assertCursor(t, e, 1, 0)

	// A newline byte typed through InsertChar splits as well
	_ = e.InsertChar('\n')
	assertLines(t, e, "hello", "", " world")
}

func TestInsertTab(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"default", nil, "    x"},
		{"custom size", []Option{WithTabSize(2)}, "  x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(append(tt.opts, WithLines([]string{"x"}))...)
			_ = e.InsertTab()
			assertLines(t, e, tt.want)
			assertCursor(t, e, 0, len(tt.want)-1)
		})
	}
}

func TestBackspace(t *testing.T) {
	e := newEditor("ab", "cd")

	e.MoveTo(Point{Row: 1, Col: 1})
	_ = e.Backspace()
	assertLines(t, e, "ab", "d")
	assertCursor(t, e, 1, 0)

	_ = e.Backspace()
	assertLines(t, e, "abd")
	assertCursor(t, e, 0, 2)
}

func TestBackspaceAtDocumentStart(t *testing.T) {
	e := newEditor("abc")

	if err := e.Backspace(); err != nil {
		t.Fatalf("Backspace() error = %v", err)
	}
	assertLines(t, e, "abc")
	if e.UndoCount() != 0 || e.Modified() {
		t.Errorf("no-op backspace left undo=%d modified=%v", e.UndoCount(), e.Modified())
	}
}

func TestDeleteChar(t *testing.T) {
	e := newEditor("ab", "cd")

	e.MoveTo(Point{Row: 0, Col: 1})
	_ = e.DeleteChar()
	assertLines(t, e, "a", "cd")

	_ = e.DeleteChar()
	assertLines(t, e, "acd")
	assertCursor(t, e, 0, 1)

	e.End()
	_ = e.DeleteChar()
	assertLines(t, e, "acd")
}

func TestDeleteSelection(t *testing.T) {
	tests := []struct {
		name         string
		lines        []string
		anchor, head Point
		want         []string
		cursor       Point
	}{
		{
			name:   "single row",
			lines:  []string{"hello world"},
			anchor: Point{Row: 0, Col: 2}, head: Point{Row: 0, Col: 7},
			want:   []string{"heorld"},
			cursor: Point{Row: 0, Col: 2},
		},
		{
			name:   "multi row backward",
			lines:  []string{"abc", "mid", "def"},
			anchor: Point{Row: 2, Col: 2}, head: Point{Row: 0, Col: 1},
			want:   []string{"af"},
			cursor: Point{Row: 0, Col: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEditor(tt.lines...)
			e.Select(tt.anchor, tt.head)

			_ = e.DeleteSelection()

			assertLines(t, e, tt.want...)
			if e.Cursor() != tt.cursor {
				t.Errorf("Cursor() = %v, want %v", e.Cursor(), tt.cursor)
			}
			if e.HasSelection() {
				t.Error("selection should be cleared")
			}
		})
	}
}

func TestDeleteSelectionWithoutSelection(t *testing.T) {
	e := newEditor("abc")

	_ = e.DeleteSelection()

	assertLines(t, e, "abc")
	if e.UndoCount() != 0 {
		t.Error("no-op delete should not checkpoint")
	}
}

func TestSelectAllDeleteLeavesOneLine(t *testing.T) {
	e := newEditor("first", "second", "third")

	e.SelectAll()
	assertStatus(t, e, "All selected")
	sel := e.Selection()
	if sel.Anchor != (Point{}) || sel.Head != (Point{Row: 2, Col: 5}) {
		t.Errorf("SelectAll() = %v", sel)
	}

	_ = e.DeleteSelection()
	assertLines(t, e, "")
	assertCursor(t, e, 0, 0)
}

// ============================================================================
// Cursor Movement
// ============================================================================

func TestMoveVerticalKeepsPreferredColumn(t *testing.T) {
	e := newEditor("long line", "ab", "another long")
	e.MoveTo(Point{Row: 0, Col: 7})

	e.Move(1, 0)
	assertCursor(t, e, 1, 2)
	e.Move(1, 0)
	assertCursor(t, e, 2, 7)
	e.Move(1, 0)
	assertCursor(t, e, 2, 7)
}

func TestMoveHorizontalWraps(t *testing.T) {
	e := newEditor("ab", "cd")

	e.MoveTo(Point{Row: 1, Col: 0})
	e.Move(0, -1)
	assertCursor(t, e, 0, 2)

	e.Move(0, 1)
	assertCursor(t, e, 1, 0)
}

func TestMoveClearsSelection(t *testing.T) {
	e := newEditor("abc")
	e.SelectAll()

	e.Move(0, 1)

	if e.HasSelection() {
		t.Error("cursor move should clear the selection")
	}
}

func TestHomeEnd(t *testing.T) {
	e := newEditor("hello", "x")
	e.End()
	assertCursor(t, e, 0, 5)
	e.Move(1, 0)
	assertCursor(t, e, 1, 1)
	e.Home()
	assertCursor(t, e, 1, 0)
}

func TestScrollFollowsCursor(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "line"
	}
	e := New(WithLines(lines), WithViewport(16, 6))

	for i := 0; i < 5; i++ {
		e.Move(1, 0)
	}
	if e.TopLine() != 2 {
		t.Errorf("TopLine() = %d, want 2", e.TopLine())
	}

	e.PageDown()
	assertCursor(t, e, 9, 0)
	if e.TopLine() != 6 {
		t.Errorf("after PageDown TopLine() = %d, want 6", e.TopLine())
	}

	e.PageUp()
	assertCursor(t, e, 5, 0)
	if e.TopLine() != 2 {
		t.Errorf("after PageUp TopLine() = %d, want 2", e.TopLine())
	}
}

// ============================================================================
// Clipboard
// ============================================================================

func TestCopyWithoutSelection(t *testing.T) {
	e := newEditor("abc")

	if err := e.Copy(); !errors.Is(err, ErrNothingToCopy) {
		t.Errorf("Copy() error = %v, want ErrNothingToCopy", err)
	}
	assertStatus(t, e, "Select text first")
}

func TestCopy(t *testing.T) {
	sink := &recordingSink{}
	e := New(WithLines([]string{"abc", "mid", "def"}), WithSystemClipboard(sink))
	e.Select(Point{Row: 0, Col: 1}, Point{Row: 2, Col: 2})

	if err := e.Copy(); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}

	if diff := cmp.Diff([]string{"bc", "mid", "de"}, e.ClipboardFragments()); diff != "" {
		t.Errorf("clipboard mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"bc\nmid\nde"}, sink.texts); diff != "" {
		t.Errorf("system clipboard mismatch (-want +got):\n%s", diff)
	}
	assertLines(t, e, "abc", "mid", "def")
	assertStatus(t, e, "Copied: 3 line(s)")
	if !e.HasSelection() {
		t.Error("copy should keep the selection")
	}
}

func TestCopyMirrorFailureIsSilent(t *testing.T) {
	sink := &recordingSink{err: errors.New("no display")}
	e := New(WithLines([]string{"abc"}), WithSystemClipboard(sink))
	e.SelectAll()

	if err := e.Copy(); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if diff := cmp.Diff([]string{"abc"}, e.ClipboardFragments()); diff != "" {
		t.Errorf("clipboard mismatch (-want +got):\n%s", diff)
	}
}

func TestCut(t *testing.T) {
	e := newEditor("hello world")
	e.Select(Point{Row: 0, Col: 5}, Point{Row: 0, Col: 11})

	_ = e.Cut()

	assertLines(t, e, "hello")
	if diff := cmp.Diff([]string{" world"}, e.ClipboardFragments()); diff != "" {
		t.Errorf("clipboard mismatch (-want +got):\n%s", diff)
	}
}

func TestPasteEmpty(t *testing.T) {
	e := newEditor("abc")

	if err := e.Paste(); !errors.Is(err, ErrClipboardEmpty) {
		t.Errorf("Paste() error = %v, want ErrClipboardEmpty", err)
	}
	assertStatus(t, e, "Clipboard empty")
}

func TestPasteSingleFragment(t *testing.T) {
	e := newEditor("hello")
	e.Select(Point{Row: 0, Col: 1}, Point{Row: 0, Col: 3})
	_ = e.Copy()

	e.End()
	_ = e.Paste()

	assertLines(t, e, "helloel")
	assertCursor(t, e, 0, 7)
	assertStatus(t, e, "Pasted")
}

func TestPasteMultipleFragments(t *testing.T) {
	e := newEditor("ab", "cd")
	e.Select(Point{Row: 0, Col: 1}, Point{Row: 1, Col: 1})
	_ = e.Copy()

	e.MoveTo(Point{Row: 1, Col: 2})
	_ = e.Paste()

	assertLines(t, e, "ab", "cdb", "c")
	assertCursor(t, e, 2, 1)

	_ = e.Undo()
	assertLines(t, e, "ab", "cd")
	assertCursor(t, e, 1, 2)
}

func TestPasteReplacesSelection(t *testing.T) {
	e := newEditor("one two")
	e.Select(Point{Row: 0, Col: 0}, Point{Row: 0, Col: 3})
	_ = e.Copy()

	e.Select(Point{Row: 0, Col: 4}, Point{Row: 0, Col: 7})
	_ = e.Paste()

	assertLines(t, e, "one one")
}

// ============================================================================
// Cut Buffer
// ============================================================================

func TestCutToEndOfLine(t *testing.T) {
	e := newEditor("hello world")
	e.MoveTo(Point{Row: 0, Col: 5})

	_ = e.CutToEndOfLine()

	assertLines(t, e, "hello")
	assertCursor(t, e, 0, 5)
	assertStatus(t, e, "Line cut (Ctrl+U to paste)")
}

func TestCutToEndOfLineRemovesEmptyLine(t *testing.T) {
	e := newEditor("alpha", "beta", "gamma")
	e.MoveTo(Point{Row: 1, Col: 0})

	_ = e.CutToEndOfLine()

	assertLines(t, e, "alpha", "gamma")
	assertCursor(t, e, 0, 5)
}

func TestCutBufferAccumulatesAndPastes(t *testing.T) {
	e := newEditor("one", "two", "three")

	for i := 0; i < 3; i++ {
		_ = e.CutToEndOfLine()
	}
	assertLines(t, e, "")
	if e.CutBufferLen() != 3 {
		t.Fatalf("CutBufferLen() = %d, want 3", e.CutBufferLen())
	}

	if err := e.PasteCutBuffer(); err != nil {
		t.Fatalf("PasteCutBuffer() error = %v", err)
	}
	assertLines(t, e, "one", "two", "three")
	assertCursor(t, e, 2, 5)

	if err := e.PasteCutBuffer(); !errors.Is(err, ErrCutBufferEmpty) {
		t.Errorf("second PasteCutBuffer() error = %v, want ErrCutBufferEmpty", err)
	}
	assertStatus(t, e, "Cut buffer empty")
}

// ============================================================================
// Undo/Redo
// ============================================================================

func TestUndoGroupsTypingByWord(t *testing.T) {
	e := New()
	for _, ch := range []byte("ab cd") {
		_ = e.InsertChar(ch)
	}

	if e.UndoCount() != 2 {
		t.Fatalf("UndoCount() = %d, want 2", e.UndoCount())
	}

	_ = e.Undo()
	assertLines(t, e, "ab ")
	assertCursor(t, e, 0, 3)

	_ = e.Undo()
	assertLines(t, e, "")

	if err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
	}
	assertStatus(t, e, "Nothing to undo")
}

func TestUndoRestoresAfterStructuralEdits(t *testing.T) {
	e := newEditor("abcdef")
	e.MoveTo(Point{Row: 0, Col: 3})

	const n = 3
	for i := 0; i < n; i++ {
		_ = e.InsertNewline()
	}
	assertLines(t, e, "abc", "", "", "def")

	for i := 0; i < n; i++ {
		if err := e.Undo(); err != nil {
			t.Fatalf("Undo() #%d error = %v", i+1, err)
		}
	}
	assertLines(t, e, "abcdef")
	assertCursor(t, e, 0, 3)

	if err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() #%d error = %v, want ErrNothingToUndo", n+1, err)
	}
	assertLines(t, e, "abcdef")
}

func TestUndoClearsSelection(t *testing.T) {
	e := newEditor("abc")
	_ = e.InsertChar('x')
	e.SelectAll()

	_ = e.Undo()

	if e.HasSelection() {
		t.Error("undo should clear the selection")
	}
}

func TestRedo(t *testing.T) {
	e := newEditor("abc")
	_ = e.InsertNewline()

	_ = e.Undo()
	assertLines(t, e, "abc")

	if err := e.Redo(); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	assertLines(t, e, "", "abc")
	assertCursor(t, e, 1, 0)

	if err := e.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo() error = %v, want ErrNothingToRedo", err)
	}
	assertStatus(t, e, "Nothing to redo")
}

func TestEditClearsRedo(t *testing.T) {
	e := newEditor("abc")
	_ = e.InsertNewline()
	_ = e.Undo()

	_ = e.InsertChar('x')

	if e.RedoCount() != 0 {
		t.Errorf("RedoCount() = %d, want 0", e.RedoCount())
	}
}

func TestUndoDepthBound(t *testing.T) {
	e := New(WithUndoDepth(3))
	for i := 0; i < 5; i++ {
		_ = e.InsertNewline()
	}

	if e.UndoCount() != 3 {
		t.Errorf("UndoCount() = %d, want 3", e.UndoCount())
	}
}

// ============================================================================
// Search/Replace
// ============================================================================

func TestSearchWraps(t *testing.T) {
	e := newEditor("foo bar", "baz foo")

	steps := []struct {
		start, end Point
	}{
		{Point{Row: 0, Col: 0}, Point{Row: 0, Col: 3}},
		{Point{Row: 1, Col: 4}, Point{Row: 1, Col: 7}},
		{Point{Row: 0, Col: 0}, Point{Row: 0, Col: 3}},
	}

	for i, step := range steps {
		if err := e.Search("foo"); err != nil {
			t.Fatalf("Search() #%d error = %v", i+1, err)
		}
		lo, hi := e.Selection().Range()
		if !e.HasSelection() || lo != step.start || hi != step.end {
			t.Errorf("search #%d selected %v-%v, want %v-%v", i+1, lo, hi, step.start, step.end)
		}
		if e.Cursor() != step.end {
			t.Errorf("search #%d cursor = %v, want %v", i+1, e.Cursor(), step.end)
		}
		assertStatus(t, e, "Found: 2")
	}
}

func TestSearchDoesNotRematchCursorLine(t *testing.T) {
	e := newEditor("foo")

	if err := e.Search("foo"); err != nil {
		t.Fatalf("first Search() error = %v", err)
	}
	before := e.Selection()

	if err := e.Search("foo"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Search() error = %v, want ErrNotFound", err)
	}
	if e.Cursor() != (Point{Row: 0, Col: 3}) {
		t.Errorf("cursor = %v, want 0:3", e.Cursor())
	}
	if e.Selection() != before {
		t.Errorf("selection = %v, want unchanged %v", e.Selection(), before)
	}
	assertStatus(t, e, "Not found")
}

func TestSearchFailures(t *testing.T) {
	e := newEditor("abc")

	if err := e.Search(""); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("Search(\"\") error = %v", err)
	}
	assertStatus(t, e, "Search cancelled")

	if err := e.Search("zzz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Search(\"zzz\") error = %v", err)
	}
	assertStatus(t, e, "Not found")
}

func TestReplaceAll(t *testing.T) {
	e := newEditor("aXaXa")

	n, err := e.Replace("X", "YZ", search.ModeAll)
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Replace() = %d, want 2", n)
	}
	assertLines(t, e, "aYZaYZa")
	assertStatus(t, e, "Replaced: 2")

	_ = e.Undo()
	assertLines(t, e, "aXaXa")
}

func TestReplaceOne(t *testing.T) {
	e := newEditor("foo foo")
	e.MoveTo(Point{Row: 0, Col: 1})

	n, err := e.Replace("foo", "x", search.ModeOne)
	if err != nil || n != 1 {
		t.Fatalf("Replace() = %d, %v", n, err)
	}
	assertLines(t, e, "foo x")
	assertCursor(t, e, 0, 5)

	undo := e.UndoCount()
	if _, err := e.Replace("foo", "x", search.ModeOne); !errors.Is(err, ErrNotFound) {
		t.Errorf("Replace() past last match error = %v", err)
	}
	assertStatus(t, e, "Not found after cursor")
	if e.UndoCount() != undo {
		t.Error("failed replace should not checkpoint")
	}
}

func TestReplaceNotFound(t *testing.T) {
	e := newEditor("abc")

	if _, err := e.Replace("zzz", "y", search.ModeAll); !errors.Is(err, ErrNotFound) {
		t.Errorf("Replace() error = %v, want ErrNotFound", err)
	}
	if _, err := e.Replace("", "y", search.ModeAll); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("Replace() error = %v, want ErrEmptyQuery", err)
	}
	if e.UndoCount() != 0 {
		t.Errorf("UndoCount() = %d, want 0", e.UndoCount())
	}
}

func TestReplaceInvalidMode(t *testing.T) {
	e := newEditor("aXa")

	n, err := e.Replace("X", "Y", search.Mode(7))
	if !errors.Is(err, ErrInvalidMode) || n != 0 {
		t.Errorf("Replace() = %d, %v; want 0, ErrInvalidMode", n, err)
	}
	assertLines(t, e, "aXa")
	assertStatus(t, e, "Replace cancelled")
	if e.UndoCount() != 0 {
		t.Errorf("UndoCount() = %d, want 0", e.UndoCount())
	}
}

// ============================================================================
// Diagnostics
// ============================================================================

func TestDiagnostic(t *testing.T) {
	e := New(WithFilename("data.JSON"), WithLines([]string{`{"a": [1, 2}`}))

	d, ok := e.Diagnostic()
	if !ok {
		t.Fatal("expected a diagnostic")
	}
	if d.Line != 1 || d.Message != "Unclosed '[' - 1 open bracket(s)" {
		t.Errorf("Diagnostic() = %+v", d)
	}

	e.End()
	if !e.JumpToDiagnostic() {
		t.Fatal("JumpToDiagnostic() = false")
	}
	assertCursor(t, e, 0, 0)
	assertStatus(t, e, "Jumped to error line")
}

func TestDiagnosticClean(t *testing.T) {
	e := New(WithFilename("data.json"), WithLines([]string{`{"a": [1, 2]}`}))

	if d, ok := e.Diagnostic(); ok {
		t.Errorf("unexpected diagnostic %v", d)
	}
	if e.JumpToDiagnostic() {
		t.Error("JumpToDiagnostic() should fail without a diagnostic")
	}
}

// ============================================================================
// Screen Geometry and Mouse
// ============================================================================

func TestGeometry(t *testing.T) {
	e := New(WithLines([]string{"0123456789abcde", "x"}), WithViewport(16, 6))

	if e.TextWidth() != 10 || e.TextHeight() != 4 {
		t.Errorf("text area = %dx%d, want 10x4", e.TextWidth(), e.TextHeight())
	}
	if e.StatusRow() != 4 || e.HelpRow() != 5 {
		t.Errorf("StatusRow() = %d, HelpRow() = %d", e.StatusRow(), e.HelpRow())
	}

	e.MoveTo(Point{Row: 0, Col: 12})
	x, y, ok := e.CursorScreen()
	if !ok || x != 8 || y != 1 {
		t.Errorf("CursorScreen() = %d, %d, %v, want 8, 1, true", x, y, ok)
	}
}

func TestHitTest(t *testing.T) {
	e := New(WithLines([]string{"0123456789abcde", "x"}), WithViewport(16, 6))

	tests := []struct {
		name string
		pos  mouse.Position
		want mouse.Hit
	}{
		{"text", mouse.Position{X: 9, Y: 1}, mouse.Hit{Region: mouse.RegionText, Point: Point{Row: 0, Col: 13}}},
		{"text clamps to line", mouse.Position{X: 15, Y: 2}, mouse.Hit{Region: mouse.RegionText, Point: Point{Row: 1, Col: 1}}},
		{"below document", mouse.Position{X: 6, Y: 3}, mouse.Hit{Region: mouse.RegionText, Point: Point{Row: 1, Col: 0}}},
		{"gutter", mouse.Position{X: 2, Y: 2}, mouse.Hit{Region: mouse.RegionGutter, Point: Point{Row: 1, Col: 0}}},
		{"status", mouse.Position{X: 8, Y: 4}, mouse.Hit{Region: mouse.RegionStatus}},
		{"help", mouse.Position{X: 8, Y: 5}, mouse.Hit{Region: mouse.RegionHelp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, e.HitTest(tt.pos)); diff != "" {
				t.Errorf("HitTest() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMouseClickLeavesNoSelection(t *testing.T) {
	e := New(WithLines([]string{"hello world"}), WithViewport(40, 10))
	h := mouse.NewHandler(mouse.DefaultConfig())

	h.Handle(mouse.Event{Position: mouse.Position{X: 8, Y: 0}, Button: mouse.ButtonLeft, Action: mouse.ActionPress}, e)
	h.Handle(mouse.Event{Position: mouse.Position{X: 8, Y: 0}, Button: mouse.ButtonLeft, Action: mouse.ActionRelease}, e)

	assertCursor(t, e, 0, 2)
	if e.HasSelection() {
		t.Error("click should leave no selection")
	}
	if len(e.ClipboardFragments()) != 0 {
		t.Error("click should not copy")
	}
}

func TestMouseDragSelectsAndCopies(t *testing.T) {
	e := New(WithLines([]string{"hello world"}), WithViewport(40, 10))
	h := mouse.NewHandler(mouse.DefaultConfig())

	h.Handle(mouse.Event{Position: mouse.Position{X: 7, Y: 0}, Button: mouse.ButtonLeft, Action: mouse.ActionPress}, e)
	h.Handle(mouse.Event{Position: mouse.Position{X: 9, Y: 0}, Button: mouse.ButtonLeft, Action: mouse.ActionDrag}, e)
	h.Handle(mouse.Event{Position: mouse.Position{X: 10, Y: 0}, Button: mouse.ButtonLeft, Action: mouse.ActionRelease}, e)

	if !e.HasSelection() {
		t.Fatal("drag should leave an active selection")
	}
	lo, hi := e.Selection().Range()
	if lo != (Point{Row: 0, Col: 1}) || hi != (Point{Row: 0, Col: 4}) {
		t.Errorf("selection = %v-%v", lo, hi)
	}
	if diff := cmp.Diff([]string{"ell"}, e.ClipboardFragments()); diff != "" {
		t.Errorf("clipboard mismatch (-want +got):\n%s", diff)
	}
	assertStatus(t, e, "Copied (mouse selection)")
	assertCursor(t, e, 0, 1)
}

func TestMouseRightClickPastes(t *testing.T) {
	e := New(WithLines([]string{"ab", "cd"}), WithViewport(40, 10))
	e.Select(Point{Row: 0, Col: 0}, Point{Row: 0, Col: 2})
	_ = e.Copy()
	h := mouse.NewHandler(mouse.DefaultConfig())

	h.Handle(mouse.Event{Position: mouse.Position{X: 7, Y: 1}, Button: mouse.ButtonRight, Action: mouse.ActionPress}, e)

	assertLines(t, e, "ab", "cabd")
	assertCursor(t, e, 1, 3)
}

func TestVisibleRowsHighlights(t *testing.T) {
	e := New(WithFilename("x.json"), WithLines([]string{"{", "abc"}), WithViewport(40, 10))
	e.Select(Point{Row: 1, Col: 1}, Point{Row: 1, Col: 3})

	rows := e.VisibleRows()
	if len(rows) != 2 {
		t.Fatalf("VisibleRows() returned %d rows, want 2", len(rows))
	}
	if !rows[1].Has(layout.HighlightSelection, 1) || rows[1].Has(layout.HighlightSelection, 0) {
		t.Errorf("selection highlights = %+v", rows[1].Highlights)
	}
	// The unclosed brace is reported on the last line, which is highlighted whole
	if !rows[1].Has(layout.HighlightError, 0) || !rows[1].Has(layout.HighlightError, 2) {
		t.Errorf("error highlights = %+v", rows[1].Highlights)
	}
}

// ============================================================================
// Status Message
// ============================================================================

func TestStatusExpires(t *testing.T) {
	e := New()
	e.SetStatus("hello")

	for i := 0; i < DefaultStatusTTL; i++ {
		if _, ok := e.Status(); !ok {
			t.Fatalf("status hidden after %d redraws", i)
		}
		e.TickStatus()
	}
	if _, ok := e.Status(); ok {
		t.Error("status should expire")
	}
}
