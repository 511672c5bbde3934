package viewport

import (
	"strings"
	"testing"

	"github.com/dshills/az/internal/engine/buffer"
)

func lines(n int) *buffer.Buffer {
	out := make([]string, n)
	for i := range out {
		out[i] = "line"
	}
	return buffer.NewBufferFromLines(out)
}

func TestNewViewport(t *testing.T) {
	v := NewViewport(80, 24)

	if v.Width() != 80 {
		t.Errorf("expected width 80, got %d", v.Width())
	}
	if v.Height() != 24 {
		t.Errorf("expected height 24, got %d", v.Height())
	}
	if v.TopLine() != 0 {
		t.Errorf("expected top line 0, got %d", v.TopLine())
	}
}

func TestViewportResizeClamps(t *testing.T) {
	v := NewViewport(80, 24)
	v.Resize(0, -3)

	if v.Width() != 1 || v.Height() != 1 {
		t.Errorf("Resize(0, -3) gave %dx%d, want 1x1", v.Width(), v.Height())
	}
}

func TestViewportScrollBy(t *testing.T) {
	v := NewViewport(80, 10)

	v.ScrollBy(5, 20)
	if v.TopLine() != 5 {
		t.Errorf("expected top line 5, got %d", v.TopLine())
	}
	v.ScrollBy(100, 20)
	if v.TopLine() != 19 {
		t.Errorf("expected top line clamped to 19, got %d", v.TopLine())
	}
	v.ScrollBy(-100, 20)
	if v.TopLine() != 0 {
		t.Errorf("expected top line clamped to 0, got %d", v.TopLine())
	}
}

func TestViewportEnsureVisible(t *testing.T) {
	buf := lines(50)
	v := NewViewport(80, 10)

	tests := []struct {
		name string
		row  int
		top  int
	}{
		{"already visible", 5, 0},
		{"last visible row", 9, 0},
		{"one below", 10, 1},
		{"far below", 40, 31},
		{"above", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v.EnsureVisible(buf, buffer.Point{Row: tt.row})
			if v.TopLine() != tt.top {
				t.Errorf("TopLine() = %d, want %d", v.TopLine(), tt.top)
			}
			if tt.row < v.TopLine() || tt.row >= v.TopLine()+v.Height() {
				t.Errorf("row %d not in [%d, %d)", tt.row, v.TopLine(), v.TopLine()+v.Height())
			}
		})
	}
}

func TestViewportEnsureVisibleWrapped(t *testing.T) {
	long := strings.Repeat("x", 30)
	buf := buffer.NewBufferFromLines([]string{long, long, long, "end"})
	v := NewViewport(10, 5)

	// Each long line takes 3 rows, so line 1 starts at screen row 3 and
	// its second segment at row 4
	if v.EnsureVisible(buf, buffer.Point{Row: 1, Col: 12}) {
		t.Errorf("row 4 is visible, TopLine() = %d", v.TopLine())
	}

	v.EnsureVisible(buf, buffer.Point{Row: 1, Col: 25})
	if v.TopLine() != 1 {
		t.Errorf("TopLine() = %d, want 1", v.TopLine())
	}

	v.EnsureVisible(buf, buffer.Point{Row: 3, Col: 0})
	if v.TopLine() != 2 {
		t.Errorf("TopLine() = %d, want 2", v.TopLine())
	}
	if !v.IsLineVisible(buf, 3) {
		t.Error("line 3 should be visible")
	}
}

func TestViewportPaging(t *testing.T) {
	v := NewViewport(80, 10)

	row := v.PageDown(3, 25)
	if row != 13 || v.TopLine() != 10 {
		t.Errorf("PageDown() = %d top %d, want 13 top 10", row, v.TopLine())
	}

	row = v.PageDown(row, 25)
	if row != 23 || v.TopLine() != 20 {
		t.Errorf("PageDown() = %d top %d, want 23 top 20", row, v.TopLine())
	}

	row = v.PageDown(row, 25)
	if row != 24 || v.TopLine() != 24 {
		t.Errorf("PageDown() = %d top %d, want 24 top 24", row, v.TopLine())
	}

	row = v.PageUp(row, 25)
	if row != 14 || v.TopLine() != 14 {
		t.Errorf("PageUp() = %d top %d, want 14 top 14", row, v.TopLine())
	}

	row = v.PageUp(2, 25)
	if row != 0 || v.TopLine() != 4 {
		t.Errorf("PageUp() = %d top %d, want 0 top 4", row, v.TopLine())
	}
}
