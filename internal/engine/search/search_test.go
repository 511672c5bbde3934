package search

import (
	"errors"
	"testing"

	"github.com/dshills/az/internal/engine/buffer"
	"github.com/google/go-cmp/cmp"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		q     string
		want  int
	}{
		{"empty query", []string{"abc"}, "", 0},
		{"none", []string{"abc"}, "x", 0},
		{"across lines", []string{"foo bar", "baz foo"}, "foo", 2},
		{"overlapping", []string{"aaaa"}, "aa", 3},
		{"query longer than line", []string{"ab"}, "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromLines(tt.lines)
			if got := Count(buf, tt.q); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextWraps(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"foo bar", "baz foo"})

	m, err := Next(buf, "foo", buffer.Point{})
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if m != (Match{Row: 0, Start: 0, End: 3}) {
		t.Errorf("first Next() = %v, want row 0 col 0", m)
	}

	m, _ = Next(buf, "foo", m.EndPoint())
	if m != (Match{Row: 1, Start: 4, End: 7}) {
		t.Errorf("second Next() = %v, want row 1 col 4", m)
	}

	m, _ = Next(buf, "foo", m.EndPoint())
	if m != (Match{Row: 0, Start: 0, End: 3}) {
		t.Errorf("third Next() = %v, want wrap to row 0 col 0", m)
	}
}

func TestNextSkipsCursorLinePrefix(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		from  buffer.Point
	}{
		{"single match behind cursor", []string{"foo"}, buffer.Point{Row: 0, Col: 3}},
		{"two matches behind cursor", []string{"foo foo"}, buffer.Point{Row: 0, Col: 7}},
		{"other lines have none", []string{"bar", "xfoo", "baz"}, buffer.Point{Row: 1, Col: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromLines(tt.lines)
			if m, err := Next(buf, "foo", tt.from); !errors.Is(err, ErrNotFound) {
				t.Errorf("Next() = %v, %v; want ErrNotFound", m, err)
			}
		})
	}
}

func TestNextErrors(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"abc"})

	if _, err := Next(buf, "", buffer.Point{}); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("Next(\"\") error = %v, want ErrEmptyQuery", err)
	}
	if _, err := Next(buf, "zz", buffer.Point{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Next(zz) error = %v, want ErrNotFound", err)
	}
}

func TestReplaceAll(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		q, r  string
		want  []string
		n     int
	}{
		{"grows", []string{"aXaXa"}, "X", "YZ", []string{"aYZaYZa"}, 2},
		{"replacement contains query", []string{"aa"}, "a", "aa", []string{"aaaa"}, 2},
		{"shrinks", []string{"xxxx", "x"}, "xx", "y", []string{"yy", "x"}, 2},
		{"deletes", []string{"a-b-c"}, "-", "", []string{"abc"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buffer.NewBufferFromLines(tt.lines)
			n, err := ReplaceAll(buf, tt.q, tt.r)
			if err != nil {
				t.Fatalf("ReplaceAll() error = %v", err)
			}
			if n != tt.n {
				t.Errorf("ReplaceAll() = %d, want %d", n, tt.n)
			}
			if diff := cmp.Diff(tt.want, buf.Lines()); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReplaceAllNotFound(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"abc"})
	if _, err := ReplaceAll(buf, "q", "r"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReplaceAll() error = %v, want ErrNotFound", err)
	}
	if _, err := ReplaceAll(buf, "", "r"); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("ReplaceAll() error = %v, want ErrEmptyQuery", err)
	}
}

func TestReplaceOne(t *testing.T) {
	buf := buffer.NewBufferFromLines([]string{"cat cat cat", "cat"})

	m, err := ReplaceOne(buf, "cat", "dog", buffer.Point{Row: 0, Col: 2})
	if err != nil {
		t.Fatalf("ReplaceOne() error = %v", err)
	}
	if m != (Match{Row: 0, Start: 4, End: 7}) {
		t.Errorf("ReplaceOne() = %v", m)
	}
	if diff := cmp.Diff([]string{"cat dog cat", "cat"}, buf.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}

	if _, err := ReplaceOne(buf, "cat", "dog", buffer.Point{Row: 0, Col: 9}); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReplaceOne() past last match error = %v, want ErrNotFound", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   rune
		want Mode
		ok   bool
	}{
		{'a', ModeAll, true},
		{'A', ModeAll, true},
		{'1', ModeOne, true},
		{'x', 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseMode(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestModeValid(t *testing.T) {
	tests := []struct {
		mode Mode
		want bool
	}{
		{ModeAll, true},
		{ModeOne, true},
		{Mode(2), false},
		{Mode(-1), false},
	}
	for _, tt := range tests {
		if got := tt.mode.Valid(); got != tt.want {
			t.Errorf("Mode(%d).Valid() = %v, want %v", int(tt.mode), got, tt.want)
		}
	}
}

func TestFindOnRow(t *testing.T) {
	src := buffer.NewBufferFromLines([]string{"foo bar foo", "foo"})

	m, ok := FindOnRow(src, "foo", buffer.Point{Row: 0, Col: 1})
	if !ok || m != (Match{Row: 0, Start: 8, End: 11}) {
		t.Errorf("FindOnRow() = %v, %v", m, ok)
	}
	if _, ok := FindOnRow(src, "foo", buffer.Point{Row: 0, Col: 9}); ok {
		t.Error("FindOnRow should not look at later rows")
	}
	if _, ok := FindOnRow(src, "", buffer.Point{}); ok {
		t.Error("empty query should not match")
	}
}
