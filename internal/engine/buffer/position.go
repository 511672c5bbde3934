package buffer

import "fmt"

// Point represents a row and column position.
// Both Row and Col are 0-indexed.
// Col is measured in bytes from the start of the line.
type Point struct {
	Row int // 0-indexed line number
	Col int // 0-indexed byte offset within the line
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Points are ordered row-major.
func (p Point) Compare(other Point) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero point (0:0).
func (p Point) IsZero() bool {
	return p.Row == 0 && p.Col == 0
}

// Order returns a and b sorted so that the first is not after the second.
func Order(a, b Point) (Point, Point) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}
