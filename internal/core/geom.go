// Package core provides fundamental types shared by the game logic and the
// terminal platform. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "fmt"

// Point is a grid coordinate or a displacement.
// X increases to the right, Y increases downward (screen coordinates).
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// IsZero reports whether p is the zero displacement.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// StepToward returns the displacement that moves p one cell closer to target
// on each axis independently. Diagonal steps are allowed.
func (p Point) StepToward(target Point) Point {
	return Point{X: Sign(target.X - p.X), Y: Sign(target.Y - p.Y)}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Sign returns -1, 0 or +1 according to the sign of v.
func Sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
