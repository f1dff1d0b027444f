// Package grid defines the cell model shared by all hpath stages:
// cell classifications, points, connectivity tables and sentinel errors.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrBadCell indicates a cell code or rune outside the recognized set.
	ErrBadCell = errors.New("grid: unrecognized cell classification")
)

// Cell classifies a single grid cell. The zero value is Walkable.
type Cell uint8

const (
	// Walkable cells can be stepped on.
	Walkable Cell = iota

	// Obstacle cells block movement.
	Obstacle

	// Start marks a query origin; traversable like Walkable.
	Start

	// Goal marks a query destination; traversable like Walkable.
	Goal

	// cellKinds bounds the valid Cell codes for validation.
	cellKinds
)

// Traversable reports whether the cell can be stepped on.
// Start and Goal are markers only; both count as walkable ground.
func (c Cell) Traversable() bool { return c != Obstacle }

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Equal reports coordinate equality.
func (p Point) Equal(q Point) bool { return p.X == q.X && p.Y == q.Y }

// String renders the point as "x,y", matching vertex-ID conventions.
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota

	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// conn4Offsets and conn8Offsets are the shared neighbor tables.
// In conn8Offsets every diagonal offset has both of its flanking cardinal
// offsets earlier in the table, which keeps corner checks branch-free.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{
		{0, -1}, {1, 0}, {0, 1}, {-1, 0},
		{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
	}
)

// Offsets returns the precomputed neighbor offset table for the given
// connectivity. Callers must treat the returned slice as read-only.
// Complexity: O(1).
func Offsets(c Connectivity) [][2]int {
	if c == Conn8 {
		return conn8Offsets
	}

	return conn4Offsets
}

// Diagonal reports whether the offset (dx, dy) is a diagonal step.
func Diagonal(dx, dy int) bool { return dx != 0 && dy != 0 }
