package grid

import (
	"encoding/binary"
	"fmt"
)

// Grid is an immutable rectangular field of cell classifications.
// Width and Height define dimensions; cells are stored row-major and are
// deep-copied at construction, so the Grid never observes caller mutation
// and never mutates caller memory.
type Grid struct {
	Width, Height int
	cells         []Cell
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows or columns are missing,
// ErrNonRectangular if any row length differs,
// ErrBadCell if any value is outside the recognized Cell codes.
// Complexity: O(W×H) time and memory.
func New(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]Cell, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, c := range row {
			if c >= cellKinds {
				return nil, fmt.Errorf("%w: value %d at (%d,%d)", ErrBadCell, c, x, y)
			}
			cells = append(cells, c)
		}
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// FromCells constructs a Grid from a flat row-major cell slice.
// The slice is copied; len(cells) must equal width×height.
// Complexity: O(W×H).
func FromCells(width, height int, cells []Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for %d×%d", ErrNonRectangular, len(cells), width, height)
	}
	for i, c := range cells {
		if c >= cellKinds {
			return nil, fmt.Errorf("%w: value %d at index %d", ErrBadCell, c, i)
		}
	}
	cp := make([]Cell, len(cells))
	copy(cp, cells)

	return &Grid{Width: width, Height: height, cells: cp}, nil
}

// Parse builds a Grid from ASCII rows using the legend:
//
//	'.' → Walkable   '#' → Obstacle   'S' → Start   'G' → Goal
//
// Convenient for tests, map files and HTTP payloads.
// Complexity: O(W×H).
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	out := make([][]Cell, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d runes, want %d", ErrNonRectangular, y, len(row), w)
		}
		out[y] = make([]Cell, w)
		for x := 0; x < w; x++ {
			switch row[x] {
			case '.':
				out[y][x] = Walkable
			case '#':
				out[y][x] = Obstacle
			case 'S':
				out[y][x] = Start
			case 'G':
				out[y][x] = Goal
			default:
				return nil, fmt.Errorf("%w: rune %q at (%d,%d)", ErrBadCell, row[x], x, y)
			}
		}
	}

	return New(out)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the classification of cell (x,y). Callers must ensure bounds.
// Complexity: O(1).
func (g *Grid) At(x, y int) Cell { return g.cells[y*g.Width+x] }

// WalkableAt reports whether (x,y) is in bounds and traversable.
// Complexity: O(1).
func (g *Grid) WalkableAt(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.Width+x].Traversable()
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int { return y*g.Width + x }

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) { return idx % g.Width, idx / g.Width }

// Size returns the total cell count Width×Height.
func (g *Grid) Size() int { return g.Width * g.Height }

// WalkableCount returns the number of traversable cells.
// Complexity: O(W×H).
func (g *Grid) WalkableCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Traversable() {
			n++
		}
	}

	return n
}

// Snapshot returns a stable byte encoding of dimensions plus cell content,
// suitable as input to a content hash. The layout is
// uint32(Width) ‖ uint32(Height) ‖ cells (row-major, one byte each),
// all little-endian. Identical grids produce identical snapshots.
// Complexity: O(W×H).
func (g *Grid) Snapshot() []byte {
	buf := make([]byte, 8+len(g.cells))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(g.Width))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(g.Height))
	for i, c := range g.cells {
		buf[8+i] = byte(c)
	}

	return buf
}

// Cells returns a copy of the row-major cell slice.
// The copy keeps the Grid immutable while letting codecs serialize content.
// Complexity: O(W×H).
func (g *Grid) Cells() []Cell {
	cp := make([]Cell, len(g.cells))
	copy(cp, g.cells)

	return cp
}
