// Package gridio reads and writes compressed grid map files (.grid.zst):
// a zstd frame holding a 12-byte header (magic "HPG1", little-endian uint32
// width and height) followed by one raw cell byte per grid cell, row-major.
//
// The format exists for tools and demo servers; the planning pipeline never
// touches files — grids are caller-owned, in-memory inputs.
//
// Errors:
//
//   - ErrBadMagic: the stream is not a hpath grid file.
//   - ErrTruncated: the stream ended before the declared cell count.
package gridio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/hpath/grid"
)

// Sentinel errors for map file decoding.
var (
	// ErrBadMagic indicates the stream does not start with the grid magic.
	ErrBadMagic = errors.New("gridio: not a hpath grid file")

	// ErrTruncated indicates the stream ended before the declared content.
	ErrTruncated = errors.New("gridio: truncated grid file")
)

// fileMagic opens every grid file; bump the digit on layout changes.
const fileMagic = "HPG1"

// maxCells caps declared dimensions so a corrupt header cannot drive a
// multi-gigabyte allocation before ErrTruncated would surface.
const maxCells = 1 << 28

// Write encodes g into w as one zstd frame.
func Write(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("gridio: %w", grid.ErrEmptyGrid)
	}

	bw := bufio.NewWriter(w)
	enc, err := zstd.NewWriter(bw, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("gridio: zstd writer: %w", err)
	}

	header := make([]byte, 12)
	copy(header, fileMagic)
	binary.LittleEndian.PutUint32(header[4:8], uint32(g.Width))
	binary.LittleEndian.PutUint32(header[8:12], uint32(g.Height))
	if _, err = enc.Write(header); err != nil {
		return fmt.Errorf("gridio: write header: %w", err)
	}

	cells := g.Cells()
	raw := make([]byte, len(cells))
	for i, c := range cells {
		raw[i] = byte(c)
	}
	if _, err = enc.Write(raw); err != nil {
		return fmt.Errorf("gridio: write cells: %w", err)
	}
	if err = enc.Close(); err != nil {
		return fmt.Errorf("gridio: close frame: %w", err)
	}

	return bw.Flush()
}

// Read decodes one grid from r.
func Read(r io.Reader) (*grid.Grid, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gridio: zstd reader: %w", err)
	}
	defer dec.Close()

	header := make([]byte, 12)
	if _, err = io.ReadFull(dec, header); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrTruncated, err)
	}
	if string(header[:4]) != fileMagic {
		return nil, ErrBadMagic
	}

	w := int(binary.LittleEndian.Uint32(header[4:8]))
	h := int(binary.LittleEndian.Uint32(header[8:12]))
	// Factor checks stay overflow-free: h is bounded by the quotient
	// instead of testing the product w*h, which a crafted header could
	// wrap past the int range.
	if w <= 0 || h <= 0 || w > maxCells || h > maxCells/w {
		return nil, fmt.Errorf("%w: implausible dimensions %d×%d", ErrBadMagic, w, h)
	}

	raw := make([]byte, w*h)
	if _, err = io.ReadFull(dec, raw); err != nil {
		return nil, fmt.Errorf("%w: cells: %v", ErrTruncated, err)
	}

	cells := make([]grid.Cell, len(raw))
	for i, b := range raw {
		cells[i] = grid.Cell(b)
	}

	return grid.FromCells(w, h, cells)
}

// WriteFile encodes g into the named file, creating or truncating it.
func WriteFile(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gridio: %w", err)
	}
	if err = Write(f, g); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// ReadFile decodes one grid from the named file.
func ReadFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: %w", err)
	}
	defer f.Close()

	return Read(f)
}
