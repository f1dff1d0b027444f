package gridio_test

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hpath/grid"
	"github.com/katalvlaran/hpath/gridio"
)

// TestRoundTrip verifies Write → Read reproduces the grid exactly.
func TestRoundTrip(t *testing.T) {
	g, err := grid.Parse([]string{
		"S..#......",
		"..#####...",
		"......#..G",
		"..........",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gridio.Write(&buf, g))

	got, err := gridio.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, g.Width, got.Width)
	require.Equal(t, g.Height, got.Height)
	require.Equal(t, g.Snapshot(), got.Snapshot())
}

// TestWriteNilGrid verifies the nil guard.
func TestWriteNilGrid(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, gridio.Write(&buf, nil), grid.ErrEmptyGrid)
}

// TestReadBadMagic verifies a well-formed zstd frame with foreign content
// is rejected at the header check.
func TestReadBadMagic(t *testing.T) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write([]byte("XXXX\x02\x00\x00\x00\x02\x00\x00\x00...."))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	_, err = gridio.Read(&buf)
	require.ErrorIs(t, err, gridio.ErrBadMagic)
}

// TestReadImplausibleDimensions verifies a header declaring absurd extents
// is rejected before allocation.
func TestReadImplausibleDimensions(t *testing.T) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	header := []byte("HPG1\xff\xff\xff\x7f\xff\xff\xff\x7f")
	_, err = enc.Write(header)
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	_, err = gridio.Read(&buf)
	require.ErrorIs(t, err, gridio.ErrBadMagic)
}

// TestReadOverflowingDimensions verifies a header whose width×height product
// wraps the int range is rejected instead of driving an impossible
// allocation.
func TestReadOverflowingDimensions(t *testing.T) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	header := make([]byte, 12)
	copy(header, "HPG1")
	binary.LittleEndian.PutUint32(header[4:8], 3_100_000_000)
	binary.LittleEndian.PutUint32(header[8:12], 3_100_000_000)
	_, err = enc.Write(header)
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	_, err = gridio.Read(&buf)
	require.ErrorIs(t, err, gridio.ErrBadMagic)
}

// TestReadTruncated verifies an empty stream reports ErrTruncated.
func TestReadTruncated(t *testing.T) {
	_, err := gridio.Read(bytes.NewReader(nil))
	require.ErrorIs(t, err, gridio.ErrTruncated)
}

// TestFileRoundTrip verifies the file-level helpers.
func TestFileRoundTrip(t *testing.T) {
	g, err := grid.Parse([]string{
		"....",
		".##.",
		"....",
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "room.grid.zst")
	require.NoError(t, gridio.WriteFile(path, g))

	got, err := gridio.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, g.Snapshot(), got.Snapshot())

	_, err = gridio.ReadFile(filepath.Join(t.TempDir(), "missing.grid.zst"))
	require.Error(t, err)
}
