package pointset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compressed input suffixes recognised by Import.
const (
	suffixGzip = ".gz"
	suffixZstd = ".zst"

	// initialCoords caps the coordinate buffer preallocated from the header.
	initialCoords = 1 << 16
)

// Import reads a point file from path. Files ending in .gz or .zst are
// decompressed on the fly; the payload format is the same as for Read.
//
// Errors:
//   - a wrapped *os.PathError when the file cannot be opened;
//   - ErrFormat (wrapped with the path) when the content is malformed.
func Import(path string) (*PointSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pointset: open %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, suffixGzip):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("pointset: %q: gzip: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(path, suffixZstd):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("pointset: %q: zstd: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	ps, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("pointset: %q: %w", path, err)
	}

	return ps, nil
}

// Read parses whitespace-delimited numeric tokens: the first two are N and D
// (truncated to integers), followed by N·D coordinates in row-major point
// order. Tokens after the N·D-th coordinate are ignored.
func Read(r io.Reader) (*PointSet, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n, err := readCount(sc, "point count")
	if err != nil {
		return nil, err
	}
	d, err := readCount(sc, "dimension")
	if err != nil {
		return nil, err
	}
	if n > math.MaxInt32/d {
		return nil, fmt.Errorf("%w: N=%d D=%d is too large", ErrFormat, n, d)
	}

	want := n * d
	// The header is untrusted: grow with the data actually present.
	coords := make([]float64, 0, min(want, initialCoords))
	for len(coords) < want && sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: coordinate %d: %q is not a number", ErrFormat, len(coords), sc.Text())
		}
		coords = append(coords, v)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("pointset: read: %w", err)
	}
	if len(coords) < want {
		return nil, fmt.Errorf("%w: insufficient data, expected %d coordinates, got %d", ErrFormat, want, len(coords))
	}

	return newOwned(n, d, coords), nil
}

// readCount reads one header token and truncates it to a positive int.
func readCount(sc *bufio.Scanner, what string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("pointset: read: %w", err)
		}

		return 0, fmt.Errorf("%w: missing %s", ErrFormat, what)
	}
	v, err := strconv.ParseFloat(sc.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrFormat, what, sc.Text())
	}
	if math.IsNaN(v) || v < 1 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be positive, got %v", ErrFormat, what, v)
	}

	return int(v), nil
}
