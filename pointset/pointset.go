package pointset

import (
	"fmt"
	"math"
)

// New builds a PointSet of n points in d dimensions from a row-major
// coordinate slice. coords is copied.
//
// Errors:
//   - ErrFormat when n<=0, d<=0 or len(coords) != n*d.
func New(n, d int, coords []float64) (*PointSet, error) {
	if n <= 0 || d <= 0 {
		return nil, fmt.Errorf("%w: need positive point and dimension counts, got N=%d D=%d", ErrFormat, n, d)
	}
	if len(coords) != n*d {
		return nil, fmt.Errorf("%w: expected %d coordinates, got %d", ErrFormat, n*d, len(coords))
	}
	buf := make([]float64, len(coords))
	copy(buf, coords)

	return newOwned(n, d, buf), nil
}

// FromPoints builds a PointSet from one slice per point. All points must have
// the same, non-zero dimension.
func FromPoints(points [][]float64) (*PointSet, error) {
	if len(points) == 0 || len(points[0]) == 0 {
		return nil, fmt.Errorf("%w: empty point list", ErrFormat)
	}
	n, d := len(points), len(points[0])
	buf := make([]float64, 0, n*d)
	for i, p := range points {
		if len(p) != d {
			return nil, fmt.Errorf("%w: point %d has dimension %d, want %d", ErrFormat, i, len(p), d)
		}
		buf = append(buf, p...)
	}

	return newOwned(n, d, buf), nil
}

// newOwned wraps buf without copying.
func newOwned(n, d int, buf []float64) *PointSet {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	return &PointSet{
		n:      n,
		d:      d,
		coords: buf,
		labels: make([]int, n),
		perm:   perm,
	}
}

// N returns the number of points.
func (ps *PointSet) N() int { return ps.n }

// D returns the dimension of every point.
func (ps *PointSet) D() int { return ps.d }

// Coord returns coordinate dim of point i without bounds checks beyond the
// runtime's own.
func (ps *PointSet) Coord(i, dim int) float64 {
	return ps.coords[i*ps.d+dim]
}

// Point returns the coordinates of point i as a sub-slice of the buffer.
// Callers must not modify it.
func (ps *PointSet) Point(i int) []float64 {
	return ps.coords[i*ps.d : (i+1)*ps.d : (i+1)*ps.d]
}

// Coords returns a copy of the row-major coordinate buffer.
func (ps *PointSet) Coords() []float64 {
	out := make([]float64, len(ps.coords))
	copy(out, ps.coords)

	return out
}

// SquaredDistance sums per-dimension squared differences between points i and j.
// Complexity: O(D).
func (ps *PointSet) SquaredDistance(i, j int) float64 {
	a, b := ps.coords[i*ps.d:(i+1)*ps.d], ps.coords[j*ps.d:(j+1)*ps.d]
	var sum float64
	for k := range a {
		diff := a[k] - b[k]
		sum += diff * diff
	}

	return sum
}

// Distance is the Euclidean distance sqrt(SquaredDistance(i, j)).
func (ps *PointSet) Distance(i, j int) float64 {
	return math.Sqrt(ps.SquaredDistance(i, j))
}

// Labels returns a copy of the label buffer (position i = sorted point i).
func (ps *PointSet) Labels() []int {
	out := make([]int, ps.n)
	copy(out, ps.labels)

	return out
}

// Label returns the cluster id of point i (Unassigned when none).
func (ps *PointSet) Label(i int) int { return ps.labels[i] }

// SetLabel assigns cluster id to point i.
//
// Errors:
//   - ErrOutOfRange when i is not a point index or id is negative.
func (ps *PointSet) SetLabel(i, id int) error {
	if i < 0 || i >= ps.n || id < 0 {
		return fmt.Errorf("pointset: SetLabel(%d,%d): %w", i, id, ErrOutOfRange)
	}
	ps.labels[i] = id

	return nil
}

// ResetLabels marks every point Unassigned.
func (ps *PointSet) ResetLabels() {
	for i := range ps.labels {
		ps.labels[i] = Unassigned
	}
}

// Clone returns an independent deep copy, including labels and permutation.
func (ps *PointSet) Clone() *PointSet {
	cp := &PointSet{
		n:      ps.n,
		d:      ps.d,
		coords: make([]float64, len(ps.coords)),
		labels: make([]int, len(ps.labels)),
		perm:   make([]int, len(ps.perm)),
		sorted: ps.sorted,
	}
	copy(cp.coords, ps.coords)
	copy(cp.labels, ps.labels)
	copy(cp.perm, ps.perm)

	return cp
}
