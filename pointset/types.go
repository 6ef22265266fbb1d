package pointset

import "errors"

var (
	// ErrFormat indicates malformed or incomplete point data: non-positive
	// point/dimension counts, non-numeric tokens, or fewer than N·D coordinates.
	ErrFormat = errors.New("pointset: malformed point data")

	// ErrOutOfRange indicates a point index, dimension or label outside bounds.
	ErrOutOfRange = errors.New("pointset: index out of range")
)

// Unassigned is the label of a point that belongs to no cluster yet.
const Unassigned = 0

// PointSet owns the coordinate buffer and the cluster-assignment buffer.
//
// Invariants:
//   - len(coords) == n*d, len(labels) == n, len(perm) == n.
//   - perm[i] is the input-order index of the point now stored at position i.
type PointSet struct {
	n, d   int
	coords []float64
	labels []int
	perm   []int
	sorted bool
}
