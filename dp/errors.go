package dp

import (
	"errors"

	"github.com/katalvlaran/paretodp/matrix"
	"github.com/katalvlaran/paretodp/pointset"
)

// Error taxonomy. FormatError and InvalidConfiguration abort immediately and
// are never retried. PartitionInfeasible leaves a partial Solution behind.
var (
	// ErrInvalidConfiguration indicates a solve was requested with no points
	// or a non-positive cluster count.
	ErrInvalidConfiguration = errors.New("dp: invalid configuration")

	// ErrPartitionInfeasible indicates that no complete K-interval partition
	// could be reconstructed (K > N, or backtracking hit a cell without a
	// finite split). Solution().Complete is false.
	ErrPartitionInfeasible = errors.New("dp: partition infeasible")

	// ErrDegenerate indicates a cost-table cell outside the filled region, or
	// a complete partition whose cost is not finite.
	ErrDegenerate = errors.New("dp: degenerate cost")
)

// ErrFormat is the malformed-input sentinel returned by Import.
var ErrFormat = pointset.ErrFormat

// ErrIndexOutOfRange marks a bound violation inside the engine. It signals a
// programming fault, never a user error.
var ErrIndexOutOfRange = matrix.ErrOutOfRange
