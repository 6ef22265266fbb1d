package export

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/paretodp/dp"
	"github.com/katalvlaran/paretodp/pointset"
)

// ErrNoSolution is returned when an engine has no finalized result to save.
var ErrNoSolution = errors.New("export: no solution to export")

// assignmentRow is one line of the assignments file.
type assignmentRow struct {
	PointID   int    `csv:"point_id"`
	X         string `csv:"x"`
	Y         string `csv:"y"`
	ClusterID int    `csv:"cluster_id"`
}

// frontRow is one line of the Pareto front file.
type frontRow struct {
	K    int    `csv:"k"`
	Cost string `csv:"cost"`
}

// formatCoord renders a coordinate with fixed six decimals.
func formatCoord(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

// formatCost renders a cost, with +Inf as "inf".
func formatCost(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}

	return strconv.FormatFloat(v, 'f', 6, 64)
}

func row(ps *pointset.PointSet, pos, id, label int) assignmentRow {
	p := ps.Point(pos)
	r := assignmentRow{PointID: id, X: formatCoord(p[0]), ClusterID: label}
	if len(p) > 1 {
		r.Y = formatCoord(p[1])
	}

	return r
}

// WriteAssignments writes one row per point of ps in its current order;
// point_id is the position in that order.
func WriteAssignments(w io.Writer, ps *pointset.PointSet, labels []int) error {
	if len(labels) != ps.N() {
		return fmt.Errorf("export: %d labels for %d points", len(labels), ps.N())
	}
	rows := make([]assignmentRow, ps.N())
	for i := range rows {
		rows[i] = row(ps, i, i, labels[i])
	}

	return gocsv.Marshal(&rows, w)
}

// WriteAssignmentsInputOrder writes the rows in the order of the input file,
// with point_id set to the input index and the labels ps currently carries.
func WriteAssignmentsInputOrder(w io.Writer, ps *pointset.PointSet) error {
	rows := make([]assignmentRow, ps.N())
	for i := 0; i < ps.N(); i++ {
		orig := ps.OriginalIndex(i)
		rows[orig] = row(ps, i, orig, ps.Label(i))
	}

	return gocsv.Marshal(&rows, w)
}

// WriteFront writes costs[k-1] as the optimum for k clusters.
func WriteFront(w io.Writer, costs []float64) error {
	rows := make([]frontRow, len(costs))
	for i, c := range costs {
		rows[i] = frontRow{K: i + 1, Cost: formatCost(c)}
	}

	return gocsv.Marshal(&rows, w)
}

// solved reports whether e holds a finalized, complete solution.
func solved(e *dp.Engine) bool {
	return e != nil && e.State() == dp.Finalized && e.Solution().Complete
}

// SaveAssignments writes e's assignment to path, creating parent directories.
// inputOrder selects WriteAssignmentsInputOrder over sorted order.
func SaveAssignments(path string, e *dp.Engine, inputOrder bool) error {
	if !solved(e) {
		return ErrNoSolution
	}

	return writeFile(path, func(w io.Writer) error {
		if inputOrder {
			return WriteAssignmentsInputOrder(w, e.Points())
		}

		return WriteAssignments(w, e.Points(), e.ClusterAssignment())
	})
}

// SaveFront writes e's Pareto front to path.
func SaveFront(path string, e *dp.Engine) error {
	front := e.ParetoFront()
	if front == nil {
		return ErrNoSolution
	}

	return writeFile(path, func(w io.Writer) error { return WriteFront(w, front) })
}

// DefaultPath maps an input file to results/<criterion>/<base>.csv.
func DefaultPath(input, criterion string) string {
	base := filepath.Base(input)
	for _, ext := range []string{".gz", ".zst"} {
		base = strings.TrimSuffix(base, ext)
	}
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".csv"

	return filepath.Join("results", criterion, base)
}

// writeFile creates path (and its directory) and runs write against it.
func writeFile(path string, write func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()

	if err = write(f); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}

	return nil
}
