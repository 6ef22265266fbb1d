// Package crosseval solves instances under both criteria and scores each
// labeling under both criteria, so the two objectives can be compared on the
// same data.
//
// For every (file, K) pair it produces four numbers:
//
//	medoids_on_medoids  medoids labeling, squared-distance cost
//	medoids_on_median   medoids labeling, distance cost
//	median_on_medoids   median labeling, squared-distance cost
//	median_on_median    median labeling, distance cost
//
// A labeling scores best on its own criterion, so both ratios in Ratios are
// >= 1 up to rounding.
package crosseval

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/paretodp/cost"
	"github.com/katalvlaran/paretodp/dp"
	"github.com/katalvlaran/paretodp/logging"
	"github.com/katalvlaran/paretodp/pointset"
	"github.com/katalvlaran/paretodp/verify"
)

// DefaultClusterCounts are the K values evaluated when none are given.
var DefaultClusterCounts = []int{2, 3, 4, 5}

// Options configures Run.
type Options struct {
	// Engine is passed to every dp.Engine.
	Engine dp.Options

	// Concurrency bounds the instances solved at the same time; <= 0 means 1.
	Concurrency int

	// Logger receives per-instance progress; nil discards it.
	Logger *logging.Logger
}

// Result is one row of the benchmark.
type Result struct {
	Instance         string  `csv:"instance"`
	N                int     `csv:"N"`
	K                int     `csv:"K"`
	MedoidsOnMedoids float64 `csv:"medoids_on_medoids"`
	MedoidsOnMedian  float64 `csv:"medoids_on_median"`
	MedianOnMedoids  float64 `csv:"median_on_medoids"`
	MedianOnMedian   float64 `csv:"median_on_median"`
}

// Ratios returns median_on_medoids / medoids_on_medoids and
// medoids_on_median / median_on_median. A zero denominator yields NaN or
// +Inf, as with plain division.
func (r Result) Ratios() (onMedoids, onMedian float64) {
	return r.MedianOnMedoids / r.MedoidsOnMedoids, r.MedoidsOnMedian / r.MedianOnMedian
}

// Instances lists the *.txt files of dir in lexical order.
func Instances(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("crosseval: %w", err)
	}
	var out []string
	for _, ent := range entries {
		if !ent.IsDir() && filepath.Ext(ent.Name()) == ".txt" {
			out = append(out, filepath.Join(dir, ent.Name()))
		}
	}
	sort.Strings(out)

	return out, nil
}

// Run evaluates every instance for every K. Failures of one (file, K) pair
// are collected and do not stop the others. Results keep file-major, then K,
// order regardless of Concurrency.
func Run(instances []string, ks []int, opts Options) ([]Result, []error) {
	if len(ks) == 0 {
		ks = DefaultClusterCounts
	}
	log := logging.OrNoop(opts.Logger)

	type slot struct {
		res Result
		err error
		ok  bool
	}
	slots := make([]slot, len(instances)*len(ks))

	var g errgroup.Group
	g.SetLimit(max(opts.Concurrency, 1))
	for fi, file := range instances {
		g.Go(func() error {
			flog := log.WithFile(file)
			ps, err := pointset.Import(file)
			for ki, k := range ks {
				s := &slots[fi*len(ks)+ki]
				if err != nil {
					if ki == 0 {
						s.err = err
						flog.Warn("import failed", "error", err)
					}
					continue
				}
				s.res, s.err = evaluate(file, ps, k, opts.Engine)
				s.ok = s.err == nil
				if s.err != nil {
					flog.WithK(k).Warn("instance failed", "error", s.err)
				} else {
					flog.WithK(k).Info("instance evaluated")
				}
			}

			return nil
		})
	}
	_ = g.Wait()

	var (
		results []Result
		errs    []error
	)
	for _, s := range slots {
		if s.ok {
			results = append(results, s.res)
		} else if s.err != nil {
			errs = append(errs, s.err)
		}
	}

	return results, errs
}

// evaluate solves one (instance, K) pair with both criteria.
func evaluate(file string, ps *pointset.PointSet, k int, opts dp.Options) (Result, error) {
	labels := make(map[cost.Criterion]*dp.Engine, 2)
	for _, c := range []cost.Criterion{cost.Medoids, cost.Median} {
		e := dp.New(c, opts)
		e.SetPoints(ps.Clone())
		e.SetClusterCount(k)
		if err := e.Solve(); err != nil {
			return Result{}, fmt.Errorf("crosseval: %s K=%d %s: %w", filepath.Base(file), k, c, err)
		}
		labels[c] = e
	}

	score := func(of, on cost.Criterion) (float64, error) {
		e := labels[of]
		return verify.Cost(e.Points(), e.ClusterAssignment(), on)
	}
	r := Result{
		Instance: strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)),
		N:        ps.N(),
		K:        k,
	}
	var err error
	if r.MedoidsOnMedoids, err = score(cost.Medoids, cost.Medoids); err != nil {
		return Result{}, err
	}
	if r.MedoidsOnMedian, err = score(cost.Medoids, cost.Median); err != nil {
		return Result{}, err
	}
	if r.MedianOnMedoids, err = score(cost.Median, cost.Medoids); err != nil {
		return Result{}, err
	}
	if r.MedianOnMedian, err = score(cost.Median, cost.Median); err != nil {
		return Result{}, err
	}

	return r, nil
}

// csvRow adds the two ratio columns to a Result.
type csvRow struct {
	Result
	RatioOnMedoids float64 `csv:"ratio_medoids_median_on_medoids"`
	RatioOnMedian  float64 `csv:"ratio_median_medoids_on_median"`
}

// WriteCSV writes the results with their ratios.
func WriteCSV(w io.Writer, results []Result) error {
	rows := make([]csvRow, len(results))
	for i, r := range results {
		a, b := r.Ratios()
		rows[i] = csvRow{Result: r, RatioOnMedoids: a, RatioOnMedian: b}
	}

	return gocsv.Marshal(&rows, w)
}

// Summary is the mean of both ratios over the results sharing N.
type Summary struct {
	N              int
	Instances      int
	RatioOnMedoids float64
	RatioOnMedian  float64
}

// SummaryByN groups results by N, ascending.
func SummaryByN(results []Result) []Summary {
	byN := make(map[int][]Result)
	for _, r := range results {
		byN[r.N] = append(byN[r.N], r)
	}
	ns := make([]int, 0, len(byN))
	for n := range byN {
		ns = append(ns, n)
	}
	slices.Sort(ns)

	out := make([]Summary, 0, len(ns))
	for _, n := range ns {
		group := byN[n]
		a := make([]float64, len(group))
		b := make([]float64, len(group))
		for i, r := range group {
			a[i], b[i] = r.Ratios()
		}
		out = append(out, Summary{
			N:              n,
			Instances:      len(group),
			RatioOnMedoids: stat.Mean(a, nil),
			RatioOnMedian:  stat.Mean(b, nil),
		})
	}

	return out
}

// WriteSummary prints SummaryByN as plain text.
func WriteSummary(w io.Writer, results []Result) error {
	for _, s := range SummaryByN(results) {
		if _, err := fmt.Fprintf(w, "N=%d (%d results): median/medoids on medoids %.3f, medoids/median on median %.3f\n",
			s.N, s.Instances, s.RatioOnMedoids, s.RatioOnMedian); err != nil {
			return err
		}
	}

	return nil
}
