package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/paretodp/config"
	"github.com/katalvlaran/paretodp/dp"
	"github.com/katalvlaran/paretodp/export"
	"github.com/katalvlaran/paretodp/verify"
)

type solveOpts struct {
	showTable bool
}

func newSolveCommand(a *app) *cobra.Command {
	opts := solveOpts{}
	d := config.Defaults()

	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Partition the points of FILE into K intervals and export the assignment",
		Long: `Sort the points of FILE on their first coordinate, compute the optimal
partition into K contiguous clusters and write point_id,x,y,cluster_id rows
to --out (default results/<criterion>/<name>.csv).

FILE holds N and D followed by N*D coordinates; .gz and .zst are decompressed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd.OutOrStdout(), args[0], opts)
		},
	}

	f := cmd.Flags()
	f.String(config.KeyCriterion, d.Criterion, "cost criterion: medoids or median")
	f.IntP(config.KeyClusters, "k", d.Clusters, "cluster count (0 = max(3, floor(sqrt(N))))")
	f.String(config.KeyOutput, d.Output, "assignment CSV path")
	f.Bool(config.KeyVerify, d.Verify, "recompute the cost from the labels and compare")
	f.Bool(config.KeyInputOrder, d.InputOrder, "write rows in input-file order")
	f.String(config.KeyReport, d.Report, "print a json or yaml report instead of the text summary")
	f.BoolVar(&opts.showTable, "show-table", false, "print the DP cost table")

	return cmd
}

func (a *app) runSolve(out io.Writer, file string, opts solveOpts) error {
	e, err := a.newEngine(file)
	if err != nil {
		return err
	}
	log := a.log.WithFile(file).WithCriterion(e.Criterion().String()).WithK(e.ClusterCount())

	solveErr := e.Solve()
	if opts.showTable {
		if t := e.Table(); t != nil {
			fmt.Fprint(out, t.String())
		}
	}

	report := export.NewReport(e, file)
	var verifyErr error
	if solveErr == nil && a.cfg.Verify {
		var verified float64
		verified, verifyErr = verify.Solution(e)
		report = report.WithVerified(verified)
	}
	if format := a.cfg.Report; format != "" {
		if err = export.WriteReport(out, report, format); err != nil {
			return err
		}
	} else {
		printSolution(out, e, report.Verified)
	}

	if solveErr != nil {
		if errors.Is(solveErr, dp.ErrPartitionInfeasible) {
			log.Warn("no complete partition; nothing exported")
		}
		return solveErr
	}
	if verifyErr != nil {
		return verifyErr
	}

	path := a.cfg.Output
	if path == "" {
		path = export.DefaultPath(file, e.Criterion().String())
	}
	if err = export.SaveAssignments(path, e, a.cfg.InputOrder); err != nil {
		return err
	}
	log.Info("assignment exported", "out", path)

	return nil
}

// printSolution writes a short human-readable summary.
func printSolution(out io.Writer, e *dp.Engine, verified *float64) {
	sol := e.Solution()
	fmt.Fprintf(out, "criterion: %s  N: %d  K: %d  status: %s\n",
		e.Criterion(), e.Points().N(), e.ClusterCount(), sol.Status)
	fmt.Fprintf(out, "cost: %.6f\n", sol.Cost)
	if verified != nil {
		fmt.Fprintf(out, "verified cost: %.6f\n", *verified)
	}
	for i, iv := range sol.Intervals {
		fmt.Fprintf(out, "  cluster %d: %v (%d points)\n", i+1, iv, iv.Len())
	}
	front := e.ParetoFront()
	if len(front) > 0 {
		parts := make([]string, len(front))
		for i, c := range front {
			parts[i] = fmt.Sprintf("%.6f", c)
		}
		fmt.Fprintf(out, "front: %s\n", strings.Join(parts, " | "))
	}
}
