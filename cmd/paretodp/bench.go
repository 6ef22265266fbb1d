package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/paretodp/config"
	"github.com/katalvlaran/paretodp/crosseval"
)

type benchOpts struct {
	ks  []int
	out string
}

func newBenchCommand(a *app) *cobra.Command {
	opts := benchOpts{}

	cmd := &cobra.Command{
		Use:   "bench DIR",
		Short: "Cross-evaluate medoids and median solutions on every *.txt file in DIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBench(cmd.OutOrStdout(), args[0], opts)
		},
	}

	f := cmd.Flags()
	f.IntSliceVarP(&opts.ks, "ks", "k", crosseval.DefaultClusterCounts, "cluster counts to evaluate")
	f.StringVar(&opts.out, "out", filepath.Join("results", "benchmark_cross_validation.csv"), "results CSV path")
	f.Int(config.KeyConcurrency, config.Defaults().Concurrency, "instances solved concurrently")

	return cmd
}

func (a *app) runBench(out io.Writer, dir string, opts benchOpts) error {
	files, err := crosseval.Instances(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("bench: no *.txt instances in %s", dir)
	}
	a.log.Info("benchmark started", "instances", len(files), "ks", opts.ks)

	results, errs := crosseval.Run(files, opts.ks, crosseval.Options{
		Engine:      a.engineOptions(),
		Concurrency: a.cfg.Concurrency,
		Logger:      a.log,
	})
	for _, err := range errs {
		fmt.Fprintf(out, "skipped: %v\n", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("bench: every instance failed: %w", errors.Join(errs...))
	}

	if err = os.MkdirAll(filepath.Dir(opts.out), 0o755); err != nil {
		return err
	}
	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	if err = crosseval.WriteCSV(f, results); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	a.log.Info("benchmark exported", "out", opts.out, "results", len(results), "failures", len(errs))

	return crosseval.WriteSummary(out, results)
}
