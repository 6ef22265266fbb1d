package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/paretodp/config"
	"github.com/katalvlaran/paretodp/dp"
	"github.com/katalvlaran/paretodp/export"
)

func newFrontCommand(a *app) *cobra.Command {
	d := config.Defaults()

	cmd := &cobra.Command{
		Use:   "front FILE",
		Short: "Print the optimal cost for every cluster count 1..K",
		Long: `One solve with K clusters yields the optimum for every smaller count as
well; front prints them as k,cost rows (cost "inf" where k > N).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFront(cmd.OutOrStdout(), args[0])
		},
	}

	f := cmd.Flags()
	f.String(config.KeyCriterion, d.Criterion, "cost criterion: medoids or median")
	f.IntP(config.KeyClusters, "k", d.Clusters, "largest cluster count (0 = max(3, floor(sqrt(N))))")
	f.String(config.KeyOutput, d.Output, "also write the front as CSV to this path")

	return cmd
}

func (a *app) runFront(out io.Writer, file string) error {
	e, err := a.newEngine(file)
	if err != nil {
		return err
	}
	// K > N still fills the reachable part of the table.
	if err = e.Solve(); err != nil && e.State() < dp.MatrixFilled {
		return err
	} else if err != nil {
		a.log.Warn("front truncated", "error", err)
	}

	if err = export.WriteFront(out, e.ParetoFront()); err != nil {
		return fmt.Errorf("write front: %w", err)
	}
	if a.cfg.Output != "" {
		if err = export.SaveFront(a.cfg.Output, e); err != nil {
			return err
		}
		a.log.Info("front exported", "out", a.cfg.Output)
	}

	return nil
}
