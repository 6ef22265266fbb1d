package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/paretodp/config"
	"github.com/katalvlaran/paretodp/dp"
	"github.com/katalvlaran/paretodp/logging"
	"github.com/katalvlaran/paretodp/metrics"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *logging.Logger
	reg     *prometheus.Registry
	rec     metrics.Recorder
	errOut  io.Writer
}

func newApp(errOut io.Writer) *app {
	return &app{v: config.New(), errOut: errOut, rec: metrics.Nop{}}
}

func newRootCommand(a *app, out io.Writer) *cobra.Command {
	d := config.Defaults()

	cmd := &cobra.Command{
		Use:          "paretodp",
		Short:        "Exact interval clustering by dynamic programming",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(a.errOut)

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.String(config.KeyLogLevel, d.LogLevel, "log level: trace, debug, info, warn, error")
	pf.String(config.KeyLogFormat, d.LogFormat, "log format: text or json")
	pf.Int(config.KeyWorkers, d.Workers, "goroutines per DP row (0 = all CPUs)")
	pf.Bool(config.KeyIncremental, d.Incremental, "incremental medoids cost evaluation")
	pf.String(config.KeyMetricsFile, d.MetricsFile, "write Prometheus metrics to this file on exit")

	cmd.AddCommand(
		newSolveCommand(a),
		newFrontCommand(a),
		newBenchCommand(a),
	)

	return cmd
}

// setup merges configuration and builds the logger and metrics sink.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = logging.New(a.errOut, cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	if cfg.MetricsFile != "" {
		a.reg = prometheus.NewRegistry()
		col, err := metrics.NewCollector(a.reg)
		if err != nil {
			return err
		}
		a.rec = col
	}
	a.log.Debug("configuration loaded", "config", a.v.ConfigFileUsed(), "workers", cfg.Workers)

	return nil
}

// flushMetrics writes the metrics file, if one is configured. It runs after
// every command, failed ones included.
func (a *app) flushMetrics() error {
	if a.reg == nil {
		return nil
	}
	if err := metrics.WriteTextfile(a.cfg.MetricsFile, a.reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.log.Debug("metrics written", "file", a.cfg.MetricsFile)

	return nil
}

// engineOptions maps the configuration to dp.Options.
func (a *app) engineOptions() dp.Options {
	opts := dp.DefaultOptions()
	opts.Workers = a.cfg.Workers
	opts.Incremental = a.cfg.Incremental
	opts.Logger = a.log
	opts.Recorder = a.rec

	return opts
}

// newEngine imports file and sets K from the configuration.
func (a *app) newEngine(file string) (*dp.Engine, error) {
	e := dp.New(a.cfg.CriterionValue(), a.engineOptions())
	if err := e.Import(file); err != nil {
		return nil, err
	}
	if a.cfg.Clusters > 0 {
		e.SetClusterCount(a.cfg.Clusters)
	} else {
		e.SetDefaultClusterCount()
	}

	return e, nil
}
