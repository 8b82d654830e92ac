package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/incarcnet/config"
	"github.com/katalvlaran/incarcnet/logging"
	"github.com/katalvlaran/incarcnet/metrics"
	"github.com/katalvlaran/incarcnet/pipeline"
	"github.com/katalvlaran/incarcnet/record"
	"github.com/katalvlaran/incarcnet/stats"
)

// app carries state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	configPath string
	logLevel   string
	dev        bool

	cfg    *config.Config
	logger *zap.Logger
}

// runFlags are the pipeline overrides shared by analyze, graph and stats.
type runFlags struct {
	input       string
	outputDir   string
	k           int
	watch       bool
	metricsFile string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "incarcnet",
		Short:         "Network analysis of state incarceration and crime rates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.dev, "dev", false, "human-readable development logging")

	root.AddCommand(
		a.runCmd("analyze", "Run statistics, network analysis and export", pipeline.StageAll, true),
		a.runCmd("graph", "Build both graphs and export them", pipeline.StageExport, false),
		a.runCmd("stats", "Run the statistics only", pipeline.StageStats, false),
		a.compareCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("dev") {
		cfg.Log.Development = a.dev
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

func (a *app) runCmd(use, short string, stages pipeline.Stage, watchable bool) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.apply(cmd, a.cfg); err != nil {
				return err
			}
			return a.run(cmd, stages, f)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&f.input, "input", "", "input CSV (overrides config)")
	fs.StringVar(&f.outputDir, "output-dir", "", "directory for DOT and PNG files")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	if stages&pipeline.StageAnalysis != 0 {
		fs.IntVar(&f.k, "k", 0, "minimum degree for the k-filter")
	}
	if watchable {
		fs.BoolVar(&f.watch, "watch", false, "re-run whenever the input file changes")
	}

	return cmd
}

func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	if fs.Changed("input") {
		cfg.Input = f.input
	}
	if fs.Changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if fs.Changed("k") {
		cfg.Analysis.K = f.k
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}

	return cfg.Validate()
}

func (a *app) run(cmd *cobra.Command, stages pipeline.Stage, f *runFlags) error {
	ctx := cmd.Context()
	m := metrics.New()

	once := func(ctx context.Context) error {
		rep, err := pipeline.Run(ctx, a.cfg,
			pipeline.WithLogger(a.logger),
			pipeline.WithMetrics(m),
			pipeline.WithStages(stages),
		)
		if a.cfg.MetricsFile != "" {
			if merr := m.WriteTextfile(a.cfg.MetricsFile); merr != nil {
				a.logger.Warn("metrics not written", zap.Error(merr))
			}
		}
		if err != nil {
			return err
		}
		return rep.WriteText(cmd.OutOrStdout())
	}

	if err := once(ctx); err != nil && !f.watch {
		return err
	} else if err != nil {
		a.logger.Error("initial run failed", zap.Error(err))
	}
	if !f.watch {
		return nil
	}

	return pipeline.Watch(ctx, a.cfg.Input, pipeline.DefaultDebounce, a.logger, once)
}

func (a *app) compareCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two jurisdictions year by year with a t-test on incarceration rates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("input") {
				a.cfg.Input = input
			}
			ds, err := record.LoadFile(a.cfg.Input)
			if err != nil {
				return err
			}
			return writeComparison(cmd, ds.Records, args[0], args[1])
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "input CSV (overrides config)")

	return cmd
}

func writeComparison(cmd *cobra.Command, recs []record.Record, a, b string) error {
	pairs := record.Compare(recs, a, b)
	if len(pairs) == 0 {
		return fmt.Errorf("no records for %q or %q", a, b)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "year\t%s inc\t%s crime\t%s inc\t%s crime\n", a, a, b, b)
	cell := func(r *record.Record) (string, string) {
		if r == nil {
			return "-", "-"
		}
		return fmt.Sprintf("%.2f", r.IncarcerationRate), fmt.Sprintf("%.2f", r.CrimeRate)
	}
	for _, p := range pairs {
		ai, ac := cell(p.A)
		bi, bc := cell(p.B)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.Year, ai, ac, bi, bc)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	res, err := stats.TTest(
		record.IncarcerationRates(record.Filter(recs, a)),
		record.IncarcerationRates(record.Filter(recs, b)),
	)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "\nt-test unavailable: %v\n", err)
		return nil
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "\nt=%.4f p=%.4g df=%.0f significant(0.05)=%t\n",
		res.T, res.P, res.DF, res.Significant(0.05))

	return err
}
