package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rlaau/orst/bench"
	"github.com/rlaau/orst/kvdb"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stderr
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func newRootCmd() *cobra.Command {
	cfg := bench.DefaultConfig()
	var mode string
	var verbose bool

	cmd := &cobra.Command{
		Use:           "orst-bench",
		Short:         "Count comparisons made by in-place sorting algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.Mode = bench.Mode(mode)
			if cfg.RunID == "" {
				cfg.RunID = time.Now().UTC().Format("20060102T150405")
			}
			return runBench(cmd.Context(), cfg, newLogger(verbose))
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&cfg.Sizes, "sizes", cfg.Sizes, "input sizes to measure")
	f.IntVar(&cfg.Trials, "trials", cfg.Trials, "trials per size")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	f.StringVar(&mode, "mode", string(cfg.Mode), "between trials: shuffle or regenerate")
	f.BoolVar(&cfg.Distinct, "distinct", false, "generate distinct values only")
	f.StringSliceVar(&cfg.Algorithms, "algorithms", cfg.Algorithms, "algorithms to run")
	f.IntVar(&cfg.Workers, "workers", cfg.Workers, "sizes measured concurrently")
	f.StringVar(&cfg.Input, "input", "", "read values from this file instead of generating them")
	f.StringVar(&cfg.MarkdownPath, "markdown", "", "write a markdown report to this path")
	f.StringVar(&cfg.JSONPath, "json", "", "write JSON results to this path")
	f.StringVar(&cfg.StoreBackend, "store-backend", "", "persist results: bbolt, badger or pebble")
	f.StringVar(&cfg.StorePath, "store-path", "", "store file (bbolt) or directory")
	f.StringVar(&cfg.RunID, "run-id", "", "run id for the store (default: start time)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newGenCmd(), newShowCmd())
	return cmd
}

func runBench(ctx context.Context, cfg bench.Config, log *logrus.Logger) error {
	log.WithFields(logrus.Fields{
		"sizes":  cfg.Sizes,
		"trials": cfg.Trials,
		"mode":   cfg.Mode,
		"seed":   cfg.Seed,
	}).Info("benchmark start")

	start := time.Now()
	results, err := bench.Run(ctx, cfg, log)
	if err != nil {
		return err
	}
	if err := bench.WriteLines(os.Stdout, results); err != nil {
		return err
	}

	if cfg.MarkdownPath != "" {
		if err := writeFile(cfg.MarkdownPath, func(f *os.File) error {
			return bench.WriteMarkdown(f, results, time.Now())
		}); err != nil {
			return err
		}
		log.WithField("path", cfg.MarkdownPath).Info("markdown written")
	}
	if cfg.JSONPath != "" {
		if err := writeFile(cfg.JSONPath, func(f *os.File) error {
			return bench.WriteJSON(f, results)
		}); err != nil {
			return err
		}
		log.WithField("path", cfg.JSONPath).Info("json written")
	}
	if cfg.StoreBackend != "" {
		if err := saveRun(cfg, results); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"backend": cfg.StoreBackend, "run": cfg.RunID}).Info("results stored")
	}

	log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("benchmark done")
	return nil
}

func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

func openStore(backend, path string) (kvdb.Store, error) {
	b, err := kvdb.ParseBackend(backend)
	if err != nil {
		return nil, err
	}
	return kvdb.Open(b, path)
}

func saveRun(cfg bench.Config, results []bench.Result) error {
	store, err := openStore(cfg.StoreBackend, cfg.StorePath)
	if err != nil {
		return err
	}
	defer store.Close()

	info := bench.RunInfo{
		ID:      cfg.RunID,
		Created: time.Now().UTC(),
		Seed:    cfg.Seed,
		Mode:    cfg.Mode,
	}
	return bench.SaveResults(store, info, results)
}

func newGenCmd() *cobra.Command {
	var (
		size     int
		seed     int64
		distinct bool
		out      string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write random values to a data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size < 0 {
				return errors.Newf("size must not be negative, got %d", size)
			}
			data := bench.Generate(rand.New(rand.NewSource(seed)), size, distinct)
			return bench.WriteDataFile(out, data)
		},
	}
	cmd.Flags().IntVar(&size, "size", 100000, "number of values")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	cmd.Flags().BoolVar(&distinct, "distinct", false, "generate distinct values only")
	cmd.Flags().StringVarP(&out, "out", "o", "data.txt", "output file")
	return cmd
}

func newShowCmd() *cobra.Command {
	var backend, path string
	cmd := &cobra.Command{
		Use:   "show [run-id]",
		Short: "Print stored results, or list stored runs without a run id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(backend, path)
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 0 {
				runs, err := bench.ListRuns(store)
				if err != nil {
					return err
				}
				for _, r := range runs {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s seed=%d mode=%s results=%d\n",
						r.ID, r.Created.Format(time.RFC3339), r.Seed, r.Mode, r.Results)
				}
				return nil
			}

			_, results, err := bench.LoadResults(store, args[0])
			if err != nil {
				return err
			}
			return bench.WriteLines(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().StringVar(&backend, "store-backend", string(kvdb.Bbolt), "bbolt, badger or pebble")
	cmd.Flags().StringVar(&path, "store-path", "results.db", "store file (bbolt) or directory")
	return cmd
}
