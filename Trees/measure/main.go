// Package main provides measure, the benchmark harness comparing the ptree
// red-black tree with reference ordered containers and hash maps.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at link time.
var version = "devel"

func main() {
	rootCmd := &cobra.Command{
		Use:   "measure",
		Short: "Measure the ptree red-black tree against reference containers",
		Long: `Measure inserts, finds, iterates and removes seeded random elements in
every selected container and checks their content against google/btree.

Commands:
  run       Run the measurement
  version   Show version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(versionCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "measure %s\n", version)
		},
	}
}

// flag names bound to their config keys.
var flagKeys = map[string]string{
	"n":               "n",
	"seed":            "seed",
	"batch":           "batch",
	"containers":      "containers",
	"format":          "format",
	"output":          "output",
	"metrics-file":    "metrics_file",
	"log-level":       "log_level",
	"auto-grow-limit": "auto_grow_limit",
	"reserve":         "reserve",
}

func newRunCommand() *cobra.Command {
	var configPath string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the measurement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, configPath)
			if err != nil {
				return err
			}
			return runMeasure(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (default ./measure.yaml)")
	flags.Int("n", defaultN, "number of elements")
	flags.Int64("seed", defaultSeed, "random seed")
	flags.Int("batch", defaultBatch, "operations per latency sample")
	flags.StringSlice("containers", defaultContainers, "containers to measure")
	flags.StringP("format", "f", defaultFormat, "output format: table, yaml, json or plot")
	flags.StringP("output", "o", "", "output file (default stdout)")
	flags.String("metrics-file", "", "write latency histograms in the prometheus text format to this file")
	flags.String("log-level", defaultLevel, "log level: debug, info, warn or error")
	flags.Uint32("auto-grow-limit", 0, "most node slots one ptree insertion may allocate, 0 for unbounded")
	flags.Bool("reserve", false, "reserve the ptree arena for every element upfront")

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	return cmd
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	l, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

func runMeasure(ctx context.Context, cfg *Config, stdout, stderr io.Writer) (err error) {
	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	out := stdout
	if cfg.Output != "" {
		f, createErr := os.Create(cfg.Output)
		if createErr != nil {
			return fmt.Errorf("create output: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close output: %w", closeErr)
			}
		}()
		out = f
	}

	lat := newLatencies()
	rep, runErr := run(ctx, cfg, lat, logger)
	if rep != nil {
		if err := writeReport(out, cfg.Format, rep); err != nil {
			return err
		}
	}
	if cfg.MetricsFile != "" {
		if err := lat.write(cfg.MetricsFile); err != nil {
			return err
		}
		logger.Info("metrics written", "file", cfg.MetricsFile)
	}
	if runErr != nil {
		return runErr
	}
	if !rep.Coherent() {
		return ErrIncoherent
	}
	return nil
}
