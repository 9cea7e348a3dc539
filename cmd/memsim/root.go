package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/memsim/internal/logger"
	"github.com/joshuapare/memsim/internal/report"
	"github.com/joshuapare/memsim/internal/termwidth"
	"github.com/joshuapare/memsim/memory/alloc"
	"github.com/joshuapare/memsim/sim"
)

// rootOptions holds the flags of the root command.
type rootOptions struct {
	policies []string
	seed     int64
	requests int
	jsonOut  bool
	detail   bool
	dump     bool
	verbose  bool
	logFile  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "memsim",
		Short: "Simulate first-fit, best-fit and worst-fit memory allocation",
		Long: `memsim drives a random stream of allocation and deallocation requests
against a fixed pool of memory units, once per placement policy, and reports
the average search cost, the request denial rate and the leftover fragments.

With no flags it runs First Fit, Best Fit and Worst Fit in that order.

Example:
  memsim
  memsim --policy best --seed 42
  memsim --detail --dump
  memsim --json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = time.Now().UnixNano()
			}
			return runSimulate(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&opts.policies, "policy", "p", nil, "Policies to run: first, best, worst (default all)")
	flags.Int64Var(&opts.seed, "seed", 0, "Random seed (default: current time)")
	flags.IntVarP(&opts.requests, "requests", "n", sim.DefaultConfig().Requests, "Requests per policy run")
	flags.BoolVar(&opts.jsonOut, "json", false, "Output in JSON format")
	flags.BoolVar(&opts.detail, "detail", false, "Show a detailed report with pool statistics")
	flags.BoolVar(&opts.dump, "dump", false, "Print the final pool map of each run")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log every request to stderr")
	flags.StringVar(&opts.logFile, "log-file", "", "Append JSON logs to this file")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// printError prints an error message
func printError(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "Error: "+format, args...)
}

func runSimulate(stdout, stderr io.Writer, opts *rootOptions) error {
	policies, err := parsePolicies(opts.policies)
	if err != nil {
		return err
	}

	closeLog, err := logger.Init(logger.Options{
		Enabled: opts.verbose || opts.logFile != "",
		Writer:  stderr,
		LogFile: opts.logFile,
		Level:   logLevel(opts.verbose),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer closeLog()

	cfg := sim.DefaultConfig()
	cfg.Requests = opts.requests
	logger.Info("simulation starting", "seed", opts.seed, "policies", len(policies))

	rng := rand.New(rand.NewSource(opts.seed))
	results, err := sim.RunAll(cfg, rng, policies...)
	if err != nil {
		return err
	}

	switch {
	case opts.jsonOut:
		return report.WriteJSON(stdout, results, opts.dump)
	case opts.detail:
		err = report.WriteDetail(stdout, results)
	default:
		err = report.WriteText(stdout, results)
	}
	if err != nil || !opts.dump {
		return err
	}
	return report.WriteMap(stdout, results, mapWidth(stdout))
}

func parsePolicies(names []string) ([]alloc.Policy, error) {
	policies := make([]alloc.Policy, 0, len(names))
	for _, name := range names {
		p, err := alloc.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, nil
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// mapWidth sizes pool maps to the terminal when writing to one.
func mapWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		return termwidth.Columns(f)
	}
	return termwidth.Default
}
