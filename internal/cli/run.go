package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/empiricalab/empirical/internal/algorithms"
	"github.com/empiricalab/empirical/internal/config"
	"github.com/empiricalab/empirical/internal/dataset"
	"github.com/empiricalab/empirical/internal/harness"
	"github.com/empiricalab/empirical/internal/render"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	ConfigPath string
	Start      int
	Stop       int
	Step       int
	Repeats    int
	Seed       uint64
	Functions  []string
	Output     string // report format: table|csv|json
	OutFile    string

	// Clock allows overriding the trial clock (for testing).
	// If nil, defaults to harness.SystemClock.
	Clock harness.Clock

	// IDGenerator allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDGenerator harness.IDGenerator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(&RunOptions{RootOptions: rootOpts})
}

// newRunCommand builds the run command around opts, keeping any test overrides.
func newRunCommand(opts *RunOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Benchmark functions across a range of input sizes",
		Long: `Benchmark functions across a range of input sizes.

For every size from --start to --stop (inclusive, stepping by --step) each
function is called --repeats times, each time on a freshly generated dataset
of distinct random integers. Dataset generation is not timed. The average
time per size is reported.

Flags override values from --config. Functions run one after another in the
order given.

Example:
  empirical run --func insertion-sort --func std-sort --start 1000 --stop 10000 --step 1000
  empirical run --config suite.yaml --output json --out results.json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmarks(opts, cmd)
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML or CUE config file")
	cmd.Flags().IntVar(&opts.Start, "start", defaults.Start, "smallest input size")
	cmd.Flags().IntVar(&opts.Stop, "stop", defaults.Stop, "largest input size (inclusive)")
	cmd.Flags().IntVar(&opts.Step, "step", defaults.Step, "size increment")
	cmd.Flags().IntVar(&opts.Repeats, "repeats", defaults.Repeats, "trials averaged per size")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", defaults.Seed, "dataset random seed")
	cmd.Flags().StringSliceVarP(&opts.Functions, "func", "f", nil, "function to benchmark (repeatable, see 'empirical list')")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "report format (table|csv|json); defaults to json with --format json, table otherwise")
	cmd.Flags().StringVar(&opts.OutFile, "out", "", "write the report to this file instead of stdout")

	return cmd
}

func runBenchmarks(opts *RunOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := formatter.Logger()

	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		return failConfig(formatter, err)
	}
	if err := cfg.Validate(); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidSpec, err)
	}
	if len(cfg.Functions) == 0 {
		return formatter.Fail(ExitCommandError, ErrCodeNoFunctions,
			errors.New("no functions selected: pass --func or list functions in the config file"))
	}
	targets, err := algorithms.Targets(cfg.Functions...)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeUnknownFunction, err)
	}

	output := opts.Output
	if output == "" {
		output = render.FormatTable
		if opts.Format == "json" {
			output = render.FormatJSON
		}
	}
	if !slices.Contains(render.ValidFormats, output) {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidOutput,
			fmt.Errorf("invalid output %q: must be one of %v", output, render.ValidFormats))
	}

	clock := opts.Clock
	if clock == nil {
		clock = harness.SystemClock{}
	}
	idGen := opts.IDGenerator
	if idGen == nil {
		idGen = harness.UUIDv7Generator{}
	}

	gen := dataset.New(cfg.Seed)
	h := harness.New(gen, harness.WithClock(clock), harness.WithLogger(logger))

	// Setup signal handling; cancellation is observed between trials.
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, stopping after current trial", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	runID := idGen.Generate()
	logger.Info("run starting", "run_id", runID, "functions", len(targets), "sizes", cfg.Spec().Count(), "repeats", cfg.Repeats, "seed", gen.Seed())

	series, err := h.RunAll(ctx, cfg.Spec(), targets)
	if err != nil {
		return failRun(formatter, err)
	}
	logger.Info("run finished", "run_id", runID)

	report := &render.Report{
		RunID:  runID,
		Seed:   gen.Seed(),
		Spec:   cfg.Spec(),
		Plot:   cfg.Plot,
		Series: series,
	}
	if err := writeReport(cmd.OutOrStdout(), opts.OutFile, output, report); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, err)
	}
	return nil
}

// resolveConfig loads --config (if any) and layers explicitly set flags on top.
func resolveConfig(opts *RunOptions, cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.Start = opts.Start
	}
	if flags.Changed("stop") {
		cfg.Stop = opts.Stop
	}
	if flags.Changed("step") {
		cfg.Step = opts.Step
	}
	if flags.Changed("repeats") {
		cfg.Repeats = opts.Repeats
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.Seed
	}
	if flags.Changed("func") {
		cfg.Functions = opts.Functions
	}
	return cfg, nil
}

// failConfig maps a config load failure to its error code.
func failConfig(formatter *OutputFormatter, err error) error {
	var le *config.LoadError
	if errors.As(err, &le) {
		return formatter.Fail(ExitCommandError, le.Code, err)
	}
	return formatter.Fail(ExitCommandError, ErrCodeGeneric, err)
}

// failRun maps a harness failure to its error code.
func failRun(formatter *OutputFormatter, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return formatter.Fail(ExitFailure, ErrCodeInterrupted, err)
	case harness.IsValidationError(err):
		return formatter.Fail(ExitCommandError, ErrCodeInvalidSpec, err)
	case dataset.IsSizeError(err):
		return formatter.Fail(ExitFailure, ErrCodeDatasetFailed, err)
	default:
		return formatter.Fail(ExitFailure, ErrCodeBenchmarkFailed, err)
	}
}

// writeReport renders to path, or to stdout when path is empty.
func writeReport(stdout io.Writer, path, format string, report *render.Report) error {
	if path == "" {
		return render.Write(stdout, format, report)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	if err := render.Write(f, format, report); err != nil {
		f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report file: %w", err)
	}
	fmt.Fprintf(stdout, "Wrote to: %s\n", path)
	return nil
}
