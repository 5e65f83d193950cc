package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/empiricalab/empirical/internal/algorithms"
	"github.com/empiricalab/empirical/internal/config"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid     bool     `json:"valid"`
	Sizes     int      `json:"sizes"`
	Repeats   int      `json:"repeats"`
	Functions []string `json:"functions"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config>",
		Short: "Validate a benchmark config file without running it",
		Long: `Validate a YAML or CUE benchmark config file without running it.

Checks the file parses, the size range and repeat count are valid, the plot
settings are supported and every listed function exists.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := config.Load(path)
	if err != nil {
		return failConfig(formatter, err)
	}
	formatter.VerboseLog("Loaded %s", path)

	// Contents problems are validation failures (exit code 1)
	if err := cfg.Validate(); err != nil {
		return formatter.Fail(ExitFailure, ErrCodeInvalidSpec, err)
	}
	if len(cfg.Functions) == 0 {
		return formatter.Fail(ExitFailure, ErrCodeNoFunctions, errors.New("config lists no functions"))
	}
	if _, err := algorithms.Targets(cfg.Functions...); err != nil {
		return formatter.Fail(ExitFailure, ErrCodeUnknownFunction, err)
	}

	result := ValidationResult{
		Valid:     true,
		Sizes:     cfg.Spec().Count(),
		Repeats:   cfg.Repeats,
		Functions: cfg.Functions,
	}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Config valid: %d sizes x %d repeats, %d function(s)\n",
		result.Sizes, result.Repeats, len(result.Functions))
	return nil
}
