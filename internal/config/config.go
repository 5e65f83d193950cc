package config

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/empiricalab/empirical/internal/dataset"
	"github.com/empiricalab/empirical/internal/harness"
)

// Defaults mirror the classic empirical-analysis setup: 10k to 100k items
// in steps of 500, five trials per size.
const (
	DefaultStart   = 10_000
	DefaultStop    = 100_000
	DefaultStep    = 500
	DefaultRepeats = 5
)

// ValidFormats are the image formats an external plotter is asked to export.
var ValidFormats = []string{"png", "pdf", "svg", "eps"}

var legendLocPattern = regexp.MustCompile(`^(upper|lower) (left|right)$`)

// Config is a benchmark suite: one Spec applied to every listed function.
type Config struct {
	Start     int        `json:"start"`
	Stop      int        `json:"stop"`
	Step      int        `json:"step"`
	Repeats   int        `json:"repeats"`
	Seed      uint64     `json:"seed"`
	Functions []string   `json:"functions"`
	Plot      PlotConfig `json:"plot"`
}

// PlotConfig holds rendering knobs for the external plotting tool.
// The harness never interprets them; they are validated and passed through.
type PlotConfig struct {
	Title      string   `json:"title"`
	XLabel     string   `json:"x_label"`
	YLabel     string   `json:"y_label"`
	LogY       bool     `json:"log_y"`
	LineWidth  float64  `json:"line_width"`
	Marker     string   `json:"marker"`
	MarkerSize float64  `json:"marker_size"`
	LegendLoc  string   `json:"legend_loc"`
	Formats    []string `json:"formats"`
	DPI        int      `json:"dpi"`
	Output     string   `json:"output,omitempty"`
}

// Default returns the configuration used when no file or flag overrides a field.
func Default() Config {
	return Config{
		Start:   DefaultStart,
		Stop:    DefaultStop,
		Step:    DefaultStep,
		Repeats: DefaultRepeats,
		Seed:    dataset.DefaultSeed,
		Plot: PlotConfig{
			Title:      "Empirical Analysis of Algorithms",
			XLabel:     "Input size",
			YLabel:     "Time (seconds)",
			LogY:       false,
			LineWidth:  0.75,
			Marker:     "o",
			MarkerSize: 2,
			LegendLoc:  "lower right",
			Formats:    []string{"png"},
			DPI:        300,
		},
	}
}

// Spec returns the harness specification described by the config.
func (c Config) Spec() harness.Spec {
	return harness.Spec{
		Start:   c.Start,
		Stop:    c.Stop,
		Step:    c.Step,
		Repeats: c.Repeats,
	}
}

// Validate checks the size range and plot settings.
// Function names are resolved by the caller against its catalogue.
func (c Config) Validate() error {
	if err := c.Spec().Validate(); err != nil {
		return err
	}
	return c.Plot.Validate()
}

// Validate checks the plot settings.
func (p PlotConfig) Validate() error {
	if !legendLocPattern.MatchString(p.LegendLoc) {
		return fmt.Errorf("plot.legend_loc %q must match (upper|lower) (left|right)", p.LegendLoc)
	}
	if len(p.Formats) == 0 {
		return fmt.Errorf("plot.formats must list at least one of %v", ValidFormats)
	}
	for _, f := range p.Formats {
		if !slices.Contains(ValidFormats, f) {
			return fmt.Errorf("plot.formats: unsupported format %q, must be one of %v", f, ValidFormats)
		}
	}
	if p.DPI <= 0 {
		return fmt.Errorf("plot.dpi must be > 0, got %d", p.DPI)
	}
	if p.LineWidth <= 0 {
		return fmt.Errorf("plot.line_width must be > 0, got %g", p.LineWidth)
	}
	if p.MarkerSize <= 0 {
		return fmt.Errorf("plot.marker_size must be > 0, got %g", p.MarkerSize)
	}
	return nil
}
