package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Error code constants, shared with the CLI's error envelope.
const (
	ErrCodeLoadFailed  = "E004" // File could not be read or parsed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeSchema      = "E006" // Schema violation
	ErrCodeUnsupported = "E008" // Unknown file extension
)

// LoadError describes a configuration file that could not be loaded.
type LoadError struct {
	Code    string
	Path    string
	Line    int // 0 when unknown
	Message string
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s", e.Path, e.Line, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
}

// fileConfig mirrors Config with optional fields so omitted keys keep defaults.
// The json tags drive CUE decoding, the yaml tags drive YAML decoding.
type fileConfig struct {
	Start     *int      `json:"start" yaml:"start"`
	Stop      *int      `json:"stop" yaml:"stop"`
	Step      *int      `json:"step" yaml:"step"`
	Repeats   *int      `json:"repeats" yaml:"repeats"`
	Seed      *uint64   `json:"seed" yaml:"seed"`
	Functions []string  `json:"functions" yaml:"functions"`
	Plot      *filePlot `json:"plot" yaml:"plot"`
}

type filePlot struct {
	Title      *string  `json:"title" yaml:"title"`
	XLabel     *string  `json:"x_label" yaml:"x_label"`
	YLabel     *string  `json:"y_label" yaml:"y_label"`
	LogY       *bool    `json:"log_y" yaml:"log_y"`
	LineWidth  *float64 `json:"line_width" yaml:"line_width"`
	Marker     *string  `json:"marker" yaml:"marker"`
	MarkerSize *float64 `json:"marker_size" yaml:"marker_size"`
	LegendLoc  *string  `json:"legend_loc" yaml:"legend_loc"`
	Formats    []string `json:"formats" yaml:"formats"`
	DPI        *int     `json:"dpi" yaml:"dpi"`
	Output     *string  `json:"output" yaml:"output"`
}

// Load reads a YAML or CUE configuration file and applies it over Default.
// The result is not validated; call Config.Validate after applying any
// further overrides.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "config file not found"}
	}
	if err != nil {
		return Config{}, &LoadError{Code: ErrCodeLoadFailed, Path: path, Message: err.Error()}
	}
	return Parse(path, data)
}

// Parse decodes data as the format implied by name's extension.
func Parse(name string, data []byte) (Config, error) {
	var (
		fc  *fileConfig
		err error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		fc, err = parseYAML(name, data)
	case ".cue":
		fc, err = parseCUE(name, data)
	default:
		return Config{}, &LoadError{
			Code:    ErrCodeUnsupported,
			Path:    name,
			Message: fmt.Sprintf("unsupported config extension %q (want .yaml, .yml or .cue)", filepath.Ext(name)),
		}
	}
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	fc.apply(&cfg)
	return cfg, nil
}

func parseYAML(name string, data []byte) (*fileConfig, error) {
	var fc fileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&fc); err != nil {
		// An empty document leaves every default in place.
		if errors.Is(err, io.EOF) {
			return &fc, nil
		}
		return nil, &LoadError{Code: ErrCodeLoadFailed, Path: name, Message: fmt.Sprintf("failed to parse YAML: %v", err)}
	}
	return &fc, nil
}

func parseCUE(name string, data []byte) (*fileConfig, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling embedded schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(name))
	if err := value.Err(); err != nil {
		return nil, cueLoadError(ErrCodeLoadFailed, name, err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(ErrCodeSchema, name, err)
	}

	var fc fileConfig
	if err := unified.Decode(&fc); err != nil {
		return nil, cueLoadError(ErrCodeLoadFailed, name, err)
	}
	return &fc, nil
}

// cueLoadError converts a CUE error to a LoadError with the first position found.
func cueLoadError(code, name string, err error) *LoadError {
	le := &LoadError{Code: code, Path: name, Message: err.Error()}
	for _, e := range cueerrors.Errors(err) {
		if pos := e.Position(); pos.IsValid() {
			le.Line = pos.Line()
			break
		}
	}
	return le
}

func (fc *fileConfig) apply(cfg *Config) {
	if fc.Start != nil {
		cfg.Start = *fc.Start
	}
	if fc.Stop != nil {
		cfg.Stop = *fc.Stop
	}
	if fc.Step != nil {
		cfg.Step = *fc.Step
	}
	if fc.Repeats != nil {
		cfg.Repeats = *fc.Repeats
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	if fc.Functions != nil {
		cfg.Functions = fc.Functions
	}
	if fc.Plot != nil {
		fc.Plot.apply(&cfg.Plot)
	}
}

func (fp *filePlot) apply(p *PlotConfig) {
	setString(&p.Title, fp.Title)
	setString(&p.XLabel, fp.XLabel)
	setString(&p.YLabel, fp.YLabel)
	setString(&p.Marker, fp.Marker)
	setString(&p.LegendLoc, fp.LegendLoc)
	setString(&p.Output, fp.Output)
	if fp.LogY != nil {
		p.LogY = *fp.LogY
	}
	if fp.LineWidth != nil {
		p.LineWidth = *fp.LineWidth
	}
	if fp.MarkerSize != nil {
		p.MarkerSize = *fp.MarkerSize
	}
	if fp.Formats != nil {
		p.Formats = fp.Formats
	}
	if fp.DPI != nil {
		p.DPI = *fp.DPI
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
