package render

import (
	"fmt"
	"io"

	"github.com/empiricalab/empirical/internal/config"
	"github.com/empiricalab/empirical/internal/harness"
)

// Output formats.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// ValidFormats lists the formats Write accepts.
var ValidFormats = []string{FormatTable, FormatCSV, FormatJSON}

// Report is everything one benchmark run produced.
type Report struct {
	RunID  string
	Seed   uint64
	Spec   harness.Spec
	Plot   config.PlotConfig
	Series []harness.Series
}

// Write renders r to w in the given format.
func Write(w io.Writer, format string, r *Report) error {
	switch format {
	case FormatTable:
		return writeTable(w, r)
	case FormatCSV:
		return writeCSV(w, r)
	case FormatJSON:
		return writeJSON(w, r)
	default:
		return fmt.Errorf("unknown output format %q: must be one of %v", format, ValidFormats)
	}
}
