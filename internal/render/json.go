package render

import (
	"encoding/json"
	"io"

	"github.com/empiricalab/empirical/internal/config"
	"github.com/empiricalab/empirical/internal/harness"
)

// JSONReport is the json output schema.
type JSONReport struct {
	RunID  string            `json:"run_id"`
	Seed   uint64            `json:"seed"`
	Spec   harness.Spec      `json:"spec"`
	Plot   config.PlotConfig `json:"plot"`
	Series []JSONSeries      `json:"series"`
}

// JSONSeries holds one function's results as parallel sequences.
type JSONSeries struct {
	Name    string    `json:"name"`
	Sizes   []int     `json:"sizes"`
	Seconds []float64 `json:"seconds"`
}

// NewJSONReport converts r to its json schema.
func NewJSONReport(r *Report) JSONReport {
	out := JSONReport{
		RunID:  r.RunID,
		Seed:   r.Seed,
		Spec:   r.Spec,
		Plot:   r.Plot,
		Series: make([]JSONSeries, 0, len(r.Series)),
	}
	for i := range r.Series {
		s := &r.Series[i]
		out.Series = append(out.Series, JSONSeries{
			Name:    s.Name,
			Sizes:   s.Sizes(),
			Seconds: s.Seconds(),
		})
	}
	return out
}

func writeJSON(w io.Writer, r *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewJSONReport(r))
}
