package render

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func writeTable(w io.Writer, r *Report) error {
	p := message.NewPrinter(language.English)

	title := r.Plot.Title
	if title == "" {
		title = "Benchmark"
	}
	if _, err := fmt.Fprintf(w, "%s\nrun %s, seed %d, %s repeats per size\n\n", title, r.RunID, r.Seed, p.Sprintf("%d", r.Spec.Repeats)); err != nil {
		return err
	}

	if len(r.Series) == 0 {
		_, err := fmt.Fprintln(w, "no functions benchmarked")
		return err
	}

	header := make([]string, 0, len(r.Series)+1)
	header = append(header, "Size")
	for _, s := range r.Series {
		header = append(header, s.Name)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	averages := make([]map[int]time.Duration, len(r.Series))
	for i, s := range r.Series {
		averages[i] = make(map[int]time.Duration, len(s.Points))
		for _, pt := range s.Points {
			averages[i][pt.Size] = pt.Average
		}
	}

	for _, size := range r.Series[0].Sizes() {
		row := make([]string, 0, len(header))
		row = append(row, p.Sprintf("%d", size))
		for i := range r.Series {
			avg, ok := averages[i][size]
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, FormatDuration(avg))
		}
		table.Append(row)
	}

	table.Render()
	return nil
}

// FormatDuration formats a duration in the largest unit below it.
func FormatDuration(d time.Duration) string {
	if d < time.Microsecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1000.0)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1000000.0)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
