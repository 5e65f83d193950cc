package render

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"function", "size", "average_seconds"}

func writeCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range r.Series {
		for _, p := range s.Points {
			record := []string{
				s.Name,
				strconv.Itoa(p.Size),
				strconv.FormatFloat(p.Seconds(), 'f', 9, 64),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
