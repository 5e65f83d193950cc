// Package render writes benchmark reports for people and for plotting tools.
//
// Three formats are supported:
//
//   - table: an aligned text table, one row per size, one column per function
//   - csv:   long form, one line per (function, size) pair
//   - json:  the run metadata, the plot settings and, per function, the two
//     parallel sequences (sizes, seconds) a plotting tool draws as one line
//
// Drawing and exporting images is left to the plotting tool that consumes
// the json output.
package render
