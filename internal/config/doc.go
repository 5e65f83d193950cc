// Package config loads benchmark suite configuration from YAML or CUE files.
//
// A configuration file sets the size range, repeat count, seed, the list of
// functions to benchmark and the plot settings handed to an external
// plotting tool. Every field is optional; omitted fields keep the values
// from Default.
//
// YAML (.yaml, .yml):
//
//	start: 10000
//	stop: 100000
//	step: 500
//	repeats: 5
//	seed: 2021
//	functions: [insertion-sort, selection-sort, bubble-sort]
//	plot:
//	  log_y: true
//	  legend_loc: upper left
//
// CUE (.cue) files use the same field names and are checked against the
// embedded schema (schema.cue) before decoding, so typos and out-of-range
// values are reported with a file position. YAML files are decoded with
// unknown-field rejection for the same reason.
package config
