// Package algorithms is the catalogue of functions the CLI can benchmark.
//
// Each entry is a harness.Func registered under a kebab-case name. Sorting
// entries sort the dataset in place; the harness hands every trial a fresh
// dataset, so in-place mutation never leaks between trials.
package algorithms
