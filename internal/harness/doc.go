// Package harness times functions under test across a range of input sizes.
//
// A run walks the sizes described by a Spec. For every size it performs
// Spec.Repeats independent trials, and each trial:
//
//  1. generates a fresh synthetic dataset of that size (never reused)
//  2. reads the clock
//  3. calls the function under test with the dataset as its only argument
//  4. reads the clock again
//
// Dataset generation happens before the first clock read, so its cost is paid
// once per trial but never measured. The trial durations for one size are
// averaged (arithmetic mean) into a single Point, and the Points form a
// Series in increasing size order.
//
// # Range Walk
//
// Sizes are Start, Start+Step, Start+2*Step, ... while size <= Stop. Stop is
// included when it is reachable and is never exceeded:
//
//	Spec{Start: 10, Stop: 20, Step: 5}  // sizes 10, 15, 20
//	Spec{Start: 10, Stop: 21, Step: 5}  // sizes 10, 15, 20
//
// # Failure
//
// An error returned by the function under test, or by dataset generation,
// aborts the whole run for that target. The error is returned as-is and no
// partial Series is produced. There is no retry.
//
// # Determinism
//
// Dataset content is fully determined by the seed of the dataset.Generator
// passed to New. Timings are wall-clock readings and are never reproducible;
// tests inject a fake Clock through WithClock.
//
// # Usage
//
//	h := harness.New(dataset.New(dataset.DefaultSeed))
//	series, err := h.Run(ctx, harness.Spec{Start: 1000, Stop: 10000, Step: 1000, Repeats: 5},
//	    harness.Target{Name: "sort", Fn: func(d []int) error { slices.Sort(d); return nil }})
package harness
