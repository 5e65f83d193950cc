package harness

import (
	"math"
	"time"
)

// Spec is a benchmark specification: the size range and repeat count for one run.
// Spec is a value type and is never mutated by the harness.
type Spec struct {
	Start   int `json:"start"`
	Stop    int `json:"stop"`
	Step    int `json:"step"`
	Repeats int `json:"repeats"`
}

// Validate checks the spec before any timing begins.
// Returns a *ValidationError describing the first problem found.
func (s Spec) Validate() error {
	if s.Start < 0 {
		return newValidationError(ErrCodeNegativeStart, "start", "start must be >= 0, got %d", s.Start)
	}
	if s.Stop < s.Start {
		return newValidationError(ErrCodeInvalidRange, "stop", "stop (%d) must be >= start (%d)", s.Stop, s.Start)
	}
	if s.Step <= 0 {
		return newValidationError(ErrCodeInvalidStep, "step", "step must be > 0, got %d", s.Step)
	}
	if s.Repeats <= 0 {
		return newValidationError(ErrCodeInvalidRepeats, "repeats", "repeats must be > 0, got %d", s.Repeats)
	}
	return nil
}

// Count returns the number of sizes the spec walks.
// Returns 0 for an invalid spec. Saturates at math.MaxInt.
func (s Spec) Count() int {
	if s.Validate() != nil {
		return 0
	}
	q := (s.Stop - s.Start) / s.Step
	if q == math.MaxInt {
		return q
	}
	return q + 1
}

// At returns the i-th size of the walk. i must be in [0, Count()).
// Computed by index so a Stop near math.MaxInt cannot overflow the walk.
func (s Spec) At(i int) int {
	return s.Start + i*s.Step
}

// Sizes returns every size the spec walks, in increasing order.
// It materializes the whole walk; Run iterates with At instead.
func (s Spec) Sizes() []int {
	n := s.Count()
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = s.At(i)
	}
	return sizes
}

// Func is a function under test. It receives the synthetic dataset as its
// only argument; any non-nil error aborts the run.
type Func func(data []int) error

// Target names a function under test.
type Target struct {
	Name string
	Fn   Func
}

// Point is one (size, average time) sample.
type Point struct {
	Size    int           `json:"size"`
	Average time.Duration `json:"average_ns"`
}

// Seconds returns the average time in seconds.
func (p Point) Seconds() float64 {
	return p.Average.Seconds()
}

// Series is the ordered result of one run: one Point per size, ascending.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Len returns the number of points.
func (s *Series) Len() int {
	return len(s.Points)
}

// Sizes returns the input sizes, parallel to Seconds.
func (s *Series) Sizes() []int {
	out := make([]int, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Size
	}
	return out
}

// Seconds returns the average times in seconds, parallel to Sizes.
func (s *Series) Seconds() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Seconds()
	}
	return out
}
