package algorithms

import (
	"fmt"
	"sort"
	"sync"

	"github.com/empiricalab/empirical/internal/harness"
)

// UnknownError is returned when a name is not in the catalogue.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown function %q", e.Name)
}

var (
	mu       sync.RWMutex
	registry = map[string]harness.Func{}
)

func init() {
	Register("insertion-sort", InsertionSort)
	Register("selection-sort", SelectionSort)
	Register("bubble-sort", BubbleSort)
	Register("merge-sort", MergeSort)
	Register("std-sort", StdSort)
	Register("sorted-copy", SortedCopy)
	Register("len", Len)
	Register("linear-max", LinearMax)
}

// Register adds fn to the catalogue under name.
// Panics on an empty name, a nil fn or a duplicate name.
func Register(name string, fn harness.Func) {
	if name == "" || fn == nil {
		panic("algorithms: Register requires a name and a function")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("algorithms: %q already registered", name))
	}
	registry[name] = fn
}

// Lookup returns the target registered under name.
func Lookup(name string) (harness.Target, error) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := registry[name]
	if !ok {
		return harness.Target{}, &UnknownError{Name: name}
	}
	return harness.Target{Name: name, Fn: fn}, nil
}

// Targets resolves names in order. Fails on the first unknown name.
func Targets(names ...string) ([]harness.Target, error) {
	out := make([]harness.Target, 0, len(names))
	for _, name := range names {
		t, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Names returns every registered name, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
