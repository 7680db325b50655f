package distance

import (
	"fmt"
	"slices"
	"sort"
	"sync"
)

// Func computes the distance between two equally sized vectors.
type Func func(u, v []float64) float64

// PrepareFunc validates opts and returns a distance function. samples holds
// every set of rows the function will be applied to, for metrics whose
// defaults are estimated from the data (e.g. seuclidean variances).
type PrepareFunc func(opts Options, samples ...[][]float64) (Func, error)

// Metric is an entry in the metric catalog.
type Metric struct {
	// Name is the catalog key, e.g. "correlation".
	Name string

	// MinFeatures is the smallest feature count for which the metric is
	// well defined. Zero means any non-empty vector.
	MinFeatures int

	// Options lists the accepted option keys. Any other key is rejected.
	Options []string

	// Prepare builds the distance function.
	Prepare PrepareFunc
}

// Validate rejects option keys the metric does not accept.
func (m *Metric) Validate(opts Options) error {
	for k := range opts {
		if !slices.Contains(m.Options, k) {
			return &ErrInvalidOption{Metric: m.Name, Option: k, Reason: "unknown option"}
		}
	}
	return nil
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Metric{}
)

// Register adds a metric to the catalog.
func Register(m Metric) error {
	if m.Name == "" || m.Prepare == nil {
		return fmt.Errorf("register metric %q: name and prepare function are required", m.Name)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[m.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateMetric, m.Name)
	}
	registry[m.Name] = &m
	return nil
}

func mustRegister(m Metric) {
	if err := Register(m); err != nil {
		panic(err)
	}
}

// Lookup returns the registered metric with the given name.
func Lookup(name string) (*Metric, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	m, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
	return m, nil
}

// Names returns the sorted names of all registered metrics.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Prepare looks up name, validates opts and returns the distance function.
func Prepare(name string, opts Options, samples ...[][]float64) (Func, error) {
	m, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(opts); err != nil {
		return nil, err
	}
	return m.Prepare(opts, samples...)
}
