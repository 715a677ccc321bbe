// Package series groups numeric samples by key and reduces each group to its
// mean.
package series

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/montanaflynn/stats"
)

// ErrEmptyGroup is returned when a declared key never received a sample.
var ErrEmptyGroup = errors.New("group has no samples")

// Order selects the order in which groups are emitted.
type Order int

const (
	// ByKey emits groups sorted by ascending key.
	ByKey Order = iota
	// ByInsertion emits groups in the order their keys were first seen.
	ByInsertion
)

// Grouped maps each key to the samples recorded under it. Keys remember the
// order they were first declared or added in.
type Grouped[K cmp.Ordered] struct {
	samples map[K][]float64
	order   []K
}

// Mean is one finalized group.
type Mean[K cmp.Ordered] struct {
	Key   K
	Value float64
	N     int
}

func NewGrouped[K cmp.Ordered]() *Grouped[K] {
	return &Grouped[K]{samples: make(map[K][]float64)}
}

// Declare registers key without adding a sample. Declared keys that stay
// empty make Means fail.
func (g *Grouped[K]) Declare(key K) {
	if _, ok := g.samples[key]; ok {
		return
	}
	g.samples[key] = nil
	g.order = append(g.order, key)
}

// Add records v under key.
func (g *Grouped[K]) Add(key K, v float64) {
	g.Declare(key)
	g.samples[key] = append(g.samples[key], v)
}

// Len returns the number of keys.
func (g *Grouped[K]) Len() int { return len(g.order) }

// Samples returns a copy of the samples recorded under key.
func (g *Grouped[K]) Samples(key K) []float64 {
	return slices.Clone(g.samples[key])
}

// Keys returns the keys in the requested order.
func (g *Grouped[K]) Keys(order Order) []K {
	keys := slices.Clone(g.order)
	if order == ByKey {
		slices.Sort(keys)
	}
	return keys
}

// Means reduces every group to its arithmetic mean, in the requested order.
func (g *Grouped[K]) Means(order Order) ([]Mean[K], error) {
	keys := g.Keys(order)
	means := make([]Mean[K], 0, len(keys))
	for _, k := range keys {
		samples := g.samples[k]
		if len(samples) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrEmptyGroup, k)
		}
		m, err := stats.Mean(samples)
		if err != nil {
			return nil, fmt.Errorf("mean of %v: %w", k, err)
		}
		means = append(means, Mean[K]{Key: k, Value: m, N: len(samples)})
	}
	return means, nil
}
