package analysis

import (
	"github.com/lgray/hepquery"
)

// Adapter adapts mergeable Accumulators to an Executor's accumulator
// protocol. The executor may hand Combine the absent sentinel for either
// side; the adapter treats it as an identity value, so a reduction over
// zero partitions leaves the running value absent.
type Adapter struct{}

// CreateAdapter registers a mergeable accumulator with the executor,
// seeded with initial, and returns the resulting handle
func CreateAdapter(executor hepquery.Executor, initial hepquery.Partial) (hepquery.AccumulatorHandle, error) {
	return executor.RegisterAccumulator(initial, &Adapter{})
}

// Zero returns the initial value for the accumulator
func (a *Adapter) Zero(initial hepquery.Partial) hepquery.Partial {
	return initial
}

// Combine merges two partial results, tolerating the absent sentinel on
// either side
func (a *Adapter) Combine(v1 hepquery.Partial, v2 hepquery.Partial) (hepquery.Partial, error) {
	if v1.IsAbsent() {
		return v2, nil
	}
	if v2.IsAbsent() {
		return v1, nil
	}
	if err := v1.Accumulator().Merge(v2.Accumulator()); err != nil {
		return hepquery.Partial{}, err
	}
	return v1, nil
}
