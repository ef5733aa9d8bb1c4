package hepquery

// An Accumulator is a reduction technique which siphons data from Rows
// into a custom data structure, such as a histogram. Accumulation is
// performed independently per Partition, then partial results are merged
// through the registered AccumulatorSpec, so Merge must be commutative
// and associative.
type Accumulator interface {
	Accumulate(row Row) error  // Accumulate adds a row to this Accumulator
	Merge(o Accumulator) error // Merge merges another Accumulator into this one
}

// AccumulatorFactory is a function that produces a fresh Accumulator
type AccumulatorFactory func() Accumulator

// Partial is an optional Accumulator value with an explicit absent state.
// The execution engine may present an uninitialized partial result as the
// absent value rather than a properly zeroed Accumulator, so combine
// implementations must tolerate it.
type Partial struct {
	acc Accumulator
}

// Absent returns the empty Partial sentinel
func Absent() Partial {
	return Partial{}
}

// Present wraps an Accumulator in a Partial
func Present(acc Accumulator) Partial {
	return Partial{acc: acc}
}

// IsAbsent returns true iff this Partial holds no Accumulator
func (p Partial) IsAbsent() bool {
	return p.acc == nil
}

// Accumulator returns the wrapped Accumulator, or nil for the absent sentinel
func (p Partial) Accumulator() Accumulator {
	return p.acc
}

// An AccumulatorSpec adapts mergeable values to the executor's
// accumulator protocol: Zero produces the initial value and Combine
// merges two partial results.
type AccumulatorSpec interface {
	Zero(initial Partial) Partial           // Zero returns the initial value for the accumulator
	Combine(a Partial, b Partial) (Partial, error) // Combine merges two partial results into one
}

// An AccumulatorHandle is the framework-managed handle obtained by
// registering an AccumulatorSpec with an Executor. Add folds partial
// results into the running value via the registered Combine.
type AccumulatorHandle interface {
	ID() string                      // ID retrieves the ID of this handle
	Add(acc Accumulator) error       // Add combines a partial result into the running value
	Value() (Accumulator, bool)      // Value returns the running value, or false if it is still absent
}
