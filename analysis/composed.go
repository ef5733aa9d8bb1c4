package analysis

import (
	"fmt"

	"github.com/lgray/hepquery"
)

// Compose returns a factory for Composed Accumulators, letting several
// reductions share one pass over a Dataset
func Compose(faccs ...hepquery.AccumulatorFactory) hepquery.AccumulatorFactory {
	return func() hepquery.Accumulator {
		accs := make([]hepquery.Accumulator, len(faccs))
		for i, f := range faccs {
			accs[i] = f()
		}
		return &Composed{accs: accs}
	}
}

// Composed composes other Accumulators
type Composed struct {
	accs []hepquery.Accumulator
}

// GetResults returns the contained Accumulators, so that their results may be accessed
func (c *Composed) GetResults() []hepquery.Accumulator {
	return c.accs
}

// Accumulate adds a row to all contained Accumulators
func (c *Composed) Accumulate(row hepquery.Row) error {
	for _, a := range c.accs {
		if err := a.Accumulate(row); err != nil {
			return err
		}
	}
	return nil
}

// Merge merges another Composed Accumulator into this one, merging all
// contained Accumulators pairwise
func (c *Composed) Merge(o hepquery.Accumulator) error {
	compa, ok := o.(*Composed)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Composed Accumulator")
	}
	if len(compa.accs) != len(c.accs) {
		return fmt.Errorf("Incoming Composed Accumulator contains %d accumulators, expected %d", len(compa.accs), len(c.accs))
	}
	for i, a := range c.accs {
		if err := a.Merge(compa.accs[i]); err != nil {
			return err
		}
	}
	return nil
}
