package analysis

import (
	"fmt"

	"go-hep.org/x/hep/hbook"

	"github.com/lgray/hepquery"
)

// Histogrammer returns a factory for Histogram Accumulators binning the
// named column
func Histogrammer(colName string, bins int, low, high float64) hepquery.AccumulatorFactory {
	return func() hepquery.Accumulator {
		return &Histogram{colName: colName, hist: hbook.NewH1D(bins, low, high)}
	}
}

// Histogram fills a one-dimensional histogram from a numeric column.
// Array columns contribute one fill per element; nil cells are skipped.
type Histogram struct {
	colName string
	hist    *hbook.H1D
}

// Hist returns the underlying histogram
func (a *Histogram) Hist() *hbook.H1D {
	return a.hist
}

// Accumulate adds a row to this Accumulator
func (a *Histogram) Accumulate(row hepquery.Row) error {
	if row.IsNil(a.colName) {
		return nil
	}
	offset, err := row.Schema().GetOffset(a.colName)
	if err != nil {
		return err
	}
	switch offset.Type().(type) {
	case *hepquery.Uint32ColumnType:
		v, err := row.GetUint32(a.colName)
		if err != nil {
			return err
		}
		a.hist.Fill(float64(v), 1)
	case *hepquery.Uint64ColumnType:
		v, err := row.GetUint64(a.colName)
		if err != nil {
			return err
		}
		a.hist.Fill(float64(v), 1)
	case *hepquery.Int32ColumnType:
		v, err := row.GetInt32(a.colName)
		if err != nil {
			return err
		}
		a.hist.Fill(float64(v), 1)
	case *hepquery.Int64ColumnType:
		v, err := row.GetInt64(a.colName)
		if err != nil {
			return err
		}
		a.hist.Fill(float64(v), 1)
	case *hepquery.Float32ColumnType:
		v, err := row.GetFloat32(a.colName)
		if err != nil {
			return err
		}
		a.hist.Fill(float64(v), 1)
	case *hepquery.Float64ColumnType:
		v, err := row.GetFloat64(a.colName)
		if err != nil {
			return err
		}
		a.hist.Fill(v, 1)
	case *hepquery.Int32ArrayColumnType:
		vs, err := row.GetInt32Array(a.colName)
		if err != nil {
			return err
		}
		for _, v := range vs {
			a.hist.Fill(float64(v), 1)
		}
	case *hepquery.Float32ArrayColumnType:
		vs, err := row.GetFloat32Array(a.colName)
		if err != nil {
			return err
		}
		for _, v := range vs {
			a.hist.Fill(float64(v), 1)
		}
	case *hepquery.Float64ArrayColumnType:
		vs, err := row.GetFloat64Array(a.colName)
		if err != nil {
			return err
		}
		for _, v := range vs {
			a.hist.Fill(v, 1)
		}
	default:
		return fmt.Errorf("column %s is not numeric and cannot be histogrammed", a.colName)
	}
	return nil
}

// Merge merges another Accumulator into this one
func (a *Histogram) Merge(o hepquery.Accumulator) error {
	ca, ok := o.(*Histogram)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Histogram Accumulator")
	}
	merged := hbook.AddH1D(a.hist, ca.hist)
	a.hist = merged
	return nil
}
