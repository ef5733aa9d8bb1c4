package memtable

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/lgray/hepquery"
	"github.com/lgray/hepquery/errors"
	"github.com/lgray/hepquery/schema"
)

type partitionRef struct {
	id      string
	numRows int
}

// Table is the in-memory, hash-partitioned implementation of
// hepquery.Table. Tables are immutable; Select and WithColumn derive new
// Tables backed by fresh partitions and a fresh cache.
type Table struct {
	schema hepquery.Schema
	parts  []partitionRef
	cache  *partitionCache
	opts   *Options
}

// Schema returns the Schema of this Table
func (t *Table) Schema() hepquery.Schema {
	return t.schema
}

// Count returns the total number of rows in this Table
func (t *Table) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var total int64
	for _, ref := range t.parts {
		total += int64(ref.numRows)
	}
	return total, nil
}

// NumPartitions returns the number of Partitions backing this Table
func (t *Table) NumPartitions() int {
	return len(t.parts)
}

// GetPartition retrieves a specific Partition, reloading it from spill
// storage if necessary
func (t *Table) GetPartition(idx int) (hepquery.Partition, error) {
	if idx < 0 || idx >= len(t.parts) {
		return nil, errors.PartitionNotFoundError{Index: idx}
	}
	return t.cache.get(t.parts[idx].id)
}

// Select derives a new Table restricted to the given columns, applying
// any casts. The receiver is unmodified.
func (t *Table) Select(ctx context.Context, exprs ...hepquery.ColumnExpr) (hepquery.Table, error) {
	if len(exprs) == 0 {
		return nil, fmt.Errorf("select requires at least one column")
	}
	newSchema := schema.CreateSchema()
	srcOffsets := make([]hepquery.Column, len(exprs))
	targets := make([]hepquery.ColumnType, len(exprs))
	for i, e := range exprs {
		offset, err := t.schema.GetOffset(e.Name)
		if err != nil {
			return nil, err
		}
		target := offset.Type()
		if e.As != nil {
			target = e.As
		}
		if _, err := newSchema.CreateColumn(e.Name, target); err != nil {
			return nil, err
		}
		srcOffsets[i] = offset
		targets[i] = target
	}

	return t.derive(ctx, newSchema, func(values []interface{}) ([]interface{}, error) {
		out := make([]interface{}, len(exprs))
		for i := range exprs {
			v, err := hepquery.ConvertValue(values[srcOffsets[i].Index()], srcOffsets[i].Type(), targets[i])
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	})
}

// WithColumn derives a new Table with an additional column holding a
// constant value. The receiver is unmodified.
func (t *Table) WithColumn(name string, value interface{}, colType hepquery.ColumnType) (hepquery.Table, error) {
	if t.schema.HasColumn(name) {
		return nil, fmt.Errorf("Schema already contains column with name %s", name)
	}
	if err := checkValueType(value, colType); err != nil {
		return nil, errors.TypeMismatchError{Name: name, Expected: colType.String()}
	}
	newSchema := t.schema.Clone()
	if _, err := newSchema.CreateColumn(name, colType); err != nil {
		return nil, err
	}
	width := t.schema.NumColumns()
	return t.derive(context.Background(), newSchema, func(values []interface{}) ([]interface{}, error) {
		out := make([]interface{}, width+1)
		copy(out, values)
		out[width] = value
		return out, nil
	})
}

// derive rebuilds every partition of this Table through fn, producing a
// new Table over newSchema with its own cache
func (t *Table) derive(ctx context.Context, newSchema hepquery.Schema, fn func(values []interface{}) ([]interface{}, error)) (*Table, error) {
	cache, err := createPartitionCache(t.opts.InMemoryPartitions, t.opts.TempDir, newSchema)
	if err != nil {
		return nil, err
	}
	refs := make([]partitionRef, 0, len(t.parts))
	for _, ref := range t.parts {
		if err := ctx.Err(); err != nil {
			cache.Close()
			return nil, err
		}
		src, err := t.cache.get(ref.id)
		if err != nil {
			cache.Close()
			return nil, err
		}
		dst, err := createPartition(newSchema)
		if err != nil {
			cache.Close()
			return nil, err
		}
		for _, values := range src.rows {
			out, err := fn(values)
			if err != nil {
				cache.Close()
				return nil, err
			}
			dst.appendRow(out)
		}
		if err := cache.put(dst); err != nil {
			cache.Close()
			return nil, err
		}
		refs = append(refs, partitionRef{id: dst.ID(), numRows: dst.GetNumRows()})
	}
	return &Table{schema: newSchema, parts: refs, cache: cache, opts: t.opts}, nil
}

// Show writes a human-readable preview of up to numRows rows
func (t *Table) Show(w io.Writer, numRows int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	names := t.schema.ColumnNames()
	types := t.schema.ColumnTypes()
	for i, name := range names {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, name)
	}
	fmt.Fprintln(tw)

	shown := 0
	for _, ref := range t.parts {
		if shown >= numRows {
			break
		}
		p, err := t.cache.get(ref.id)
		if err != nil {
			return err
		}
		for _, values := range p.rows {
			if shown >= numRows {
				break
			}
			for i, v := range values {
				if i > 0 {
					fmt.Fprint(tw, "\t")
				}
				if v == nil {
					fmt.Fprint(tw, "nil")
				} else {
					fmt.Fprint(tw, types[i].ToString(v))
				}
			}
			fmt.Fprintln(tw)
			shown++
		}
	}
	return tw.Flush()
}

// Close releases the spill storage owned by this Table
func (t *Table) Close() error {
	return t.cache.Close()
}

func checkValueType(value interface{}, colType hepquery.ColumnType) error {
	if value == nil {
		return nil
	}
	var ok bool
	switch colType.(type) {
	case *hepquery.BoolColumnType:
		_, ok = value.(bool)
	case *hepquery.Uint32ColumnType:
		_, ok = value.(uint32)
	case *hepquery.Uint64ColumnType:
		_, ok = value.(uint64)
	case *hepquery.Int32ColumnType:
		_, ok = value.(int32)
	case *hepquery.Int64ColumnType:
		_, ok = value.(int64)
	case *hepquery.Float32ColumnType:
		_, ok = value.(float32)
	case *hepquery.Float64ColumnType:
		_, ok = value.(float64)
	case *hepquery.VarStringColumnType:
		_, ok = value.(string)
	case *hepquery.BoolArrayColumnType:
		_, ok = value.([]bool)
	case *hepquery.Int32ArrayColumnType:
		_, ok = value.([]int32)
	case *hepquery.Float32ArrayColumnType:
		_, ok = value.([]float32)
	case *hepquery.Float64ArrayColumnType:
		_, ok = value.([]float64)
	}
	if !ok {
		return fmt.Errorf("value does not match column type %s", colType.String())
	}
	return nil
}
