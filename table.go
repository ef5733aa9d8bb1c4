package hepquery

import (
	"context"
	"io"
)

// ColumnExpr selects a column by name, optionally casting it to a new type.
type ColumnExpr struct {
	Name string
	As   ColumnType // nil means the column passes through unchanged
}

// Col returns a ColumnExpr which selects the named column unchanged
func Col(name string) ColumnExpr {
	return ColumnExpr{Name: name}
}

// Cast returns a copy of this ColumnExpr which casts the column to the given type
func (c ColumnExpr) Cast(colType ColumnType) ColumnExpr {
	c.As = colType
	return c
}

// A Partition is a portion of a columnar dataset, consisting of multiple
// Rows. Partitions are not generally interacted with directly, instead
// being iterated by the Executor during accumulation.
type Partition interface {
	ID() string            // ID retrieves the ID of this Partition
	GetNumRows() int       // GetNumRows retrieves the number of rows in this Partition
	GetRow(rowNum int) Row // GetRow retrieves a specific row from this Partition
}

// A Table is a handle to columnar event data managed by an execution
// engine. Tables are immutable: Select and WithColumn derive new Tables,
// leaving the receiver untouched. Tables which own spilled-to-disk state
// release it via Close.
type Table interface {
	Schema() Schema                                                         // Schema returns the Schema of this Table
	Count(ctx context.Context) (int64, error)                               // Count returns the total number of rows in this Table
	NumPartitions() int                                                     // NumPartitions returns the number of Partitions backing this Table
	GetPartition(idx int) (Partition, error)                                // GetPartition retrieves a specific Partition, loading it from spill storage if necessary
	Select(ctx context.Context, exprs ...ColumnExpr) (Table, error)         // Select derives a new Table restricted to the given columns, applying any casts
	WithColumn(name string, value interface{}, colType ColumnType) (Table, error) // WithColumn derives a new Table with an additional column holding a constant value
	Show(w io.Writer, numRows int) error                                    // Show writes a human-readable preview of up to numRows rows
	Close() error                                                           // Close releases any storage owned by this Table
}
