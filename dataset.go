package hepquery

import (
	"context"
	"io"
)

// identityColumns are always retained by SelectColumns, because
// downstream consumers key on them for record identity.
var identityColumns = []string{"dataset", "run", "luminosityBlock", "event"}

// TypedColumn pairs a column name with its ColumnType
type TypedColumn struct {
	Name string
	Type ColumnType
}

// A Dataset is a named wrapper around an engine Table. Every Dataset's
// table carries a "dataset" column populated with the Dataset's name,
// added at construction if absent. A pre-existing "dataset" column is
// used as-is, even when its values disagree with the name.
type Dataset struct {
	name  string
	table Table
}

// CreateDataset wraps a Table in a Dataset, tagging its rows with the
// dataset name unless a "dataset" column already exists
func CreateDataset(name string, table Table) (*Dataset, error) {
	if !table.Schema().HasColumn("dataset") {
		tagged, err := table.WithColumn("dataset", name, &VarStringColumnType{})
		if err != nil {
			table.Close()
			return nil, err
		}
		// ownership of the untagged table transfers here
		if err := table.Close(); err != nil {
			tagged.Close()
			return nil, err
		}
		table = tagged
	}
	return &Dataset{name: name, table: table}, nil
}

// Name returns the name of this Dataset
func (d *Dataset) Name() string {
	return d.name
}

// Table returns the underlying engine Table
func (d *Dataset) Table() Table {
	return d.table
}

// Count returns the number of events in this Dataset
func (d *Dataset) Count(ctx context.Context) (int64, error) {
	return d.table.Count(ctx)
}

// Columns fetches the list of column names from this Dataset
func (d *Dataset) Columns() []string {
	return d.table.Schema().ColumnNames()
}

// ColumnsWithTypes fetches the list of column names along with their types
func (d *Dataset) ColumnsWithTypes() []TypedColumn {
	s := d.table.Schema()
	names := s.ColumnNames()
	types := s.ColumnTypes()
	res := make([]TypedColumn, len(names))
	for i := range names {
		res[i] = TypedColumn{Name: names[i], Type: types[i]}
	}
	return res
}

// ColumnsForPhysicsObjects returns the columns of this Dataset which form
// part of the requested physics objects, including each object's count
// column and all of its properties
func (d *Dataset) ColumnsForPhysicsObjects(physicsObjects []string) []string {
	return ColumnsForPhysicsObjects(physicsObjects, d.Columns())
}

// SelectColumns creates a new Dataset that contains only the specified
// columns. For technical reasons the identifying columns (dataset, run,
// luminosityBlock, event) are included in the result even if they are not
// requested. Columns with a type that is not supported downstream are
// cast to a supported type. Requesting a column absent from the table
// fails with the engine's column-not-found error. The receiver and its
// table are unmodified.
func (d *Dataset) SelectColumns(ctx context.Context, columns []string) (*Dataset, error) {
	requested := make(map[string]bool, len(columns)+len(identityColumns))
	for _, c := range columns {
		requested[c] = true
	}
	for _, c := range identityColumns {
		requested[c] = true
	}

	schema := d.table.Schema()
	exprs := make([]ColumnExpr, 0, len(requested))
	for _, name := range schema.ColumnNames() {
		if !requested[name] {
			continue
		}
		delete(requested, name)
		offset, err := schema.GetOffset(name)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, CompatibleColumnExpr(name, offset.Type()))
	}
	// anything left was not in the schema; let the engine surface the error
	for name := range requested {
		exprs = append(exprs, Col(name))
	}

	projected, err := d.table.Select(ctx, exprs...)
	if err != nil {
		return nil, err
	}
	return CreateDataset(d.name, projected)
}

// Show writes a friendly representation of this Dataset's first rows to w
func (d *Dataset) Show(w io.Writer) error {
	return d.table.Show(w, 20)
}

// Close releases any storage owned by this Dataset's table
func (d *Dataset) Close() error {
	return d.table.Close()
}
