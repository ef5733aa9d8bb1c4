// Package schema provides the concrete Schema implementation used by the
// local execution engine.
package schema

import (
	"fmt"
	"reflect"

	"github.com/lgray/hepquery"
	"github.com/lgray/hepquery/errors"
)

type column struct {
	idx     int
	colType hepquery.ColumnType
}

// Clone returns a copy of this Column
func (c *column) Clone() hepquery.Column {
	return &column{c.idx, c.colType}
}

// Index returns the index of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// Type returns the ColumnType of this Column
func (c *column) Type() hepquery.ColumnType {
	return c.colType
}

// schema is a mapping from column names to positions and types within a Row
type schema struct {
	schema map[string]hepquery.Column
}

// CreateSchema is a factory for Schemas
func CreateSchema() hepquery.Schema {
	return &schema{
		schema: make(map[string]hepquery.Column),
	}
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema hepquery.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return s.ForEachColumn(func(name string, col hepquery.Column) error {
		otherCol, err := otherSchema.GetOffset(name)
		if err != nil {
			return err
		}
		if col.Index() != otherCol.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if reflect.TypeOf(col.Type()) != reflect.TypeOf(otherCol.Type()) {
			return fmt.Errorf("Column %s types do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() hepquery.Schema {
	newSchema := make(map[string]hepquery.Column)
	for k, v := range s.schema {
		newSchema[k] = v.Clone()
	}
	return &schema{schema: newSchema}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.schema)
}

// GetOffset returns the position of a particular column within a row
func (s *schema) GetOffset(colName string) (hepquery.Column, error) {
	offset, ok := s.schema[colName]
	if !ok {
		return nil, errors.ColumnNotFoundError{Name: colName}
	}
	return offset, nil
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, ok := s.schema[colName]
	return ok
}

// CreateColumn defines a new column within the Schema
func (s *schema) CreateColumn(colName string, columnType hepquery.ColumnType) (hepquery.Schema, error) {
	_, containsOffset := s.schema[colName]
	if containsOffset {
		return nil, fmt.Errorf("Schema already contains column with name %s", colName)
	}
	s.schema[colName] = &column{len(s.schema), columnType}
	return s, nil
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.schema))
	for k, v := range s.schema {
		names[v.Index()] = k
	}
	return names
}

// ColumnTypes returns the types in the schema, in index order
func (s *schema) ColumnTypes() []hepquery.ColumnType {
	types := make([]hepquery.ColumnType, len(s.schema))
	for _, v := range s.schema {
		types[v.Index()] = v.Type()
	}
	return types
}

// ForEachColumn runs a function for each column in this Schema
func (s *schema) ForEachColumn(fn func(name string, col hepquery.Column) error) error {
	for k, v := range s.schema {
		err := fn(k, v)
		if err != nil {
			return err
		}
	}
	return nil
}
