// Package errors defines the typed errors surfaced by hepquery and its
// local execution engine.
package errors

import (
	"fmt"
)

// NilValueError occurs when a value in a Row is null
type NilValueError struct{ Name string }

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return fmt.Sprintf("Value for column %s is nil", e.Name)
}

// ColumnNotFoundError occurs when a column name is absent from a Schema
type ColumnNotFoundError struct{ Name string }

// Error returns a textual representation of this ColumnNotFoundError
func (e ColumnNotFoundError) Error() string {
	return fmt.Sprintf("Schema does not contain column with name %s", e.Name)
}

// TypeMismatchError occurs when a Row value is accessed as the wrong type
type TypeMismatchError struct {
	Name     string
	Expected string
}

// Error returns a textual representation of this TypeMismatchError
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("Value for column %s is not of type %s", e.Name, e.Expected)
}

// DatasetNotFoundError occurs when a dataset name is unknown to a DatasetManager
type DatasetNotFoundError struct{ Name string }

// Error returns a textual representation of this DatasetNotFoundError
func (e DatasetNotFoundError) Error() string {
	return fmt.Sprintf("Dataset manager does not know a dataset named %s", e.Name)
}

// UnprovisionedError occurs when a DatasetManager is used before Provision
type UnprovisionedError struct{}

// Error returns a textual representation of this UnprovisionedError
func (e UnprovisionedError) Error() string {
	return "Dataset manager has not been provisioned"
}

// EmptyFileListError occurs when a dataset resolves to zero files
type EmptyFileListError struct{ Dataset string }

// Error returns a textual representation of this EmptyFileListError
func (e EmptyFileListError) Error() string {
	return fmt.Sprintf("Dataset %s produced 0 files", e.Dataset)
}

// UnsupportedFormatError occurs when no parser is registered for a file's extension
type UnsupportedFormatError struct{ Path string }

// Error returns a textual representation of this UnsupportedFormatError
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("No parser registered for file %s", e.Path)
}

// SchemaMismatchError occurs when the files of a dataset disagree on schema
type SchemaMismatchError struct {
	Path   string
	Reason error
}

// Error returns a textual representation of this SchemaMismatchError
func (e SchemaMismatchError) Error() string {
	return fmt.Sprintf("File %s does not match the dataset schema: %v", e.Path, e.Reason)
}

// PartitionNotFoundError occurs when a Partition index is out of range
type PartitionNotFoundError struct{ Index int }

// Error returns a textual representation of this PartitionNotFoundError
func (e PartitionNotFoundError) Error() string {
	return fmt.Sprintf("Table does not contain partition %d", e.Index)
}
