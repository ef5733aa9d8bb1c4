package hepquery

import "context"

// A RowSink receives parsed rows from a DataSourceParser. NewRow produces
// an empty row matching the sink's schema; Append commits a populated row.
// Sinks must be safe for concurrent use, as files are parsed in parallel.
type RowSink interface {
	NewRow() Row      // NewRow produces a fresh empty Row for population
	Append(row Row) error // Append commits a populated Row to the sink
}

// A DataSourceParser produces Rows from an event file of a particular
// format. Infer derives a Schema by examining a file; Parse appends every
// row of a file to a sink, according to a previously inferred Schema.
type DataSourceParser interface {
	Name() string                                                          // Name identifies the format handled by this parser
	Infer(path string) (Schema, error)                                     // Infer derives a Schema from the file at path
	Parse(ctx context.Context, path string, schema Schema, sink RowSink) error // Parse appends the rows of the file at path to sink
}
