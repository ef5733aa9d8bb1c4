package memtable

import (
	uuid "github.com/gofrs/uuid"

	"github.com/lgray/hepquery"
)

// partition is a portion of a Table's rows. Partitions are immutable once
// their Table is built.
type partition struct {
	id     string
	schema hepquery.Schema
	rows   [][]interface{}
}

func createPartition(s hepquery.Schema) (*partition, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &partition{id: id.String(), schema: s}, nil
}

// ID retrieves the ID of this Partition
func (p *partition) ID() string {
	return p.id
}

// GetNumRows retrieves the number of rows in this Partition
func (p *partition) GetNumRows() int {
	return len(p.rows)
}

// GetRow retrieves a specific row from this Partition
func (p *partition) GetRow(rowNum int) hepquery.Row {
	return &row{schema: p.schema, values: p.rows[rowNum]}
}

func (p *partition) appendRow(values []interface{}) {
	p.rows = append(p.rows, values)
}
