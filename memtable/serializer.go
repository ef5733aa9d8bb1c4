package memtable

import (
	"encoding/gob"
	"io"

	lz4 "github.com/pierrec/lz4"

	"github.com/lgray/hepquery"
)

// partitionData is the serialized form of a partition. The schema is not
// written; it is shared by all partitions of a Table and supplied again
// on decompression.
type partitionData struct {
	ID   string
	Rows [][]interface{}
}

// nilCell stands in for nil cells on the wire, since gob refuses to
// encode nil interface values
type nilCell struct{}

func init() {
	gob.Register(nilCell{})
	// cell values travel inside interface{} slots, so every concrete
	// cell type must be registered with gob
	gob.Register(bool(false))
	gob.Register(uint32(0))
	gob.Register(uint64(0))
	gob.Register(int32(0))
	gob.Register(int64(0))
	gob.Register(float32(0))
	gob.Register(float64(0))
	gob.Register(string(""))
	gob.Register([]bool{})
	gob.Register([]int32{})
	gob.Register([]float32{})
	gob.Register([]float64{})
}

// compressPartition serializes and compresses partition data to a write stream
func compressPartition(w io.Writer, p *partition) error {
	zw := lz4.NewWriter(w)
	enc := gob.NewEncoder(zw)
	// mask nil cells without mutating the resident partition
	rows := p.rows
	copied := false
	for i, values := range p.rows {
		for j, v := range values {
			if v != nil {
				continue
			}
			if !copied {
				rows = make([][]interface{}, len(p.rows))
				copy(rows, p.rows)
				copied = true
			}
			if &rows[i][0] == &p.rows[i][0] {
				masked := make([]interface{}, len(values))
				copy(masked, values)
				rows[i] = masked
			}
			rows[i][j] = nilCell{}
		}
	}
	if err := enc.Encode(partitionData{ID: p.id, Rows: rows}); err != nil {
		return err
	}
	return zw.Close()
}

// decompressPartition decompresses and deserializes partition data from a read stream
func decompressPartition(r io.Reader, s hepquery.Schema) (*partition, error) {
	zr := lz4.NewReader(r)
	dec := gob.NewDecoder(zr)
	var data partitionData
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	for _, values := range data.Rows {
		for j, v := range values {
			if _, isNil := v.(nilCell); isNil {
				values[j] = nil
			}
		}
	}
	return &partition{id: data.ID, schema: s, rows: data.Rows}, nil
}
