package memtable

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/lgray/hepquery"
)

// Options configures in-memory Table construction
type Options struct {
	NumPartitions      int    // the number of partitions rows are spread over. Defaults to 10
	InMemoryPartitions int    // the maximum number of resident partitions before spill. Defaults to 32
	TempDir            string // where spilled partitions go. Defaults to the OS temp dir
}

func (o *Options) normalize() {
	if o.NumPartitions == 0 {
		o.NumPartitions = 10
	}
	if o.InMemoryPartitions == 0 {
		o.InMemoryPartitions = 32
	}
	if o.TempDir == "" {
		o.TempDir = os.TempDir()
	}
}

// Builder accumulates parsed rows into hash-partitioned Table storage.
// Builder implements hepquery.RowSink and is safe for concurrent Append.
type Builder struct {
	schema  hepquery.Schema
	opts    *Options
	mu      sync.Mutex
	parts   []*partition
	nextRow uint64
}

// CreateBuilder returns a new Builder for the given schema
func CreateBuilder(s hepquery.Schema, opts *Options) (*Builder, error) {
	opts.normalize()
	parts := make([]*partition, opts.NumPartitions)
	for i := range parts {
		p, err := createPartition(s)
		if err != nil {
			return nil, err
		}
		parts[i] = p
	}
	return &Builder{schema: s, opts: opts, parts: parts}, nil
}

// NewRow produces a fresh empty Row matching this Builder's schema
func (b *Builder) NewRow() hepquery.Row {
	return createRow(b.schema)
}

// Append commits a populated Row, assigning it to a partition by the hash
// of its event number (round-robin when there is no event column)
func (b *Builder) Append(r hepquery.Row) error {
	rw, ok := r.(*row)
	if !ok {
		return fmt.Errorf("row was not produced by this Builder")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	idx := int(b.partitionKey(rw) % uint64(len(b.parts)))
	b.parts[idx].appendRow(rw.values)
	return nil
}

func (b *Builder) partitionKey(r *row) uint64 {
	if offset, err := b.schema.GetOffset("event"); err == nil {
		if ev, ok := r.values[offset.Index()].(uint64); ok {
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], ev)
			return xxhash.Sum64(buf[:])
		}
	}
	b.nextRow++
	return b.nextRow
}

// Build finalizes the Builder into a Table, discarding empty partitions
func (b *Builder) Build() (*Table, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cache, err := createPartitionCache(b.opts.InMemoryPartitions, b.opts.TempDir, b.schema)
	if err != nil {
		return nil, err
	}
	var refs []partitionRef
	for _, p := range b.parts {
		if p.GetNumRows() == 0 {
			continue
		}
		if err := cache.put(p); err != nil {
			cache.Close()
			return nil, err
		}
		refs = append(refs, partitionRef{id: p.ID(), numRows: p.GetNumRows()})
	}
	return &Table{schema: b.schema, parts: refs, cache: cache, opts: b.opts}, nil
}
