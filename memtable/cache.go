package memtable

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/lgray/hepquery"
	"github.com/lgray/hepquery/logging"
)

// partitionCache keeps recently used partitions in memory, spilling
// evicted partitions to lz4-compressed files in a private temp dir.
// Partitions are immutable, so a spill file never goes stale.
type partitionCache struct {
	mu       sync.Mutex
	lru      *lru.Cache
	dir      string
	schema   hepquery.Schema
	log      *log.Logger
	evictErr error // set by onEvict; surfaced on the next cache operation
}

func createPartitionCache(size int, tempDir string, s hepquery.Schema) (*partitionCache, error) {
	dir, err := os.MkdirTemp(tempDir, "hepquery-partitions-")
	if err != nil {
		return nil, err
	}
	c := &partitionCache{
		dir:    dir,
		schema: s,
		log:    logging.Logger("memtable", logging.ErrorLevel),
	}
	c.lru, err = lru.NewWithEvict(size, c.onEvict)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	return c, nil
}

// onEvict runs inside lru.Add, with c.mu already held by the caller
func (c *partitionCache) onEvict(key interface{}, value interface{}) {
	part, ok := value.(*partition)
	if !ok {
		c.evictErr = fmt.Errorf("unable to sync partition %v to disk due to value casting issue", key)
		return
	}
	if err := c.spill(part); err != nil {
		c.log.Printf("unable to sync partition %s to disk: %v", part.ID(), err)
		c.evictErr = err
	}
}

func (c *partitionCache) spill(p *partition) error {
	f, err := os.Create(c.spillPath(p.ID()))
	if err != nil {
		return err
	}
	if err := compressPartition(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c *partitionCache) spillPath(id string) string {
	return filepath.Join(c.dir, id+".lz4")
}

// put adds a partition to the cache, possibly evicting another to disk
func (c *partitionCache) put(p *partition) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(p.ID(), p)
	return c.evictErr
}

// get fetches a partition by ID, reloading it from its spill file when it
// is no longer resident
func (c *partitionCache) get(id string) (*partition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.evictErr != nil {
		return nil, c.evictErr
	}
	if v, ok := c.lru.Get(id); ok {
		return v.(*partition), nil
	}
	f, err := os.Open(c.spillPath(id))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := decompressPartition(f, c.schema)
	if err != nil {
		return nil, err
	}
	c.lru.Add(id, p)
	if c.evictErr != nil {
		return nil, c.evictErr
	}
	return p, nil
}

// Close removes the cache's spill directory
func (c *partitionCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(c.dir)
}
