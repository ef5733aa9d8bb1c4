// Package memtable provides the in-memory, hash-partitioned Table
// implementation used by the local execution engine. Partitions are kept
// in an LRU cache and spilled to lz4-compressed files on disk when the
// resident limit is exceeded.
package memtable
