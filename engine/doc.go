// Package engine provides the local, in-process Executor. It reads event
// files in parallel through per-format parsers, stores rows in
// hash-partitioned memtable Tables, and runs accumulations across
// partitions, merging partial results through registered
// AccumulatorSpecs.
package engine
