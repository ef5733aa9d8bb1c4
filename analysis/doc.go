// Package analysis provides physics accumulators and the adapter which
// registers mergeable values with an Executor's accumulator protocol.
package analysis
