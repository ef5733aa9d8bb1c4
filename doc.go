// Package hepquery contains the core components of hepquery, a convenience
// layer for high-energy-physics event analysis over a columnar dataframe
// engine. This root package defines the engine-facing contracts (Table,
// Executor, DatasetManager, the accumulator protocol) along with the layer
// itself: App/Config composition, the Dataset wrapper with physics-object
// aware column selection, and the type-compatibility cast table. Concrete
// implementations live in subpackages (schema, memtable, engine, datasets,
// analysis).
package hepquery
