package hepquery

import "context"

// An Executor reads event files into Datasets and manages accumulator
// registration. Implementations own file formats, partitioning and all
// computation; this layer never inspects event data itself.
type Executor interface {
	// ReadFiles reads the given files into a single Dataset named datasetName
	ReadFiles(ctx context.Context, datasetName string, files []string) (*Dataset, error)
	// RegisterAccumulator registers an AccumulatorSpec with this Executor,
	// returning a framework-managed handle seeded with initial
	RegisterAccumulator(initial Partial, spec AccumulatorSpec) (AccumulatorHandle, error)
}

// A DatasetManager resolves dataset names to lists of event files.
// Managers are provisioned lazily on first use by the App.
type DatasetManager interface {
	Provisioned() bool                                 // Provisioned returns true iff this manager has loaded its registry
	Provision(app *App) error                          // Provision loads the manager's backing registry
	GetNames() ([]string, error)                       // GetNames lists the known dataset names
	GetFileList(datasetName string) ([]string, error)  // GetFileList returns the files making up the named dataset
}
