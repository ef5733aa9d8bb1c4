package hepquery

const (
	// DefaultMaster is the execution-engine connection target used when
	// Config.Master is unset
	DefaultMaster = "local"
	// DefaultAppName is the application name used when Config.AppName is unset
	DefaultAppName = "spark-hep"
	// DefaultNumPartitions is the parallelism hint used when
	// Config.NumPartitions is unset
	DefaultNumPartitions = 10
)

// Config specifies query service configuration options. The zero value of
// every optional field selects its default.
type Config struct {
	DatasetManager DatasetManager // resolves dataset names to file lists; required for dataset operations
	Executor       Executor       // reads files and manages accumulators; required for dataset operations
	Master         string         // execution-engine connection target. Defaults to "local"
	AppName        string         // name that identifies this application to the engine
	NumPartitions  int            // number of partitions to spread datasets over
}

func (c *Config) normalize() {
	if c.Master == "" {
		c.Master = DefaultMaster
	}
	if c.AppName == "" {
		c.AppName = DefaultAppName
	}
	if c.NumPartitions == 0 {
		c.NumPartitions = DefaultNumPartitions
	}
}
