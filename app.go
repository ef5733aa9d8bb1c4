package hepquery

import (
	"context"
	"fmt"
	"log"

	"github.com/lgray/hepquery/logging"
)

// App is the composition root for an analysis session, wiring together a
// DatasetManager and an Executor from a Config.
type App struct {
	config   *Config
	executor Executor
	manager  DatasetManager
	log      *log.Logger
}

// CreateApp constructs an App from a Config, applying defaults to any
// unset options
func CreateApp(config *Config) *App {
	config.normalize()
	return &App{
		config:   config,
		executor: config.Executor,
		manager:  config.DatasetManager,
		log:      logging.Logger("app", logging.InfoLevel),
	}
}

// Config returns this App's Config
func (a *App) Config() *Config {
	return a.config
}

// Executor returns this App's Executor
func (a *App) Executor() Executor {
	return a.executor
}

// Datasets fetches the configured DatasetManager, provisioning it on
// first use
func (a *App) Datasets() (DatasetManager, error) {
	if a.manager == nil {
		return nil, fmt.Errorf("no DatasetManager configured")
	}
	if !a.manager.Provisioned() {
		if err := a.manager.Provision(a); err != nil {
			return nil, err
		}
	}
	return a.manager, nil
}

// ReadDataset creates a Dataset from files on disk, resolving the file
// list through the DatasetManager and reading it through the Executor
func (a *App) ReadDataset(ctx context.Context, datasetName string) (*Dataset, error) {
	if a.executor == nil {
		return nil, fmt.Errorf("no Executor configured")
	}
	manager, err := a.Datasets()
	if err != nil {
		return nil, err
	}
	files, err := manager.GetFileList(datasetName)
	if err != nil {
		return nil, err
	}
	a.log.Printf("reading %d files for dataset %s", len(files), datasetName)
	return a.executor.ReadFiles(ctx, datasetName, files)
}
