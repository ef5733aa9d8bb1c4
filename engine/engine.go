package engine

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/lgray/hepquery"
	"github.com/lgray/hepquery/engine/parser/dsv"
	"github.com/lgray/hepquery/engine/parser/jsonl"
	"github.com/lgray/hepquery/engine/parser/rootio"
	"github.com/lgray/hepquery/errors"
	"github.com/lgray/hepquery/logging"
	"github.com/lgray/hepquery/memtable"
)

// Options configures a local Engine
type Options struct {
	NumPartitions      int    // partitions per Table. Defaults to 10
	InMemoryPartitions int    // resident partitions before spill. Defaults to 32
	TempDir            string // spill directory. Defaults to the OS temp dir
	LoadConcurrency    int    // files parsed simultaneously. Defaults to 4
	// Parsers maps lowercased file extensions (including the dot) to the
	// parser for that format. Defaults to DefaultParsers()
	Parsers map[string]hepquery.DataSourceParser
}

func (o *Options) normalize() {
	if o.NumPartitions == 0 {
		o.NumPartitions = 10
	}
	if o.InMemoryPartitions == 0 {
		o.InMemoryPartitions = 32
	}
	if o.LoadConcurrency == 0 {
		o.LoadConcurrency = 4
	}
	if o.Parsers == nil {
		o.Parsers = DefaultParsers()
	}
}

// DefaultParsers returns the standard extension-to-parser mapping
func DefaultParsers() map[string]hepquery.DataSourceParser {
	csv := dsv.CreateParser(&dsv.ParserConf{})
	tsv := dsv.CreateParser(&dsv.ParserConf{Delimiter: '\t'})
	jl := jsonl.CreateParser(&jsonl.ParserConf{})
	rt := rootio.CreateParser(&rootio.ParserConf{})
	return map[string]hepquery.DataSourceParser{
		".csv":   csv,
		".tsv":   tsv,
		".jsonl": jl,
		".json":  jl,
		".root":  rt,
	}
}

// Engine is the local, in-process Executor implementation
type Engine struct {
	opts *Options
	log  *log.Logger
}

// CreateEngine returns a local Executor configured by opts
func CreateEngine(opts *Options) *Engine {
	if opts == nil {
		opts = &Options{}
	}
	opts.normalize()
	return &Engine{opts: opts, log: logging.Logger("engine", logging.DebugLevel)}
}

func (e *Engine) parserFor(path string) (hepquery.DataSourceParser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	p, ok := e.opts.Parsers[ext]
	if !ok {
		return nil, errors.UnsupportedFormatError{Path: path}
	}
	return p, nil
}

// ReadFiles parses the given files into a single Dataset named
// datasetName. Every file must carry the same schema; files are parsed
// concurrently, bounded by LoadConcurrency.
func (e *Engine) ReadFiles(ctx context.Context, datasetName string, files []string) (*hepquery.Dataset, error) {
	if len(files) == 0 {
		return nil, errors.EmptyFileListError{Dataset: datasetName}
	}
	parsers := make([]hepquery.DataSourceParser, len(files))
	for i, f := range files {
		p, err := e.parserFor(f)
		if err != nil {
			return nil, err
		}
		parsers[i] = p
	}
	schema, err := parsers[0].Infer(files[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(files); i++ {
		other, err := parsers[i].Infer(files[i])
		if err != nil {
			return nil, err
		}
		if err := schema.Equals(other); err != nil {
			return nil, errors.SchemaMismatchError{Path: files[i], Reason: err}
		}
	}

	builder, err := memtable.CreateBuilder(schema, &memtable.Options{
		NumPartitions:      e.opts.NumPartitions,
		InMemoryPartitions: e.opts.InMemoryPartitions,
		TempDir:            e.opts.TempDir,
	})
	if err != nil {
		return nil, err
	}

	sem := semaphore.NewWeighted(int64(e.opts.LoadConcurrency))
	g, gctx := errgroup.WithContext(ctx)
	for i := range files {
		i := i
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			e.log.Printf("parsing %s", files[i])
			return parsers[i].Parse(gctx, files[i], schema, builder)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return hepquery.CreateDataset(datasetName, table)
}

// RegisterAccumulator registers an AccumulatorSpec, returning a handle
// seeded with spec.Zero(initial)
func (e *Engine) RegisterAccumulator(initial hepquery.Partial, spec hepquery.AccumulatorSpec) (hepquery.AccumulatorHandle, error) {
	if spec == nil {
		return nil, fmt.Errorf("accumulator spec must not be nil")
	}
	return createHandle(spec.Zero(initial), spec)
}

// Accumulate folds every row of the Dataset into the handle. Each
// partition is reduced independently by a fresh Accumulator from facc,
// then the partial results are combined through the handle.
func (e *Engine) Accumulate(ctx context.Context, ds *hepquery.Dataset, h hepquery.AccumulatorHandle, facc hepquery.AccumulatorFactory) error {
	table := ds.Table()
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < table.NumPartitions(); i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			part, err := table.GetPartition(i)
			if err != nil {
				return err
			}
			acc := facc()
			var errs *multierror.Error
			for j := 0; j < part.GetNumRows(); j++ {
				if err := acc.Accumulate(part.GetRow(j)); err != nil {
					errs = multierror.Append(errs, err)
				}
			}
			if err := errs.ErrorOrNil(); err != nil {
				return err
			}
			return h.Add(acc)
		})
	}
	return g.Wait()
}
