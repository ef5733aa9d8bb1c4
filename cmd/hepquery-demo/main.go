// Command hepquery-demo walks through a small analysis session: it lists
// the datasets known to a CSV registry, reads one of them, projects out
// the electron and muon columns and fills a pt histogram.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lgray/hepquery"
	"github.com/lgray/hepquery/analysis"
	"github.com/lgray/hepquery/datasets"
	"github.com/lgray/hepquery/engine"
	"github.com/lgray/hepquery/logging"
)

var (
	registryPath = flag.String("r", "testdata/datasets.csv", "path of the dataset registry")
	datasetName  = flag.String("d", "DY Jets", "name of the dataset to analyze")
	histColumn   = flag.String("c", "Electron_pt", "column to histogram")
	histBins     = flag.Int("b", 50, "number of histogram bins")
	histMin      = flag.Float64("min", 0, "lower histogram edge")
	histMax      = flag.Float64("max", 200, "upper histogram edge")
	verbose      = flag.Bool("v", false, "emit debug logging")
)

func run(ctx context.Context) error {
	e := engine.CreateEngine(&engine.Options{})
	app := hepquery.CreateApp(&hepquery.Config{
		DatasetManager: datasets.CreateFilesManager(*registryPath),
		Executor:       e,
		AppName:        "hepquery-demo",
	})

	manager, err := app.Datasets()
	if err != nil {
		return err
	}
	names, err := manager.GetNames()
	if err != nil {
		return err
	}
	fmt.Printf("datasets: %s\n", strings.Join(names, ", "))

	ds, err := app.ReadDataset(ctx, *datasetName)
	if err != nil {
		return err
	}
	defer ds.Close()

	count, err := ds.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d events\n", ds.Name(), count)
	for _, col := range ds.ColumnsWithTypes() {
		fmt.Printf("  %s (%s)\n", col.Name, col.Type.String())
	}

	leptons := ds.ColumnsForPhysicsObjects([]string{"Electron", "Muon"})
	sel, err := ds.SelectColumns(ctx, leptons)
	if err != nil {
		return err
	}
	defer sel.Close()
	if err := sel.Show(os.Stdout); err != nil {
		return err
	}

	handle, err := analysis.CreateAdapter(app.Executor(), hepquery.Absent())
	if err != nil {
		return err
	}
	facc := analysis.Histogrammer(*histColumn, *histBins, *histMin, *histMax)
	if err := e.Accumulate(ctx, sel, handle, facc); err != nil {
		return err
	}
	acc, ok := handle.Value()
	if !ok {
		return fmt.Errorf("no events were accumulated")
	}
	h := acc.(*analysis.Histogram).Hist()
	fmt.Printf("%s: %v entries, mean %.3f\n", *histColumn, h.Entries(), h.XMean())
	return nil
}

func main() {
	flag.Parse()
	if *verbose {
		logging.SetLevel(logging.DebugLevel)
	}
	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
