package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lgray/hepquery"
	"github.com/lgray/hepquery/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeEventFile(t *testing.T, dir string, name string, firstEvent uint64, numEvents int) string {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.Nil(t, err)
	defer f.Close()
	for i := 0; i < numEvents; i++ {
		ev := firstEvent + uint64(i)
		fmt.Fprintf(f,
			`{"run": 1, "luminosityBlock": %d, "event": %d, "nElectron": 1, "Electron_pt": [%d.5], "Muon_pt": []}`+"\n",
			ev/100, ev, 10+i)
	}
	return path
}

func TestEngineReadFiles(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeEventFile(t, dir, "part0.jsonl", 100, 40),
		writeEventFile(t, dir, "part1.jsonl", 200, 60),
	}
	e := CreateEngine(&Options{NumPartitions: 4})
	ds, err := e.ReadFiles(context.Background(), "DY Jets", files)
	require.Nil(t, err)
	defer ds.Close()

	require.Equal(t, "DY Jets", ds.Name())
	count, err := ds.Count(context.Background())
	require.Nil(t, err)
	require.EqualValues(t, 100, count)
	// the dataset name column is injected during read
	require.Contains(t, ds.Columns(), "dataset")
}

func TestEngineSelectColumns(t *testing.T) {
	dir := t.TempDir()
	files := []string{writeEventFile(t, dir, "events.jsonl", 100, 25)}
	e := CreateEngine(&Options{})
	ds, err := e.ReadFiles(context.Background(), "DY Jets", files)
	require.Nil(t, err)
	defer ds.Close()

	sel, err := ds.SelectColumns(context.Background(), []string{"Electron_pt"})
	require.Nil(t, err)
	defer sel.Close()
	got := append([]string(nil), sel.Columns()...)
	sort.Strings(got)
	require.Equal(t, []string{"Electron_pt", "dataset", "event", "luminosityBlock", "run"}, got)
}

func TestEngineEmptyFileList(t *testing.T) {
	e := CreateEngine(&Options{})
	_, err := e.ReadFiles(context.Background(), "DY Jets", nil)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "DY Jets")
}

func TestEngineUnsupportedFormat(t *testing.T) {
	e := CreateEngine(&Options{})
	_, err := e.ReadFiles(context.Background(), "DY Jets", []string{"events.parquet"})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "events.parquet")
}

func TestEngineSchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	good := writeEventFile(t, dir, "good.jsonl", 100, 5)
	bad := filepath.Join(dir, "bad.jsonl")
	require.Nil(t, os.WriteFile(bad, []byte(`{"event": 1, "met": 2.5}`+"\n"), 0644))
	e := CreateEngine(&Options{})
	_, err := e.ReadFiles(context.Background(), "DY Jets", []string{good, bad})
	require.NotNil(t, err)
	var mismatch errors.SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, bad, mismatch.Path)
	require.NotNil(t, mismatch.Reason)
	require.Contains(t, err.Error(), "bad.jsonl")
}

// rowCounter is a trivial Accumulator used to exercise the accumulation protocol
type rowCounter struct {
	n int64
}

func (c *rowCounter) Accumulate(row hepquery.Row) error {
	c.n++
	return nil
}

func (c *rowCounter) Merge(o hepquery.Accumulator) error {
	other, ok := o.(*rowCounter)
	if !ok {
		return fmt.Errorf("cannot merge %T into a rowCounter", o)
	}
	c.n += other.n
	return nil
}

// mergeSpec combines partial results by Merge, treating the absent
// sentinel as an identity value
type mergeSpec struct{}

func (mergeSpec) Zero(initial hepquery.Partial) hepquery.Partial {
	return initial
}

func (mergeSpec) Combine(a, b hepquery.Partial) (hepquery.Partial, error) {
	if a.IsAbsent() {
		return b, nil
	}
	if b.IsAbsent() {
		return a, nil
	}
	if err := a.Accumulator().Merge(b.Accumulator()); err != nil {
		return hepquery.Partial{}, err
	}
	return a, nil
}

func TestEngineAccumulate(t *testing.T) {
	dir := t.TempDir()
	files := []string{writeEventFile(t, dir, "events.jsonl", 100, 50)}
	e := CreateEngine(&Options{NumPartitions: 4})
	ds, err := e.ReadFiles(context.Background(), "DY Jets", files)
	require.Nil(t, err)
	defer ds.Close()

	h, err := e.RegisterAccumulator(hepquery.Absent(), mergeSpec{})
	require.Nil(t, err)
	_, ok := h.Value()
	require.False(t, ok)

	require.Nil(t, e.Accumulate(context.Background(), ds, h, func() hepquery.Accumulator {
		return &rowCounter{}
	}))
	acc, ok := h.Value()
	require.True(t, ok)
	require.EqualValues(t, 50, acc.(*rowCounter).n)
}
