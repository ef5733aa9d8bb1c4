package jsonl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lgray/hepquery"
	"github.com/lgray/hepquery/memtable"
)

func writeTestFile(t *testing.T, name string, contents string) string {
	path := filepath.Join(t.TempDir(), name)
	require.Nil(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

const testEvents = `{"run": 1, "luminosityBlock": 10, "event": 100, "nElectron": 2, "Electron_pt": [31.5, 12.25], "Electron_looseId": [true, false], "met": 45.75}
{"run": 1, "luminosityBlock": 10, "event": 101, "nElectron": 0, "Electron_pt": [], "Electron_looseId": [], "met": 8.5}
{"run": 1, "luminosityBlock": 11, "event": 102, "nElectron": 1, "Electron_pt": [77.0], "Electron_looseId": [true]}
`

func TestJSONLInfer(t *testing.T) {
	path := writeTestFile(t, "events.jsonl", testEvents)
	parser := CreateParser(&ParserConf{})
	s, err := parser.Infer(path)
	require.Nil(t, err)
	require.Equal(t, 7, s.NumColumns())

	expected := map[string]hepquery.ColumnType{
		"run":              &hepquery.Uint32ColumnType{},
		"luminosityBlock":  &hepquery.Uint32ColumnType{},
		"event":            &hepquery.Uint64ColumnType{},
		"nElectron":        &hepquery.Int64ColumnType{},
		"Electron_pt":      &hepquery.Float64ArrayColumnType{},
		"Electron_looseId": &hepquery.BoolArrayColumnType{},
		"met":              &hepquery.Float64ColumnType{},
	}
	for name, colType := range expected {
		col, err := s.GetOffset(name)
		require.Nil(t, err)
		require.IsType(t, colType, col.Type(), "column %s", name)
	}
}

func TestJSONLParse(t *testing.T) {
	path := writeTestFile(t, "events.jsonl", testEvents)
	parser := CreateParser(&ParserConf{})
	s, err := parser.Infer(path)
	require.Nil(t, err)

	builder, err := memtable.CreateBuilder(s, &memtable.Options{NumPartitions: 1})
	require.Nil(t, err)
	require.Nil(t, parser.Parse(context.Background(), path, s, builder))
	tbl, err := builder.Build()
	require.Nil(t, err)
	defer tbl.Close()

	count, err := tbl.Count(context.Background())
	require.Nil(t, err)
	require.EqualValues(t, 3, count)

	p, err := tbl.GetPartition(0)
	require.Nil(t, err)
	sawNilMet := false
	var totalElectrons int64
	for i := 0; i < p.GetNumRows(); i++ {
		row := p.GetRow(i)
		n, err := row.GetInt64("nElectron")
		require.Nil(t, err)
		totalElectrons += n
		pts, err := row.GetFloat64Array("Electron_pt")
		require.Nil(t, err)
		require.Len(t, pts, int(n))
		// the third event has no met key
		if row.IsNil("met") {
			sawNilMet = true
		}
	}
	require.EqualValues(t, 3, totalElectrons)
	require.True(t, sawNilMet)
}

func TestJSONLParseBadLine(t *testing.T) {
	path := writeTestFile(t, "events.jsonl",
		`{"event": 100, "flag": true}`+"\n"+
			`{"event": 101, "flag": "yes"}`+"\n")
	parser := CreateParser(&ParserConf{})
	s, err := parser.Infer(path)
	require.Nil(t, err)

	builder, err := memtable.CreateBuilder(s, &memtable.Options{NumPartitions: 1})
	require.Nil(t, err)
	err = parser.Parse(context.Background(), path, s, builder)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "events.jsonl:2")
}

func TestJSONLComments(t *testing.T) {
	path := writeTestFile(t, "events.jsonl",
		"# skimmed 2024-03-01\n"+
			`{"event": 100, "met": 1.5}`+"\n")
	parser := CreateParser(&ParserConf{Comment: '#'})
	s, err := parser.Infer(path)
	require.Nil(t, err)
	require.Equal(t, 2, s.NumColumns())
}

func TestJSONLMultibyteComment(t *testing.T) {
	path := writeTestFile(t, "events.jsonl",
		"※ skimmed 2024-03-01\n"+
			`{"event": 100, "met": 1.5}`+"\n")
	parser := CreateParser(&ParserConf{Comment: '※'})
	s, err := parser.Infer(path)
	require.Nil(t, err)
	require.Equal(t, 2, s.NumColumns())

	builder, err := memtable.CreateBuilder(s, &memtable.Options{NumPartitions: 1})
	require.Nil(t, err)
	require.Nil(t, parser.Parse(context.Background(), path, s, builder))
	tbl, err := builder.Build()
	require.Nil(t, err)
	defer tbl.Close()
	count, err := tbl.Count(context.Background())
	require.Nil(t, err)
	require.EqualValues(t, 1, count)
}
