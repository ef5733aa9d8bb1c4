package dsv

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

func TestDSVInfer(t *testing.T) {
	path := writeTestFile(t, "events.csv",
		"run,luminosityBlock,event,nMuon,met,isData\n"+
			"1,10,100,2,31.5,false\n"+
			"1,10,101,0,12.25,false\n")
	parser := CreateParser(&ParserConf{})
	s, err := parser.Infer(path)
	require.Nil(t, err)
	require.Equal(t, 6, s.NumColumns())

	expected := map[string]hepquery.ColumnType{
		"run":             &hepquery.Uint32ColumnType{},
		"luminosityBlock": &hepquery.Uint32ColumnType{},
		"event":           &hepquery.Uint64ColumnType{},
		"nMuon":           &hepquery.Int64ColumnType{},
		"met":             &hepquery.Float64ColumnType{},
		"isData":          &hepquery.BoolColumnType{},
	}
	for name, colType := range expected {
		col, err := s.GetOffset(name)
		require.Nil(t, err)
		require.IsType(t, colType, col.Type())
	}
}

func TestDSVInferOverride(t *testing.T) {
	path := writeTestFile(t, "events.csv", "nMuon\n2\n")
	parser := CreateParser(&ParserConf{ColumnTypes: map[string]hepquery.ColumnType{
		"nMuon": &hepquery.Int32ColumnType{},
	}})
	s, err := parser.Infer(path)
	require.Nil(t, err)
	col, err := s.GetOffset("nMuon")
	require.Nil(t, err)
	require.IsType(t, &hepquery.Int32ColumnType{}, col.Type())
}

func TestDSVParse(t *testing.T) {
	path := writeTestFile(t, "events.csv",
		"# produced by the skimmer\n"+
			"run,event,met,tag\n"+
			"1,100,31.5,prompt\n"+
			"1,101,12.25,\n")
	parser := CreateParser(&ParserConf{Comment: '#'})
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
	require.EqualValues(t, 2, count)

	p, err := tbl.GetPartition(0)
	require.Nil(t, err)
	sawNilTag := false
	for i := 0; i < p.GetNumRows(); i++ {
		row := p.GetRow(i)
		run, err := row.GetUint32("run")
		require.Nil(t, err)
		require.EqualValues(t, 1, run)
		if row.IsNil("tag") {
			sawNilTag = true
		}
	}
	require.True(t, sawNilTag)
}

func TestDSVParseBadRow(t *testing.T) {
	path := writeTestFile(t, "events.csv",
		"run,met\n"+
			"1,31.5\n"+
			"1,not-a-number\n"+
			"2,12.0\n")
	parser := CreateParser(&ParserConf{ColumnTypes: map[string]hepquery.ColumnType{
		"met": &hepquery.Float64ColumnType{},
	}})
	s, err := parser.Infer(path)
	require.Nil(t, err)

	builder, err := memtable.CreateBuilder(s, &memtable.Options{NumPartitions: 1})
	require.Nil(t, err)
	err = parser.Parse(context.Background(), path, s, builder)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "events.csv:3")

	// good rows still land
	tbl, err := builder.Build()
	require.Nil(t, err)
	defer tbl.Close()
	count, err := tbl.Count(context.Background())
	require.Nil(t, err)
	require.EqualValues(t, 2, count)
}
