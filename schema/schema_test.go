package schema

import (
	"testing"

	"github.com/lgray/hepquery"
	"github.com/stretchr/testify/require"
)

func TestSchemaEqualityBasic(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("event", &hepquery.Uint64ColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("dataset", &hepquery.VarStringColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("Electron_pt", &hepquery.Float32ArrayColumnType{})
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("event", &hepquery.Uint64ColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("dataset", &hepquery.VarStringColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("Electron_pt", &hepquery.Float32ArrayColumnType{})
	require.Nil(t, err)

	require.Nil(t, schema1.Equals(schema2))
}

func TestSchemaEqualityDifferentTypes(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("event", &hepquery.Uint64ColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("nElectron", &hepquery.Uint32ColumnType{})
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("event", &hepquery.Uint64ColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("nElectron", &hepquery.Int64ColumnType{})
	require.Nil(t, err)

	require.NotNil(t, schema1.Equals(schema2))
}

func TestSchemaEqualityOrder(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("run", &hepquery.Uint32ColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("event", &hepquery.Uint64ColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("Muon_pt", &hepquery.Float32ArrayColumnType{})
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("run", &hepquery.Uint32ColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("Muon_pt", &hepquery.Float32ArrayColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("event", &hepquery.Uint64ColumnType{})
	require.Nil(t, err)

	require.NotNil(t, schema1.Equals(schema2))
}

func TestSchemaDuplicateColumn(t *testing.T) {
	s := CreateSchema()
	_, err := s.CreateColumn("event", &hepquery.Uint64ColumnType{})
	require.Nil(t, err)
	_, err = s.CreateColumn("event", &hepquery.Uint64ColumnType{})
	require.NotNil(t, err)
}

func TestSchemaColumnNamesOrder(t *testing.T) {
	s := CreateSchema()
	for _, name := range []string{"run", "luminosityBlock", "event", "nMuon"} {
		_, err := s.CreateColumn(name, &hepquery.Uint64ColumnType{})
		require.Nil(t, err)
	}
	require.Equal(t, []string{"run", "luminosityBlock", "event", "nMuon"}, s.ColumnNames())
}

func TestSchemaGetOffsetUnknownColumn(t *testing.T) {
	s := CreateSchema()
	_, err := s.GetOffset("nope")
	require.NotNil(t, err)
	require.False(t, s.HasColumn("nope"))
}
