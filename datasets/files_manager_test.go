package datasets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeRegistry(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "datasets.csv")
	require.Nil(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestFilesManagerProvision(t *testing.T) {
	path := writeRegistry(t,
		"dataset,file\n"+
			"# DY+jets skim\n"+
			"DY Jets,/data/dy_1.jsonl\n"+
			"DY Jets,/data/dy_2.jsonl\n"+
			"TTbar,/data/ttbar_1.jsonl\n")
	m := CreateFilesManager(path)
	require.False(t, m.Provisioned())
	require.Nil(t, m.Provision(nil))
	require.True(t, m.Provisioned())

	names, err := m.GetNames()
	require.Nil(t, err)
	require.Equal(t, []string{"DY Jets", "TTbar"}, names)

	files, err := m.GetFileList("DY Jets")
	require.Nil(t, err)
	require.Equal(t, []string{"/data/dy_1.jsonl", "/data/dy_2.jsonl"}, files)
}

func TestFilesManagerUnprovisioned(t *testing.T) {
	m := CreateFilesManager("nowhere.csv")
	_, err := m.GetNames()
	require.NotNil(t, err)
	_, err = m.GetFileList("DY Jets")
	require.NotNil(t, err)
}

func TestFilesManagerUnknownDataset(t *testing.T) {
	path := writeRegistry(t, "DY Jets,/data/dy_1.jsonl\n")
	m := CreateFilesManager(path)
	require.Nil(t, m.Provision(nil))
	_, err := m.GetFileList("WJets")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "WJets")
}

func TestFilesManagerMalformedRegistry(t *testing.T) {
	path := writeRegistry(t,
		"DY Jets,/data/dy_1.jsonl\n"+
			"TTbar\n"+
			"WJets,\n")
	m := CreateFilesManager(path)
	err := m.Provision(nil)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "record 2")
	require.Contains(t, err.Error(), "record 3")
	require.False(t, m.Provisioned())
}

func TestFilesManagerMissingRegistry(t *testing.T) {
	m := CreateFilesManager(filepath.Join(t.TempDir(), "absent.csv"))
	require.NotNil(t, m.Provision(nil))
}
