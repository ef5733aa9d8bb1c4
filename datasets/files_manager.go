package datasets

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/lgray/hepquery"
	"github.com/lgray/hepquery/errors"
	"github.com/lgray/hepquery/logging"
)

// FilesManager is a DatasetManager backed by a CSV registry file. Each
// record maps a dataset name to one event file; a dataset spanning many
// files appears once per file. An optional "dataset,file" header and
// lines beginning with # are ignored.
type FilesManager struct {
	databaseFile string
	files        map[string][]string
	names        []string
	provisioned  bool
	log          *log.Logger
}

// CreateFilesManager returns a FilesManager reading the given registry file
func CreateFilesManager(databaseFile string) *FilesManager {
	return &FilesManager{
		databaseFile: databaseFile,
		log:          logging.Logger("datasets", logging.InfoLevel),
	}
}

// Provisioned returns true iff this manager has loaded its registry
func (m *FilesManager) Provisioned() bool {
	return m.provisioned
}

// Provision loads the registry file. Malformed records are aggregated
// into a single error naming every offending line, and leave the manager
// unprovisioned.
func (m *FilesManager) Provision(app *hepquery.App) error {
	f, err := os.Open(m.databaseFile)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	m.files = make(map[string][]string)
	m.names = nil
	var errs *multierror.Error
	for recordNum := 1; ; recordNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if recordNum == 1 && len(record) == 2 && record[0] == "dataset" && record[1] == "file" {
			continue
		}
		if len(record) != 2 || record[0] == "" || record[1] == "" {
			errs = multierror.Append(errs, fmt.Errorf("%s: record %d: expected a dataset name and a file", m.databaseFile, recordNum))
			continue
		}
		name, file := record[0], record[1]
		if _, seen := m.files[name]; !seen {
			m.names = append(m.names, name)
		}
		m.files[name] = append(m.files[name], file)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}
	m.provisioned = true
	m.log.Printf("loaded %d datasets from %s", len(m.names), m.databaseFile)
	return nil
}

// GetNames lists the known dataset names, in registry order
func (m *FilesManager) GetNames() ([]string, error) {
	if !m.provisioned {
		return nil, errors.UnprovisionedError{}
	}
	return m.names, nil
}

// GetFileList returns the files making up the named dataset
func (m *FilesManager) GetFileList(datasetName string) ([]string, error) {
	if !m.provisioned {
		return nil, errors.UnprovisionedError{}
	}
	files, ok := m.files[datasetName]
	if !ok {
		return nil, errors.DatasetNotFoundError{Name: datasetName}
	}
	return files, nil
}
