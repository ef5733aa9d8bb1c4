// Package dsv parses delimiter-separated event files. The first
// non-comment line of each file is a header naming the columns; column
// types are inferred from a sample of rows unless overridden in the
// ParserConf.
package dsv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/lgray/hepquery"
	"github.com/lgray/hepquery/schema"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	Delimiter   rune                             // The delimiter separating columns. Defaults to ,
	Comment     rune                             // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue    string                           // A special string which represents nil values. Defaults to "" (the empty string).
	ColumnTypes map[string]hepquery.ColumnType   // Overrides inferred types for the named columns
	SampleRows  int                              // The number of rows examined during type inference. Defaults to 10.
}

// Parser produces rows from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	if conf.SampleRows == 0 {
		conf.SampleRows = 10
	}
	return &Parser{conf: conf}
}

// Name identifies the format handled by this Parser
func (p *Parser) Name() string {
	return "dsv"
}

func (p *Parser) newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	return reader
}

// Infer derives a Schema from the header and a sample of rows
func (p *Parser) Infer(path string) (hepquery.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	reader := p.newReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	sample := make([][]string, 0, p.conf.SampleRows)
	for len(sample) < p.conf.SampleRows {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		sample = append(sample, record)
	}

	s := schema.CreateSchema()
	for i, name := range header {
		colType, ok := p.conf.ColumnTypes[name]
		if !ok {
			values := make([]string, 0, len(sample))
			for _, record := range sample {
				if record[i] != p.conf.NilValue {
					values = append(values, record[i])
				}
			}
			colType = inferColumnType(name, values)
		}
		if _, err := s.CreateColumn(name, colType); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Parse appends every row of the file at path to sink. Malformed rows are
// aggregated into a single error rather than aborting the file.
func (p *Parser) Parse(ctx context.Context, path string, s hepquery.Schema, sink hepquery.RowSink) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	reader := p.newReader(f)
	reader.FieldsPerRecord = s.NumColumns()

	header, err := reader.Read()
	if err != nil {
		return err
	}
	colTypes := make([]hepquery.ColumnType, len(header))
	for i, name := range header {
		col, err := s.GetOffset(name)
		if err != nil {
			return err
		}
		colTypes[i] = col.Type()
	}

	var errs *multierror.Error
	for lineNum := 2; ; lineNum++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		row := sink.NewRow()
		if err := scanRow(p.conf, header, colTypes, record, row); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s:%d: %w", path, lineNum, err))
			continue
		}
		if err := sink.Append(row); err != nil {
			return err
		}
	}
	return errs.ErrorOrNil()
}
