// Package jsonl parses JSON lines event files. Column names are gjson
// paths evaluated against each line; the schema is inferred from the keys
// of the first line unless overridden in the ParserConf.
package jsonl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"

	"github.com/lgray/hepquery"
	"github.com/lgray/hepquery/schema"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	Comment       rune                           // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize int                            // Maximum size in bytes of the buffer used to read lines from the file
	ColumnTypes   map[string]hepquery.ColumnType // Overrides inferred types for the named columns
	SampleRows    int                            // The number of lines examined during type inference. Defaults to 10.
}

// Parser produces rows from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	if conf.SampleRows == 0 {
		conf.SampleRows = 10
	}
	return &Parser{conf: conf}
}

// Name identifies the format handled by this Parser
func (p *Parser) Name() string {
	return "jsonl"
}

func (p *Parser) newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	return scanner
}

func (p *Parser) skip(line string) bool {
	if len(strings.TrimSpace(line)) == 0 {
		return true
	}
	if p.conf.Comment == 0 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(line)
	return r == p.conf.Comment
}

// Infer derives a Schema from the keys of the first line, with types
// refined over a sample of lines
func (p *Parser) Infer(path string) (hepquery.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scanner := p.newScanner(f)

	var names []string
	sample := make(map[string][]gjson.Result)
	lines := 0
	for scanner.Scan() && lines < p.conf.SampleRows {
		line := scanner.Text()
		if p.skip(line) {
			continue
		}
		parsed := gjson.Parse(line)
		if !parsed.IsObject() {
			return nil, fmt.Errorf("%s: line is not a JSON object", path)
		}
		parsed.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			if _, seen := sample[name]; !seen {
				names = append(names, name)
			}
			sample[name] = append(sample[name], value)
			return true
		})
		lines++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if lines == 0 {
		return nil, fmt.Errorf("%s: no data lines to infer a schema from", path)
	}

	s := schema.CreateSchema()
	for _, name := range names {
		colType, ok := p.conf.ColumnTypes[name]
		if !ok {
			colType = inferColumnType(name, sample[name])
		}
		if _, err := s.CreateColumn(name, colType); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Parse appends every line of the file at path to sink. Malformed lines
// are aggregated into a single error rather than aborting the file.
func (p *Parser) Parse(ctx context.Context, path string, s hepquery.Schema, sink hepquery.RowSink) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := p.newScanner(f)

	names := s.ColumnNames()
	colTypes := s.ColumnTypes()

	var errs *multierror.Error
	for lineNum := 1; scanner.Scan(); lineNum++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Text()
		if p.skip(line) {
			continue
		}
		row := sink.NewRow()
		if err := scanLine(line, names, colTypes, row); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s:%d: %w", path, lineNum, err))
			continue
		}
		if err := sink.Append(row); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return errs.ErrorOrNil()
}
