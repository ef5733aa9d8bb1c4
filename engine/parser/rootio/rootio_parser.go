// Package rootio parses ROOT event files, reading flat TTrees such as
// NanoAOD. Branch types map onto column types directly; branches with
// unsupported types are skipped during inference.
package rootio

import (
	"context"
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"

	"github.com/lgray/hepquery"
	"github.com/lgray/hepquery/schema"
)

// ParserConf configures a ROOT Parser
type ParserConf struct {
	TreeName string // The name of the tree holding event data. Defaults to "Events".
}

// Parser produces rows from ROOT trees
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new ROOT Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.TreeName == "" {
		conf.TreeName = "Events"
	}
	return &Parser{conf: conf}
}

// Name identifies the format handled by this Parser
func (p *Parser) Name() string {
	return "root"
}

func (p *Parser) openTree(path string) (*riofs.File, rtree.Tree, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, nil, err
	}
	obj, err := f.Get(p.conf.TreeName)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	tree, ok := obj.(rtree.Tree)
	if !ok {
		f.Close()
		return nil, nil, fmt.Errorf("%s: %q is not a tree", path, p.conf.TreeName)
	}
	return f, tree, nil
}

func columnTypeOf(value interface{}) hepquery.ColumnType {
	switch value.(type) {
	case *bool:
		return &hepquery.BoolColumnType{}
	case *uint32:
		return &hepquery.Uint32ColumnType{}
	case *uint64:
		return &hepquery.Uint64ColumnType{}
	case *int32:
		return &hepquery.Int32ColumnType{}
	case *int64:
		return &hepquery.Int64ColumnType{}
	case *float32:
		return &hepquery.Float32ColumnType{}
	case *float64:
		return &hepquery.Float64ColumnType{}
	case *string:
		return &hepquery.VarStringColumnType{}
	case *[]bool:
		return &hepquery.BoolArrayColumnType{}
	case *[]int32:
		return &hepquery.Int32ArrayColumnType{}
	case *[]float32:
		return &hepquery.Float32ArrayColumnType{}
	case *[]float64:
		return &hepquery.Float64ArrayColumnType{}
	default:
		return nil
	}
}

// Infer derives a Schema from the branches of the event tree
func (p *Parser) Infer(path string) (hepquery.Schema, error) {
	f, tree, err := p.openTree(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := schema.CreateSchema()
	for _, rvar := range rtree.NewReadVars(tree) {
		colType := columnTypeOf(rvar.Value)
		if colType == nil {
			continue
		}
		if _, err := s.CreateColumn(rvar.Name, colType); err != nil {
			return nil, err
		}
	}
	if s.NumColumns() == 0 {
		return nil, fmt.Errorf("%s: tree %q has no readable branches", path, p.conf.TreeName)
	}
	return s, nil
}

// Parse appends every entry of the event tree to sink, restricted to the
// branches named by the schema
func (p *Parser) Parse(ctx context.Context, path string, s hepquery.Schema, sink hepquery.RowSink) error {
	f, tree, err := p.openTree(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var rvars []rtree.ReadVar
	for _, rvar := range rtree.NewReadVars(tree) {
		if s.HasColumn(rvar.Name) {
			rvars = append(rvars, rvar)
		}
	}
	if len(rvars) != s.NumColumns() {
		return fmt.Errorf("%s: tree %q does not carry every schema branch", path, p.conf.TreeName)
	}

	r, err := rtree.NewReader(tree, rvars)
	if err != nil {
		return err
	}
	defer r.Close()

	return r.Read(func(rctx rtree.RCtx) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := sink.NewRow()
		for _, rvar := range rvars {
			if err := setCell(row, rvar.Name, rvar.Value); err != nil {
				return err
			}
		}
		return sink.Append(row)
	})
}

// setCell copies a branch value into a row cell. Slices are deep-copied,
// since the reader reuses its buffers between entries.
func setCell(row hepquery.Row, name string, value interface{}) error {
	switch v := value.(type) {
	case *bool:
		return row.SetBool(name, *v)
	case *uint32:
		return row.SetUint32(name, *v)
	case *uint64:
		return row.SetUint64(name, *v)
	case *int32:
		return row.SetInt32(name, *v)
	case *int64:
		return row.SetInt64(name, *v)
	case *float32:
		return row.SetFloat32(name, *v)
	case *float64:
		return row.SetFloat64(name, *v)
	case *string:
		return row.SetVarString(name, *v)
	case *[]bool:
		return row.SetBoolArray(name, append([]bool(nil), *v...))
	case *[]int32:
		return row.SetInt32Array(name, append([]int32(nil), *v...))
	case *[]float32:
		return row.SetFloat32Array(name, append([]float32(nil), *v...))
	case *[]float64:
		return row.SetFloat64Array(name, append([]float64(nil), *v...))
	default:
		return fmt.Errorf("ROOT parsing does not support branch type %T for %s", value, name)
	}
}
