package jsonl

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	"github.com/lgray/hepquery"
)

// well-known event identity columns get fixed types regardless of sampled values
var identityColumnTypes = map[string]hepquery.ColumnType{
	"run":             &hepquery.Uint32ColumnType{},
	"luminosityBlock": &hepquery.Uint32ColumnType{},
	"event":           &hepquery.Uint64ColumnType{},
	"dataset":         &hepquery.VarStringColumnType{},
}

func isIntegral(values []gjson.Result) bool {
	for _, v := range values {
		if v.Num != math.Trunc(v.Num) {
			return false
		}
	}
	return true
}

// inferColumnType picks a column type from sampled values
func inferColumnType(name string, values []gjson.Result) hepquery.ColumnType {
	if colType, ok := identityColumnTypes[name]; ok {
		return colType
	}
	for _, v := range values {
		switch v.Type {
		case gjson.True, gjson.False:
			return &hepquery.BoolColumnType{}
		case gjson.Number:
			if isIntegral(values) {
				return &hepquery.Int64ColumnType{}
			}
			return &hepquery.Float64ColumnType{}
		case gjson.String:
			return &hepquery.VarStringColumnType{}
		case gjson.JSON:
			if v.IsArray() {
				return inferArrayType(v.Array())
			}
			return &hepquery.VarStringColumnType{}
		case gjson.Null:
			continue
		}
	}
	// every sampled value was null
	return &hepquery.VarStringColumnType{}
}

func inferArrayType(elems []gjson.Result) hepquery.ColumnType {
	for _, e := range elems {
		switch e.Type {
		case gjson.True, gjson.False:
			return &hepquery.BoolArrayColumnType{}
		case gjson.Number:
			if e.Num != math.Trunc(e.Num) {
				return &hepquery.Float64ArrayColumnType{}
			}
		}
	}
	// empty arrays and integral numbers both land here; physics object
	// kinematics are floating point, so prefer the wider type
	return &hepquery.Float64ArrayColumnType{}
}

// scanLine parses one JSON line into a Row, according to a schema.
// Missing and null values become nil cells.
func scanLine(line string, names []string, colTypes []hepquery.ColumnType, row hepquery.Row) error {
	for i, name := range names {
		res := gjson.Get(line, name)
		if !res.Exists() || res.Type == gjson.Null {
			row.SetNil(name)
			continue
		}
		if err := setValue(res, name, colTypes[i], row); err != nil {
			return err
		}
	}
	return nil
}

func setValue(res gjson.Result, colName string, colType hepquery.ColumnType, row hepquery.Row) error {
	switch colType.(type) {
	case *hepquery.BoolColumnType:
		if !res.IsBool() {
			return fmt.Errorf("Column %s was not a boolean. Was: %s", colName, res.Raw)
		}
		row.SetBool(colName, res.Bool())
	case *hepquery.Uint32ColumnType:
		row.SetUint32(colName, uint32(res.Uint()))
	case *hepquery.Uint64ColumnType:
		row.SetUint64(colName, res.Uint())
	case *hepquery.Int32ColumnType:
		row.SetInt32(colName, int32(res.Int()))
	case *hepquery.Int64ColumnType:
		row.SetInt64(colName, res.Int())
	case *hepquery.Float32ColumnType:
		row.SetFloat32(colName, float32(res.Float()))
	case *hepquery.Float64ColumnType:
		row.SetFloat64(colName, res.Float())
	case *hepquery.VarStringColumnType:
		row.SetVarString(colName, res.String())
	case *hepquery.BoolArrayColumnType:
		elems := res.Array()
		vals := make([]bool, len(elems))
		for i, e := range elems {
			vals[i] = e.Bool()
		}
		row.SetBoolArray(colName, vals)
	case *hepquery.Int32ArrayColumnType:
		elems := res.Array()
		vals := make([]int32, len(elems))
		for i, e := range elems {
			vals[i] = int32(e.Int())
		}
		row.SetInt32Array(colName, vals)
	case *hepquery.Float32ArrayColumnType:
		elems := res.Array()
		vals := make([]float32, len(elems))
		for i, e := range elems {
			vals[i] = float32(e.Float())
		}
		row.SetFloat32Array(colName, vals)
	case *hepquery.Float64ArrayColumnType:
		elems := res.Array()
		vals := make([]float64, len(elems))
		for i, e := range elems {
			vals[i] = e.Float()
		}
		row.SetFloat64Array(colName, vals)
	default:
		return fmt.Errorf("JSONL parsing does not support column type %T", colType)
	}
	return nil
}
