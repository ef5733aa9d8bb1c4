package dsv

import (
	"fmt"
	"strconv"

	"github.com/lgray/hepquery"
)

// well-known event identity columns get fixed types regardless of sampled values
var identityColumnTypes = map[string]hepquery.ColumnType{
	"run":             &hepquery.Uint32ColumnType{},
	"luminosityBlock": &hepquery.Uint32ColumnType{},
	"event":           &hepquery.Uint64ColumnType{},
	"dataset":         &hepquery.VarStringColumnType{},
}

// inferColumnType picks a column type from sampled non-nil values,
// narrowest parse first
func inferColumnType(name string, values []string) hepquery.ColumnType {
	if colType, ok := identityColumnTypes[name]; ok {
		return colType
	}
	if len(values) == 0 {
		return &hepquery.VarStringColumnType{}
	}
	isInt, isFloat, isBool := true, true, true
	for _, v := range values {
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			isFloat = false
		}
		if v != "true" && v != "false" {
			isBool = false
		}
	}
	switch {
	case isBool:
		return &hepquery.BoolColumnType{}
	case isInt:
		return &hepquery.Int64ColumnType{}
	case isFloat:
		return &hepquery.Float64ColumnType{}
	default:
		return &hepquery.VarStringColumnType{}
	}
}

// scanRow parses a slice of strings into a Row, according to a schema
func scanRow(conf *ParserConf, names []string, colTypes []hepquery.ColumnType, rowStrings []string, row hepquery.Row) error {
	for i := 0; i < len(rowStrings); i++ {
		colVal := rowStrings[i]
		// check for a nil value
		if colVal == conf.NilValue {
			row.SetNil(names[i])
			continue
		}
		// otherwise, parse type
		switch colTypes[i].(type) {
		case *hepquery.BoolColumnType:
			bval, err := strconv.ParseBool(colVal)
			if err != nil {
				return err
			}
			row.SetBool(names[i], bval)
		case *hepquery.Uint32ColumnType:
			ival, err := strconv.ParseUint(colVal, 10, 32)
			if err != nil {
				return err
			}
			row.SetUint32(names[i], uint32(ival))
		case *hepquery.Uint64ColumnType:
			ival, err := strconv.ParseUint(colVal, 10, 64)
			if err != nil {
				return err
			}
			row.SetUint64(names[i], ival)
		case *hepquery.Int32ColumnType:
			ival, err := strconv.ParseInt(colVal, 10, 32)
			if err != nil {
				return err
			}
			row.SetInt32(names[i], int32(ival))
		case *hepquery.Int64ColumnType:
			ival, err := strconv.ParseInt(colVal, 10, 64)
			if err != nil {
				return err
			}
			row.SetInt64(names[i], ival)
		case *hepquery.Float32ColumnType:
			fval, err := strconv.ParseFloat(colVal, 32)
			if err != nil {
				return err
			}
			row.SetFloat32(names[i], float32(fval))
		case *hepquery.Float64ColumnType:
			fval, err := strconv.ParseFloat(colVal, 64)
			if err != nil {
				return err
			}
			row.SetFloat64(names[i], fval)
		case *hepquery.VarStringColumnType:
			row.SetVarString(names[i], colVal)
		default:
			return fmt.Errorf("DSV parsing does not support column type %T", colTypes[i])
		}
	}
	return nil
}
