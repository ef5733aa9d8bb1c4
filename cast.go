package hepquery

import "fmt"

// There is no support in the downstream serialization format (arrow) for
// certain datatypes. Avoid exceptions by casting such columns to a
// supported datatype. Keyed by type descriptor; extend by adding entries.
var arrowColumnConverters = map[string]ColumnType{
	(&BoolArrayColumnType{}).String(): &Int32ArrayColumnType{},
}

// CompatibleColumnExpr converts a column into a cast expression if its
// type is not supported downstream, and selects it unchanged otherwise.
func CompatibleColumnExpr(name string, colType ColumnType) ColumnExpr {
	if target, ok := arrowColumnConverters[colType.String()]; ok {
		return Col(name).Cast(target)
	}
	return Col(name)
}

// ConvertValue converts a single value between column types. Converting a
// value to its own type is a no-op, so casts reach a fixed point after one
// application. A nil value stays nil.
func ConvertValue(v interface{}, from ColumnType, to ColumnType) (interface{}, error) {
	if v == nil || from.String() == to.String() {
		return v, nil
	}
	switch from.(type) {
	case *BoolArrayColumnType:
		if _, ok := to.(*Int32ArrayColumnType); ok {
			src := v.([]bool)
			res := make([]int32, len(src))
			for i, b := range src {
				if b {
					res[i] = 1
				}
			}
			return res, nil
		}
	}
	return nil, fmt.Errorf("no conversion from %s to %s", from.String(), to.String())
}
