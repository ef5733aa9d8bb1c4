package hepquery

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnType describes the type of a column within a Schema. The String
// form is the canonical type descriptor (e.g. "float32", "array<bool>")
// and is the key used by the type-compatibility cast table.
type ColumnType interface {
	String() string                // String returns the canonical descriptor for this ColumnType
	ToString(v interface{}) string // ToString produces a string representation of a value of this ColumnType
}

// IsArrayType returns true iff the given ColumnType stores per-event arrays
func IsArrayType(colType ColumnType) bool {
	return strings.HasPrefix(colType.String(), "array<")
}

// BoolColumnType is a column type which stores a single bool per event
type BoolColumnType struct{}

// String returns the canonical descriptor for this ColumnType
func (b *BoolColumnType) String() string {
	return "bool"
}

// ToString produces a string representation of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return strconv.FormatBool(v.(bool))
}

// Uint32ColumnType is a column type which stores a single uint32 per event
type Uint32ColumnType struct{}

// String returns the canonical descriptor for this ColumnType
func (b *Uint32ColumnType) String() string {
	return "uint32"
}

// ToString produces a string representation of a Uint32ColumnType value
func (b *Uint32ColumnType) ToString(v interface{}) string {
	return strconv.FormatUint(uint64(v.(uint32)), 10)
}

// Uint64ColumnType is a column type which stores a single uint64 per event
type Uint64ColumnType struct{}

// String returns the canonical descriptor for this ColumnType
func (b *Uint64ColumnType) String() string {
	return "uint64"
}

// ToString produces a string representation of a Uint64ColumnType value
func (b *Uint64ColumnType) ToString(v interface{}) string {
	return strconv.FormatUint(v.(uint64), 10)
}

// Int32ColumnType is a column type which stores a single int32 per event
type Int32ColumnType struct{}

// String returns the canonical descriptor for this ColumnType
func (b *Int32ColumnType) String() string {
	return "int32"
}

// ToString produces a string representation of an Int32ColumnType value
func (b *Int32ColumnType) ToString(v interface{}) string {
	return strconv.FormatInt(int64(v.(int32)), 10)
}

// Int64ColumnType is a column type which stores a single int64 per event
type Int64ColumnType struct{}

// String returns the canonical descriptor for this ColumnType
func (b *Int64ColumnType) String() string {
	return "int64"
}

// ToString produces a string representation of an Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return strconv.FormatInt(v.(int64), 10)
}

// Float32ColumnType is a column type which stores a single float32 per event
type Float32ColumnType struct{}

// String returns the canonical descriptor for this ColumnType
func (b *Float32ColumnType) String() string {
	return "float32"
}

// ToString produces a string representation of a Float32ColumnType value
func (b *Float32ColumnType) ToString(v interface{}) string {
	return strconv.FormatFloat(float64(v.(float32)), 'g', -1, 32)
}

// Float64ColumnType is a column type which stores a single float64 per event
type Float64ColumnType struct{}

// String returns the canonical descriptor for this ColumnType
func (b *Float64ColumnType) String() string {
	return "float64"
}

// ToString produces a string representation of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return strconv.FormatFloat(v.(float64), 'g', -1, 64)
}

// VarStringColumnType is a column type which stores a variable-length string value
type VarStringColumnType struct{}

// String returns the canonical descriptor for this ColumnType
func (b *VarStringColumnType) String() string {
	return "string"
}

// ToString produces a string representation of a VarStringColumnType value
func (b *VarStringColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%q", v.(string))
}

// BoolArrayColumnType is a column type which stores a variable-length bool array per event
type BoolArrayColumnType struct{}

// String returns the canonical descriptor for this ColumnType
func (b *BoolArrayColumnType) String() string {
	return "array<bool>"
}

// ToString produces a string representation of a BoolArrayColumnType value
func (b *BoolArrayColumnType) ToString(v interface{}) string {
	return formatArray(v.([]bool), func(e bool) string { return strconv.FormatBool(e) })
}

// Int32ArrayColumnType is a column type which stores a variable-length int32 array per event
type Int32ArrayColumnType struct{}

// String returns the canonical descriptor for this ColumnType
func (b *Int32ArrayColumnType) String() string {
	return "array<int32>"
}

// ToString produces a string representation of an Int32ArrayColumnType value
func (b *Int32ArrayColumnType) ToString(v interface{}) string {
	return formatArray(v.([]int32), func(e int32) string { return strconv.FormatInt(int64(e), 10) })
}

// Float32ArrayColumnType is a column type which stores a variable-length float32 array per event
type Float32ArrayColumnType struct{}

// String returns the canonical descriptor for this ColumnType
func (b *Float32ArrayColumnType) String() string {
	return "array<float32>"
}

// ToString produces a string representation of a Float32ArrayColumnType value
func (b *Float32ArrayColumnType) ToString(v interface{}) string {
	return formatArray(v.([]float32), func(e float32) string {
		return strconv.FormatFloat(float64(e), 'g', -1, 32)
	})
}

// Float64ArrayColumnType is a column type which stores a variable-length float64 array per event
type Float64ArrayColumnType struct{}

// String returns the canonical descriptor for this ColumnType
func (b *Float64ArrayColumnType) String() string {
	return "array<float64>"
}

// ToString produces a string representation of a Float64ArrayColumnType value
func (b *Float64ArrayColumnType) ToString(v interface{}) string {
	return formatArray(v.([]float64), func(e float64) string {
		return strconv.FormatFloat(e, 'g', -1, 64)
	})
}

func formatArray[T any](vals []T, f func(T) string) string {
	var res strings.Builder
	res.WriteByte('[')
	for i, e := range vals {
		if i > 0 {
			res.WriteByte(' ')
		}
		res.WriteString(f(e))
	}
	res.WriteByte(']')
	return res.String()
}
