package memtable

import (
	"strings"

	"github.com/lgray/hepquery"
	"github.com/lgray/hepquery/errors"
)

// row is a value-based Row implementation. values is indexed by the
// schema's column indices; a nil entry is a null cell.
type row struct {
	schema hepquery.Schema
	values []interface{}
}

func createRow(s hepquery.Schema) *row {
	return &row{schema: s, values: make([]interface{}, s.NumColumns())}
}

// Schema returns the schema for this row
func (r *row) Schema() hepquery.Schema {
	return r.schema
}

// ToString returns a string representation of this row
func (r *row) ToString() string {
	var res strings.Builder
	res.WriteByte('{')
	first := true
	for _, name := range r.schema.ColumnNames() {
		offset, err := r.schema.GetOffset(name)
		if err != nil {
			continue
		}
		if !first {
			res.WriteString(", ")
		}
		first = false
		res.WriteString(name)
		res.WriteString(": ")
		v := r.values[offset.Index()]
		if v == nil {
			res.WriteString("nil")
		} else {
			res.WriteString(offset.Type().ToString(v))
		}
	}
	res.WriteByte('}')
	return res.String()
}

// IsNil returns true iff the given column value is nil in this row. If an
// error occurs, this function will return false.
func (r *row) IsNil(colName string) bool {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return false
	}
	return r.values[offset.Index()] == nil
}

// SetNil sets the given column value to nil within this row
func (r *row) SetNil(colName string) error {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return err
	}
	r.values[offset.Index()] = nil
	return nil
}

// Get returns the value of any column as an interface{}, if it exists
func (r *row) Get(colName string) (interface{}, error) {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return nil, err
	}
	return r.values[offset.Index()], nil
}

// getCell fetches a non-nil cell value for a typed getter
func (r *row) getCell(colName string) (interface{}, error) {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return nil, err
	}
	v := r.values[offset.Index()]
	if v == nil {
		return nil, errors.NilValueError{Name: colName}
	}
	return v, nil
}

// setCell stores a value for a typed setter, verifying the column type
func (r *row) setCell(colName string, value interface{}, expected hepquery.ColumnType) error {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return err
	}
	if offset.Type().String() != expected.String() {
		return errors.TypeMismatchError{Name: colName, Expected: expected.String()}
	}
	r.values[offset.Index()] = value
	return nil
}

// GetBool retrieves a single bool from the column with the given name
func (r *row) GetBool(colName string) (bool, error) {
	v, err := r.getCell(colName)
	if err != nil {
		return false, err
	}
	col, ok := v.(bool)
	if !ok {
		return false, errors.TypeMismatchError{Name: colName, Expected: "bool"}
	}
	return col, nil
}

// GetUint32 retrieves a single uint32 from the column with the given name
func (r *row) GetUint32(colName string) (uint32, error) {
	v, err := r.getCell(colName)
	if err != nil {
		return 0, err
	}
	col, ok := v.(uint32)
	if !ok {
		return 0, errors.TypeMismatchError{Name: colName, Expected: "uint32"}
	}
	return col, nil
}

// GetUint64 retrieves a single uint64 from the column with the given name
func (r *row) GetUint64(colName string) (uint64, error) {
	v, err := r.getCell(colName)
	if err != nil {
		return 0, err
	}
	col, ok := v.(uint64)
	if !ok {
		return 0, errors.TypeMismatchError{Name: colName, Expected: "uint64"}
	}
	return col, nil
}

// GetInt32 retrieves a single int32 from the column with the given name
func (r *row) GetInt32(colName string) (int32, error) {
	v, err := r.getCell(colName)
	if err != nil {
		return 0, err
	}
	col, ok := v.(int32)
	if !ok {
		return 0, errors.TypeMismatchError{Name: colName, Expected: "int32"}
	}
	return col, nil
}

// GetInt64 retrieves a single int64 from the column with the given name
func (r *row) GetInt64(colName string) (int64, error) {
	v, err := r.getCell(colName)
	if err != nil {
		return 0, err
	}
	col, ok := v.(int64)
	if !ok {
		return 0, errors.TypeMismatchError{Name: colName, Expected: "int64"}
	}
	return col, nil
}

// GetFloat32 retrieves a single float32 from the column with the given name
func (r *row) GetFloat32(colName string) (float32, error) {
	v, err := r.getCell(colName)
	if err != nil {
		return 0, err
	}
	col, ok := v.(float32)
	if !ok {
		return 0, errors.TypeMismatchError{Name: colName, Expected: "float32"}
	}
	return col, nil
}

// GetFloat64 retrieves a single float64 from the column with the given name
func (r *row) GetFloat64(colName string) (float64, error) {
	v, err := r.getCell(colName)
	if err != nil {
		return 0, err
	}
	col, ok := v.(float64)
	if !ok {
		return 0, errors.TypeMismatchError{Name: colName, Expected: "float64"}
	}
	return col, nil
}

// GetVarString retrieves a single string from the column with the given name
func (r *row) GetVarString(colName string) (string, error) {
	v, err := r.getCell(colName)
	if err != nil {
		return "", err
	}
	col, ok := v.(string)
	if !ok {
		return "", errors.TypeMismatchError{Name: colName, Expected: "string"}
	}
	return col, nil
}

// GetBoolArray retrieves a bool array from the column with the given name
func (r *row) GetBoolArray(colName string) ([]bool, error) {
	v, err := r.getCell(colName)
	if err != nil {
		return nil, err
	}
	col, ok := v.([]bool)
	if !ok {
		return nil, errors.TypeMismatchError{Name: colName, Expected: "array<bool>"}
	}
	return col, nil
}

// GetInt32Array retrieves an int32 array from the column with the given name
func (r *row) GetInt32Array(colName string) ([]int32, error) {
	v, err := r.getCell(colName)
	if err != nil {
		return nil, err
	}
	col, ok := v.([]int32)
	if !ok {
		return nil, errors.TypeMismatchError{Name: colName, Expected: "array<int32>"}
	}
	return col, nil
}

// GetFloat32Array retrieves a float32 array from the column with the given name
func (r *row) GetFloat32Array(colName string) ([]float32, error) {
	v, err := r.getCell(colName)
	if err != nil {
		return nil, err
	}
	col, ok := v.([]float32)
	if !ok {
		return nil, errors.TypeMismatchError{Name: colName, Expected: "array<float32>"}
	}
	return col, nil
}

// GetFloat64Array retrieves a float64 array from the column with the given name
func (r *row) GetFloat64Array(colName string) ([]float64, error) {
	v, err := r.getCell(colName)
	if err != nil {
		return nil, err
	}
	col, ok := v.([]float64)
	if !ok {
		return nil, errors.TypeMismatchError{Name: colName, Expected: "array<float64>"}
	}
	return col, nil
}

// SetBool modifies a single bool from the column with the given name
func (r *row) SetBool(colName string, value bool) error {
	return r.setCell(colName, value, &hepquery.BoolColumnType{})
}

// SetUint32 modifies a single uint32 from the column with the given name
func (r *row) SetUint32(colName string, value uint32) error {
	return r.setCell(colName, value, &hepquery.Uint32ColumnType{})
}

// SetUint64 modifies a single uint64 from the column with the given name
func (r *row) SetUint64(colName string, value uint64) error {
	return r.setCell(colName, value, &hepquery.Uint64ColumnType{})
}

// SetInt32 modifies a single int32 from the column with the given name
func (r *row) SetInt32(colName string, value int32) error {
	return r.setCell(colName, value, &hepquery.Int32ColumnType{})
}

// SetInt64 modifies a single int64 from the column with the given name
func (r *row) SetInt64(colName string, value int64) error {
	return r.setCell(colName, value, &hepquery.Int64ColumnType{})
}

// SetFloat32 modifies a single float32 from the column with the given name
func (r *row) SetFloat32(colName string, value float32) error {
	return r.setCell(colName, value, &hepquery.Float32ColumnType{})
}

// SetFloat64 modifies a single float64 from the column with the given name
func (r *row) SetFloat64(colName string, value float64) error {
	return r.setCell(colName, value, &hepquery.Float64ColumnType{})
}

// SetVarString modifies a single string from the column with the given name
func (r *row) SetVarString(colName string, value string) error {
	return r.setCell(colName, value, &hepquery.VarStringColumnType{})
}

// SetBoolArray modifies a bool array from the column with the given name
func (r *row) SetBoolArray(colName string, value []bool) error {
	return r.setCell(colName, value, &hepquery.BoolArrayColumnType{})
}

// SetInt32Array modifies an int32 array from the column with the given name
func (r *row) SetInt32Array(colName string, value []int32) error {
	return r.setCell(colName, value, &hepquery.Int32ArrayColumnType{})
}

// SetFloat32Array modifies a float32 array from the column with the given name
func (r *row) SetFloat32Array(colName string, value []float32) error {
	return r.setCell(colName, value, &hepquery.Float32ArrayColumnType{})
}

// SetFloat64Array modifies a float64 array from the column with the given name
func (r *row) SetFloat64Array(colName string, value []float64) error {
	return r.setCell(colName, value, &hepquery.Float64ArrayColumnType{})
}
