package hepquery

// Row is a representation of a single event (a slice of a Partition),
// along with a reference to the Schema for that row. Users of Row call its
// getter and setter methods to retrieve, manipulate and store data.
type Row interface {
	Schema() Schema                                                 // Schema returns the schema for this row
	ToString() string                                               // ToString returns a string representation of this row
	IsNil(colName string) bool                                      // IsNil returns true iff the given column value is nil in this row. If an error occurs, this function will return false.
	SetNil(colName string) error                                    // SetNil sets the given column value to nil within this row
	Get(colName string) (col interface{}, err error)                // Get returns the value of any column as an interface{}, if it exists
	GetBool(colName string) (col bool, err error)                   // GetBool retrieves a single bool from the column with the given name
	GetUint32(colName string) (col uint32, err error)               // GetUint32 retrieves a single uint32 from the column with the given name
	GetUint64(colName string) (col uint64, err error)               // GetUint64 retrieves a single uint64 from the column with the given name
	GetInt32(colName string) (col int32, err error)                 // GetInt32 retrieves a single int32 from the column with the given name
	GetInt64(colName string) (col int64, err error)                 // GetInt64 retrieves a single int64 from the column with the given name
	GetFloat32(colName string) (col float32, err error)             // GetFloat32 retrieves a single float32 from the column with the given name
	GetFloat64(colName string) (col float64, err error)             // GetFloat64 retrieves a single float64 from the column with the given name
	GetVarString(colName string) (col string, err error)            // GetVarString retrieves a single string from the column with the given name
	GetBoolArray(colName string) (col []bool, err error)            // GetBoolArray retrieves a bool array from the column with the given name
	GetInt32Array(colName string) (col []int32, err error)          // GetInt32Array retrieves an int32 array from the column with the given name
	GetFloat32Array(colName string) (col []float32, err error)      // GetFloat32Array retrieves a float32 array from the column with the given name
	GetFloat64Array(colName string) (col []float64, err error)      // GetFloat64Array retrieves a float64 array from the column with the given name
	SetBool(colName string, value bool) (err error)                 // SetBool modifies a single bool from the column with the given name
	SetUint32(colName string, value uint32) (err error)             // SetUint32 modifies a single uint32 from the column with the given name
	SetUint64(colName string, value uint64) (err error)             // SetUint64 modifies a single uint64 from the column with the given name
	SetInt32(colName string, value int32) (err error)               // SetInt32 modifies a single int32 from the column with the given name
	SetInt64(colName string, value int64) (err error)               // SetInt64 modifies a single int64 from the column with the given name
	SetFloat32(colName string, value float32) (err error)           // SetFloat32 modifies a single float32 from the column with the given name
	SetFloat64(colName string, value float64) (err error)           // SetFloat64 modifies a single float64 from the column with the given name
	SetVarString(colName string, value string) (err error)          // SetVarString modifies a single string from the column with the given name
	SetBoolArray(colName string, value []bool) (err error)          // SetBoolArray modifies a bool array from the column with the given name
	SetInt32Array(colName string, value []int32) (err error)        // SetInt32Array modifies an int32 array from the column with the given name
	SetFloat32Array(colName string, value []float32) (err error)    // SetFloat32Array modifies a float32 array from the column with the given name
	SetFloat64Array(colName string, value []float64) (err error)    // SetFloat64Array modifies a float64 array from the column with the given name
}
