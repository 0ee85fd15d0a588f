package dtype

import "fmt"

// Field pairs an immutable column name with its logical type. It is the
// descriptor schema and query-planning collaborators consume.
type Field struct {
	name string
	dt   DataType
}

// NewField creates a field descriptor.
func NewField(name string, dt DataType) Field {
	return Field{name: name, dt: dt}
}

// Name returns the column name.
func (f Field) Name() string { return f.name }

// DType returns the column's logical type.
func (f Field) DType() DataType { return f.dt }

// Equal reports whether both the name and the logical type match exactly.
func (f Field) Equal(other Field) bool {
	return f.name == other.name && f.dt.Equal(other.dt)
}

// String renders the field as "name: type".
func (f Field) String() string {
	return fmt.Sprintf("%s: %s", f.name, f.dt)
}
