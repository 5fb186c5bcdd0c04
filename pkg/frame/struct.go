package frame

import (
	"fmt"

	"github.com/samber/lo"
)

// Struct is a named record of equal-length field columns
type Struct struct {
	name   string
	fields []*Column
}

// NewStruct groups fields under a name. Field names must be unique and
// every field must have the same length.
func NewStruct(name string, fields ...*Column) (*Struct, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("struct %q has no fields: %w", name, ErrInvalidArguments)
	}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Len() != fields[0].Len() {
			return nil, fmt.Errorf("struct %q field %q: %w", name, f.Name(), ErrShapeMismatch)
		}
		if _, ok := seen[f.Name()]; ok {
			return nil, fmt.Errorf("struct %q field %q: %w", name, f.Name(), ErrDuplicateColumn)
		}
		seen[f.Name()] = struct{}{}
	}

	return &Struct{name: name, fields: fields}, nil
}

// Name returns the struct name.
func (s *Struct) Name() string { return s.name }

// Len returns the row count shared by every field.
func (s *Struct) Len() int { return s.fields[0].Len() }

// Rename returns a struct with the same fields under a new name
func (s *Struct) Rename(name string) Value {
	return &Struct{name: name, fields: s.fields}
}

// Fields returns the field columns in order
func (s *Struct) Fields() []*Column {
	return s.fields
}

// FieldNames returns the field names in order
func (s *Struct) FieldNames() []string {
	return lo.Map(s.fields, func(c *Column, _ int) string { return c.Name() })
}

// Field returns the field called name
func (s *Struct) Field(name string) (*Column, error) {
	c, ok := lo.Find(s.fields, func(c *Column) bool { return c.Name() == name })
	if !ok {
		return nil, fmt.Errorf("struct %q has no field %q: %w", s.name, name, ErrFieldNotFound)
	}
	return c, nil
}
