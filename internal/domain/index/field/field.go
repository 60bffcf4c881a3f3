package field

import (
	"fmt"
	"regexp"
)

// Type is the EDM data type of a field.
type Type string

// Field type constants.
const (
	String         Type = "Edm.String"
	Int32          Type = "Edm.Int32"
	Int64          Type = "Edm.Int64"
	Double         Type = "Edm.Double"
	Boolean        Type = "Edm.Boolean"
	DateTimeOffset Type = "Edm.DateTimeOffset"
)

// IsValid checks if the type is one of the supported primitive types.
func (t Type) IsValid() bool {
	switch t {
	case String, Int32, Int64, Double, Boolean, DateTimeOffset:
		return true
	}
	return false
}

var nameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Field is an immutable value object describing a simple index field.
// Simple fields are retrievable and never full-text searchable.
type Field struct {
	name       string
	fieldType  Type
	filterable bool
	key        bool
}

// Option tweaks a field during construction.
type Option func(*Field)

// Filterable marks the field usable in $filter expressions.
func Filterable() Option {
	return func(f *Field) { f.filterable = true }
}

// Key marks the field as the document key.
func Key() Option {
	return func(f *Field) { f.key = true }
}

// New validates and creates a Field.
// Name must start with a letter, contain only letters, digits and underscores, max 128 chars.
// Key fields must be Edm.String.
func New(name string, ft Type, opts ...Option) (Field, error) {
	if name == "" {
		return Field{}, fmt.Errorf("field name is required")
	}
	if len(name) > 128 {
		return Field{}, fmt.Errorf("field name %q too long (max 128)", name)
	}
	if !nameRegex.MatchString(name) {
		return Field{}, fmt.Errorf("field name %q must start with a letter and contain only letters, digits and underscores", name)
	}
	if !ft.IsValid() {
		return Field{}, fmt.Errorf("invalid field type %q for %q", ft, name)
	}

	f := Field{name: name, fieldType: ft}
	for _, o := range opts {
		o(&f)
	}
	if f.key && f.fieldType != String {
		return Field{}, fmt.Errorf("key field %q must be %s, got %s", name, String, ft)
	}
	return f, nil
}

// Reconstruct creates a Field without validation.
func Reconstruct(name string, ft Type, filterable, key bool) Field {
	return Field{name: name, fieldType: ft, filterable: filterable, key: key}
}

// Name returns the field name.
func (f Field) Name() string { return f.name }

// FieldType returns the EDM type.
func (f Field) FieldType() Type { return f.fieldType }

// IsFilterable reports whether the field can be used in filters.
func (f Field) IsFilterable() bool { return f.filterable }

// IsKey reports whether the field is the document key.
func (f Field) IsKey() bool { return f.key }
