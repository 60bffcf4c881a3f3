package index

import (
	"fmt"
	"regexp"

	"github.com/kailas-cloud/searchprov/internal/domain/index/field"
)

var nameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$`)

// Index is the search index aggregate: a name plus an ordered field schema.
type Index struct {
	name   string
	fields []field.Field
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("index name is required")
	}
	if len(name) > 128 {
		return fmt.Errorf("index name too long (max 128)")
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("index name %q must be lowercase letters, digits or dashes and start and end with a letter or digit", name)
	}
	return nil
}

func validateFields(fields []field.Field) error {
	if len(fields) == 0 {
		return fmt.Errorf("at least one field is required")
	}
	seen := make(map[string]bool, len(fields))
	keys := 0
	for _, f := range fields {
		if seen[f.Name()] {
			return fmt.Errorf("duplicate field name: %s", f.Name())
		}
		seen[f.Name()] = true
		if f.IsKey() {
			keys++
		}
	}
	if keys != 1 {
		return fmt.Errorf("exactly one key field is required, got %d", keys)
	}
	return nil
}

// New validates and creates an Index.
// Exactly one field must be marked as key.
func New(name string, fields []field.Field) (Index, error) {
	if err := validateName(name); err != nil {
		return Index{}, err
	}
	if err := validateFields(fields); err != nil {
		return Index{}, err
	}
	return Index{name: name, fields: fields}, nil
}

// Name returns the index name.
func (i Index) Name() string { return i.name }

// Fields returns the field schema in declaration order.
func (i Index) Fields() []field.Field { return i.fields }

// KeyField returns the key field.
func (i Index) KeyField() field.Field {
	for _, f := range i.fields {
		if f.IsKey() {
			return f
		}
	}
	return field.Field{}
}

// FieldByName looks up a field by name.
func (i Index) FieldByName(name string) (field.Field, bool) {
	for _, f := range i.fields {
		if f.Name() == name {
			return f, true
		}
	}
	return field.Field{}, false
}

// Reconstruct creates an Index without validation.
func Reconstruct(name string, fields []field.Field) Index {
	return Index{name: name, fields: fields}
}
