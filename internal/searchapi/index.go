package searchapi

import (
	"errors"
	"strconv"
)

// EDM type names accepted by the service for simple fields.
const (
	EdmString         = "Edm.String"
	EdmInt32          = "Edm.Int32"
	EdmInt64          = "Edm.Int64"
	EdmDouble         = "Edm.Double"
	EdmBoolean        = "Edm.Boolean"
	EdmDateTimeOffset = "Edm.DateTimeOffset"
)

// FieldDefinition is a single field in an index schema.
type FieldDefinition struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Key         bool   `json:"key"`
	Filterable  bool   `json:"filterable"`
	Searchable  bool   `json:"searchable"`
	Sortable    bool   `json:"sortable"`
	Facetable   bool   `json:"facetable"`
	Retrievable bool   `json:"retrievable"`
}

// IndexDefinition is the body of PUT /indexes/{name}.
type IndexDefinition struct {
	Name   string            `json:"name"`
	Fields []FieldDefinition `json:"fields"`
}

// Validate checks that the index definition is well-formed.
func (idx *IndexDefinition) Validate() error {
	if idx.Name == "" {
		return errors.New("index name is required")
	}
	if len(idx.Fields) == 0 {
		return errors.New("at least one field is required")
	}

	seen := make(map[string]bool)
	keys := 0
	for i := range idx.Fields {
		f := &idx.Fields[i]
		if f.Name == "" {
			return errors.New("field name is required at index " + strconv.Itoa(i))
		}
		if seen[f.Name] {
			return errors.New("duplicate field name: " + f.Name)
		}
		seen[f.Name] = true

		if f.Type == "" {
			return errors.New("field type is required for " + f.Name)
		}
		if f.Key {
			keys++
			if f.Type != EdmString {
				return errors.New("key field must be Edm.String: " + f.Name)
			}
		}
	}
	if keys != 1 {
		return errors.New("exactly one key field is required, got " + strconv.Itoa(keys))
	}

	return nil
}

// Key returns the key field name, empty if none.
func (idx *IndexDefinition) Key() string {
	for i := range idx.Fields {
		if idx.Fields[i].Key {
			return idx.Fields[i].Name
		}
	}
	return ""
}
