package index

import (
	"fmt"

	domidx "github.com/kailas-cloud/searchprov/internal/domain/index"
	"github.com/kailas-cloud/searchprov/internal/domain/index/field"
	"github.com/kailas-cloud/searchprov/internal/searchapi"
)

// buildIndex creates an IndexDefinition from the domain index.
// Every field is simple: retrievable, never searchable, sortable or facetable.
func buildIndex(idx domidx.Index) (*searchapi.IndexDefinition, error) {
	b := searchapi.NewIndex(idx.Name())
	for _, f := range idx.Fields() {
		edm, err := edmType(f.FieldType())
		if err != nil {
			return nil, err
		}
		if f.IsKey() {
			if edm != searchapi.EdmString {
				return nil, fmt.Errorf("key field %s must be %s, got %s", f.Name(), searchapi.EdmString, edm)
			}
			b.Key(f.Name(), f.IsFilterable())
			continue
		}
		b.Simple(f.Name(), edm, f.IsFilterable())
	}
	return b.Build()
}

func edmType(t field.Type) (string, error) {
	switch t {
	case field.String:
		return searchapi.EdmString, nil
	case field.Int32:
		return searchapi.EdmInt32, nil
	case field.Int64:
		return searchapi.EdmInt64, nil
	case field.Double:
		return searchapi.EdmDouble, nil
	case field.Boolean:
		return searchapi.EdmBoolean, nil
	case field.DateTimeOffset:
		return searchapi.EdmDateTimeOffset, nil
	default:
		return "", fmt.Errorf("unknown field type: %s", t)
	}
}
