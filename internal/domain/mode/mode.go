package mode

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/searchprov/internal/domain/index/field"
	"github.com/kailas-cloud/searchprov/internal/domain/product"
)

// Mode selects how many data sources feed the index.
type Mode string

// Provisioning modes.
const (
	// Single feeds the narrow schema from the document database only.
	Single Mode = "single"
	// Multi feeds the wide schema from the document database and blob storage.
	Multi Mode = "multi"
)

// Default matches the historical behaviour of provisioning a single source.
const Default = Single

// IsValid checks if the mode is supported.
func (m Mode) IsValid() bool {
	return m == Single || m == Multi
}

// Parse converts a user-supplied string into a Mode. Empty input yields Default.
func Parse(s string) (Mode, error) {
	if s == "" {
		return Default, nil
	}
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, Single, Multi)
	}
	return m, nil
}

// Source identifies a data-source indexer procedure.
type Source string

// Sources in the order they must run.
const (
	SourceCosmos Source = "cosmos"
	SourceBlob   Source = "blob"
)

// Index names per mode.
const (
	SingleIndexName = "single-product-index"
	MultiIndexName  = "products-index"
)

// Plan is what a mode provisions: one index and an ordered list of sources.
type Plan struct {
	Mode      Mode
	IndexName string
	Schema    []field.Field
	Sources   []Source
}

// PlanFor returns the provisioning plan for m.
// The key-bearing cosmos source always precedes blob so that blob documents
// merge into existing keys.
func PlanFor(m Mode) (Plan, error) {
	switch m {
	case Single:
		schema, err := product.SingleProductSchema()
		if err != nil {
			return Plan{}, err
		}
		return Plan{
			Mode:      Single,
			IndexName: SingleIndexName,
			Schema:    schema,
			Sources:   []Source{SourceCosmos},
		}, nil
	case Multi:
		schema, err := product.ProductSchema()
		if err != nil {
			return Plan{}, err
		}
		return Plan{
			Mode:      Multi,
			IndexName: MultiIndexName,
			Schema:    schema,
			Sources:   []Source{SourceCosmos, SourceBlob},
		}, nil
	default:
		return Plan{}, fmt.Errorf("unknown mode %q", m)
	}
}
