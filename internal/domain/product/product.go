// Package product describes the documents stored in the products index and
// the field schema each record shape maps to.
package product

import (
	"fmt"

	"github.com/kailas-cloud/searchprov/internal/domain/index/field"
)

// KeyField is the unique document key shared by every record shape.
const KeyField = "productId"

// SingleProduct is the record fed by the document database alone.
type SingleProduct struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Price       int    `json:"price"`
}

// Product is the merged record: the first three fields come from the
// document database, the rest are merged in from blob JSON documents.
type Product struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	Price        int    `json:"price"`
	Description  string `json:"description"`
	Available    bool   `json:"available"`
	ShopLocation string `json:"shopLocation"`
}

// Descriptor is a declarative field description.
type Descriptor struct {
	Name       string
	Type       field.Type
	Filterable bool
	Key        bool
}

var singleProductDescriptors = []Descriptor{
	{Name: KeyField, Type: field.String, Filterable: true, Key: true},
	{Name: "productName", Type: field.String, Filterable: true},
	{Name: "price", Type: field.Int32, Filterable: true},
}

var productDescriptors = append(append([]Descriptor(nil), singleProductDescriptors...),
	// secondary source
	Descriptor{Name: "description", Type: field.String, Filterable: true},
	Descriptor{Name: "available", Type: field.Boolean, Filterable: true},
	Descriptor{Name: "shopLocation", Type: field.String, Filterable: true},
)

// SingleProductSchema returns the field schema for SingleProduct.
func SingleProductSchema() ([]field.Field, error) {
	return Schema(singleProductDescriptors)
}

// ProductSchema returns the field schema for Product.
func ProductSchema() ([]field.Field, error) {
	return Schema(productDescriptors)
}

// Schema maps descriptors to validated fields, preserving order.
func Schema(descs []Descriptor) ([]field.Field, error) {
	fields := make([]field.Field, 0, len(descs))
	for _, d := range descs {
		var opts []field.Option
		if d.Filterable {
			opts = append(opts, field.Filterable())
		}
		if d.Key {
			opts = append(opts, field.Key())
		}
		f, err := field.New(d.Name, d.Type, opts...)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", d.Name, err)
		}
		fields = append(fields, f)
	}
	return fields, nil
}
