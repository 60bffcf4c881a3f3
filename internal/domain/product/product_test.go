package product

import (
	"reflect"
	"testing"

	"github.com/kailas-cloud/searchprov/internal/domain/index/field"
)

func jsonNames(t *testing.T, v any) []string {
	t.Helper()
	typ := reflect.TypeOf(v)
	names := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		names = append(names, typ.Field(i).Tag.Get("json"))
	}
	return names
}

func fieldNames(fields []field.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name()
	}
	return names
}

func TestSingleProductSchema(t *testing.T) {
	fields, err := SingleProductSchema()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fields) != 3 {
		t.Fatalf("len = %d, want 3", len(fields))
	}
	if got, want := fieldNames(fields), jsonNames(t, SingleProduct{}); !reflect.DeepEqual(got, want) {
		t.Errorf("schema names %v do not match json tags %v", got, want)
	}
	if fields[2].FieldType() != field.Int32 {
		t.Errorf("price type = %q, want Edm.Int32", fields[2].FieldType())
	}
}

func TestProductSchema(t *testing.T) {
	fields, err := ProductSchema()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fields) != 6 {
		t.Fatalf("len = %d, want 6", len(fields))
	}
	if got, want := fieldNames(fields), jsonNames(t, Product{}); !reflect.DeepEqual(got, want) {
		t.Errorf("schema names %v do not match json tags %v", got, want)
	}
	if fields[4].FieldType() != field.Boolean {
		t.Errorf("available type = %q, want Edm.Boolean", fields[4].FieldType())
	}
}

func TestSchemas_ExactlyOneKey(t *testing.T) {
	for name, build := range map[string]func() ([]field.Field, error){
		"SingleProduct": SingleProductSchema,
		"Product":       ProductSchema,
	} {
		fields, err := build()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		var keys []string
		for _, f := range fields {
			if !f.IsFilterable() {
				t.Errorf("%s.%s: expected filterable", name, f.Name())
			}
			if f.IsKey() {
				keys = append(keys, f.Name())
			}
		}
		if len(keys) != 1 || keys[0] != KeyField {
			t.Errorf("%s keys = %v, want [%s]", name, keys, KeyField)
		}
	}
}

func TestProductSchema_DoesNotAliasSingle(t *testing.T) {
	if len(singleProductDescriptors) != 3 {
		t.Fatalf("single descriptors mutated: %d", len(singleProductDescriptors))
	}
}

func TestSchema_InvalidDescriptor(t *testing.T) {
	_, err := Schema([]Descriptor{{Name: "price", Type: field.Int32, Key: true}})
	if err == nil {
		t.Fatal("expected error for numeric key")
	}
}
