package searchapi

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestIndexBuilder_Simple(t *testing.T) {
	idx, err := NewIndex("single-product-index").
		Key("productId", true).
		Simple("productName", EdmString, true).
		Simple("price", EdmInt32, true).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := idx.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.Name != "single-product-index" {
		t.Errorf("name = %q", idx.Name)
	}
	if len(idx.Fields) != 3 {
		t.Fatalf("fields count = %d, want 3", len(idx.Fields))
	}
	if idx.Key() != "productId" {
		t.Errorf("key = %q, want productId", idx.Key())
	}
	if f := idx.Fields[2]; f.Name != "price" || f.Type != EdmInt32 || !f.Filterable || f.Searchable || !f.Retrievable {
		t.Errorf("field[2] = %+v", f)
	}
}

func TestIndexBuilder_ValidationErrors(t *testing.T) {
	tests := []struct {
		desc string
		b    *IndexBuilder
		want string
	}{
		{"empty name", NewIndex("").Key("id", true), "name is required"},
		{"no fields", NewIndex("idx"), "at least one field"},
		{"no key", NewIndex("idx").Simple("price", EdmInt32, true), "exactly one key"},
		{"dup", NewIndex("idx").Key("id", true).Simple("id", EdmString, false), "duplicate"},
		{"no type", NewIndex("idx").Key("id", true).Simple("x", "", false), "type is required"},
	}
	for _, tt := range tests {
		_, err := tt.b.Build()
		if err == nil {
			t.Errorf("%s: expected error", tt.desc)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error = %q, want %q", tt.desc, err, tt.want)
		}
	}
}

func TestIndexDefinition_NonStringKey(t *testing.T) {
	idx := &IndexDefinition{Name: "idx", Fields: []FieldDefinition{{Name: "n", Type: EdmInt32, Key: true}}}
	err := idx.Validate()
	if err == nil || !strings.Contains(err.Error(), "must be Edm.String") {
		t.Errorf("error = %v, want must be Edm.String", err)
	}
}

func TestIndexBuilder_KeyNotFilterable(t *testing.T) {
	idx, err := NewIndex("p").Key("productId", false).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f := idx.Fields[0]; !f.Key || f.Filterable || !f.Retrievable || f.Type != EdmString {
		t.Errorf("key field = %+v", f)
	}
}

func TestIndexDefinition_KeyEmpty(t *testing.T) {
	idx := &IndexDefinition{Name: "p", Fields: []FieldDefinition{{Name: "price", Type: EdmInt32}}}
	if got := idx.Key(); got != "" {
		t.Errorf("Key() = %q, want empty", got)
	}
}

func TestIndexDefinition_String(t *testing.T) {
	idx, err := NewIndex("p").Key("productId", true).Simple("price", EdmInt32, false).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "INDEX p FIELDS productId:String,key,filterable price:Int32"
	if got := idx.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDataSourceBuilder_JSON(t *testing.T) {
	ds, err := NewDataSource("productsdb", DataSourceCosmosDB, "AccountEndpoint=x;Database=productsdb", "Products").
		HighWaterMark("_ts").
		SoftDelete("isDeleted", "true").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := json.Marshal(ds)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	for _, want := range []string{
		`"type":"cosmosdb"`,
		`"credentials":{"connectionString":"AccountEndpoint=x;Database=productsdb"}`,
		`"container":{"name":"Products"}`,
		`"@odata.type":"#Microsoft.Azure.Search.HighWaterMarkChangeDetectionPolicy"`,
		`"highWaterMarkColumnName":"_ts"`,
		`"softDeleteColumnName":"isDeleted"`,
		`"softDeleteMarkerValue":"true"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %s: %s", want, body)
		}
	}
}

func TestDataSourceBuilder_NoPolicies(t *testing.T) {
	ds, err := NewDataSource("acct", DataSourceAzureBlob, "conn", "productdata").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, _ := json.Marshal(ds)
	if strings.Contains(string(raw), "Policy") {
		t.Errorf("expected no policies, got %s", raw)
	}

	if _, err := NewDataSource("acct", DataSourceAzureBlob, "", "productdata").Build(); err == nil {
		t.Error("expected error for empty connection string")
	}
}

func TestIndexerBuilder_JSON(t *testing.T) {
	ix, err := NewIndexer("products-blob-indexer", "acct", "products-index").
		Every(24*time.Hour).
		Configure("parsingMode", "json").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := json.Marshal(ix)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"products-blob-indexer","dataSourceName":"acct","targetIndexName":"products-index",` +
		`"schedule":{"interval":"P1D"},"parameters":{"configuration":{"parsingMode":"json"}}}`
	if string(raw) != want {
		t.Errorf("json =\n%s\nwant\n%s", raw, want)
	}
}

func TestIndexerBuilder_Validation(t *testing.T) {
	if _, err := NewIndexer("", "ds", "idx").Build(); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := NewIndexer("ix", "ds", "idx").Every(0).Build(); err == nil {
		t.Error("expected error for zero interval")
	}
}
