package index

import (
	"context"
	"testing"

	domidx "github.com/kailas-cloud/searchprov/internal/domain/index"
	"github.com/kailas-cloud/searchprov/internal/domain/index/field"
	"github.com/kailas-cloud/searchprov/internal/searchapi"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	createOrReplaceIndexFn func(ctx context.Context, def *searchapi.IndexDefinition) error
}

func (m *mockStore) CreateOrReplaceIndex(ctx context.Context, def *searchapi.IndexDefinition) error {
	if m.createOrReplaceIndexFn != nil {
		return m.createOrReplaceIndexFn(ctx, def)
	}
	return nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func testIndex(t *testing.T) domidx.Index {
	t.Helper()
	id, err := field.New("productId", field.String, field.Key(), field.Filterable())
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	price, err := field.New("price", field.Int32, field.Filterable())
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	avail, err := field.New("available", field.Boolean)
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	idx, err := domidx.New("test-index", []field.Field{id, price, avail})
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	return idx
}
