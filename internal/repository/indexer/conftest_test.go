package indexer

import (
	"context"
	"testing"
	"time"

	"github.com/kailas-cloud/searchprov/internal/domain/datasource"
	domixr "github.com/kailas-cloud/searchprov/internal/domain/indexer"
	"github.com/kailas-cloud/searchprov/internal/searchapi"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	upsertDataSourceFn func(ctx context.Context, def *searchapi.DataSourceDefinition) error
	getIndexerFn       func(ctx context.Context, name string) (*searchapi.IndexerDefinition, error)
	resetIndexerFn     func(ctx context.Context, name string) error
	upsertIndexerFn    func(ctx context.Context, def *searchapi.IndexerDefinition) error
	runIndexerFn       func(ctx context.Context, name string) error
}

func (m *mockStore) CreateOrUpdateDataSource(ctx context.Context, def *searchapi.DataSourceDefinition) error {
	if m.upsertDataSourceFn != nil {
		return m.upsertDataSourceFn(ctx, def)
	}
	return nil
}

func (m *mockStore) GetIndexer(ctx context.Context, name string) (*searchapi.IndexerDefinition, error) {
	if m.getIndexerFn != nil {
		return m.getIndexerFn(ctx, name)
	}
	return nil, searchapi.NewStatusError(searchapi.OpGetIndexer, 404, "", "")
}

func (m *mockStore) ResetIndexer(ctx context.Context, name string) error {
	if m.resetIndexerFn != nil {
		return m.resetIndexerFn(ctx, name)
	}
	return nil
}

func (m *mockStore) CreateOrUpdateIndexer(ctx context.Context, def *searchapi.IndexerDefinition) error {
	if m.upsertIndexerFn != nil {
		return m.upsertIndexerFn(ctx, def)
	}
	return nil
}

func (m *mockStore) RunIndexer(ctx context.Context, name string) error {
	if m.runIndexerFn != nil {
		return m.runIndexerFn(ctx, name)
	}
	return nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func testCosmosDataSource(t *testing.T) datasource.DataSource {
	t.Helper()
	ds, err := datasource.New("products-db", datasource.CosmosDB,
		"AccountEndpoint=https://x.documents.azure.com;AccountKey=k;Database=products-db", "Products",
		datasource.WithHighWaterMark("_ts"),
		datasource.WithSoftDelete("isDeleted", "true"),
	)
	if err != nil {
		t.Fatalf("data source: %v", err)
	}
	return ds
}

func testBlobIndexer(t *testing.T) domixr.Indexer {
	t.Helper()
	ix, err := domixr.New("products-blob-indexer", "productstorage", "products-index",
		domixr.WithSchedule(24*time.Hour),
		domixr.WithParsingMode(domixr.ParsingJSON),
	)
	if err != nil {
		t.Fatalf("indexer: %v", err)
	}
	return ix
}
