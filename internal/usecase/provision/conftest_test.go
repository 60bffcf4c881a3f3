package provision

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/searchprov/internal/domain"
	"github.com/kailas-cloud/searchprov/internal/domain/datasource"
	domidx "github.com/kailas-cloud/searchprov/internal/domain/index"
	domixr "github.com/kailas-cloud/searchprov/internal/domain/indexer"
	"github.com/kailas-cloud/searchprov/internal/logger"
)

// fakeSearch is an in-memory search service implementing both repositories.
// It records every call in order.
type fakeSearch struct {
	calls       []string
	indexes     []domidx.Index
	dataSources []datasource.DataSource
	indexers    map[string]domixr.Indexer
	resets      int
	upserts     int
	runFn       func(name string) error
}

func newFakeSearch() *fakeSearch {
	return &fakeSearch{indexers: make(map[string]domixr.Indexer)}
}

func (f *fakeSearch) CreateOrReplace(_ context.Context, idx domidx.Index) error {
	f.calls = append(f.calls, "index "+idx.Name())
	f.indexes = append(f.indexes, idx)
	return nil
}

func (f *fakeSearch) UpsertDataSource(_ context.Context, ds datasource.DataSource) error {
	f.calls = append(f.calls, "datasource "+ds.Name())
	f.dataSources = append(f.dataSources, ds)
	return nil
}

func (f *fakeSearch) Get(_ context.Context, name string) (domixr.Indexer, error) {
	f.calls = append(f.calls, "get "+name)
	ix, ok := f.indexers[name]
	if !ok {
		return domixr.Indexer{}, domain.ErrNotFound
	}
	return ix, nil
}

func (f *fakeSearch) Reset(_ context.Context, name string) error {
	f.calls = append(f.calls, "reset "+name)
	f.resets++
	return nil
}

func (f *fakeSearch) Upsert(_ context.Context, ix domixr.Indexer) error {
	f.calls = append(f.calls, "upsert "+ix.Name())
	f.indexers[ix.Name()] = ix
	f.upserts++
	return nil
}

func (f *fakeSearch) Run(_ context.Context, name string) error {
	f.calls = append(f.calls, "run "+name)
	if f.runFn != nil {
		return f.runFn(name)
	}
	return nil
}

func (f *fakeSearch) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func testSettings() Settings {
	return Settings{
		CosmosConnectionString: "AccountEndpoint=https://products.documents.azure.com:443/;AccountKey=c2VjcmV0;",
		CosmosDatabase:         "products-db",
		BlobAccountName:        "productstorage",
		BlobConnectionString:   "DefaultEndpointsProtocol=https;AccountName=productstorage;AccountKey=c2VjcmV0",
	}
}

func testCosmosSource(t *testing.T) Source {
	t.Helper()
	src, err := CosmosSource(testSettings(), "single-product-index")
	if err != nil {
		t.Fatalf("CosmosSource: %v", err)
	}
	return src
}

// observedContext returns a context carrying a logger whose entries are captured.
func observedContext(t *testing.T) (context.Context, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.ContextWithLogger(context.Background(), zap.New(core)), logs
}
