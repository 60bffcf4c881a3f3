package indexer

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/searchprov/internal/domain"
	"github.com/kailas-cloud/searchprov/internal/domain/datasource"
	domixr "github.com/kailas-cloud/searchprov/internal/domain/indexer"
	"github.com/kailas-cloud/searchprov/internal/searchapi"
)

// store is the consumer interface for data sources and indexers (ISP).
type store interface {
	CreateOrUpdateDataSource(ctx context.Context, def *searchapi.DataSourceDefinition) error
	GetIndexer(ctx context.Context, name string) (*searchapi.IndexerDefinition, error)
	ResetIndexer(ctx context.Context, name string) error
	CreateOrUpdateIndexer(ctx context.Context, def *searchapi.IndexerDefinition) error
	RunIndexer(ctx context.Context, name string) error
}

// Repo implements usecase/provision.IndexerRepository.
type Repo struct {
	store store
}

// New creates an indexer repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// UpsertDataSource creates or updates the data source connection.
func (r *Repo) UpsertDataSource(ctx context.Context, ds datasource.DataSource) error {
	def, err := dataSourceToDefinition(ds)
	if err != nil {
		return fmt.Errorf("build data source: %w", err)
	}
	if err := r.store.CreateOrUpdateDataSource(ctx, def); err != nil {
		return fmt.Errorf("upsert data source %s: %w", ds.Name(), err)
	}
	return nil
}

// Get retrieves an indexer by name. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Get(ctx context.Context, name string) (domixr.Indexer, error) {
	def, err := r.store.GetIndexer(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domixr.Indexer{}, domain.ErrNotFound
		}
		return domixr.Indexer{}, fmt.Errorf("get indexer %s: %w", name, err)
	}
	return indexerFromDefinition(def), nil
}

// Reset clears the indexer's change tracking state so the next run reprocesses everything.
func (r *Repo) Reset(ctx context.Context, name string) error {
	if err := r.store.ResetIndexer(ctx, name); err != nil {
		return fmt.Errorf("reset indexer %s: %w", name, err)
	}
	return nil
}

// Upsert creates or updates the indexer definition.
func (r *Repo) Upsert(ctx context.Context, ix domixr.Indexer) error {
	def, err := indexerToDefinition(ix)
	if err != nil {
		return fmt.Errorf("build indexer: %w", err)
	}
	if err := r.store.CreateOrUpdateIndexer(ctx, def); err != nil {
		return fmt.Errorf("upsert indexer %s: %w", ix.Name(), err)
	}
	return nil
}

// Run triggers an immediate run. A throttled trigger wraps domain.ErrRateLimited.
func (r *Repo) Run(ctx context.Context, name string) error {
	if err := r.store.RunIndexer(ctx, name); err != nil {
		return fmt.Errorf("run indexer %s: %w", name, err)
	}
	return nil
}
