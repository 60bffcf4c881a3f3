//go:generate mockgen -destination=mocks/mock_contract.go -package=mocks -source=contract.go

package provision

import (
	"context"

	"github.com/kailas-cloud/searchprov/internal/domain/datasource"
	domidx "github.com/kailas-cloud/searchprov/internal/domain/index"
	domixr "github.com/kailas-cloud/searchprov/internal/domain/indexer"
)

// IndexRepository defines the storage contract for the index schema.
type IndexRepository interface {
	CreateOrReplace(ctx context.Context, idx domidx.Index) error
}

// IndexerRepository defines the contract for data sources and indexers.
// Get returns domain.ErrNotFound when the indexer does not exist yet;
// Run returns an error wrapping domain.ErrRateLimited when the trigger is throttled.
type IndexerRepository interface {
	UpsertDataSource(ctx context.Context, ds datasource.DataSource) error
	Get(ctx context.Context, name string) (domixr.Indexer, error)
	Reset(ctx context.Context, name string) error
	Upsert(ctx context.Context, ix domixr.Indexer) error
	Run(ctx context.Context, name string) error
}
