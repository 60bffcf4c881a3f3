// Package searchapi defines the wire-level resources of the search service
// management API and the client contracts the rest of the program consumes.
package searchapi

import "context"

// IndexManager manages index schemas.
type IndexManager interface {
	CreateOrReplaceIndex(ctx context.Context, def *IndexDefinition) error
}

// IndexerManager manages data-source connections and indexers.
type IndexerManager interface {
	CreateOrUpdateDataSource(ctx context.Context, def *DataSourceDefinition) error
	GetIndexer(ctx context.Context, name string) (*IndexerDefinition, error)
	ResetIndexer(ctx context.Context, name string) error
	CreateOrUpdateIndexer(ctx context.Context, def *IndexerDefinition) error
	RunIndexer(ctx context.Context, name string) error
}
