package index

import (
	"context"
	"fmt"

	domidx "github.com/kailas-cloud/searchprov/internal/domain/index"
	"github.com/kailas-cloud/searchprov/internal/searchapi"
)

// store is the consumer interface for index management (ISP).
type store interface {
	CreateOrReplaceIndex(ctx context.Context, def *searchapi.IndexDefinition) error
}

// Repo implements usecase/provision.IndexRepository.
type Repo struct {
	store store
}

// New creates an index repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// CreateOrReplace pushes the index schema to the search service.
func (r *Repo) CreateOrReplace(ctx context.Context, idx domidx.Index) error {
	def, err := buildIndex(idx)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	if err := r.store.CreateOrReplaceIndex(ctx, def); err != nil {
		return fmt.Errorf("create index %s: %w", idx.Name(), err)
	}
	return nil
}
