package provision

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/searchprov/internal/domain"
	domidx "github.com/kailas-cloud/searchprov/internal/domain/index"
	"github.com/kailas-cloud/searchprov/internal/domain/index/field"
	"github.com/kailas-cloud/searchprov/internal/domain/mode"
	"github.com/kailas-cloud/searchprov/internal/logger"
	"github.com/kailas-cloud/searchprov/internal/metrics"
)

// IndexerResult reports what happened to one indexer.
type IndexerResult struct {
	Source    mode.Source
	Indexer   string
	Reset     bool
	Throttled bool
}

// Result summarizes a provisioning run.
type Result struct {
	Mode     mode.Mode
	Index    string
	Indexers []IndexerResult
}

// Service provisions the index and its indexers.
// Steps run sequentially; the first fatal error aborts the run.
type Service struct {
	indexes  IndexRepository
	indexers IndexerRepository
}

// New creates a provisioning service.
func New(indexes IndexRepository, indexers IndexerRepository) *Service {
	return &Service{indexes: indexes, indexers: indexers}
}

// Provision executes the plan for m: index first, then every source in plan order.
func (s *Service) Provision(ctx context.Context, settings Settings, m mode.Mode) (Result, error) {
	plan, err := mode.PlanFor(m)
	if err != nil {
		return Result{}, fmt.Errorf("plan: %w", err)
	}

	// Bad settings must fail before the first remote call.
	sources := make([]Source, 0, len(plan.Sources))
	for _, kind := range plan.Sources {
		src, err := SourceFor(kind, settings, plan.IndexName)
		if err != nil {
			return Result{}, err
		}
		sources = append(sources, src)
	}

	res := Result{Mode: plan.Mode, Index: plan.IndexName}
	if _, err := s.ProvisionIndex(ctx, plan.IndexName, plan.Schema); err != nil {
		return res, err
	}

	for _, src := range sources {
		ir, err := s.RunIndexer(ctx, src)
		if err != nil {
			return res, fmt.Errorf("%s indexer: %w", src.Kind, err)
		}
		res.Indexers = append(res.Indexers, ir)
	}
	return res, nil
}

// ProvisionIndex validates the schema and creates or replaces the index.
func (s *Service) ProvisionIndex(ctx context.Context, name string, fields []field.Field) (domidx.Index, error) {
	idx, err := domidx.New(name, fields)
	if err != nil {
		return domidx.Index{}, fmt.Errorf("validate index: %w: %w", domain.ErrInvalidSchema, err)
	}

	logger.FromContext(ctx).Info("Creating index",
		zap.String("index", name),
		zap.Int("fields", len(fields)),
		zap.String("key", idx.KeyField().Name()),
	)
	if err := s.indexes.CreateOrReplace(ctx, idx); err != nil {
		return domidx.Index{}, fmt.Errorf("create index: %w", err)
	}
	return idx, nil
}

// RunIndexer upserts the data source, resets the indexer if it already
// exists, upserts the indexer and triggers an immediate run.
// A missing indexer skips the reset. A throttled run is logged and counted
// but does not fail the procedure.
func (s *Service) RunIndexer(ctx context.Context, src Source) (IndexerResult, error) {
	name := src.Indexer.Name()
	res := IndexerResult{Source: src.Kind, Indexer: name}
	ctx, log := logger.WithFields(ctx,
		zap.String("source", src.Label),
		zap.String("indexer", name),
	)

	log.Info("Creating indexer", zap.String("data_source", src.DataSource.Name()))
	if err := s.indexers.UpsertDataSource(ctx, src.DataSource); err != nil {
		return res, fmt.Errorf("upsert data source: %w", err)
	}

	existing, err := s.indexers.Get(ctx, name)
	switch {
	case err == nil:
		log.Info("Resetting existing indexer",
			zap.String("data_source", existing.DataSource()),
			zap.String("target_index", existing.TargetIndex()),
			zap.Duration("interval", existing.Interval()),
		)
		if err := s.indexers.Reset(ctx, name); err != nil {
			return res, fmt.Errorf("reset indexer: %w", err)
		}
		metrics.IndexerResetsTotal.WithLabelValues(name).Inc()
		res.Reset = true
		log.Debug("Indexer reset")
	case errors.Is(err, domain.ErrNotFound):
		log.Debug("Indexer does not exist yet")
	default:
		return res, fmt.Errorf("get indexer: %w", err)
	}

	if err := s.indexers.Upsert(ctx, src.Indexer); err != nil {
		return res, fmt.Errorf("upsert indexer: %w", err)
	}

	log.Info("Running indexer")
	if err := s.indexers.Run(ctx, name); err != nil {
		if !errors.Is(err, domain.ErrRateLimited) {
			return res, fmt.Errorf("run indexer: %w", err)
		}
		log.Warn("Failed to run indexer", zap.Error(err))
		metrics.IndexerRunsThrottledTotal.WithLabelValues(name).Inc()
		res.Throttled = true
	}
	return res, nil
}
