package results

import (
	"context"
	"fmt"

	"result-checker/core/importer"
	"result-checker/core/reconcile"
	"result-checker/core/results"
	"result-checker/core/stats"

	"go.uber.org/zap"
)

// Service answers result queries and applies uploads.
type Service struct {
	store      results.Store
	reconciler *reconcile.Reconciler
	aggregator *stats.Aggregator
	logger     *zap.Logger
}

// NewService creates a new results service.
func NewService(store results.Store, reconciler *reconcile.Reconciler, aggregator *stats.Aggregator, logger *zap.Logger) *Service {
	return &Service{
		store:      store,
		reconciler: reconciler,
		aggregator: aggregator,
		logger:     logger,
	}
}

// Lookup returns the record for roll.
func (s *Service) Lookup(ctx context.Context, roll string) (results.Record, error) {
	if !results.ValidRoll(roll) {
		return nil, results.NewValidationError("Invalid roll number")
	}
	rec, err := s.store.FindByKey(ctx, roll)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", roll, err)
	}
	if rec == nil {
		return nil, results.ErrNotFound
	}
	return rec, nil
}

// All returns every stored record.
func (s *Service) All(ctx context.Context) ([]results.Record, error) {
	all, err := s.store.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	if all == nil {
		all = []results.Record{}
	}
	return all, nil
}

// Statistics returns the current aggregate snapshot.
func (s *Service) Statistics(ctx context.Context) (*stats.Snapshot, error) {
	return s.aggregator.Summarize(ctx)
}

// Upload decodes a JSON batch body and reconciles it.
func (s *Service) Upload(ctx context.Context, body []byte) (*reconcile.BatchResult, error) {
	items, err := importer.DecodeJSON(body)
	if err != nil {
		return nil, err
	}
	return s.reconciler.Apply(ctx, items)
}
