package cmd

import (
	"context"
	"fmt"
	"time"

	"result-checker/core/config"
	"result-checker/core/logger"
	"result-checker/core/reconcile"
	"result-checker/core/store"

	"go.uber.org/zap"
)

// session bundles what every command needs.
type session struct {
	cfg     *config.Config
	log     *zap.Logger
	backend *store.Backend
}

// setup loads configuration, builds the logger and opens the store.
// With wait set it blocks until the store is connected or waitFor elapses.
func setup(ctx context.Context, wait bool, waitFor time.Duration) (*session, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	backend, err := store.Open(ctx, cfg.Store, cfg.Mongo, cfg.Database, l)
	if err != nil {
		return nil, err
	}

	if wait {
		waitCtx, cancel := context.WithTimeout(ctx, waitFor)
		defer cancel()
		if err := backend.Wait(waitCtx); err != nil {
			_ = backend.Close()
			return nil, fmt.Errorf("store %s not reachable: %w", cfg.Store.Driver, err)
		}
	}

	return &session{cfg: cfg, log: l, backend: backend}, nil
}

func (r *session) reconciler() *reconcile.Reconciler {
	return reconcile.New(r.backend, r.log, reconcile.Options{ChunkSize: r.cfg.Store.ChunkSize})
}

func (r *session) close() {
	if err := r.backend.Close(); err != nil {
		r.log.Warn("Failed to close store", zap.Error(err))
	}
	_ = r.log.Sync()
}

// logBatch reports a reconciliation outcome, listing at most five item errors.
func logBatch(l *zap.Logger, res *reconcile.BatchResult) {
	l.Info("Upload report",
		zap.Int("total", res.Total),
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Int("failed", res.Failed),
	)

	maxShow := min(5, len(res.Errors))
	for _, msg := range res.Errors[:maxShow] {
		l.Warn("Item error", zap.String("error", msg))
	}
	if len(res.Errors) > maxShow {
		l.Info("Additional errors not shown", zap.Int("count", len(res.Errors)-maxShow))
	}
}

var connectTimeout = 30 * time.Second
