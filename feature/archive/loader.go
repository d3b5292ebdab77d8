package archive

import (
	"result-checker/core/reconcile"
	"result-checker/core/results"
	"result-checker/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the archive feature. A nil client disables it.
func NewFeature(client storage.Client, cfg storage.Config, store results.Store, reconciler *reconcile.Reconciler, admin fiber.Handler, logger *zap.Logger) *Feature {
	svc := NewService(client, cfg.Bucket, cfg.Region, store, reconciler, logger)
	return &Feature{service: svc, handler: NewHandler(svc, admin)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "archive"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.client != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
