package results

import (
	"result-checker/core/reconcile"
	"result-checker/core/results"
	"result-checker/core/stats"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the results feature.
func NewFeature(store results.Store, reconciler *reconcile.Reconciler, aggregator *stats.Aggregator, admin fiber.Handler, logger *zap.Logger) *Feature {
	svc := NewService(store, reconciler, aggregator, logger)
	return &Feature{service: svc, handler: NewHandler(svc, admin)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "results"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
