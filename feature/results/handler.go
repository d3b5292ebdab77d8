package results

import (
	"errors"

	"result-checker/core/logger"
	"result-checker/core/results"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for results.
type Handler struct {
	service *Service
	admin   fiber.Handler
}

// NewHandler creates a new HTTP handler. admin guards the admin routes.
func NewHandler(service *Service, admin fiber.Handler) *Handler {
	if admin == nil {
		admin = func(c *fiber.Ctx) error { return c.Next() }
	}
	return &Handler{service: service, admin: admin}
}

// RegisterRoutes registers the results routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/results")
	group.Get("/statistics", h.HandleStatistics)
	group.Get("/all", h.admin, h.HandleAll)
	group.Post("/bulk", h.admin, h.HandleBulk)
	group.Get("/:rollNumber", h.HandleLookup)
}

// HandleLookup returns one result record.
// @Summary Get Result
// @Description Get the result record for a six digit roll number.
// @Tags results
// @Produce json
// @Param rollNumber path string true "Roll number (6 digits)"
// @Success 200 {object} map[string]any "Result record"
// @Failure 400 {object} map[string]string "Invalid roll number"
// @Failure 404 {object} map[string]string "Result not found"
// @Failure 503 {object} map[string]string "Database not ready"
// @Router /api/results/{rollNumber} [get]
func (h *Handler) HandleLookup(c *fiber.Ctx) error {
	rec, err := h.service.Lookup(c.Context(), c.Params("rollNumber"))
	if err != nil {
		return h.fail(c, err, "Failed to fetch result")
	}
	return c.JSON(rec)
}

// HandleAll returns every stored record.
// @Summary List Results
// @Description List every stored result record.
// @Tags results
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} map[string]any "Result records"
// @Failure 503 {object} map[string]string "Database not ready"
// @Router /api/results/all [get]
func (h *Handler) HandleAll(c *fiber.Ctx) error {
	all, err := h.service.All(c.Context())
	if err != nil {
		return h.fail(c, err, "Failed to fetch results")
	}
	return c.JSON(all)
}

// HandleStatistics returns the aggregate snapshot.
// @Summary Result Statistics
// @Description Pass/fail counts, average CGPA and the most referred subjects.
// @Tags results
// @Produce json
// @Success 200 {object} stats.Snapshot "Statistics"
// @Failure 503 {object} map[string]string "Database not ready"
// @Router /api/results/statistics [get]
func (h *Handler) HandleStatistics(c *fiber.Ctx) error {
	snap, err := h.service.Statistics(c.Context())
	if err != nil {
		return h.fail(c, err, "Failed to calculate statistics")
	}
	return c.JSON(snap)
}

// HandleBulk reconciles an upload batch.
// @Summary Bulk Upload
// @Description Merge or replace a batch of result records. Per-item failures are reported in errors.
// @Tags results
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param batch body object true "{\"results\": [...]}"
// @Success 200 {object} reconcile.BatchResult "Batch outcome"
// @Failure 400 {object} map[string]string "Invalid data"
// @Failure 503 {object} map[string]string "Database not ready"
// @Router /api/results/bulk [post]
func (h *Handler) HandleBulk(c *fiber.Ctx) error {
	res, err := h.service.Upload(c.Context(), c.Body())
	if err != nil {
		return h.fail(c, err, "Upload failed")
	}

	logger.WithRayID(h.service.logger, c).Info("Bulk upload applied",
		zap.Int("total", res.Total),
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Int("failed", res.Failed),
	)
	return c.JSON(res)
}

func (h *Handler) fail(c *fiber.Ctx, err error, message string) error {
	l := logger.WithRayID(h.service.logger, c)

	switch {
	case errors.Is(err, results.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, results.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Result not found"})
	case errors.Is(err, results.ErrStoreUnavailable):
		l.Warn("Store unavailable", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Database not ready"})
	default:
		l.Error(message, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   message,
			"details": err.Error(),
		})
	}
}
