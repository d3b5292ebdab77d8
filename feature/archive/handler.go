package archive

import (
	"errors"

	"result-checker/core/logger"
	"result-checker/core/results"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ImportRequest names the batch object to import.
type ImportRequest struct {
	Object string `json:"object"`
	// Mode optionally forces merge or replace for every item.
	Mode string `json:"mode"`
}

// Handler handles HTTP requests for the archive.
type Handler struct {
	service *Service
	admin   fiber.Handler
}

// NewHandler creates a new archive handler. admin guards every route.
func NewHandler(service *Service, admin fiber.Handler) *Handler {
	if admin == nil {
		admin = func(c *fiber.Ctx) error { return c.Next() }
	}
	return &Handler{service: service, admin: admin}
}

// RegisterRoutes registers the archive routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/archive", h.admin)
	group.Post("/export", h.HandleExport)
	group.Post("/import", h.HandleImport)
	group.Get("/objects", h.HandleList)
}

// HandleExport writes a snapshot of the corpus to object storage.
// @Summary Export Snapshot
// @Tags archive
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ExportResult
// @Failure 503 {object} map[string]string "Database not ready"
// @Router /api/archive/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	res, err := h.service.Export(c.Context())
	if err != nil {
		return h.fail(c, err, "Export failed")
	}
	return c.JSON(res)
}

// HandleImport applies a batch object from object storage.
// @Summary Import Batch Object
// @Tags archive
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ImportRequest true "Object to import"
// @Success 200 {object} reconcile.BatchResult
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Object not found"
// @Router /api/archive/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	var req ImportRequest
	if err := c.BodyParser(&req); err != nil || req.Object == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Object required"})
	}

	var mode results.UploadMode
	switch results.UploadMode(req.Mode) {
	case "":
	case results.ModeMerge, results.ModeReplace:
		mode = results.UploadMode(req.Mode)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mode must be merge or replace"})
	}

	res, err := h.service.Import(c.Context(), req.Object, mode)
	if err != nil {
		return h.fail(c, err, "Import failed")
	}
	return c.JSON(res)
}

// HandleList lists archive objects.
// @Summary List Archive Objects
// @Tags archive
// @Produce json
// @Security ApiKeyAuth
// @Param prefix query string false "Key prefix"
// @Success 200 {array} ObjectSummary
// @Router /api/archive/objects [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	objects, err := h.service.List(c.Context(), c.Query("prefix"))
	if err != nil {
		return h.fail(c, err, "List failed")
	}
	return c.JSON(objects)
}

func (h *Handler) fail(c *fiber.Ctx, err error, message string) error {
	l := logger.WithRayID(h.service.logger, c)

	switch {
	case errors.Is(err, results.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, results.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
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
