package health

import (
	"github.com/gofiber/fiber/v2"
)

// Endpoints lists the public API surface.
var Endpoints = []string{
	"GET /status",
	"GET /api/health",
	"POST /api/auth/login",
	"GET /api/results/statistics",
	"GET /api/results/all",
	"GET /api/results/:rollNumber",
	"POST /api/results/bulk",
	"POST /api/archive/export",
	"POST /api/archive/import",
	"GET /api/archive/objects",
}

// Handler serves the health routes.
type Handler struct {
	service *Service
}

// NewHandler creates a new health handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/status", h.HandleStatus)
	app.Get("/api/health", h.HandleHealth)
	app.Get("/api", h.HandleIndex)
}

// HandleStatus reports liveness.
// @Summary Liveness
// @Tags health
// @Produce json
// @Success 200 {object} Status
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleHealth reports store readiness.
// @Summary Readiness
// @Description Store connection state and document count. 503 until the store is connected.
// @Tags health
// @Produce json
// @Success 200 {object} Report
// @Failure 503 {object} Report
// @Router /api/health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	report, ready := h.service.Check(c.Context())
	if !ready {
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleIndex lists the API endpoints.
// @Summary API Index
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api [get]
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "BTEB Result Checker API",
		"status":    "online",
		"endpoints": Endpoints,
	})
}
