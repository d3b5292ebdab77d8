package auth

import (
	"strings"

	"result-checker/core/auth"
	"result-checker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LoginRequest is the login body.
type LoginRequest struct {
	Email string `json:"email"`
}

// LoginResponse is the login outcome.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Handler handles admin login.
type Handler struct {
	oracle auth.Oracle
	logger *zap.Logger
}

// NewHandler creates a new login handler.
func NewHandler(oracle auth.Oracle, logger *zap.Logger) *Handler {
	return &Handler{oracle: oracle, logger: logger}
}

// RegisterRoutes registers the auth routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/api/auth/login", h.HandleLogin)
}

// HandleLogin checks an email against the admin allow-list.
// @Summary Admin Login
// @Description Check whether an email address belongs to an administrator.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse "Login successful"
// @Failure 400 {object} LoginResponse "Email required"
// @Failure 403 {object} LoginResponse "Not authorized"
// @Router /api/auth/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(LoginResponse{Message: "Email required"})
	}

	l := logger.WithRayID(h.logger, c)
	if !h.oracle.IsAuthorized(req.Email) {
		l.Warn("Admin login refused", zap.String("email", req.Email))
		return c.Status(fiber.StatusForbidden).JSON(LoginResponse{Message: "Not authorized"})
	}

	l.Info("Admin login", zap.String("email", req.Email))
	return c.JSON(LoginResponse{Success: true, Message: "Login successful"})
}
