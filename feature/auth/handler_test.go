package auth

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"result-checker/core/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	app := fiber.New()
	feature := NewFeature(auth.NewAllowList("admin@example.com"), zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app
}

func TestHandleLogin(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantSuccess bool
		wantMessage string
	}{
		{"Authorized", `{"email":"admin@example.com"}`, 200, true, "Login successful"},
		{"Case Insensitive", `{"email":"Admin@Example.com"}`, 200, true, "Login successful"},
		{"Not Authorized", `{"email":"student@example.com"}`, 403, false, "Not authorized"},
		{"Missing Email", `{}`, 400, false, "Email required"},
		{"Malformed", `{"email":`, 400, false, "Email required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body LoginResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantSuccess, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}
