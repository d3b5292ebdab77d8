package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"result-checker/core/results"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackend struct {
	ready   bool
	pingErr error
	count   int64
}

func (f fakeBackend) Ready() bool                          { return f.ready }
func (f fakeBackend) Ping(context.Context) error           { return f.pingErr }
func (f fakeBackend) Count(context.Context) (int64, error) { return f.count, nil }

func setupTestApp(backend Backend) (*fiber.App, *Service) {
	svc := NewService(backend, "mongo", zap.NewNop())
	fixed := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	svc.started = fixed.Add(-90 * time.Second)
	svc.now = func() time.Time { return fixed }

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, svc
}

func TestHandleStatus(t *testing.T) {
	app, _ := setupTestApp(fakeBackend{ready: false})

	resp, err := app.Test(httptest.NewRequest("GET", "/status", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body Status
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "live", body.Status)
	assert.Equal(t, "connecting", body.Database)
	assert.Equal(t, "2026-03-04", body.CurrentDate)
	assert.Equal(t, "05:06:07", body.CurrentTime)
	assert.Equal(t, "2026-03-04 05:06:07", body.CurrentDateTime)
}

func TestHandleHealth(t *testing.T) {
	t.Run("Connecting", func(t *testing.T) {
		app, _ := setupTestApp(fakeBackend{ready: false})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)

		var body Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "connecting", body.Status)
		assert.Equal(t, "disconnected", body.Database)
		assert.Nil(t, body.DocumentsCount)
	})

	t.Run("Ready", func(t *testing.T) {
		app, _ := setupTestApp(fakeBackend{ready: true, count: 42})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ready", body.Status)
		assert.Equal(t, "connected", body.Database)
		assert.Equal(t, "2026-03-04 05:06:07 UTC", body.CurrentDateTime)
		assert.InDelta(t, 90, body.Uptime, 0.001)
		require.NotNil(t, body.DocumentsCount)
		assert.EqualValues(t, 42, *body.DocumentsCount)
	})

	t.Run("Ping Fails", func(t *testing.T) {
		down := results.Unavailable(errors.New("no primary"))
		app, _ := setupTestApp(fakeBackend{ready: true, pingErr: down})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "error", body.Status)
		assert.Contains(t, body.Error, "no primary")
	})
}

func TestHandleIndex(t *testing.T) {
	app, _ := setupTestApp(fakeBackend{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api", nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "online", body["status"])
	assert.Contains(t, body["endpoints"], "POST /api/results/bulk")
}
