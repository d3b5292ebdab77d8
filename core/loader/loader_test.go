package loader

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
}

func (s stubFeature) Name() string    { return s.name }
func (s stubFeature) IsEnabled() bool { return s.enabled }
func (s stubFeature) Load(app fiber.Router) error {
	if s.err != nil {
		return s.err
	}
	app.Get("/"+s.name, func(c *fiber.Ctx) error { return c.SendString(s.name) })
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	mgr := NewManager()
	mgr.Register(stubFeature{name: "results", enabled: true})
	mgr.Register(stubFeature{name: "archive", enabled: false})
	mgr.Register(stubFeature{name: "health", enabled: true})

	app := fiber.New()
	loaded, err := mgr.LoadAll(app)
	require.NoError(t, err)
	assert.Equal(t, []string{"results", "health"}, loaded)
	assert.Len(t, mgr.Features(), 3)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/archive", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestManager_LoadAllFailure(t *testing.T) {
	mgr := NewManager()
	mgr.Register(stubFeature{name: "results", enabled: true})
	mgr.Register(stubFeature{name: "broken", enabled: true, err: errors.New("boom")})

	loaded, err := mgr.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "failed to load feature broken: boom")
	assert.Equal(t, []string{"results"}, loaded)
}
