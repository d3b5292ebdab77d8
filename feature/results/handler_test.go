package results

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	authmw "result-checker/core/middleware/auth"
	"result-checker/core/reconcile"
	"result-checker/core/results"
	"result-checker/core/results/mocks"
	"result-checker/core/stats"
	"result-checker/core/store/memstore"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, store results.Store, apiKey string) *fiber.App {
	t.Helper()
	logger := zap.NewNop()
	feature := NewFeature(
		store,
		reconcile.New(store, logger, reconcile.Options{ChunkSize: 2}),
		stats.New(store, logger),
		authmw.New(authmw.Config{ApiKey: apiKey}),
		logger,
	)

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func seededStore(t *testing.T) *memstore.Store {
	t.Helper()
	s := memstore.New()
	for _, rec := range []results.Record{
		{"roll": "100001", "c": "3.50", "name": "Alice"},
		{"roll": "100002", "c": "n", "s": []any{"101"}},
	} {
		require.NoError(t, s.InsertOne(t.Context(), rec))
	}
	return s
}

func TestHandleLookup(t *testing.T) {
	app := setupTestApp(t, seededStore(t), "")

	t.Run("Found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/results/100001", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, map[string]any{"roll": "100001", "c": "3.50", "name": "Alice"}, body)
	})

	t.Run("Not Found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/results/999999", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("Bad Format", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/results/12ab56", nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Invalid roll number", body["error"])
	})
}

func TestHandleStatistics(t *testing.T) {
	app := setupTestApp(t, seededStore(t), "")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/results/statistics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var snap stats.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, 2, snap.Total)
	assert.Equal(t, 1, snap.Passed)
	assert.Equal(t, 1, snap.Failed)
	assert.Equal(t, "3.50", snap.AvgCGPA)
	assert.Equal(t, []stats.SubjectCount{{Code: "101", Count: 1}}, snap.TopSubjects)
}

func TestHandleAll(t *testing.T) {
	app := setupTestApp(t, seededStore(t), "secret")

	t.Run("Requires Key", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/results/all", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Lists Records", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/results/all", nil)
		req.Header.Set(authmw.HeaderAPIKey, "secret")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body, 2)
		assert.Equal(t, "100002", body[1]["roll"])
	})
}

func TestHandleBulk(t *testing.T) {
	post := func(app *fiber.App, body string) (int, map[string]any) {
		req := httptest.NewRequest("POST", "/api/results/bulk", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return resp.StatusCode, out
	}

	t.Run("Applies Batch", func(t *testing.T) {
		store := seededStore(t)
		app := setupTestApp(t, store, "")

		status, body := post(app, `{"results":[
			{"roll":"100001","c":"3.75"},
			{"roll":"100003","c":"2.00","uploadMode":"replace"},
			{"roll":"12"}
		]}`)

		assert.Equal(t, 200, status)
		assert.Equal(t, true, body["success"])
		assert.EqualValues(t, 1, body["inserted"])
		assert.EqualValues(t, 1, body["updated"])
		assert.EqualValues(t, 3, body["total"])
		assert.Equal(t, []any{"Invalid roll: 12"}, body["errors"])

		rec, err := store.FindByKey(t.Context(), "100001")
		require.NoError(t, err)
		assert.Equal(t, results.Record{"roll": "100001", "c": "3.75", "name": "Alice"}, rec)

		rec, err = store.FindByKey(t.Context(), "100003")
		require.NoError(t, err)
		assert.NotContains(t, rec, "uploadMode")
	})

	t.Run("Invalid Data", func(t *testing.T) {
		status, body := post(setupTestApp(t, memstore.New(), ""), `{"results":"nope"}`)
		assert.Equal(t, 400, status)
		assert.Equal(t, "Invalid data", body["error"])
	})

	t.Run("No Results", func(t *testing.T) {
		status, body := post(setupTestApp(t, memstore.New(), ""), `{"results":[]}`)
		assert.Equal(t, 400, status)
		assert.Equal(t, "No results", body["error"])
	})

	t.Run("Requires Key", func(t *testing.T) {
		status, _ := post(setupTestApp(t, memstore.New(), "secret"), `{"results":[{"roll":"100001"}]}`)
		assert.Equal(t, 401, status)
	})
}

func TestStoreUnavailable(t *testing.T) {
	store := new(mocks.Store)
	down := results.Unavailable(errors.New("mongo not connected"))
	store.On("FindByKey", mock.Anything, "100001").Return(nil, down)
	store.On("ScanAll", mock.Anything).Return(nil, down)
	store.On("Ping", mock.Anything).Return(down)

	app := setupTestApp(t, store, "")

	for _, tc := range []struct {
		method, path, body string
	}{
		{"GET", "/api/results/100001", ""},
		{"GET", "/api/results/statistics", ""},
		{"GET", "/api/results/all", ""},
		{"POST", "/api/results/bulk", `{"results":[{"roll":"100001"}]}`},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, 503, resp.StatusCode)
		})
	}
}

func TestInternalError(t *testing.T) {
	store := new(mocks.Store)
	store.On("FindByKey", mock.Anything, "100001").Return(nil, errors.New("decode failed"))

	app := setupTestApp(t, store, "")
	resp, err := app.Test(httptest.NewRequest("GET", "/api/results/100001", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Failed to fetch result", body["error"])
	assert.Contains(t, body["details"], "decode failed")
}
