package archive

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	authmw "result-checker/core/middleware/auth"
	"result-checker/core/reconcile"
	"result-checker/core/storage"
	"result-checker/core/storage/mocks"
	"result-checker/core/store/memstore"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	client := new(mocks.Client)
	store := memstore.New()
	logger := zap.NewNop()

	feature := NewFeature(client, storage.Config{Bucket: "test-bucket"}, store,
		reconcile.New(store, logger, reconcile.Options{}),
		authmw.New(authmw.Config{ApiKey: "secret"}), logger)
	require.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, client
}

func TestHandleImport(t *testing.T) {
	app, client := setupTestApp(t)
	client.On("GetObject", mock.Anything, "test-bucket", "batch.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`[{"roll":"100001","c":"3.00"}]`)), nil)

	tests := []struct {
		name       string
		key        string
		body       string
		wantStatus int
	}{
		{"No Key", "", `{"object":"batch.json"}`, 401},
		{"Missing Object", "secret", `{}`, 400},
		{"Bad Mode", "secret", `{"object":"batch.json","mode":"upsert"}`, 400},
		{"Imported", "secret", `{"object":"batch.json","mode":"merge"}`, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/archive/import", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.key != "" {
				req.Header.Set(authmw.HeaderAPIKey, tt.key)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == 200 {
				var body reconcile.BatchResult
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, 1, body.Inserted)
				assert.Equal(t, 1, body.Total)
			}
		})
	}
}

func TestHandleImport_NotFound(t *testing.T) {
	app, client := setupTestApp(t)
	client.On("GetObject", mock.Anything, "test-bucket", "gone.csv", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	req := httptest.NewRequest("POST", "/api/archive/import", strings.NewReader(`{"object":"gone.csv"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(authmw.HeaderAPIKey, "secret")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleExport_StorageFailure(t *testing.T) {
	app, client := setupTestApp(t)
	client.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

	req := httptest.NewRequest("POST", "/api/archive/export", nil)
	req.Header.Set(authmw.HeaderAPIKey, "secret")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Export failed", body["error"])
}

func TestHandleList(t *testing.T) {
	app, client := setupTestApp(t)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	req := httptest.NewRequest("GET", "/api/archive/objects?prefix=snapshots/", nil)
	req.Header.Set(authmw.HeaderAPIKey, "secret")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []ObjectSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body)
}

func TestFeature_DisabledWithoutClient(t *testing.T) {
	f := NewFeature(nil, storage.Config{}, memstore.New(), nil, nil, zap.NewNop())
	assert.False(t, f.IsEnabled())
}
