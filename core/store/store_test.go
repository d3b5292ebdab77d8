package store

import (
	"context"
	"testing"
	"time"

	"result-checker/core/database"
	"result-checker/core/mongodb"
	"result-checker/core/results"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestOpen_Memory(t *testing.T) {
	b, err := Open(context.Background(), Config{Driver: DriverMemory}, mongodb.Config{}, database.Config{}, zap.NewNop())
	require.NoError(t, err)
	defer b.Close()

	assert.True(t, b.Ready())
	assert.Equal(t, DriverMemory, b.Driver())
	require.NoError(t, b.InsertOne(context.Background(), results.Record{"roll": "123456"}))

	n, err := b.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestOpen_SQLite(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	cfg := Config{Driver: DriverSQLite, RetrySeconds: 1, MaxRetrySeconds: 1}
	b, err := Open(context.Background(), cfg, mongodb.Config{}, database.Config{Name: ":memory:"}, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, b.Wait(ctx))
	assert.True(t, b.Ready())

	require.NoError(t, b.InsertOne(ctx, results.Record{"roll": "123456", "c": "3.00"}))
	rec, err := b.FindByKey(ctx, "123456")
	require.NoError(t, err)
	assert.Equal(t, "3.00", rec["c"])

	require.NoError(t, b.Close())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "cassandra"}, mongodb.Config{}, database.Config{}, zap.NewNop())
	assert.ErrorContains(t, err, "unsupported store driver")
}

func TestConfig_Backoff(t *testing.T) {
	b := Config{RetrySeconds: 5, MaxRetrySeconds: 60}.Backoff()
	assert.Equal(t, 5*time.Second, b.Initial)
	assert.Equal(t, time.Minute, b.Max)
}
