package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestClientOptions(t *testing.T) {
	cfg := Config{
		URI:               "mongodb://db.example:27017",
		MaxPoolSize:       100,
		MinPoolSize:       20,
		MaxIdleMS:         30000,
		ServerSelectionMS: 5000,
		SocketMS:          30000,
		ConnectMS:         5000,
	}

	opts := ClientOptions(cfg)
	require.NoError(t, opts.Validate())

	assert.Equal(t, []string{"db.example:27017"}, opts.Hosts)
	assert.EqualValues(t, 100, *opts.MaxPoolSize)
	assert.EqualValues(t, 20, *opts.MinPoolSize)
	assert.Equal(t, 30*time.Second, *opts.MaxConnIdleTime)
	assert.Equal(t, 5*time.Second, *opts.ServerSelectionTimeout)
	assert.Equal(t, 30*time.Second, *opts.SocketTimeout)
	assert.Equal(t, 5*time.Second, *opts.ConnectTimeout)
	assert.True(t, *opts.RetryWrites)
	assert.True(t, *opts.RetryReads)
	assert.Equal(t, []string{"zlib"}, opts.Compressors)
}

func TestClientOptions_ZeroValuesKeepDriverDefaults(t *testing.T) {
	opts := ClientOptions(Config{URI: "mongodb://localhost:27017"})
	assert.Nil(t, opts.MaxPoolSize)
	assert.Nil(t, opts.SocketTimeout)
}

func TestResultIndexes(t *testing.T) {
	idx := ResultIndexes()
	require.Len(t, idx, 3)

	assert.Equal(t, bson.D{{Key: "roll", Value: 1}}, idx[0].Keys)
	assert.True(t, *idx[0].Options.Unique)
	assert.True(t, *idx[2].Options.Sparse)
}
