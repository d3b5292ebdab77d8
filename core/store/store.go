// Package store opens the configured results.Store backend.
//
// The mongo, mysql and sqlite drivers connect through a database.Keeper, so
// the service can start while the backend is still down; the store answers
// ErrStoreUnavailable until the first dial succeeds. The memory driver is
// ready immediately and keeps nothing across restarts.
package store

import (
	"context"
	"fmt"
	"time"

	"result-checker/core/database"
	"result-checker/core/mongodb"
	"result-checker/core/results"
	"result-checker/core/store/memstore"
	"result-checker/core/store/mongostore"
	"result-checker/core/store/sqlstore"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store drivers.
const (
	DriverMongo  = "mongo"
	DriverMySQL  = database.DriverMySQL
	DriverSQLite = database.DriverSQLite
	DriverMemory = "memory"
)

// Config selects and tunes the store backend.
type Config struct {
	// Driver is the backend (mongo, mysql, sqlite, memory).
	Driver string `mapstructure:"driver" default:"mongo"`
	// ChunkSize is the number of items processed per reconciler chunk.
	ChunkSize int `mapstructure:"chunk_size" default:"100"`
	// RetrySeconds is the first reconnect delay.
	RetrySeconds int `mapstructure:"retry_seconds" default:"5"`
	// MaxRetrySeconds caps the reconnect delay.
	MaxRetrySeconds int `mapstructure:"max_retry_seconds" default:"60"`
	// DialTimeoutSeconds bounds one connection attempt.
	DialTimeoutSeconds int `mapstructure:"dial_timeout_seconds" default:"30"`
}

// Backoff returns the reconnect schedule.
func (c Config) Backoff() database.Backoff {
	return database.Backoff{
		Initial: time.Duration(c.RetrySeconds) * time.Second,
		Max:     time.Duration(c.MaxRetrySeconds) * time.Second,
	}
}

func (c Config) dialTimeout() time.Duration {
	if c.DialTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.DialTimeoutSeconds) * time.Second
}

// Backend is an opened store plus its connection lifecycle.
type Backend struct {
	results.Store

	driver string
	ready  func() bool
	wait   func(ctx context.Context) error
	close  func() error
}

// Driver returns the backend driver name.
func (b *Backend) Driver() string {
	return b.driver
}

// Ready reports whether the backend is connected.
func (b *Backend) Ready() bool {
	return b.ready()
}

// Wait blocks until the backend is connected or ctx ends.
func (b *Backend) Wait(ctx context.Context) error {
	return b.wait(ctx)
}

// Close stops reconnecting and releases the connection.
func (b *Backend) Close() error {
	return b.close()
}

// Open starts the backend named by cfg.Driver. Connecting continues in the
// background until ctx is cancelled or Close is called.
func Open(ctx context.Context, cfg Config, mongoCfg mongodb.Config, dbCfg database.Config, logger *zap.Logger) (*Backend, error) {
	switch cfg.Driver {
	case DriverMongo, "":
		keeper := database.NewKeeper("mongo", func(ctx context.Context) (*mongo.Client, error) {
			ctx, cancel := context.WithTimeout(ctx, cfg.dialTimeout())
			defer cancel()
			return mongodb.Connect(ctx, mongoCfg)
		}, mongodb.Disconnect, cfg.Backoff(), logger)
		keeper.Start(ctx)

		return fromKeeper(DriverMongo, keeper, mongostore.New(keeper, mongoCfg.Database, mongoCfg.Collection)), nil

	case DriverMySQL, DriverSQLite:
		dbCfg.Driver = cfg.Driver
		keeper := database.NewKeeper(cfg.Driver, func(ctx context.Context) (*gorm.DB, error) {
			ctx, cancel := context.WithTimeout(ctx, cfg.dialTimeout())
			defer cancel()
			db, err := database.ConnectContext(ctx, dbCfg)
			if err != nil {
				return nil, err
			}
			if err := sqlstore.Migrate(db); err != nil {
				_ = database.Close(db)
				return nil, err
			}
			return db, nil
		}, database.Close, cfg.Backoff(), logger)
		keeper.Start(ctx)

		return fromKeeper(cfg.Driver, keeper, sqlstore.New(keeper)), nil

	case DriverMemory:
		return &Backend{
			Store:  memstore.New(),
			driver: DriverMemory,
			ready:  func() bool { return true },
			wait:   func(ctx context.Context) error { return nil },
			close:  func() error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}

func fromKeeper[T any](driver string, keeper *database.Keeper[T], s results.Store) *Backend {
	return &Backend{
		Store:  s,
		driver: driver,
		ready:  keeper.Ready,
		wait: func(ctx context.Context) error {
			_, err := keeper.Wait(ctx)
			return err
		},
		close: keeper.Close,
	}
}
