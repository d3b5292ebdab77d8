package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// ClientOptions translates cfg into driver options.
func ClientOptions(cfg Config) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetRetryWrites(true).
		SetRetryReads(true).
		SetWriteConcern(writeconcern.Majority()).
		SetCompressors([]string{"zlib"})

	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize > 0 {
		opts.SetMinPoolSize(cfg.MinPoolSize)
	}
	if cfg.MaxIdleMS > 0 {
		opts.SetMaxConnIdleTime(ms(cfg.MaxIdleMS))
	}
	if cfg.ServerSelectionMS > 0 {
		opts.SetServerSelectionTimeout(ms(cfg.ServerSelectionMS))
	}
	if cfg.SocketMS > 0 {
		opts.SetSocketTimeout(ms(cfg.SocketMS))
	}
	if cfg.ConnectMS > 0 {
		opts.SetConnectTimeout(ms(cfg.ConnectMS))
	}
	return opts
}

// Connect opens a client, pings the primary and ensures the results indexes.
// A failed ping or index build disconnects the client before returning.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, ClientOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)
	if err := EnsureIndexes(ctx, coll); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// EnsureIndexes creates the unique roll index plus the c and s lookup indexes.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, ResultIndexes())
	if err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", coll.Name(), err)
	}
	return nil
}

// ResultIndexes returns the index models of the results collection.
func ResultIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "roll", Value: 1}}, Options: options.Index().SetUnique(true).SetName("roll_unique")},
		{Keys: bson.D{{Key: "c", Value: 1}}, Options: options.Index().SetName("c_1")},
		{Keys: bson.D{{Key: "s", Value: 1}}, Options: options.Index().SetSparse(true).SetName("s_1")},
	}
}

// Disconnect closes client with a short grace period.
func Disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
