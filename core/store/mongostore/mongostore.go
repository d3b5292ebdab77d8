// Package mongostore implements results.Store on a MongoDB collection.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"result-checker/core/results"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ClientSource hands out the shared client. database.Keeper satisfies it.
type ClientSource interface {
	Get() (*mongo.Client, error)
}

// Store reads and writes result documents.
type Store struct {
	collection func() (*mongo.Collection, error)
}

// New returns a Store on database.collection of the client held by src.
func New(src ClientSource, database, collection string) *Store {
	return &Store{collection: func() (*mongo.Collection, error) {
		client, err := src.Get()
		if err != nil {
			return nil, err
		}
		return client.Database(database).Collection(collection), nil
	}}
}

// NewWithCollection returns a Store bound to an already opened collection.
func NewWithCollection(coll *mongo.Collection) *Store {
	return &Store{collection: func() (*mongo.Collection, error) { return coll, nil }}
}

var withoutID = bson.D{{Key: "_id", Value: 0}}

// FindByKey returns the record for roll, or nil when absent.
func (s *Store) FindByKey(ctx context.Context, roll string) (results.Record, error) {
	coll, err := s.collection()
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = coll.FindOne(ctx, bson.D{{Key: results.FieldRoll, Value: roll}}, options.FindOne().SetProjection(withoutID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(fmt.Errorf("find %s: %w", roll, err))
	}
	return toRecord(doc), nil
}

// InsertOne stores a new record.
func (s *Store) InsertOne(ctx context.Context, record results.Record) error {
	coll, err := s.collection()
	if err != nil {
		return err
	}

	// The driver adds _id to map documents it inserts; keep the caller's map clean.
	_, err = coll.InsertOne(ctx, bson.M(record.Clone()))
	if mongo.IsDuplicateKeyError(err) {
		roll, _ := record.Roll()
		return fmt.Errorf("insert %s: %w", roll, results.ErrDuplicateRoll)
	}
	if err != nil {
		return classify(fmt.Errorf("insert: %w", err))
	}
	return nil
}

// ReplaceOne overwrites the document for roll, creating it when upsert is set.
func (s *Store) ReplaceOne(ctx context.Context, roll string, record results.Record, upsert bool) (results.ReplaceResult, error) {
	coll, err := s.collection()
	if err != nil {
		return results.ReplaceResult{}, err
	}

	doc := bson.M(record.Clone())
	delete(doc, "_id")

	res, err := coll.ReplaceOne(ctx, bson.D{{Key: results.FieldRoll, Value: roll}}, doc, options.Replace().SetUpsert(upsert))
	if err != nil {
		return results.ReplaceResult{}, classify(fmt.Errorf("replace %s: %w", roll, err))
	}
	return results.ReplaceResult{
		Matched:  res.MatchedCount > 0,
		Upserted: res.UpsertedCount > 0,
	}, nil
}

// ScanAll returns every document without its _id.
func (s *Store) ScanAll(ctx context.Context) ([]results.Record, error) {
	coll, err := s.collection()
	if err != nil {
		return nil, err
	}

	cur, err := coll.Find(ctx, bson.D{}, options.Find().SetProjection(withoutID))
	if err != nil {
		return nil, classify(fmt.Errorf("scan: %w", err))
	}
	defer cur.Close(ctx)

	var out []results.Record
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		out = append(out, toRecord(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, classify(fmt.Errorf("scan: %w", err))
	}
	return out, nil
}

// Count returns the number of documents.
func (s *Store) Count(ctx context.Context) (int64, error) {
	coll, err := s.collection()
	if err != nil {
		return 0, err
	}
	n, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, classify(fmt.Errorf("count: %w", err))
	}
	return n, nil
}

// Ping checks the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	coll, err := s.collection()
	if err != nil {
		return err
	}
	if err := coll.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return results.Unavailable(fmt.Errorf("ping: %w", err))
	}
	return nil
}

// classify marks connectivity failures as ErrStoreUnavailable.
func classify(err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return results.Unavailable(err)
	}
	return err
}

func toRecord(doc bson.M) results.Record {
	delete(doc, "_id")
	rec := make(results.Record, len(doc))
	for k, v := range doc {
		rec[k] = normalize(v)
	}
	return rec
}

// normalize turns driver container types into plain maps and slices.
func normalize(v any) any {
	switch t := v.(type) {
	case primitive.M:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}
		return out
	case primitive.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = normalize(e.Value)
		}
		return out
	case primitive.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	default:
		return v
	}
}
