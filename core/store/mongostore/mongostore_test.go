package mongostore

import (
	"context"
	"errors"
	"testing"

	"result-checker/core/results"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func ns(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("find returns normalized record", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "roll", Value: "123456"},
			{Key: "c", Value: "3.50"},
			{Key: "s", Value: bson.A{"101", "102"}},
			{Key: "meta", Value: bson.D{{Key: "inst", Value: "A"}}},
		}))

		rec, err := NewWithCollection(mt.Coll).FindByKey(ctx, "123456")
		require.NoError(mt, err)
		assert.Equal(mt, results.Record{
			"roll": "123456",
			"c":    "3.50",
			"s":    []any{"101", "102"},
			"meta": map[string]any{"inst": "A"},
		}, rec)
	})

	mt.Run("find absent returns nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		rec, err := NewWithCollection(mt.Coll).FindByKey(ctx, "999999")
		require.NoError(mt, err)
		assert.Nil(mt, rec)
	})

	mt.Run("insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		record := results.Record{"roll": "123456"}
		require.NoError(mt, NewWithCollection(mt.Coll).InsertOne(ctx, record))
		assert.NotContains(mt, record, "_id")
	})

	mt.Run("insert duplicate roll", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		err := NewWithCollection(mt.Coll).InsertOne(ctx, results.Record{"roll": "123456"})
		assert.ErrorIs(mt, err, results.ErrDuplicateRoll)
	})

	mt.Run("replace matched", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := NewWithCollection(mt.Coll).ReplaceOne(ctx, "123456", results.Record{"roll": "123456"}, true)
		require.NoError(mt, err)
		assert.Equal(mt, results.ReplaceResult{Matched: true}, res)
	})

	mt.Run("replace upserted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{
				bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: primitive.NewObjectID()}},
			}},
		))

		res, err := NewWithCollection(mt.Coll).ReplaceOne(ctx, "123456", results.Record{"roll": "123456"}, true)
		require.NoError(mt, err)
		assert.Equal(mt, results.ReplaceResult{Upserted: true}, res)
	})

	mt.Run("replace without match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		res, err := NewWithCollection(mt.Coll).ReplaceOne(ctx, "123456", results.Record{"roll": "123456"}, false)
		require.NoError(mt, err)
		assert.Equal(mt, results.ReplaceResult{}, res)
	})

	mt.Run("scan all", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			bson.D{{Key: "roll", Value: "100001"}, {Key: "c", Value: "3.00"}},
			bson.D{{Key: "roll", Value: "100002"}, {Key: "s", Value: bson.A{"201"}}},
		))

		recs, err := NewWithCollection(mt.Coll).ScanAll(ctx)
		require.NoError(mt, err)
		require.Len(mt, recs, 2)
		assert.Equal(mt, "100001", recs[0]["roll"])
		assert.Equal(mt, []any{"201"}, recs[1]["s"])
	})

	mt.Run("count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(3)}},
		))

		n, err := NewWithCollection(mt.Coll).Count(ctx)
		require.NoError(mt, err)
		assert.EqualValues(mt, 3, n)
	})

	mt.Run("ping failure is unavailable", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "not authorized",
			Name:    "Unauthorized",
		}))

		err := NewWithCollection(mt.Coll).Ping(ctx)
		assert.ErrorIs(mt, err, results.ErrStoreUnavailable)
	})
}

type fakeSource struct{ err error }

func (f fakeSource) Get() (*mongo.Client, error) { return nil, f.err }

func TestStore_NotConnected(t *testing.T) {
	down := results.Unavailable(errors.New("mongo not connected"))
	s := New(fakeSource{err: down}, "resultweb", "results")
	ctx := context.Background()

	_, err := s.FindByKey(ctx, "123456")
	assert.ErrorIs(t, err, results.ErrStoreUnavailable)

	_, err = s.ReplaceOne(ctx, "123456", results.Record{}, true)
	assert.ErrorIs(t, err, results.ErrStoreUnavailable)

	_, err = s.ScanAll(ctx)
	assert.ErrorIs(t, err, results.ErrStoreUnavailable)

	assert.ErrorIs(t, s.Ping(ctx), results.ErrStoreUnavailable)
}

func TestNormalize(t *testing.T) {
	in := bson.M{
		"_id":  primitive.NewObjectID(),
		"list": primitive.A{bson.M{"k": primitive.A{"x"}}},
		"doc":  bson.D{{Key: "a", Value: int32(1)}},
	}

	rec := toRecord(in)
	assert.Equal(t, results.Record{
		"list": []any{map[string]any{"k": []any{"x"}}},
		"doc":  map[string]any{"a": int32(1)},
	}, rec)
}
