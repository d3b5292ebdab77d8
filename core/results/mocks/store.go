package mocks

import (
	"context"

	"result-checker/core/results"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of results.Store
type Store struct {
	mock.Mock
}

func (m *Store) FindByKey(ctx context.Context, roll string) (results.Record, error) {
	args := m.Called(ctx, roll)
	if rec, ok := args.Get(0).(results.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) InsertOne(ctx context.Context, record results.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *Store) ReplaceOne(ctx context.Context, roll string, record results.Record, upsert bool) (results.ReplaceResult, error) {
	args := m.Called(ctx, roll, record, upsert)
	return args.Get(0).(results.ReplaceResult), args.Error(1)
}

func (m *Store) ScanAll(ctx context.Context) ([]results.Record, error) {
	args := m.Called(ctx)
	if recs, ok := args.Get(0).([]results.Record); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Store) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
