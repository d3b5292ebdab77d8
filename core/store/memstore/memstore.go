// Package memstore is an in-process results.Store used by the "memory" store
// driver and by tests. Records are kept in insertion order so scans are
// deterministic.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"result-checker/core/results"
)

// Store is a mutex-guarded map of records keyed by roll.
type Store struct {
	mu      sync.RWMutex
	records map[string]results.Record
	order   []string
}

// New returns an empty store.
func New() *Store {
	return &Store{records: make(map[string]results.Record)}
}

// FindByKey returns a copy of the record for roll, or nil when absent.
func (s *Store) FindByKey(ctx context.Context, roll string) (results.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[roll]
	if !ok {
		return nil, nil
	}
	return rec.Clone(), nil
}

// InsertOne stores a new record.
func (s *Store) InsertOne(ctx context.Context, record results.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	roll, ok := record.Roll()
	if !ok {
		return fmt.Errorf("record has no roll")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[roll]; exists {
		return fmt.Errorf("insert %s: %w", roll, results.ErrDuplicateRoll)
	}
	s.records[roll] = record.Clone()
	s.order = append(s.order, roll)
	return nil
}

// ReplaceOne overwrites or, with upsert, creates the record for roll.
func (s *Store) ReplaceOne(ctx context.Context, roll string, record results.Record, upsert bool) (results.ReplaceResult, error) {
	if err := ctx.Err(); err != nil {
		return results.ReplaceResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[roll]; exists {
		s.records[roll] = record.Clone()
		return results.ReplaceResult{Matched: true}, nil
	}
	if !upsert {
		return results.ReplaceResult{}, nil
	}
	s.records[roll] = record.Clone()
	s.order = append(s.order, roll)
	return results.ReplaceResult{Upserted: true}, nil
}

// ScanAll returns copies of all records in insertion order.
func (s *Store) ScanAll(ctx context.Context) ([]results.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]results.Record, 0, len(s.order))
	for _, roll := range s.order {
		out = append(out, s.records[roll].Clone())
	}
	return out, nil
}

// Count returns the number of records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.records)), nil
}

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}
