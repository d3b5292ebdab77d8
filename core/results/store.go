package results

import "context"

// ReplaceResult reports what a ReplaceOne call touched.
type ReplaceResult struct {
	// Matched is true when an existing record was overwritten.
	Matched bool
	// Upserted is true when no record existed and one was created.
	Upserted bool
}

// Store is the persistence collaborator for result records.
//
// Implementations enforce a unique roll and perform each call as one atomic
// single-record operation. They return ErrStoreUnavailable (wrapped) when the
// backend cannot be reached.
type Store interface {
	// FindByKey returns the record for roll, or (nil, nil) when none exists.
	FindByKey(ctx context.Context, roll string) (Record, error)
	// InsertOne stores a new record. A roll collision returns ErrDuplicateRoll.
	InsertOne(ctx context.Context, record Record) error
	// ReplaceOne overwrites the record for roll. With upsert it creates the
	// record when none exists.
	ReplaceOne(ctx context.Context, roll string, record Record, upsert bool) (ReplaceResult, error)
	// ScanAll returns every stored record.
	ScanAll(ctx context.Context) ([]Record, error)
	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}
