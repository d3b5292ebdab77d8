// Package sqlstore implements results.Store on a relational database through
// gorm. It backs the "mysql" and "sqlite" store drivers.
package sqlstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"

	"result-checker/core/results"

	"gorm.io/gorm"
)

// DBSource hands out the shared connection. database.Keeper satisfies it.
type DBSource interface {
	Get() (*gorm.DB, error)
}

// Store reads and writes ResultRow rows.
type Store struct {
	db func() (*gorm.DB, error)
}

// New returns a Store on the connection held by src.
func New(src DBSource) *Store {
	return &Store{db: src.Get}
}

// NewWithDB returns a Store bound to an open connection.
func NewWithDB(db *gorm.DB) *Store {
	return &Store{db: func() (*gorm.DB, error) { return db, nil }}
}

// Migrate creates or updates the results table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&ResultRow{}); err != nil {
		return fmt.Errorf("failed to migrate results table: %w", err)
	}
	return nil
}

// FindByKey returns the record for roll, or nil when absent.
func (s *Store) FindByKey(ctx context.Context, roll string) (results.Record, error) {
	db, err := s.db()
	if err != nil {
		return nil, err
	}

	var row ResultRow
	err = db.WithContext(ctx).Where("roll = ?", roll).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(fmt.Errorf("find %s: %w", roll, err))
	}
	return decode(row)
}

// InsertOne stores a new record.
func (s *Store) InsertOne(ctx context.Context, record results.Record) error {
	db, err := s.db()
	if err != nil {
		return err
	}

	roll, ok := record.Roll()
	if !ok {
		return fmt.Errorf("record has no roll")
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s: %w", roll, err)
	}

	err = db.WithContext(ctx).Create(&ResultRow{Roll: roll, Data: string(data)}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("insert %s: %w", roll, results.ErrDuplicateRoll)
	}
	if err != nil {
		return classify(fmt.Errorf("insert %s: %w", roll, err))
	}
	return nil
}

// ReplaceOne overwrites the row for roll. With upsert a missing row is
// inserted; if a concurrent insert wins the unique index the update is retried
// once so the call still ends with this record stored.
func (s *Store) ReplaceOne(ctx context.Context, roll string, record results.Record, upsert bool) (results.ReplaceResult, error) {
	db, err := s.db()
	if err != nil {
		return results.ReplaceResult{}, err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return results.ReplaceResult{}, fmt.Errorf("encode %s: %w", roll, err)
	}
	db = db.WithContext(ctx)

	matched, err := update(db, roll, string(data))
	if err != nil || matched || !upsert {
		return results.ReplaceResult{Matched: matched}, err
	}

	err = db.Create(&ResultRow{Roll: roll, Data: string(data)}).Error
	if err == nil {
		return results.ReplaceResult{Upserted: true}, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return results.ReplaceResult{}, classify(fmt.Errorf("upsert %s: %w", roll, err))
	}

	matched, err = update(db, roll, string(data))
	return results.ReplaceResult{Matched: matched}, err
}

func update(db *gorm.DB, roll, data string) (bool, error) {
	res := db.Model(&ResultRow{}).Where("roll = ?", roll).Update("data", data)
	if res.Error != nil {
		return false, classify(fmt.Errorf("replace %s: %w", roll, res.Error))
	}
	return res.RowsAffected > 0, nil
}

// ScanAll returns every record in insertion order.
func (s *Store) ScanAll(ctx context.Context) ([]results.Record, error) {
	db, err := s.db()
	if err != nil {
		return nil, err
	}

	var rows []ResultRow
	if err := db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, classify(fmt.Errorf("scan: %w", err))
	}

	out := make([]results.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := decode(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Count returns the number of rows.
func (s *Store) Count(ctx context.Context) (int64, error) {
	db, err := s.db()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := db.WithContext(ctx).Model(&ResultRow{}).Count(&n).Error; err != nil {
		return 0, classify(fmt.Errorf("count: %w", err))
	}
	return n, nil
}

// Ping checks the database answers.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.db()
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return results.Unavailable(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return results.Unavailable(fmt.Errorf("ping: %w", err))
	}
	return nil
}

func decode(row ResultRow) (results.Record, error) {
	dec := json.NewDecoder(strings.NewReader(row.Data))
	dec.UseNumber()
	var rec results.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", row.Roll, err)
	}
	if rec == nil {
		rec = results.Record{}
	}
	rec[results.FieldRoll] = row.Roll
	return rec, nil
}

// classify marks connectivity failures as ErrStoreUnavailable.
func classify(err error) error {
	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.As(err, &netErr) {
		return results.Unavailable(err)
	}
	return err
}
