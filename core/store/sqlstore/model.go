package sqlstore

import "time"

// ResultRow is one result record. Data holds the full record as JSON so
// passthrough fields survive a round trip.
type ResultRow struct {
	ID        uint      `gorm:"primaryKey"`
	Roll      string    `gorm:"size:6;uniqueIndex;not null"`
	Data      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name.
func (ResultRow) TableName() string {
	return "results"
}
