package counter

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// FilingCounter backs the per-employer filing (radicado) sequence.
type FilingCounter struct {
	Scope       string    `gorm:"column:scope;type:varchar(64);primaryKey"`
	CounterType string    `gorm:"column:counter_type;type:varchar(32);primaryKey"`
	LastValue   int64     `gorm:"column:last_value;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (FilingCounter) TableName() string {
	return "filing_counters"
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	NextValue(ctx context.Context, scope string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) NextValue(ctx context.Context, scope string, counterType string) (int64, error) {
	var nextValue int64

	// Atomic upsert-and-increment; concurrent callers for the same
	// scope/type serialize on the row.
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO filing_counters (scope, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (scope, counter_type) DO UPDATE
		SET last_value = filing_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, scope, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
