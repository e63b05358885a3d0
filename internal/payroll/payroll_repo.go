package payroll

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, rec *Record) error
	FindByID(ctx context.Context, id string) (*Record, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id_payroll"}},
			DoUpdates: clause.AssignmentColumns([]string{"id_user", "id_company", "status"}),
		}).
		Create(rec).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).First(&rec, "id_payroll = ?", id).Error
	return &rec, err
}
