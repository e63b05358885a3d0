package incapacity

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=incapacity_repo.go -destination=mock/incapacity_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, inc *Incapacity) error
	FindAll(ctx context.Context) ([]Incapacity, error)
	FindByID(ctx context.Context, id string) (*Incapacity, error)
	FindByUserID(ctx context.Context, userID string) ([]Incapacity, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Incapacity, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, inc *Incapacity) error {
	return r.db.WithContext(ctx).Create(inc).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Incapacity, error) {
	var incs []Incapacity
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&incs).Error
	return incs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Incapacity, error) {
	var inc Incapacity
	err := r.db.WithContext(ctx).First(&inc, "id_incapacity = ?", id).Error
	return &inc, err
}

func (r *repository) FindByUserID(ctx context.Context, userID string) ([]Incapacity, error) {
	var incs []Incapacity
	err := r.db.WithContext(ctx).
		Where("id_user = ?", userID).
		Order("start_date DESC").
		Find(&incs).Error
	return incs, err
}

// Update applies only the given columns and reports
// gorm.ErrRecordNotFound when no row matched the id.
func (r *repository) Update(ctx context.Context, id string, fields map[string]any) (*Incapacity, error) {
	res := r.db.WithContext(ctx).
		Model(&Incapacity{}).
		Where("id_incapacity = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.FindByID(ctx, id)
}
