package user

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert inserts or, when the primary key already exists, refreshes
// every descriptive column. Email is intentionally not unique: every
// filing mints a fresh user row, so the same employee appears once per
// incapacity.
func (r *repository) Upsert(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id_user"}},
			DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "email", "role"}),
		}).
		Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id_user = ?", id).Error
	return &u, err
}
