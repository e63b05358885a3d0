package user

import (
	"regexp"
	"strings"

	usererrors "github.com/ProfileJass/Incapacities/internal/user/errors"

	"github.com/google/uuid"
)

// User is the employee identity attached to an incapacity. Fields are
// set once through New and never mutated afterwards.
type User struct {
	ID        uuid.UUID `gorm:"column:id_user;type:uuid;primaryKey" json:"id_user"`
	FirstName string    `gorm:"column:first_name;type:varchar(100);not null" json:"firstName"`
	LastName  string    `gorm:"column:last_name;type:varchar(100);not null" json:"lastName"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;index:idx_users_email" json:"email"`
	Role      string    `gorm:"column:role;type:varchar(50);not null" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// Something before the @, a domain, and a dot-separated tld. Not a
// full RFC 5322 parse.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// New builds a validated User. Validation is fail-fast: the first
// violated rule wins.
func New(id uuid.UUID, firstName, lastName, email, role string) (*User, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, usererrors.ErrFirstNameRequired
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, usererrors.ErrLastNameRequired
	}
	if email == "" || !emailPattern.MatchString(email) {
		return nil, usererrors.ErrValidEmailRequired
	}
	if strings.TrimSpace(role) == "" {
		return nil, usererrors.ErrRoleRequired
	}

	return &User{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Role:      role,
	}, nil
}
