package payroll

import (
	"strings"

	payrollerrors "github.com/ProfileJass/Incapacities/internal/payroll/errors"

	"github.com/google/uuid"
)

// Payroll is the employer-side value object carried through the create
// flow: the payroll identity plus the company's descriptive fields.
// Immutable after New.
type Payroll struct {
	ID            uuid.UUID
	CompanyID     uuid.UUID
	NameCompany   string
	NIT           string
	AdressCompany string
	Phone         string
}

// New validates the four mandatory descriptive fields, fail-fast.
func New(id, companyID uuid.UUID, nameCompany, nit, adressCompany, phone string) (*Payroll, error) {
	if strings.TrimSpace(nameCompany) == "" {
		return nil, payrollerrors.ErrCompanyNameRequired
	}
	if strings.TrimSpace(nit) == "" {
		return nil, payrollerrors.ErrNITRequired
	}
	if strings.TrimSpace(adressCompany) == "" {
		return nil, payrollerrors.ErrCompanyAddressRequired
	}
	if strings.TrimSpace(phone) == "" {
		return nil, payrollerrors.ErrPhoneRequired
	}

	return &Payroll{
		ID:            id,
		CompanyID:     companyID,
		NameCompany:   nameCompany,
		NIT:           nit,
		AdressCompany: adressCompany,
		Phone:         phone,
	}, nil
}

const StatusActive = "active"

// Record is the persisted payroll row linking a user to a company.
type Record struct {
	ID        uuid.UUID `gorm:"column:id_payroll;type:uuid;primaryKey" json:"id_payroll"`
	UserID    uuid.UUID `gorm:"column:id_user;type:uuid;not null;index" json:"id_user"`
	CompanyID uuid.UUID `gorm:"column:id_company;type:uuid;not null;index" json:"id_company"`
	Status    string    `gorm:"column:status;type:varchar(20);not null;default:'active'" json:"status"`
}

func (Record) TableName() string {
	return "payrolls"
}
