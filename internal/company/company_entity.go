package company

import (
	"github.com/google/uuid"
)

// Company is the employer record referenced by a payroll row. The
// descriptive fields (including the NIT tax id) travel inside the
// Payroll value object and are persisted here.
type Company struct {
	ID            uuid.UUID `gorm:"column:id_company;type:uuid;primaryKey" json:"id_company"`
	NameCompany   string    `gorm:"column:name_company;type:varchar(200);not null" json:"nameCompany"`
	NIT           string    `gorm:"column:nit;type:varchar(50);not null" json:"NIT"`
	AdressCompany string    `gorm:"column:adress_company;type:varchar(300);not null" json:"adressCompany"`
	Phone         string    `gorm:"column:phone;type:varchar(20);not null" json:"phone"`
}

func (Company) TableName() string {
	return "companies"
}
