package incapacity

import (
	"time"

	"github.com/google/uuid"
)

// Leave cause classification. Values are the wire literals, kept in
// Spanish as the filings authority expects them.
const (
	TypeAccidente  = "accidente"
	TypeMaternidad = "maternidad"
	TypeEnfermedad = "enfermedad"
)

// Approval lifecycle states. Every new incapacity starts in
// StatusPendiente; the update flow may move it to any other state.
const (
	StatusPendiente  = "pendiente"
	StatusEnTramite  = "en trámite"
	StatusConfirmada = "confirmada"
	StatusNegada     = "negada"
)

func IsValidType(v string) bool {
	switch v {
	case TypeAccidente, TypeMaternidad, TypeEnfermedad:
		return true
	}
	return false
}

func IsValidStatus(v string) bool {
	switch v {
	case StatusPendiente, StatusEnTramite, StatusConfirmada, StatusNegada:
		return true
	}
	return false
}

// Incapacity is the medical-leave record. It is a plain data holder:
// identity and foreign keys are assigned once at creation, and date
// consistency is the update flow's responsibility, not the struct's.
type Incapacity struct {
	ID           uuid.UUID  `gorm:"column:id_incapacity;type:uuid;primaryKey" json:"id_incapacity"`
	UserID       uuid.UUID  `gorm:"column:id_user;type:uuid;not null;index:idx_incapacities_user" json:"id_user"`
	PayrollID    uuid.UUID  `gorm:"column:id_payroll;type:uuid;not null" json:"id_payroll"`
	FilingNumber int64      `gorm:"column:filing_number;not null;default:0" json:"filing_number"`
	StartDate    *time.Time `gorm:"column:start_date;type:timestamptz;index:idx_incapacities_dates" json:"start_date"`
	EndDate      *time.Time `gorm:"column:end_date;type:timestamptz;index:idx_incapacities_dates" json:"end_date"`
	Type         string     `gorm:"column:type;type:varchar(20);not null" json:"type"`
	Status       string     `gorm:"column:status;type:varchar(20);not null;default:'pendiente'" json:"status"`
	Observacion  *string    `gorm:"column:observacion;type:text" json:"observacion,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Incapacity) TableName() string {
	return "incapacities"
}

// NewIncapacity assembles the aggregate without re-validating dates.
func NewIncapacity(
	id, userID, payrollID uuid.UUID,
	startDate, endDate *time.Time,
	leaveType, status string,
	observacion *string,
) *Incapacity {
	return &Incapacity{
		ID:          id,
		UserID:      userID,
		PayrollID:   payrollID,
		StartDate:   startDate,
		EndDate:     endDate,
		Type:        leaveType,
		Status:      status,
		Observacion: observacion,
	}
}
