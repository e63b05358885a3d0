package incapacity

// CreateIncapacityRequest bundles the raw employee, employer and leave
// fields of one filing. Note there is no status field: a new incapacity
// always starts as pendiente no matter what the client sends.
type CreateIncapacityRequest struct {
	User       CreateUserPayload    `json:"user" binding:"required"`
	Payroll    CreatePayrollPayload `json:"payroll" binding:"required"`
	Incapacity CreateLeavePayload   `json:"incapacity" binding:"required"`
}

type CreateUserPayload struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Role      string `json:"role" binding:"required,max=50"`
}

type CreatePayrollPayload struct {
	NameCompany   string `json:"nameCompany" binding:"required,max=200"`
	NIT           string `json:"NIT" binding:"required,max=50"`
	AdressCompany string `json:"adressCompany" binding:"required,max=300"`
	Phone         string `json:"phone" binding:"required,max=20"`
}

type CreateLeavePayload struct {
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=accidente maternidad enfermedad"`
	Observacion *string `json:"observacion"`
}

// UpdateIncapacityRequest is a partial update: only the fields present
// in the payload are touched. Observacion keeps explicit-presence
// semantics, so an explicit empty string clears the note while an
// absent field leaves it alone.
type UpdateIncapacityRequest struct {
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Type        *string `json:"type"`
	Status      *string `json:"status"`
	Observacion *string `json:"observacion"`
}

type IncapacityResponse struct {
	ID           string  `json:"id_incapacity"`
	UserID       string  `json:"id_user"`
	PayrollID    string  `json:"id_payroll"`
	FilingNumber int64   `json:"filing_number"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	Observacion  *string `json:"observacion,omitempty"`
}
