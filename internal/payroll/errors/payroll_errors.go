package payrollerrors

import (
	"net/http"

	"github.com/ProfileJass/Incapacities/internal/shared/apperror"
)

var (
	ErrCompanyNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Company name is required",
		http.StatusBadRequest,
	)
	ErrNITRequired = apperror.New(
		apperror.CodeInvalidInput,
		"NIT is required",
		http.StatusBadRequest,
	)
	ErrCompanyAddressRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Company address is required",
		http.StatusBadRequest,
	)
	ErrPhoneRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Phone is required",
		http.StatusBadRequest,
	)
)
