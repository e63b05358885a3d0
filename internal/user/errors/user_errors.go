package usererrors

import (
	"net/http"

	"github.com/ProfileJass/Incapacities/internal/shared/apperror"
)

var (
	ErrFirstNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"First name is required",
		http.StatusBadRequest,
	)
	ErrLastNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Last name is required",
		http.StatusBadRequest,
	)
	ErrValidEmailRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Valid email is required",
		http.StatusBadRequest,
	)
	ErrRoleRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Role is required",
		http.StatusBadRequest,
	)
)
