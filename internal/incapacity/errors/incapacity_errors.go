package incapacityerrors

import (
	"net/http"

	"github.com/ProfileJass/Incapacities/internal/shared/apperror"
)

var (
	ErrIncapacityIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Incapacity ID is required",
		http.StatusBadRequest,
	)
	ErrUserIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"User ID is required",
		http.StatusBadRequest,
	)
	ErrIncapacityNotFound = apperror.New(
		apperror.CodeNotFound,
		"Incapacity not found",
		http.StatusNotFound,
	)
	ErrInvalidType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid incapacity type",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid incapacity status",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date must be after start date",
		http.StatusBadRequest,
	)
	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid start date format",
		http.StatusBadRequest,
	)
	ErrInvalidEndDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid end date format",
		http.StatusBadRequest,
	)
	// The partial update matched no row: the record vanished between
	// the existence check and the write.
	ErrUpdateFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to update incapacity",
		http.StatusInternalServerError,
	)
)
