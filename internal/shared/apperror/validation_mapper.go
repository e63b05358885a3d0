package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldError mirrors the wire shape of a single schema violation.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// formatFieldName turns a json field name into a human-readable label
// (recipient_phone -> Recipient Phone, nameCompany -> NameCompany).
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(s)
}

// MapValidationError converts gin/validator binding failures into a
// single 400 AppError carrying the per-field detail list.
func MapValidationError(err error) *AppError {
	appErr := New(CodeInvalidInput, "Validation error", http.StatusBadRequest)

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		appErr.Details = []FieldError{{Path: "body", Message: "Invalid request body"}}
		return appErr
	}

	details := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		// Namespace starts with the root struct name; the response
		// path should read like the payload (user.firstName).
		path := e.Namespace()
		if i := strings.Index(path, "."); i >= 0 {
			path = path[i+1:]
		}

		field := formatFieldName(e.Field())
		var msg string
		switch e.Tag() {
		case "required":
			msg = field + " is required"
		case "email":
			msg = "Invalid email format"
		case "oneof":
			msg = field + " must be one of: " + strings.Join(strings.Split(e.Param(), " "), ", ")
		case "max":
			msg = field + " exceeds the maximum length of " + e.Param()
		case "uuid":
			msg = "Invalid UUID format"
		default:
			msg = field + " is invalid"
		}
		details = append(details, FieldError{Path: path, Message: msg})
	}

	appErr.Details = details
	return appErr
}
