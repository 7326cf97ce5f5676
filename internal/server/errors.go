package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/pitchkraft/internal/generation"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// validationError converts validator output into an *ErrValidation for the first failing field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	fe := verrs[0]
	field := "url"
	if fe.Field() != "URL" {
		field = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return &ErrValidation{Field: field, Message: "is required"}
	case "url":
		return &ErrValidation{Field: field, Message: "must be a valid URL"}
	default:
		return &ErrValidation{Field: field, Message: "failed " + fe.Tag() + " check"}
	}
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var verr *ErrValidation
	var noContent *generation.NoContentError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &noContent):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
