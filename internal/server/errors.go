package server

import (
	"fmt"
	"net/http"
)

// ErrIncompleteProfile indicates the applicant profile has no usable
// data to score against.
type ErrIncompleteProfile struct {
	Skills      int
	Educations  int
	Experiences int
}

func (e *ErrIncompleteProfile) Error() string {
	return fmt.Sprintf("profile is incomplete: %d skills, %d educations, %d experiences",
		e.Skills, e.Educations, e.Experiences)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrIncompleteProfile, *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
