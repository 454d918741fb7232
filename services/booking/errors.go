package booking

import (
	"errors"
	"fmt"
)

// Service error codes. Handlers map these onto HTTP statuses; NoCandidates is an
// internal signal consumed by the lifecycle manager and never surfaced.
const (
	CodeInvalidInput      = "invalidInput"
	CodeInvalidRange      = "invalidRange"
	CodePastSchedule      = "pastSchedule"
	CodeNotFound          = "notFound"
	CodeConflict          = "conflict"
	CodeInvalidTransition = "invalidTransition"
	CodeNoCandidates      = "noCandidates"
)

// ServiceError is a coded error shared by the booking and availability services.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidInput(format string, args ...any) error {
	return &ServiceError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func NewInvalidRange(format string, args ...any) error {
	return &ServiceError{Code: CodeInvalidRange, Message: fmt.Sprintf(format, args...)}
}

func NewPastSchedule(format string, args ...any) error {
	return &ServiceError{Code: CodePastSchedule, Message: fmt.Sprintf(format, args...)}
}

func NewNotFound(format string, args ...any) error {
	return &ServiceError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewConflict(format string, args ...any) error {
	return &ServiceError{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func NewInvalidTransition(format string, args ...any) error {
	return &ServiceError{Code: CodeInvalidTransition, Message: fmt.Sprintf(format, args...)}
}

func NewNoCandidates(format string, args ...any) error {
	return &ServiceError{Code: CodeNoCandidates, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the service error code from err, unwrapping as needed.
// It returns an empty string for nil or non-service errors.
func CodeOf(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsCode reports whether err carries the given service error code.
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}
