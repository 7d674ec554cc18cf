package model

import "errors"

// Application sentinel errors. Row-scoped ones (missing identifier,
// unresolved reference) never abort a whole file; they are collected into the
// file's issue list instead.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServer      = errors.New("internal server error")
	ErrConflict            = errors.New("resource conflict")
	ErrMissingIdentifier   = errors.New("row lacks the external identifier required for resolution")
	ErrValidation          = errors.New("value violates a business rule")
	ErrUnresolvedReference = errors.New("row references an unknown catalog entity")
	ErrColumnSignature     = errors.New("file columns do not match the declared type")
	ErrSelfReportTooEarly  = errors.New("self-report accepted only after the event has ended")
)

// AppError carries a stable machine code and a human message alongside the
// wrapped sentinel used for HTTP mapping.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	err     error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{Code: code, Message: message, Field: field, err: err}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return e.Code + ": " + e.Message + " (" + e.err.Error() + ")"
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// ErrorDetail is the wire shape of one error.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse is the JSON envelope for error responses.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
