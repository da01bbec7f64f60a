package validation

import "strings"

// Code identifies the rule a field value violated
type Code string

// Validation error codes
const (
	CodeRequired      Code = "REQUIRED"
	CodeTooLong       Code = "TOO_LONG"
	CodeInvalidType   Code = "INVALID_TYPE"
	CodeOutOfRange    Code = "OUT_OF_RANGE"
	CodeInvalidDate   Code = "INVALID_DATE"
	CodeFutureDate    Code = "FUTURE_DATE"
	CodeInvalidFormat Code = "INVALID_FORMAT"
)

// FieldError describes a single rule violation on a single field
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Code    Code   `json:"code" example:"INVALID_FORMAT"`
	Message string `json:"message" example:"Invalid email address"`
}

// Errors collects every violation found in one validation pass. Fields are
// validated independently, so one bad field never masks another.
type Errors struct {
	Fields []FieldError
}

// Error implements the error interface
func (e *Errors) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// First returns the first field error. Callers surface only this one to
// clients, matching the single-message error envelope.
func (e *Errors) First() FieldError {
	if len(e.Fields) == 0 {
		return FieldError{}
	}
	return e.Fields[0]
}

// ByField returns the error recorded for the given field, if any
func (e *Errors) ByField(field string) (FieldError, bool) {
	for _, f := range e.Fields {
		if f.Field == field {
			return f, true
		}
	}
	return FieldError{}, false
}

func (e *Errors) add(field string, code Code, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Code: code, Message: message})
}

// HasErrors checks if there are any validation errors
func (e *Errors) HasErrors() bool {
	return len(e.Fields) > 0
}
