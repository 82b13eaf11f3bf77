package httperr

import (
	"fmt"
	"strings"
)

// ======================================================
// TAXONOMY
// ======================================================

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field that failed structural checks.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// ReferenceNotFoundError is a foreign key in the request body that points
// nowhere. It is a client input error, not a 404.
type ReferenceNotFoundError struct {
	Field   string
	Message string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("reference not found: %s", e.Field)
}

type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Field)
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return "not found: " + e.Message
}

type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// ======================================================
// CONSTRUCTORS
// ======================================================

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func NewReferenceNotFound(field, message string) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{Field: field, Message: message}
}

func NewConflict(field, message string) *ConflictError {
	return &ConflictError{Field: field, Message: message}
}

func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func Internal(op string, err error) error {
	return &InternalError{Op: op, Err: err}
}
