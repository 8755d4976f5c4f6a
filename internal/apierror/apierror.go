// Package apierror provides the error taxonomy and the standardized response
// envelopes for the API. All errors returned to clients go through this
// package to ensure consistency and to prevent leaking internal details
// (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// Kind classifies a failure for HTTP status mapping.
type Kind int

const (
	// KindValidation: malformed input — missing field, non-positive
	// quantity, out-of-range rate, empty item list.
	KindValidation Kind = iota
	// KindNotFound: a referenced empresa/produto/nota id does not resolve.
	KindNotFound
	// KindConflict: the operation contradicts existing state (duplicate
	// CNPJ, deleting a record still referenced by issued notas).
	KindConflict
	// KindTransient: a storage failure surfaced to the caller; never
	// retried internally.
	KindTransient
)

// Error is a classified business error. Detail is safe to show to clients.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func Validation(detail string) *Error { return &Error{Kind: KindValidation, Detail: detail} }
func NotFound(detail string) *Error   { return &Error{Kind: KindNotFound, Detail: detail} }
func Conflict(detail string) *Error   { return &Error{Kind: KindConflict, Detail: detail} }
func Transient(detail string) *Error  { return &Error{Kind: KindTransient, Detail: detail} }

// StatusOf maps an error to its HTTP status. Unclassified errors are
// internal failures.
func StatusOf(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validacao", Fields: fields}
}
