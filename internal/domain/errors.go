package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDomain indicates a domain identifier that was never registered.
	// This is a programming or configuration error, not a user mistake.
	ErrUnknownDomain = errors.New("unknown domain")

	// ErrSchemaMismatch indicates a record missing a field its domain schema
	// marks as required. The submission is rejected; it is never coerced into
	// a default score.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrInsufficientData indicates an aggregate was requested before any
	// domain had a current record. Reported as a distinct state, never as a
	// zero score.
	ErrInsufficientData = errors.New("insufficient data")
)

// UnknownDomainError wraps ErrUnknownDomain with the offending name.
type UnknownDomainError struct {
	Name string
}

func (e *UnknownDomainError) Error() string {
	return fmt.Sprintf("unknown domain %q", e.Name)
}

func (e *UnknownDomainError) Unwrap() error { return ErrUnknownDomain }

// SchemaError wraps ErrSchemaMismatch with the domain and field that failed.
type SchemaError struct {
	Domain Domain
	Field  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("domain %s: required field %q missing", e.Domain, e.Field)
}

func (e *SchemaError) Unwrap() error { return ErrSchemaMismatch }
