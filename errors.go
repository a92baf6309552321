package sqlbuild

import (
	"errors"
	"fmt"
)

// MissingFieldError is returned by a statement builder when a required
// configuration field is absent or empty. Construction aborts before any
// fragment is produced.
type MissingFieldError struct {
	Builder string // Statement builder that rejected the configuration ("insert", "update", "delete").
	Field   string // Name of the missing configuration field.
}

// Error returns the error string.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("sqlbuild: %s: missing required field %q", e.Builder, e.Field)
}

// NewMissingFieldError returns a new MissingFieldError for the given builder and field.
func NewMissingFieldError(builder, field string) *MissingFieldError {
	return &MissingFieldError{Builder: builder, Field: field}
}

// IsMissingField returns true if the error is a MissingFieldError.
func IsMissingField(err error) bool {
	if err == nil {
		return false
	}
	var e *MissingFieldError
	return errors.As(err, &e)
}

// JoinError is returned when a join descriptor derives its condition from
// table-column pairs and the number of pairs is not exactly two.
type JoinError struct {
	Explicit bool // The descriptor carried an explicit join type.
	Count    int  // Number of table-column pairs found.
}

// Error returns the error string.
func (e *JoinError) Error() string {
	if e.Explicit {
		return fmt.Sprintf("sqlbuild: join with explicit type: expected exactly 2 table-column pairs, found %d", e.Count)
	}
	return fmt.Sprintf("sqlbuild: shorthand join: expected exactly 2 table-column pairs, found %d", e.Count)
}

// NewJoinError returns a new JoinError with the number of pairs found.
func NewJoinError(explicit bool, count int) *JoinError {
	return &JoinError{Explicit: explicit, Count: count}
}

// IsJoinError returns true if the error is a JoinError.
func IsJoinError(err error) bool {
	if err == nil {
		return false
	}
	var e *JoinError
	return errors.As(err, &e)
}

// DecodeError is returned when an untyped configuration document cannot be
// converted into one of the specification variants.
type DecodeError struct {
	Field string // Configuration field being decoded.
	Err   error  // Underlying error.
}

// Error returns the error string.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("sqlbuild: decoding %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError returns a new DecodeError for the given configuration field.
func NewDecodeError(field string, err error) *DecodeError {
	return &DecodeError{Field: field, Err: err}
}

// IsDecodeError returns true if the error is a DecodeError.
func IsDecodeError(err error) bool {
	if err == nil {
		return false
	}
	var e *DecodeError
	return errors.As(err, &e)
}
