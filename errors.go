package sequelize

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common operations.
var (
	// ErrUnsupportedDialect is returned when an operation is asked to target
	// a database dialect this library does not know about.
	ErrUnsupportedDialect = errors.New("sequelize: unsupported dialect")
)

// UnsupportedDialectError represents an error when an unrecognized database
// dialect is requested, e.g. by QuoteIdentifier.
type UnsupportedDialectError struct {
	dialect string
}

// Error returns the error string.
func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("sequelize: the dialect %s is not supported", e.dialect)
}

// Is reports whether the target error matches UnsupportedDialectError.
// This allows errors.Is(err, ErrUnsupportedDialect) to return true.
func (e *UnsupportedDialectError) Is(err error) bool {
	return err == ErrUnsupportedDialect
}

// Dialect returns the offending dialect name.
func (e *UnsupportedDialectError) Dialect() string {
	return e.dialect
}

// NewUnsupportedDialectError returns a new UnsupportedDialectError for the
// given dialect name.
func NewUnsupportedDialectError(dialect string) *UnsupportedDialectError {
	return &UnsupportedDialectError{dialect: dialect}
}

// IsUnsupportedDialect returns true if the error is an UnsupportedDialectError.
func IsUnsupportedDialect(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedDialectError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedDialect)
}
