package usecase

import (
	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput = crerr.New("invalid input")
	// ErrStoreUnavailable means the statistics store cannot be reached or
	// is not configured. The web layer renders it as a persistent banner.
	ErrStoreUnavailable = crerr.New("statistics store unavailable")
)

// QueryError marks a single failed read. It carries the operation identity
// so the web layer can degrade just the affected widget.
type QueryError struct {
	Operation string
	cause     error
}

func NewQueryError(operation string, cause error) error {
	return &QueryError{Operation: operation, cause: cause}
}

func (e *QueryError) Error() string {
	return "query " + e.Operation + ": " + e.cause.Error()
}

func (e *QueryError) Unwrap() error {
	return e.cause
}

// AsQueryError unwraps err to its QueryError, if any.
func AsQueryError(err error) (*QueryError, bool) {
	var qe *QueryError
	if crerr.As(err, &qe) {
		return qe, true
	}
	return nil, false
}
