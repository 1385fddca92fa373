// Package errors provides error handling for binsight.
//
// This package re-exports the parts of github.com/cockroachdb/errors the
// codebase uses: creation, wrapping with context, user-facing hints, and
// inspection. Stack traces come for free on every constructor.
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := provider.Load(paths); err != nil {
//	    return errors.Wrap(err, "failed to load symbol graphs")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "pass a directory or an .apigraph.json file")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithStack   = crdb.WithStack
	WithMessage = crdb.WithMessage
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is     = crdb.Is
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// CombineErrors keeps the first error as the main cause while recording the
// second as a secondary error visible in verbose rendering. CLI argument
// validation uses it to attach every bad argument to the abort error.
var CombineErrors = crdb.CombineErrors

// ErrInvalidRequest is the sentinel for malformed or unusable arguments.
// Use with errors.Is(); wrap with errors.Wrap() to add context while
// preserving the type.
var ErrInvalidRequest = New("invalid request")

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidRequest, Newf(format, args...).Error())
}
