// Package errs holds the error sentinels shared by the notation, iteration
// and pattern packages. Callers match them with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidArgument marks a construction-time invariant violation,
	// e.g. a negative measure number or empty pattern contents.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a query for an absent voice, staff or measure
	// number. Probing for optional voices is expected to recover from it.
	ErrNotFound = errors.New("not found")

	// ErrNoSuchElement marks advancing an exhausted iterator.
	ErrNoSuchElement = errors.New("no such element")
)
