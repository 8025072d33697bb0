// Package csp implements a finite-domain and mixed discrete/continuous
// constraint satisfaction engine: a one-dimensional real/discrete domain
// algebra, a uniform constraint contract, an AC-3 arc-consistency
// propagator, and backtracking search with optional lookahead.
package csp

import (
	"errors"
	"fmt"

	errorsx "github.com/go-errors/errors"
)

// Sentinel errors forming the error taxonomy. Every raise site wraps one
// of these with errorsx.Errorf so a caller gets a stack trace alongside
// a value that still matches with errors.Is.
var (
	// ErrDomainMismatch is returned when a value supplied to a constraint
	// constructor lies outside the referenced variable's declared domain.
	ErrDomainMismatch = errors.New("csp: value outside variable domain")

	// ErrInvalidSet names the overlapping-interval configuration error.
	// NewIntervalSet merges overlapping members instead of rejecting
	// them, so no function in this package returns it.
	ErrInvalidSet = errors.New("csp: overlapping intervals")

	// ErrUnboundedOperation is returned when code attempts to iterate or
	// subtract from the discrete universe set.
	ErrUnboundedOperation = errors.New("csp: operation unbounded on universe set")

	// ErrKindMismatch is returned when an operation mixes a discrete and
	// a continuous domain.
	ErrKindMismatch = errors.New("csp: mismatched domain kinds")

	// ErrNotDiscrete is returned when search is invoked on a space whose
	// current domains are not all discrete, or when a non-discrete
	// IntervalSet is iterated.
	ErrNotDiscrete = errors.New("csp: operation requires a discrete domain")

	// ErrUnknownMethod is returned for an unrecognized solver method name.
	ErrUnknownMethod = errors.New("csp: unknown solver method")

	// ErrNotHashable is returned when a discrete element's dynamic type
	// is not comparable (e.g. a slice or map) and so cannot be stored in
	// a DiscreteSet.
	ErrNotHashable = errors.New("csp: discrete element is not comparable")
)

// wrap attaches a stack trace to a sentinel error for diagnostics while
// preserving errors.Is matching against the sentinel.
func wrap(sentinel error, format string, args ...any) error {
	return errorsx.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
