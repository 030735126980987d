// SPDX-License-Identifier: MIT

package difftest

import (
	"errors"
	"fmt"
)

// ErrToleranceViolation indicates a candidate derivative disagrees with the
// finite-difference estimate beyond the configured decimal precision.
var ErrToleranceViolation = errors.New("difftest: derivative mismatch")

// ErrShapeMismatch indicates a candidate gradient or Jacobian of the wrong size.
var ErrShapeMismatch = errors.New("difftest: derivative has wrong shape")

// MismatchError reports the first offending entry of a failed check.
// For scalar objectives Row is always 0.
type MismatchError struct {
	Trial    int
	Row, Col int
	Point    []float64
	Expected float64 // finite-difference estimate
	Actual   float64 // candidate derivative
	Decimal  int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("difftest: trial %d entry (%d,%d): finite difference %.10g vs candidate %.10g differ beyond %d decimals",
		e.Trial, e.Row, e.Col, e.Expected, e.Actual, e.Decimal)
}

// Unwrap lets errors.Is(err, ErrToleranceViolation) match.
func (e *MismatchError) Unwrap() error { return ErrToleranceViolation }

var _ error = (*MismatchError)(nil)

// asMismatch is a small helper for tests and callers.
func asMismatch(err error) (*MismatchError, bool) {
	var mm *MismatchError
	ok := errors.As(err, &mm)
	return mm, ok
}
