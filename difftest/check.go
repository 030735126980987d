// SPDX-License-Identifier: MIT
//
// File: check.go
// Role: CheckGradient / CheckJacobian kernels.
//
// Algorithm (per trial):
//  1. Draw x_i ~ U[LeftBound, RightBound] for i = 0..n-1.
//  2. Evaluate the candidate derivative at a copy of x.
//  3. Estimate every partial with the central formula, step Eps (gonum fd).
//  4. Compare entry-wise with tolerance 1.5·10^(−Decimal); the first
//     violation ends the check with a *MismatchError.
//
// Determinism:
//   - With a seeded Options.Rand, sampled points and the verdict are reproducible.

package difftest

import (
	"fmt"

	"github.com/katalvlaran/lvrate/objective"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Method tags used in error context.
const (
	methodCheckGradient = "CheckGradient"
	methodCheckJacobian = "CheckJacobian"
)

// CheckGradient verifies that grad is the gradient of the scalar objective f
// over numArgs arguments.
//
// Returns:
//   - nil when every coordinate of every trial agrees.
//   - *MismatchError (errors.Is ErrToleranceViolation) naming the first
//     disagreeing coordinate and both values.
//   - ErrBadOptions, ErrShapeMismatch for invalid input.
//
// Complexity: O(NumTests · n · cost(f)).
func CheckGradient(f objective.Func, grad func(x []float64) []float64, numArgs int, opts Options) error {
	if err := opts.validate(methodCheckGradient, numArgs); err != nil {
		return err
	}
	if f == nil || grad == nil {
		return fmt.Errorf("%s: nil function: %w", methodCheckGradient, ErrBadOptions)
	}

	uniform := distuv.Uniform{Min: opts.LeftBound, Max: opts.RightBound, Src: opts.source()}
	settings := &fd.Settings{Formula: fd.Central, Step: opts.Eps}
	tol := opts.Tolerance()

	x := make([]float64, numArgs)
	expected := make([]float64, numArgs)
	for trial := 0; trial < opts.NumTests; trial++ {
		for i := range x {
			x[i] = uniform.Rand()
		}

		actual := grad(append([]float64(nil), x...))
		if len(actual) != numArgs {
			return fmt.Errorf("%s: gradient has %d entries, want %d: %w",
				methodCheckGradient, len(actual), numArgs, ErrShapeMismatch)
		}

		fd.Gradient(expected, f, x, settings)
		for i := range expected {
			if !scalar.EqualWithinAbs(expected[i], actual[i], tol) {
				return &MismatchError{
					Trial:    trial,
					Col:      i,
					Point:    append([]float64(nil), x...),
					Expected: expected[i],
					Actual:   actual[i],
					Decimal:  opts.Decimal,
				}
			}
		}
	}

	return nil
}

// CheckJacobian verifies that jac is the Jacobian of the vector function f
// over numArgs arguments. The output size m is taken from one probe
// evaluation of f; jac must return an m×numArgs matrix.
//
// Every trial is compared; see the package doc.
//
// Returns: as CheckGradient, with Row set to the offending output index.
//
// Complexity: O(NumTests · n · cost(f)).
func CheckJacobian(f objective.VecFunc, jac objective.Jacobian, numArgs int, opts Options) error {
	if err := opts.validate(methodCheckJacobian, numArgs); err != nil {
		return err
	}
	if f == nil || jac == nil {
		return fmt.Errorf("%s: nil function: %w", methodCheckJacobian, ErrBadOptions)
	}

	uniform := distuv.Uniform{Min: opts.LeftBound, Max: opts.RightBound, Src: opts.source()}
	settings := &fd.JacobianSettings{Formula: fd.Central, Step: opts.Eps}
	tol := opts.Tolerance()

	x := make([]float64, numArgs)
	for i := range x {
		x[i] = uniform.Rand()
	}
	m := len(f(x))
	if m == 0 {
		return fmt.Errorf("%s: function returned an empty vector: %w", methodCheckJacobian, ErrShapeMismatch)
	}

	into := func(y, x []float64) { copy(y, f(x)) }
	expected := mat.NewDense(m, numArgs, nil)
	for trial := 0; trial < opts.NumTests; trial++ {
		for i := range x {
			x[i] = uniform.Rand()
		}

		actual := jac(append([]float64(nil), x...))
		if actual == nil {
			return fmt.Errorf("%s: nil Jacobian: %w", methodCheckJacobian, ErrShapeMismatch)
		}
		if r, c := actual.Dims(); r != m || c != numArgs {
			return fmt.Errorf("%s: Jacobian is %d×%d, want %d×%d: %w",
				methodCheckJacobian, r, c, m, numArgs, ErrShapeMismatch)
		}

		fd.Jacobian(expected, into, x, settings)
		for row := 0; row < m; row++ {
			for col := 0; col < numArgs; col++ {
				want, got := expected.At(row, col), actual.At(row, col)
				if !scalar.EqualWithinAbs(want, got, tol) {
					return &MismatchError{
						Trial:    trial,
						Row:      row,
						Col:      col,
						Point:    append([]float64(nil), x...),
						Expected: want,
						Actual:   got,
						Decimal:  opts.Decimal,
					}
				}
			}
		}
	}

	return nil
}
