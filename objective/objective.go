// SPDX-License-Identifier: MIT

package objective

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrIndexOutOfRange indicates an observation references a parameter index
// outside the parameter vector.
var ErrIndexOutOfRange = errors.New("objective: index out of range")

// Func maps a parameter vector to a scalar objective value.
type Func func(x []float64) float64

// Grad writes the gradient of a Func at x into grad (len(grad) == len(x)).
type Grad func(grad, x []float64)

// VecFunc maps a parameter vector of size n to a vector of size m.
type VecFunc func(x []float64) []float64

// Jacobian returns the m×n matrix of partial derivatives of a VecFunc at x.
type Jacobian func(x []float64) *mat.Dense

// IndexError builds an error wrapping ErrIndexOutOfRange with call-site context.
func IndexError(method string, index, size int) error {
	return fmt.Errorf("%s: index %d not in [0,%d): %w", method, index, size, ErrIndexOutOfRange)
}

// Sum composes fs additively: Sum(f, g)(x) == f(x) + g(x).
func Sum(fs ...Func) Func {
	return func(x []float64) float64 {
		var total float64
		for _, f := range fs {
			total += f(x)
		}
		return total
	}
}

// SumGrad composes gradients additively, matching Sum.
func SumGrad(gs ...Grad) Grad {
	return func(grad, x []float64) {
		for i := range grad {
			grad[i] = 0
		}
		tmp := make([]float64, len(grad))
		for _, g := range gs {
			g(tmp, x)
			for i, v := range tmp {
				grad[i] += v
			}
		}
	}
}

// GradientOf adapts a Grad into the allocate-and-return form used by the
// finite-difference verifier.
func GradientOf(g Grad) func(x []float64) []float64 {
	return func(x []float64) []float64 {
		out := make([]float64, len(x))
		g(out, x)
		return out
	}
}

// Eval calls f(x) and converts an ErrIndexOutOfRange panic into an error.
// Any other panic is re-raised.
func Eval(f Func, x []float64) (v float64, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && errors.Is(e, ErrIndexOutOfRange) {
			err = e
			return
		}
		panic(r)
	}()

	return f(x), nil
}
