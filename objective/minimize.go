// SPDX-License-Identifier: MIT
//
// File: minimize.go
// Role: Adapter from Func/Grad to gonum optimize.Minimize. The minimization
//       routine itself is gonum's; this file only picks a method and maps
//       settings and results.

package objective

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/optimize"
)

const methodMinimize = "Minimize"

// ErrBadSettings indicates invalid Minimize settings or inputs.
var ErrBadSettings = errors.New("objective: invalid minimize settings")

// Method names an optimize.Method.
type Method string

// Supported methods. MethodAuto picks LBFGS when a gradient is supplied and
// Nelder-Mead otherwise.
const (
	MethodAuto            Method = "auto"
	MethodLBFGS           Method = "lbfgs"
	MethodBFGS            Method = "bfgs"
	MethodGradientDescent Method = "gradient-descent"
	MethodNelderMead      Method = "nelder-mead"
)

// Settings controls a Minimize run. Zero values mean "gonum default".
type Settings struct {
	Method            Method
	MaxIterations     int
	GradientThreshold float64
	FuncEvaluations   int
}

// Defaults used by DefaultSettings.
const (
	DefaultMaxIterations     = 1000
	DefaultGradientThreshold = 1e-6
)

// DefaultSettings returns MethodAuto with a 1000 major-iteration cap and a
// gradient threshold of 1e-6.
func DefaultSettings() Settings {
	return Settings{
		Method:            MethodAuto,
		MaxIterations:     DefaultMaxIterations,
		GradientThreshold: DefaultGradientThreshold,
	}
}

// Result is the optimizer's final location and run statistics.
type Result struct {
	X               []float64
	F               float64
	Status          string
	Iterations      int
	FuncEvaluations int
	GradEvaluations int
}

// Minimize runs gonum's optimizer on f starting from x0. x0 is not modified.
//
// Errors:
//   - ErrBadSettings: empty x0, negative limits, unknown method, or a
//     gradient-based method without g.
//   - any error from optimize.Minimize, wrapped; the partial Result is still
//     returned when gonum provides one.
func Minimize(f Func, g Grad, x0 []float64, s Settings) (*Result, error) {
	if f == nil || len(x0) == 0 {
		return nil, fmt.Errorf("%s: nil objective or empty start: %w", methodMinimize, ErrBadSettings)
	}
	if s.MaxIterations < 0 || s.FuncEvaluations < 0 || s.GradientThreshold < 0 {
		return nil, fmt.Errorf("%s: negative limit: %w", methodMinimize, ErrBadSettings)
	}

	method, err := pickMethod(s.Method, g != nil)
	if err != nil {
		return nil, err
	}

	problem := optimize.Problem{Func: f}
	if g != nil {
		problem.Grad = g
	}
	settings := &optimize.Settings{
		MajorIterations:   s.MaxIterations,
		GradientThreshold: s.GradientThreshold,
		FuncEvaluations:   s.FuncEvaluations,
	}

	start := make([]float64, len(x0))
	copy(start, x0)
	res, err := optimize.Minimize(problem, start, settings, method)
	if res == nil {
		return nil, fmt.Errorf("%s: %w", methodMinimize, err)
	}

	out := &Result{
		X:               res.X,
		F:               res.F,
		Status:          res.Status.String(),
		Iterations:      res.Stats.MajorIterations,
		FuncEvaluations: res.Stats.FuncEvaluations,
		GradEvaluations: res.Stats.GradEvaluations,
	}
	if err != nil {
		return out, fmt.Errorf("%s: %w", methodMinimize, err)
	}

	return out, nil
}

func pickMethod(m Method, hasGrad bool) (optimize.Method, error) {
	if m == "" || m == MethodAuto {
		if hasGrad {
			return &optimize.LBFGS{}, nil
		}
		return &optimize.NelderMead{}, nil
	}

	var method optimize.Method
	needsGrad := true
	switch m {
	case MethodLBFGS:
		method = &optimize.LBFGS{}
	case MethodBFGS:
		method = &optimize.BFGS{}
	case MethodGradientDescent:
		method = &optimize.GradientDescent{}
	case MethodNelderMead:
		method, needsGrad = &optimize.NelderMead{}, false
	default:
		return nil, fmt.Errorf("%s: unknown method %q: %w", methodMinimize, m, ErrBadSettings)
	}
	if needsGrad && !hasGrad {
		return nil, fmt.Errorf("%s: method %q needs a gradient: %w", methodMinimize, m, ErrBadSettings)
	}

	return method, nil
}
