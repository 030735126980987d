// SPDX-License-Identifier: MIT

package difftest

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// Deterministic defaults (named, no magic numbers).
const (
	DefaultLeftBound  = -1.0
	DefaultRightBound = 1.0
	DefaultNumTests   = 20
	DefaultEps        = 1e-6
	DefaultDecimal    = 6
)

// ErrBadOptions indicates invalid Options or argument count.
var ErrBadOptions = errors.New("difftest: invalid options")

// Options configures a finite-difference check.
type Options struct {
	// LeftBound and RightBound delimit the sampling interval for every coordinate.
	LeftBound, RightBound float64
	// NumTests is the number of random points checked.
	NumTests int
	// Eps is the finite-difference step.
	Eps float64
	// Decimal is the number of decimal places that must agree.
	Decimal int
	// Rand is the sampling source; nil means a fresh randomly seeded source.
	Rand *rand.Rand
}

// DefaultOptions returns the interval [-1,1], 20 trials, ε = 1e-6 and 6 decimals.
func DefaultOptions() Options {
	return Options{
		LeftBound:  DefaultLeftBound,
		RightBound: DefaultRightBound,
		NumTests:   DefaultNumTests,
		Eps:        DefaultEps,
		Decimal:    DefaultDecimal,
	}
}

// Tolerance returns the absolute tolerance implied by Decimal, 1.5·10^(−Decimal).
func (o Options) Tolerance() float64 {
	return 1.5 * math.Pow(10, -float64(o.Decimal))
}

func (o Options) validate(method string, numArgs int) error {
	switch {
	case numArgs < 1:
		return fmt.Errorf("%s: numArgs=%d < 1: %w", method, numArgs, ErrBadOptions)
	case o.NumTests < 1:
		return fmt.Errorf("%s: NumTests=%d < 1: %w", method, o.NumTests, ErrBadOptions)
	case !(o.Eps > 0):
		return fmt.Errorf("%s: Eps=%g must be > 0: %w", method, o.Eps, ErrBadOptions)
	case o.Decimal < 0:
		return fmt.Errorf("%s: Decimal=%d < 0: %w", method, o.Decimal, ErrBadOptions)
	case !(o.LeftBound < o.RightBound):
		return fmt.Errorf("%s: interval [%g,%g] is empty: %w", method, o.LeftBound, o.RightBound, ErrBadOptions)
	}
	return nil
}

func (o Options) source() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
