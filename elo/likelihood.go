// SPDX-License-Identifier: MIT

package elo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvrate/objective"
	"gonum.org/v1/gonum/mat"
)

// Method tags used in error context.
const (
	methodNegLikelihood     = "NegLikelihood"
	methodNegLikelihoodGrad = "NegLikelihoodGrad"
	methodEdgeProbabilities = "EdgeProbabilities"
)

// WinProbability returns P(i beats j) = 1 / (1 + exp(θ_j − θ_i)).
func WinProbability(thetaI, thetaJ float64) float64 {
	return 1.0 / (1.0 + math.Exp(thetaJ-thetaI))
}

// edges is the validated, privately owned copy of a winner/loser encoding.
type edges struct {
	winners []int
	losers  []int
	need    int // minimal parameter vector length: max index + 1
}

func newEdges(method string, winners, losers []int) (*edges, error) {
	if len(winners) != len(losers) {
		return nil, fmt.Errorf("%s: %d winners vs %d losers: %w",
			method, len(winners), len(losers), ErrLengthMismatch)
	}
	e := &edges{
		winners: make([]int, len(winners)),
		losers:  make([]int, len(losers)),
	}
	copy(e.winners, winners)
	copy(e.losers, losers)
	for k := range e.winners {
		for _, idx := range [2]int{e.winners[k], e.losers[k]} {
			if idx < 0 {
				return nil, objective.IndexError(method, idx, 0)
			}
			if idx+1 > e.need {
				e.need = idx + 1
			}
		}
	}

	return e, nil
}

// check panics with an ErrIndexOutOfRange error when theta is too short.
func (e *edges) check(method string, theta []float64) {
	if len(theta) < e.need {
		panic(objective.IndexError(method, e.need-1, len(theta)))
	}
}

// NewNegLikelihood returns the pairwise objective
//
//	f(θ) = Σ_k [1 + exp(θ[losers[k]] − θ[winners[k]])]
//
// over the supplied encoding. The slices are copied; later changes by the
// caller do not affect f.
//
// Errors:
//   - ErrLengthMismatch when len(winners) != len(losers).
//   - objective.ErrIndexOutOfRange for a negative index.
//
// f panics with an error wrapping objective.ErrIndexOutOfRange when called
// with len(θ) ≤ max index (see objective.Eval).
//
// Complexity: O(E) per evaluation, no allocations.
func NewNegLikelihood(winners, losers []int) (objective.Func, error) {
	e, err := newEdges(methodNegLikelihood, winners, losers)
	if err != nil {
		return nil, err
	}

	return func(theta []float64) float64 {
		e.check(methodNegLikelihood, theta)
		var total float64
		for k, w := range e.winners {
			total += 1.0 + math.Exp(theta[e.losers[k]]-theta[w])
		}
		return total
	}, nil
}

// NewNegLikelihoodGrad returns the analytic gradient of NewNegLikelihood:
// each edge adds exp(θ_l − θ_w) to ∂/∂θ_l and subtracts it from ∂/∂θ_w.
func NewNegLikelihoodGrad(winners, losers []int) (objective.Grad, error) {
	e, err := newEdges(methodNegLikelihoodGrad, winners, losers)
	if err != nil {
		return nil, err
	}

	return func(grad, theta []float64) {
		e.check(methodNegLikelihoodGrad, theta)
		for i := range grad {
			grad[i] = 0
		}
		for k, w := range e.winners {
			l := e.losers[k]
			d := math.Exp(theta[l] - theta[w])
			grad[l] += d
			grad[w] -= d
		}
	}, nil
}

// NewEdgeProbabilities returns the per-edge win probability vector
// p_k(θ) = WinProbability(θ[winners[k]], θ[losers[k]]) and its E×n Jacobian,
// where n = len(θ) at evaluation time.
//
// Errors: as NewNegLikelihood, plus ErrEmptyInput for zero edges.
func NewEdgeProbabilities(winners, losers []int) (objective.VecFunc, objective.Jacobian, error) {
	e, err := newEdges(methodEdgeProbabilities, winners, losers)
	if err != nil {
		return nil, nil, err
	}
	if len(e.winners) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", methodEdgeProbabilities, ErrEmptyInput)
	}

	probs := func(theta []float64) []float64 {
		e.check(methodEdgeProbabilities, theta)
		out := make([]float64, len(e.winners))
		for k, w := range e.winners {
			out[k] = WinProbability(theta[w], theta[e.losers[k]])
		}
		return out
	}
	jac := func(theta []float64) *mat.Dense {
		e.check(methodEdgeProbabilities, theta)
		j := mat.NewDense(len(e.winners), len(theta), nil)
		for k, w := range e.winners {
			l := e.losers[k]
			p := WinProbability(theta[w], theta[l])
			d := p * (1 - p)
			j.Set(k, w, j.At(k, w)+d)
			j.Set(k, l, j.At(k, l)-d)
		}
		return j
	}

	return probs, jac, nil
}
