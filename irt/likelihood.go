// SPDX-License-Identifier: MIT

package irt

import (
	"math"

	"github.com/katalvlaran/lvrate/objective"
	"gonum.org/v1/gonum/floats"
)

// Method tags used in error context.
const (
	methodNegLikelihood     = "NegLikelihood"
	methodNegLikelihoodGrad = "NegLikelihoodGrad"
)

// Probability returns the 1PL probability of a correct answer,
// 1 / (1 + exp(difficulty − ability)).
func Probability(ability, difficulty float64) float64 {
	return 1.0 / (1.0 + math.Exp(difficulty-ability))
}

// split cuts x into abilities and difficulties and panics with an
// ErrIndexOutOfRange error when x cannot hold every referenced parameter.
func split(method string, x []float64, students, maxQuestion int) (thetas, betas []float64) {
	if len(x) < students {
		panic(objective.IndexError(method, students-1, len(x)))
	}
	thetas, betas = x[:students], x[students:]
	if maxQuestion >= len(betas) {
		panic(objective.IndexError(method, maxQuestion, len(betas)))
	}
	return thetas, betas
}

// NewNegLikelihood returns the negative 1PL likelihood surrogate over r:
//
//	f(x) = −( Σ_{correct cells} p  +  Σ_{incorrect cells} (1 − p) ),
//	p    = Probability(θ_s, β_q) for the cell's student s and question q.
//
// x has length numStudents + numQuestions; the first numStudents entries
// are abilities, the remainder difficulties, so the number of questions is
// inferred from len(x). r is deep-copied.
//
// Errors:
//   - ErrShapeMismatch, objective.ErrIndexOutOfRange from r.Validate.
//
// f panics with an error wrapping objective.ErrIndexOutOfRange when an
// answered index is ≥ the inferred number of questions.
//
// Complexity: O(S·R) per evaluation for S students and R responses each.
func NewNegLikelihood(r Responses) (objective.Func, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	data := r.clone()
	students, _ := data.Shape()
	maxQ := data.MaxQuestion()

	return func(x []float64) float64 {
		thetas, betas := split(methodNegLikelihood, x, students, maxQ)
		var right, wrong float64
		for s, row := range data.Answered {
			for k, q := range row {
				p := Probability(thetas[s], betas[q])
				if data.Correct[s][k] {
					right += p
				} else {
					wrong += 1.0 - p
				}
			}
		}
		return -(right + wrong)
	}, nil
}

// NewNegPrior returns Σx²/2 over the whole parameter vector.
func NewNegPrior() objective.Func {
	return func(x []float64) float64 {
		return floats.Dot(x, x) / 2.0
	}
}

// NewNegObjective returns the negative posterior surrogate: likelihood + prior.
func NewNegObjective(r Responses) (objective.Func, error) {
	likelihood, err := NewNegLikelihood(r)
	if err != nil {
		return nil, err
	}
	return objective.Sum(likelihood, NewNegPrior()), nil
}

// NewNegLikelihoodGrad returns the analytic gradient of NewNegLikelihood.
// With d = p(1 − p), a correct cell contributes −d to ∂/∂θ_s and +d to
// ∂/∂β_q; an incorrect cell the opposite.
func NewNegLikelihoodGrad(r Responses) (objective.Grad, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	data := r.clone()
	students, _ := data.Shape()
	maxQ := data.MaxQuestion()

	return func(grad, x []float64) {
		thetas, betas := split(methodNegLikelihoodGrad, x, students, maxQ)
		for i := range grad {
			grad[i] = 0
		}
		dBetas := grad[students:]
		for s, row := range data.Answered {
			for k, q := range row {
				p := Probability(thetas[s], betas[q])
				d := p * (1 - p)
				if !data.Correct[s][k] {
					d = -d
				}
				grad[s] -= d
				dBetas[q] += d
			}
		}
	}, nil
}

// NewNegPriorGrad returns the gradient of NewNegPrior, which is x itself.
func NewNegPriorGrad() objective.Grad {
	return func(grad, x []float64) {
		copy(grad, x)
	}
}

// NewNegObjectiveGrad returns the gradient of NewNegObjective.
func NewNegObjectiveGrad(r Responses) (objective.Grad, error) {
	likelihood, err := NewNegLikelihoodGrad(r)
	if err != nil {
		return nil, err
	}
	return objective.SumGrad(likelihood, NewNegPriorGrad()), nil
}
