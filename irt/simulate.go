// SPDX-License-Identifier: MIT
//
// File: simulate.go
// Role: Simulation generator for synthetic 1PL data.
//
// Contract:
//   - numStudents, numQuestions, numResponses ≥ 1 (else ErrBadSize).
//   - A random source is required (WithSeed or WithRand, else ErrNeedRandSource).
//   - Abilities: numStudents draws from N(0,1); difficulties: numQuestions draws from N(0,1).
//   - Answered[s][k] uniform on [0, numQuestions), independent, with replacement.
//   - Correct[s][k] ~ Bernoulli(Probability(θ_s, β_{Answered[s][k]})), independent.
//
// Determinism:
//   - Fixed draw order: abilities, difficulties, then row by row
//     (all answered indices of a row, then all correctness draws of that row).
//   - Identical seed and sizes ⇒ identical Simulation.

package irt

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

const methodSimulate = "Simulate"

// Sentinel errors for the simulator.
var (
	// ErrBadSize indicates a non-positive student, question or response count.
	ErrBadSize = errors.New("irt: size must be >= 1")

	// ErrNeedRandSource indicates Simulate was called without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("irt: rng is required")
)

// Simulation is the output of Simulate: the true parameters and the
// responses they generated.
type Simulation struct {
	Abilities    []float64
	Difficulties []float64
	Responses
}

// Params returns the concatenated parameter vector [abilities, difficulties].
func (s *Simulation) Params() []float64 {
	out := make([]float64, 0, len(s.Abilities)+len(s.Difficulties))
	out = append(out, s.Abilities...)
	return append(out, s.Difficulties...)
}

// simConfig holds Simulate knobs resolved from options.
type simConfig struct {
	rng *rand.Rand
}

// Option customizes Simulate.
type Option func(*simConfig)

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("irt: WithRand(nil)")
	}
	return func(c *simConfig) { c.rng = r }
}

// WithSeed creates a PCG-backed source from seed for reproducible runs.
func WithSeed(seed uint64) Option {
	return func(c *simConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// Simulate draws a synthetic 1PL data set; see the file header for the contract.
//
// Complexity: O(S + Q + S·R) time and space.
func Simulate(numStudents, numQuestions, numResponses int, opts ...Option) (*Simulation, error) {
	if numStudents < 1 || numQuestions < 1 || numResponses < 1 {
		return nil, fmt.Errorf("%s: students=%d questions=%d responses=%d: %w",
			methodSimulate, numStudents, numQuestions, numResponses, ErrBadSize)
	}
	var cfg simConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodSimulate, ErrNeedRandSource)
	}
	rng := cfg.rng

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	sim := &Simulation{
		Abilities:    make([]float64, numStudents),
		Difficulties: make([]float64, numQuestions),
		Responses: Responses{
			Answered: make([][]int, numStudents),
			Correct:  make([][]bool, numStudents),
		},
	}
	for i := range sim.Abilities {
		sim.Abilities[i] = normal.Rand()
	}
	for i := range sim.Difficulties {
		sim.Difficulties[i] = normal.Rand()
	}

	for s := 0; s < numStudents; s++ {
		answered := make([]int, numResponses)
		for k := range answered {
			answered[k] = rng.IntN(numQuestions)
		}
		correct := make([]bool, numResponses)
		for k, q := range answered {
			coin := distuv.Bernoulli{P: Probability(sim.Abilities[s], sim.Difficulties[q]), Src: rng}
			correct[k] = coin.Rand() == 1
		}
		sim.Answered[s] = answered
		sim.Correct[s] = correct
	}

	return sim, nil
}
