// SPDX-License-Identifier: MIT
// Package: lvrate/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn    = DefaultIDFn ("T0","T1",...)
//   • rng     = nil          (stochastic constructors return ErrNeedRandSource)
//   • spread  = 1.0          (σ of drawn ratings)
//   • rounds  = 1            (meetings per pair in RoundRobin)
//   • groups  = 0            (competitors ungrouped)

package builder

import "math/rand/v2"

// Deterministic defaults (named, no magic numbers).
const (
	defaultSpread = 1.0
	defaultRounds = 1
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	idFn    IDFn
	rng     *rand.Rand
	ratings []float64 // explicit latent ratings; nil means draw them
	spread  float64
	rounds  int
	groups  int // 0 = ungrouped; k > 0 assigns competitor i to group i mod k
	chalk   bool
}

// newBuilderConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		spread: defaultSpread,
		rounds: defaultRounds,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// groupOf returns the group label for competitor index i ("" when ungrouped).
func (c builderConfig) groupOf(i int) string {
	if c.groups == 0 {
		return ""
	}
	return GroupName(i % c.groups)
}
