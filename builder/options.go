// SPDX-License-Identifier: MIT
// Package: lvrate/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//     Constructors themselves never panic.
//   • Seeding is explicit via WithSeed or WithRand.

package builder

import "math/rand/v2"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the competitor ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a PCG source from seed for reproducible tournaments.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithRatings fixes the latent ratings; competitor i gets ratings[i].
// The slice is copied. Panics on an empty slice.
func WithRatings(ratings []float64) BuilderOption {
	if len(ratings) == 0 {
		panic("builder: WithRatings(empty)")
	}
	cp := append([]float64(nil), ratings...)
	return func(c *builderConfig) { c.ratings = cp }
}

// WithSpread sets σ for drawn ratings. Panics if sigma <= 0.
func WithSpread(sigma float64) BuilderOption {
	if !(sigma > 0) {
		panic("builder: WithSpread(sigma<=0)")
	}
	return func(c *builderConfig) { c.spread = sigma }
}

// WithRounds sets how many times each pair meets in RoundRobin. Panics if k < 1.
func WithRounds(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithRounds(k<1)")
	}
	return func(c *builderConfig) { c.rounds = k }
}

// WithGroups splits competitors into k groups, competitor i joining
// GroupName(i mod k). Panics if k < 1.
func WithGroups(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithGroups(k<1)")
	}
	return func(c *builderConfig) { c.groups = k }
}

// WithChalk makes the higher-rated competitor always win (ties go to the
// competitor listed first in the pairing). No random source is needed for outcomes when ratings are
// also fixed with WithRatings.
func WithChalk() BuilderOption {
	return func(c *builderConfig) { c.chalk = true }
}
