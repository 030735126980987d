// SPDX-License-Identifier: MIT
// Package: lvrate/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildTournament(gopts, bopts, cons...). Creates the
//     graph, resolves cfg, runs cons in order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical tournaments.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrate/core"
)

const methodBuildTournament = "BuildTournament"

// Tournament is a generated outcome graph together with the latent rating
// of every competitor.
type Tournament struct {
	Graph   *core.Graph
	Ratings map[string]float64
}

// RatingsOf returns the latent ratings of names in order; unknown names get 0.
// Pass elo.Vocabulary.Names() to align with a fitted parameter vector.
func (t *Tournament) RatingsOf(names []string) []float64 {
	out := make([]float64, len(names))
	for i, n := range names {
		out[i] = t.Ratings[n]
	}
	return out
}

// Constructor adds competitors and outcomes to t using the resolved config.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(t *Tournament, cfg builderConfig) error

// BuildTournament creates a core.Graph with gopts, resolves the builder
// configuration from bopts and applies every constructor in order. The first
// constructor error is returned wrapped; no partial result is returned.
//
// Complexity: Σ cost of each constructor.
func BuildTournament(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*Tournament, error) {
	t := &Tournament{
		Graph:   core.NewGraph(gopts...),
		Ratings: make(map[string]float64),
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildTournament, i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildTournament, err)
		}
	}

	return t, nil
}

// RoundRobin builds n competitors where every pair meets cfg.rounds times.
// Complexity: O(rounds · n²).
//func RoundRobin(n int) Constructor

// RandomSchedule builds n competitors and `games` games between uniformly
// drawn distinct pairs.
// Complexity: O(n + games).
//func RandomSchedule(n, games int) Constructor
