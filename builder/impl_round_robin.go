// SPDX-License-Identifier: MIT
// Package: lvrate/builder
//
// impl_round_robin.go - RoundRobin(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewCompetitors).
//   • Competitors added in index order 0..n-1.
//   • Each unordered pair {i,j}, i<j, meets cfg.rounds times.
//
// Determinism:
//   • Pair order: round asc, then (i,j) lexicographic with i<j.

package builder

import "fmt"

const (
	methodRoundRobin   = "RoundRobin"
	minRoundRobinTeams = 2
)

// RoundRobin returns a Constructor where every pair of n competitors meets
// cfg.rounds times.
func RoundRobin(n int) Constructor {
	return func(t *Tournament, cfg builderConfig) error {
		if n < minRoundRobinTeams {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRoundRobin, n, minRoundRobinTeams, ErrTooFewCompetitors)
		}
		if err := needOutcomeRand(methodRoundRobin, cfg); err != nil {
			return err
		}
		ids, ratings, err := t.enroll(methodRoundRobin, cfg, n)
		if err != nil {
			return err
		}

		for round := 0; round < cfg.rounds; round++ {
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if err := t.play(methodRoundRobin, cfg, ids, ratings, i, j); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
