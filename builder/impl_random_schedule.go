// SPDX-License-Identifier: MIT
// Package: lvrate/builder
//
// impl_random_schedule.go - RandomSchedule(n, games) constructor.
//
// Contract:
//   • n ≥ 2 and games ≥ 1 (else ErrTooFewCompetitors).
//   • cfg.rng is required for pairings (else ErrNeedRandSource).
//   • Each game draws i uniformly, then j ≠ i uniformly.
//
// Determinism:
//   • Fixed draw order per game: i, j, then the outcome.

package builder

import "fmt"

const (
	methodRandomSchedule = "RandomSchedule"
	minScheduleTeams     = 2
	minScheduleGames     = 1
)

// RandomSchedule returns a Constructor playing `games` games between random
// distinct pairs of n competitors. Pairs may repeat.
func RandomSchedule(n, games int) Constructor {
	return func(t *Tournament, cfg builderConfig) error {
		if n < minScheduleTeams {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSchedule, n, minScheduleTeams, ErrTooFewCompetitors)
		}
		if games < minScheduleGames {
			return fmt.Errorf("%s: games=%d < min=%d: %w", methodRandomSchedule, games, minScheduleGames, ErrTooFewCompetitors)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: drawing pairings: %w", methodRandomSchedule, ErrNeedRandSource)
		}
		ids, ratings, err := t.enroll(methodRandomSchedule, cfg, n)
		if err != nil {
			return err
		}

		rng := cfg.rng
		for k := 0; k < games; k++ {
			i := rng.IntN(n)
			j := (i + 1 + rng.IntN(n-1)) % n
			if err := t.play(methodRandomSchedule, cfg, ids, ratings, i, j); err != nil {
				return err
			}
		}

		return nil
	}
}
