// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrate/elo"
	"gonum.org/v1/gonum/stat/distuv"
)

// enroll adds competitors 0..n-1 (IDs via cfg.idFn, groups via cfg.groupOf)
// and resolves their ratings. A competitor already rated by an earlier
// constructor keeps its rating.
func (t *Tournament) enroll(method string, cfg builderConfig, n int) ([]string, []float64, error) {
	if cfg.ratings != nil && len(cfg.ratings) < n {
		return nil, nil, fmt.Errorf("%s: %d ratings for %d competitors: %w", method, len(cfg.ratings), n, ErrRatingsTooShort)
	}
	if cfg.ratings == nil && cfg.rng == nil {
		return nil, nil, fmt.Errorf("%s: drawing ratings: %w", method, ErrNeedRandSource)
	}

	normal := distuv.Normal{Mu: 0, Sigma: cfg.spread, Src: cfg.rng}
	ids := make([]string, n)
	ratings := make([]float64, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := t.Graph.AddCompetitor(ids[i], cfg.groupOf(i)); err != nil {
			return nil, nil, fmt.Errorf("%s: AddCompetitor(%s): %w", method, ids[i], err)
		}
		r, seen := t.Ratings[ids[i]]
		switch {
		case seen:
		case cfg.ratings != nil:
			r = cfg.ratings[i]
		default:
			r = normal.Rand()
		}
		t.Ratings[ids[i]] = r
		ratings[i] = r
	}

	return ids, ratings, nil
}

// play records one game between competitors i and j.
func (t *Tournament) play(method string, cfg builderConfig, ids []string, ratings []float64, i, j int) error {
	iWins := ratings[i] >= ratings[j]
	if !cfg.chalk {
		coin := distuv.Bernoulli{P: elo.WinProbability(ratings[i], ratings[j]), Src: cfg.rng}
		iWins = coin.Rand() == 1
	}
	w, l := ids[i], ids[j]
	if !iWins {
		w, l = l, w
	}
	if _, err := t.Graph.AddOutcome(w, l); err != nil {
		return fmt.Errorf("%s: AddOutcome(%s,%s): %w: %w", method, w, l, ErrConstructFailed, err)
	}
	return nil
}

// needOutcomeRand reports the error for stochastic outcomes without a source.
func needOutcomeRand(method string, cfg builderConfig) error {
	if !cfg.chalk && cfg.rng == nil {
		return fmt.Errorf("%s: drawing outcomes: %w", method, ErrNeedRandSource)
	}
	return nil
}
