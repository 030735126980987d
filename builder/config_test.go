// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Equal(t, "T7", cfg.idFn(7))
	assert.Nil(t, cfg.rng)
	assert.Nil(t, cfg.ratings)
	assert.Equal(t, defaultSpread, cfg.spread)
	assert.Equal(t, defaultRounds, cfg.rounds)
	assert.Equal(t, "", cfg.groupOf(3))
	assert.False(t, cfg.chalk)
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	cfg := newBuilderConfig(WithRounds(2), WithRounds(3), WithIDScheme(ExcelColumnIDFn), WithGroups(4))
	assert.Equal(t, 3, cfg.rounds)
	assert.Equal(t, "AB", cfg.idFn(27))
	assert.Equal(t, "Group B", cfg.groupOf(5))
}

func TestRandOptions(t *testing.T) {
	a := newBuilderConfig(WithSeed(9))
	b := newBuilderConfig(WithRand(rand.New(rand.NewPCG(9, 9))))
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.rng.Uint64(), b.rng.Uint64())
	}
}

func TestWithRatingsCopies(t *testing.T) {
	r := []float64{1, 2}
	cfg := newBuilderConfig(WithRatings(r))
	r[0] = 100
	assert.Equal(t, []float64{1, 2}, cfg.ratings)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithRatings(nil) })
	assert.Panics(t, func() { WithSpread(0) })
	assert.Panics(t, func() { WithRounds(0) })
	assert.Panics(t, func() { WithGroups(0) })
}
