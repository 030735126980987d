// SPDX-License-Identifier: MIT

package elo_test

import (
	"testing"

	"github.com/katalvlaran/lvrate/core"
	"github.com/katalvlaran/lvrate/elo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var season = []core.Pair{
	{Winner: "Oregon", Loser: "Stanford"},
	{Winner: "Alabama", Loser: "Auburn"},
	{Winner: "Stanford", Loser: "Oregon"},
	{Winner: "Auburn", Loser: "Alabama"},
	{Winner: "Oregon", Loser: "Stanford"},
	{Winner: "Alabama", Loser: "Oregon"},
}

func TestConvertEdges(t *testing.T) {
	vocab, winners, losers, err := elo.ConvertEdges(season)
	require.NoError(t, err)

	assert.Equal(t, []string{"Alabama", "Auburn", "Oregon", "Stanford"}, vocab.Names())
	assert.Equal(t, []int{2, 0, 3, 1, 2, 0}, winners)
	assert.Equal(t, []int{3, 1, 2, 0, 3, 2}, losers)

	require.Len(t, winners, len(season))
	require.Len(t, losers, len(season))
	for k, p := range season {
		assert.Equal(t, p.Winner, vocab.Name(winners[k]))
		assert.Equal(t, p.Loser, vocab.Name(losers[k]))
		assert.GreaterOrEqual(t, winners[k], 0)
		assert.Less(t, winners[k], vocab.Len())
		assert.GreaterOrEqual(t, losers[k], 0)
		assert.Less(t, losers[k], vocab.Len())
	}
}

func TestConvertEdges_Deterministic(t *testing.T) {
	v1, w1, l1, err := elo.ConvertEdges(season)
	require.NoError(t, err)
	for run := 0; run < 10; run++ {
		v2, w2, l2, err := elo.ConvertEdges(season)
		require.NoError(t, err)
		assert.Equal(t, v1.Names(), v2.Names())
		assert.Equal(t, v1.Map(), v2.Map())
		assert.Equal(t, w1, w2)
		assert.Equal(t, l1, l2)
	}
}

func TestConvertEdges_Errors(t *testing.T) {
	_, _, _, err := elo.ConvertEdges(nil)
	assert.ErrorIs(t, err, elo.ErrEmptyInput)

	_, _, _, err = elo.ConvertEdges([]core.Pair{{Winner: "A", Loser: "B"}, {Winner: "", Loser: "B"}})
	assert.ErrorIs(t, err, elo.ErrEmptyName)
	assert.Contains(t, err.Error(), "edge 1")
}

func TestVocabulary(t *testing.T) {
	v := elo.NewVocabulary([]string{"b", "a", "b", "c"})
	assert.Equal(t, 3, v.Len())

	i, ok := v.Index("b")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = v.Index("z")
	assert.False(t, ok)

	names := v.Names()
	names[0] = "mutated"
	assert.Equal(t, "a", v.Name(0), "Names returns a copy")

	m := v.Map()
	m["a"] = 99
	i, _ = v.Index("a")
	assert.Equal(t, 0, i, "Map returns a copy")
}
