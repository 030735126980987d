// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/katalvlaran/lvrate/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddCompetitor(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddCompetitor("", "SEC"), core.ErrEmptyID)

	require.NoError(t, g.AddCompetitor("Alabama", "SEC"))
	assert.True(t, g.HasCompetitor("Alabama"))
	assert.False(t, g.HasCompetitor(""))

	// Duplicate insert keeps the first non-empty group.
	require.NoError(t, g.AddCompetitor("Alabama", "Big Ten"))
	c, err := g.Competitor("Alabama")
	require.NoError(t, err)
	assert.Equal(t, "SEC", c.Group)
	assert.NotNil(t, c.Metadata)
	assert.Equal(t, 1, g.CompetitorCount())

	_, err = g.Competitor("Auburn")
	assert.ErrorIs(t, err, core.ErrCompetitorNotFound)
	_, err = g.Competitor("")
	assert.ErrorIs(t, err, core.ErrEmptyID)
}

func TestGraph_OutcomeCreatesCompetitorsWithoutGroup(t *testing.T) {
	g := core.NewGraph()
	id, err := g.AddOutcome("Oregon", "Stanford")
	require.NoError(t, err)
	assert.Equal(t, "o1", id)

	c, err := g.Competitor("Stanford")
	require.NoError(t, err)
	assert.Empty(t, c.Group)

	// A later AddCompetitor fills the empty group in.
	require.NoError(t, g.AddCompetitor("Stanford", "Pac-12"))
	c, err = g.Competitor("Stanford")
	require.NoError(t, err)
	assert.Equal(t, "Pac-12", c.Group)
}

func TestGraph_AddOutcomePolicies(t *testing.T) {
	tests := []struct {
		name    string
		opts    []core.GraphOption
		winner  string
		loser   string
		prior   int
		wantErr error
	}{
		{name: "empty winner", winner: "", loser: "B", wantErr: core.ErrEmptyID},
		{name: "empty loser", winner: "A", loser: "", wantErr: core.ErrEmptyID},
		{name: "self play rejected", winner: "A", loser: "A", wantErr: core.ErrSelfPlay},
		{name: "self play allowed", opts: []core.GraphOption{core.WithSelfPlay()}, winner: "A", loser: "A"},
		{name: "repeat allowed by default", winner: "A", loser: "B", prior: 2},
		{name: "repeat rejected", opts: []core.GraphOption{core.WithoutRepeats()}, winner: "A", loser: "B", prior: 1, wantErr: core.ErrRepeatNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			for i := 0; i < tc.prior; i++ {
				_, err := g.AddOutcome(tc.winner, tc.loser)
				require.NoError(t, err)
			}
			_, err := g.AddOutcome(tc.winner, tc.loser)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.True(t, g.HasOutcome(tc.winner, tc.loser))
		})
	}
}

func TestGraph_OrderingAndPairs(t *testing.T) {
	g := core.NewGraph()
	for _, p := range []core.Pair{{Winner: "C", Loser: "A"}, {Winner: "B", Loser: "C"}, {Winner: "C", Loser: "A"}, {Winner: "A", Loser: "B"}} {
		_, err := g.AddOutcome(p.Winner, p.Loser)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"A", "B", "C"}, g.Competitors())
	assert.Equal(t, []core.Pair{{Winner: "C", Loser: "A"}, {Winner: "B", Loser: "C"}, {Winner: "C", Loser: "A"}, {Winner: "A", Loser: "B"}}, g.Pairs())

	outs := g.Outcomes()
	require.Len(t, outs, 4)
	for i, o := range outs {
		assert.Equal(t, uint64(i+1), o.Seq)
	}
	assert.Equal(t, "o4", outs[3].ID)

	wins, losses, err := g.Record("C")
	require.NoError(t, err)
	assert.Equal(t, 2, wins)
	assert.Equal(t, 1, losses)

	_, _, err = g.Record("Z")
	assert.ErrorIs(t, err, core.ErrCompetitorNotFound)
	_, _, err = g.Record("")
	assert.ErrorIs(t, err, core.ErrEmptyID)
}

func TestGraph_Partition(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddCompetitor("A", "East"))
	require.NoError(t, g.AddCompetitor("B", "East"))
	require.NoError(t, g.AddCompetitor("C", "West"))
	require.NoError(t, g.AddCompetitor("D", "West"))

	for _, p := range []core.Pair{{Winner: "A", Loser: "B"}, {Winner: "A", Loser: "C"}, {Winner: "D", Loser: "C"}, {Winner: "B", Loser: "A"}, {Winner: "E", Loser: "A"}} {
		_, err := g.AddOutcome(p.Winner, p.Loser)
		require.NoError(t, err)
	}

	in, cross := g.Partition()
	assert.Equal(t, []core.Pair{{Winner: "A", Loser: "B"}, {Winner: "B", Loser: "A"}}, in["East"])
	assert.Equal(t, []core.Pair{{Winner: "D", Loser: "C"}}, in["West"])
	assert.Equal(t, []core.Pair{{Winner: "A", Loser: "C"}, {Winner: "E", Loser: "A"}}, cross)
	assert.Equal(t, []string{"East", "West"}, g.Groups())

	stats := g.Stats()
	assert.Equal(t, 5, stats.CompetitorCount)
	assert.Equal(t, 2, stats.GroupCount)
	assert.Equal(t, 5, stats.OutcomeCount)
	assert.Equal(t, 5, stats.DistinctPairs)
	assert.True(t, stats.AllowsRepeats)
	assert.False(t, stats.AllowsSelfPlay)
	assert.True(t, g.Repeats())
	assert.False(t, g.SelfPlay())
}

func TestGraph_BeatenAndBeatenBy(t *testing.T) {
	g := core.NewGraph()
	for _, p := range []core.Pair{{Winner: "A", Loser: "C"}, {Winner: "A", Loser: "B"}, {Winner: "A", Loser: "B"}, {Winner: "C", Loser: "B"}} {
		_, err := g.AddOutcome(p.Winner, p.Loser)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"B", "C"}, g.Beaten("A"))
	assert.Nil(t, g.Beaten("B"))
	assert.Nil(t, g.Beaten("missing"))
	assert.Equal(t, []string{"A", "C"}, g.BeatenBy("B"))
	assert.Nil(t, g.BeatenBy("A"))
}

func TestGraph_PartitionUngrouped(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddOutcome("X", "Y")
	require.NoError(t, err)

	in, cross := g.Partition()
	assert.Empty(t, in)
	assert.Equal(t, []core.Pair{{Winner: "X", Loser: "Y"}}, cross)
}
