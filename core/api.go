// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade: policy getters and Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsSelfPlay  bool
	AllowsRepeats   bool
	CompetitorCount int
	GroupCount      int
	OutcomeCount    int
	// DistinctPairs counts ordered (winner, loser) pairs with at least one outcome.
	DistinctPairs int
}

// SelfPlay reports whether winner == loser outcomes are permitted.
func (g *Graph) SelfPlay() bool {
	g.muComp.RLock()
	defer g.muComp.RUnlock()

	return g.allowSelf
}

// Repeats reports whether repeated ordered pairs are permitted.
func (g *Graph) Repeats() bool {
	g.muComp.RLock()
	defer g.muComp.RUnlock()

	return !g.noRepeats
}

// Stats produces a deterministic snapshot of flags and counts.
//
// Implementation:
//   - Stage 1: under muComp, capture flags and competitor count.
//   - Stage 2: groups via Groups() (takes muComp again, released in between).
//   - Stage 3: under muOut, count outcomes and distinct pairs.
//
// Complexity:
//   - Time O(C + E), Space O(K) for K groups.
func (g *Graph) Stats() *GraphStats {
	g.muComp.RLock()
	stats := GraphStats{
		AllowsSelfPlay:  g.allowSelf,
		AllowsRepeats:   !g.noRepeats,
		CompetitorCount: len(g.competitors),
	}
	g.muComp.RUnlock()

	stats.GroupCount = len(g.Groups())

	g.muOut.RLock()
	stats.OutcomeCount = len(g.outcomes)
	for _, row := range g.wins {
		stats.DistinctPairs += len(row)
	}
	g.muOut.RUnlock()

	return &stats
}
