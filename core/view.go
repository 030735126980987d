// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Outcomes keep their relative insertion order; IDs are reassigned from "o1".
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// options rebuilds the GraphOption list matching g's policy flags.
func (g *Graph) options() []GraphOption {
	var opts []GraphOption
	if g.allowSelf {
		opts = append(opts, WithSelfPlay())
	}
	if g.noRepeats {
		opts = append(opts, WithoutRepeats())
	}

	return opts
}

// InducedSubgraph returns a new Graph holding only competitors with keep[id]
// true, and the outcomes whose winner and loser are both kept. The input graph
// is not mutated; the subgraph inherits its policy flags.
//
// Complexity: O(C + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph(g.options()...)

	g.muComp.RLock()
	for id, c := range g.competitors {
		if keep[id] {
			out.competitors[id] = &Competitor{ID: c.ID, Group: c.Group, Metadata: c.Metadata}
		}
	}
	g.muComp.RUnlock()

	for _, o := range g.Outcomes() {
		if keep[o.Winner] && keep[o.Loser] {
			// Policy checks already passed on the source graph.
			_, _ = out.AddOutcome(o.Winner, o.Loser)
		}
	}

	return out
}

// GroupSubgraph returns the subgraph induced by the competitors of group.
// An empty group selects the ungrouped competitors.
//
// Complexity: O(C + E).
func GroupSubgraph(g *Graph, group string) *Graph {
	keep := make(map[string]bool)
	g.muComp.RLock()
	for id, c := range g.competitors {
		if c.Group == group {
			keep[id] = true
		}
	}
	g.muComp.RUnlock()

	return InducedSubgraph(g, keep)
}
