// File: components.go
// Role: Strongly connected components of the beat relation (Kosaraju).
//
// Algorithm:
//  1. Full forward DFS; record post-order.
//  2. Walk competitors in reverse post-order; each unvisited one roots a
//     reverse DFS whose visited set is one component.
//
// Determinism:
//   - Members sorted ascending; components ordered by their smallest member.

package dfs

import (
	"sort"

	"github.com/katalvlaran/lvrate/core"
)

// StronglyConnectedComponents partitions competitors into groups in which
// every member can reach every other through a chain of wins.
//
// Complexity: O(C + P log P).
func StronglyConnectedComponents(g *core.Graph) ([][]string, error) {
	forward, err := DFS(g, "", WithFullTraversal())
	if err != nil {
		return nil, err
	}

	assigned := make(map[string]bool, len(forward.Order))
	var comps [][]string
	for i := len(forward.Order) - 1; i >= 0; i-- {
		root := forward.Order[i]
		if assigned[root] {
			continue
		}
		var comp []string
		collect := func(id string) error {
			comp = append(comp, id)
			assigned[id] = true
			return nil
		}
		// Reverse walk restricted to competitors not yet assigned.
		if err := reverseWalk(g, root, assigned, collect); err != nil {
			return nil, err
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	return comps, nil
}

// reverseWalk visits every competitor reachable from root through losses
// while skipping already-assigned ones.
func reverseWalk(g *core.Graph, root string, assigned map[string]bool, visit func(string) error) error {
	stack := []string{root}
	seen := map[string]bool{root: true}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := visit(id); err != nil {
			return err
		}
		for _, nid := range g.BeatenBy(id) {
			if !seen[nid] && !assigned[nid] {
				seen[nid] = true
				stack = append(stack, nid)
			}
		}
	}
	return nil
}

// IsStronglyConnected reports whether g has exactly one component. An empty
// graph is not strongly connected.
func IsStronglyConnected(g *core.Graph) (bool, error) {
	comps, err := StronglyConnectedComponents(g)
	if err != nil {
		return false, err
	}
	return len(comps) == 1, nil
}
