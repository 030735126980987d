// File: methods_vertices.go
// Role: Competitor lifecycle & queries.
//
// Determinism:
//   - Competitors() returns IDs sorted lexicographically ascending.
//   - Groups() returns distinct non-empty groups sorted ascending.
//
// Concurrency:
//   - Competitor catalog protected by muComp.
package core

import "sort"

// AddCompetitor inserts a competitor if missing (idempotent).
//
// Behavior highlights:
//   - Adding an existing competitor is a no-op, except that an empty Group
//     is filled in when group != "" (outcomes may create competitors before
//     their grouping is known).
//   - Initializes Metadata map to a non-nil value.
//
// Errors:
//   - ErrEmptyID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddCompetitor(id, group string) error {
	if id == "" {
		return ErrEmptyID
	}

	g.muComp.Lock()
	defer g.muComp.Unlock()

	if c, exists := g.competitors[id]; exists {
		if c.Group == "" {
			c.Group = group
		}
		return nil
	}
	g.competitors[id] = &Competitor{ID: id, Group: group, Metadata: make(map[string]interface{})}

	return nil
}

// HasCompetitor reports whether the competitor ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasCompetitor(id string) bool {
	if id == "" {
		return false
	}
	g.muComp.RLock()
	defer g.muComp.RUnlock()
	_, ok := g.competitors[id]

	return ok
}

// Competitor returns the catalog entry for id. The returned pointer must be
// treated as read-only by callers.
func (g *Graph) Competitor(id string) (*Competitor, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	g.muComp.RLock()
	defer g.muComp.RUnlock()
	c, ok := g.competitors[id]
	if !ok {
		return nil, ErrCompetitorNotFound
	}

	return c, nil
}

// Competitors returns all competitor IDs sorted ascending.
// Complexity: O(C log C).
func (g *Graph) Competitors() []string {
	g.muComp.RLock()
	defer g.muComp.RUnlock()
	ids := make([]string, 0, len(g.competitors))
	for id := range g.competitors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// CompetitorCount returns the number of competitors.
func (g *Graph) CompetitorCount() int {
	g.muComp.RLock()
	defer g.muComp.RUnlock()

	return len(g.competitors)
}

// Groups returns the distinct non-empty groups, sorted ascending.
// Complexity: O(C + K log K) for K groups.
func (g *Graph) Groups() []string {
	g.muComp.RLock()
	defer g.muComp.RUnlock()
	seen := make(map[string]struct{})
	for _, c := range g.competitors {
		if c.Group != "" {
			seen[c.Group] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for grp := range seen {
		out = append(out, grp)
	}
	sort.Strings(out)

	return out
}

// groupOf returns the group of id, or "" if unknown. Caller must not hold muComp.
func (g *Graph) groupOf(id string) string {
	g.muComp.RLock()
	defer g.muComp.RUnlock()
	if c, ok := g.competitors[id]; ok {
		return c.Group
	}

	return ""
}

// Record returns the number of recorded wins and losses for id.
//
// Errors:
//   - ErrEmptyID, ErrCompetitorNotFound.
//
// Complexity: O(C) to sum losses across winners.
func (g *Graph) Record(id string) (wins, losses int, err error) {
	if !g.HasCompetitor(id) {
		if id == "" {
			return 0, 0, ErrEmptyID
		}
		return 0, 0, ErrCompetitorNotFound
	}

	g.muOut.RLock()
	defer g.muOut.RUnlock()
	for _, n := range g.wins[id] {
		wins += n
	}
	for _, row := range g.wins {
		losses += row[id]
	}

	return wins, losses, nil
}
