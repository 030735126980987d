// File: methods_edges.go
// Role: Outcome lifecycle & queries: AddOutcome/HasOutcome/Outcomes/Pairs/
//       OutcomeCount/Partition/Beaten/BeatenBy, plus outcomeID().
// Determinism:
//   - Outcomes() returns outcomes in insertion order (Seq asc).
//   - nextOutcomeID() is monotonic and stable ("o" + decimal).
// Concurrency:
//   - Mutations under muOut write lock.
//   - Read queries under muOut read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// outcomeIDPrefix is the textual prefix for outcome identifiers ("o1", "o2", ...).
const outcomeIDPrefix = 'o'

// AddOutcome records that winner beat loser once and returns the new outcome ID.
//
// Steps:
//  1. Validate IDs and the self-play policy.
//  2. Ensure both competitors via AddCompetitor (group left empty).
//  3. Lock muOut, check the repeat policy.
//  4. Generate the sequence number atomically, store and index the outcome.
//
// Complexity: O(1) amortized.
func (g *Graph) AddOutcome(winner, loser string) (string, error) {
	if winner == "" || loser == "" {
		return "", ErrEmptyID
	}
	if winner == loser && !g.allowSelf {
		return "", ErrSelfPlay
	}

	if err := g.AddCompetitor(winner, ""); err != nil {
		return "", err
	}
	if err := g.AddCompetitor(loser, ""); err != nil {
		return "", err
	}

	g.muOut.Lock()
	defer g.muOut.Unlock()

	if g.noRepeats && g.wins[winner][loser] > 0 {
		return "", ErrRepeatNotAllowed
	}

	seq := atomic.AddUint64(&g.nextSeq, 1)
	o := &Outcome{ID: outcomeID(seq), Winner: winner, Loser: loser, Seq: seq}
	g.outcomes = append(g.outcomes, o)

	row, ok := g.wins[winner]
	if !ok {
		row = make(map[string]int)
		g.wins[winner] = row
	}
	row[loser]++

	return o.ID, nil
}

// HasOutcome reports whether at least one winner→loser outcome exists.
// Complexity: O(1).
func (g *Graph) HasOutcome(winner, loser string) bool {
	if winner == "" || loser == "" {
		return false
	}
	g.muOut.RLock()
	defer g.muOut.RUnlock()

	return g.wins[winner][loser] > 0
}

// Outcomes returns a copy of the outcome list in insertion order.
// Complexity: O(E).
func (g *Graph) Outcomes() []*Outcome {
	g.muOut.RLock()
	defer g.muOut.RUnlock()
	out := make([]*Outcome, len(g.outcomes))
	copy(out, g.outcomes)

	return out
}

// Pairs returns every outcome as a (winner, loser) Pair, in insertion order.
// Repeated encounters appear once per occurrence.
func (g *Graph) Pairs() []Pair {
	g.muOut.RLock()
	defer g.muOut.RUnlock()
	out := make([]Pair, len(g.outcomes))
	for i, o := range g.outcomes {
		out[i] = o.Pair()
	}

	return out
}

// OutcomeCount returns the total number of recorded outcomes.
// Complexity: O(1).
func (g *Graph) OutcomeCount() int {
	g.muOut.RLock()
	defer g.muOut.RUnlock()

	return len(g.outcomes)
}

// Partition splits outcomes into those whose two competitors share a
// non-empty group (keyed by that group) and everything else (cross-group).
// Insertion order is preserved within each bucket. Ungrouped competitors
// never share a group, so outcomes between them are cross-group.
//
// Complexity: O(E).
func (g *Graph) Partition() (inGroup map[string][]Pair, cross []Pair) {
	inGroup = make(map[string][]Pair)
	for _, o := range g.Outcomes() {
		wg, lg := g.groupOf(o.Winner), g.groupOf(o.Loser)
		if wg != "" && wg == lg {
			inGroup[wg] = append(inGroup[wg], o.Pair())
			continue
		}
		cross = append(cross, o.Pair())
	}

	return inGroup, cross
}

// outcomeID renders a sequence number as "o<seq>" without fmt.
func outcomeID(seq uint64) string {
	buf := make([]byte, 0, 21)
	buf = append(buf, outcomeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}

// Beaten returns the distinct competitors id has beaten at least once,
// sorted ascending. Unknown or empty id ⇒ nil.
// Complexity: O(d log d) for d distinct opponents.
func (g *Graph) Beaten(id string) []string {
	g.muOut.RLock()
	defer g.muOut.RUnlock()
	row := g.wins[id]
	if len(row) == 0 {
		return nil
	}
	out := make([]string, 0, len(row))
	for l := range row {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

// BeatenBy returns the distinct competitors that have beaten id at least
// once, sorted ascending.
// Complexity: O(C + d log d).
func (g *Graph) BeatenBy(id string) []string {
	g.muOut.RLock()
	defer g.muOut.RUnlock()
	var out []string
	for w, row := range g.wins {
		if row[id] > 0 {
			out = append(out, w)
		}
	}
	sort.Strings(out)

	return out
}
