// Package core provides a thread-safe in-memory record of head-to-head
// results: competitors (optionally grouped, e.g. by conference) and the
// outcomes between them, kept as a directed multigraph winner→loser.
//
// Capabilities:
//
//   - Repeated encounters are independent observations and are kept by
//     default (disable with WithoutRepeats).
//   - Self-play outcomes are rejected unless WithSelfPlay is given.
//   - Deterministic iteration: Competitors() and Groups() are sorted,
//     Outcomes() and Pairs() follow insertion order.
//   - Partition() splits outcomes into in-group and cross-group buckets,
//     which is what graph exporters cluster on.
//   - Separate sync.RWMutex for competitors (muComp) and outcomes (muOut).
//
// Core Methods:
//
//	AddCompetitor(id, group string) error          // O(1)
//	AddOutcome(winner, loser string) (string, error) // O(1)†
//	HasOutcome(winner, loser string) bool           // O(1)
//	Pairs() []Pair                                  // O(E)
//	Partition() (map[string][]Pair, []Pair)         // O(E)
//	Record(id string) (wins, losses int, err error) // O(C)
//
// † amortized.
package core
