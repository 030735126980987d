// Package bfs answers "who can claim a win over whom" on a core.Graph by
// breadth-first expansion of the beat relation.
//
// Reach expands hop by hop from a source competitor: hop 1 is everyone the
// source beat, hop 2 everyone those beat, and so on. The resulting tree
// gives, for every reached competitor, a shortest chain of wins back to
// the source. WinChain is the one-call form.
//
// WithReverse walks loser → winner instead, so hops count how far a
// competitor is from the teams that beat it. Neighbors are expanded in
// sorted order and results are deterministic.
//
// Complexity: O(C + P log P) for C competitors and P distinct pairs.
package bfs
