// Package dfs implements depth-first search over the "beat" relation of a
// core.Graph: an edge runs from each winner to every competitor it beat.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root, or the full forest via
//     WithFullTraversal; WithReverse follows losses instead of wins.
//   - Hooks: OnVisit (pre-order) and OnExit (post-order), errors abort.
//   - Limits: MaxDepth; cancellation via context.Context.
//   - StronglyConnectedComponents / IsStronglyConnected: the pairwise rating
//     objective has a finite minimizer only when every competitor can reach
//     every other through a chain of wins.
//
// Determinism: roots are visited in Competitors() order and neighbors in
// sorted order, so Order, Parent and the components are stable.
//
// Complexity:
//   - Time:   O(C + P log P) for C competitors and P distinct winner/loser pairs.
//   - Memory: O(C) for the recursion stack and result maps.
//
// Errors:
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if startID is missing.
//   - context.Canceled        if ctx is done.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
