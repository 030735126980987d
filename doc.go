// Package lvrate rates competitors from head-to-head results and fits
// one-parameter item response models, with analytic gradients that can be
// checked against finite differences.
//
// What is inside:
//
//	• Outcome graphs: thread-safe winner → loser multigraphs with groups
//	• Elo surrogate: vocabulary building and a logistic likelihood
//	• 1PL IRT: response simulation and a likelihood with a Gaussian prior
//	• Gradient checks: randomized finite-difference verification
//	• Traversals: win chains (BFS) and strong connectivity (DFS)
//	• Football data: CSV readers and Graphviz rendering by conference
//
// Subpackages:
//
//	core/      - Competitor, Outcome and Graph types
//	objective/ - value-and-gradient objectives and minimization
//	elo/       - Elo vocabulary and likelihood
//	irt/       - response simulation and 1PL likelihood
//	difftest/  - gradient and Jacobian verification
//	bfs/, dfs/ - traversals over the beat relation
//	builder/   - synthetic tournaments for tests and demos
//	football/  - game and conference CSV input
//	dot/       - Graphviz DOT output
//	config/    - YAML configuration
//	cmd/lvrate - command-line front end
//
//	go install github.com/katalvlaran/lvrate/cmd/lvrate@latest
package lvrate
