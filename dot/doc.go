// Package dot renders a core.Graph of outcomes as a Graphviz digraph.
//
// Competitors are drawn as points; every outcome is an edge winner -> loser.
// Outcomes between two competitors of the same group are placed in a
// "cluster_<group>" subgraph labelled with the group name, one cluster per
// group in sorted order. Cross-group outcomes follow the clusters.
//
// Node names are passed through TransformName, which drops characters that
// are not valid in bare DOT identifiers.
package dot
