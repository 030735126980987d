// SPDX-License-Identifier: MIT
// Package core defines the Competitor, Outcome and Graph types that hold
// the raw results of head-to-head encounters, and provides thread-safe
// primitives for building and querying them.
//
// All core APIs use separate sync.RWMutex locks internally (muComp for the
// competitor catalog, muOut for outcomes and the win index), so a Graph may
// be filled from several goroutines.
//
// Errors:
//
//	ErrEmptyID            - competitor ID is the empty string.
//	ErrCompetitorNotFound - requested competitor does not exist.
//	ErrSelfPlay           - winner == loser when self-play is disabled.
//	ErrRepeatNotAllowed   - second outcome for the same ordered pair when repeats are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyID indicates that a competitor ID is empty.
	ErrEmptyID = errors.New("core: competitor ID is empty")

	// ErrCompetitorNotFound indicates an operation referenced a non-existent competitor.
	ErrCompetitorNotFound = errors.New("core: competitor not found")

	// ErrSelfPlay indicates an outcome with identical winner and loser was rejected.
	ErrSelfPlay = errors.New("core: self-play outcome not allowed")

	// ErrRepeatNotAllowed indicates a repeated (winner, loser) outcome was rejected.
	ErrRepeatNotAllowed = errors.New("core: repeated outcome not allowed")
)

// Competitor is a named participant, optionally assigned to a Group
// (a conference, a division, a pool).
type Competitor struct {
	// ID uniquely identifies this Competitor within its Graph.
	ID string

	// Group is the competitor's grouping label; empty means ungrouped.
	Group string

	// Metadata stores arbitrary user data. It is shared with subgraphs.
	Metadata map[string]interface{}
}

// Pair is a single (winner, loser) observation keyed by competitor names.
type Pair struct {
	Winner string
	Loser  string
}

// Outcome is one recorded encounter. Seq is the 1-based insertion order and
// ID its textual form ("o1", "o2", ...).
type Outcome struct {
	ID     string
	Winner string
	Loser  string
	Seq    uint64
}

// Pair returns the (winner, loser) view of o.
func (o *Outcome) Pair() Pair {
	return Pair{Winner: o.Winner, Loser: o.Loser}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithSelfPlay permits outcomes whose winner and loser are the same competitor.
func WithSelfPlay() GraphOption {
	return func(g *Graph) { g.allowSelf = true }
}

// WithoutRepeats rejects a second outcome for an ordered (winner, loser) pair.
// By default repeats are kept: each one is an independent observation.
func WithoutRepeats() GraphOption {
	return func(g *Graph) { g.noRepeats = true }
}

// Graph is a directed multigraph of outcomes: an edge winner→loser per
// recorded encounter.
//
// muComp protects competitors; muOut protects outcomes and wins.
// nextSeq is an atomic counter for Outcome.Seq generation.
type Graph struct {
	muComp sync.RWMutex // guards competitors
	muOut  sync.RWMutex // guards outcomes and wins

	// Configuration flags
	allowSelf bool // allow winner == loser
	noRepeats bool // reject repeated ordered pairs

	// Storage
	nextSeq     uint64                 // atomic outcome sequence generator
	competitors map[string]*Competitor // competitor ID → Competitor
	outcomes    []*Outcome             // insertion order

	// wins[winner][loser] = number of recorded outcomes
	wins map[string]map[string]int
}

// NewGraph creates an empty Graph with the given options.
// By default repeats are allowed and self-play is rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		competitors: make(map[string]*Competitor),
		wins:        make(map[string]map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
