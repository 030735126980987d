package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start competitor does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a competitor is discovered (pre-order).
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants are explored
	// (post-order), before the competitor is appended to Order.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion depth. Default -1 (no limit).
	MaxDepth int

	// FullTraversal restarts from every unvisited competitor.
	FullTraversal bool

	// Reverse follows loser → winner edges instead of winner → loser.
	Reverse bool
}

// DefaultOptions returns background context, no hooks, no depth limit,
// single-source, forward traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start competitor.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFullTraversal covers every competitor, restarting from each unvisited one.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// WithReverse follows losses: from a competitor to those who beat it.
func WithReverse() Option {
	return func(o *DFSOptions) { o.Reverse = true }
}

// DFSResult captures a traversal: post-order, discovery depths, parent
// links and visited flags.
type DFSResult struct {
	Order   []string
	Depth   map[string]int
	Parent  map[string]string
	Visited map[string]bool
}
