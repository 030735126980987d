package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil indicates a nil *core.Graph was passed.
	ErrGraphNil = errors.New("bfs: nil graph")

	// ErrUnknownCompetitor indicates the source competitor is not in the graph.
	ErrUnknownCompetitor = errors.New("bfs: unknown competitor")

	// ErrBadHops indicates a negative hop limit.
	ErrBadHops = errors.New("bfs: negative hop limit")

	// ErrNoChain indicates that no chain of wins links the two competitors.
	ErrNoChain = errors.New("bfs: no chain of wins")
)

// Option customizes Reach.
type Option func(*options)

type options struct {
	ctx     context.Context
	maxHops int // 0 = unlimited
	reverse bool
	skip    func(from, to string) bool
	onReach func(id string, hops int) error
	err     error
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext stops the search with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxHops stops expanding past n hops; 0 means no limit.
func WithMaxHops(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadHops, n)
			return
		}
		o.maxHops = n
	}
}

// WithReverse follows loser → winner edges.
func WithReverse() Option {
	return func(o *options) { o.reverse = true }
}

// WithSkip ignores the edge from → to whenever fn returns true.
func WithSkip(fn func(from, to string) bool) Option {
	return func(o *options) { o.skip = fn }
}

// WithOnReach calls fn for each competitor as it is reached, source
// included; an error aborts the search.
func WithOnReach(fn func(id string, hops int) error) Option {
	return func(o *options) { o.onReach = fn }
}

// Reachability is the BFS tree grown from Source.
type Reachability struct {
	Source string
	Order  []string          // reach order, hop by hop
	Hops   map[string]int    // hops from Source
	Via    map[string]string // predecessor on a shortest chain
}

// Reached reports whether id was reached from Source.
func (r *Reachability) Reached(id string) bool {
	_, ok := r.Hops[id]
	return ok
}

// AtHops returns the competitors exactly n hops from Source, in reach order.
func (r *Reachability) AtHops(n int) []string {
	var out []string
	for _, id := range r.Order {
		if r.Hops[id] == n {
			out = append(out, id)
		}
	}
	return out
}

// Chain returns the shortest chain [Source, …, dest].
func (r *Reachability) Chain(dest string) ([]string, error) {
	n, ok := r.Hops[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: %s to %s: %w", r.Source, dest, ErrNoChain)
	}
	chain := make([]string, n+1)
	for i, cur := n, dest; i >= 0; i-- {
		chain[i] = cur
		cur = r.Via[cur]
	}
	return chain, nil
}
