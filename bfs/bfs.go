package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvrate/core"
)

// Reach expands the beat relation of g from source, one hop at a time.
// On a hook or context error the partial Reachability is returned with it.
func Reach(g *core.Graph, source string, opts ...Option) (*Reachability, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasCompetitor(source) {
		return nil, fmt.Errorf("bfs: %q: %w", source, ErrUnknownCompetitor)
	}

	next := g.Beaten
	if o.reverse {
		next = g.BeatenBy
	}

	r := &Reachability{
		Source: source,
		Hops:   map[string]int{source: 0},
		Via:    make(map[string]string),
	}
	frontier := []string{source}
	for hops := 0; len(frontier) > 0; hops++ {
		if err := o.ctx.Err(); err != nil {
			return r, err
		}
		var upcoming []string
		for _, id := range frontier {
			r.Order = append(r.Order, id)
			if o.onReach != nil {
				if err := o.onReach(id, hops); err != nil {
					return r, fmt.Errorf("bfs: reach %q: %w", id, err)
				}
			}
			if o.maxHops > 0 && hops == o.maxHops {
				continue
			}
			for _, nb := range next(id) {
				if r.Reached(nb) || (o.skip != nil && o.skip(id, nb)) {
					continue
				}
				r.Hops[nb] = hops + 1
				r.Via[nb] = id
				upcoming = append(upcoming, nb)
			}
		}
		frontier = upcoming
	}

	return r, nil
}

// WinChain returns a shortest chain [from, …, to] in which each competitor
// beat the next one.
func WinChain(g *core.Graph, from, to string) ([]string, error) {
	r, err := Reach(g, from)
	if err != nil {
		return nil, err
	}
	return r.Chain(to)
}
