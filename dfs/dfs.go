package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvrate/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from startID, or over every
// competitor with WithFullTraversal (startID is then ignored).
// The partial result is returned alongside any error.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasCompetitor(startID) {
		return nil, ErrStartVertexNotFound
	}

	ids := g.Competitors()
	res := &DFSResult{
		Order:   make([]string, 0, len(ids)),
		Depth:   make(map[string]int, len(ids)),
		Parent:  make(map[string]string, len(ids)),
		Visited: make(map[string]bool, len(ids)),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, id := range ids {
			if !res.Visited[id] {
				if err := w.traverse(id, 0); err != nil {
					return res, err
				}
			}
		}
		return res, nil
	}

	return res, w.traverse(startID, 0)
}

// neighbors returns the next hop in traversal direction, sorted.
func (w *dfsWalker) neighbors(id string) []string {
	if w.opts.Reverse {
		return w.graph.BeatenBy(id)
	}
	return w.graph.Beaten(id)
}

// traverse visits id at the given depth and recurses into unvisited neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	for _, nid := range w.neighbors(id) {
		if nid == id || w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err := w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	w.res.Order = append(w.res.Order, id)

	return nil
}
