// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links and visit order.
package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/isingraph/core"
)

// queueItem pairs a site ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state; visited is shared across the
// searches of one Clusters call.
type walker struct {
	graph   *core.Graph
	opts    options
	queue   []queueItem
	visited map[string]bool
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation or ctx.Err().
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
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
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("bfs: %q: %w", startID, ErrStartVertexNotFound)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
	}
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}

	return res, w.run(startID, res)
}

// Clusters partitions the sites of g into groups connected by non-zero
// couplings. Clusters are ordered by their smallest site index and each
// lists its members in ascending site order. An isolated site is a
// cluster of one.
func Clusters(g *core.Graph, opts ...Option) ([][]string, error) {
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
	user := o.follow
	o.follow = func(e *core.Edge) bool { return e.Weight != 0 && user(e) }
	o.maxDepth = 0

	sites := g.Vertices()
	index := make(map[string]int, len(sites))
	for i, id := range sites {
		index[id] = i
	}
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, len(sites)),
		visited: make(map[string]bool, len(sites)),
	}

	var out [][]string
	for _, id := range sites {
		if w.visited[id] {
			continue
		}
		res := &Result{Depth: map[string]int{}, Parent: map[string]string{}}
		if err := w.run(id, res); err != nil {
			return nil, err
		}
		members := res.Order
		sort.Slice(members, func(a, b int) bool { return index[members[a]] < index[members[b]] })
		out = append(out, members)
	}

	return out, nil
}

// run searches from start, appending to res until the queue drains.
func (w *walker) run(start string, res *Result) error {
	w.queue = w.queue[:0]
	w.enqueue(res, start, 0, "")
	for len(w.queue) > 0 {
		if err := w.opts.ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]
		res.Order = append(res.Order, item.id)

		next := item.depth + 1
		if w.opts.maxDepth > 0 && next > w.opts.maxDepth {
			continue
		}
		edges, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, e := range edges {
			nbr := e.Other(item.id)
			if w.visited[nbr] || !w.opts.follow(e) {
				continue
			}
			w.enqueue(res, nbr, next, item.id)
		}
	}

	return nil
}

func (w *walker) enqueue(res *Result, id string, d int, parent string) {
	w.visited[id] = true
	res.Depth[id] = d
	if parent != "" {
		res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}
