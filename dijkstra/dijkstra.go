// Package dijkstra implements Dijkstra's shortest-path algorithm between two
// vertices of a core.Graph with non-negative integer weights.
//
// Complexity:
//
//   - StrategyLinearScan: O(V² + E) time, O(V) extra space.
//   - StrategyHeap:       O((V + E) log V) time, O(V + E) extra space.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges (O(E)) rejects negative weights before any
//     traversal, even for edges unreachable from the start vertex.
//   - "Infinity" is an explicit reached flag, so no integer sentinel can collide
//     with a real distance.
//   - Ties between equal distances are broken by vertex insertion order.
//   - The loop stops at the first selected vertex whose distance is still
//     infinite; if that vertex is the target the search fails with ErrNoPath.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/shortpath/core"
)

// Finder computes shortest paths on a fixed graph.
//
// A Finder holds no per-search state: every FindShortestPath call allocates
// its own working tables, so one Finder may serve concurrent callers as long
// as the graph is not mutated meanwhile.
type Finder struct {
	g    *core.Graph
	opts Options
}

// NewFinder returns a Finder over g. No validation happens here; a nil graph
// is reported by FindShortestPath as ErrNilGraph.
func NewFinder(g *core.Graph, opts ...Option) *Finder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Finder{g: g, opts: cfg}
}

// Options returns a copy of the configuration used by f.
func (f *Finder) Options() Options { return f.opts }

// FindShortestPath returns the minimum-cost path from start to end.
//
// Validation, in order:
//  1. the graph must be non-nil (ErrNilGraph);
//  2. end must be a vertex of the graph (ErrUnknownVertex);
//  3. start must have outgoing edges unless start == end (ErrNoOutgoingPath);
//  4. no edge of the graph may be negative (ErrNegativeWeight).
//
// During the search ErrNoPath is returned when end is unreachable and
// ErrDistanceOverflow when a path length exceeds math.MaxInt64.
func (f *Finder) FindShortestPath(start, end string) (Result, error) {
	began := time.Now()
	r := &runner{
		g:     f.g,
		opts:  f.opts,
		log:   f.opts.Logger,
		debug: f.opts.Logger.Enabled(context.Background(), slog.LevelDebug),
		start: start,
		end:   end,
	}

	res, err := r.run()

	if f.opts.Observer != nil {
		f.opts.Observer.SearchFinished(SearchStats{
			Start:       start,
			End:         end,
			Strategy:    f.opts.Strategy,
			Finalized:   r.finalized,
			Relaxations: r.relaxations,
			Duration:    time.Since(began),
		}, err)
	}
	if err != nil {
		r.log.Debug("shortest path search failed", "start", start, "end", end, "error", err)
		return Result{}, err
	}
	r.log.Debug("shortest path found", "start", start, "end", end,
		"distance", res.Distance, "hops", res.Hops())

	return res, nil
}

// runner holds the mutable state for a single search.
// Vertices are addressed by their insertion index into order.
type runner struct {
	g     *core.Graph
	opts  Options
	log   *slog.Logger
	debug bool

	start, end string

	order   []string       // vertex IDs in insertion order
	index   map[string]int // vertex ID → position in order
	adj     [][]core.Edge  // outgoing edges per vertex
	dist    []int64        // best known distance; meaningful only if reached
	reached []bool         // false means "infinity"
	prev    []int          // predecessor index, -1 for none
	visited []bool         // finalized
	pq      vertexPQ       // used by StrategyHeap only

	unvisited   int
	finalized   int
	relaxations int
}

func (r *runner) run() (Result, error) {
	if err := r.validate(); err != nil {
		return Result{}, err
	}
	if err := r.init(); err != nil {
		return Result{}, err
	}
	if err := r.process(); err != nil {
		return Result{}, err
	}

	return r.result()
}

// validate checks the call arguments against the graph.
func (r *runner) validate() error {
	if r.g == nil {
		return ErrNilGraph
	}
	if !r.g.HasVertex(r.end) {
		return fmt.Errorf("%w: %s", ErrUnknownVertex, r.end)
	}
	if r.start != r.end && r.g.OutDegree(r.start) == 0 {
		return fmt.Errorf("%w: %s", ErrNoOutgoingPath, r.start)
	}

	return nil
}

// init snapshots the graph, sets every distance to infinity except start,
// and rejects negative weights on any edge of any vertex.
func (r *runner) init() error {
	r.order = r.g.Vertices()
	n := len(r.order)
	r.index = make(map[string]int, n)
	r.adj = make([][]core.Edge, n)
	r.dist = make([]int64, n)
	r.reached = make([]bool, n)
	r.prev = make([]int, n)
	r.visited = make([]bool, n)
	r.unvisited = n

	for i, id := range r.order {
		r.index[id] = i
		r.prev[i] = -1

		edges, err := r.g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", id, err)
		}
		for _, e := range edges {
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
		r.adj[i] = edges
	}

	s, ok := r.index[r.start]
	if !ok {
		return fmt.Errorf("dijkstra: start %q missing from graph", r.start)
	}
	r.dist[s] = 0
	r.reached[s] = true
	if r.opts.Strategy == StrategyHeap {
		r.pq = make(vertexPQ, 0, n)
		heap.Push(&r.pq, &vertexItem{idx: s, dist: 0})
	}

	return nil
}

// process is the main loop: select, stop on infinity, finalize, relax.
func (r *runner) process() error {
	target := r.index[r.end]
	for r.unvisited > 0 {
		u := r.selectNext()
		if !r.reached[u] {
			// Everything still unvisited is unreachable.
			if u == target {
				return fmt.Errorf("%w: %s→%s", ErrNoPath, r.start, r.end)
			}
			break
		}

		r.visited[u] = true
		r.unvisited--
		r.finalized++
		if r.debug {
			r.log.Debug("finalized vertex", "vertex", r.order[u], "distance", r.dist[u])
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// selectNext returns the unvisited vertex with the smallest distance,
// preferring the lowest insertion index on ties. Unreached vertices count as
// infinitely far; if only those remain the first of them is returned.
// Requires r.unvisited > 0.
func (r *runner) selectNext() int {
	if r.opts.Strategy == StrategyHeap {
		return r.selectFromHeap()
	}

	best := -1
	for i := range r.order {
		if r.visited[i] {
			continue
		}
		if best == -1 || r.closer(i, best) {
			best = i
		}
	}

	return best
}

// closer reports whether vertex i is strictly closer than vertex j.
func (r *runner) closer(i, j int) bool {
	if !r.reached[i] {
		return false
	}

	return !r.reached[j] || r.dist[i] < r.dist[j]
}

func (r *runner) selectFromHeap() int {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*vertexItem)
		// Skip stale entries: finalized, or superseded by a shorter push.
		if r.visited[item.idx] || item.dist != r.dist[item.idx] {
			continue
		}

		return item.idx
	}
	// Heap exhausted: only unreached vertices remain; mirror the linear scan.
	for i := range r.order {
		if !r.visited[i] {
			return i
		}
	}

	return -1
}

// relax tries to improve every unvisited neighbor of the finalized vertex u.
// Neighbors that are not vertices of the graph are ignored.
func (r *runner) relax(u int) error {
	du := r.dist[u]
	for _, e := range r.adj[u] {
		v, ok := r.index[e.To]
		if !ok || r.visited[v] {
			continue
		}
		if e.Weight > math.MaxInt64-du {
			// An overflowing candidate cannot beat a finite distance.
			if r.reached[v] {
				continue
			}
			return fmt.Errorf("%w: %s→%s", ErrDistanceOverflow, e.From, e.To)
		}
		candidate := du + e.Weight
		if r.reached[v] && candidate >= r.dist[v] {
			continue
		}

		r.dist[v] = candidate
		r.reached[v] = true
		r.prev[v] = u
		r.relaxations++
		if r.debug {
			r.log.Debug("relaxed edge", "from", e.From, "to", e.To, "distance", candidate)
		}
		if r.opts.Strategy == StrategyHeap {
			heap.Push(&r.pq, &vertexItem{idx: v, dist: candidate})
		}
	}

	return nil
}

// result reconstructs the path by walking predecessors back from end.
func (r *runner) result() (Result, error) {
	t := r.index[r.end]
	if !r.reached[t] {
		// The loop stopped on another unreachable vertex before selecting end.
		return Result{}, fmt.Errorf("%w: %s→%s", ErrNoPath, r.start, r.end)
	}

	var path []string
	for v := t; v != -1; v = r.prev[v] {
		path = append(path, r.order[v])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{Distance: r.dist[t], Path: path}, nil
}

// vertexItem is a heap entry: a vertex index and the distance it was pushed with.
type vertexItem struct {
	idx  int
	dist int64
}

// vertexPQ is a min-heap of *vertexItem ordered by (dist, idx) ascending.
// Ordering on idx as well keeps its choices identical to the linear scan.
type vertexPQ []*vertexItem

func (pq vertexPQ) Len() int { return len(pq) }

func (pq vertexPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq vertexPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(*vertexItem)) }

func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
