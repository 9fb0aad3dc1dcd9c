// Package dijkstra defines core types and configuration options
// for the single-pair shortest-path Finder.
//
// Options:
//
//	– Strategy: how the next vertex to finalize is selected
//	  (StrategyLinearScan, the default, or StrategyHeap).
//	– Logger:   *slog.Logger receiving debug traces; discards by default.
//	– Observer: callback invoked once per FindShortestPath with SearchStats.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the Finder was built with a nil graph.
//	– ErrUnknownVertex     if the end vertex is not a vertex of the graph.
//	– ErrNoOutgoingPath    if start has no outgoing edges and start != end.
//	– ErrNegativeWeight    if any edge anywhere in the graph is negative.
//	– ErrNoPath            if end cannot be reached from start.
//	– ErrDistanceOverflow  if a path length does not fit into int64.
package dijkstra

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Sentinel errors returned by FindShortestPath. Returned errors wrap one of
// these with the offending vertex or edge; test with errors.Is.
var (
	// ErrNilGraph indicates that the Finder was constructed with a nil *core.Graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownVertex indicates that the requested end vertex is not a top-level
	// vertex of the graph.
	ErrUnknownVertex = errors.New("dijkstra: vertex does not exist")

	// ErrNoOutgoingPath indicates that the start vertex has no adjacency entries
	// while start != end.
	ErrNoOutgoingPath = errors.New("dijkstra: start vertex has no outgoing paths")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: edge weight cannot be negative")

	// ErrNoPath indicates that no sequence of edges leads from start to end.
	ErrNoPath = errors.New("dijkstra: path does not exist")

	// ErrDistanceOverflow indicates that a tentative distance exceeded math.MaxInt64.
	ErrDistanceOverflow = errors.New("dijkstra: distance overflows int64")
)

// Error kind labels returned by ErrorKind.
const (
	KindUnknownVertex  = "unknown_vertex"
	KindNoOutgoingPath = "no_outgoing_path"
	KindNegativeWeight = "negative_weight"
	KindNoPath         = "no_path"
	KindOverflow       = "overflow"
	KindInvalidInput   = "invalid_input"
)

// ErrorKind maps an error returned by FindShortestPath to a stable label,
// suitable for metric labels. nil maps to "".
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnknownVertex):
		return KindUnknownVertex
	case errors.Is(err, ErrNoOutgoingPath):
		return KindNoOutgoingPath
	case errors.Is(err, ErrNegativeWeight):
		return KindNegativeWeight
	case errors.Is(err, ErrNoPath):
		return KindNoPath
	case errors.Is(err, ErrDistanceOverflow):
		return KindOverflow
	default:
		return KindInvalidInput
	}
}

// Result is the outcome of a successful search.
//
// Path lists vertices from start to end inclusive; for start == end it is [start].
type Result struct {
	Distance int64
	Path     []string
}

// Hops returns the number of edges on Path.
func (r Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// String renders the result as "Distance: d, Path: v1 -> v2 -> … -> vn".
func (r Result) String() string {
	return fmt.Sprintf("Distance: %d, Path: %s", r.Distance, strings.Join(r.Path, " -> "))
}

// Strategy selects how the next vertex to finalize is found.
type Strategy int

const (
	// StrategyLinearScan scans every unvisited vertex in insertion order
	// on each iteration. O(V² + E).
	StrategyLinearScan Strategy = iota

	// StrategyHeap keeps reached vertices in a binary heap ordered by
	// (distance, insertion index) with lazy decrease-key. O((V + E) log V).
	// It selects exactly the same vertices as StrategyLinearScan.
	StrategyHeap
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyLinearScan:
		return "linear"
	case StrategyHeap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// SearchStats describes one FindShortestPath call.
type SearchStats struct {
	Start, End  string
	Strategy    Strategy
	Finalized   int // vertices removed from the unvisited set
	Relaxations int // successful distance improvements
	Duration    time.Duration
}

// Observer receives SearchStats after every FindShortestPath call,
// successful or not. Implementations must be safe for concurrent use
// when the Finder is shared between goroutines.
type Observer interface {
	SearchFinished(stats SearchStats, err error)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(stats SearchStats, err error)

// SearchFinished calls f(stats, err).
func (f ObserverFunc) SearchFinished(stats SearchStats, err error) { f(stats, err) }

// Options configures the behavior of a Finder.
type Options struct {
	Strategy Strategy     // vertex selection strategy
	Logger   *slog.Logger // debug trace sink; never nil after DefaultOptions
	Observer Observer     // optional; nil disables callbacks
}

// Option represents a functional option for configuring a Finder.
type Option func(*Options)

// WithStrategy sets the vertex selection strategy.
// Panics on an unknown Strategy value.
func WithStrategy(s Strategy) Option {
	if s != StrategyLinearScan && s != StrategyHeap {
		panic(fmt.Sprintf("dijkstra: unknown strategy %d", int(s)))
	}

	return func(o *Options) {
		o.Strategy = s
	}
}

// WithLogger routes debug traces to l. A nil logger restores the default
// discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.Logger = l
	}
}

// WithObserver registers obs to receive SearchStats.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Strategy: StrategyLinearScan.
//   - Logger:   discards everything.
//   - Observer: nil.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyLinearScan,
		Logger:   discardLogger(),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
