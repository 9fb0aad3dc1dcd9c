package dijkstra_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// v is shorthand for a VertexSpec with edges given as alternating (to, weight).
func v(id string, edges ...interface{}) core.VertexSpec {
	vs := core.VertexSpec{ID: id}
	for i := 0; i+1 < len(edges); i += 2 {
		vs.Edges = append(vs.Edges, core.Neighbor{To: edges[i].(string), Weight: int64(edges[i+1].(int))})
	}

	return vs
}

// fiveVertexGraph is {A:{B:5,C:1}, B:{A:5,C:2,D:1}, C:{A:1,B:2,D:4}, D:{B:1,C:4}, F:{D:6}}.
func fiveVertexGraph() *core.Graph {
	return core.MustFromAdjacency(
		v("A", "B", 5, "C", 1),
		v("B", "A", 5, "C", 2, "D", 1),
		v("C", "A", 1, "B", 2, "D", 4),
		v("D", "B", 1, "C", 4),
		v("F", "D", 6),
	)
}

// FinderSuite exercises FindShortestPath under one selection strategy.
type FinderSuite struct {
	suite.Suite
	strategy dijkstra.Strategy
}

func (s *FinderSuite) find(g *core.Graph, start, end string) (dijkstra.Result, error) {
	return dijkstra.NewFinder(g, dijkstra.WithStrategy(s.strategy)).FindShortestPath(start, end)
}

// ------------------------------------------------------------------------
// 1. Validation: errors are returned before any traversal.
// ------------------------------------------------------------------------

func (s *FinderSuite) TestNilGraph() {
	_, err := s.find(nil, "A", "B")
	require.ErrorIs(s.T(), err, dijkstra.ErrNilGraph)
}

func (s *FinderSuite) TestUnknownEndVertex() {
	g := core.MustFromAdjacency(
		v("A", "B", 5, "C", 1),
		v("B", "A", 5, "C", 2),
	)
	_, err := s.find(g, "A", "Z")
	require.ErrorIs(s.T(), err, dijkstra.ErrUnknownVertex)
	require.Contains(s.T(), err.Error(), "Z")
}

func (s *FinderSuite) TestDanglingNeighborIsUnknown() {
	// C is referenced as a neighbor but never declared as a vertex.
	g := core.MustFromAdjacency(v("A", "B", 5, "C", 1), v("B", "A", 5))
	_, err := s.find(g, "A", "C")
	require.ErrorIs(s.T(), err, dijkstra.ErrUnknownVertex)
}

func (s *FinderSuite) TestStartWithoutOutgoingEdges() {
	g := core.MustFromAdjacency(
		v("A", "B", 5),
		v("B", "A", 5),
		v("C"),
		v("D"),
		v("E"),
	)
	_, err := s.find(g, "C", "A")
	require.ErrorIs(s.T(), err, dijkstra.ErrNoOutgoingPath)
	require.Contains(s.T(), err.Error(), "C")
}

func (s *FinderSuite) TestAbsentStartVertex() {
	g := fiveVertexGraph()
	_, err := s.find(g, "Q", "A")
	require.ErrorIs(s.T(), err, dijkstra.ErrNoOutgoingPath)
}

func (s *FinderSuite) TestNegativeWeight() {
	g := core.MustFromAdjacency(
		v("A", "B", -1, "C", 1),
		v("B", "A", -1, "C", 2, "D", 1),
		v("C", "A", 1, "B", 2, "D", 4, "E", 8),
		v("D", "B", 1, "C", 4, "E", 3, "F", 6),
		v("E", "C", 8, "D", 3),
		v("F", "D", 6),
	)
	_, err := s.find(g, "A", "F")
	require.ErrorIs(s.T(), err, dijkstra.ErrNegativeWeight)
	require.Contains(s.T(), err.Error(), "weight=-1")
}

func (s *FinderSuite) TestNegativeWeightUnreachable() {
	// X is never reachable from A, yet its negative edge still fails the call.
	g := core.MustFromAdjacency(
		v("A", "B", 1),
		v("B"),
		v("X", "B", -3),
	)
	_, err := s.find(g, "A", "B")
	require.ErrorIs(s.T(), err, dijkstra.ErrNegativeWeight)
}

func (s *FinderSuite) TestNegativeWeightOnSelfPath() {
	g := core.MustFromAdjacency(v("A"), v("X", "A", -3))
	_, err := s.find(g, "A", "A")
	require.ErrorIs(s.T(), err, dijkstra.ErrNegativeWeight)
}

func (s *FinderSuite) TestValidationOrder() {
	// Unknown end is reported before the negative-weight scan.
	g := core.MustFromAdjacency(v("A", "B", -1), v("B"))
	_, err := s.find(g, "A", "Z")
	require.ErrorIs(s.T(), err, dijkstra.ErrUnknownVertex)
}

// ------------------------------------------------------------------------
// 2. Shortest paths.
// ------------------------------------------------------------------------

func (s *FinderSuite) TestFiveVertexGraph() {
	res, err := s.find(fiveVertexGraph(), "A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), res.Distance)
	require.Equal(s.T(), []string{"A", "C", "B"}, res.Path)
}

func (s *FinderSuite) TestFiveVertexGraphAllTargets() {
	g := fiveVertexGraph()
	want := map[string]struct {
		dist int64
		path []string
	}{
		"A": {0, []string{"A"}},
		"B": {3, []string{"A", "C", "B"}},
		"C": {1, []string{"A", "C"}},
		"D": {4, []string{"A", "C", "B", "D"}},
	}
	for end, w := range want {
		res, err := s.find(g, "A", end)
		require.NoError(s.T(), err, end)
		assert.Equal(s.T(), w.dist, res.Distance, end)
		assert.Equal(s.T(), w.path, res.Path, end)
	}

	// F has an outgoing edge but nothing leads into it.
	_, err := s.find(g, "A", "F")
	require.ErrorIs(s.T(), err, dijkstra.ErrNoPath)

	res, err := s.find(g, "F", "A")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(10), res.Distance)
	assert.Equal(s.T(), []string{"F", "D", "B", "C", "A"}, res.Path)
}

func (s *FinderSuite) TestSameStartAndEnd() {
	g := core.MustFromAdjacency(v("A", "B", 5), v("B", "A", 5), v("C"))

	res, err := s.find(g, "C", "C")
	require.NoError(s.T(), err, "equal start/end bypasses the outgoing-path check")
	require.Equal(s.T(), int64(0), res.Distance)
	require.Equal(s.T(), []string{"C"}, res.Path)

	res, err = s.find(g, "A", "A")
	require.NoError(s.T(), err)
	require.Equal(s.T(), dijkstra.Result{Distance: 0, Path: []string{"A"}}, res)
}

func (s *FinderSuite) TestDirectedEdges() {
	// A→B is cheap one way only; B→A must go around through C.
	g := core.MustFromAdjacency(
		v("A", "B", 1),
		v("B", "C", 2),
		v("C", "A", 3),
	)
	res, err := s.find(g, "B", "A")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), res.Distance)
	require.Equal(s.T(), []string{"B", "C", "A"}, res.Path)
}

func (s *FinderSuite) TestUndirectedGraph() {
	g := core.NewGraph(core.WithUndirected())
	require.NoError(s.T(), g.AddEdge("A", "B", 1))
	require.NoError(s.T(), g.AddEdge("B", "C", 2))
	require.NoError(s.T(), g.AddEdge("A", "C", 5))

	res, err := s.find(g, "C", "A")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), res.Distance)
	require.Equal(s.T(), []string{"C", "B", "A"}, res.Path)
}

func (s *FinderSuite) TestZeroWeights() {
	g := core.MustFromAdjacency(v("A", "B", 0), v("B", "C", 0), v("C"))
	res, err := s.find(g, "A", "C")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), res.Distance)
	require.Equal(s.T(), []string{"A", "B", "C"}, res.Path)
}

func (s *FinderSuite) TestSelfLoopIgnored() {
	g := core.MustFromAdjacency(v("A", "A", 0, "B", 2), v("B"))
	res, err := s.find(g, "A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B"}, res.Path)
}

func (s *FinderSuite) TestDanglingNeighborSkipped() {
	// Z is not a vertex; the edge to it is ignored during relaxation.
	g := core.MustFromAdjacency(v("A", "Z", 1, "B", 3), v("B"))
	res, err := s.find(g, "A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), res.Distance)
}

func (s *FinderSuite) TestTieBreakFollowsVertexOrder() {
	// Two equal-cost routes A→B→D and A→C→D. The vertex declared first
	// among B and C is finalized first and becomes D's predecessor.
	bFirst := core.MustFromAdjacency(v("A", "B", 1, "C", 1), v("B", "D", 1), v("C", "D", 1), v("D"))
	res, err := s.find(bFirst, "A", "D")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B", "D"}, res.Path)

	cFirst := core.MustFromAdjacency(v("A", "B", 1, "C", 1), v("C", "D", 1), v("B", "D", 1), v("D"))
	res, err = s.find(cFirst, "A", "D")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "C", "D"}, res.Path)
}

// ------------------------------------------------------------------------
// 3. Unreachable targets and overflow.
// ------------------------------------------------------------------------

func (s *FinderSuite) TestNoPath() {
	g := core.MustFromAdjacency(v("A", "B", 5), v("B", "A", 5), v("C"), v("E"))
	_, err := s.find(g, "A", "C")
	require.ErrorIs(s.T(), err, dijkstra.ErrNoPath)
}

func (s *FinderSuite) TestNoPathBehindOtherUnreachable() {
	// The loop stops on X (first unreachable) before ever selecting T.
	g := core.MustFromAdjacency(v("A", "B", 1), v("B"), v("X"), v("T"))
	_, err := s.find(g, "A", "T")
	require.ErrorIs(s.T(), err, dijkstra.ErrNoPath)
}

func (s *FinderSuite) TestReachableDespiteUnreachableRemainder() {
	g := core.MustFromAdjacency(v("X"), v("A", "B", 1), v("B"))
	res, err := s.find(g, "A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), res.Distance)
}

func (s *FinderSuite) TestDistanceOverflow() {
	g := core.MustFromAdjacency(v("A", "B", math.MaxInt64), v("B", "C", 1), v("C"))
	_, err := s.find(g, "A", "C")
	require.ErrorIs(s.T(), err, dijkstra.ErrDistanceOverflow)

	res, err := s.find(core.MustFromAdjacency(v("A", "B", math.MaxInt64), v("B")), "A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(math.MaxInt64), res.Distance)

	// B→C overflows but C is already reached more cheaply from A.
	g = core.MustFromAdjacency(v("A", "B", math.MaxInt64-1, "C", math.MaxInt64), v("B", "C", 5), v("C"))
	res, err = s.find(g, "A", "C")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(math.MaxInt64), res.Distance)
	require.Equal(s.T(), []string{"A", "C"}, res.Path)

	res, err = s.find(g, "A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(math.MaxInt64-1), res.Distance)
	require.Equal(s.T(), []string{"A", "B"}, res.Path)
}

// ------------------------------------------------------------------------
// 4. Observer, logging and concurrency.
// ------------------------------------------------------------------------

func (s *FinderSuite) TestObserverStats() {
	var got []dijkstra.SearchStats
	var errs []error
	f := dijkstra.NewFinder(fiveVertexGraph(),
		dijkstra.WithStrategy(s.strategy),
		dijkstra.WithObserver(dijkstra.ObserverFunc(func(st dijkstra.SearchStats, err error) {
			got = append(got, st)
			errs = append(errs, err)
		})),
	)

	_, err := f.FindShortestPath("A", "B")
	require.NoError(s.T(), err)
	_, err = f.FindShortestPath("A", "Z")
	require.Error(s.T(), err)

	require.Len(s.T(), got, 2)
	assert.Equal(s.T(), "A", got[0].Start)
	assert.Equal(s.T(), "B", got[0].End)
	assert.Equal(s.T(), s.strategy, got[0].Strategy)
	assert.Equal(s.T(), 4, got[0].Finalized, "A, C, B, D are finalized; F is not")
	assert.Equal(s.T(), 5, got[0].Relaxations)
	assert.NoError(s.T(), errs[0])

	assert.Equal(s.T(), 0, got[1].Finalized)
	assert.ErrorIs(s.T(), errs[1], dijkstra.ErrUnknownVertex)
}

func (s *FinderSuite) TestDebugLogging() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := dijkstra.NewFinder(fiveVertexGraph(), dijkstra.WithStrategy(s.strategy), dijkstra.WithLogger(logger))

	_, err := f.FindShortestPath("A", "B")
	require.NoError(s.T(), err)
	out := buf.String()
	assert.Contains(s.T(), out, "finalized vertex")
	assert.Contains(s.T(), out, "relaxed edge")
	assert.Contains(s.T(), out, "shortest path found")
}

func (s *FinderSuite) TestConcurrentSearches() {
	f := dijkstra.NewFinder(fiveVertexGraph(), dijkstra.WithStrategy(s.strategy))
	const num = 50
	var wg sync.WaitGroup
	results := make([]dijkstra.Result, num)
	errs := make([]error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.FindShortestPath("A", "D")
		}(i)
	}
	wg.Wait()

	for i := 0; i < num; i++ {
		require.NoError(s.T(), errs[i])
		require.Equal(s.T(), []string{"A", "C", "B", "D"}, results[i].Path)
	}
}

func TestFinder_LinearScan(t *testing.T) {
	suite.Run(t, &FinderSuite{strategy: dijkstra.StrategyLinearScan})
}

func TestFinder_Heap(t *testing.T) {
	suite.Run(t, &FinderSuite{strategy: dijkstra.StrategyHeap})
}

// ------------------------------------------------------------------------
// 5. Types and options.
// ------------------------------------------------------------------------

func TestErrorKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("%w: Z", dijkstra.ErrUnknownVertex), dijkstra.KindUnknownVertex},
		{dijkstra.ErrNoOutgoingPath, dijkstra.KindNoOutgoingPath},
		{dijkstra.ErrNegativeWeight, dijkstra.KindNegativeWeight},
		{dijkstra.ErrNoPath, dijkstra.KindNoPath},
		{dijkstra.ErrDistanceOverflow, dijkstra.KindOverflow},
		{dijkstra.ErrNilGraph, dijkstra.KindInvalidInput},
		{errors.New("other"), dijkstra.KindInvalidInput},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, dijkstra.ErrorKind(c.err), "%v", c.err)
	}
}

func TestResult_String(t *testing.T) {
	r := dijkstra.Result{Distance: 4, Path: []string{"A", "B", "C", "D"}}
	assert.Equal(t, "Distance: 4, Path: A -> B -> C -> D", r.String())
	assert.Equal(t, 3, r.Hops())
	assert.Equal(t, 0, dijkstra.Result{}.Hops())
	assert.Equal(t, 0, dijkstra.Result{Path: []string{"A"}}.Hops())
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "linear", dijkstra.StrategyLinearScan.String())
	assert.Equal(t, "heap", dijkstra.StrategyHeap.String())
	assert.Equal(t, "Strategy(7)", dijkstra.Strategy(7).String())
}

func TestOptions(t *testing.T) {
	def := dijkstra.DefaultOptions()
	assert.Equal(t, dijkstra.StrategyLinearScan, def.Strategy)
	assert.NotNil(t, def.Logger)
	assert.Nil(t, def.Observer)

	f := dijkstra.NewFinder(nil, dijkstra.WithStrategy(dijkstra.StrategyHeap), dijkstra.WithLogger(nil))
	assert.Equal(t, dijkstra.StrategyHeap, f.Options().Strategy)
	assert.NotNil(t, f.Options().Logger, "nil logger falls back to discard")

	assert.Panics(t, func() { dijkstra.WithStrategy(dijkstra.Strategy(42)) })
}
