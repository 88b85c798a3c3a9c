package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kbtool/builder"
	"github.com/katalvlaran/kbtool/core"
	"github.com/katalvlaran/kbtool/triple"
)

// TestFromTriples_Cycle3 checks the 3-cycle round trip: 3 nodes, 3 edges,
// one forward and one backward edge per node.
func TestFromTriples_Cycle3(t *testing.T) {
	t.Parallel()

	g := core.FromTriples(cycle3())
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 3, g.EdgeCount())

	for id := 0; id < g.NodeCount(); id++ {
		n, err := g.Node(id)
		require.NoError(t, err)
		assert.Len(t, n.EdgesFwd, 1, "node %s", n.Label)
		assert.Len(t, n.EdgesRev, 1, "node %s", n.Label)
		assert.Equal(t, 2, n.Degree())
	}
}

// TestFromTriples_FirstSeenIDs checks dense ids by first appearance and
// edge ids by triple position.
func TestFromTriples_FirstSeenIDs(t *testing.T) {
	t.Parallel()

	g := core.FromTriples(fanOut())
	assert.Equal(t, []int{0, 1, 2, 3}, ids(t, g, EntA, EntB, EntC, EntD))

	for i, tr := range fanOut() {
		e, err := g.Edge(i)
		require.NoError(t, err)
		assert.Equal(t, i, e.ID)
		assert.Equal(t, tr.Head, g.Label(e.Src))
		assert.Equal(t, tr.Tail, g.Label(e.Dst))
		assert.Equal(t, tr.Relation, e.Label)
	}
}

// TestFromTriples_Idempotent rebuilds from the same sequence and compares ids.
func TestFromTriples_Idempotent(t *testing.T) {
	t.Parallel()

	ts, err := builder.Build(
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithRelations("a", "b", "c")},
		builder.RandomSparse(30, 0.1),
	)
	require.NoError(t, err)

	g1, g2 := core.FromTriples(ts), core.FromTriples(ts)
	require.Equal(t, g1.NodeCount(), g2.NodeCount())
	for id := 0; id < g1.NodeCount(); id++ {
		n1, _ := g1.Node(id)
		n2, _ := g2.Node(id)
		assert.Equal(t, n1, n2)
	}
	assert.Equal(t, g1.Relations(), g2.Relations())
}

// TestFromTriples_Invariants checks incidence bookkeeping and the subset
// relation between the two indices on a random graph.
func TestFromTriples_Invariants(t *testing.T) {
	t.Parallel()

	ts, err := builder.Build(
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithRelations("a", "b")},
		builder.RandomSparse(25, 0.15),
	)
	require.NoError(t, err)
	g := core.FromTriples(ts)

	fwdSeen := make([]int, g.EdgeCount())
	revSeen := make([]int, g.EdgeCount())
	for id := 0; id < g.NodeCount(); id++ {
		n, err := g.Node(id)
		require.NoError(t, err)
		for _, eid := range n.EdgesFwd {
			fwdSeen[eid]++
			e, _ := g.Edge(eid)
			assert.Equal(t, id, e.Src)
		}
		for _, eid := range n.EdgesRev {
			revSeen[eid]++
			e, _ := g.Edge(eid)
			assert.Equal(t, id, e.Dst)
		}
		for _, k := range g.Relations() {
			assert.True(t, g.Reachable(id, k).SubsetOf(g.Candidates(k)),
				"reachable(%d,%s) ⊄ candidates", id, k)
		}
	}
	for eid := range fwdSeen {
		assert.Equal(t, 1, fwdSeen[eid], "edge %d fwd", eid)
		assert.Equal(t, 1, revSeen[eid], "edge %d rev", eid)
	}
}

// TestFromTriples_Indices checks concrete index contents and the disjoint
// forward/backward namespaces.
func TestFromTriples_Indices(t *testing.T) {
	t.Parallel()

	g := core.FromTriples(fanOut())
	a, b, c, d := mustID(t, g, EntA), mustID(t, g, EntB), mustID(t, g, EntC), mustID(t, g, EntD)

	assert.Equal(t, []int{b, c}, g.Candidates(core.Fwd(Rel1)).IDs())
	assert.Equal(t, []int{a, d}, g.Candidates(core.Bwd(Rel1)).IDs())
	assert.Equal(t, []int{b, c}, g.Reachable(a, core.Fwd(Rel1)).IDs())
	assert.Equal(t, []int{b}, g.Reachable(d, core.Fwd(Rel1)).IDs())
	assert.Equal(t, []int{a, d}, g.Reachable(b, core.Bwd(Rel1)).IDs())
	assert.Equal(t, []int{d}, g.Reachable(a, core.Bwd(Rel2)).IDs())

	// Forward r2 leads to A only; backward r2 leads to D only.
	assert.Equal(t, []int{a}, g.Candidates(core.Fwd(Rel2)).IDs())
	assert.Equal(t, []int{d}, g.Candidates(core.Bwd(Rel2)).IDs())

	assert.True(t, g.Candidates(core.Fwd("missing")).IsEmpty())
	assert.True(t, g.Reachable(c, core.Fwd(Rel1)).IsEmpty())

	assert.Equal(t, []core.RelationKey{
		core.Fwd(Rel1), core.Bwd(Rel1), core.Fwd(Rel2), core.Bwd(Rel2),
	}, g.Relations())

	st := g.Stats()
	assert.Equal(t, 4, st.NodeCount)
	assert.Equal(t, 4, st.EdgeCount)
	assert.Equal(t, 2, st.RelationCount)
	assert.Equal(t, 4, st.KeyCount)
}

// TestFromTriples_SelfLoop registers a self-loop in both incidence lists.
func TestFromTriples_SelfLoop(t *testing.T) {
	t.Parallel()

	g := core.FromTriples([]triple.Triple{triple.New(EntA, Rel1, EntA)})
	require.Equal(t, 1, g.NodeCount())
	edges, boundary, err := g.IncidentEdges(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, edges)
	assert.Equal(t, 1, boundary)
}

// TestFromTriples_Empty yields a zero-node graph without panicking.
func TestFromTriples_Empty(t *testing.T) {
	t.Parallel()

	g := core.FromTriples(nil)
	assert.True(t, g.IsEmpty())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Relations())
	assert.Equal(t, "", g.Label(0))
}

// TestAccessors_Errors covers out-of-range lookups.
func TestAccessors_Errors(t *testing.T) {
	t.Parallel()

	g := core.FromTriples(cycle3())

	_, err := g.Node(-1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Node(3)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Edge(3)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, _, err = g.IncidentEdges(99)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, ok := g.NodeID("nope")
	assert.False(t, ok)
}

// TestAccessors_NilGraph: error-returning methods report ErrGraphNil, the
// rest answer as for the empty graph.
func TestAccessors_NilGraph(t *testing.T) {
	t.Parallel()

	var g *core.Graph

	_, err := g.Node(0)
	assert.ErrorIs(t, err, core.ErrGraphNil)
	_, err = g.Edge(0)
	assert.ErrorIs(t, err, core.ErrGraphNil)
	_, _, err = g.IncidentEdges(0)
	assert.ErrorIs(t, err, core.ErrGraphNil)
	_, err = g.ReachableAlong(0, nil)
	assert.ErrorIs(t, err, core.ErrGraphNil)

	assert.True(t, g.IsEmpty())
	assert.False(t, g.HasNode(0))
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, "", g.Label(0))
	_, ok := g.NodeID("A")
	assert.False(t, ok)
	assert.True(t, g.Candidates(core.Fwd("r")).IsEmpty())
	assert.True(t, g.Reachable(0, core.Fwd("r")).IsEmpty())
	assert.Empty(t, g.Relations())
	assert.Equal(t, &core.GraphStats{}, g.Stats())
}

// TestIncidentEdges_FreshSlice checks the returned slice does not alias the graph.
func TestIncidentEdges_FreshSlice(t *testing.T) {
	t.Parallel()

	g := core.FromTriples(fanOut())
	a := mustID(t, g, EntA)

	edges, boundary, err := g.IncidentEdges(a)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, edges)
	assert.Equal(t, 2, boundary)

	edges[0] = 42
	again, _, _ := g.IncidentEdges(a)
	assert.Equal(t, 0, again[0])
}

// TestRelationKey_Token checks suffix rendering.
func TestRelationKey_Token(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "r1::-->", core.Fwd(Rel1).String())
	assert.Equal(t, "r1::<--", core.Bwd(Rel1).String())
	assert.Equal(t, "r1>", core.Fwd(Rel1).Token(">", "<"))
	assert.Equal(t, "forward", core.Forward.String())
	assert.Equal(t, "backward", core.Backward.String())
}
