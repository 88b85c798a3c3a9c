// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only query surface of the immutable Graph.
// Policy:
//   - No mutation, no hidden state, no locks (the Graph never changes).
//   - Slices handed out are fresh copies; NodeSets are immutable views.
//   - Every exported method documents its complexity.

package core

import (
	"fmt"
	"sort"
)

// GraphStats is a snapshot of catalog sizes.
type GraphStats struct {
	NodeCount     int // |V|
	EdgeCount     int // |E| (one per input triple, duplicates included)
	RelationCount int // distinct relation labels
	KeyCount      int // distinct directed relation keys (≤ 2·RelationCount)
	HeadKeyCount  int // populated (head, key) reachability entries
}

// A nil *Graph answers the boolean and count queries as the empty graph;
// methods returning an error report ErrGraphNil.

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	if g == nil {
		return 0
	}
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	return len(g.edges)
}

// IsEmpty reports whether the graph has no nodes.
func (g *Graph) IsEmpty() bool { return g.NodeCount() == 0 }

// Node returns a copy of the node with the given id.
//
// Returns:
//   - Node: deep copy (incidence slices are fresh).
//
// Errors:
//   - ErrNodeNotFound if id is out of range.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) Node(id int) (Node, error) {
	if g == nil {
		return Node{}, fmt.Errorf("Node(%d): %w", id, ErrGraphNil)
	}
	if id < 0 || id >= len(g.nodes) {
		return Node{}, fmt.Errorf("Node(%d): %w", id, ErrNodeNotFound)
	}
	n := g.nodes[id]
	n.EdgesFwd = append([]int(nil), n.EdgesFwd...)
	n.EdgesRev = append([]int(nil), n.EdgesRev...)
	return n, nil
}

// Edge returns the edge with the given id.
// Complexity: O(1).
func (g *Graph) Edge(id int) (Edge, error) {
	if g == nil {
		return Edge{}, fmt.Errorf("Edge(%d): %w", id, ErrGraphNil)
	}
	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("Edge(%d): %w", id, ErrEdgeNotFound)
	}
	return g.edges[id], nil
}

// NodeID resolves an entity label to its id.
// Complexity: O(1).
func (g *Graph) NodeID(label string) (int, bool) {
	if g == nil {
		return 0, false
	}
	id, ok := g.nodeIDs[label]
	return id, ok
}

// Label returns the entity label of node id, or "" when id is out of range.
// Complexity: O(1).
func (g *Graph) Label(id int) string {
	if !g.HasNode(id) {
		return ""
	}
	return g.nodes[id].Label
}

// HasNode reports whether id addresses a node of g.
func (g *Graph) HasNode(id int) bool { return id >= 0 && id < g.NodeCount() }

// IncidentEdges returns the candidate edge list of node id used by the walk
// sampler: EdgesFwd followed by EdgesRev, plus the boundary index separating
// the two partitions (positions < boundary are forward edges).
//
// Implementation:
//   - Stage 1: Validate id.
//   - Stage 2: Allocate one slice of len(EdgesFwd)+len(EdgesRev) and copy both.
//
// Returns:
//   - edges: fresh slice, safe for the caller to filter in place.
//   - boundary: len(EdgesFwd).
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrNodeNotFound if id is out of range.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) IncidentEdges(id int) (edges []int, boundary int, err error) {
	if g == nil {
		return nil, 0, fmt.Errorf("IncidentEdges(%d): %w", id, ErrGraphNil)
	}
	if id < 0 || id >= len(g.nodes) {
		return nil, 0, fmt.Errorf("IncidentEdges(%d): %w", id, ErrNodeNotFound)
	}
	n := &g.nodes[id]
	edges = make([]int, 0, len(n.EdgesFwd)+len(n.EdgesRev))
	edges = append(edges, n.EdgesFwd...)
	edges = append(edges, n.EdgesRev...)
	return edges, len(n.EdgesFwd), nil
}

// Candidates returns the set of nodes that are a valid target of key anywhere
// in the graph. Unknown keys yield the empty set.
// Complexity: O(1).
func (g *Graph) Candidates(key RelationKey) NodeSet {
	if g == nil {
		return NodeSet{}
	}
	return wrap(g.candidates[key])
}

// Reachable returns the set of nodes reachable from head via one hop along key.
// Unknown (head,key) pairs yield the empty set.
// Complexity: O(1).
func (g *Graph) Reachable(head int, key RelationKey) NodeSet {
	if g == nil {
		return NodeSet{}
	}
	return wrap(g.reachable[headKey{head: head, key: key}])
}

// Relations returns every directed key present in the candidate index,
// sorted by relation label then direction (Forward first).
// Complexity: O(K log K).
func (g *Graph) Relations() []RelationKey {
	if g == nil {
		return []RelationKey{}
	}
	out := make([]RelationKey, 0, len(g.candidates))
	for k := range g.candidates {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Relation != out[j].Relation {
			return out[i].Relation < out[j].Relation
		}
		return out[i].Dir < out[j].Dir
	})
	return out
}

// Stats produces a snapshot of catalog sizes.
// Complexity: O(1).
func (g *Graph) Stats() *GraphStats {
	if g == nil {
		return &GraphStats{}
	}
	return &GraphStats{
		NodeCount:     len(g.nodes),
		EdgeCount:     len(g.edges),
		RelationCount: g.labels,
		KeyCount:      len(g.candidates),
		HeadKeyCount:  len(g.reachable),
	}
}
