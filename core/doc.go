// Package core provides the immutable in-memory graph index that path and
// negative sampling run against.
//
// The Graph G = (V,E) is the multigraph induced by an ordered sequence of
// (head, relation, tail) triples:
//
//   - Dense node ids: assigned in first-seen order while scanning triples
//     (head before tail within a triple). Ids are contiguous from 0.
//   - Dense edge ids: the position of the triple in the input sequence.
//   - Per-node incidence lists: EdgesFwd (node is the source) and EdgesRev
//     (node is the destination), both in insertion order.
//   - Two derived reachability indices, keyed by directed relation
//     (RelationKey = relation label + Forward/Backward):
//     candidates[key]       - every node that is ever a target of key,
//     reachable[(head,key)] - the nodes reachable from head via key.
//
// Why roaring bitmaps for the indices?
//
//   - Set difference (candidates \ reachable \ {tail}) is a single AndNot.
//   - Iteration order is ascending by id, so a uniform draw by rank is
//     deterministic for a fixed seed (Go map iteration would not be).
//   - Memory stays proportional to the number of distinct (head,key,node)
//     facts; there is no O(V²) per-relation matrix.
//
// Lifecycle:
//
//	g := core.FromTriples(ts) // build once, O(V+E)
//	g.Candidates(key)         // read-only NodeSet
//	g.Reachable(head, key)    // read-only NodeSet
//
// No mutation API exists after FromTriples returns, so a *Graph may be shared
// by any number of goroutines without locking. Randomness never lives here:
// samplers take a caller-owned *rand.Rand.
//
// Core Methods:
//
//	FromTriples(ts []triple.Triple) *Graph       // O(V+E)
//	NodeCount() int / EdgeCount() int             // O(1)
//	Node(id int) (Node, error)                    // O(deg)
//	Edge(id int) (Edge, error)                    // O(1)
//	NodeID(label string) (int, bool)              // O(1)
//	Label(id int) string                          // O(1)
//	IncidentEdges(id int) ([]int, int, error)     // O(deg), fresh slice + boundary
//	Candidates(key RelationKey) NodeSet           // O(1)
//	Reachable(head int, key RelationKey) NodeSet  // O(1)
//	ReachableAlong(head int, keys []RelationKey)  // O(Σ frontier sizes)
//	Relations() []RelationKey                     // O(K log K), sorted
//	Stats() *GraphStats                           // O(1)
//
// Errors:
//
//	ErrGraphNil      – nil *Graph passed to a sampler
//	ErrEmptyGraph    – sampling requested on a zero-node graph
//	ErrNodeNotFound  – node id out of range
//	ErrEdgeNotFound  – edge id out of range
package core
