// File: types.go
// Role: Node, Edge, Direction, RelationKey, Graph and the sentinel errors.
// Construction lives in build.go, read-only queries in api.go.

package core

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sentinel errors for graph index operations.
var (
	// ErrGraphNil indicates that a nil *Graph was handed to an operation.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrEmptyGraph indicates a sampling request on a graph with zero nodes.
	ErrEmptyGraph = errors.New("core: graph is empty")

	// ErrNodeNotFound indicates an operation referenced a node id out of range.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge id out of range.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Suffixes appended to relation labels when a walk renders its tokens.
const (
	// DefaultForwardSuffix marks an edge traversed from source to destination.
	DefaultForwardSuffix = "::-->"

	// DefaultBackwardSuffix marks an edge traversed from destination to source.
	DefaultBackwardSuffix = "::<--"
)

// Node is an entity of the graph.
//
// ID is dense and assigned in first-seen order; EdgesFwd lists the ids of
// edges leaving the node, EdgesRev the ids of edges entering it, both in
// triple order.
type Node struct {
	// ID is the dense node identifier (index into the node array).
	ID int

	// Label is the original entity string.
	Label string

	// EdgesFwd holds ids of edges whose source is this node.
	EdgesFwd []int

	// EdgesRev holds ids of edges whose destination is this node.
	EdgesRev []int
}

// Degree returns the total number of incident edge slots (forward + reverse).
// A self-loop counts twice, once in each list.
func (n Node) Degree() int { return len(n.EdgesFwd) + len(n.EdgesRev) }

// Edge is one triple, stored as a directed edge Src → Dst.
type Edge struct {
	// ID is the dense edge identifier (= position of the triple in the input).
	ID int

	// Src is the head node id.
	Src int

	// Dst is the tail node id.
	Dst int

	// Label is the relation string.
	Label string
}

// Direction tells whether an edge is traversed along (Forward) or against
// (Backward) its stored orientation.
type Direction uint8

const (
	// Forward traverses Src → Dst.
	Forward Direction = iota
	// Backward traverses Dst → Src.
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// RelationKey is a relation label combined with a traversal direction.
// Keys for the two directions of one label are distinct values, so the
// forward and backward namespaces of every index are disjoint.
type RelationKey struct {
	Relation string
	Dir      Direction
}

// Fwd returns the forward key of relation.
func Fwd(relation string) RelationKey { return RelationKey{Relation: relation, Dir: Forward} }

// Bwd returns the backward key of relation.
func Bwd(relation string) RelationKey { return RelationKey{Relation: relation, Dir: Backward} }

// Token renders k as a path token: the relation label followed by the suffix
// matching its direction.
func (k RelationKey) Token(fwdSuffix, bwdSuffix string) string {
	if k.Dir == Backward {
		return k.Relation + bwdSuffix
	}
	return k.Relation + fwdSuffix
}

// String renders k with the default suffixes.
func (k RelationKey) String() string {
	return k.Token(DefaultForwardSuffix, DefaultBackwardSuffix)
}

// headKey addresses one entry of the per-head reachability index.
type headKey struct {
	head int
	key  RelationKey
}

// Graph is the immutable graph index.
//
// It owns the label→id map, the dense node and edge arrays, and the two
// reachability indices. Nothing mutates a Graph once FromTriples returns,
// so there is no lock: concurrent readers are safe by construction.
type Graph struct {
	// Storage
	nodeIDs map[string]int // label → node id, first writer wins
	nodes   []Node         // indexed by node id
	edges   []Edge         // indexed by edge id

	// candidates[key] = every node that is a target of key somewhere.
	candidates map[RelationKey]*roaring.Bitmap

	// reachable[(head,key)] = nodes reachable from head via key.
	reachable map[headKey]*roaring.Bitmap

	labels int // number of distinct relation labels
}
