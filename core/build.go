// SPDX-License-Identifier: MIT
// Package: kbtool/core
//
// build.go - one-shot construction of the graph index from triples.
//
// Contract:
//   • Construction never fails; field validation belongs to the triple parser.
//   • Node ids follow first appearance (head before tail within a triple).
//   • Edge id == index of the triple in the input.
//   • Rebuilding from the same sequence yields identical ids (idempotent).
//
// Complexity:
//   • Time: O(V + E) map/bitmap insertions.
//   • Space: O(V + E) for arrays, plus one bitmap entry per distinct
//     (key,target) and per distinct (head,key,target).

package core

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/kbtool/triple"
)

// FromTriples builds the Graph induced by ts.
//
// Implementation:
//   - Stage 1: Scan ts in order; intern head and tail labels, append the edge,
//     register its id in the head's EdgesFwd and the tail's EdgesRev.
//   - Stage 2: Walk every node's incidence lists; forward edges feed the
//     Forward key of their relation, reverse edges the Backward key, into
//     both the candidate index and the per-head reachability index.
//
// An empty ts yields a zero-node graph; samplers report ErrEmptyGraph on it.
func FromTriples(ts []triple.Triple) *Graph {
	g := &Graph{
		nodeIDs:    make(map[string]int),
		nodes:      make([]Node, 0),
		edges:      make([]Edge, 0, len(ts)),
		candidates: make(map[RelationKey]*roaring.Bitmap),
		reachable:  make(map[headKey]*roaring.Bitmap),
	}

	// Stage 1: dense arrays and incidence lists.
	relations := make(map[string]struct{})
	for _, t := range ts {
		i := g.intern(t.Head)
		j := g.intern(t.Tail)
		eid := len(g.edges)
		g.nodes[i].EdgesFwd = append(g.nodes[i].EdgesFwd, eid)
		g.nodes[j].EdgesRev = append(g.nodes[j].EdgesRev, eid)
		g.edges = append(g.edges, Edge{ID: eid, Src: i, Dst: j, Label: t.Relation})
		relations[t.Relation] = struct{}{}
	}
	g.labels = len(relations)

	// Stage 2: derived indices, node by node in id order.
	var e Edge
	for nid := range g.nodes {
		for _, eid := range g.nodes[nid].EdgesFwd {
			e = g.edges[eid]
			g.record(Fwd(e.Label), e.Src, e.Dst)
		}
		for _, eid := range g.nodes[nid].EdgesRev {
			e = g.edges[eid]
			g.record(Bwd(e.Label), e.Dst, e.Src)
		}
	}

	for _, bm := range g.candidates {
		bm.RunOptimize()
	}

	return g
}

// intern returns the id of label, allocating the next dense id on first sight.
// An existing mapping is never overwritten.
func (g *Graph) intern(label string) int {
	if id, ok := g.nodeIDs[label]; ok {
		return id
	}
	id := len(g.nodes)
	g.nodeIDs[label] = id
	g.nodes = append(g.nodes, Node{ID: id, Label: label})
	return id
}

// record notes that target is reached from head via key, in both indices.
func (g *Graph) record(key RelationKey, head, target int) {
	cand, ok := g.candidates[key]
	if !ok {
		cand = roaring.New()
		g.candidates[key] = cand
	}
	cand.Add(uint32(target))

	hk := headKey{head: head, key: key}
	reach, ok := g.reachable[hk]
	if !ok {
		reach = roaring.New()
		g.reachable[hk] = reach
	}
	reach.Add(uint32(target))
}
