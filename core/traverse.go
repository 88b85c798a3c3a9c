package core

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// ReachableAlong returns the nodes reached from head by following keys in
// order, one hop per key, through the per-head reachability index.
//
// The traversal is level-synchronous: the frontier after step i is the union
// of Reachable(h, keys[i]) over every h in the frontier after step i-1. An
// empty key list returns {head}. Once the frontier empties it stays empty.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrNodeNotFound if head is out of range.
//
// Complexity:
//   - Time O(Σ_i |frontier_i| · bitmap-or), Space O(V) for the frontier.
func (g *Graph) ReachableAlong(head int, keys []RelationKey) (NodeSet, error) {
	if g == nil {
		return NodeSet{}, fmt.Errorf("ReachableAlong(%d): %w", head, ErrGraphNil)
	}
	if !g.HasNode(head) {
		return NodeSet{}, fmt.Errorf("ReachableAlong(%d): %w", head, ErrNodeNotFound)
	}

	frontier := roaring.New()
	frontier.Add(uint32(head))
	for _, k := range keys {
		next := roaring.New()
		it := frontier.Iterator()
		for it.HasNext() {
			if bm, ok := g.reachable[headKey{head: int(it.Next()), key: k}]; ok {
				next.Or(bm)
			}
		}
		frontier = next
		if frontier.IsEmpty() {
			break
		}
	}

	return wrap(frontier), nil
}
