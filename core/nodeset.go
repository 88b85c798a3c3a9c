// File: nodeset.go
// Role: Read-only set of node ids backed by a roaring bitmap.
//
// Determinism:
//   - IDs() and At(i) enumerate members in ascending id order.
//
// Concurrency:
//   - A NodeSet never mutates its bitmap after creation; set algebra returns
//     fresh values. Safe to share across goroutines.

package core

import (
	"math/rand"

	"github.com/RoaringBitmap/roaring/v2"
)

// NodeSet is an immutable set of node ids. The zero value is the empty set.
type NodeSet struct {
	bm *roaring.Bitmap
}

// NewNodeSet returns the set holding ids. Negative ids are ignored.
func NewNodeSet(ids ...int) NodeSet {
	bm := roaring.New()
	for _, id := range ids {
		if id >= 0 {
			bm.Add(uint32(id))
		}
	}
	return NodeSet{bm: bm}
}

// wrap adopts bm without copying; callers must not mutate bm afterwards.
func wrap(bm *roaring.Bitmap) NodeSet { return NodeSet{bm: bm} }

// Len returns the number of ids in the set.
func (s NodeSet) Len() int {
	if s.bm == nil {
		return 0
	}
	return int(s.bm.GetCardinality())
}

// IsEmpty reports whether the set has no members.
func (s NodeSet) IsEmpty() bool { return s.bm == nil || s.bm.IsEmpty() }

// Contains reports whether id is a member.
func (s NodeSet) Contains(id int) bool {
	if s.bm == nil || id < 0 {
		return false
	}
	return s.bm.Contains(uint32(id))
}

// At returns the i-th smallest member (0-based).
// The second result is false when i is out of range.
func (s NodeSet) At(i int) (int, bool) {
	if s.bm == nil || i < 0 || i >= s.Len() {
		return 0, false
	}
	v, err := s.bm.Select(uint32(i))
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// IDs returns the members in ascending order as a fresh slice.
func (s NodeSet) IDs() []int {
	if s.bm == nil {
		return []int{}
	}
	out := make([]int, 0, s.Len())
	it := s.bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Without returns s \ other.
func (s NodeSet) Without(other NodeSet) NodeSet {
	if s.bm == nil {
		return NodeSet{}
	}
	if other.bm == nil {
		return wrap(s.bm.Clone())
	}
	return wrap(roaring.AndNot(s.bm, other.bm))
}

// WithoutID returns s \ {id}.
func (s NodeSet) WithoutID(id int) NodeSet {
	if s.bm == nil {
		return NodeSet{}
	}
	bm := s.bm.Clone()
	if id >= 0 {
		bm.Remove(uint32(id))
	}
	return wrap(bm)
}

// Union returns s ∪ other.
func (s NodeSet) Union(other NodeSet) NodeSet {
	switch {
	case s.bm == nil && other.bm == nil:
		return NodeSet{}
	case s.bm == nil:
		return wrap(other.bm.Clone())
	case other.bm == nil:
		return wrap(s.bm.Clone())
	}
	return wrap(roaring.Or(s.bm, other.bm))
}

// SubsetOf reports whether every member of s is also in other.
func (s NodeSet) SubsetOf(other NodeSet) bool {
	if s.IsEmpty() {
		return true
	}
	if other.bm == nil {
		return false
	}
	return roaring.AndNot(s.bm, other.bm).IsEmpty()
}

// Pick draws one member uniformly at random using rng.
// The second result is false for the empty set; rng is not consumed then.
func (s NodeSet) Pick(rng *rand.Rand) (int, bool) {
	n := s.Len()
	if n == 0 {
		return 0, false
	}
	return s.At(rng.Intn(n))
}
