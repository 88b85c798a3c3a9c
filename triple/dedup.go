package triple

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// Compare orders triples by head, then relation, then tail.
func Compare(a, b Triple) int {
	if c := strings.Compare(a.Head, b.Head); c != 0 {
		return c
	}
	if c := strings.Compare(a.Relation, b.Relation); c != 0 {
		return c
	}
	return strings.Compare(a.Tail, b.Tail)
}

// comparator adapts Compare to the gods comparator signature.
func comparator(a, b interface{}) int {
	return Compare(a.(Triple), b.(Triple))
}

// Dedup returns the distinct triples of ts in ascending Compare order.
// The input slice is left untouched.
func Dedup(ts []Triple) []Triple {
	set := treeset.NewWith(comparator)
	for _, t := range ts {
		set.Add(t)
	}

	out := make([]Triple, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(Triple))
	}
	return out
}
