// Package vocab applies a frequency cut-off to a triple list and writes the
// resulting entity and relation vocabularies.
//
// Counting: every triple adds one to its head, one to its tail (twice to
// the same entity for a self-loop) and one to its relation. Vocabulary
// entries are ranked by count descending, ties by key ascending, and stop
// at the first count below the minimum.
//
// Output files written by WriteDir:
//
//	entity.vocab    key<TAB>count, count with one decimal ("12.0")
//	relation.vocab  same format
//	train.txt       kept triples, head<TAB>relation<TAB>tail
package vocab

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/kbtool/triple"
)

// ErrBadMinimum is returned for a minimum count below 1.
var ErrBadMinimum = errors.New("vocab: minimum count must be ≥ 1")

// Options controls Cutoff.
type Options struct {
	MinEntity   int // keep entities counted at least this often
	MinRelation int // keep relations counted at least this often

	DedupBeforeCount bool // drop duplicate triples before counting
	DedupAfterCount  bool // drop duplicate triples after counting, before filtering
}

// DefaultOptions keeps everything and deduplicates nothing.
func DefaultOptions() Options {
	return Options{MinEntity: 1, MinRelation: 1}
}

// Entry is one vocabulary line.
type Entry struct {
	Key   string
	Count int
}

// Result is the outcome of Cutoff.
type Result struct {
	Entities  []Entry
	Relations []Entry
	Triples   []triple.Triple
}

// Cutoff counts ts and keeps the triples whose head, tail and relation all
// reach the configured minimums. Kept triples preserve input order, or
// sorted order when a dedup step ran.
//
// Errors:
//   - ErrBadMinimum if MinEntity or MinRelation < 1.
//
// Complexity:
//   - Time O(T log T) with dedup, O(T + V log V) otherwise.
func Cutoff(ts []triple.Triple, opts Options) (*Result, error) {
	if opts.MinEntity < 1 || opts.MinRelation < 1 {
		return nil, fmt.Errorf("Cutoff: min-ent=%d min-rel=%d: %w", opts.MinEntity, opts.MinRelation, ErrBadMinimum)
	}

	if opts.DedupBeforeCount {
		ts = triple.Dedup(ts)
	}

	ents := make(map[string]int)
	rels := make(map[string]int)
	for _, t := range ts {
		ents[t.Head]++
		ents[t.Tail]++
		rels[t.Relation]++
	}

	if opts.DedupAfterCount {
		ts = triple.Dedup(ts)
	}

	kept := make([]triple.Triple, 0, len(ts))
	for _, t := range ts {
		if ents[t.Head] >= opts.MinEntity && ents[t.Tail] >= opts.MinEntity && rels[t.Relation] >= opts.MinRelation {
			kept = append(kept, t)
		}
	}

	return &Result{
		Entities:  rank(ents, opts.MinEntity),
		Relations: rank(rels, opts.MinRelation),
		Triples:   kept,
	}, nil
}

// byFrequency orders entries by count descending, then key ascending.
func byFrequency(a, b interface{}) int {
	x, y := a.(Entry), b.(Entry)
	switch {
	case x.Count > y.Count:
		return -1
	case x.Count < y.Count:
		return 1
	case x.Key < y.Key:
		return -1
	case x.Key > y.Key:
		return 1
	}
	return 0
}

// rank returns the entries of counts with count ≥ min, most frequent first.
func rank(counts map[string]int, min int) []Entry {
	tree := redblacktree.Tree{Comparator: byFrequency}
	for k, c := range counts {
		if c >= min {
			tree.Put(Entry{Key: k, Count: c}, nil)
		}
	}

	out := make([]Entry, 0, tree.Size())
	it := tree.Iterator()
	for it.Next() {
		out = append(out, it.Key().(Entry))
	}
	return out
}
