// SPDX-License-Identifier: MIT
// Package: kbtool/walk
//
// walk.go - SamplePath and its step selection.
//
// Contract:
//   • Exactly 2L+1 tokens, starting and ending with a node label.
//   • RNG draws: Intn(N) for the start, then Intn(len(candidates)) per step.
//   • Backtrack filter never empties a non-empty candidate list.

package walk

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/kbtool/core"
)

const methodSamplePath = "SamplePath"

// walker holds per-call state.
type walker struct {
	g    *core.Graph
	rng  *rand.Rand
	opts options
	path *Path
}

// SamplePath draws one random walk of length L from g.
//
// Implementation:
//   - Stage 1: Validate inputs and resolve options.
//   - Stage 2: Pick the start node uniformly among all nodes.
//   - Stage 3: Repeat L times: build the candidate edge list of the current
//     node, drop the previous edge if an alternative exists, pick uniformly,
//     move to the far endpoint and emit the suffixed relation and node label.
//
// Returns:
//   - *Path with Tokens/Nodes/Edges/Keys filled; never a partial path.
//
// Errors:
//   - core.ErrGraphNil, core.ErrEmptyGraph, ErrNegativeLength,
//     ErrNeedRandSource, ErrDeadEnd (all wrapped, match with errors.Is).
//
// Complexity:
//   - Time O(L · d_max), Space O(L + d_max).
func SamplePath(g *core.Graph, L int, rng *rand.Rand, opts ...Option) (*Path, error) {
	// Stage 1: validation.
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodSamplePath, core.ErrGraphNil)
	}
	if g.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", methodSamplePath, core.ErrEmptyGraph)
	}
	if L < 0 {
		return nil, fmt.Errorf("%s: L=%d: %w", methodSamplePath, L, ErrNegativeLength)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodSamplePath, ErrNeedRandSource)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		g:    g,
		rng:  rng,
		opts: o,
		path: &Path{
			Tokens: make([]string, 0, 2*L+1),
			Nodes:  make([]int, 0, L+1),
			Edges:  make([]int, 0, L),
			Keys:   make([]core.RelationKey, 0, L),
		},
	}

	// Stage 2: start node.
	cur := rng.Intn(g.NodeCount())
	w.visit(cur)

	// Stage 3: steps.
	prev := -1
	for step := 0; step < L; step++ {
		eid, dir, err := w.selectEdge(cur, prev)
		if err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", methodSamplePath, step, err)
		}
		e, err := g.Edge(eid)
		if err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", methodSamplePath, step, err)
		}
		key := core.RelationKey{Relation: e.Label, Dir: dir}
		if dir == core.Forward {
			cur = e.Dst
		} else {
			cur = e.Src
		}
		w.path.Edges = append(w.path.Edges, eid)
		w.path.Keys = append(w.path.Keys, key)
		w.path.Tokens = append(w.path.Tokens, key.Token(o.fwdSuffix, o.bwdSuffix))
		w.visit(cur)
		prev = eid
	}

	return w.path, nil
}

// visit appends node id and its label.
func (w *walker) visit(id int) {
	w.path.Nodes = append(w.path.Nodes, id)
	w.path.Tokens = append(w.path.Tokens, w.g.Label(id))
}

// selectEdge picks one incident edge of node `from`, avoiding prev (an edge
// id, or -1 on the first step) when more than one candidate exists.
// The direction is Forward when the chosen position precedes the boundary.
func (w *walker) selectEdge(from, prev int) (int, core.Direction, error) {
	cands, boundary, err := w.g.IncidentEdges(from)
	if err != nil {
		return 0, core.Forward, err
	}
	if len(cands) == 0 {
		return 0, core.Forward, fmt.Errorf("node %d: %w", from, ErrDeadEnd)
	}

	// A self-loop sits in both partitions, so every copy of prev goes.
	// When prev is the only incident edge the walk has to retrace it.
	if prev >= 0 && len(cands) > 1 {
		kept := cands[:0]
		cut := boundary
		for i, eid := range cands {
			if eid == prev {
				if i < boundary {
					cut--
				}
				continue
			}
			kept = append(kept, eid)
		}
		if len(kept) > 0 {
			cands, boundary = kept, cut
		} else {
			cands, boundary = cands[:1], min(boundary, 1)
		}
	}

	i := w.rng.Intn(len(cands))
	if i < boundary {
		return cands[i], core.Forward, nil
	}
	return cands[i], core.Backward, nil
}
