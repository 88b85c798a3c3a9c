// SPDX-License-Identifier: MIT
// Package: kbtool/negative
//
// policies.go - the four corruption policies.
//
// RNG usage (one draw per call, fixed order):
//   • Uniform:  Intn(N-1), none when N == 1.
//   • Exact:    Intn(|set|), or Intn(N) on fallback.
//   • NearMiss: Intn(|set|), or Uniform's draw on fallback.
//   • Traced:   Intn(|set|), or Uniform's draw on fallback.

package negative

import (
	"math/rand"

	"github.com/katalvlaran/kbtool/core"
	"github.com/katalvlaran/kbtool/walk"
)

// Exact picks a node that is a target of the path's final directed relation
// somewhere in the graph, other than the true tail.
//
// When no such node exists it picks from the whole graph, which may return
// the true tail. A zero-length path draws as Uniform.
//
// Complexity: O(|Candidates(K)|) for the set copy, O(log) select.
func Exact(g *core.Graph, p *walk.Path, rng *rand.Rand) (string, error) {
	if err := validate("Exact", g, p, rng); err != nil {
		return "", err
	}
	key, ok := p.LastKey()
	if !ok {
		return uniform(g, p.Tail(), rng), nil
	}

	if id, ok := g.Candidates(key).WithoutID(p.Tail()).Pick(rng); ok {
		return g.Label(id), nil
	}
	return g.Label(rng.Intn(g.NodeCount())), nil
}

// Uniform picks uniformly among all nodes except the true tail.
//
// Implementation:
//   - Draw i in [0, N-1) and shift it past the tail: i ≥ T ⇒ i+1.
//     No rejection loop, exactly one draw.
//
// A single-node graph returns its only node without drawing.
func Uniform(g *core.Graph, p *walk.Path, rng *rand.Rand) (string, error) {
	if err := validate("Uniform", g, p, rng); err != nil {
		return "", err
	}
	return uniform(g, p.Tail(), rng), nil
}

func uniform(g *core.Graph, tail int, rng *rand.Rand) string {
	n := g.NodeCount()
	if n == 1 {
		return g.Label(0)
	}
	i := rng.Intn(n - 1)
	if i >= tail {
		i++
	}
	return g.Label(i)
}

// NearMiss picks a type-plausible filler of the final relation K that is not
// reachable from the path's head via K and is not the true tail:
//
//	Candidates(K) \ Reachable(h,K) \ {T}
//
// Falls back to Uniform when that set is empty. Sound for one-step paths.
func NearMiss(g *core.Graph, p *walk.Path, rng *rand.Rand) (string, error) {
	if err := validate("NearMiss", g, p, rng); err != nil {
		return "", err
	}
	key, ok := p.LastKey()
	if !ok {
		return uniform(g, p.Tail(), rng), nil
	}

	set := g.Candidates(key).Without(g.Reachable(p.Head(), key)).WithoutID(p.Tail())
	if id, ok := set.Pick(rng); ok {
		return g.Label(id), nil
	}
	return uniform(g, p.Tail(), rng), nil
}

// Traced excludes every node reachable from the head by following the
// path's full directed relation sequence:
//
//	Candidates(K) \ ReachableAlong(h, keys) \ {T}
//
// Falls back to Uniform when that set is empty. For one-step paths it agrees
// with NearMiss.
func Traced(g *core.Graph, p *walk.Path, rng *rand.Rand) (string, error) {
	if err := validate("Traced", g, p, rng); err != nil {
		return "", err
	}
	key, ok := p.LastKey()
	if !ok {
		return uniform(g, p.Tail(), rng), nil
	}

	reach, err := g.ReachableAlong(p.Head(), p.Keys)
	if err != nil {
		return "", err
	}
	set := g.Candidates(key).Without(reach).WithoutID(p.Tail())
	if id, ok := set.Pick(rng); ok {
		return g.Label(id), nil
	}
	return uniform(g, p.Tail(), rng), nil
}
