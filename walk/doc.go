// Package walk samples bounded-length random walks over a core.Graph.
//
// What
//
//   - SamplePath draws a start node uniformly, then takes L steps. Each step
//     chooses uniformly among the current node's incident edges (outgoing
//     first, then incoming) after removing the edge just traversed, unless
//     that edge is the only one available.
//   - The result is a *Path: the rendered Tokens (node, relation+suffix,
//     node, …, node; exactly 2L+1 entries) plus the structured Nodes, Edges
//     and directed Keys the tokens were rendered from.
//
// Why the structured fields
//
//	Negative sampling needs the start node, the final directed relation and
//	the true tail. Carrying them as ids avoids re-parsing suffixed strings,
//	and keeps labels that happen to contain a suffix unambiguous.
//
// Determinism
//
//	Every random choice is drawn from the caller's *rand.Rand in a fixed
//	order: one Intn for the start node, then one Intn per step. A fixed seed
//	and call sequence reproduce the same walk.
//
// Backtrack avoidance
//
//	The walk is not self-avoiding. The only bias is that the previous edge is
//	skipped while an alternative exists. A self-loop is listed once in each
//	partition and both copies are skipped. Only when the previous edge is the
//	sole incident edge (degree 1, or a lone self-loop) does the walk retrace it.
//
// Complexity
//
//   - Time:   O(L · d_max) per walk (candidate list copy per step).
//   - Memory: O(L + d_max).
//
// Errors
//
//	core.ErrGraphNil     - nil graph.
//	core.ErrEmptyGraph   - graph has no nodes.
//	ErrNegativeLength    - L < 0.
//	ErrNeedRandSource    - nil *rand.Rand.
//	ErrDeadEnd           - the walk reached a node without incident edges.
package walk
