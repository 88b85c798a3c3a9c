// Package negative draws corrupted tail entities ("negatives") for sampled
// walks, for contrastive training.
//
// Every policy has the Policy signature
//
//	func(g *core.Graph, p *walk.Path, rng *rand.Rand) (string, error)
//
// and is a pure function of its arguments: the graph is never mutated and
// all randomness comes from rng. With h the start node, K the last directed
// relation and T the true tail of p:
//
//	Exact    Candidates(K) \ {T}; empty ⇒ any node of the graph (may be T).
//	Uniform  any node except T, drawn without rejection.
//	NearMiss Candidates(K) \ Reachable(h,K) \ {T}; empty ⇒ Uniform.
//	Traced   Candidates(K) \ ReachableAlong(h, p.Keys) \ {T}; empty ⇒ Uniform.
//
// NearMiss encodes one-hop reachability only. On a path longer than one step
// it still runs, with the weaker guarantee that the negative is not a direct
// K-neighbour of h. Traced follows the whole relation sequence of the path
// and excludes every node that sequence can actually reach.
//
// A zero-length path has no relation, so Exact, NearMiss and Traced draw as
// Uniform. On a single-node graph Uniform has nothing to exclude against and
// returns the only node.
//
// Fallbacks are policy, never errors. Errors are reserved for invalid state:
// nil graph, empty graph, nil path, a path whose ids do not belong to the
// graph, and a nil random source.
package negative
