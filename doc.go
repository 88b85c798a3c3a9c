// Package kbtool turns knowledge-graph triples into training data for
// relational-path models: bounded random walks over the triple multigraph,
// plus corrupted ("negative") tail entities for contrastive training.
//
// What is in the box?
//
//	triple/   - Triple, tab-separated reading/writing (HRT or HTR), sorted dedup
//	core/     - immutable graph index with roaring-bitmap reachability sets
//	walk/     - backtrack-avoiding random walks, rendered as token sequences
//	negative/ - Exact, Uniform, NearMiss and Traced negative-tail policies
//	sampler/  - Poisson path lengths, seeded streams, parallel Batch
//	vocab/    - frequency cut-off and vocabulary files
//	builder/  - seeded synthetic triple sets for tests and benchmarks
//	pybind/   - the kb_tool module for the embedded Python interpreter
//	cmd/kbtool - CLI: cutoff, sample-path, synth, py
//
// Data flow:
//
//	triples ──► core.FromTriples ──► { walk.SamplePath, negative.* }
//	                                   ▲ caller-owned *rand.Rand per call
//
// Guarantees
//
//   - Determinism – every random choice comes from an explicit *rand.Rand;
//     a fixed seed and call sequence reproduce the same output.
//   - Immutability – the graph index is never mutated after construction and
//     is shared by concurrent samplers without locks.
//   - Soft fallbacks – negative policies degrade to Uniform instead of failing
//     when their candidate set is empty.
//
// Quick start:
//
//	ts, _ := triple.ReadFile("train.txt", triple.HRT)
//	g := core.FromTriples(ts)
//	rng := rand.New(rand.NewSource(42))
//	p, _ := walk.SamplePath(g, 2, rng)
//	neg, _ := negative.NearMiss(g, p, rng)
//	fmt.Println(p, neg)
package kbtool
