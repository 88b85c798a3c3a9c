// Package builder produces deterministic synthetic triple sets in the
// “functional-options” style: a Constructor closure appends triples for one
// topology, BuilderOptions resolve into an immutable builderConfig, and Build
// runs constructors in order.
//
// The generated triples feed core.FromTriples in tests, benchmarks, examples
// and `kbtool synth`, so fixtures never depend on files on disk.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   entity-label scheme, relation labels, RNG.
//   - Entity-label schemes (IDFn implementations):
//     – DefaultIDFn:      decimal strings ("0","1",…).
//     – SymbolIDFn:       single letters ("A","B",…).
//     – ExcelColumnIDFn:  Excel-style columns ("A","Z","AA",…).
//     – PrefixIDFn:       prefix + decimal ("e0","e1",…).
//   - Topologies (Constructor factories):
//     – Cycle, Path, Star, Complete: deterministic, relations round-robin.
//     – RandomSparse: Erdős–Rényi-like, relations drawn from the RNG.
//
// Guarantees:
//
//   - Same options, same seed, same constructor order ⇒ identical triples.
//   - Fast-fail on invalid option values via panics in option constructors.
//   - Runtime parameter errors are wrapped sentinels (errors.Is friendly).
//
// Nodes exist in a triple set only as endpoints, so a topology vertex without
// incident edges (possible in RandomSparse) does not appear in the graph.
package builder
