// SPDX-License-Identifier: MIT
// Package: kbtool/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the entity-label generator: idx -> label.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRelations sets the relation labels. Deterministic constructors assign
// them round-robin in edge order; RandomSparse draws them from the RNG.
// Panics when names is empty or contains an empty label.
func WithRelations(names ...string) BuilderOption {
	if len(names) == 0 {
		panic("builder: WithRelations()")
	}
	for _, n := range names {
		if n == "" {
			panic("builder: WithRelations(\"\")")
		}
	}
	rels := append([]string(nil), names...)
	return func(c *builderConfig) {
		c.relations = rels
	}
}
