// SPDX-License-Identifier: MIT
// Package: kbtool/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn   ("0","1","2",...)
//   • rng       = nil           (pure/deterministic unless seeded)
//   • relations = ["r"]

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Entity label strategy: index -> label.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Relation labels; never empty after newBuilderConfig.
	relations []string
}

// newBuilderConfig applies options in order (last wins) over the defaults.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		rng:       nil,
		relations: []string{DefaultRelation},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// relationAt returns the round-robin relation label for the i-th edge.
func (c builderConfig) relationAt(i int) string {
	return c.relations[i%len(c.relations)]
}

// randomRelation draws a relation label from c.rng.
// With a single label the RNG is not consumed.
func (c builderConfig) randomRelation() string {
	if len(c.relations) == 1 {
		return c.relations[0]
	}
	return c.relations[c.rng.Intn(len(c.relations))]
}
