// SPDX-License-Identifier: MIT
// Package: kbtool/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order.
//   - All public factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical triples.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kbtool/triple"
)

// Constructor appends the triples of one topology to ts and returns the
// extended slice. Constructors MUST:
//   - Validate parameters early and return wrapped sentinels (no panics).
//   - Emit triples in a stable, documented order.
//   - Label entities through cfg.idFn (except documented fixed labels).
type Constructor func(ts []triple.Triple, cfg builderConfig) ([]triple.Triple, error)

// Build resolves the builder configuration from bopts and applies all
// constructors in order, concatenating their triples.
// Any constructor error is wrapped with "Build: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func Build(bopts []BuilderOption, cons ...Constructor) ([]triple.Triple, error) {
	cfg := newBuilderConfig(bopts...)

	var (
		ts  []triple.Triple
		err error
	)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if ts, err = fn(ts, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	if ts == nil {
		ts = []triple.Triple{}
	}

	return ts, nil
}
