// SPDX-License-Identifier: MIT
// Package: kbtool/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub label is CenterVertexID; leaves are cfg.idFn(1..n-1).
//   • Emits (Center, rel_{i-1}, leaf_i) for i=1..n-1.
//
// Determinism:
//   • Deterministic emission order by increasing leaf index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kbtool/triple"
)

// Star returns a Constructor that emits a hub with n-1 outgoing spokes.
func Star(n int) Constructor {
	return func(ts []triple.Triple, cfg builderConfig) ([]triple.Triple, error) {
		if n < MinStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		for i := 1; i < n; i++ {
			ts = append(ts, triple.New(CenterVertexID, cfg.relationAt(i-1), cfg.idFn(i)))
		}

		return ts, nil
	}
}
