// SPDX-License-Identifier: MIT
// Package: kbtool/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits triples in stable order (i, rel_i, (i+1)%n) for i=0..n-1.
//   • rel_i is the round-robin relation for edge i.
//
// Complexity:
//   • Time: O(n). Space: O(n) triples.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kbtool/triple"
)

// Cycle returns a Constructor that emits an n-node directed ring.
func Cycle(n int) Constructor {
	return func(ts []triple.Triple, cfg builderConfig) ([]triple.Triple, error) {
		if n < MinCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		// Ring step i -> (i+1)%n closes back on 0 at i == n-1.
		for i := 0; i < n; i++ {
			ts = append(ts, triple.New(cfg.idFn(i), cfg.relationAt(i), cfg.idFn((i+1)%n)))
		}

		return ts, nil
	}
}
