// SPDX-License-Identifier: MIT
// Package: kbtool/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits one triple per unordered pair {i,j}, oriented i -> j with i < j,
//     in lexicographic (i asc, j asc) order: n(n-1)/2 triples.
//   • Relations round-robin over the emission index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kbtool/triple"
)

// Complete returns a Constructor that emits the complete graph K_n.
func Complete(n int) Constructor {
	return func(ts []triple.Triple, cfg builderConfig) ([]triple.Triple, error) {
		if n < MinCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		k := 0 // emission index for round-robin relations
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				ts = append(ts, triple.New(cfg.idFn(i), cfg.relationAt(k), cfg.idFn(j)))
				k++
			}
		}

		return ts, nil
	}
}
