// SPDX-License-Identifier: MIT
// Package: kbtool/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits (i, rel_i, i+1) for i=0..n-2 in ascending i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kbtool/triple"
)

// Path returns a Constructor that emits an n-node directed chain.
func Path(n int) Constructor {
	return func(ts []triple.Triple, cfg builderConfig) ([]triple.Triple, error) {
		if n < MinPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n-1; i++ {
			ts = append(ts, triple.New(cfg.idFn(i), cfg.relationAt(i), cfg.idFn(i+1)))
		}

		return ts, nil
	}
}
