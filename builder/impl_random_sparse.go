// SPDX-License-Identifier: MIT
// Package: kbtool/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over ordered pairs (i,j), i≠j: each pair is
//     emitted independently with probability p.
//   - The relation of an emitted pair is drawn from cfg.rng among
//     cfg.relations (no draw when there is a single relation).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 or when several relations must
//     be drawn (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, then j asc.
//   - Deterministic outcomes for fixed seed/options.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kbtool/triple"
)

// RandomSparse returns a Constructor that samples a sparse random multigraph
// over n potential entities with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(ts []triple.Triple, cfg builderConfig) ([]triple.Triple, error) {
		// 1) Validate parameters early (fail fast).
		if n < MinRandomSparseNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		stochastic := p > MinProbability && p < MaxProbability
		if cfg.rng == nil && (stochastic || (p > 0 && len(cfg.relations) > 1)) {
			return nil, fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		if p == MinProbability {
			return ts, nil
		}

		// 2) Bernoulli trial per ordered pair, stable order.
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if stochastic && cfg.rng.Float64() >= p {
					continue
				}
				ts = append(ts, triple.New(u, cfg.randomRelation(), cfg.idFn(j)))
			}
		}

		return ts, nil
	}
}
