// Package sampler is the host-level path sampler: it owns one graph index,
// one seeded random stream, a path-length distribution and a negative policy.
//
// Path length
//
//	L = min(Poisson(mean) + 1, max)
//
// with mean from WithMeanPathLen (default 1.5) and max from WithMaxPathLen
// (default 1). WithFixedPathLen bypasses the distribution.
//
// Usage
//
//	s, err := sampler.Open("train.txt", sampler.WithSeed(42), sampler.WithMaxPathLen(3))
//	rec, err := s.SamplePathWithNegative()
//	recs, err := s.Batch(ctx, 10000, runtime.NumCPU())
//
// Concurrency
//
//	A Sampler guards its random stream with a mutex, so single-record calls
//	are safe from several goroutines (their interleaving is then not
//	deterministic). Batch draws one seed per record from the stream, then
//	runs the workers over fixed index ranges, reseeding before each record,
//	so its output depends only on the sampler state and n.
//
// Logging
//
//	Optional, through WithLogger (github.com/charmbracelet/log). The sampler
//	reports the loaded graph, batch progress, and warns when the near-miss
//	policy is combined with paths longer than one step.
package sampler
