// SPDX-License-Identifier: MIT
// Package: kbtool/sampler
//
// sampler.go - Sampler construction and single-record sampling.

package sampler

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/kbtool/core"
	"github.com/katalvlaran/kbtool/negative"
	"github.com/katalvlaran/kbtool/triple"
	"github.com/katalvlaran/kbtool/walk"
)

// Sentinel errors for the sampler.
var (
	// ErrNoPolicy is returned by SamplePathWithNegative when the sampler was
	// configured with PolicyNone.
	ErrNoPolicy = errors.New("sampler: no negative policy configured")

	// ErrBadCount is returned by Batch for a negative record count.
	ErrBadCount = errors.New("sampler: record count must be ≥ 0")
)

// Record is one training example.
type Record struct {
	Path *walk.Path
	// Negative is the corrupted tail label, empty when no policy ran.
	Negative string
}

// String renders the path tokens and, if present, the negative, tab-separated.
func (r Record) String() string {
	if r.Negative == "" {
		return r.Path.String()
	}
	return r.Path.String() + "\t" + r.Negative
}

// Sampler draws paths and negatives from one immutable graph.
type Sampler struct {
	g      *core.Graph
	size   int
	cfg    config
	policy negative.Policy // nil for PolicyNone

	mu sync.Mutex // guards cfg.rng
}

// New indexes ts and returns a Sampler over it.
//
// An empty ts is accepted; sampling then fails with core.ErrEmptyGraph.
//
// Errors:
//   - negative.ErrUnknownPolicy for a bad WithPolicy name.
func New(ts []triple.Triple, opts ...Option) (*Sampler, error) {
	cfg := newConfig(opts...)

	var policy negative.Policy
	if cfg.policy != PolicyNone {
		p, err := negative.Lookup(cfg.policy)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		policy = p
	}

	g := core.FromTriples(ts)
	st := g.Stats()
	cfg.logger.Info("graph loaded",
		"triples", len(ts), "nodes", st.NodeCount, "edges", st.EdgeCount, "relations", st.RelationCount)
	if cfg.policy == negative.NameNearMiss && cfg.longestPath() > 1 {
		cfg.logger.Warn("near-miss negatives only exclude one-hop neighbours of the head",
			"max_path_len", cfg.longestPath())
	}

	return &Sampler{g: g, size: len(ts), cfg: cfg, policy: policy}, nil
}

// Open reads a triple file (field order from WithOrder) and calls New.
func Open(path string, opts ...Option) (*Sampler, error) {
	cfg := newConfig(opts...)
	ts, err := triple.ReadFile(path, cfg.order)
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}
	return New(ts, opts...)
}

// DataSize returns the number of input triples, duplicates included.
func (s *Sampler) DataSize() int { return s.size }

// Graph returns the underlying index.
func (s *Sampler) Graph() *core.Graph { return s.g }

// PathLength draws one path length from the configured distribution.
func (s *Sampler) PathLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.pathLength(s.cfg.rng)
}

// SamplePath draws a length, then one walk of that length.
func (s *Sampler) SamplePath() (*walk.Path, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.samplePath(s.cfg.rng)
}

// SamplePathWithNegative draws one walk and one negative with the configured
// policy.
func (s *Sampler) SamplePathWithNegative() (Record, error) {
	if s.policy == nil {
		return Record{}, fmt.Errorf("SamplePathWithNegative: %w", ErrNoPolicy)
	}
	return s.SamplePathWithNegativeBy(s.policy)
}

// SamplePathWithNegativeBy draws one walk and one negative with policy.
func (s *Sampler) SamplePathWithNegativeBy(policy negative.Policy) (Record, error) {
	if policy == nil {
		return Record{}, fmt.Errorf("SamplePathWithNegativeBy: %w", ErrNoPolicy)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(s.cfg.rng, policy)
}

func (s *Sampler) samplePath(rng *rand.Rand) (*walk.Path, error) {
	return walk.SamplePath(s.g, s.cfg.pathLength(rng), rng,
		walk.WithSuffixes(s.cfg.fwdSuffix, s.cfg.bwdSuffix))
}

// record samples one path and, when policy is non-nil, its negative.
func (s *Sampler) record(rng *rand.Rand, policy negative.Policy) (Record, error) {
	p, err := s.samplePath(rng)
	if err != nil {
		return Record{}, err
	}
	if policy == nil {
		return Record{Path: p}, nil
	}
	neg, err := policy(s.g, p, rng)
	if err != nil {
		return Record{}, err
	}
	return Record{Path: p, Negative: neg}, nil
}
