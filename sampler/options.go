// SPDX-License-Identifier: MIT
// Package: kbtool/sampler
//
// options.go - functional options for Sampler.
//
// Contract:
//   • Option constructors PANIC on meaningless inputs (nil rng, negative
//     lengths, NaN mean). Policy names are validated by New, since they
//     usually come from user input.
//   • Defaults: seed 0, mean 1.5, max 1, "::-->" / "::<--", policy exact.

package sampler

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/kbtool/core"
	"github.com/katalvlaran/kbtool/negative"
	"github.com/katalvlaran/kbtool/triple"
)

// Defaults for the path-length distribution.
const (
	DefaultSeed        int64   = 0
	DefaultMeanPathLen float64 = 1.5
	DefaultMaxPathLen  int     = 1
)

// PolicyNone disables negatives in Batch.
const PolicyNone = "none"

// Option customizes a Sampler.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	mean      float64
	maxLen    int
	fixedLen  int // < 0: draw from the distribution
	fwdSuffix string
	bwdSuffix string
	policy    string
	order     triple.Order
	logger    *log.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		rng:       rand.New(rand.NewSource(DefaultSeed)),
		mean:      DefaultMeanPathLen,
		maxLen:    DefaultMaxPathLen,
		fixedLen:  -1,
		fwdSuffix: core.DefaultForwardSuffix,
		bwdSuffix: core.DefaultBackwardSuffix,
		policy:    negative.NameExact,
		order:     triple.HRT,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed seeds a fresh random stream.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand hands the sampler an existing stream. The sampler takes
// ownership: the caller must not draw from r concurrently.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithMeanPathLen sets the Poisson mean of the length distribution.
// Panics if mean is negative, NaN or infinite.
func WithMeanPathLen(mean float64) Option {
	if mean < 0 || math.IsNaN(mean) || math.IsInf(mean, 0) {
		panic("sampler: WithMeanPathLen: mean must be finite and ≥ 0")
	}
	return func(c *config) {
		c.mean = mean
	}
}

// WithMaxPathLen caps the drawn path length. Panics if n < 0.
func WithMaxPathLen(n int) Option {
	if n < 0 {
		panic("sampler: WithMaxPathLen: n must be ≥ 0")
	}
	return func(c *config) {
		c.maxLen = n
	}
}

// WithFixedPathLen makes every path exactly n steps long, ignoring the
// distribution. Panics if n < 0.
func WithFixedPathLen(n int) Option {
	if n < 0 {
		panic("sampler: WithFixedPathLen: n must be ≥ 0")
	}
	return func(c *config) {
		c.fixedLen = n
	}
}

// WithSuffixes sets the forward/backward relation suffixes.
// Panics if they are equal.
func WithSuffixes(fwd, bwd string) Option {
	if fwd == bwd {
		panic("sampler: WithSuffixes: forward and backward suffixes must differ")
	}
	return func(c *config) {
		c.fwdSuffix = fwd
		c.bwdSuffix = bwd
	}
}

// WithPolicy selects the negative policy by name (see negative.Names) or
// PolicyNone.
func WithPolicy(name string) Option {
	return func(c *config) {
		c.policy = name
	}
}

// WithOrder sets the field order used by Open. Default HRT.
func WithOrder(o triple.Order) Option {
	return func(c *config) {
		c.order = o
	}
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("sampler: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// longestPath returns the largest length the config can produce.
func (c config) longestPath() int {
	if c.fixedLen >= 0 {
		return c.fixedLen
	}
	return c.maxLen
}
