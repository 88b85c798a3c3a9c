// SPDX-License-Identifier: MIT
// Package: kbtool/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w: "Cycle: n=2 < min=3: <sentinel>".
//   • Constructors never panic at runtime; option constructors (WithX) do
//     panic on meaningless values.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum of
// the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error at the Build boundary,
// such as a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
