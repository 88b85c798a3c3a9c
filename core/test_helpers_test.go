// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for kbtool/core.
//
// Purpose:
//   - Provide small, deterministic triple fixtures for core.Graph.
//   - Keep label lookups in one place so assertions read by entity name.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kbtool/core"
	"github.com/katalvlaran/kbtool/triple"
)

// Common entity and relation labels used across core tests.
const (
	EntA = "A"
	EntB = "B"
	EntC = "C"
	EntD = "D"

	Rel1 = "r1"
	Rel2 = "r2"
	Rel3 = "r3"
)

// cycle3 is the 3-cycle A→B→C→A with three distinct relations.
func cycle3() []triple.Triple {
	return []triple.Triple{
		triple.New(EntA, Rel1, EntB),
		triple.New(EntB, Rel2, EntC),
		triple.New(EntC, Rel3, EntA),
	}
}

// fanOut is A and D both pointing at B and C through r1, plus D→A via r2:
//
//	A -r1-> B, A -r1-> C, D -r1-> B, D -r2-> A
func fanOut() []triple.Triple {
	return []triple.Triple{
		triple.New(EntA, Rel1, EntB),
		triple.New(EntA, Rel1, EntC),
		triple.New(EntD, Rel1, EntB),
		triple.New(EntD, Rel2, EntA),
	}
}

// mustID resolves label or fails the test.
func mustID(t *testing.T, g *core.Graph, label string) int {
	t.Helper()
	id, ok := g.NodeID(label)
	require.True(t, ok, "label %q not indexed", label)
	return id
}

// ids resolves labels to ids in the given order.
func ids(t *testing.T, g *core.Graph, labels ...string) []int {
	t.Helper()
	out := make([]int, len(labels))
	for i, l := range labels {
		out[i] = mustID(t, g, l)
	}
	return out
}
