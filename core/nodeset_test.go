package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kbtool/core"
)

func TestNodeSet_ZeroValue(t *testing.T) {
	t.Parallel()

	var s core.NodeSet
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(0))
	assert.Equal(t, []int{}, s.IDs())
	_, ok := s.At(0)
	assert.False(t, ok)
	_, ok = s.Pick(rand.New(rand.NewSource(1)))
	assert.False(t, ok)
	assert.True(t, s.SubsetOf(core.NodeSet{}))
	assert.True(t, s.Without(core.NewNodeSet(1)).IsEmpty())
	assert.Equal(t, []int{1}, s.Union(core.NewNodeSet(1)).IDs())
}

func TestNodeSet_Algebra(t *testing.T) {
	t.Parallel()

	s := core.NewNodeSet(5, 1, 3, -2, 3)
	require.Equal(t, []int{1, 3, 5}, s.IDs())

	v, ok := s.At(1)
	require.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = s.At(3)
	assert.False(t, ok)

	assert.Equal(t, []int{1, 5}, s.WithoutID(3).IDs())
	assert.Equal(t, []int{1, 3, 5}, s.IDs(), "WithoutID must not mutate the receiver")
	assert.Equal(t, []int{5}, s.Without(core.NewNodeSet(1, 3, 9)).IDs())
	assert.Equal(t, []int{1, 2, 3, 5}, s.Union(core.NewNodeSet(2)).IDs())

	assert.True(t, core.NewNodeSet(1, 5).SubsetOf(s))
	assert.False(t, core.NewNodeSet(1, 2).SubsetOf(s))
	assert.False(t, s.SubsetOf(core.NodeSet{}))
}

func TestNodeSet_PickUniform(t *testing.T) {
	t.Parallel()

	s := core.NewNodeSet(2, 4, 6, 8)
	rng := rand.New(rand.NewSource(99))
	counts := map[int]int{}
	const trials = 8000
	for i := 0; i < trials; i++ {
		v, ok := s.Pick(rng)
		require.True(t, ok)
		counts[v]++
	}
	require.Len(t, counts, 4)
	for v, c := range counts {
		assert.InDelta(t, trials/4, c, trials/20, "member %d", v)
	}
}
