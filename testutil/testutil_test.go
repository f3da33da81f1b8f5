package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	assert.Equal(t, a.Seed(), b.Seed())
	assert.Equal(t, a.DupUint64s(64, 16), b.DupUint64s(64, 16))
	assert.Equal(t, a.DupInts(64, 16), b.DupInts(64, 16))
	assert.Equal(t, a.Perm(10), b.Perm(10))
}

func TestRNGReset(t *testing.T) {
	r := NewRNG(7)
	first := r.DupUint64s(32, 8)

	r.Reset()
	assert.Equal(t, first, r.DupUint64s(32, 8))
}

func TestDupKeysInSpace(t *testing.T) {
	r := NewRNG(1)

	keys := r.DupUint64s(256, 16)
	require.Len(t, keys, 256)
	seen := make(map[uint64]int)
	for _, k := range keys {
		require.Less(t, k, uint64(16))
		seen[k]++
	}
	// 256 draws from 16 values must collide.
	assert.Less(t, len(seen), 256)

	ints := r.DupInts(256, 16)
	for _, k := range ints {
		require.GreaterOrEqual(t, k, 0)
		require.Less(t, k, 16)
	}
}

func TestShuffle(t *testing.T) {
	r := NewRNG(3)

	s := []int{0, 1, 2, 3, 4, 5, 6, 7}
	r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })

	require.Len(t, s, 8)
	seen := make(map[int]bool, 8)
	for _, v := range s {
		seen[v] = true
	}
	assert.Len(t, seen, 8)
}
