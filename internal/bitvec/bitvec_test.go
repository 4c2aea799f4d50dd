package bitvec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveRank(set []bool, i int) int32 {
	n := int32(0)
	for _, b := range set[:i] {
		if b {
			n++
		}
	}
	return n
}

func buildRandom(t *testing.T, length int, density float64, seed int64) (*Vector, []bool) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	v := New(length)
	set := make([]bool, length)
	for i := range set {
		if rng.Float64() < density {
			set[i] = true
			v.Set(i)
		}
	}
	v.Freeze()
	return v, set
}

func TestRankSelectAgainstNaive(t *testing.T) {
	for _, density := range []float64{0.01, 0.5, 0.95} {
		v, set := buildRandom(t, 1000, density, 42)

		ones := naiveRank(set, len(set))
		require.Equal(t, ones, v.Ones())

		for i := 0; i <= len(set); i++ {
			require.Equal(t, naiveRank(set, i), v.Rank1(int32(i)), "rank at %d", i)
		}

		k := int32(0)
		for i, b := range set {
			assert.Equal(t, b, v.Test(i))
			if b {
				k++
				require.Equal(t, int32(i), v.Select1(k), "select of %d", k)
			}
		}
	}
}

func TestRankSelectWordBoundaries(t *testing.T) {
	v := New(256)
	for _, i := range []int{0, 63, 64, 127, 128, 255} {
		v.Set(i)
	}
	v.Freeze()

	require.Equal(t, int32(6), v.Ones())
	assert.Equal(t, int32(0), v.Select1(1))
	assert.Equal(t, int32(63), v.Select1(2))
	assert.Equal(t, int32(64), v.Select1(3))
	assert.Equal(t, int32(255), v.Select1(6))
	assert.Equal(t, int32(1), v.Rank1(1))
	assert.Equal(t, int32(2), v.Rank1(64))
	assert.Equal(t, int32(3), v.Rank1(65))
	assert.Equal(t, int32(6), v.Rank1(256))
}

func TestSelectAcrossSparseWords(t *testing.T) {
	// force select scans that start several words before the target
	v := New(64 * 100)
	v.Set(0)
	v.Set(64*99 + 17)
	v.Freeze()
	assert.Equal(t, int32(0), v.Select1(1))
	assert.Equal(t, int32(64*99+17), v.Select1(2))
}

func TestFrozenVectorPanics(t *testing.T) {
	v := New(10)
	v.Set(3)
	v.Freeze()
	assert.Panics(t, func() { v.Set(4) })
	assert.Panics(t, func() { v.Select1(0) })
	assert.Panics(t, func() { v.Select1(2) })
}

func TestOutOfRangeTest(t *testing.T) {
	v := New(10)
	assert.False(t, v.Test(-1))
	assert.False(t, v.Test(10))
}
