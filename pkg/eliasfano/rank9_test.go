package eliasfano

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveRank(bv *BitVector, i uint64) uint64 {
	var c uint64
	for p := uint64(0); p < i; p++ {
		if bv.BitAt(p) {
			c++
		}
	}

	return c
}

func TestRank9_AgainstNaive(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))

	sizes := []int{0, 1, 63, 64, 65, 511, 512, 513, 1000, 4096, 4097}

	for _, size := range sizes {
		bv := NewBitVector()

		for i := 0; i < size; i++ {
			if rng.Intn(3) == 0 {
				bv.Append(1, 1)
			} else {
				bv.Append(0, 1)
			}
		}

		r9 := NewRank9(bv)

		for i := uint64(0); i <= uint64(size); i++ {
			assert.Equal(t, naiveRank(bv, i), r9.Rank(i), "size %d, i %d", size, i)
		}
	}
}

func TestRank9_AllZeros(t *testing.T) {
	t.Parallel()

	bv := NewBitVector()
	bv.AppendZeros(1000)

	r9 := NewRank9(bv)

	require.Equal(t, uint64(0), r9.Rank(0))
	require.Equal(t, uint64(0), r9.Rank(500))
	require.Equal(t, uint64(0), r9.Rank(1000))
}

func TestRank9_AllOnes(t *testing.T) {
	t.Parallel()

	bv := NewBitVector()
	for i := 0; i < 1000; i++ {
		bv.Append(1, 1)
	}

	r9 := NewRank9(bv)

	require.Equal(t, uint64(0), r9.Rank(0))
	require.Equal(t, uint64(500), r9.Rank(500))
	require.Equal(t, uint64(1000), r9.Rank(1000))
}
