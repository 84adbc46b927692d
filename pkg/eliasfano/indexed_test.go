package eliasfano

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildIndexed(t *testing.T, vals []int64, u uint64) *EliasFanoIndexedMonotoneLongBigList {
	t.Helper()

	idx, err := NewIndexedMonotoneLongBigList(u, len(vals), SliceIterator(vals))
	require.NoError(t, err)

	return idx
}

func naiveSuccessor(vals []int64, lowerBound int64) (int64, int64) {
	for i, v := range vals {
		if v >= lowerBound {
			return v, int64(i)
		}
	}

	return PositiveInfinity, NegativeInfinity
}

func naiveWeakPredecessor(vals []int64, upperBound int64) (int64, int64) {
	for i := len(vals) - 1; i >= 0; i-- {
		if vals[i] <= upperBound {
			return vals[i], int64(i)
		}
	}

	return NegativeInfinity, NegativeInfinity
}

func TestIndexed_FirstLastElement(t *testing.T) {
	t.Parallel()

	vals := []int64{0, 3, 7, 7, 15}
	idx := buildIndexed(t, vals, 16)

	require.Equal(t, int64(0), idx.FirstElement())
	require.Equal(t, int64(15), idx.LastElement())
}

func TestIndexed_Empty(t *testing.T) {
	t.Parallel()

	idx := buildIndexed(t, nil, 100)

	require.Equal(t, PositiveInfinity, idx.FirstElement())
	require.Equal(t, NegativeInfinity, idx.LastElement())

	res := idx.Successor(0)
	require.Equal(t, QueryResult{PositiveInfinity, NegativeInfinity}, res)

	res = idx.WeakPredecessor(0)
	require.Equal(t, QueryResult{NegativeInfinity, NegativeInfinity}, res)
}

func TestIndexed_SuccessorAndPredecessor_AgainstNaive(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(31))

	for trial := 0; trial < 40; trial++ {
		n := rng.Intn(60) + 1
		u := uint64(500)

		vals := make([]int64, n)

		var cur uint64

		for i := 0; i < n; i++ {
			cur += uint64(rng.Intn(10))
			if cur > u {
				cur = u
			}

			vals[i] = int64(cur)
		}

		idx := buildIndexed(t, vals, u)

		for q := int64(-5); q <= int64(u)+5; q += 3 {
			wantV, wantI := naiveSuccessor(vals, q)
			got := idx.Successor(q)
			require.Equal(t, wantV, got.Value, "trial %d successor(%d) value", trial, q)
			require.Equal(t, wantI, got.Index, "trial %d successor(%d) index", trial, q)

			wantV, wantI = naiveWeakPredecessor(vals, q)
			got = idx.WeakPredecessor(q)
			require.Equal(t, wantV, got.Value, "trial %d weakpred(%d) value", trial, q)
			require.Equal(t, wantI, got.Index, "trial %d weakpred(%d) index", trial, q)
		}
	}
}

func TestIndexed_StrictSuccessor_Derivation(t *testing.T) {
	t.Parallel()

	vals := []int64{1, 3, 3, 5, 9}
	idx := buildIndexed(t, vals, 20)

	require.Equal(t, QueryResult{3, 1}, idx.StrictSuccessor(1))
	require.Equal(t, QueryResult{5, 3}, idx.StrictSuccessor(3))
	require.Equal(t, QueryResult{PositiveInfinity, NegativeInfinity}, idx.StrictSuccessor(9))
}

func TestIndexed_Predecessor_Derivation(t *testing.T) {
	t.Parallel()

	vals := []int64{1, 3, 3, 5, 9}
	idx := buildIndexed(t, vals, 20)

	require.Equal(t, QueryResult{NegativeInfinity, NegativeInfinity}, idx.Predecessor(1))
	require.Equal(t, QueryResult{1, 0}, idx.Predecessor(3))
	require.Equal(t, QueryResult{5, 3}, idx.Predecessor(9))
}

func TestIndexed_IndexOfAndContains(t *testing.T) {
	t.Parallel()

	vals := []int64{2, 4, 4, 8, 16}
	idx := buildIndexed(t, vals, 20)

	require.True(t, idx.Contains(4))
	require.Equal(t, int64(1), idx.IndexOf(4))

	require.False(t, idx.Contains(5))
	require.Equal(t, NegativeInfinity, idx.IndexOf(5))
}

func TestIndexed_Get_MatchesSortedInput(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(41))

	raw := make([]int64, 100)
	for i := range raw {
		raw[i] = int64(rng.Intn(1000))
	}

	sort.Slice(raw, func(i, j int) bool { return raw[i] < raw[j] })

	idx := buildIndexed(t, raw, 1000)

	for i, want := range raw {
		require.Equal(t, want, idx.Get(i))
	}
}
