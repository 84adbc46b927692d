package eliasfano

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonotoneLongBigList_BoundaryScenario(t *testing.T) {
	t.Parallel()

	// boundary scenario: a run with a repeated value below the maximum.
	vals := []int64{0, 3, 7, 7, 15}

	l, err := NewMonotoneLongBigList(len(vals), 16, SliceIterator(vals))
	require.NoError(t, err)
	require.Equal(t, len(vals), l.Len())

	for i, want := range vals {
		require.Equal(t, uint64(want), l.Get(i), "index %d", i)
	}
}

func TestMonotoneLongBigList_RoundTrip_Random(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(21))

	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(200)
		u := uint64(rng.Intn(1 << 20))

		vals := make([]int64, n)

		var cur uint64

		for i := 0; i < n; i++ {
			if u > 0 {
				cur += uint64(rng.Intn(int(u/uint64(n+1) + 1)))
			}

			if cur > u {
				cur = u
			}

			vals[i] = int64(cur)
		}

		l, err := NewMonotoneLongBigList(n, u, SliceIterator(vals))
		require.NoError(t, err, "trial %d", trial)

		for i, want := range vals {
			require.Equal(t, uint64(want), l.Get(i), "trial %d index %d", trial, i)
		}
	}
}

func TestMonotoneLongBigList_Empty(t *testing.T) {
	t.Parallel()

	l, err := NewMonotoneLongBigList(0, 1000, SliceIterator(nil))
	require.NoError(t, err)
	require.Equal(t, 0, l.Len())
}

func TestMonotoneLongBigList_RejectsDecreasing(t *testing.T) {
	t.Parallel()

	_, err := NewMonotoneLongBigList(3, 10, SliceIterator([]int64{1, 5, 2}))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMonotoneLongBigList_RejectsNegative(t *testing.T) {
	t.Parallel()

	_, err := NewMonotoneLongBigList(2, 10, SliceIterator([]int64{-1, 2}))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMonotoneLongBigList_RejectsExceedsUpperBound(t *testing.T) {
	t.Parallel()

	_, err := NewMonotoneLongBigList(1, 10, SliceIterator([]int64{11}))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMonotoneLongBigList_AllEqual(t *testing.T) {
	t.Parallel()

	vals := []int64{5, 5, 5, 5, 5}

	l, err := NewMonotoneLongBigList(len(vals), 5, SliceIterator(vals))
	require.NoError(t, err)

	for i := range vals {
		require.Equal(t, uint64(5), l.Get(i))
	}
}
