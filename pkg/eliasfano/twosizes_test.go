package eliasfano

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTwoSizes_BoundaryScenario(t *testing.T) {
	t.Parallel()

	// boundary scenario: four small values and one large outlier, with
	// the cost-optimal threshold at s=1.
	vals := []int64{1, 1, 1, 1, 1000}

	l, err := NewTwoSizesLongBigList(vals)
	require.NoError(t, err)
	require.Equal(t, len(vals), l.Len())

	for i, want := range vals {
		require.Equal(t, want, l.Get(i), "index %d", i)
	}
}

func TestTwoSizes_RoundTrip_Random(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(81))

	for trial := 0; trial < 60; trial++ {
		n := rng.Intn(200)

		vals := make([]int64, n)
		for i := range vals {
			if rng.Intn(20) == 0 {
				vals[i] = int64(rng.Intn(1 << 20))
			} else {
				vals[i] = int64(rng.Intn(8))
			}
		}

		l, err := NewTwoSizesLongBigList(vals)
		require.NoError(t, err, "trial %d", trial)

		for i, want := range vals {
			require.Equal(t, want, l.Get(i), "trial %d index %d", trial, i)
		}
	}
}

func TestTwoSizes_AllEqualWidth_Degenerate(t *testing.T) {
	t.Parallel()

	vals := []int64{4, 5, 7, 6, 5}

	l, err := NewTwoSizesLongBigList(vals)
	require.NoError(t, err)
	require.Nil(t, l.marker, "expected the single fixed-width layout")

	for i, want := range vals {
		require.Equal(t, want, l.Get(i), "index %d", i)
	}
}

func TestTwoSizes_AllZero(t *testing.T) {
	t.Parallel()

	vals := []int64{0, 0, 0, 0}

	l, err := NewTwoSizesLongBigList(vals)
	require.NoError(t, err)

	for i := range vals {
		require.Equal(t, int64(0), l.Get(i))
	}
}

func TestTwoSizes_Empty(t *testing.T) {
	t.Parallel()

	l, err := NewTwoSizesLongBigList(nil)
	require.NoError(t, err)
	require.Equal(t, 0, l.Len())
}

func TestTwoSizes_RejectsNegative(t *testing.T) {
	t.Parallel()

	_, err := NewTwoSizesLongBigList([]int64{1, -2, 3})
	require.ErrorIs(t, err, ErrInvalidInput)
}
