// Package model holds naive, obviously-correct reference implementations of
// the query semantics the eliasfano package answers succinctly, for use as
// fuzz/property-test oracles rather than in any production path.
package model

// MonotoneModel is a plain, non-succinct stand-in for a monotone sequence,
// answering every query by linear scan.
type MonotoneModel struct {
	Values []int64
}

// Get returns the i-th value.
func (m MonotoneModel) Get(i int) int64 {
	return m.Values[i]
}

// Len returns the number of values.
func (m MonotoneModel) Len() int {
	return len(m.Values)
}

// Successor returns the smallest value >= lowerBound and its index, or
// (positiveInfinity, -1) if none exists.
func (m MonotoneModel) Successor(lowerBound, positiveInfinity int64) (int64, int64) {
	for i, v := range m.Values {
		if v >= lowerBound {
			return v, int64(i)
		}
	}

	return positiveInfinity, -1
}

// StrictSuccessor returns the smallest value > lowerBound and its index, or
// (positiveInfinity, -1) if none exists.
func (m MonotoneModel) StrictSuccessor(lowerBound, positiveInfinity int64) (int64, int64) {
	for i, v := range m.Values {
		if v > lowerBound {
			return v, int64(i)
		}
	}

	return positiveInfinity, -1
}

// WeakPredecessor returns the largest value <= upperBound and its index, or
// (negativeInfinity, -1) if none exists.
func (m MonotoneModel) WeakPredecessor(upperBound, negativeInfinity int64) (int64, int64) {
	for i := len(m.Values) - 1; i >= 0; i-- {
		if m.Values[i] <= upperBound {
			return m.Values[i], int64(i)
		}
	}

	return negativeInfinity, -1
}

// Predecessor returns the largest value < upperBound and its index, or
// (negativeInfinity, -1) if none exists.
func (m MonotoneModel) Predecessor(upperBound, negativeInfinity int64) (int64, int64) {
	for i := len(m.Values) - 1; i >= 0; i-- {
		if m.Values[i] < upperBound {
			return m.Values[i], int64(i)
		}
	}

	return negativeInfinity, -1
}

// IndexOf returns the index of the first occurrence of x, or -1.
func (m MonotoneModel) IndexOf(x int64) int64 {
	for i, v := range m.Values {
		if v == x {
			return int64(i)
		}
	}

	return -1
}

// ArbitraryModel is a plain stand-in for an arbitrary (non-monotone)
// sequence of integers.
type ArbitraryModel struct {
	Values []int64
}

// Get returns the i-th value.
func (m ArbitraryModel) Get(i int) int64 {
	return m.Values[i]
}

// GetRange returns length consecutive values starting at startIndex.
func (m ArbitraryModel) GetRange(startIndex, length int) []int64 {
	out := make([]int64, length)
	copy(out, m.Values[startIndex:startIndex+length])

	return out
}
