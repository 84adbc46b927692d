package eliasfano

import "math"

// PositiveInfinity is the "not found" sentinel returned by Successor and
// StrictSuccessor: the maximum representable 64-bit signed value.
const PositiveInfinity int64 = math.MaxInt64

// NegativeInfinity is the "not found" sentinel returned by Predecessor,
// WeakPredecessor, and IndexOf.
const NegativeInfinity int64 = -1

// QueryResult is the outcome of a predecessor/successor-family query: the
// value found (or a "not found" sentinel) and the index in the sequence
// that realized it (or -1 if the query found nothing).
//
// This is returned by value, rather than recorded on a shared mutable
// field, specifically so concurrent callers never race on query state.
type QueryResult struct {
	Value int64
	Index int64
}

// EliasFanoIndexedMonotoneLongBigList extends a monotone Elias-Fano list
// with predecessor, successor, index-of, and contains queries, answered
// in O(1) plus the cost of one select-zero operation via a select-zero
// index kept over the same upper-bits array as the base list.
//
// The base list and this extension share the upper-bits BitVector by
// reference (composition, not inheritance): this type owns a
// *EliasFanoMonotoneLongBigList and borrows its arrays for its own
// lifetime.
type EliasFanoIndexedMonotoneLongBigList struct {
	base       *EliasFanoMonotoneLongBigList
	selectZero *SimpleSelectZero

	firstElement int64
	lastElement  int64
}

// NewIndexedMonotoneLongBigList builds an
// EliasFanoIndexedMonotoneLongBigList from n values, each <= u.
func NewIndexedMonotoneLongBigList(u uint64, n int, values LongIterator) (*EliasFanoIndexedMonotoneLongBigList, error) {
	base, err := NewMonotoneLongBigList(n, u, values)
	if err != nil {
		return nil, err
	}

	return NewIndexedMonotoneFromBase(base), nil
}

// NewIndexedMonotoneFromBase wraps an already-built monotone list with
// predecessor/successor query support.
func NewIndexedMonotoneFromBase(base *EliasFanoMonotoneLongBigList) *EliasFanoIndexedMonotoneLongBigList {
	idx := &EliasFanoIndexedMonotoneLongBigList{
		base:       base,
		selectZero: NewSimpleSelectZero(base.UpperBits()),
	}

	if base.Len() == 0 {
		idx.firstElement = PositiveInfinity
		idx.lastElement = NegativeInfinity
	} else {
		idx.firstElement = int64(base.Get(0))
		idx.lastElement = int64(base.Get(base.Len() - 1))
	}

	return idx
}

// Len returns the number of elements in the sequence.
func (idx *EliasFanoIndexedMonotoneLongBigList) Len() int {
	return idx.base.Len()
}

// Get returns the i-th value. Behavior is undefined for out-of-range i.
func (idx *EliasFanoIndexedMonotoneLongBigList) Get(i int) int64 {
	return int64(idx.base.Get(i))
}

// FirstElement returns the smallest element, or PositiveInfinity if empty.
func (idx *EliasFanoIndexedMonotoneLongBigList) FirstElement() int64 {
	return idx.firstElement
}

// LastElement returns the largest element, or NegativeInfinity if empty.
func (idx *EliasFanoIndexedMonotoneLongBigList) LastElement() int64 {
	return idx.lastElement
}

// SpaceBits returns the total size, in bits, of the lower- and upper-bits
// arrays backing this sequence (not counting the select-zero index used by
// predecessor queries). Intended for benchmarking and diagnostics.
func (idx *EliasFanoIndexedMonotoneLongBigList) SpaceBits() int {
	return idx.base.SpaceBits()
}

// valueAt returns the value stored at index j, using a direct select-one
// lookup for j's upper-bits position (rather than raw word-at-a-time
// scanning).
func (idx *EliasFanoIndexedMonotoneLongBigList) valueAt(j uint64) uint64 {
	pos := idx.base.SelectUpper().Select(j)
	upper := pos - j
	low := idx.base.lowAt(int(j))

	return (upper << idx.base.Ell()) | low
}

// Successor returns the smallest value >= lowerBound, or
// {PositiveInfinity, -1} if none exists.
func (idx *EliasFanoIndexedMonotoneLongBigList) Successor(lowerBound int64) QueryResult {
	if idx.base.Len() == 0 || lowerBound > idx.lastElement {
		return QueryResult{PositiveInfinity, NegativeInfinity}
	}

	if lowerBound < 0 {
		lowerBound = 0
	}

	ell := idx.base.Ell()
	q := uint64(lowerBound) >> ell

	var pos uint64
	if q == 0 {
		pos = 0
	} else {
		pos = idx.selectZero.Select(q-1) + 1
	}

	j := pos - q

	for j < uint64(idx.base.Len()) {
		value := idx.valueAt(j)
		if value >= uint64(lowerBound) {
			return QueryResult{int64(value), int64(j)}
		}

		j++
	}

	return QueryResult{PositiveInfinity, NegativeInfinity}
}

// StrictSuccessor returns the smallest value > lowerBound, or
// {PositiveInfinity, -1} if none exists.
func (idx *EliasFanoIndexedMonotoneLongBigList) StrictSuccessor(lowerBound int64) QueryResult {
	if idx.base.Len() == 0 || lowerBound >= idx.lastElement {
		return QueryResult{PositiveInfinity, NegativeInfinity}
	}

	if lowerBound == math.MaxInt64 {
		return QueryResult{PositiveInfinity, NegativeInfinity}
	}

	return idx.Successor(lowerBound + 1)
}

// WeakPredecessor returns the largest value <= upperBound, or
// {NegativeInfinity, -1} if none exists.
func (idx *EliasFanoIndexedMonotoneLongBigList) WeakPredecessor(upperBound int64) QueryResult {
	if idx.base.Len() == 0 || upperBound < idx.firstElement {
		return QueryResult{NegativeInfinity, NegativeInfinity}
	}

	if upperBound >= idx.lastElement {
		return QueryResult{idx.lastElement, int64(idx.base.Len() - 1)}
	}

	ell := idx.base.Ell()
	mask := idx.base.LowerBitsMask()
	q := uint64(upperBound) >> ell

	pos := idx.selectZero.Select(q) - 1
	r := pos - q

	if ell > 0 {
		for idx.base.UpperBits().BitAt(pos) && idx.base.lowAt(int(r)) > uint64(upperBound)&mask {
			r--
			pos--
		}
	}

	value := idx.valueAt(r)

	return QueryResult{int64(value), int64(r)}
}

// Predecessor returns the largest value < upperBound, or
// {NegativeInfinity, -1} if none exists.
func (idx *EliasFanoIndexedMonotoneLongBigList) Predecessor(upperBound int64) QueryResult {
	if upperBound <= 0 {
		return QueryResult{NegativeInfinity, NegativeInfinity}
	}

	return idx.WeakPredecessor(upperBound - 1)
}

// IndexOf returns the index of the first occurrence of x, or -1 if x is
// not present.
func (idx *EliasFanoIndexedMonotoneLongBigList) IndexOf(x int64) int64 {
	res := idx.Successor(x)
	if res.Value == x {
		return res.Index
	}

	return NegativeInfinity
}

// Contains reports whether x is present in the sequence.
func (idx *EliasFanoIndexedMonotoneLongBigList) Contains(x int64) bool {
	return idx.Successor(x).Value == x
}
