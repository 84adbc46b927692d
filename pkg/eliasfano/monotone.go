package eliasfano

import (
	"fmt"
	"math/bits"
)

// LongIterator is a finite source of 64-bit values, matching the
// hasNext/nextLong input protocol consumed by the monotone and
// EliasFanoLongBigList constructors. The monotone constructors reject
// negative values; NewLongBigList accepts any value >= its lower bound.
type LongIterator interface {
	HasNext() bool
	Next() int64
}

// sliceIterator adapts a []int64 to LongIterator.
type sliceIterator struct {
	vals []int64
	pos  int
}

// SliceIterator returns a LongIterator over vals.
func SliceIterator(vals []int64) LongIterator {
	return &sliceIterator{vals: vals}
}

func (it *sliceIterator) HasNext() bool { return it.pos < len(it.vals) }

func (it *sliceIterator) Next() int64 {
	v := it.vals[it.pos]
	it.pos++

	return v
}

// EliasFanoMonotoneLongBigList stores a non-decreasing sequence of
// non-negative integers in (2 + ceil(log(u/n))) bits per element: each
// value is split into ell low bits, packed contiguously, and a quotient
// that is unary-encoded (with an offset) into a bit vector indexed by
// select-one.
type EliasFanoMonotoneLongBigList struct {
	n             int
	u             uint64
	ell           uint
	lowerBits     *BitVector
	upperBits     *BitVector
	selectUpper   *SimpleSelect
	lowerBitsMask uint64
}

// ellFor computes ell = max(0, floor(log2(u/n))), with log2(0) taken to
// be 0.
func ellFor(n int, u uint64) uint {
	if n == 0 {
		return 0
	}

	uq := u / uint64(n)
	if uq == 0 {
		return 0
	}

	return uint(bits.Len64(uq) - 1)
}

// NewMonotoneLongBigList builds an EliasFanoMonotoneLongBigList from n
// values, each <= u, read off values in order. Returns ErrInvalidInput if
// any value decreases relative to its predecessor or exceeds u.
func NewMonotoneLongBigList(n int, u uint64, values LongIterator) (*EliasFanoMonotoneLongBigList, error) {
	ell := ellFor(n, u)

	var upperLen uint64
	if n > 0 {
		upperLen = uint64(n) + (u >> ell) + 1
	}

	l := &EliasFanoMonotoneLongBigList{
		n:             n,
		u:             u,
		ell:           ell,
		lowerBits:     NewBitVectorWithBitCapacity(uint64(n) * uint64(ell)),
		upperBits:     NewBitVectorWithBitCapacity(upperLen),
		lowerBitsMask: lowerMask(ell),
	}

	var prev uint64

	var prevUpperPos uint64

	for i := 0; i < n; i++ {
		if !values.HasNext() {
			return nil, fmt.Errorf("%w: fewer than n=%d values supplied", ErrInvalidInput, n)
		}

		raw := values.Next()
		if raw < 0 {
			return nil, fmt.Errorf("%w: negative value %d", ErrInvalidInput, raw)
		}

		v := uint64(raw)
		if v > u {
			return nil, fmt.Errorf("%w: value %d exceeds upper bound %d", ErrInvalidInput, v, u)
		}

		if i > 0 && v < prev {
			return nil, fmt.Errorf("%w: value %d at index %d is less than predecessor %d", ErrInvalidInput, v, i, prev)
		}

		low := v & l.lowerBitsMask
		if ell > 0 {
			l.lowerBits.Append(low, int(ell))
		}

		upperPos := (v >> ell) + uint64(i)
		if i == 0 {
			l.upperBits.AppendZeros(upperPos)
		} else {
			l.upperBits.AppendZeros(upperPos - prevUpperPos - 1)
		}

		l.upperBits.Append(1, 1)

		prev = v
		prevUpperPos = upperPos
	}

	if l.upperBits.Len() > upperLen {
		return nil, fmt.Errorf("%w: upper-bits length %d exceeds capacity %d", ErrCapacityExceeded, l.upperBits.Len(), upperLen)
	}

	l.upperBits.AppendZeros(upperLen - l.upperBits.Len())
	l.upperBits.Trim()
	l.lowerBits.Trim()

	l.selectUpper = NewSimpleSelect(l.upperBits)

	return l, nil
}

// lowerMask returns (1<<ell)-1, handling ell==0 and ell==64.
func lowerMask(ell uint) uint64 {
	if ell == 0 {
		return 0
	}

	if ell >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << ell) - 1
}

// Len returns the number of elements in the sequence.
func (l *EliasFanoMonotoneLongBigList) Len() int {
	return l.n
}

// SpaceBits returns the total size, in bits, of the lower- and upper-bits
// arrays backing this sequence. Intended for benchmarking and diagnostics.
func (l *EliasFanoMonotoneLongBigList) SpaceBits() int {
	return int(l.lowerBits.Len() + l.upperBits.Len())
}

// UpperBits returns the upper-bits BitVector, shared by reference with
// any indexed extension built on top of this list.
func (l *EliasFanoMonotoneLongBigList) UpperBits() *BitVector {
	return l.upperBits
}

// SelectUpper returns the select-one index over the upper bits.
func (l *EliasFanoMonotoneLongBigList) SelectUpper() *SimpleSelect {
	return l.selectUpper
}

// Ell returns the number of low bits used per element.
func (l *EliasFanoMonotoneLongBigList) Ell() uint {
	return l.ell
}

// LowerBitsMask returns (1<<Ell())-1.
func (l *EliasFanoMonotoneLongBigList) LowerBitsMask() uint64 {
	return l.lowerBitsMask
}

// lowAt returns the raw ell-bit low part stored for index i.
func (l *EliasFanoMonotoneLongBigList) lowAt(i int) uint64 {
	if l.ell == 0 {
		return 0
	}

	from := uint64(i) * uint64(l.ell)

	return l.lowerBits.GetBits(from, from+uint64(l.ell))
}

// Get returns the i-th value, for i in [0, Len()). Behavior is undefined
// (panics, via the underlying slice/bit accesses) for out-of-range i.
func (l *EliasFanoMonotoneLongBigList) Get(i int) uint64 {
	pos := l.selectUpper.Select(uint64(i))
	upper := pos - uint64(i)
	low := l.lowAt(i)

	return (upper << l.ell) | low
}
