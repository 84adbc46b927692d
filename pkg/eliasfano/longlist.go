package eliasfano

import (
	"fmt"
	"math/bits"

	"github.com/vigna/eliasfano/pkg/eliasfano/internal/offline"
)

// EliasFanoLongBigList stores an arbitrary (not necessarily monotone)
// sequence of non-negative integers. Each value is shifted by an offset
// so that its "width" (most significant bit index) is well defined, the
// leading bit is left implicit, and the remaining bits are packed
// contiguously; the cumulative bit offsets ("borders") of each element
// are themselves stored as a monotone Elias-Fano list.
type EliasFanoLongBigList struct {
	bits    *BitVector
	borders *EliasFanoMonotoneLongBigList
	offset  int64
	n       int
}

// NewLongBigList builds an EliasFanoLongBigList from values, each of
// which must be >= lowerBound. lowerBound may be negative.
func NewLongBigList(lowerBound int64, values LongIterator) (*EliasFanoLongBigList, error) {
	offset := 1 - lowerBound

	bitsVec := NewBitVector()

	borders := []uint64{0}

	var running uint64

	n := 0

	for values.HasNext() {
		v := values.Next()
		if v < lowerBound {
			return nil, fmt.Errorf("%w: value %d below lower bound %d", ErrInvalidInput, v, lowerBound)
		}

		shifted := v + offset
		if shifted <= 0 {
			return nil, fmt.Errorf("%w: shifted value for %d overflows the positive 63-bit range", ErrInvalidInput, v)
		}

		u := uint64(shifted)
		m := bits.Len64(u) - 1

		bitsVec.Append(u&((uint64(1)<<uint(m))-1), m)

		running += uint64(m)
		borders = append(borders, running)
		n++
	}

	borderList, err := NewMonotoneLongBigList(len(borders), running+1, SliceIterator(toInt64(borders)))
	if err != nil {
		return nil, err
	}

	bitsVec.Trim()

	return &EliasFanoLongBigList{bits: bitsVec, borders: borderList, offset: offset, n: n}, nil
}

// NewLongBigListOffline is equivalent to NewLongBigList, but streams
// border offsets to a temp file during the first pass instead of holding
// them in memory, at the cost of a second pass over that file before the
// in-memory border list is built. The temp file is removed before this
// function returns, on every exit path.
func NewLongBigListOffline(lowerBound int64, values LongIterator) (*EliasFanoLongBigList, error) {
	offset := 1 - lowerBound

	stream, err := offline.NewBorderStream()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	defer func() { _ = stream.Close() }()

	bitsVec := NewBitVector()

	var running uint64

	n := 0

	if err := stream.Write(0); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	for values.HasNext() {
		v := values.Next()
		if v < lowerBound {
			return nil, fmt.Errorf("%w: value %d below lower bound %d", ErrInvalidInput, v, lowerBound)
		}

		shifted := v + offset
		if shifted <= 0 {
			return nil, fmt.Errorf("%w: shifted value for %d overflows the positive 63-bit range", ErrInvalidInput, v)
		}

		u := uint64(shifted)
		m := bits.Len64(u) - 1

		bitsVec.Append(u&((uint64(1)<<uint(m))-1), m)

		running += uint64(m)
		if err := stream.Write(running); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
		}

		n++
	}

	reader, err := stream.Reader()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	borderList, err := NewMonotoneLongBigList(n+1, running+1, &offlineBorderIterator{r: reader})
	if err != nil {
		return nil, err
	}

	bitsVec.Trim()

	return &EliasFanoLongBigList{bits: bitsVec, borders: borderList, offset: offset, n: n}, nil
}

// offlineBorderIterator adapts a *offline.BorderReader to LongIterator.
// LongIterator has no error return, so a read error is folded into a
// sentinel HasNext()==false instead of being propagated; the caller,
// NewMonotoneLongBigList, then reports that as "fewer than n values
// supplied" (ErrInvalidInput). Genuine I/O errors are rare enough
// post-write that this tradeoff is acceptable for an offline
// construction helper whose Write side already surfaces ErrIOFailure
// directly.
type offlineBorderIterator struct {
	r       *offline.BorderReader
	next    uint64
	hasNext bool
	primed  bool
}

func (it *offlineBorderIterator) prime() {
	v, ok, err := it.r.Next()
	it.next = v
	it.hasNext = ok && err == nil
	it.primed = true
}

func (it *offlineBorderIterator) HasNext() bool {
	if !it.primed {
		it.prime()
	}

	return it.hasNext
}

func (it *offlineBorderIterator) Next() int64 {
	if !it.primed {
		it.prime()
	}

	v := it.next
	it.primed = false

	return int64(v)
}

func toInt64(vals []uint64) []int64 {
	out := make([]int64, len(vals))
	for i, v := range vals {
		out[i] = int64(v)
	}

	return out
}

// Len returns the number of elements.
func (l *EliasFanoLongBigList) Len() int {
	return l.n
}

// SpaceBits returns the total size, in bits, of the packed value bits plus
// the border list's own space. Intended for benchmarking and diagnostics.
func (l *EliasFanoLongBigList) SpaceBits() int {
	return int(l.bits.Len()) + l.borders.SpaceBits()
}

// Get returns the i-th value. Behavior is undefined for out-of-range i.
func (l *EliasFanoLongBigList) Get(i int) int64 {
	from := l.borders.Get(i)
	to := l.borders.Get(i + 1)

	width := to - from
	stored := l.bits.GetBits(from, to)

	return int64((uint64(1)<<width)|stored) - l.offset
}

// GetRange returns length consecutive values starting at startIndex, read
// with a single forward pass over the border list and the packed bits
// rather than length independent Get calls.
func (l *EliasFanoLongBigList) GetRange(startIndex, length int) []int64 {
	if length == 0 {
		return nil
	}

	borders := make([]uint64, length+1)
	for k := 0; k <= length; k++ {
		borders[k] = l.borders.Get(startIndex + k)
	}

	out := make([]int64, length)

	for k := 0; k < length; k++ {
		from, to := borders[k], borders[k+1]
		width := to - from
		stored := l.bits.GetBits(from, to)
		out[k] = int64((uint64(1)<<width)|stored) - l.offset
	}

	return out
}
