package eliasfano

import (
	"fmt"
	"math/bits"
)

// TwoSizesLongBigList stores a sequence of non-negative integers by
// partitioning them into a "small" bucket and a "large" bucket at a
// cost-optimal threshold width, each bucket packed at its own fixed
// width, with a Rank9 index over a per-element marker bit routing
// accesses to the right bucket.
//
// If the optimal threshold turns out to be the full value width (every
// element fits the same width anyway), the list degenerates to a single
// fixed-width packed array with no marker/rank overhead.
type TwoSizesLongBigList struct {
	n int

	// Non-degenerate layout.
	small  *packedArray
	large  *packedArray
	marker *BitVector
	rank   *Rank9

	// Degenerate layout (marker == nil): every value lives in small at
	// width w.
}

// packedArray is a fixed-width array of non-negative integers packed
// into a BitVector.
type packedArray struct {
	bv    *BitVector
	width int
	n     int
}

func newPackedArray(width, n int) *packedArray {
	return &packedArray{bv: NewBitVectorWithBitCapacity(uint64(width) * uint64(n)), width: width, n: n}
}

func (p *packedArray) append(v uint64) {
	p.bv.Append(v, p.width)
}

func (p *packedArray) get(i int) uint64 {
	if p.width == 0 {
		return 0
	}

	from := uint64(i) * uint64(p.width)

	return p.bv.GetBits(from, from+uint64(p.width))
}

// NewTwoSizesLongBigList builds a TwoSizesLongBigList from values.
func NewTwoSizesLongBigList(values []int64) (*TwoSizesLongBigList, error) {
	n := len(values)
	if n == 0 {
		return &TwoSizesLongBigList{n: 0}, nil
	}

	uvals := make([]uint64, n)

	var maxVal uint64

	for i, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("%w: negative value %d", ErrInvalidInput, v)
		}

		uvals[i] = uint64(v)
		if uvals[i] > maxVal {
			maxVal = uvals[i]
		}
	}

	w := bits.Len64(maxVal)
	if w == 0 {
		w = 1
	}

	// Histogram of bit-lengths (0..64), used to evaluate every candidate
	// threshold s in O(w) after a single O(n) pass.
	var hist [65]int

	for _, v := range uvals {
		hist[bitLen(v)]++
	}

	var prefix [66]int
	for k := 0; k <= 64; k++ {
		prefix[k+1] = prefix[k] + hist[k]
	}

	countLess := func(s int) int { return prefix[s+1] }

	bestS := w
	bestCost := n * w // degenerate option: everyone in one width-w bucket, no marker

	for s := 1; s < w; s++ {
		small := countLess(s)
		large := n - small
		cost := small*(s+1) + large*w

		if cost < bestCost {
			bestCost = cost
			bestS = s
		}
	}

	if bestS == w {
		arr := newPackedArray(w, n)
		for _, v := range uvals {
			arr.append(v)
		}

		return &TwoSizesLongBigList{n: n, small: arr}, nil
	}

	smallCount := countLess(bestS)
	largeCount := n - smallCount

	small := newPackedArray(bestS, smallCount)
	large := newPackedArray(w, largeCount)
	marker := NewBitVectorWithBitCapacity(uint64(n))

	for _, v := range uvals {
		if bitLen(v) > bestS {
			marker.Append(1, 1)
			large.append(v)
		} else {
			marker.Append(0, 1)
			small.append(v)
		}
	}

	return &TwoSizesLongBigList{
		n:      n,
		small:  small,
		large:  large,
		marker: marker,
		rank:   NewRank9(marker),
	}, nil
}

// bitLen returns the number of bits needed to represent v (0 for v==0),
// i.e. the smallest s such that v < 2^s.
func bitLen(v uint64) int {
	return bits.Len64(v)
}

// Len returns the number of elements.
func (t *TwoSizesLongBigList) Len() int {
	return t.n
}

// SpaceBits returns the total size, in bits, of the packed buckets plus the
// marker bit vector and its Rank9 index overhead. Intended for
// benchmarking and diagnostics.
func (t *TwoSizesLongBigList) SpaceBits() int {
	if t.marker == nil {
		return t.small.width * t.small.n
	}

	return t.small.width*t.small.n + t.large.width*t.large.n + int(t.marker.Len()) + t.rank.SpaceBits()
}

// Get returns the i-th value. Behavior is undefined for out-of-range i.
func (t *TwoSizesLongBigList) Get(i int) int64 {
	if t.marker == nil {
		return int64(t.small.get(i))
	}

	r := t.rank.Rank(uint64(i))

	if t.marker.BitAt(uint64(i)) {
		return int64(t.large.get(int(r)))
	}

	return int64(t.small.get(i - int(r)))
}
