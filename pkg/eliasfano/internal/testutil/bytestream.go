// Package testutil holds small deterministic generators shared by the
// eliasfano package's fuzz and property tests.
package testutil

// ByteStream is a tiny deterministic byte reader that turns arbitrary fuzz
// input into a stream of small values. It has no randomness of its own so
// Go's fuzz engine can minimize failing inputs. Missing bytes are treated
// as 0.
type ByteStream struct {
	b []byte
	i int
}

// NewByteStream creates a new ByteStream reading from b.
func NewByteStream(b []byte) *ByteStream {
	return &ByteStream{b: b}
}

// HasMore reports whether unread bytes remain.
func (s *ByteStream) HasMore() bool {
	return s.i < len(s.b)
}

// NextByte returns the next byte (or 0 if exhausted).
func (s *ByteStream) NextByte() byte {
	if s.i >= len(s.b) {
		return 0
	}

	v := s.b[s.i]
	s.i++

	return v
}

// NextUint32 reads 4 bytes little-endian as a uint32.
func (s *ByteStream) NextUint32() uint32 {
	var v uint32

	v |= uint32(s.NextByte())
	v |= uint32(s.NextByte()) << 8
	v |= uint32(s.NextByte()) << 16
	v |= uint32(s.NextByte()) << 24

	return v
}

// MonotoneRun consumes the stream and returns a non-decreasing sequence of
// non-negative int64 values no larger than u, plus the u it used.
func MonotoneRun(s *ByteStream, maxLen int) (values []int64, u uint64) {
	u = uint64(s.NextUint32()%1000) + 1

	n := int(s.NextByte()) % (maxLen + 1)

	values = make([]int64, n)

	var cur uint64

	for i := 0; i < n; i++ {
		step := uint64(s.NextByte())
		cur += step % (u/uint64(n+1) + 1)

		if cur > u {
			cur = u
		}

		values[i] = int64(cur)
	}

	return values, u
}

// ArbitraryRun consumes the stream and returns an unordered sequence of
// int64 values, plus the lower bound it respects. The lower bound lies in
// [-10, 9], so values may be negative.
func ArbitraryRun(s *ByteStream, maxLen int) (values []int64, lowerBound int64) {
	lowerBound = int64(s.NextByte()%20) - 10

	n := int(s.NextByte()) % (maxLen + 1)

	values = make([]int64, n)

	for i := 0; i < n; i++ {
		values[i] = lowerBound + int64(s.NextUint32()%100000)
	}

	return values, lowerBound
}
