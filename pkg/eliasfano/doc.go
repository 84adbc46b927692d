// Package eliasfano provides succinct, immutable sequences of non-negative
// integers built atop the Elias-Fano representation of monotone sequences.
//
// Three sequence types are exported:
//
//   - [EliasFanoLongBigList]: a compressed list of arbitrary (non-monotone)
//     non-negative values.
//   - [TwoSizesLongBigList]: a two-bucket compressed list that partitions
//     values into "small" and "large" by a cost-optimal threshold.
//   - [EliasFanoIndexedMonotoneLongBigList]: a monotone sequence with
//     constant-time predecessor/successor/contains queries.
//
// # Basic Usage
//
//	list, err := eliasfano.NewLongBigList(0, eliasfano.SliceIterator([]int64{5, 0, 12, 3, 5}))
//	if err != nil {
//	    // handle ErrInvalidInput
//	}
//	v := list.Get(2) // 12
//
//	vals := []int64{0, 3, 7, 7, 15}
//	mono, err := eliasfano.NewIndexedMonotoneLongBigList(16, len(vals), eliasfano.SliceIterator(vals))
//	if err != nil {
//	    // handle ErrInvalidInput
//	}
//	res := mono.Successor(4) // {Value: 7, Index: 2}
//
// # Construction and Queries
//
// All three types are build-once, query-many: construction consumes a
// finite input sequence and materializes packed bit arrays plus rank/select
// indexes, then freezes. Every read-only method on a fully constructed
// value is safe for concurrent callers; [QueryResult] is returned by value
// specifically so that concurrent queries on
// [EliasFanoIndexedMonotoneLongBigList] never share mutable state.
//
// # Error Handling
//
// Construction errors ([ErrInvalidInput], [ErrCapacityExceeded],
// [ErrIOFailure]) abort and publish no partial structure. Query methods
// never fail once a structure exists; out-of-range indices are a
// programming error with undefined behavior. Most such calls panic on an
// out-of-range slice access, but some (for example on a
// [TwoSizesLongBigList] whose last word has spare bits) return a
// meaningless value instead.
package eliasfano
