// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package garr

import "iter"

// FromSeq builds an array from a sequence that must yield exactly N
// elements. Fewer, and the elements pulled so far are released and the
// shortfall reported as [*LengthError]; more, and iteration stops at the
// N+1th element, which is received, released, and reported the same way.
// No pulls are issued beyond the first excess element. A panic inside seq
// likewise releases the pulled prefix before unwinding.
//
// The sequence's elements are moved in; on success the array owns all of
// them, on failure none survive.
func FromSeq[N Size[T], T any](seq iter.Seq[T]) (Array[T, N], error) {
	var b Builder[T, N]
	defer b.Discard()
	for v := range seq {
		if !b.TryPut(v) {
			releaseValue(&v)
			return Array[T, N]{}, &LengthError{Got: b.Len() + 1, Want: b.Len()}
		}
	}
	if !b.Full() {
		return Array[T, N]{}, &LengthError{Got: b.Written(), Want: b.Len()}
	}
	return b.Array(), nil
}

// MustFromSeq is [FromSeq] panicking on length mismatch, for sequences
// known exact by construction.
func MustFromSeq[N Size[T], T any](seq iter.Seq[T]) Array[T, N] {
	a, err := FromSeq[N](seq)
	if err != nil {
		panic(err)
	}
	return a
}

// Concat builds the concatenation of a then b. The count of NC must be
// the sum of the two source counts; a mismatch panics on entry. Both
// sources are moved in.
//
//	eight := Concat[S8[byte]](lo4, hi4)
func Concat[NC Size[T], T any, NA Size[T], NB Size[T]](a Array[T, NA], b Array[T, NB]) Array[T, NC] {
	na, nb := SizeOf[T, NA](), SizeOf[T, NB]()
	if want := SizeOf[T, NC](); na+nb != want {
		countMismatch("concat", na+nb, want)
	}
	var c Array[T, NC]
	s := view[T, NC](&c.data)
	copy(s, view[T, NA](&a.data))
	copy(s[na:], view[T, NB](&b.data))
	return c
}

// SplitAt splits a into a head of NHead elements and a tail of NTail.
// The two counts must sum to the count of N; a mismatch panics on entry.
// The source is moved in, its elements divided between the two results.
//
//	head, tail := SplitAt[S2[int], S3[int]](five)
func SplitAt[NHead Size[T], NTail Size[T], T any, N Size[T]](a Array[T, N]) (Array[T, NHead], Array[T, NTail]) {
	nh, nt := SizeOf[T, NHead](), SizeOf[T, NTail]()
	if got := SizeOf[T, N](); nh+nt != got {
		countMismatch("split", got, nh+nt)
	}
	s := view[T, N](&a.data)
	var head Array[T, NHead]
	copy(view[T, NHead](&head.data), s[:nh])
	var tail Array[T, NTail]
	copy(view[T, NTail](&tail.data), s[nh:])
	return head, tail
}
