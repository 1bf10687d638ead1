// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package garr

import "strconv"

// Whole-array construction and traversal combinators. All of them drive
// [Builder] and [Consumer] cursors under deferred Discards, so a panic in
// a user function releases exactly the elements the cursors still own:
// the written destination prefix and the untaken source suffix. The
// element(s) already moved out to the panicking call belong to it and are
// not touched. No partially initialized array escapes on any path.

// countMismatch panics for combinator shape mismatches.
func countMismatch(op string, got, want int) {
	panic("garr: " + op + ": source count " + strconv.Itoa(got) +
		" does not match destination count " + strconv.Itoa(want))
}

// Generate builds an array by calling gen for each index in order.
// Slot i is written and counted before gen(i+1) runs, so a panic in gen
// releases exactly the prefix generated so far.
//
//	squares := Generate[S8[int]](func(i int) int { return i * i })
func Generate[N Size[T], T any](gen func(int) T) Array[T, N] {
	var b Builder[T, N]
	defer b.Discard()
	s, pos := b.Slots()
	for p := range s {
		*p = gen(*pos)
		*pos++
	}
	return b.Array()
}

// Map builds an array of f applied to each element of a, in index order.
// The counts of NT and NU must agree; Go cannot relate two Size
// parameters of different element types, so the check happens on entry
// and a mismatch panics before any element moves.
//
// a is moved in. Each step takes the source element first, then computes
// f, then writes: a panic in f at index i therefore releases the i
// results already built and the source elements after i, while the
// element inside the panicking call is f's own.
//
//	labels := Map[S4[string]](ids, strconv.Itoa)
func Map[NU Size[U], U any, T any, NT Size[T]](a Array[T, NT], f func(T) U) Array[U, NU] {
	if got, want := SizeOf[T, NT](), SizeOf[U, NU](); got != want {
		countMismatch("map", got, want)
	}
	src := Consume(a)
	defer src.Discard()
	var dst Builder[U, NU]
	defer dst.Discard()
	for !src.Drained() {
		v := src.Take()
		dst.Put(f(v))
	}
	return dst.Array()
}

// Zip builds an array of f applied to element pairs of a and b, in index
// order. All three counts must agree; a mismatch panics on entry.
//
// a and b are moved in. Both source elements are taken before f runs, so
// a panic in f at index i releases i results, the suffix of a after i and
// the suffix of b after i; the pair inside the call is f's own.
func Zip[NV Size[V], V any, T, U any, NT Size[T], NU Size[U]](
	a Array[T, NT], b Array[U, NU], f func(T, U) V,
) Array[V, NV] {
	want := SizeOf[V, NV]()
	if got := SizeOf[T, NT](); got != want {
		countMismatch("zip", got, want)
	}
	if got := SizeOf[U, NU](); got != want {
		countMismatch("zip", got, want)
	}
	ca := Consume(a)
	defer ca.Discard()
	cb := Consume(b)
	defer cb.Discard()
	var dst Builder[V, NV]
	defer dst.Discard()
	for !ca.Drained() {
		va := ca.Take()
		vb := cb.Take()
		dst.Put(f(va, vb))
	}
	return dst.Array()
}

// Fold reduces the array left to right: acc = f(acc, element), starting
// from init. a is moved in; each element is counted as taken before f
// runs on it, so a panic in f releases exactly the untaken suffix.
func Fold[T, A any, N Size[T]](a Array[T, N], init A, f func(A, T) A) A {
	c := Consume(a)
	defer c.Discard()
	acc := init
	s, pos := c.Slots()
	for p := range s {
		v := *p
		var zero T
		*p = zero
		*pos++
		acc = f(acc, v)
	}
	return acc
}
