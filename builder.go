// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package garr

import "iter"

// Builder constructs an [Array] element by element over raw storage.
// Slots [0, Written) hold live elements already moved in; the rest is
// zeroed storage awaiting initialization. [Builder.Array] completes the
// construction once every slot is written; [Builder.Discard] abandons it,
// releasing exactly the written prefix. Either way no partially
// initialized array is ever observable.
//
// The zero Builder is an empty builder of N raw slots, ready to use.
// A Builder is a single-owner cursor: it is not safe for concurrent use
// and must not be copied while in use.
type Builder[T any, N Size[T]] struct {
	data N
	k    int
}

// Len returns the element count N of the array under construction.
func (b *Builder[T, N]) Len() int {
	return SizeOf[T, N]()
}

// Written returns how many slots have been initialized so far.
func (b *Builder[T, N]) Written() int {
	return b.k
}

// Full reports whether every slot has been written.
func (b *Builder[T, N]) Full() bool {
	return b.k == SizeOf[T, N]()
}

// Put moves v into the next slot. The builder owns v from here on.
// Panics if the builder is already full.
func (b *Builder[T, N]) Put(v T) {
	if !b.TryPut(v) {
		panic("garr: builder full")
	}
}

// TryPut moves v into the next slot, reporting false (and leaving v with
// the caller) if the builder is already full.
func (b *Builder[T, N]) TryPut(v T) bool {
	s := view[T, N](&b.data)
	if b.k == len(s) {
		return false
	}
	s[b.k] = v
	b.k++
	return true
}

// Slots returns the sequence of unwritten slots in index order, together
// with the builder's progress counter.
//
// The counter is the builder's own bookkeeping: the caller must increment
// it after each completed write and never ahead of one, so that at any
// instant it counts exactly the slots holding live elements. [Discard]
// trusts it. The loop shape is
//
//	s, pos := b.Slots()
//	for p := range s {
//		*p = next()
//		*pos++
//	}
//
// where a panic in next leaves the already written prefix counted, and a
// later Discard releases precisely that prefix.
func (b *Builder[T, N]) Slots() (iter.Seq[*T], *int) {
	s := view[T, N](&b.data)
	start := b.k
	return func(yield func(*T) bool) {
		for i := start; i < len(s); i++ {
			if !yield(&s[i]) {
				return
			}
		}
	}, &b.k
}

// Array completes the construction, moving the elements out into the
// returned array and resetting the builder to its empty state. A deferred
// [Builder.Discard] after a successful Array releases nothing.
//
// Calling Array before every slot is written is a programmer error and
// panics; the builder is left as it was.
func (b *Builder[T, N]) Array() Array[T, N] {
	if !b.Full() {
		panic("garr: builder incomplete")
	}
	out := Array[T, N]{data: b.data}
	var zero N
	b.data = zero
	b.k = 0
	return out
}

// Discard abandons the construction: every written slot is released in
// index order (see [Releaser]) and zeroed, and the builder returns to its
// empty state. Unwritten slots are untouched. Discard is idempotent.
func (b *Builder[T, N]) Discard() {
	releaseSlots(view[T, N](&b.data)[:b.k])
	b.k = 0
}
