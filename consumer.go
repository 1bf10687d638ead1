// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package garr

import "iter"

// Consumer destructures an [Array] element by element. Slots
// [0, N-Remaining) have been moved out and belong to their takers; the
// remaining suffix still belongs to the consumer. [Consumer.Discard]
// abandons the traversal, releasing exactly the suffix, so every element
// ends up owned by exactly one party no matter where the traversal stops.
//
// A Consumer is a single-owner cursor: not safe for concurrent use, not
// to be copied while in use.
type Consumer[T any, N Size[T]] struct {
	data N
	k    int
}

// Consume creates a consumer owning the elements of a. The array value is
// moved in: the caller's copy must not be used again, or elements would be
// observable on both sides of the move.
func Consume[T any, N Size[T]](a Array[T, N]) *Consumer[T, N] {
	return &Consumer[T, N]{data: a.data}
}

// Len returns the element count N of the array being consumed.
func (c *Consumer[T, N]) Len() int {
	return SizeOf[T, N]()
}

// Remaining returns how many elements the consumer still owns.
func (c *Consumer[T, N]) Remaining() int {
	return SizeOf[T, N]() - c.k
}

// Drained reports whether every element has been taken.
func (c *Consumer[T, N]) Drained() bool {
	return c.k == SizeOf[T, N]()
}

// Take moves the next element out to the caller, zeroing its slot.
// Panics if the consumer is drained.
func (c *Consumer[T, N]) Take() T {
	v, ok := c.TryTake()
	if !ok {
		panic("garr: consumer drained")
	}
	return v
}

// TryTake moves the next element out, reporting false if the consumer is
// drained.
func (c *Consumer[T, N]) TryTake() (T, bool) {
	s := view[T, N](&c.data)
	if c.k == len(s) {
		var zero T
		return zero, false
	}
	v := s[c.k]
	var zero T
	s[c.k] = zero
	c.k++
	return v, true
}

// Slots returns the sequence of still-owned slots in index order,
// together with the consumer's progress counter.
//
// The counter is the consumer's own bookkeeping: the caller must
// increment it after taking ownership of a slot's element and never ahead
// of that, so that at any instant the slots at and beyond the counter are
// exactly the ones the consumer still owns. [Discard] trusts it. Zeroing
// a slot after reading it is the caller's half of the move; the loop in
// [Fold] is the canonical shape.
func (c *Consumer[T, N]) Slots() (iter.Seq[*T], *int) {
	s := view[T, N](&c.data)
	start := c.k
	return func(yield func(*T) bool) {
		for i := start; i < len(s); i++ {
			if !yield(&s[i]) {
				return
			}
		}
	}, &c.k
}

// Discard abandons the traversal: every element the consumer still owns
// is released in index order (see [Releaser]) and its slot zeroed.
// Discard is idempotent, and a no-op on a drained consumer.
func (c *Consumer[T, N]) Discard() {
	s := view[T, N](&c.data)
	releaseSlots(s[c.k:])
	c.k = len(s)
}
