// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package garr provides fixed-length generic arrays whose element count is
// part of the type.
//
// The core type [Array] holds exactly N elements of type T, where N is a
// compile-time storage layout, not a runtime value: Array[byte, S16[byte]]
// and Array[byte, S32[byte]] are distinct Go types, no length field is
// stored anywhere, and code generic over a layout parameter is checked for
// element counts by the compiler.
//
// # Design Philosophy
//
// garr provides:
//   - Type-level element counts through recursive layout composition
//   - Move-style construction and destructuring with exact partial-failure
//     cleanup
//   - Element access through a single audited unsafe view, everything else
//     safe Go
//
// # Type-Level Counts
//
// Go has no constant generics, so counts are encoded structurally: a
// layout with 2k slots is two k layouts back to back, a layout with 2k+1
// slots adds one trailing slot, and the empty layout closes the recursion.
// The [Size] constraint seals the family; its storage invariant (k slots
// occupy exactly k*sizeof(T) bytes at align(T), no padding) is what makes
// the flat element view sound.
//
//   - [Size]: sealed constraint for storage layouts of T
//   - [Zero], [Even], [Odd]: the closed layout family
//   - [SizeOf]: element count of a layout
//   - [S0] through [S32], [S40] ... [S1024]: aliases for common counts
//
// Any other count is composed directly, e.g. Odd[T, S21[T]] for 43.
//
// # The Array Container
//
// The zero Array holds N zero elements and is ready to use. Arrays of
// comparable elements compare with == and work as map keys. Assignment
// copies all elements, like a native Go array.
//
//   - [Array.Len]: element count, a property of the type
//   - [Array.Slice]: flat view aliasing the array's own storage
//   - [Array.At], [Array.Set]: indexed access within the static bound
//   - [Array.Values], [Array.All]: iterators over the elements
//   - [Array.AppendTo]: copy out onto a Go slice
//
// # Builders and Consumers
//
// [Builder] fills raw storage slot by slot; [Consumer] drains a live
// array the same way. Both are single-owner cursors with the partial
// cleanup guarantee: abandoning the traversal releases exactly the
// elements the cursor still owns (the written prefix for a builder, the
// untaken suffix for a consumer), and no partially initialized array is
// ever observable.
//
//   - [Builder.Put], [Builder.TryPut]: move the next element in
//   - [Builder.Slots]: raw slot sequence with shared progress counter
//   - [Builder.Array]: complete, moving the elements out (panics unless full)
//   - [Builder.Discard]: abandon, releasing the written prefix
//   - [Consume]: move an array into a consumer
//   - [Consumer.Take], [Consumer.TryTake]: move the next element out
//   - [Consumer.Slots]: counterpart of [Builder.Slots]
//   - [Consumer.Discard]: abandon, releasing the untaken suffix
//
// # Release Protocol
//
// Element types that own external resources implement [Releaser]; cursor
// cleanup calls Release once per still-owned slot, in index order, then
// zeroes the storage. Elements already moved out belong to their takers
// and are never touched.
//
// # Combinators
//
// Construction and traversal of whole arrays, written over the cursor
// types so the cleanup guarantee extends through panics in user
// functions (the element already handed to the panicking call is the
// call's own):
//
//   - [Generate]: build from an index function
//   - [Map]: build from another array, element by element
//   - [Zip]: build from two arrays, pair by pair
//   - [Fold]: reduce left to right
//   - [FromSeq], [MustFromSeq]: build from a sequence yielding exactly N
//     (the N+1th pull, if any, is the last)
//
// Count agreement between different element types' layouts is outside
// what Go's type system can relate, so [Map], [Zip], [Concat] and
// [SplitAt] check counts on entry and panic on mismatch.
//
// # Conversions
//
//   - [FromSlice], [MustFromSlice]: copy in from a slice of exactly N
//   - [Of]: literal construction from listed elements
//   - [FromNative], [ToNative]: convert to and from native [n]T arrays
//   - [Concat], [SplitAt]: join and divide at type-checked boundaries
//   - [Equal], [Compare]: element-wise comparison helpers
//
// # Wire Encoding
//
// Arrays encode as flat N-element sequences in JSON and YAML, with no
// length tag; decoding accepts exactly N elements.
//
// # Formatting and Wiping
//
//   - [Array.Format]: formats as the flat element view for every fmt verb
//   - [Array.Wipe]: zero every slot in place, byte-wise hardened
//
// # Errors
//
// Boundary count mismatches are reported as [*LengthError] and matched
// with errors.As; Must variants panic with the same diagnosis. Misusing a
// cursor (writing past the end, taking from a drained consumer,
// completing an unfilled builder) is a programmer error and panics.
//
// # Example
//
//	type Conn struct{ /* ... */ }
//	func (c *Conn) Release() { c.Close() }
//
//	pool, err := garr.FromSeq[garr.S4[*Conn]](dialAll(addrs))
//	if err != nil {
//		// fewer or more than 4 conns: every dialed conn was released
//	}
//	sum := garr.Fold(ids, 0, func(a, x int) int { return a + x })
package garr
