// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package garr

import (
	"unsafe"
)

// Size is the constraint for type-level element counts. A type satisfying
// Size[T] is a storage layout holding a fixed number of T slots, known at
// compile time. The only implementations are [Zero], [Even] and [Odd];
// the unexported methods seal the constraint, so every layout is built by
// composing those three and two layouts are interchangeable exactly when
// they are the same type.
//
// Layout invariant: a layout with k slots occupies exactly k*sizeof(T)
// bytes at the alignment of T. Even and Odd place sub-layouts of the same
// element type back to back; every field is aligned to align(T) and sized
// a multiple of sizeof(T), so the compiler never inserts padding and the
// storage of any layout reads as a flat run of T.
type Size[T any] interface {
	// slots returns the element count by structural recursion.
	// O(log n); used only where the sizeof ratio is unavailable.
	slots() int
	// elem is the phantom marker binding a layout to its element type.
	elem() T
}

// Zero is the empty layout: no slots, no storage.
type Zero[T any] struct{}

func (Zero[T]) slots() int { return 0 }
func (Zero[T]) elem() T    { panic("phantom") }

// Even is the layout with twice the slots of H: two H layouts back to back.
type Even[T any, H Size[T]] struct {
	lo, hi H
}

func (e Even[T, H]) slots() int { return e.lo.slots() * 2 }
func (Even[T, H]) elem() T      { panic("phantom") }

// Odd is the layout with twice the slots of H plus one: two H layouts
// followed by a single trailing slot.
type Odd[T any, H Size[T]] struct {
	lo, hi H
	end    T
}

func (o Odd[T, H]) slots() int { return o.lo.slots()*2 + 1 }
func (Odd[T, H]) elem() T      { panic("phantom") }

// SizeOf returns the element count of the layout N.
// For non-zero-sized element types this is the ratio of the layout's byte
// size to the element's, with no recursion; zero-sized elements fall back
// to counting slots structurally.
func SizeOf[T any, N Size[T]]() int {
	var t T
	if ts := unsafe.Sizeof(t); ts != 0 {
		var n N
		return int(unsafe.Sizeof(n) / ts)
	}
	var n N
	return n.slots()
}

// view reinterprets the storage behind p as a flat element slice.
// Every element access in the package goes through this one
// reinterpretation ([Array.Wipe] separately views the same storage as raw
// bytes); it is sound because of the Size layout invariant: the storage
// of N is exactly SizeOf contiguous, properly aligned T slots.
func view[T any, N Size[T]](p *N) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(p)), SizeOf[T, N]())
}
