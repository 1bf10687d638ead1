// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package garr

import (
	"cmp"
	"iter"
	"reflect"
	"slices"
)

// Array is a container of exactly N elements of type T. The count is part
// of the type: Array[byte, S16[byte]] and Array[byte, S32[byte]] are
// distinct types and never interchangeable, so code generic over a Size
// parameter is checked for element counts at compile time. No length field
// is stored anywhere; an Array occupies exactly the storage of its
// elements.
//
// The zero Array holds N zero-valued elements and is ready to use.
// Assignment copies all elements, like a native Go array, and an Array of
// comparable elements is itself comparable and usable as a map key.
//
// Element-by-element construction goes through [Builder] (or the
// [Generate], [FromSeq] and [FromSlice] constructors); element-by-element
// destructuring goes through [Consumer]. Both guarantee that abandoning
// the traversal part way releases exactly the elements the cursor still
// owns, and nothing else.
type Array[T any, N Size[T]] struct {
	data N
}

// Len returns the element count N. It is a property of the type, not of
// the value.
func (a *Array[T, N]) Len() int {
	return SizeOf[T, N]()
}

// Slice returns the elements as a flat slice aliasing the array's own
// storage: writes through the slice are writes to the array. The slice is
// valid as long as the array is; it never reallocates.
func (a *Array[T, N]) Slice() []T {
	return view[T, N](&a.data)
}

// At returns the element at index i. Panics if i is out of [0, N).
func (a *Array[T, N]) At(i int) T {
	return view[T, N](&a.data)[i]
}

// Set replaces the element at index i. Panics if i is out of [0, N).
func (a *Array[T, N]) Set(i int, v T) {
	view[T, N](&a.data)[i] = v
}

// Values returns an iterator over the elements in index order.
func (a *Array[T, N]) Values() iter.Seq[T] {
	return slices.Values(view[T, N](&a.data))
}

// All returns an iterator over index-element pairs in index order.
func (a *Array[T, N]) All() iter.Seq2[int, T] {
	return slices.All(view[T, N](&a.data))
}

// AppendTo appends the elements to dst and returns the extended slice,
// following the standard append contract. Elements are copied; the array
// keeps its own.
func (a *Array[T, N]) AppendTo(dst []T) []T {
	return append(dst, view[T, N](&a.data)...)
}

// FromSlice builds an array by copying exactly N elements from src.
// A src of any other length leaves nothing constructed and reports
// [*LengthError]. The caller keeps ownership of src and its elements;
// the copies are bit-for-bit duplicates.
func FromSlice[N Size[T], T any](src []T) (Array[T, N], error) {
	var a Array[T, N]
	dst := view[T, N](&a.data)
	if len(src) != len(dst) {
		return Array[T, N]{}, &LengthError{Got: len(src), Want: len(dst)}
	}
	copy(dst, src)
	return a, nil
}

// MustFromSlice is [FromSlice] panicking on length mismatch, for counts
// known correct by construction.
func MustFromSlice[N Size[T], T any](src []T) Array[T, N] {
	a, err := FromSlice[N](src)
	if err != nil {
		panic(err)
	}
	return a
}

// Of builds an array from an element literal list. The count is checked
// against N; a wrong count is a programmer error and panics.
//
//	v := Of[S3[int]](7, 8, 9)
func Of[N Size[T], T any](elems ...T) Array[T, N] {
	return MustFromSlice[N](elems)
}

// Equal reports whether a and b hold the same elements in the same order.
// For comparable elements *a == *b is equivalent; Equal exists for
// symmetry with [Compare] and for use with slices helpers.
func Equal[T comparable, N Size[T]](a, b *Array[T, N]) bool {
	return slices.Equal(view[T, N](&a.data), view[T, N](&b.data))
}

// Compare lexicographically compares a and b, with the [cmp.Compare]
// convention.
func Compare[T cmp.Ordered, N Size[T]](a, b *Array[T, N]) int {
	return slices.Compare(view[T, N](&a.data), view[T, N](&b.data))
}

// FromNative builds an Array from a native Go array [n]T with the same
// elements. A must be [n]T with n equal to the count of N; any other
// shape is a programmer error and panics. Elements are copied.
//
//	v := FromNative[S4[int], int]([4]int{1, 2, 3, 4})
func FromNative[N Size[T], T any, A any](native A) Array[T, N] {
	checkNativeShape[T, N, A]()
	var a Array[T, N]
	reflect.Copy(reflect.ValueOf(view[T, N](&a.data)), reflect.ValueOf(native))
	return a
}

// ToNative is the inverse of [FromNative], copying the elements out into
// the native Go array type A.
//
//	native := ToNative[[4]int](v)
func ToNative[A any, T any, N Size[T]](a Array[T, N]) A {
	checkNativeShape[T, N, A]()
	var out A
	reflect.Copy(reflect.ValueOf(&out).Elem(), reflect.ValueOf(view[T, N](&a.data)))
	return out
}

// checkNativeShape panics unless A is the native array type [n]T matching
// the count of N. The two storage layouts are then identical: n contiguous
// T slots.
func checkNativeShape[T any, N Size[T], A any]() {
	rt := reflect.TypeFor[A]()
	if rt.Kind() != reflect.Array || rt.Elem() != reflect.TypeFor[T]() || rt.Len() != SizeOf[T, N]() {
		panic("garr: native array type does not match element type and count")
	}
}
