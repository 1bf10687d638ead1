// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package garr

import "reflect"

// Releaser is implemented by element types that own external resources.
// When a [Builder] or [Consumer] abandons slots it still owns, it calls
// Release once on each of them, in index order, before zeroing the storage.
//
// The protocol is keyed on the element type: a slot is released when *T
// implements Releaser (which covers value-receiver implementations on T),
// or when T is an interface type and the slot's dynamic value implements
// it. Elements moved out of the container ([Consumer.Take], a filled
// [Builder.Array], values handed to user functions) are never released by
// this package; they belong to the caller.
type Releaser interface {
	Release()
}

// typeReleases reports whether element type T participates in the release
// protocol at all. Keeps the per-slot work off the cleanup path for plain
// data types.
func typeReleases[T any]() bool {
	if _, ok := any((*T)(nil)).(Releaser); ok {
		return true
	}
	return reflect.TypeFor[T]().Kind() == reflect.Interface
}

// releaseValue releases the element in *p if its type participates, then
// zeroes the slot so the garbage collector can reclaim whatever it
// referenced.
func releaseValue[T any](p *T) {
	if r, ok := any(p).(Releaser); ok {
		r.Release()
	} else if r, ok := any(*p).(Releaser); ok {
		r.Release()
	}
	var zero T
	*p = zero
}

// releaseSlots releases every element of s in index order and zeroes s.
func releaseSlots[T any](s []T) {
	if len(s) != 0 && typeReleases[T]() {
		for i := range s {
			releaseValue(&s[i])
		}
	}
	clear(s)
}
