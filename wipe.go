// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package garr

import (
	"unsafe"

	"github.com/awnumar/memguard"
)

// Wipe overwrites every element slot with the zero value, in place: first
// through typed writes that drop any references for the garbage
// collector, then byte-wise over the raw storage with memguard's
// optimization-resistant wipe. Elements are not released; callers holding
// [Releaser] elements release them before wiping.
func (a *Array[T, N]) Wipe() {
	clear(view[T, N](&a.data))
	if n := unsafe.Sizeof(a.data); n != 0 {
		memguard.WipeBytes(unsafe.Slice((*byte)(unsafe.Pointer(&a.data)), n))
	}
}
