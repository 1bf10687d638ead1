// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package garr

import "fmt"

// Format implements [fmt.Formatter]. An Array formats exactly as its flat
// element view does, for every verb and flag: %v prints the elements
// bracketed, %x and %X hex-encode arrays of bytes or integers, and width,
// precision and flags pass through unchanged.
//
//	fmt.Sprintf("%x", Of[S3[byte], byte](0xde, 0xad, 0xbf)) // "deadbf"
func (a Array[T, N]) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, fmt.FormatString(s, verb), view[T, N](&a.data))
}
