// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package garr

// Aliases for common element counts, spelled by binary decomposition:
// 2k is Even over the k layout, 2k+1 is Odd over it. Any other count is
// written the same way from [Even], [Odd] and [Zero], for example
// Odd[T, S21[T]] for 43.
type (
	S0[T any]  = Zero[T]
	S1[T any]  = Odd[T, S0[T]]
	S2[T any]  = Even[T, S1[T]]
	S3[T any]  = Odd[T, S1[T]]
	S4[T any]  = Even[T, S2[T]]
	S5[T any]  = Odd[T, S2[T]]
	S6[T any]  = Even[T, S3[T]]
	S7[T any]  = Odd[T, S3[T]]
	S8[T any]  = Even[T, S4[T]]
	S9[T any]  = Odd[T, S4[T]]
	S10[T any] = Even[T, S5[T]]
	S11[T any] = Odd[T, S5[T]]
	S12[T any] = Even[T, S6[T]]
	S13[T any] = Odd[T, S6[T]]
	S14[T any] = Even[T, S7[T]]
	S15[T any] = Odd[T, S7[T]]
	S16[T any] = Even[T, S8[T]]
	S17[T any] = Odd[T, S8[T]]
	S18[T any] = Even[T, S9[T]]
	S19[T any] = Odd[T, S9[T]]
	S20[T any] = Even[T, S10[T]]
	S21[T any] = Odd[T, S10[T]]
	S22[T any] = Even[T, S11[T]]
	S23[T any] = Odd[T, S11[T]]
	S24[T any] = Even[T, S12[T]]
	S25[T any] = Odd[T, S12[T]]
	S26[T any] = Even[T, S13[T]]
	S27[T any] = Odd[T, S13[T]]
	S28[T any] = Even[T, S14[T]]
	S29[T any] = Odd[T, S14[T]]
	S30[T any] = Even[T, S15[T]]
	S31[T any] = Odd[T, S15[T]]
	S32[T any] = Even[T, S16[T]]
)

// Larger power-of-two-ish counts common in fixed-width buffers,
// digests and keys.
type (
	S40[T any]   = Even[T, S20[T]]
	S48[T any]   = Even[T, S24[T]]
	S56[T any]   = Even[T, S28[T]]
	S64[T any]   = Even[T, S32[T]]
	S80[T any]   = Even[T, S40[T]]
	S96[T any]   = Even[T, S48[T]]
	S112[T any]  = Even[T, S56[T]]
	S128[T any]  = Even[T, S64[T]]
	S160[T any]  = Even[T, S80[T]]
	S192[T any]  = Even[T, S96[T]]
	S224[T any]  = Even[T, S112[T]]
	S256[T any]  = Even[T, S128[T]]
	S384[T any]  = Even[T, S192[T]]
	S512[T any]  = Even[T, S256[T]]
	S1024[T any] = Even[T, S512[T]]
)
