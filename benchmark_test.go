// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package garr_test

import (
	"encoding/json"
	"testing"

	"code.hybscloud.com/garr"
)

// BenchmarkSliceSum measures traversal through the slice view.
func BenchmarkSliceSum(b *testing.B) {
	var a garr.Array[int, garr.S64[int]]
	s := a.Slice()
	for i := range s {
		s[i] = i
	}
	sink := 0
	for b.Loop() {
		for _, v := range a.Slice() {
			sink += v
		}
	}
	_ = sink
}

// BenchmarkValuesSum measures traversal through the Values iterator.
func BenchmarkValuesSum(b *testing.B) {
	var a garr.Array[int, garr.S64[int]]
	s := a.Slice()
	for i := range s {
		s[i] = i
	}
	sink := 0
	for b.Loop() {
		for v := range a.Values() {
			sink += v
		}
	}
	_ = sink
}

// BenchmarkAtSum measures indexed reads.
func BenchmarkAtSum(b *testing.B) {
	var a garr.Array[int, garr.S64[int]]
	for i := range a.Len() {
		a.Set(i, i)
	}
	sink := 0
	for b.Loop() {
		for i := range a.Len() {
			sink += a.At(i)
		}
	}
	_ = sink
}

// BenchmarkFromSlice measures checked construction from a slice.
func BenchmarkFromSlice(b *testing.B) {
	src := make([]int, 64)
	for i := range src {
		src[i] = i
	}
	for b.Loop() {
		_, _ = garr.FromSlice[garr.S64[int]](src)
	}
}

// BenchmarkEqual measures whole-array comparison.
func BenchmarkEqual(b *testing.B) {
	var x, y garr.Array[int, garr.S64[int]]
	s := x.Slice()
	for i := range s {
		s[i] = i
	}
	y = x
	sink := true
	for b.Loop() {
		sink = sink && garr.Equal(&x, &y)
	}
	_ = sink
}

// BenchmarkZip measures the two-source combinator pipeline.
func BenchmarkZip(b *testing.B) {
	var x, y garr.Array[int, garr.S32[int]]
	for i := range x.Len() {
		x.Set(i, i)
		y.Set(i, i*2)
	}
	for b.Loop() {
		_ = garr.Zip[garr.S32[int]](x, y, func(p, q int) int { return p + q })
	}
}

// BenchmarkJSONMarshal measures wire encoding.
func BenchmarkJSONMarshal(b *testing.B) {
	var a garr.Array[int, garr.S32[int]]
	for i := range a.Len() {
		a.Set(i, i)
	}
	for b.Loop() {
		_, _ = json.Marshal(a)
	}
}

// BenchmarkJSONUnmarshal measures wire decoding.
func BenchmarkJSONUnmarshal(b *testing.B) {
	var a garr.Array[int, garr.S32[int]]
	for i := range a.Len() {
		a.Set(i, i)
	}
	data, err := json.Marshal(a)
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		var out garr.Array[int, garr.S32[int]]
		_ = json.Unmarshal(data, &out)
	}
}

// BenchmarkWipe measures the zeroing path.
func BenchmarkWipe(b *testing.B) {
	var a garr.Array[byte, garr.S256[byte]]
	for b.Loop() {
		a.Wipe()
	}
}
