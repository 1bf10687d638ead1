// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package garr_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/garr"
)

func TestConsumerTakeOrder(t *testing.T) {
	c := garr.Consume(garr.Of[garr.S4[int]](1, 2, 3, 4))
	if c.Len() != 4 || c.Remaining() != 4 || c.Drained() {
		t.Fatalf("fresh consumer: Len=%d Remaining=%d Drained=%v", c.Len(), c.Remaining(), c.Drained())
	}
	for i := 1; i <= 4; i++ {
		if got := c.Take(); got != i {
			t.Fatalf("Take() = %d, want %d", got, i)
		}
		if c.Remaining() != 4-i {
			t.Fatalf("Remaining() = %d after %d takes", c.Remaining(), i)
		}
	}
	if !c.Drained() {
		t.Fatal("consumer not drained after N takes")
	}
}

func TestConsumerTakeDrainedPanics(t *testing.T) {
	c := garr.Consume(garr.Of[garr.S1[int]](1))
	_ = c.Take()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on Take from drained consumer")
		}
		if s, ok := r.(string); !ok || s != "garr: consumer drained" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()
	_ = c.Take()
}

func TestConsumerTryTake(t *testing.T) {
	c := garr.Consume(garr.Of[garr.S2[int]](8, 9))
	v, ok := c.TryTake()
	if !ok || v != 8 {
		t.Fatalf("TryTake() = (%d, %v), want (8, true)", v, ok)
	}
	v, ok = c.TryTake()
	if !ok || v != 9 {
		t.Fatalf("TryTake() = (%d, %v), want (9, true)", v, ok)
	}
	v, ok = c.TryTake()
	if ok || v != 0 {
		t.Fatalf("TryTake() = (%d, %v) when drained, want (0, false)", v, ok)
	}
}

func TestConsumerDiscardReleasesUntakenSuffix(t *testing.T) {
	log := &releaseLog{}
	c := garr.Consume(resArray(log, 0))
	_ = c.Take()
	_ = c.Take()
	c.Discard()
	if want := []int{2, 3, 4}; !slices.Equal(log.order, want) {
		t.Fatalf("released %v, want %v", log.order, want)
	}
	// idempotent, and drained afterwards
	c.Discard()
	if len(log.order) != 3 {
		t.Fatalf("second Discard released again: %v", log.order)
	}
	if !c.Drained() {
		t.Fatal("consumer not drained after Discard")
	}
}

func TestConsumerDiscardAfterDrainReleasesNothing(t *testing.T) {
	log := &releaseLog{}
	c := garr.Consume(resArray(log, 0))
	for !c.Drained() {
		_ = c.Take()
	}
	c.Discard()
	if len(log.order) != 0 {
		t.Fatalf("Discard after drain released %v, want nothing", log.order)
	}
}

func TestConsumerSlots(t *testing.T) {
	c := garr.Consume(garr.Of[garr.S4[int]](1, 2, 3, 4))
	if got := c.Take(); got != 1 {
		t.Fatalf("Take() = %d, want 1", got)
	}
	s, pos := c.Slots()
	var got []int
	for p := range s {
		got = append(got, *p)
		*p = 0
		*pos++
	}
	if want := []int{2, 3, 4}; !slices.Equal(got, want) {
		t.Fatalf("slot loop read %v, want %v", got, want)
	}
	if !c.Drained() {
		t.Fatal("consumer not drained after slot loop")
	}
}

func TestConsumerSlotsEarlyBreak(t *testing.T) {
	log := &releaseLog{}
	c := garr.Consume(resArray(log, 0))
	s, pos := c.Slots()
	for p := range s {
		var zero res
		*p = zero
		*pos++
		break
	}
	if c.Remaining() != 4 {
		t.Fatalf("Remaining() = %d after one slot, want 4", c.Remaining())
	}
	c.Discard()
	if want := []int{1, 2, 3, 4}; !slices.Equal(log.order, want) {
		t.Fatalf("released %v, want %v", log.order, want)
	}
}

func TestConsumerMoveIn(t *testing.T) {
	a := garr.Of[garr.S2[int]](5, 6)
	c := garr.Consume(a)
	a.Set(0, 99)
	if got := c.Take(); got != 5 {
		t.Fatalf("Take() = %d after mutating the source, want 5", got)
	}
}

func TestConsumerZeroLength(t *testing.T) {
	var a garr.Array[int, garr.S0[int]]
	c := garr.Consume(a)
	if !c.Drained() {
		t.Fatal("zero-length consumer must start drained")
	}
	if _, ok := c.TryTake(); ok {
		t.Fatal("TryTake produced an element from zero-length consumer")
	}
	c.Discard()
}

// --- Benchmarks ---

func BenchmarkConsumerDrain(b *testing.B) {
	a := garr.Generate[garr.S32[int]](func(i int) int { return i })
	for b.Loop() {
		c := garr.Consume(a)
		for !c.Drained() {
			_ = c.Take()
		}
	}
}
