package board

import (
	"slices"
	"testing"
)

func TestBitboardSetClear(t *testing.T) {
	bb := Empty
	if !bb.IsEmpty() {
		t.Fatal("Empty should be empty")
	}

	bb = bb.Set(3).Set(40)
	if !bb.IsSet(3) || !bb.IsSet(40) || bb.IsSet(4) {
		t.Errorf("unexpected bits in %x", uint64(bb))
	}
	if bb.PopCount() != 2 {
		t.Errorf("PopCount = %d, want 2", bb.PopCount())
	}

	bb = bb.Clear(3)
	if bb.IsSet(3) {
		t.Error("Clear(3) left bit 3 set")
	}

	bb = bb.Toggle(40).Toggle(41)
	if bb != SquareBB(41) {
		t.Errorf("Toggle result = %x, want %x", uint64(bb), uint64(SquareBB(41)))
	}

	if SquareBB(NoSquare) != Empty {
		t.Error("SquareBB(NoSquare) should be empty")
	}
	if Empty.Set(NoSquare) != Empty {
		t.Error("Set(NoSquare) should be a no-op")
	}
}

func TestBitboardAlgebra(t *testing.T) {
	a := SquareBB(1) | SquareBB(2)
	b := SquareBB(2) | SquareBB(3)

	if got := a.Or(b); got != SquareBB(1)|SquareBB(2)|SquareBB(3) {
		t.Errorf("Or = %x", uint64(got))
	}
	if got := a.And(b); got != SquareBB(2) {
		t.Errorf("And = %x", uint64(got))
	}
	if got := a.Xor(b); got != SquareBB(1)|SquareBB(3) {
		t.Errorf("Xor = %x", uint64(got))
	}
	if got := a.Not().PopCount(); got != SquareCount-2 {
		t.Errorf("Not().PopCount() = %d, want %d", got, SquareCount-2)
	}
	if a.Not()&AllSquares != a.Not() {
		t.Error("Not sets bits outside the board")
	}
	if !a.Equals(SquareBB(2) | SquareBB(1)) {
		t.Error("Equals should ignore construction order")
	}
}

func TestBitboardEnumeration(t *testing.T) {
	bb := SquareBB(63) | SquareBB(0) | SquareBB(17) | SquareBB(32)
	want := []Square{0, 17, 32, 63}

	if got := bb.Squares(); !slices.Equal(got, want) {
		t.Errorf("Squares() = %v, want %v", got, want)
	}

	// Ranging twice over the same value yields the same sequence.
	for pass := 0; pass < 2; pass++ {
		got := slices.Collect(bb.All())
		if !slices.Equal(got, want) {
			t.Errorf("pass %d: All() = %v, want %v", pass, got, want)
		}
	}

	var seen []Square
	bb.ForEach(func(sq Square) { seen = append(seen, sq) })
	if !slices.Equal(seen, want) {
		t.Errorf("ForEach visited %v, want %v", seen, want)
	}

	// Early exit stops the iterator.
	count := 0
	for range bb.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("iterated %d squares after break, want 2", count)
	}

	if bb.LSB() != 0 {
		t.Errorf("LSB = %v, want a1", bb.LSB())
	}
	if Empty.LSB() != NoSquare {
		t.Error("LSB of empty bitboard should be NoSquare")
	}
}

func TestRingMask(t *testing.T) {
	union := Empty
	for ring := 0; ring < Rings; ring++ {
		mask := RingMask[ring]
		if mask.PopCount() != Files {
			t.Errorf("ring %d mask has %d squares", ring, mask.PopCount())
		}
		for sq := range mask.All() {
			if sq.Ring() != ring {
				t.Errorf("ring %d mask contains %v", ring, sq)
			}
		}
		union |= mask
	}
	if union != AllSquares {
		t.Error("ring masks do not cover the board")
	}
}
