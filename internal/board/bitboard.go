package board

import (
	"iter"
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, one bit per square index.
// Bit 0 = ring 0 file 0, bit 15 = ring 0 file 15, bit 63 = ring 3 file 15.
type Bitboard uint64

// Special masks
const (
	Empty      Bitboard = 0
	AllSquares Bitboard = 0xFFFFFFFFFFFFFFFF
)

// RingMask holds the 16 squares of each ring.
var RingMask = [Rings]Bitboard{
	0x000000000000FFFF,
	0x00000000FFFF0000,
	0x0000FFFF00000000,
	0xFFFF000000000000,
}

// SquareBB returns a bitboard with only the given square set.
// Off-board squares yield Empty.
func SquareBB(sq Square) Bitboard {
	if !sq.IsValid() {
		return Empty
	}
	return 1 << sq
}

// Set sets a bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | SquareBB(sq)
}

// Clear clears a bit at the given square.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ SquareBB(sq)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&SquareBB(sq) != 0
}

// Toggle flips the bit at the given square.
func (b Bitboard) Toggle(sq Square) Bitboard {
	return b ^ SquareBB(sq)
}

// Or returns the union of two bitboards.
func (b Bitboard) Or(o Bitboard) Bitboard {
	return b | o
}

// And returns the intersection of two bitboards.
func (b Bitboard) And(o Bitboard) Bitboard {
	return b & o
}

// Xor returns the symmetric difference of two bitboards.
func (b Bitboard) Xor(o Bitboard) Bitboard {
	return b ^ o
}

// Not returns the complement. The type is exactly 64 bits wide, so the
// result never contains bits outside the board.
func (b Bitboard) Not() Bitboard {
	return ^b
}

// Equals reports whether both bitboards hold the same squares.
func (b Bitboard) Equals(o Bitboard) bool {
	return b == o
}

// IsEmpty returns true if no bits are set.
func (b Bitboard) IsEmpty() bool {
	return b == 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// ForEach calls the function for each set square in ascending order.
func (b Bitboard) ForEach(f func(Square)) {
	for b != 0 {
		f(b.PopLSB())
	}
}

// All returns a lazy iterator over the set squares in ascending order.
// Ranging over it again yields the same sequence.
func (b Bitboard) All() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for b != 0 {
			if !yield(b.PopLSB()) {
				return
			}
		}
	}
}

// Squares returns a slice of all squares that are set.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}

// String returns a diagram with the outer ring on top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for ring := Rings - 1; ring >= 0; ring-- {
		sb.WriteByte(byte('1' + ring))
		sb.WriteByte(' ')
		for file := 0; file < Files; file++ {
			if b.IsSet(NewSquare(ring, file)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h i j k l m n o p\n")
	return sb.String()
}
