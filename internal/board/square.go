// Package board implements the circular chess rules engine using bitboards.
//
// The board is a cylinder of 4 concentric rings and 16 files. Files wrap
// around (file 15 is adjacent to file 0); rings are bounded, ring 0 being the
// innermost band and ring 3 the outermost.
package board

import "fmt"

// Board dimensions.
const (
	Rings       = 4
	Files       = 16
	SquareCount = Rings * Files
)

// Square is a linear square index: ring*16 + file (0-63).
type Square uint8

// NoSquare is the off-board sentinel.
const NoSquare Square = SquareCount

// NormalizeFile wraps a file index into [0, 16). Negative files wrap as well,
// so file -1 becomes 15.
func NormalizeFile(file int) int {
	return (file%Files + Files) % Files
}

// IsValidRing returns true if the ring is within [0, 4).
func IsValidRing(ring int) bool {
	return ring >= 0 && ring < Rings
}

// NewSquare creates a square from ring and file. The file is normalized;
// an out-of-range ring yields NoSquare.
func NewSquare(ring, file int) Square {
	if !IsValidRing(ring) {
		return NoSquare
	}
	return Square(ring*Files + NormalizeFile(file))
}

// Ring returns the ring (0 innermost, 3 outermost).
func (sq Square) Ring() int {
	return int(sq) / Files
}

// File returns the file (0-15).
func (sq Square) File() int {
	return int(sq) % Files
}

// IsValid returns true if the square is on the board.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Offset returns the square dr rings and df files away. The file wraps,
// the ring does not: stepping past ring 0 or ring 3 yields NoSquare.
func (sq Square) Offset(dr, df int) Square {
	if !sq.IsValid() {
		return NoSquare
	}
	return NewSquare(sq.Ring()+dr, sq.File()+df)
}

// String returns the square name: file letter a-p followed by ring digit 1-4.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Ring())
}

// ParseSquare parses a square name such as "a1" or "p4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	file := int(s[0]) - 'a'
	ring := int(s[1]) - '1'

	if file < 0 || file >= Files || !IsValidRing(ring) {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(ring, file), nil
}
