package board

import (
	"fmt"
	"strings"
)

// Board holds the piece placement.
//
// The squares array is the source of truth for what stands where; the piece,
// color and combined bitboards are derived from it and are updated together
// on every placement and removal. Board contains only arrays, so assigning a
// Board value produces an independent copy.
type Board struct {
	squares [SquareCount]Piece

	// Piece bitboards: [Color][PieceType]
	pieces [2][6]Bitboard

	// Occupancy bitboards (cached for efficiency)
	occupied    [2]Bitboard
	allOccupied Bitboard
}

// NewBoard creates an empty board.
func NewBoard() Board {
	var b Board
	b.Clear()
	return b
}

// Clear resets the board to the freshly constructed, empty state.
func (b *Board) Clear() {
	*b = Board{}
	for i := range b.squares {
		b.squares[i] = NoPiece
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() Board {
	return *b
}

// PieceAt returns the piece at the given square, or NoPiece if the square is
// empty or off the board.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b.squares[sq]
}

// At returns the piece at (ring, file), or NoPiece for an invalid ring.
func (b *Board) At(ring, file int) Piece {
	return b.PieceAt(NewSquare(ring, file))
}

// IsEmpty returns true if the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.PieceAt(sq) == NoPiece
}

// SetPiece places a piece on a square. An existing occupant is removed first
// so no stale bitboard bits survive. NoPiece and off-board squares are ignored;
// use RemovePiece to empty a square.
func (b *Board) SetPiece(sq Square, piece Piece) {
	if !sq.IsValid() || piece >= NoPiece {
		return
	}
	if b.squares[sq] != NoPiece {
		b.RemovePiece(sq)
	}

	c := piece.Color()
	bb := SquareBB(sq)

	b.squares[sq] = piece
	b.pieces[c][piece.Type()] |= bb
	b.occupied[c] |= bb
	b.allOccupied |= bb
}

// RemovePiece empties a square and returns what stood there.
// Removing from an empty square is a no-op that returns NoPiece.
func (b *Board) RemovePiece(sq Square) Piece {
	piece := b.PieceAt(sq)
	if piece == NoPiece {
		return NoPiece
	}

	c := piece.Color()
	bb := SquareBB(sq)

	b.squares[sq] = NoPiece
	b.pieces[c][piece.Type()] &^= bb
	b.occupied[c] &^= bb
	b.allOccupied &^= bb

	return piece
}

// Pieces returns the bitboard of pieces of one color and type.
func (b *Board) Pieces(c Color, pt PieceType) Bitboard {
	if c >= NoColor || pt >= NoPieceType {
		return Empty
	}
	return b.pieces[c][pt]
}

// Occupancy returns the bitboard of all pieces of one color.
func (b *Board) Occupancy(c Color) Bitboard {
	if c >= NoColor {
		return Empty
	}
	return b.occupied[c]
}

// AllOccupancy returns the bitboard of all pieces on the board.
func (b *Board) AllOccupancy() Bitboard {
	return b.allOccupied
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	return b.allOccupied.PopCount()
}

// Validate checks that the slot array and every derived bitboard agree.
func (b *Board) Validate() error {
	var pieces [2][6]Bitboard
	for sq := Square(0); sq < NoSquare; sq++ {
		p := b.squares[sq]
		if p == NoPiece {
			continue
		}
		if p > NoPiece {
			return fmt.Errorf("square %s holds invalid piece %d", sq, p)
		}
		pieces[p.Color()][p.Type()] |= SquareBB(sq)
	}

	if pieces != b.pieces {
		return fmt.Errorf("piece bitboards out of sync with squares")
	}

	var occupied [2]Bitboard
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			occupied[c] |= pieces[c][pt]
		}
	}
	if occupied != b.occupied {
		return fmt.Errorf("color occupancy out of sync with squares")
	}
	if occupied[White]|occupied[Black] != b.allOccupied {
		return fmt.Errorf("combined occupancy out of sync with squares")
	}
	return nil
}

// String returns a diagram of the board with the outer ring on top.
func (b *Board) String() string {
	var sb strings.Builder
	for ring := Rings - 1; ring >= 0; ring-- {
		fmt.Fprintf(&sb, "%d  ", ring+1)
		for file := 0; file < Files; file++ {
			piece := b.At(ring, file)
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h i j k l m n o p\n")
	return sb.String()
}
