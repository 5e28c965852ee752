package board

// offset is a (ring, file) step.
type offset struct {
	dr, df int
}

// Leaper patterns. Radial (ring) deltas are negated in citadel mode.
var (
	// Shah: one step in any direction.
	kingOffsets = []offset{
		{1, 0}, {-1, 0},
		{0, 1}, {0, -1},
		{1, 1}, {1, -1},
		{-1, 1}, {-1, -1},
	}

	// Fers: one step diagonally.
	queenOffsets = []offset{
		{1, 1}, {1, -1},
		{-1, 1}, {-1, -1},
	}

	// Alfil: a two-step diagonal jump.
	bishopOffsets = []offset{
		{2, 2}, {2, -2},
		{-2, 2}, {-2, -2},
	}

	knightOffsets = []offset{
		{1, 2}, {1, -2},
		{-1, 2}, {-1, -2},
		{2, 1}, {2, -1},
		{-2, 1}, {-2, -1},
	}
)

// Pre-computed attack tables for leapers in standard and modern mode.
// Built once at package initialization and never written afterwards.
var (
	kingAttacks   [SquareCount]Bitboard
	queenAttacks  [SquareCount]Bitboard
	bishopAttacks [SquareCount]Bitboard
	knightAttacks [SquareCount]Bitboard
)

func init() {
	for sq := Square(0); sq < NoSquare; sq++ {
		kingAttacks[sq] = leaperAttacks(sq, kingOffsets, 1)
		queenAttacks[sq] = leaperAttacks(sq, queenOffsets, 1)
		bishopAttacks[sq] = leaperAttacks(sq, bishopOffsets, 1)
		knightAttacks[sq] = leaperAttacks(sq, knightOffsets, 1)
	}
}

// leaperAttacks applies each offset to sq, with the ring delta multiplied by
// ringSign. Targets beyond ring 0 or ring 3 are dropped.
func leaperAttacks(sq Square, offsets []offset, ringSign int) Bitboard {
	attacks := Empty
	for _, o := range offsets {
		attacks |= SquareBB(sq.Offset(o.dr*ringSign, o.df))
	}
	return attacks
}

// radialSign returns -1 when the mode reverses radial movement.
func radialSign(mode Mode) int {
	if mode == Citadel {
		return -1
	}
	return 1
}

func tableOrCitadel(table *[SquareCount]Bitboard, offsets []offset, sq Square, mode Mode) Bitboard {
	if !sq.IsValid() {
		return Empty
	}
	if mode == Citadel {
		return leaperAttacks(sq, offsets, -1)
	}
	return table[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square, mode Mode) Bitboard {
	return tableOrCitadel(&kingAttacks, kingOffsets, sq, mode)
}

// QueenAttacks returns the fers (one-step diagonal) attack bitboard.
func QueenAttacks(sq Square, mode Mode) Bitboard {
	return tableOrCitadel(&queenAttacks, queenOffsets, sq, mode)
}

// BishopAttacks returns the alfil (two-step diagonal jump) attack bitboard.
func BishopAttacks(sq Square, mode Mode) Bitboard {
	return tableOrCitadel(&bishopAttacks, bishopOffsets, sq, mode)
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square, mode Mode) Bitboard {
	return tableOrCitadel(&knightAttacks, knightOffsets, sq, mode)
}

// RookAttacks returns the rook attack bitboard for a square with given
// occupancy. Each of the four rays stops at, and includes, the first occupied
// square. File rays wrap around the ring but never come back to the origin.
func RookAttacks(sq Square, occupied Bitboard, mode Mode) Bitboard {
	if !sq.IsValid() {
		return Empty
	}

	attacks := Empty

	// Clockwise and counter-clockwise along the ring
	for _, df := range [2]int{1, -1} {
		for i := 1; i < Files; i++ {
			target := sq.Offset(0, df*i)
			attacks |= SquareBB(target)
			if occupied.IsSet(target) {
				break
			}
		}
	}

	// Along the file: inward then outward. Citadel walks the two rays in the
	// opposite order; the reachable set is the same.
	for _, dr := range [2]int{-radialSign(mode), radialSign(mode)} {
		for i := 1; i < Rings; i++ {
			target := sq.Offset(dr*i, 0)
			if target == NoSquare {
				break
			}
			attacks |= SquareBB(target)
			if occupied.IsSet(target) {
				break
			}
		}
	}

	return attacks
}

// PawnDirection returns the file step of a pawn's forward move.
//
// In standard and modern mode the direction follows the board side: pawns on
// files 8-15 move counter-clockwise (-1); on files 0-7 white moves clockwise
// (+1) and black counter-clockwise (-1). In citadel mode it follows the color
// only: white -1, black +1.
func PawnDirection(sq Square, c Color, mode Mode) int {
	if mode == Citadel {
		if c == White {
			return -1
		}
		return 1
	}
	if sq.File() >= Files/2 {
		return -1
	}
	if c == White {
		return 1
	}
	return -1
}

// PawnMoves returns the forward (non-capturing) move of a pawn. Pawns never
// change ring when moving and have no move at all when the square ahead is
// occupied.
func PawnMoves(sq Square, c Color, mode Mode, occupied Bitboard) Bitboard {
	if !sq.IsValid() {
		return Empty
	}
	forward := sq.Offset(0, PawnDirection(sq, c, mode))
	if occupied.IsSet(forward) {
		return Empty
	}
	return SquareBB(forward)
}

// PawnAttacks returns the squares a pawn captures on: one file forward and
// one ring in or out.
func PawnAttacks(sq Square, c Color, mode Mode) Bitboard {
	if !sq.IsValid() {
		return Empty
	}
	df := PawnDirection(sq, c, mode)
	sign := radialSign(mode)
	return SquareBB(sq.Offset(sign, df)) | SquareBB(sq.Offset(-sign, df))
}

// Moves returns the non-capturing destinations of a piece. Only pawns have
// any; every other piece moves exactly the way it captures.
func Moves(p Piece, sq Square, mode Mode, occupied Bitboard) Bitboard {
	if p.Type() != Pawn {
		return Empty
	}
	return PawnMoves(sq, p.Color(), mode, occupied)
}

// Attacks returns the squares a piece threatens from sq.
func Attacks(p Piece, sq Square, mode Mode, occupied Bitboard) Bitboard {
	switch p.Type() {
	case Pawn:
		return PawnAttacks(sq, p.Color(), mode)
	case Knight:
		return KnightAttacks(sq, mode)
	case Bishop:
		return BishopAttacks(sq, mode)
	case Rook:
		return RookAttacks(sq, occupied, mode)
	case Queen:
		return QueenAttacks(sq, mode)
	case King:
		return KingAttacks(sq, mode)
	default:
		return Empty
	}
}
