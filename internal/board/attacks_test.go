package board

import "testing"

// inBounds counts the offsets from sq that land on a valid ring.
func inBounds(sq Square, offsets []offset, ringSign int) int {
	n := 0
	for _, o := range offsets {
		if IsValidRing(sq.Ring() + o.dr*ringSign) {
			n++
		}
	}
	return n
}

func TestLeaperAttackCounts(t *testing.T) {
	tests := []struct {
		name    string
		offsets []offset
		attacks func(Square, Mode) Bitboard
		full    int
	}{
		{"king", kingOffsets, KingAttacks, 8},
		{"queen", queenOffsets, QueenAttacks, 4},
		{"bishop", bishopOffsets, BishopAttacks, 4},
		{"knight", knightOffsets, KnightAttacks, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, mode := range Modes {
				for sq := Square(0); sq < NoSquare; sq++ {
					got := tc.attacks(sq, mode).PopCount()
					want := inBounds(sq, tc.offsets, radialSign(mode))
					if got != want {
						t.Errorf("%s %v: %d targets, want %d", mode, sq, got, want)
					}
					if want > tc.full {
						t.Fatalf("%v: more in-bounds offsets than the pattern has", sq)
					}
				}
			}

			// Interior squares with only one-ring offsets are never clipped.
			if tc.name == "king" || tc.name == "queen" {
				for file := 0; file < Files; file++ {
					for _, ring := range []int{1, 2} {
						sq := NewSquare(ring, file)
						if got := tc.attacks(sq, Standard).PopCount(); got != tc.full {
							t.Errorf("%v: %d targets, want %d", sq, got, tc.full)
						}
					}
				}
			}
		})
	}
}

func TestKnightAttacksEdge(t *testing.T) {
	sq := NewSquare(0, 0)
	want := SquareBB(NewSquare(1, 2)) | SquareBB(NewSquare(1, 14)) |
		SquareBB(NewSquare(2, 1)) | SquareBB(NewSquare(2, 15))
	if got := KnightAttacks(sq, Standard); got != want {
		t.Errorf("KnightAttacks(a1) =\n%v want\n%v", got, want)
	}
}

// TestCitadelRadialReversal checks that every citadel leap is the standard
// leap with its ring delta negated. The offsets are reversed one at a time:
// flipping an attack set the board edge has already clipped loses squares.
func TestCitadelRadialReversal(t *testing.T) {
	leapers := []struct {
		name    string
		offsets []offset
		attacks func(Square, Mode) Bitboard
	}{
		{"king", kingOffsets, KingAttacks},
		{"queen", queenOffsets, QueenAttacks},
		{"bishop", bishopOffsets, BishopAttacks},
		{"knight", knightOffsets, KnightAttacks},
	}

	for _, tc := range leapers {
		t.Run(tc.name, func(t *testing.T) {
			for sq := Square(0); sq < NoSquare; sq++ {
				standard, reversed := Empty, Empty
				for _, o := range tc.offsets {
					standard |= SquareBB(sq.Offset(o.dr, o.df))
					reversed |= SquareBB(sq.Offset(-o.dr, o.df))
				}
				if got := tc.attacks(sq, Standard); got != standard {
					t.Errorf("%v: standard attacks =\n%v want\n%v", sq, got, standard)
				}
				if got := tc.attacks(sq, Citadel); got != reversed {
					t.Errorf("%v: citadel attacks =\n%v want\n%v", sq, got, reversed)
				}
			}
		})
	}

	t.Run("edge", func(t *testing.T) {
		// A fers on the outer ring can only step inward in standard play,
		// and the reversal must not leave it without moves.
		p4 := NewSquare(3, 15)
		want := SquareBB(NewSquare(2, 0)) | SquareBB(NewSquare(2, 14))
		if got := QueenAttacks(p4, Citadel); got != want {
			t.Errorf("QueenAttacks(p4, citadel) =\n%v want\n%v", got, want)
		}
	})

	t.Run("rook", func(t *testing.T) {
		occupied := SquareBB(NewSquare(2, 4)) | SquareBB(NewSquare(1, 9)) | SquareBB(NewSquare(0, 12))
		for sq := Square(0); sq < NoSquare; sq++ {
			if RookAttacks(sq, occupied, Standard) != RookAttacks(sq, occupied, Citadel) {
				t.Errorf("%v: rook attacks differ between modes", sq)
			}
		}
	})
}

func TestRookAttacks(t *testing.T) {
	a1 := NewSquare(0, 0)

	tests := []struct {
		name     string
		occupied Bitboard
		want     Bitboard
	}{
		{
			name:     "empty board",
			occupied: Empty,
			want:     RingMask[0].Clear(a1) | SquareBB(NewSquare(1, 0)) | SquareBB(NewSquare(2, 0)) | SquareBB(NewSquare(3, 0)),
		},
		{
			name:     "blocked both ways along the ring",
			occupied: SquareBB(NewSquare(0, 3)) | SquareBB(NewSquare(0, 13)),
			want: SquareBB(NewSquare(0, 1)) | SquareBB(NewSquare(0, 2)) | SquareBB(NewSquare(0, 3)) |
				SquareBB(NewSquare(0, 13)) | SquareBB(NewSquare(0, 14)) | SquareBB(NewSquare(0, 15)) |
				SquareBB(NewSquare(1, 0)) | SquareBB(NewSquare(2, 0)) | SquareBB(NewSquare(3, 0)),
		},
		{
			name:     "blocked outward",
			occupied: SquareBB(NewSquare(2, 0)),
			want:     RingMask[0].Clear(a1) | SquareBB(NewSquare(1, 0)) | SquareBB(NewSquare(2, 0)),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RookAttacks(a1, tc.occupied, Standard); got != tc.want {
				t.Errorf("RookAttacks =\n%v want\n%v", got, tc.want)
			}
		})
	}

	// Rays never revisit the origin.
	for sq := Square(0); sq < NoSquare; sq++ {
		if RookAttacks(sq, Empty, Standard).IsSet(sq) {
			t.Errorf("%v attacks itself", sq)
		}
		if got := RookAttacks(sq, Empty, Standard).PopCount(); got != Files-1+Rings-1 {
			t.Errorf("%v: %d rook targets on empty board, want %d", sq, got, Files-1+Rings-1)
		}
	}
}

func TestPawnDirection(t *testing.T) {
	tests := []struct {
		name  string
		sq    Square
		color Color
		mode  Mode
		want  int
	}{
		{"standard white queen side", NewSquare(0, 1), White, Standard, 1},
		{"standard black queen side", NewSquare(0, 6), Black, Standard, -1},
		{"standard white king side", NewSquare(0, 14), White, Standard, -1},
		{"standard black king side", NewSquare(0, 9), Black, Standard, -1},
		{"modern follows standard", NewSquare(2, 1), White, Modern, 1},
		{"citadel white by color", NewSquare(0, 1), White, Citadel, -1},
		{"citadel white other side", NewSquare(0, 14), White, Citadel, -1},
		{"citadel black by color", NewSquare(0, 9), Black, Citadel, 1},
		{"citadel black other side", NewSquare(0, 6), Black, Citadel, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PawnDirection(tc.sq, tc.color, tc.mode); got != tc.want {
				t.Errorf("PawnDirection = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPawnMovesAndAttacks(t *testing.T) {
	sq := NewSquare(1, 3)

	if got := PawnMoves(sq, White, Standard, Empty); got != SquareBB(NewSquare(1, 4)) {
		t.Errorf("PawnMoves =\n%v", got)
	}
	if got := PawnMoves(sq, White, Standard, SquareBB(NewSquare(1, 4))); got != Empty {
		t.Errorf("blocked pawn should have no move, got\n%v", got)
	}

	want := SquareBB(NewSquare(0, 4)) | SquareBB(NewSquare(2, 4))
	if got := PawnAttacks(sq, White, Standard); got != want {
		t.Errorf("PawnAttacks =\n%v want\n%v", got, want)
	}

	// Only one ring neighbor exists on the edge rings.
	edge := NewSquare(3, 10)
	if got := PawnAttacks(edge, Black, Standard); got != SquareBB(NewSquare(2, 9)) {
		t.Errorf("edge PawnAttacks =\n%v", got)
	}

	// Citadel: white moves toward lower files wherever it stands.
	if got := PawnMoves(NewSquare(0, 1), White, Citadel, Empty); got != SquareBB(NewSquare(0, 0)) {
		t.Errorf("citadel PawnMoves =\n%v", got)
	}
	if got := PawnAttacks(NewSquare(1, 1), White, Citadel); got != SquareBB(NewSquare(0, 0))|SquareBB(NewSquare(2, 0)) {
		t.Errorf("citadel PawnAttacks =\n%v", got)
	}
}

func TestMovesDispatch(t *testing.T) {
	sq := NewSquare(1, 5)
	for pt := Knight; pt <= King; pt++ {
		p := NewPiece(pt, White)
		if got := Moves(p, sq, Standard, Empty); got != Empty {
			t.Errorf("%v has non-capturing moves: %v", p.Name(), got.Squares())
		}
	}
	if Attacks(NoPiece, sq, Standard, Empty) != Empty {
		t.Error("NoPiece should attack nothing")
	}
	if KingAttacks(NoSquare, Standard) != Empty || RookAttacks(NoSquare, Empty, Citadel) != Empty {
		t.Error("off-board squares should attack nothing")
	}
}
