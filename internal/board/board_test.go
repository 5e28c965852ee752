package board

import (
	"math/rand"
	"testing"
)

func TestBoardSetRemove(t *testing.T) {
	b := NewBoard()
	sq := NewSquare(2, 5)

	b.SetPiece(sq, WhiteRook)
	if b.PieceAt(sq) != WhiteRook {
		t.Fatalf("PieceAt = %v, want R", b.PieceAt(sq))
	}
	if !b.Pieces(White, Rook).IsSet(sq) || !b.Occupancy(White).IsSet(sq) || !b.AllOccupancy().IsSet(sq) {
		t.Error("bitboards not updated on SetPiece")
	}

	// Replacing an occupant must clear its old bits.
	b.SetPiece(sq, BlackKnight)
	if b.Pieces(White, Rook) != Empty || b.Occupancy(White) != Empty {
		t.Error("stale white rook bits after replacement")
	}
	if !b.Pieces(Black, Knight).IsSet(sq) {
		t.Error("black knight bit missing after replacement")
	}

	if got := b.RemovePiece(sq); got != BlackKnight {
		t.Errorf("RemovePiece = %v, want n", got)
	}
	if b.AllOccupancy() != Empty || b.Count() != 0 {
		t.Error("board not empty after removal")
	}

	// Removing from an empty square is a no-op.
	if got := b.RemovePiece(sq); got != NoPiece {
		t.Errorf("RemovePiece on empty square = %v", got)
	}

	// NoPiece and off-board squares are ignored.
	b.SetPiece(sq, NoPiece)
	b.SetPiece(NoSquare, WhiteKing)
	if b.Count() != 0 {
		t.Error("ignored placements changed the board")
	}
	if b.PieceAt(NoSquare) != NoPiece || b.At(-1, 0) != NoPiece {
		t.Error("off-board reads should return NoPiece")
	}
}

// TestBoardSyncInvariant applies random placements and removals and checks
// that the slot array and all bitboards stay in agreement.
func TestBoardSyncInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := NewBoard()

	for i := 0; i < 5000; i++ {
		sq := Square(rng.Intn(SquareCount))
		if rng.Intn(3) == 0 {
			b.RemovePiece(sq)
		} else {
			b.SetPiece(sq, Piece(rng.Intn(int(NoPiece))))
		}

		if err := b.Validate(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	for sq := Square(0); sq < NoSquare; sq++ {
		p := b.PieceAt(sq)
		occupied := p != NoPiece
		if b.AllOccupancy().IsSet(sq) != occupied {
			t.Errorf("%v: all-occupancy disagrees with slot", sq)
		}
		if occupied {
			if !b.Pieces(p.Color(), p.Type()).IsSet(sq) || !b.Occupancy(p.Color()).IsSet(sq) {
				t.Errorf("%v: bitboards miss %v", sq, p)
			}
		}
	}
}

func TestBoardCloneIndependent(t *testing.T) {
	b := NewBoard()
	b.SetPiece(NewSquare(0, 0), WhiteQueen)

	c := b.Clone()
	c.RemovePiece(NewSquare(0, 0))
	c.SetPiece(NewSquare(1, 1), BlackPawn)

	if b.PieceAt(NewSquare(0, 0)) != WhiteQueen || b.Count() != 1 {
		t.Error("mutating the clone changed the original")
	}
	if c.PieceAt(NewSquare(1, 1)) != BlackPawn || c.Count() != 1 {
		t.Error("clone did not take the mutation")
	}
}

func TestBoardClear(t *testing.T) {
	b := Initial(Standard).Board()
	b.Clear()
	if b != NewBoard() {
		t.Error("cleared board differs from a new board")
	}
}
