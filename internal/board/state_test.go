package board

import "testing"

func TestInitialSetup(t *testing.T) {
	tests := []struct {
		mode   Mode
		pieces map[string]Piece
	}{
		{
			mode: Standard,
			pieces: map[string]Piece{
				"p1": WhiteKing, "a1": WhiteQueen, "p4": WhiteRook, "a3": WhiteKnight,
				"h1": BlackKing, "i1": BlackQueen, "h4": BlackRook, "i2": BlackBishop,
				"b1": WhitePawn, "o4": WhitePawn, "g3": BlackPawn, "j1": BlackPawn,
			},
		},
		{
			mode: Citadel,
			pieces: map[string]Piece{
				"p4": WhiteKing, "a4": WhiteQueen, "a1": WhiteRook, "p1": WhiteRook,
				"h4": BlackKing, "i4": BlackQueen, "h1": BlackRook, "i3": BlackBishop,
				"b2": WhitePawn, "g4": BlackPawn,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			s := Initial(tc.mode)
			if s.Turn() != White || s.Mode() != tc.mode || s.IsDraw() || s.CitadelSquares() != Empty {
				t.Errorf("unexpected state header: turn %v mode %v draw %v", s.Turn(), s.Mode(), s.IsDraw())
			}

			b := s.Board()
			if b.Count() != 32 {
				t.Errorf("%d pieces on the board, want 32", b.Count())
			}
			for c := White; c <= Black; c++ {
				if n := b.Pieces(c, Pawn).PopCount(); n != 8 {
					t.Errorf("%v has %d pawns, want 8", c, n)
				}
				if n := b.Pieces(c, King).PopCount(); n != 1 {
					t.Errorf("%v has %d kings, want 1", c, n)
				}
			}
			if err := b.Validate(); err != nil {
				t.Fatal(err)
			}

			for name, want := range tc.pieces {
				sq, _ := ParseSquare(name)
				if got := s.PieceAt(sq); got != want {
					t.Errorf("%s holds %v, want %v", name, got.Name(), want.Name())
				}
			}
		})
	}
}

func TestModernMatchesStandard(t *testing.T) {
	standard := Initial(Standard)
	modern := Initial(Modern)
	if standard.Board() != modern.Board() {
		t.Error("modern layout differs from standard")
	}
	if modern.Mode() != Modern {
		t.Errorf("mode = %v, want modern", modern.Mode())
	}
}

func TestMakeMove(t *testing.T) {
	s := Initial(Standard)
	b1, c1 := NewSquare(0, 1), NewSquare(0, 2)

	next := s.MakeMove(b1, c1)
	if next.Turn() != Black {
		t.Errorf("turn = %v, want Black", next.Turn())
	}
	if next.PieceAt(c1) != WhitePawn || next.PieceAt(b1) != NoPiece {
		t.Error("pawn not relocated")
	}
	if next.Mode() != s.Mode() || next.CitadelSquares() != s.CitadelSquares() || next.IsDraw() != s.IsDraw() {
		t.Error("mode, citadels or draw flag changed")
	}

	// The original state is untouched.
	if s.PieceAt(b1) != WhitePawn || s.PieceAt(c1) != NoPiece || s.Turn() != White {
		t.Error("MakeMove mutated its input")
	}
	if s != Initial(Standard) {
		t.Error("input state no longer equals a fresh initial state")
	}
}

func TestMakeMoveCapture(t *testing.T) {
	s := mustParseRLN(t, "16/16/16/R2p12 w")
	a1, d1 := NewSquare(0, 0), NewSquare(0, 3)

	next := s.MakeMove(a1, d1)
	b := next.Board()
	if next.PieceAt(d1) != WhiteRook {
		t.Errorf("d1 holds %v, want R", next.PieceAt(d1))
	}
	if b.Occupancy(Black) != Empty || b.Pieces(Black, Pawn) != Empty {
		t.Error("captured pawn left bits behind")
	}
	if err := b.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestMakeMoveInvalid(t *testing.T) {
	s := Initial(Standard)

	tests := []struct {
		name     string
		from, to Square
	}{
		{"empty square", NewSquare(0, 4), NewSquare(0, 5)},
		{"wrong color", NewSquare(0, 6), NewSquare(0, 5)},
		{"off-board origin", NoSquare, NewSquare(0, 5)},
		{"off-board destination", NewSquare(0, 1), NoSquare},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next := s.MakeMove(tc.from, tc.to)
			if next != s {
				t.Error("invalid move changed the state")
			}
			if next.Turn() != White {
				t.Errorf("turn = %v, want White", next.Turn())
			}
		})
	}
}

// TestMakeMoveUnchecked documents that MakeMove relocates without consulting
// the move generator.
func TestMakeMoveUnchecked(t *testing.T) {
	s := Initial(Standard)
	from, to := NewSquare(0, 1), NewSquare(2, 5)
	if s.IsLegalMove(from, to) {
		t.Fatal("test move should be illegal")
	}
	next := s.MakeMove(from, to)
	if next.PieceAt(to) != WhitePawn {
		t.Error("MakeMove refused an unchecked relocation")
	}
}

func TestTurnAlternation(t *testing.T) {
	s := Initial(Citadel)
	for i := 0; i < 10; i++ {
		moves := s.GenerateMoves()
		if moves.Len() == 0 {
			break
		}
		m := moves.Get(0)
		next := s.ApplyMove(m)
		if next.Turn() == s.Turn() {
			t.Fatalf("ply %d: turn did not flip after %v", i, m)
		}
		s = next
	}
}

func TestWithCitadelSquares(t *testing.T) {
	s := Initial(Citadel)
	bb := squares("a1", "i1")
	withCitadels := s.WithCitadelSquares(bb)
	if withCitadels.CitadelSquares() != bb {
		t.Error("citadel squares not set")
	}
	if s.CitadelSquares() != Empty {
		t.Error("original state changed")
	}
}
