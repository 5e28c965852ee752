package board

import "testing"

// mustParseRLN parses an RLN string or fails the test.
func mustParseRLN(t *testing.T, rln string) GameState {
	t.Helper()
	s, err := ParseRLN(rln)
	if err != nil {
		t.Fatalf("ParseRLN(%q): %v", rln, err)
	}
	return s
}

func squares(names ...string) Bitboard {
	bb := Empty
	for _, n := range names {
		sq, err := ParseSquare(n)
		if err != nil {
			panic(err)
		}
		bb = bb.Set(sq)
	}
	return bb
}

func TestLegalMovesStartingPosition(t *testing.T) {
	tests := []struct {
		mode Mode
		want map[string][]string
	}{
		{
			mode: Standard,
			want: map[string][]string{
				"b1": {"c1"},
				"o1": {"n1"},
				"a2": {"c4"},
				"b2": {"c2"},
				"o2": {"n2"},
				"p2": {"n4"},
				"a3": {"c2", "c4"},
				"b3": {"c3"},
				"o3": {"n3"},
				"p3": {"n2", "n4"},
				"b4": {"c4"},
				"o4": {"n4"},
			},
		},
		{
			mode: Citadel,
			want: map[string][]string{
				"o1": {"n1"},
				"a2": {"c1", "c3"},
				"o2": {"n2"},
				"p2": {"n1", "n3"},
				"a3": {"c1"},
				"o3": {"n3"},
				"p3": {"n1"},
				"o4": {"n4"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			s := Initial(tc.mode)
			all := s.AllLegalMoves()
			if len(all) != len(tc.want) {
				t.Errorf("%d pieces can move, want %d", len(all), len(tc.want))
			}
			for from, to := range tc.want {
				sq, _ := ParseSquare(from)
				if got := s.LegalMoves(sq); got != squares(to...) {
					t.Errorf("LegalMoves(%s) = %v, want %v", from, got.Squares(), to)
				}
				if all[sq] != squares(to...) {
					t.Errorf("AllLegalMoves()[%s] = %v, want %v", from, all[sq].Squares(), to)
				}
			}
		})
	}
}

// TestStandardQueenScenario checks that the white queen on a1 moves exactly to
// its fers targets that are not held by white pieces.
func TestStandardQueenScenario(t *testing.T) {
	s := Initial(Standard)
	a1 := NewSquare(0, 0)
	if s.PieceAt(a1) != WhiteQueen {
		t.Fatalf("a1 holds %v, want white queen", s.PieceAt(a1))
	}

	want := QueenAttacks(a1, Standard) &^ s.Occupancy(White)
	if got := s.LegalMoves(a1); got != want {
		t.Errorf("LegalMoves(a1) = %v, want %v", got.Squares(), want.Squares())
	}

	// Clear the way and the queen reaches both outward diagonals.
	open := mustParseRLN(t, "16/16/16/Q15 w")
	if got := open.LegalMoves(a1); got != squares("b2", "p2") {
		t.Errorf("open queen moves = %v", got.Squares())
	}
}

// TestRookRayStop checks that the rook stops on, and may capture, the first
// piece in its way.
func TestRookRayStop(t *testing.T) {
	s := mustParseRLN(t, "16/16/16/R2p12 w")
	moves := s.LegalMoves(NewSquare(0, 0))

	clockwise := Empty
	for file := 1; file <= 3; file++ {
		clockwise = clockwise.Set(NewSquare(0, file))
	}
	if moves&clockwise != clockwise {
		t.Errorf("rook should reach b1-d1 including the capture, got %v", moves.Squares())
	}

	counter := Empty
	for i := 1; i <= 15; i++ {
		counter = counter.Set(NewSquare(0, -i))
	}
	if moves&RingMask[0] != counter {
		t.Errorf("ring moves = %v, want %v", (moves & RingMask[0]).Squares(), counter.Squares())
	}

	// A friendly blocker is not a target. The clockwise ray stops in front
	// of it; the counter-clockwise ray runs all the way round to e1.
	own := mustParseRLN(t, "16/16/16/R2P12 w")
	ring := own.LegalMoves(NewSquare(0, 0)) & RingMask[0]
	if ring.IsSet(NewSquare(0, 3)) {
		t.Error("rook may capture its own pawn")
	}
	if !ring.IsSet(NewSquare(0, 4)) {
		t.Error("counter-clockwise ray should reach e1")
	}
	wantRing := RingMask[0] &^ squares("a1", "d1")
	if ring != wantRing {
		t.Errorf("ring moves = %v, want %v", ring.Squares(), wantRing.Squares())
	}
	if cw := ring & squares("b1", "c1", "d1"); cw != squares("b1", "c1") {
		t.Errorf("clockwise ray = %v, want [b1 c1]", cw.Squares())
	}
}

func TestPawnCaptures(t *testing.T) {
	// White pawn on c2 with a black piece ahead-outward and a white piece
	// ahead-inward.
	s := mustParseRLN(t, "16/3n12/2P13/3N12 w")
	c2 := NewSquare(1, 2)
	if got := s.LegalMoves(c2); got != squares("d2", "d3") {
		t.Errorf("LegalMoves(c2) = %v, want [d2 d3]", got.Squares())
	}

	// Blocked straight ahead: only the capture remains.
	blocked := mustParseRLN(t, "16/3n12/2Pn12/16 w")
	if got := blocked.LegalMoves(c2); got != squares("d3") {
		t.Errorf("blocked LegalMoves(c2) = %v, want [d3]", got.Squares())
	}
}

func TestLegalMovesWrongSide(t *testing.T) {
	s := Initial(Standard)
	if got := s.LegalMoves(NewSquare(0, 6)); got != Empty {
		t.Errorf("black pawn moves on white's turn: %v", got.Squares())
	}
	if got := s.LegalMoves(NewSquare(0, 4)); got != Empty {
		t.Errorf("empty square has moves: %v", got.Squares())
	}
	if got := s.LegalMoves(NoSquare); got != Empty {
		t.Errorf("off-board square has moves: %v", got.Squares())
	}
	if s.IsLegalMove(NewSquare(0, 1), NoSquare) {
		t.Error("move to NoSquare reported legal")
	}
}

func TestCitadelMask(t *testing.T) {
	s := mustParseRLN(t, "16/16/16/R15 w citadel c1,e2")
	moves := s.LegalMoves(NewSquare(0, 0))
	if moves.IsSet(NewSquare(0, 2)) {
		t.Error("rook may enter citadel square c1")
	}
	if !moves.IsSet(NewSquare(0, 3)) {
		t.Error("citadel squares do not block the ray")
	}

	// The mask belongs to citadel mode only.
	standard := mustParseRLN(t, "16/16/16/R15 w standard c1")
	if !standard.LegalMoves(NewSquare(0, 0)).IsSet(NewSquare(0, 2)) {
		t.Error("citadel squares masked outside citadel mode")
	}
}

// TestCitadelPawnScenario checks the white pawn on b1 under citadel rules.
func TestCitadelPawnScenario(t *testing.T) {
	b1 := NewSquare(0, 1)
	if got := PawnDirection(b1, White, Citadel); got != -1 {
		t.Errorf("direction = %d, want -1", got)
	}

	s := mustParseRLN(t, "16/16/16/1P14 w citadel")
	if got := s.LegalMoves(b1); got != squares("a1") {
		t.Errorf("LegalMoves(b1) = %v, want [a1]", got.Squares())
	}
}

func TestGenerateMovesOrder(t *testing.T) {
	s := Initial(Standard)
	moves := s.GenerateMoves().Slice()

	total := 0
	for _, bb := range s.AllLegalMoves() {
		total += bb.PopCount()
	}
	if len(moves) != total {
		t.Fatalf("GenerateMoves returned %d moves, AllLegalMoves %d", len(moves), total)
	}

	for i := 1; i < len(moves); i++ {
		prev, cur := moves[i-1], moves[i]
		if prev.From() > cur.From() || (prev.From() == cur.From() && prev.To() >= cur.To()) {
			t.Errorf("moves out of order: %v before %v", prev, cur)
		}
	}
	for _, m := range moves {
		if !s.IsLegalMove(m.From(), m.To()) {
			t.Errorf("generated move %v is not legal", m)
		}
	}
	if !s.HasMoves() {
		t.Error("starting position should have moves")
	}
	if EmptyState(Standard).HasMoves() {
		t.Error("empty board should have no moves")
	}
}

// TestSelfCheckAllowed documents that moves exposing the king are generated.
func TestSelfCheckAllowed(t *testing.T) {
	// The white king on a1 steps next to the black rook's file.
	s := mustParseRLN(t, "16/16/r15/K15 w")
	if !s.IsLegalMove(NewSquare(0, 0), NewSquare(0, 1)) {
		t.Error("king move should be generated")
	}
	if !s.IsLegalMove(NewSquare(0, 0), NewSquare(1, 0)) {
		t.Error("king may step into the rook's line")
	}
}
