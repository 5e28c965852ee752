package board

// placement is a piece on (ring, file).
type placement struct {
	ring, file int
	pt         PieceType
}

// Standard (Byzantine-style) layout, white side. Each back file runs from
// the inner ring outward: king or queen, bishop, knight, rook.
var standardWhite = []placement{
	{0, 15, King}, {1, 15, Bishop}, {2, 15, Knight}, {3, 15, Rook},
	{0, 0, Queen}, {1, 0, Bishop}, {2, 0, Knight}, {3, 0, Rook},
}

// Black faces white across the board: king on file 7, queen on file 8.
var standardBlack = []placement{
	{0, 7, King}, {1, 7, Bishop}, {2, 7, Knight}, {3, 7, Rook},
	{0, 8, Queen}, {1, 8, Bishop}, {2, 8, Knight}, {3, 8, Rook},
}

// Citadel layout: rooks on the inner ring, king and queen on the outer one.
var citadelWhite = []placement{
	{0, 15, Rook}, {0, 0, Rook},
	{1, 15, Knight}, {1, 0, Knight},
	{2, 15, Bishop}, {2, 0, Bishop},
	{3, 15, King}, {3, 0, Queen},
}

var citadelBlack = []placement{
	{0, 7, Rook}, {0, 8, Rook},
	{1, 7, Knight}, {1, 8, Knight},
	{2, 7, Bishop}, {2, 8, Bishop},
	{3, 7, King}, {3, 8, Queen},
}

// Pawn files flanking each side's pieces. Every ring of these files holds a pawn.
var (
	whitePawnFiles = [2]int{14, 1}
	blackPawnFiles = [2]int{6, 9}
)

func place(b *Board, c Color, pieces []placement, pawnFiles [2]int) {
	for _, p := range pieces {
		b.SetPiece(NewSquare(p.ring, p.file), NewPiece(p.pt, c))
	}
	for ring := 0; ring < Rings; ring++ {
		for _, file := range pawnFiles {
			b.SetPiece(NewSquare(ring, file), NewPiece(Pawn, c))
		}
	}
}

func setupStandard(mode Mode) GameState {
	b := NewBoard()
	place(&b, White, standardWhite, whitePawnFiles)
	place(&b, Black, standardBlack, blackPawnFiles)
	return NewGameState(b, White, mode, Empty, false)
}

// setupModern uses the standard layout.
func setupModern() GameState {
	return setupStandard(Modern)
}

// setupCitadel places the citadel layout. No citadel squares are assigned by
// the shipped layout.
func setupCitadel() GameState {
	b := NewBoard()
	place(&b, White, citadelWhite, whitePawnFiles)
	place(&b, Black, citadelBlack, blackPawnFiles)
	return NewGameState(b, White, Citadel, Empty, false)
}
