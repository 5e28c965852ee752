package board

import "fmt"

// GameState is an immutable snapshot of a game: the board, the side to move,
// the ruleset, the citadel squares and the draw flag.
//
// Every transition returns a new GameState. A state that has been handed out
// is never modified, so callers can keep old states for history or replay.
// GameState is comparable with ==.
type GameState struct {
	board    Board
	turn     Color
	mode     Mode
	citadels Bitboard
	draw     bool
}

// NewGameState creates a state from its parts. The board is copied.
func NewGameState(b Board, turn Color, mode Mode, citadels Bitboard, draw bool) GameState {
	return GameState{
		board:    b,
		turn:     turn,
		mode:     mode,
		citadels: citadels,
		draw:     draw,
	}
}

// EmptyState returns a state with an empty board and white to move.
func EmptyState(mode Mode) GameState {
	return NewGameState(NewBoard(), White, mode, Empty, false)
}

// Initial creates the starting state for the given mode.
func Initial(mode Mode) GameState {
	switch mode {
	case Citadel:
		return setupCitadel()
	case Modern:
		return setupModern()
	default:
		return setupStandard(mode)
	}
}

// Board returns a copy of the board.
func (s GameState) Board() Board {
	return s.board
}

// PieceAt returns the piece on a square, or NoPiece.
func (s GameState) PieceAt(sq Square) Piece {
	return s.board.PieceAt(sq)
}

// Turn returns the color to move.
func (s GameState) Turn() Color {
	return s.turn
}

// Mode returns the ruleset.
func (s GameState) Mode() Mode {
	return s.mode
}

// CitadelSquares returns the squares no piece may enter in citadel mode.
func (s GameState) CitadelSquares() Bitboard {
	return s.citadels
}

// IsDraw reports whether the game has been declared drawn.
func (s GameState) IsDraw() bool {
	return s.draw
}

// Occupancy returns the pieces of one color.
func (s GameState) Occupancy(c Color) Bitboard {
	return s.board.Occupancy(c)
}

// AllOccupancy returns every occupied square.
func (s GameState) AllOccupancy() Bitboard {
	return s.board.AllOccupancy()
}

// MakeMove moves the piece on from to to and passes the turn.
//
// The input state is returned unchanged when from is empty or off the board,
// when the piece there belongs to the side not on move, or when to is off the
// board. Anything standing on to is captured and discarded. MakeMove does not
// check the move against the rules; validate with IsLegalMove first.
func (s GameState) MakeMove(from, to Square) GameState {
	moving := s.board.PieceAt(from)
	if moving == NoPiece || moving.Color() != s.turn || !to.IsValid() {
		return s
	}

	next := s
	next.board = s.board.Clone()
	next.board.RemovePiece(to)
	next.board.RemovePiece(from)
	next.board.SetPiece(to, moving)
	next.turn = s.turn.Other()

	return next
}

// ApplyMove is MakeMove for an encoded move.
func (s GameState) ApplyMove(m Move) GameState {
	return s.MakeMove(m.From(), m.To())
}

// WithCitadelSquares returns a copy of the state with a different citadel set.
func (s GameState) WithCitadelSquares(bb Bitboard) GameState {
	s.citadels = bb
	return s
}

// String returns a visual representation of the state.
func (s GameState) String() string {
	str := "\n" + s.board.String() + "\n"
	str += fmt.Sprintf("Mode: %s\n", s.mode)
	str += fmt.Sprintf("Side to move: %s\n", s.turn)
	if s.citadels != Empty {
		str += fmt.Sprintf("Citadels: %v\n", s.citadels.Squares())
	}
	if s.draw {
		str += "Draw: king reached the citadel\n"
	}
	return str
}
