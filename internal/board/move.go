package board

import "fmt"

// Move packs an origin and a destination: from in bits 0-5, to in bits 6-11.
// Moves never start and end on the same square, so the zero value is free
// to mean "no move".
type Move uint16

const NoMove Move = 0

const squareMask = SquareCount - 1

func NewMove(from, to Square) Move {
	return Move(from&squareMask) | Move(to&squareMask)<<6
}

func (m Move) From() Square { return Square(m & squareMask) }

func (m Move) To() Square { return Square(m >> 6 & squareMask) }

// IsCapture reports whether the destination is occupied in s.
func (m Move) IsCapture(s GameState) bool {
	return s.PieceAt(m.To()) != NoPiece
}

// String returns coordinate notation, e.g. "b1c1", or "0000" for NoMove.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return m.From().String() + m.To().String()
}

// ParseMove reads coordinate notation.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return NoMove, err
	}
	if from == to {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}
	return NewMove(from, to), nil
}

// MoveList collects generated moves. A side never has more than 16 pieces,
// so 64 slots cover nearly every position without growing.
type MoveList struct {
	moves []Move
}

func NewMoveList() *MoveList {
	return &MoveList{moves: make([]Move, 0, 64)}
}

func (ml *MoveList) Add(m Move) { ml.moves = append(ml.moves, m) }
func (ml *MoveList) Len() int { return len(ml.moves) }
func (ml *MoveList) Get(i int) Move { return ml.moves[i] }
func (ml *MoveList) Slice() []Move { return ml.moves }
