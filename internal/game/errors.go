package game

import "errors"

var (
	ErrNoPiece     = errors.New("no piece on square")
	ErrWrongTurn   = errors.New("piece belongs to the side not on move")
	ErrIllegalMove = errors.New("illegal move")
	ErrOffBoard    = errors.New("square off the board")
)
