// Package game keeps the history of a circular chess game.
//
// A Session stores every GameState the game has passed through. Because
// states are immutable values, undo and redo only move a cursor.
package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/hailam/circularchess/internal/board"
)

// Session is a single game with undo and redo.
type Session struct {
	states []board.GameState // states[0] is the starting position
	moves  []board.Move      // moves[i] leads from states[i] to states[i+1]
	sans   []string
	ply    int // index of the current state

	started time.Time
}

// NewSession starts a game from the initial position of the mode.
func NewSession(mode board.Mode) *Session {
	return NewSessionFrom(board.Initial(mode))
}

// NewSessionFrom starts a game from an arbitrary state.
func NewSessionFrom(s board.GameState) *Session {
	return &Session{
		states:  []board.GameState{s},
		started: time.Now(),
	}
}

// State returns the current state.
func (s *Session) State() board.GameState {
	return s.states[s.ply]
}

// Mode returns the ruleset of the game.
func (s *Session) Mode() board.Mode {
	return s.State().Mode()
}

// Start returns the state the game started from.
func (s *Session) Start() board.GameState {
	return s.states[0]
}

// Select returns the legal destinations of the piece on sq.
func (s *Session) Select(sq board.Square) board.Bitboard {
	return s.State().LegalMoves(sq)
}

// Play validates and plays a move.
func (s *Session) Play(from, to board.Square) error {
	cur := s.State()
	if err := s.checkOrigin(cur, from); err != nil {
		return err
	}
	if !cur.IsLegalMove(from, to) {
		return fmt.Errorf("%w: %s%s", ErrIllegalMove, from, to)
	}
	m := board.NewMove(from, to)
	s.push(m, m.ToSAN(cur), cur.MakeMove(from, to))
	return nil
}

// PlayMove is Play for an encoded move.
func (s *Session) PlayMove(m board.Move) error {
	return s.Play(m.From(), m.To())
}

// PlaySAN parses a move in short algebraic notation and plays it.
func (s *Session) PlaySAN(san string) error {
	m, err := board.ParseSAN(san, s.State())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	return s.PlayMove(m)
}

// ForcedMark ends the recorded notation of a forced move. Forced moves are
// written in coordinate form, since SAN only describes legal moves.
const ForcedMark = "!"

// Force relocates a piece without consulting the move generator. Only the
// checks the engine itself makes are applied: the origin must hold a piece of
// the side to move and the destination must be another square on the board.
func (s *Session) Force(from, to board.Square) error {
	cur := s.State()
	if err := s.checkOrigin(cur, from); err != nil {
		return err
	}
	if !to.IsValid() {
		return fmt.Errorf("%w: destination", ErrOffBoard)
	}
	if from == to {
		return fmt.Errorf("%w: %s%s", ErrIllegalMove, from, to)
	}
	m := board.NewMove(from, to)
	s.push(m, m.String()+ForcedMark, cur.MakeMove(from, to))
	return nil
}

// PlayForced replays a move recorded by Force.
func (s *Session) PlayForced(record string) error {
	m, err := board.ParseMove(strings.TrimSuffix(record, ForcedMark))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	return s.Force(m.From(), m.To())
}

func (s *Session) checkOrigin(cur board.GameState, from board.Square) error {
	if !from.IsValid() {
		return fmt.Errorf("%w: origin", ErrOffBoard)
	}
	p := cur.PieceAt(from)
	if p == board.NoPiece {
		return fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	if p.Color() != cur.Turn() {
		return fmt.Errorf("%w: %s on %s", ErrWrongTurn, p.Name(), from)
	}
	return nil
}

// push appends a new state after the cursor and drops the redo tail.
func (s *Session) push(m board.Move, san string, next board.GameState) {
	s.states = append(s.states[:s.ply+1], next)
	s.moves = append(s.moves[:s.ply], m)
	s.sans = append(s.sans[:s.ply], san)
	s.ply++
}

// Undo steps back one move. It returns false at the start of the game.
func (s *Session) Undo() bool {
	if s.ply == 0 {
		return false
	}
	s.ply--
	return true
}

// Redo replays the last undone move. It returns false when nothing was undone.
func (s *Session) Redo() bool {
	if s.ply >= len(s.states)-1 {
		return false
	}
	s.ply++
	return true
}

// CanUndo reports whether Undo would succeed.
func (s *Session) CanUndo() bool {
	return s.ply > 0
}

// CanRedo reports whether Redo would succeed.
func (s *Session) CanRedo() bool {
	return s.ply < len(s.states)-1
}

// Reset starts a new game in the given mode.
func (s *Session) Reset(mode board.Mode) {
	s.Load(board.Initial(mode))
}

// Load replaces the game with one starting from the given state.
func (s *Session) Load(state board.GameState) {
	*s = *NewSessionFrom(state)
}

// Ply returns the number of moves played up to the current state.
func (s *Session) Ply() int {
	return s.ply
}

// Moves returns the moves leading to the current state.
func (s *Session) Moves() []board.Move {
	return append([]board.Move(nil), s.moves[:s.ply]...)
}

// SAN returns the moves leading to the current state in short algebraic
// notation.
func (s *Session) SAN() []string {
	return append([]string(nil), s.sans[:s.ply]...)
}

// LastMove returns the move that led to the current state, or NoMove.
func (s *Session) LastMove() board.Move {
	if s.ply == 0 {
		return board.NoMove
	}
	return s.moves[s.ply-1]
}

// Duration returns the time since the game started.
func (s *Session) Duration() time.Duration {
	return time.Since(s.started)
}

// Status describes the current state in a single line.
func (s *Session) Status() string {
	cur := s.State()
	switch {
	case cur.IsDraw():
		return "Draw"
	case !cur.HasMoves():
		return fmt.Sprintf("%s has no moves", cur.Turn())
	default:
		return fmt.Sprintf("%s to move", cur.Turn())
	}
}
