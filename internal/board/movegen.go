package board

// LegalMoves returns the destinations the piece on sq may move to.
//
// Empty squares and pieces of the side not on move have no moves. Pawns move
// forward onto empty squares and capture only enemy pieces; every other piece
// moves onto any square it attacks that is not held by a friendly piece. In
// citadel mode the citadel squares are always removed. Moves that leave the
// mover's king attacked are not filtered out.
func (s GameState) LegalMoves(sq Square) Bitboard {
	p := s.board.PieceAt(sq)
	if p == NoPiece || p.Color() != s.turn {
		return Empty
	}

	us := s.turn
	occupied := s.board.AllOccupancy()

	var moves Bitboard
	if p.Type() == Pawn {
		enemies := s.board.Occupancy(us.Other())
		moves = Moves(p, sq, s.mode, occupied) | Attacks(p, sq, s.mode, occupied)&enemies
	} else {
		moves = Attacks(p, sq, s.mode, occupied) &^ s.board.Occupancy(us)
	}

	if s.mode == Citadel {
		moves &^= s.citadels
	}

	return moves
}

// IsLegalMove returns true if the piece on from may move to to.
func (s GameState) IsLegalMove(from, to Square) bool {
	if !to.IsValid() {
		return false
	}
	return s.LegalMoves(from).IsSet(to)
}

// AllLegalMoves maps every square holding a piece of the side to move to its
// legal destinations. Pieces without moves are left out.
func (s GameState) AllLegalMoves() map[Square]Bitboard {
	all := make(map[Square]Bitboard)
	for sq := range s.board.Occupancy(s.turn).All() {
		if moves := s.LegalMoves(sq); moves != Empty {
			all[sq] = moves
		}
	}
	return all
}

// GenerateMoves returns every legal move of the side to move, ordered by
// origin square and then destination square.
func (s GameState) GenerateMoves() *MoveList {
	ml := NewMoveList()
	friendly := s.board.Occupancy(s.turn)
	for friendly != 0 {
		from := friendly.PopLSB()
		targets := s.LegalMoves(from)
		for targets != 0 {
			ml.Add(NewMove(from, targets.PopLSB()))
		}
	}
	return ml
}

// HasMoves returns true if the side to move has at least one legal move.
func (s GameState) HasMoves() bool {
	for sq := range s.board.Occupancy(s.turn).All() {
		if s.LegalMoves(sq) != Empty {
			return true
		}
	}
	return false
}

// Perft counts the leaf nodes of the move tree to the given depth.
func Perft(s GameState, depth int) int64 {
	if depth <= 0 {
		return 1
	}

	moves := s.GenerateMoves()
	if depth == 1 {
		return int64(moves.Len())
	}

	var nodes int64
	for _, m := range moves.Slice() {
		nodes += Perft(s.ApplyMove(m), depth-1)
	}
	return nodes
}

// PerftDivide returns the leaf count below each root move.
func PerftDivide(s GameState, depth int) map[Move]int64 {
	result := make(map[Move]int64)
	if depth <= 0 {
		return result
	}
	for _, m := range s.GenerateMoves().Slice() {
		result[m] = Perft(s.ApplyMove(m), depth-1)
	}
	return result
}
