package board

import (
	"fmt"
	"strings"
)

// ToSAN converts a move to short algebraic notation for the given state,
// e.g. "c1", "Na3xc2", "bxc2". Check is never marked.
func (m Move) ToSAN(s GameState) string {
	if m == NoMove {
		return "-"
	}

	from := m.From()
	to := m.To()
	piece := s.PieceAt(from)

	if piece == NoPiece {
		return m.String()
	}

	var sb strings.Builder
	pt := piece.Type()

	capture := m.IsCapture(s)
	origin := disambiguation(s, m, pt)

	if pt != Pawn {
		sb.WriteByte("PNBRQK"[pt])
	} else if capture && (origin == "" || origin[0] < 'a') {
		// Pawn captures always name the origin file. Pawns on both sides of
		// a file can push onto the same square, so pushes may need it too.
		origin = string(rune('a'+from.File())) + origin
	}
	sb.WriteString(origin)

	if capture {
		sb.WriteByte('x')
	}

	sb.WriteString(to.String())
	return sb.String()
}

// disambiguation returns the origin file, ring or square needed to tell the
// move apart from moves of other pieces of the same type to the same square.
func disambiguation(s GameState, m Move, pt PieceType) string {
	from := m.From()
	to := m.To()
	pieces := s.board.Pieces(s.turn, pt)

	var candidates []Square
	for sq := range pieces.All() {
		if sq != from && s.LegalMoves(sq).IsSet(to) {
			candidates = append(candidates, sq)
		}
	}

	if len(candidates) == 0 {
		return ""
	}

	sameFile := false
	sameRing := false
	for _, sq := range candidates {
		if sq.File() == from.File() {
			sameFile = true
		}
		if sq.Ring() == from.Ring() {
			sameRing = true
		}
	}

	if !sameFile {
		return string(rune('a' + from.File()))
	}
	if !sameRing {
		return string(rune('1' + from.Ring()))
	}
	return from.String()
}

// ParseSAN parses a move in short algebraic notation against the state.
func ParseSAN(str string, s GameState) (Move, error) {
	san := strings.TrimSpace(str)
	san = strings.TrimRight(san, "+#")

	isCapture := strings.Contains(san, "x")
	san = strings.ReplaceAll(san, "x", "")

	pt := Pawn
	if len(san) > 0 && san[0] >= 'A' && san[0] <= 'Z' {
		switch san[0] {
		case 'N':
			pt = Knight
		case 'B':
			pt = Bishop
		case 'R':
			pt = Rook
		case 'Q':
			pt = Queen
		case 'K':
			pt = King
		default:
			return NoMove, fmt.Errorf("invalid piece letter in %q", str)
		}
		san = san[1:]
	}

	if len(san) < 2 {
		return NoMove, fmt.Errorf("invalid move: %q", str)
	}
	dest, err := ParseSquare(san[len(san)-2:])
	if err != nil {
		return NoMove, err
	}
	san = san[:len(san)-2]

	// Disambiguation: file, ring, or both
	file, ring := -1, -1
	for _, c := range san {
		switch {
		case c >= 'a' && c < 'a'+Files:
			file = int(c - 'a')
		case c >= '1' && c < '1'+Rings:
			ring = int(c - '1')
		default:
			return NoMove, fmt.Errorf("invalid disambiguation in %q", str)
		}
	}

	match := NoMove
	for _, m := range s.GenerateMoves().Slice() {
		if m.To() != dest {
			continue
		}
		from := m.From()
		if s.PieceAt(from).Type() != pt {
			continue
		}
		if file >= 0 && from.File() != file {
			continue
		}
		if ring >= 0 && from.Ring() != ring {
			continue
		}
		if isCapture && !m.IsCapture(s) {
			continue
		}
		if match != NoMove {
			return NoMove, fmt.Errorf("ambiguous move %q: %s or %s", str, match.From(), from)
		}
		match = m
	}

	if match == NoMove {
		return NoMove, fmt.Errorf("no legal move matches %q", str)
	}
	return match, nil
}

// MovesToSAN converts a sequence of moves played from s to notation.
func MovesToSAN(s GameState, moves []Move) []string {
	result := make([]string, len(moves))
	for i, m := range moves {
		result[i] = m.ToSAN(s)
		s = s.ApplyMove(m)
	}
	return result
}
