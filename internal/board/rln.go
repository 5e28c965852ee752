package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Ring layout notation (RLN) describes a game state on one line, in the
// manner of FEN:
//
//	<ring4>/<ring3>/<ring2>/<ring1> <side> <mode> <citadels> <draw>
//
// Rings are listed from the outermost inward, each one from file a to file p.
// Pieces use PNBRQK for white and pnbrqk for black, and runs of empty squares
// are written as a decimal count (1-16). Side is w or b, citadels is "-" or a
// comma-separated list of squares, draw is "-" or "d". The last three fields
// are optional when reading and default to standard, no citadels, no draw.

// StartRLN is the RLN of the standard starting position.
const StartRLN = "RP4prrp4PR/NP4pnnp4PN/BP4pbbp4PB/QP4pkqp4PK w standard - -"

// ParseRLN parses an RLN string into a game state.
func ParseRLN(rln string) (GameState, error) {
	parts := strings.Fields(rln)
	if len(parts) < 2 {
		return GameState{}, fmt.Errorf("invalid RLN: need at least 2 fields, got %d", len(parts))
	}
	if len(parts) > 5 {
		return GameState{}, fmt.Errorf("invalid RLN: too many fields (%d)", len(parts))
	}

	b := NewBoard()

	// Piece placement (field 0)
	if err := parseRings(&b, parts[0]); err != nil {
		return GameState{}, err
	}

	// Side to move (field 1)
	var turn Color
	switch parts[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return GameState{}, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	// Mode (field 2, optional)
	mode := Standard
	if len(parts) > 2 {
		m, err := ParseMode(parts[2])
		if err != nil {
			return GameState{}, err
		}
		mode = m
	}

	// Citadel squares (field 3, optional)
	citadels := Empty
	if len(parts) > 3 && parts[3] != "-" {
		for _, name := range strings.Split(parts[3], ",") {
			sq, err := ParseSquare(name)
			if err != nil {
				return GameState{}, fmt.Errorf("invalid citadel square: %w", err)
			}
			citadels = citadels.Set(sq)
		}
	}

	// Draw flag (field 4, optional)
	draw := false
	if len(parts) > 4 {
		switch parts[4] {
		case "-":
		case "d":
			draw = true
		default:
			return GameState{}, fmt.Errorf("invalid draw flag: %s", parts[4])
		}
	}

	return NewGameState(b, turn, mode, citadels, draw), nil
}

// parseRings parses the piece placement field.
func parseRings(b *Board, placement string) error {
	rings := strings.Split(placement, "/")
	if len(rings) != Rings {
		return fmt.Errorf("invalid piece placement: need %d rings, got %d", Rings, len(rings))
	}

	for i, ringStr := range rings {
		ring := Rings - 1 - i // RLN starts from the outer ring
		file := 0

		for j := 0; j < len(ringStr); {
			c := ringStr[j]
			if c >= '0' && c <= '9' {
				k := j
				for k < len(ringStr) && ringStr[k] >= '0' && ringStr[k] <= '9' {
					k++
				}
				n, err := strconv.Atoi(ringStr[j:k])
				if err != nil || n < 1 || n > Files {
					return fmt.Errorf("invalid empty run %q in ring %d", ringStr[j:k], ring+1)
				}
				file += n
				j = k
			} else {
				piece := PieceFromChar(c)
				if piece == NoPiece {
					return fmt.Errorf("invalid piece character: %c", c)
				}
				if file >= Files {
					return fmt.Errorf("too many squares in ring %d", ring+1)
				}
				b.SetPiece(NewSquare(ring, file), piece)
				file++
				j++
			}
			if file > Files {
				return fmt.Errorf("too many squares in ring %d", ring+1)
			}
		}

		if file != Files {
			return fmt.Errorf("invalid number of squares in ring %d: got %d", ring+1, file)
		}
	}

	return nil
}

// RLN returns the ring layout notation of the state.
func (s GameState) RLN() string {
	var sb strings.Builder

	// Piece placement
	for ring := Rings - 1; ring >= 0; ring-- {
		empty := 0
		for file := 0; file < Files; file++ {
			piece := s.board.At(ring, file)
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if ring > 0 {
			sb.WriteByte('/')
		}
	}

	// Side to move
	sb.WriteByte(' ')
	if s.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	// Mode
	sb.WriteByte(' ')
	sb.WriteString(s.mode.String())

	// Citadel squares
	sb.WriteByte(' ')
	if s.citadels == Empty {
		sb.WriteByte('-')
	} else {
		names := make([]string, 0, s.citadels.PopCount())
		for sq := range s.citadels.All() {
			names = append(names, sq.String())
		}
		sb.WriteString(strings.Join(names, ","))
	}

	// Draw flag
	sb.WriteByte(' ')
	if s.draw {
		sb.WriteByte('d')
	} else {
		sb.WriteByte('-')
	}

	return sb.String()
}
