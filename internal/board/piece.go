package board

import (
	"fmt"
	"strings"
)

// Color is a side. Black is White^1.
type Color uint8

const (
	White Color = iota
	Black
	NoColor
)

var colorNames = [...]string{"White", "Black", "NoColor"}

// Other returns the opposing side.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c > NoColor {
		return colorNames[NoColor]
	}
	return colorNames[c]
}

// PieceType is a kind of piece. Queen, Bishop and Knight move as the
// Shatranj fers, alfil and horse.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

var typeNames = [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "None"}

func (pt PieceType) String() string {
	if pt > NoPieceType {
		return typeNames[NoPieceType]
	}
	return typeNames[pt]
}

// Piece packs a type and a color as type + 6*color; NoPiece is 12.
type Piece uint8

// pieceChars is indexed by Piece.
const pieceChars = "PNBRQKpnbrqk"

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece
)

// NewPiece builds a piece. An unknown type or color is a programming error
// and panics.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		panic(fmt.Sprintf("board: invalid piece type %d color %d", pt, c))
	}
	return Piece(c)*6 + Piece(pt)
}

// Type returns NoPieceType for NoPiece.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 6)
}

// Color returns NoColor for NoPiece.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// String returns the RLN letter: uppercase white, lowercase black, a space
// for NoPiece.
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	return pieceChars[p : p+1]
}

// Name returns e.g. "White Queen".
func (p Piece) Name() string {
	if p >= NoPiece {
		return typeNames[NoPieceType]
	}
	return p.Color().String() + " " + p.Type().String()
}

// PieceFromChar is the inverse of String. Unknown letters give NoPiece.
func PieceFromChar(c byte) Piece {
	if i := strings.IndexByte(pieceChars, c); i >= 0 {
		return Piece(i)
	}
	return NoPiece
}
