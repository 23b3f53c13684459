// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPiece PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts a piece letter of either case to a piece type.
// It returns NoPiece for anything that is not one of PNBRQK.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPiece
	}
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// Empty is the content of a vacant square.
var Empty = Piece{}

// W creates a white piece.
func W(t PieceType) Piece {
	return Piece{Type: t, Colour: White}
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Piece{Type: t, Colour: Black}
}

// IsEmpty reports whether p is the empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

// Is reports whether p is a piece of the given type and colour.
func (p Piece) Is(c Colour, t PieceType) bool {
	return p.Type == t && p.Colour == c && t != NoPiece
}

// FENLetter returns the FEN letter for the piece: uppercase for white,
// lowercase for black.
func (p Piece) FENLetter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return fmt.Sprintf("%s %s", p.Colour, p.Type)
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FirstRank = '1'
	LastRank  = '8'
	FirstFile = 'a'
	LastFile  = 'h'
)

// Castling sides, used to index per-side castling state.
const (
	Kingside  = 0
	Queenside = 1
)

// HomeRow returns the board row holding the colour's king and rooks at the start.
func HomeRow(c Colour) int {
	if c == White {
		return 7
	}
	return 0
}

// PawnRow returns the board row holding the colour's pawns at the start.
func PawnRow(c Colour) int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRow returns the farthest row for the colour's pawns.
func PromotionRow(c Colour) int {
	if c == White {
		return 0
	}
	return 7
}

// Forward returns the row delta of a single pawn step for the colour.
func Forward(c Colour) int {
	if c == White {
		return -1
	}
	return 1
}

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// Suffix returns the SAN suffix for the status.
func (s CheckStatus) Suffix() string {
	switch s {
	case Check:
		return "+"
	case Checkmate:
		return "#"
	default:
		return ""
	}
}
