package parser

import (
	"fmt"
	"strings"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
)

// SANMove is the information a move's text gives, before it is matched
// against a position.
type SANMove struct {
	Text string

	// Piece is Pawn for pawn moves and King for castling.
	Piece chess.PieceType

	// FromCol and FromRow disambiguate the origin; -1 when not given.
	FromCol int
	FromRow int

	// To is NoSquare for castling.
	To chess.Square

	Capture   bool
	Promotion chess.PieceType

	Castle bool
	Side   int // chess.Kingside or chess.Queenside
}

// DecodeMove reads SAN move text such as "e4", "Nbd7", "exd8=Q+", "O-O-O"
// or the long form "e2-e4". Check and annotation suffixes are ignored.
func DecodeMove(text string) (*SANMove, error) {
	bad := func() (*SANMove, error) {
		return nil, fmt.Errorf("%q: %w", text, errors.ErrInvalidSAN)
	}

	s := strings.TrimRight(text, "+#!?")
	if s == "" {
		return bad()
	}

	m := &SANMove{
		Text:    text,
		Piece:   chess.Pawn,
		FromCol: -1,
		FromRow: -1,
		To:      chess.NoSquare,
	}

	switch strings.ToUpper(strings.NewReplacer("0", "O", "-", "").Replace(s)) {
	case "OO":
		m.Piece, m.Castle, m.Side = chess.King, true, chess.Kingside
		return m, nil
	case "OOO":
		m.Piece, m.Castle, m.Side = chess.King, true, chess.Queenside
		return m, nil
	}

	if isPieceLetter(s[0]) {
		m.Piece = chess.PieceTypeFromLetter(s[0])
		s = s[1:]
	}

	if m.Piece == chess.Pawn {
		var letter byte
		if i := strings.IndexByte(s, '='); i >= 0 {
			if i != len(s)-2 {
				return bad()
			}
			letter, s = s[i+1], s[:i]
		} else if n := len(s); n >= 3 && isPromotionLetter(s[n-1]) && isRank(s[n-2]) {
			letter, s = s[n-1], s[:n-1]
		}
		if letter != 0 {
			if !isPromotionLetter(letter) && letter != 'b' {
				return bad()
			}
			m.Promotion = chess.PieceTypeFromLetter(letter)
		}
	}

	var coords []byte
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == 'x' || c == 'X' || c == ':':
			m.Capture = true
		case c == '-':
		case isFile(c) || isRank(c):
			coords = append(coords, c)
		default:
			return bad()
		}
	}

	n := len(coords)
	if n < 2 || n > 4 || !isFile(coords[n-2]) || !isRank(coords[n-1]) {
		return bad()
	}
	m.To = chess.SquareAt(coords[n-2], coords[n-1])

	switch from := coords[:n-2]; len(from) {
	case 2:
		if !isFile(from[0]) || !isRank(from[1]) {
			return bad()
		}
		sq := chess.SquareAt(from[0], from[1])
		m.FromCol, m.FromRow = sq.Col, sq.Row
	case 1:
		if isFile(from[0]) {
			m.FromCol = int(from[0] - chess.FirstFile)
		} else {
			m.FromRow = int(chess.LastRank - from[0])
		}
	}

	// A pawn capture names the file it leaves.
	if m.Piece == chess.Pawn && m.Capture && m.FromCol < 0 {
		return bad()
	}
	return m, nil
}

func isFile(c byte) bool { return c >= chess.FirstFile && c <= chess.LastFile }
func isRank(c byte) bool { return c >= chess.FirstRank && c <= chess.LastRank }

// isPieceLetter reports an upper-case piece letter other than a pawn's.
func isPieceLetter(c byte) bool {
	switch c {
	case 'K', 'Q', 'R', 'B', 'N':
		return true
	}
	return false
}

// isPromotionLetter accepts upper case and the lower-case letters that cannot
// be mistaken for a file.
func isPromotionLetter(c byte) bool {
	switch c {
	case 'Q', 'R', 'B', 'N', 'q', 'r', 'n':
		return true
	}
	return false
}
