package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// InitialPlacement is the piece placement field of InitialFEN.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// FEN field names used in parse errors.
const (
	fieldPlacement = "placement"
	fieldColour    = "active colour"
	fieldCastling  = "castling"
	fieldEnPassant = "en passant"
	fieldHalfmove  = "halfmove clock"
	fieldFullmove  = "fullmove number"
)

// fenError builds a ParseError wrapping ErrInvalidFEN.
func fenError(fen, field string, column int, got string) error {
	return &errors.ParseError{
		Err:    errors.ErrInvalidFEN,
		Input:  fen,
		Field:  field,
		Column: column,
		Got:    got,
	}
}

// NewInitialPosition returns a position with the standard starting arrangement.
func NewInitialPosition() *chess.Position {
	pos := chess.NewPosition()
	pos.SetupInitialPosition()
	return pos
}

// NewPositionFromFEN decodes a FEN string into a new position. The
// placement field is validated in full before anything is built. The
// castling, en passant and clock fields may be omitted, defaulting to
// "-", "-", 0 and 1.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 || len(fields) > 6 {
		return nil, fenError(fen, "fields", 0, fmt.Sprintf("%d fields", len(fields)))
	}

	board, err := parsePlacement(fen, fields[0])
	if err != nil {
		return nil, err
	}

	pos := chess.NewPosition()
	pos.Board = board

	if err := locateKings(fen, pos); err != nil {
		return nil, err
	}
	if err := parseSideToMove(fen, pos, fields[1]); err != nil {
		return nil, err
	}

	castling, ep := "-", "-"
	if len(fields) > 2 {
		castling = fields[2]
	}
	if len(fields) > 3 {
		ep = fields[3]
	}
	if err := parseCastlingRights(fen, pos, castling); err != nil {
		return nil, err
	}
	if err := parseEnPassant(fen, pos, ep); err != nil {
		return nil, err
	}
	var clocks []string
	if len(fields) > 4 {
		clocks = fields[4:]
	}
	if err := parseClocks(fen, pos, clocks); err != nil {
		return nil, err
	}

	return pos, nil
}

// ParsePlacement decodes just the piece placement field of a FEN string.
func ParsePlacement(placement string) (chess.Board, error) {
	return parsePlacement(placement, placement)
}

// parsePlacement validates the structure of the placement field (seven
// separators, eight squares per rank, only piece letters and digits 1-8)
// and then fills a board.
func parsePlacement(fen, placement string) (chess.Board, error) {
	if n := strings.Count(placement, "/"); n != chess.BoardSize-1 {
		return chess.Board{}, fenError(fen, fieldPlacement, 0, fmt.Sprintf("%d rank separators", n))
	}

	squares := 0
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if squares != chess.BoardSize {
				return chess.Board{}, fenError(fen, fieldPlacement, i+1, fmt.Sprintf("rank of %d squares", squares))
			}
			squares = 0
		case c >= '1' && c <= '8':
			squares += int(c - '0')
		case chess.PieceTypeFromLetter(c) != chess.NoPiece:
			squares++
		default:
			return chess.Board{}, fenError(fen, fieldPlacement, i+1, string(c))
		}
		if squares > chess.BoardSize {
			return chess.Board{}, fenError(fen, fieldPlacement, i+1, "rank longer than 8 squares")
		}
	}
	if squares != chess.BoardSize {
		return chess.Board{}, fenError(fen, fieldPlacement, len(placement), fmt.Sprintf("rank of %d squares", squares))
	}

	board := chess.NewBoard()
	row, col := 0, 0
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Set(chess.Square{Row: row, Col: col}, chess.Piece{Type: chess.PieceTypeFromLetter(c), Colour: colour})
			col++
		}
	}
	return board, nil
}

// locateKings caches the king squares, requiring exactly one king per colour.
func locateKings(fen string, pos *chess.Position) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kings := pos.Board.Find(chess.Piece{Type: chess.King, Colour: colour})
		if len(kings) != 1 {
			return &errors.ParseError{
				Err:   errors.ErrMissingKing,
				Input: fen,
				Field: fieldPlacement,
				Got:   fmt.Sprintf("%d %s kings", len(kings), strings.ToLower(colour.String())),
			}
		}
		pos.Kings[colour] = kings[0]
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(fen string, pos *chess.Position, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fenError(fen, fieldColour, 0, field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. A right that
// is absent is recorded as its rook having moved; a colour with neither
// right is recorded as its king having moved.
func parseCastlingRights(fen string, pos *chess.Position, field string) error {
	pos.KingMoved = [2]bool{true, true}
	pos.RookMoved = [2][2]bool{{true, true}, {true, true}}

	if field == "-" {
		return nil
	}

	for i := 0; i < len(field); i++ {
		var colour chess.Colour
		var side int
		switch field[i] {
		case 'K':
			colour, side = chess.White, chess.Kingside
		case 'Q':
			colour, side = chess.White, chess.Queenside
		case 'k':
			colour, side = chess.Black, chess.Kingside
		case 'q':
			colour, side = chess.Black, chess.Queenside
		default:
			return fenError(fen, fieldCastling, i+1, string(field[i]))
		}
		pos.KingMoved[colour] = false
		pos.RookMoved[colour][side] = false
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(fen string, pos *chess.Position, field string) error {
	pos.EnPassant = false
	pos.EPSquare = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(field)
	if !ok {
		return fenError(fen, fieldEnPassant, 0, field)
	}
	pos.EnPassant = true
	pos.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields, keeping
// the defaults of 0 and 1 for whichever are missing.
func parseClocks(fen string, pos *chess.Position, fields []string) error {
	pos.HalfmoveClock = 0
	pos.MoveNumber = 1

	names := []string{fieldHalfmove, fieldFullmove}
	targets := []*int{&pos.HalfmoveClock, &pos.MoveNumber}
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return fenError(fen, names[i], 0, field)
		}
		*targets[i] = n
	}
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &pos.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos)
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Square{Row: row, Col: col})
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, pos *chess.Position) {
	hasCastling := false
	for _, r := range []struct {
		colour chess.Colour
		side   int
		letter byte
	}{
		{chess.White, chess.Kingside, 'K'},
		{chess.White, chess.Queenside, 'Q'},
		{chess.Black, chess.Kingside, 'k'},
		{chess.Black, chess.Queenside, 'q'},
	} {
		if pos.CanCastle(r.colour, r.side) {
			sb.WriteByte(r.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	if pos.EnPassant && pos.EPSquare.Valid() {
		sb.WriteString(pos.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewPositionForGame creates the starting position for a game record,
// using its FEN tag if present. Falls back to the initial position if the
// FEN is missing or invalid.
func NewPositionForGame(game *chess.Game) *chess.Position {
	if fen := game.FEN(); fen != "" {
		if pos, err := NewPositionFromFEN(fen); err == nil {
			return pos
		}
	}
	return NewInitialPosition()
}
