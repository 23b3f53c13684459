package engine

import (
	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
)

// ApplyMove plays from -> to for the side to move and updates the position.
// promotion selects the piece a pawn becomes on the last rank; anything other
// than a queen, rook, bishop or knight defaults to a queen, and it is ignored
// for non-promoting moves.
//
// On an illegal request the position is untouched and the error wraps
// errors.ErrIllegalMove in a *errors.MoveError.
func ApplyMove(pos *chess.Position, from, to chess.Square, promotion chess.PieceType) (*chess.Move, error) {
	piece := pos.Board.Get(from)
	if piece.IsEmpty() || piece.Colour != pos.ToMove || !IsLegalMove(pos, from, to) {
		return nil, &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			PlyNum:   plyNumber(pos),
			MoveText: from.String() + to.String(),
		}
	}

	move := commitMove(pos, from, to, promotion)

	opponent := pos.ToMove
	switch {
	case IsCheckmate(pos, opponent):
		move.CheckStatus = chess.Checkmate
	case IsInCheck(pos, opponent):
		move.CheckStatus = chess.Check
	}
	return move, nil
}

// commitMove updates every part of the position for a move already known to
// be legal and returns the move record (without check status).
func commitMove(pos *chess.Position, from, to chess.Square, promotion chess.PieceType) *chess.Move {
	piece := pos.Board.Get(from)
	colour := piece.Colour

	captured, enPassant, castle := movePieces(pos, from, to)

	move := &chess.Move{
		From:        from,
		To:          to,
		Piece:       piece,
		Captured:    captured,
		IsCapture:   !captured.IsEmpty(),
		IsCastle:    castle,
		IsEnPassant: enPassant,
		Number:      pos.MoveNumber,
	}

	if move.IsCapture {
		pos.Captured[colour] = append(pos.Captured[colour], captured)
	}

	if castle {
		side, _ := castleSide(piece, from, to)
		pos.RookMoved[colour][side] = true
	}
	updateCastlingRights(pos)

	if piece.Type == chess.King {
		pos.KingMoved[colour] = true
	}

	// Halfmove clock resets on any pawn move or capture
	if piece.Type == chess.Pawn || move.IsCapture {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}

	if colour == chess.Black {
		pos.MoveNumber++
	}

	// En passant is only available immediately after a double push
	pos.EnPassant = false
	pos.EPSquare = chess.NoSquare
	if isDoublePush(piece, from, to) {
		pos.EnPassant = true
		pos.EPSquare = chess.Square{Row: (from.Row + to.Row) / 2, Col: from.Col}
	}

	if piece.Type == chess.Pawn && to.Row == chess.PromotionRow(colour) {
		if !isPromotionPiece(promotion) {
			promotion = chess.Queen
		}
		pos.Board.Set(to, chess.Piece{Type: promotion, Colour: colour})
		move.IsPromotion = true
		move.Promotion = promotion
	}

	pos.ToMove = colour.Opposite()
	return move
}

// movePieces relocates the pieces for a move: the mover, an en passant
// victim and the rook of a castle. Apart from the cached king square it
// touches nothing but the board, so it serves both the trial copy used for
// legality and the real move.
func movePieces(pos *chess.Position, from, to chess.Square) (captured chess.Piece, enPassant, castle bool) {
	board := &pos.Board
	piece := board.Get(from)
	captured = board.Get(to)

	if piece.Type == chess.Pawn && captured.IsEmpty() && from.Col != to.Col &&
		pos.EnPassant && to == pos.EPSquare {
		victim := chess.Square{Row: from.Row, Col: to.Col}
		captured = board.Get(victim)
		board.Clear(victim)
		enPassant = true
	}

	board.Clear(from)
	board.Set(to, piece)

	if piece.Type == chess.King {
		pos.Kings[piece.Colour] = to
		if side, ok := castleSide(piece, from, to); ok {
			rookFrom, rookTo := rookCastleSquares(piece.Colour, side)
			board.Set(rookTo, board.Get(rookFrom))
			board.Clear(rookFrom)
			castle = true
		}
	}
	return captured, enPassant, castle
}

// plyNumber returns the 1-based ply about to be played.
func plyNumber(pos *chess.Position) int {
	ply := (pos.MoveNumber-1)*2 + 1
	if pos.ToMove == chess.Black {
		ply++
	}
	return ply
}
