package engine

import (
	"golang.org/x/exp/slices"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
)

// WouldLeaveKingInCheck plays from -> to on a private copy of the position
// and reports whether the mover's king is then attacked. The caller's
// position is never modified.
func WouldLeaveKingInCheck(pos *chess.Position, from, to chess.Square) bool {
	piece := pos.Board.Get(from)
	if piece.IsEmpty() {
		return false
	}

	// Board is a value type, so this copies the grid. Captured slices are
	// shared but movePieces never touches them.
	trial := *pos
	movePieces(&trial, from, to)

	return IsInCheck(&trial, piece.Colour)
}

// IsLegalMove reports whether the piece on from may move to to: the move is
// pseudo-legal and does not leave its own king in check. It does not check
// whose turn it is; callers that care compare the piece colour with ToMove.
func IsLegalMove(pos *chess.Position, from, to chess.Square) bool {
	piece := pos.Board.Get(from)
	if piece.IsEmpty() || !to.Valid() {
		return false
	}
	if !slices.Contains(pieceMoves(pos, from, piece), to) {
		return false
	}
	return !WouldLeaveKingInCheck(pos, from, to)
}

// LegalMoves returns the legal destinations for the piece on from. It
// returns nil unless from holds a piece of the side to move.
func LegalMoves(pos *chess.Position, from chess.Square) []chess.Square {
	var legal []chess.Square
	for _, to := range PseudoLegalMoves(pos, from) {
		if !WouldLeaveKingInCheck(pos, from, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

// LegalMoveList returns every legal move for the side to move, with a
// separate entry per promotion choice. Moves are listed in board order
// (a8 to h1) and by destination within each piece.
func LegalMoveList(pos *chess.Position) []chess.Move {
	var moves []chess.Move
	pos.Board.ForEach(func(from chess.Square, piece chess.Piece) {
		if piece.Colour != pos.ToMove {
			return
		}
		for _, to := range LegalMoves(pos, from) {
			base := chess.Move{From: from, To: to, Piece: piece}
			if piece.Type == chess.Pawn && to.Row == chess.PromotionRow(piece.Colour) {
				for _, promo := range promotionPieces {
					m := base
					m.IsPromotion = true
					m.Promotion = promo
					moves = append(moves, m)
				}
				continue
			}
			moves = append(moves, base)
		}
	})
	return moves
}

// HasAnyLegalMove returns true if the given colour has at least one legal
// move, whoever is to move.
func HasAnyLegalMove(pos *chess.Position, colour chess.Colour) bool {
	found := false
	pos.Board.ForEach(func(from chess.Square, piece chess.Piece) {
		if found || piece.Colour != colour {
			return
		}
		for _, to := range pieceMoves(pos, from, piece) {
			if !WouldLeaveKingInCheck(pos, from, to) {
				found = true
				return
			}
		}
	})
	return found
}
