package engine

import (
	"golang.org/x/exp/slices"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
)

// IsSquareAttacked returns true if any piece of colour by attacks sq.
// King attacks come from KingAttackSquares, never from KingMoves, so this
// never consults castling legality.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, by chess.Colour) bool {
	attacked := false
	pos.Board.ForEach(func(from chess.Square, p chess.Piece) {
		if attacked || p.Colour != by {
			return
		}
		if slices.Contains(AttackSquares(&pos.Board, from), sq) {
			attacked = true
		}
	})
	return attacked
}

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	kingSq := pos.KingSquare(colour)

	// If king position not tracked, search for it
	if !kingSq.Valid() || !pos.Board.Get(kingSq).Is(colour, chess.King) {
		found := pos.Board.Find(chess.Piece{Type: chess.King, Colour: colour})
		if len(found) == 0 {
			return false // No king found
		}
		kingSq = found[0]
	}

	return IsSquareAttacked(pos, kingSq, colour.Opposite())
}
