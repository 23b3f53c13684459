package engine

import "github.com/jrosengarden/Claude-Chess-sub000/internal/chess"

// castlingMoves returns the king destinations (two files towards either
// rook) for which castling is currently available.
func castlingMoves(pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Square {
	if from != chess.KingHome(colour) || pos.KingMoved[colour] {
		return nil
	}
	// A king in check cannot castle.
	if IsSquareAttacked(pos, from, colour.Opposite()) {
		return nil
	}

	var moves []chess.Square
	for _, side := range []int{chess.Kingside, chess.Queenside} {
		if canCastle(pos, colour, side) {
			moves = append(moves, castleDestination(colour, side))
		}
	}
	return moves
}

// canCastle checks the side-specific castling conditions: flags intact,
// rook on its corner, squares between king and rook empty, and the squares
// the king crosses not attacked.
func canCastle(pos *chess.Position, colour chess.Colour, side int) bool {
	if !pos.CanCastle(colour, side) {
		return false
	}
	kingSq := chess.KingHome(colour)
	rookSq := chess.RookHome(colour, side)
	if !pos.Board.Get(rookSq).Is(colour, chess.Rook) {
		return false
	}
	if !isPathClear(&pos.Board, kingSq, rookSq) {
		return false
	}

	dir := sign(rookSq.Col - kingSq.Col)
	opponent := colour.Opposite()
	for step := 1; step <= 2; step++ {
		if IsSquareAttacked(pos, kingSq.Offset(0, step*dir), opponent) {
			return false
		}
	}
	return true
}

// castleDestination returns the king's destination when castling.
func castleDestination(colour chess.Colour, side int) chess.Square {
	if side == chess.Kingside {
		return chess.KingHome(colour).Offset(0, 2)
	}
	return chess.KingHome(colour).Offset(0, -2)
}

// castleSide classifies a king move from -> to as a castle, returning the
// side and true when the king travels two files along its row.
func castleSide(piece chess.Piece, from, to chess.Square) (int, bool) {
	if piece.Type != chess.King || from.Row != to.Row || abs(to.Col-from.Col) != 2 {
		return 0, false
	}
	if to.Col > from.Col {
		return chess.Kingside, true
	}
	return chess.Queenside, true
}

// rookCastleSquares returns where the rook starts and ends for a castle.
func rookCastleSquares(colour chess.Colour, side int) (from, to chess.Square) {
	from = chess.RookHome(colour, side)
	if side == chess.Kingside {
		return from, chess.KingHome(colour).Offset(0, 1)
	}
	return from, chess.KingHome(colour).Offset(0, -1)
}

// updateCastlingRights clears the rights of any rook whose home corner no
// longer holds that rook, whether it moved away or was captured there.
func updateCastlingRights(pos *chess.Position) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range []int{chess.Kingside, chess.Queenside} {
			if !pos.Board.Get(chess.RookHome(colour, side)).Is(colour, chess.Rook) {
				pos.RookMoved[colour][side] = true
			}
		}
	}
}
