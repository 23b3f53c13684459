package engine

import "github.com/jrosengarden/Claude-Chess-sub000/internal/chess"

// KingAttackSquares returns the squares adjacent to from. It never includes
// castling destinations, so attack detection can use it without recursing
// back into castling legality.
func KingAttackSquares(from chess.Square) []chess.Square {
	return stepTargets(from, kingOffsets)
}

// KingMoves returns the pseudo-legal destinations for the king on from:
// adjacent squares not holding a friendly piece plus any available
// castling destinations.
func KingMoves(pos *chess.Position, from chess.Square) []chess.Square {
	king := pos.Board.Get(from)
	if king.Type != chess.King {
		return nil
	}
	moves := withoutOwn(&pos.Board, KingAttackSquares(from), king.Colour)
	return append(moves, castlingMoves(pos, from, king.Colour)...)
}

// knightMoves returns the knight's destinations not holding a friendly piece.
func knightMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	return withoutOwn(board, stepTargets(from, knightOffsets), colour)
}

// sliderDirs returns the ray directions for a sliding piece type.
func sliderDirs(t chess.PieceType) [][2]int {
	switch t {
	case chess.Bishop:
		return diagonalDirs
	case chess.Rook:
		return straightDirs
	case chess.Queen:
		return allDirs
	}
	return nil
}

// sliderMoves returns the sliding piece's destinations: rays up to the
// board edge, stopping before a friendly piece or on an enemy one.
func sliderMoves(board *chess.Board, from chess.Square, piece chess.Piece) []chess.Square {
	return withoutOwn(board, rayTargets(board, from, sliderDirs(piece.Type)), piece.Colour)
}
