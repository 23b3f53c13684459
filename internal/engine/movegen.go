// Package engine implements the chess rules: move generation, attack and
// check detection, move application, game status and the FEN codec.
package engine

import "github.com/jrosengarden/Claude-Chess-sub000/internal/chess"

// PseudoLegalMoves returns the destinations the piece on from can reach by
// its movement rules, without regard to whether the move would leave its
// own king in check. It returns nil unless from holds a piece of the side
// to move.
func PseudoLegalMoves(pos *chess.Position, from chess.Square) []chess.Square {
	piece := pos.Board.Get(from)
	if piece.IsEmpty() || piece.Colour != pos.ToMove {
		return nil
	}
	return pieceMoves(pos, from, piece)
}

// pieceMoves dispatches on piece type. It does not check whose turn it is.
func pieceMoves(pos *chess.Position, from chess.Square, piece chess.Piece) []chess.Square {
	switch piece.Type {
	case chess.Pawn:
		return pawnMoves(pos, from, piece.Colour)
	case chess.Knight:
		return knightMoves(&pos.Board, from, piece.Colour)
	case chess.Bishop, chess.Rook, chess.Queen:
		return sliderMoves(&pos.Board, from, piece)
	case chess.King:
		return KingMoves(pos, from)
	}
	return nil
}

// AttackSquares returns every square the piece on from attacks, including
// squares holding friendly pieces (i.e. squares it defends). Kings attack
// adjacent squares only and pawns attack their forward diagonals only.
func AttackSquares(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)
	switch piece.Type {
	case chess.Pawn:
		return PawnAttackSquares(from, piece.Colour)
	case chess.Knight:
		return stepTargets(from, knightOffsets)
	case chess.Bishop, chess.Rook, chess.Queen:
		return rayTargets(board, from, sliderDirs(piece.Type))
	case chess.King:
		return KingAttackSquares(from)
	}
	return nil
}
