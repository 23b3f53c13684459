package engine

import "github.com/jrosengarden/Claude-Chess-sub000/internal/chess"

// PawnAttackSquares returns the two forward diagonals of a pawn of the
// given colour on from. Pushes are not attacks.
func PawnAttackSquares(from chess.Square, colour chess.Colour) []chess.Square {
	fwd := chess.Forward(colour)
	return stepTargets(from, [][2]int{{fwd, -1}, {fwd, 1}})
}

// pawnMoves returns the pawn's pseudo-legal destinations.
func pawnMoves(pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Square {
	board := &pos.Board
	fwd := chess.Forward(colour)
	var moves []chess.Square

	// Single push, then double push from the starting row
	one := from.Offset(fwd, 0)
	if board.IsEmpty(one) {
		moves = append(moves, one)
		two := one.Offset(fwd, 0)
		if from.Row == chess.PawnRow(colour) && board.IsEmpty(two) {
			moves = append(moves, two)
		}
	}

	for _, sq := range PawnAttackSquares(from, colour) {
		target := board.Get(sq)
		switch {
		case !target.IsEmpty() && target.Colour != colour:
			moves = append(moves, sq)
		case target.IsEmpty() && isEnPassantTarget(pos, from, sq, colour):
			moves = append(moves, sq)
		}
	}
	return moves
}

// isEnPassantTarget reports whether a pawn on from may capture en passant onto sq.
// The enemy pawn must actually sit beside from on the target file.
func isEnPassantTarget(pos *chess.Position, from, sq chess.Square, colour chess.Colour) bool {
	if !pos.EnPassant || sq != pos.EPSquare || colour != pos.ToMove {
		return false
	}
	return pos.Board.Get(chess.Square{Row: from.Row, Col: sq.Col}).Is(colour.Opposite(), chess.Pawn)
}

// isDoublePush reports whether a pawn move from -> to is a two-square advance.
func isDoublePush(piece chess.Piece, from, to chess.Square) bool {
	return piece.Type == chess.Pawn && from.Col == to.Col && abs(to.Row-from.Row) == 2
}

// isPromotionPiece reports whether t is a legal promotion choice.
func isPromotionPiece(t chess.PieceType) bool {
	switch t {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		return true
	}
	return false
}

// promotionPieces lists promotion choices in the order they are generated.
var promotionPieces = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}
