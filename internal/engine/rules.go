package engine

import (
	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
)

// FiftyMoveLimit is the halfmove clock value at which a draw may be claimed.
const FiftyMoveLimit = 100

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(pos *chess.Position, colour chess.Colour) bool {
	return IsInCheck(pos, colour) && !HasAnyLegalMove(pos, colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(pos *chess.Position, colour chess.Colour) bool {
	return !IsInCheck(pos, colour) && !HasAnyLegalMove(pos, colour)
}

// IsFiftyMoveDraw returns true once 50 moves by each side (100 half-moves)
// have passed without a pawn move or capture.
func IsFiftyMoveDraw(pos *chess.Position) bool {
	return pos.HalfmoveClock >= FiftyMoveLimit
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(pos *chess.Position) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool
	sufficient := false

	pos.Board.ForEach(func(sq chess.Square, piece chess.Piece) {
		switch piece.Type {
		case chess.King:
			// Kings don't count for material
			return
		case chess.Pawn, chess.Rook, chess.Queen:
			sufficient = true
			return
		}

		if piece.Colour == chess.White {
			whitePieces = append(whitePieces, piece.Type)
			if piece.Type == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, piece.Type)
			if piece.Type == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	})
	if sufficient {
		return false
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
// a1 (row 7, col 0) is dark.
func isLightSquare(sq chess.Square) bool {
	return (sq.Row+sq.Col)%2 == 0
}
