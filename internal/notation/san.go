package notation

import (
	"strings"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/engine"
)

// SAN renders m in Standard Algebraic Notation. prev is the position the move
// was played from; it is used to disambiguate between identical pieces that
// could reach the same square.
func SAN(prev *chess.Position, m *chess.Move) string {
	var sb strings.Builder

	switch {
	case m.IsCastle && m.IsKingsideCastle():
		sb.WriteString("O-O")
	case m.IsCastle:
		sb.WriteString("O-O-O")
	case m.Piece.Type == chess.Pawn:
		if m.IsCapture {
			sb.WriteByte(m.From.File())
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	default:
		sb.WriteByte(m.Piece.Type.Letter())
		sb.WriteString(disambiguation(prev, m))
		if m.IsCapture {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	sb.WriteString(m.CheckStatus.Suffix())
	return sb.String()
}

// disambiguation returns the file, rank or square needed to tell the mover
// apart from other pieces of the same kind that could also legally reach the
// destination.
func disambiguation(prev *chess.Position, m *chess.Move) string {
	if prev == nil || m.Piece.Type == chess.King {
		return ""
	}

	var rivals []chess.Square
	for _, sq := range prev.Board.Find(m.Piece) {
		if sq != m.From && engine.IsLegalMove(prev, sq, m.To) {
			rivals = append(rivals, sq)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		if sq.Col == m.From.Col {
			sameFile = true
		}
		if sq.Row == m.From.Row {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(m.From.File())
	case !sameRank:
		return string(m.From.Rank())
	default:
		return m.From.String()
	}
}
