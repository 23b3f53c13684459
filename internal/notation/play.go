package notation

import (
	"fmt"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/engine"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/parser"
)

// ResolveSAN finds the one legal move in pos that the SAN text describes.
// A missing promotion piece means a queen. Text that fits no legal move
// wraps errors.ErrIllegalMove; text that fits several wraps
// errors.ErrAmbiguousMove.
func ResolveSAN(pos *chess.Position, text string) (engine.MoveRequest, error) {
	san, err := parser.DecodeMove(text)
	if err != nil {
		return engine.MoveRequest{}, err
	}

	var found []chess.Move
	for _, m := range engine.LegalMoveList(pos) {
		if sanMatches(san, m) {
			found = append(found, m)
		}
	}

	switch len(found) {
	case 0:
		return engine.MoveRequest{}, fmt.Errorf("%q: %w", text, errors.ErrIllegalMove)
	case 1:
		m := found[0]
		return engine.MoveRequest{From: m.From, To: m.To, Promotion: m.Promotion}, nil
	default:
		return engine.MoveRequest{}, fmt.Errorf("%q fits %d moves: %w", text, len(found), errors.ErrAmbiguousMove)
	}
}

// sanMatches reports whether the legal move m fits the decoded text.
func sanMatches(san *parser.SANMove, m chess.Move) bool {
	kingStep := m.Piece.Type == chess.King && m.From == chess.KingHome(m.Piece.Colour) &&
		m.To.Row == m.From.Row && abs(m.To.Col-m.From.Col) == 2

	if san.Castle {
		if !kingStep {
			return false
		}
		if san.Side == chess.Kingside {
			return m.To.Col > m.From.Col
		}
		return m.To.Col < m.From.Col
	}

	if kingStep || m.Piece.Type != san.Piece || m.To != san.To {
		return false
	}
	if san.FromCol >= 0 && m.From.Col != san.FromCol {
		return false
	}
	if san.FromRow >= 0 && m.From.Row != san.FromRow {
		return false
	}

	if !m.IsPromotion {
		return san.Promotion == chess.NoPiece
	}
	want := san.Promotion
	if want == chess.NoPiece {
		want = chess.Queen
	}
	return m.Promotion == want
}

// PlaySAN plays a parsed game's moves from its start position, the FEN tag
// when present and the initial position otherwise. Each move is replaced by
// the full record of the move played, with its SAN rewritten in canonical
// form. It returns the snapshot log: the start FEN followed by the FEN after
// each move.
//
// On the first move that cannot be played PlaySAN returns the log up to that
// point and a *errors.MoveError whose PlyNum counts from the game's first
// move. The moves from there on keep only their text.
func PlaySAN(game *chess.Game) ([]string, error) {
	pos := engine.NewInitialPosition()
	if fen := game.FEN(); fen != "" {
		var err error
		if pos, err = engine.NewPositionFromFEN(fen); err != nil {
			return nil, errors.Wrap(err, "FEN tag")
		}
	}

	start := engine.PositionToFEN(pos)
	game.StartFEN = start
	game.FirstMover = pos.ToMove
	game.FirstMoveNumber = pos.MoveNumber
	fens := []string{start}

	for i, m := range game.Moves {
		prev := pos.Copy()
		req, err := ResolveSAN(pos, m.Text)
		if err != nil {
			return fens, &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: m.Text}
		}
		move, err := engine.ApplyMove(pos, req.From, req.To, req.Promotion)
		if err != nil {
			return fens, &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: m.Text}
		}
		move.Text = SAN(prev, move)
		move.FEN = engine.PositionToFEN(pos)
		game.Moves[i] = move
		fens = append(fens, move.FEN)
	}
	return fens, nil
}
