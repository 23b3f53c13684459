package engine

import (
	"fmt"
	"strings"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
)

// MoveRequest is a coordinate move as exchanged with an external engine.
type MoveRequest struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceType // NoPiece unless a recognised promotion letter was given
}

// String returns the request in coordinate notation.
func (r MoveRequest) String() string {
	s := r.From.String() + r.To.String()
	if r.Promotion != chess.NoPiece {
		s += strings.ToLower(string(r.Promotion.Letter()))
	}
	return s
}

// ParseUCIMove parses coordinate notation such as "e2e4" or "e7e8q".
// A fifth character other than q, r, b or n leaves the request
// non-promoting rather than failing.
func ParseUCIMove(s string) (MoveRequest, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return MoveRequest{}, fmt.Errorf("move %q: %w", s, errors.ErrIllegalMove)
	}

	from, ok := chess.ParseSquare(s[0:2])
	if !ok {
		return MoveRequest{}, fmt.Errorf("move %q: bad origin square: %w", s, errors.ErrIllegalMove)
	}
	to, ok := chess.ParseSquare(s[2:4])
	if !ok {
		return MoveRequest{}, fmt.Errorf("move %q: bad destination square: %w", s, errors.ErrIllegalMove)
	}

	req := MoveRequest{From: from, To: to}
	if len(s) == 5 {
		if promo := chess.PieceTypeFromLetter(s[4]); isPromotionPiece(promo) {
			req.Promotion = promo
		}
	}
	return req, nil
}

// ApplyUCIMove parses a coordinate move and applies it through the full
// legality pipeline.
func ApplyUCIMove(pos *chess.Position, s string) (*chess.Move, error) {
	req, err := ParseUCIMove(s)
	if err != nil {
		return nil, err
	}
	return ApplyMove(pos, req.From, req.To, req.Promotion)
}
