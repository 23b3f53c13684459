package engine

import "github.com/jrosengarden/Claude-Chess-sub000/internal/chess"

// GameStatus describes whether the game can continue from a position.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
	FiftyMoveDraw
	InsufficientMaterial

	// Repetition is never returned by Status, which sees a single position.
	// Callers that keep the game history report it.
	Repetition
)

// String returns a readable name for the status.
func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveDraw:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	case Repetition:
		return "threefold repetition"
	default:
		return "ongoing"
	}
}

// IsOver reports whether the status ends the game.
func (s GameStatus) IsOver() bool {
	return s != Ongoing
}

// Status evaluates the position for the side to move. Checkmate and
// stalemate take precedence over the draw rules.
func Status(pos *chess.Position) GameStatus {
	colour := pos.ToMove
	if !HasAnyLegalMove(pos, colour) {
		if IsInCheck(pos, colour) {
			return Checkmate
		}
		return Stalemate
	}
	if HasInsufficientMaterial(pos) {
		return InsufficientMaterial
	}
	if IsFiftyMoveDraw(pos) {
		return FiftyMoveDraw
	}
	return Ongoing
}

// ResultFor returns the PGN result marker for a position. Only checkmate,
// stalemate and insufficient material are decisive; a fifty-move position
// still needs a claim, so it is reported as unfinished.
func ResultFor(pos *chess.Position) string {
	switch Status(pos) {
	case Checkmate:
		if pos.ToMove == chess.White {
			return chess.BlackWins
		}
		return chess.WhiteWins
	case Stalemate, InsufficientMaterial:
		return chess.Draw
	default:
		return chess.Unfinished
	}
}
