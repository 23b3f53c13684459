// Package processing analyses and validates reconstructed games.
package processing

import (
	"fmt"
	"strings"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/engine"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/hashing"
)

// GameAnalysis holds the features found by walking a game's positions.
type GameAnalysis struct {
	Final  *chess.Position
	Status engine.GameStatus

	HasFiftyMoveRule  bool
	HasRepetition     bool
	HasUnderpromotion bool

	// Extended draw rules
	Has75MoveRule           bool
	Has5FoldRepetition      bool
	HasInsufficientMaterial bool

	// Positions holds the Zobrist key of the start position and of the
	// position after every move.
	Positions []uint64
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string

	// TagErrors lists problems with the header tags.
	TagErrors []string
}

// AnalyzeGame walks the positions recorded with the game: the start
// position and the FEN stored on every move. Moves are not replayed, so a
// game with skipped transitions is still analysed position by position.
func AnalyzeGame(game *chess.Game) (*GameAnalysis, error) {
	pos, err := startPosition(game)
	if err != nil {
		return nil, err
	}

	analysis := &GameAnalysis{}
	counts := make(map[uint64]int)
	visit := func(p *chess.Position) {
		key := hashing.Key(p)
		analysis.Positions = append(analysis.Positions, key)
		counts[key]++

		if counts[key] >= 3 {
			analysis.HasRepetition = true
		}
		if counts[key] >= 5 {
			analysis.Has5FoldRepetition = true
		}
		// 50 and 75 moves are 100 and 150 half-moves
		if p.HalfmoveClock >= 100 {
			analysis.HasFiftyMoveRule = true
		}
		if p.HalfmoveClock >= 150 {
			analysis.Has75MoveRule = true
		}
	}

	visit(pos)
	for i, move := range game.Moves {
		if move.IsPromotion && move.Promotion != chess.Queen {
			analysis.HasUnderpromotion = true
		}
		if move.FEN == "" {
			return nil, errors.Wrapf(errors.ErrInvalidFEN, "ply %d: no position recorded", i+1)
		}
		if pos, err = engine.NewPositionFromFEN(move.FEN); err != nil {
			return nil, errors.Wrapf(err, "ply %d", i+1)
		}
		visit(pos)
	}

	analysis.Final = pos
	analysis.Status = engine.Status(pos)
	analysis.HasInsufficientMaterial = engine.HasInsufficientMaterial(pos)
	return analysis, nil
}

func startPosition(game *chess.Game) (*chess.Position, error) {
	if game.StartFEN == "" {
		return engine.NewPositionForGame(game), nil
	}
	pos, err := engine.NewPositionFromFEN(game.StartFEN)
	if err != nil {
		return nil, errors.Wrap(err, "start position")
	}
	return pos, nil
}

// ValidateGame replays the moves from the start position through the
// legality pipeline and checks that each one reaches the position recorded
// for it. A game with a skipped transition fails at the move after the gap.
func ValidateGame(game *chess.Game) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for _, tag := range chess.SevenTagRoster {
		if game.GetTag(tag) == "" {
			result.TagErrors = append(result.TagErrors, fmt.Sprintf("missing required tag: %s", tag))
		}
	}
	if r := game.Result(); r != "" && !isValidResult(r) {
		result.TagErrors = append(result.TagErrors, fmt.Sprintf("invalid result: %s", r))
	}

	pos, err := startPosition(game)
	if err != nil {
		result.Valid = false
		result.ErrorMsg = err.Error()
		return result
	}

	for i, move := range game.Moves {
		ply := i + 1
		if _, err := engine.ApplyMove(pos, move.From, move.To, move.Promotion); err != nil {
			result.Valid = false
			result.ErrorPly = ply
			result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s", ply, moveText(move))
			return result
		}
		if move.FEN != "" && !samePosition(pos, move.FEN) {
			result.Valid = false
			result.ErrorPly = ply
			result.ErrorMsg = fmt.Sprintf("ply %d: %s does not reach the recorded position", ply, moveText(move))
			return result
		}
	}
	return result
}

// samePosition compares pos with the placement and side to move of fen. The
// placement is decoded, so "44" and "8" spell the same empty rank.
func samePosition(pos *chess.Position, fen string) bool {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return false
	}
	board, err := engine.ParsePlacement(fields[0])
	if err != nil {
		return false
	}
	side := "w"
	if pos.ToMove == chess.Black {
		side = "b"
	}
	return board == pos.Board && fields[1] == side
}

func moveText(m *chess.Move) string {
	if m.Text != "" {
		return m.Text
	}
	return m.UCI()
}

// isValidResult checks if a result string is a valid PGN result.
func isValidResult(result string) bool {
	switch result {
	case chess.WhiteWins, chess.BlackWins, chess.Draw, chess.Unfinished:
		return true
	default:
		return false
	}
}
