// filters.go - Game filtering logic
package main

import (
	"fmt"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/config"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/engine"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/notation"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/processing"
)

// applyFilters decides whether a reconstructed game is written. When it is
// not, the second result says why.
func applyFilters(res *notation.Result, f *config.FilterConfig) (bool, string) {
	game := res.Game

	if !f.KeepBrokenGames {
		if n := len(res.Skipped); n > 0 {
			return false, fmt.Sprintf("%d unresolved transition(s)", n)
		}
		if v := processing.ValidateGame(game); !v.Valid {
			return false, v.ErrorMsg
		}
	}

	if f.CheckPlyBounds {
		plies := uint(game.PlyCount())
		if plies < f.LowerPlyBound || plies > f.UpperPlyBound {
			return false, fmt.Sprintf("%d plies outside the bounds", plies)
		}
	}

	if !needsGameAnalysis(f) {
		return true, ""
	}
	analysis, err := processing.AnalyzeGame(game)
	if err != nil {
		return false, err.Error()
	}
	return applyFeatureFilters(analysis, f)
}

// needsGameAnalysis reports whether any filter looks at the positions.
func needsGameAnalysis(f *config.FilterConfig) bool {
	return f.MatchCheckmate || f.MatchStalemate || f.MatchUnderpromotion ||
		f.CheckRepetition || f.CheckFiftyMoveRule
}

// applyFeatureFilters checks the ending and the game features. Checkmate
// and stalemate together accept either ending.
func applyFeatureFilters(a *processing.GameAnalysis, f *config.FilterConfig) (bool, string) {
	if f.MatchCheckmate || f.MatchStalemate {
		mate := f.MatchCheckmate && a.Status == engine.Checkmate
		stale := f.MatchStalemate && a.Status == engine.Stalemate
		if !mate && !stale {
			return false, "ends in " + a.Status.String()
		}
	}
	if f.MatchUnderpromotion && !a.HasUnderpromotion {
		return false, "no underpromotion"
	}
	if f.CheckRepetition && !a.HasRepetition {
		return false, "no threefold repetition"
	}
	if f.CheckFiftyMoveRule && !a.HasFiftyMoveRule {
		return false, "fifty-move rule never reached"
	}
	return true, ""
}
