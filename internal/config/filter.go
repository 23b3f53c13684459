package config

import (
	"fmt"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
)

// FilterConfig holds settings that select which reconstructed games are
// written.
type FilterConfig struct {
	// Ply bounds
	CheckPlyBounds bool `yaml:"check_ply_bounds"`
	LowerPlyBound  uint `yaml:"min_plies"`
	UpperPlyBound  uint `yaml:"max_plies"`

	// Match conditions on the final position or the move list
	MatchCheckmate      bool `yaml:"checkmate"`
	MatchStalemate      bool `yaml:"stalemate"`
	MatchUnderpromotion bool `yaml:"underpromotion"`
	CheckRepetition     bool `yaml:"repetition"`
	CheckFiftyMoveRule  bool `yaml:"fifty_moves"`

	// KeepBrokenGames also writes games with unresolved transitions
	KeepBrokenGames bool `yaml:"keep_broken"`
}

// NewFilterConfig creates a FilterConfig with default values.
// Broken games are kept; every match condition starts disabled.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{KeepBrokenGames: true}
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.CheckPlyBounds && f.LowerPlyBound > f.UpperPlyBound {
		return fmt.Errorf("lower ply bound (%d) > upper ply bound (%d): %w",
			f.LowerPlyBound, f.UpperPlyBound, errors.ErrInvalidConfig)
	}
	return nil
}

// Active reports whether any match condition is enabled.
func (f *FilterConfig) Active() bool {
	return f.CheckPlyBounds || f.MatchCheckmate || f.MatchStalemate ||
		f.MatchUnderpromotion || f.CheckRepetition || f.CheckFiftyMoveRule
}
