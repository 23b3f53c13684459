// Package output writes game records as PGN or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/config"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, preceded by a space or, when the token would not
// fit, by a line break.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes a game as PGN to cfg.OutputFile.
func OutputGame(game *chess.Game, cfg *config.Config) {
	writePGN(cfg.OutputFile, game, cfg)
}

// FormatPGN renders a game as PGN text.
func FormatPGN(game *chess.Game, cfg *config.Config) string {
	var sb strings.Builder
	writePGN(&sb, game, cfg)
	return sb.String()
}

func writePGN(w io.Writer, game *chess.Game, cfg *config.Config) {
	if cfg.Output.TagFormat != config.NoTags {
		outputTags(game, cfg, w)
		// Blank line between tags and moves
		fmt.Fprintln(w)
	}

	outputMoves(game, cfg, w)

	// Blank line between games
	fmt.Fprintln(w)
}

// leadingTags follow the seven tag roster ahead of the remaining tags, which
// are written in name order.
var leadingTags = []string{chess.SetupTag, chess.FENTag}

// outputTags outputs the game tags.
func outputTags(game *chess.Game, cfg *config.Config, w io.Writer) {
	for _, tag := range chess.SevenTagRoster {
		value := game.GetTag(tag)
		if value == "" {
			value = "?"
		}
		writeTag(w, tag, value)
	}

	if cfg.Output.TagFormat == config.SevenTagRoster {
		return
	}

	for _, tag := range leadingTags {
		if game.HasTag(tag) {
			writeTag(w, tag, game.GetTag(tag))
		}
	}

	rest := maps.Keys(game.Tags)
	slices.Sort(rest)
	for _, tag := range rest {
		if chess.IsSevenTagRosterTag(tag) || slices.Contains(leadingTags, tag) {
			continue
		}
		writeTag(w, tag, game.Tags[tag])
	}
}

func writeTag(w io.Writer, name, value string) {
	fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(value))
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputMoves writes the numbered movetext. A black move carries its own
// "N..." number when it opens the game, follows a gap or follows a comment.
func outputMoves(game *chess.Game, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))

	var prev *chess.Move
	afterComment := false
	for _, move := range game.Moves {
		if cfg.Output.KeepMoveNumbers {
			switch {
			case move.Piece.Colour == chess.White:
				ow.Write(fmt.Sprintf("%d.", move.Number))
			case prev == nil || afterComment || prev.Piece.Colour != chess.White || prev.Number != move.Number:
				ow.Write(fmt.Sprintf("%d...", move.Number))
			}
		}

		ow.Write(formatMove(move, cfg.Output))

		afterComment = false
		if cfg.Annotation.AddFENComments && move.FEN != "" {
			ow.Write("{" + move.FEN + "}")
			afterComment = true
		}
		prev = move
	}

	if cfg.Output.KeepResults {
		ow.Write(gameResult(game))
	}

	ow.NewLine()
}

// gameResult returns the result tag, or "*" when none is recorded.
func gameResult(game *chess.Game) string {
	if result := game.Result(); result != "" {
		return result
	}
	return chess.Unfinished
}

// formatMove renders a move in the configured notation.
func formatMove(move *chess.Move, out *config.OutputConfig) string {
	if out.Format == config.LALG || move.Text == "" {
		return move.UCI()
	}
	if !out.KeepChecks {
		return strings.TrimRight(move.Text, "+#")
	}
	return move.Text
}
