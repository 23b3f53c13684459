package testutil

import (
	"strings"
	"testing"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/engine"
)

// MustPosition decodes fen and calls t.Fatal on failure.
func MustPosition(t testing.TB, fen string) *chess.Position {
	t.Helper()
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q): %v", fen, err)
	}
	return pos
}

// MustApply plays coordinate moves ("e2e4", "e7e8q") on pos.
func MustApply(t testing.TB, pos *chess.Position, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if _, err := engine.ApplyUCIMove(pos, m); err != nil {
			t.Fatalf("ApplyUCIMove(%s) from %s: %v", m, engine.PositionToFEN(pos), err)
		}
	}
}

// FENLog plays moves from startFEN and returns the snapshot log: the start
// position followed by one FEN per half-move. An empty startFEN means the
// initial position.
func FENLog(t testing.TB, startFEN string, moves ...string) []string {
	t.Helper()
	if startFEN == "" {
		startFEN = engine.InitialFEN
	}
	pos := MustPosition(t, startFEN)
	log := []string{engine.PositionToFEN(pos)}
	for _, m := range moves {
		MustApply(t, pos, m)
		log = append(log, engine.PositionToFEN(pos))
	}
	return log
}

// FENLogText is FENLog joined into the newline-separated file form.
func FENLogText(t testing.TB, startFEN string, moves ...string) string {
	t.Helper()
	return strings.Join(FENLog(t, startFEN, moves...), "\n") + "\n"
}
