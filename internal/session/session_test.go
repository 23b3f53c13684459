package session

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/config"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/engine"
	chesserrors "github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/testutil"
)

func fixedNow() time.Time {
	return time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)
}

// memFile is a sink that can be rewritten like an *os.File.
type memFile struct {
	bytes.Buffer
	truncations int
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	return 0, nil
}

func (m *memFile) Truncate(size int64) error {
	m.truncations++
	m.Buffer.Truncate(int(size))
	return nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func mustNew(t *testing.T, fen string, opts ...Option) *Session {
	t.Helper()
	s, err := New(fen, opts...)
	testutil.AssertNoError(t, err, "New")
	return s
}

func play(t *testing.T, s *Session, moves ...string) []*chess.Move {
	t.Helper()
	var out []*chess.Move
	for _, m := range moves {
		move, err := s.MoveUCI(m)
		if err != nil {
			t.Fatalf("MoveUCI(%s) at %s: %v", m, s.FEN(), err)
		}
		out = append(out, move)
	}
	return out
}

func TestNew(t *testing.T) {
	var sink bytes.Buffer
	s := mustNew(t, "", WithSink(&sink))

	testutil.AssertEqual(t, s.FEN(), engine.InitialFEN)
	testutil.AssertEqual(t, s.Plies(), 0)
	testutil.AssertEqual(t, sink.String(), engine.InitialFEN+"\n")

	custom := "4k3/8/8/8/8/8/4P3/4K3 b - - 3 40"
	testutil.AssertEqual(t, mustNew(t, custom).FEN(), custom)

	_, err := New("not a fen")
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
}

func TestMove(t *testing.T) {
	var sink bytes.Buffer
	s := mustNew(t, "", WithSink(&sink))

	move, err := s.Move(chess.Square{Row: 6, Col: 4}, chess.Square{Row: 4, Col: 4}, chess.NoPiece)
	testutil.AssertNoError(t, err, "Move(e2e4)")
	testutil.AssertEqual(t, move.Text, "e4")
	testutil.AssertEqual(t, move.FEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertEqual(t, s.FEN(), move.FEN)

	moves := play(t, s, "e7e5", "g1f3", "b8c6")
	var texts []string
	for _, m := range moves {
		texts = append(texts, m.Text)
	}
	testutil.AssertEqual(t, texts, []string{"e5", "Nf3", "Nc6"})

	want := testutil.FENLog(t, "", "e2e4", "e7e5", "g1f3", "b8c6")
	if diff := cmp.Diff(want, s.History()); diff != "" {
		t.Errorf("History() mismatch (-want +got):\n%s", diff)
	}
	testutil.AssertEqual(t, sink.String(), strings.Join(want, "\n")+"\n")
}

func TestMove_Illegal(t *testing.T) {
	var sink bytes.Buffer
	s := mustNew(t, "", WithSink(&sink))
	before := sink.String()

	for _, m := range []string{"e2e5", "e7e5", "e1e2", "zz"} {
		_, err := s.MoveUCI(m)
		testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove, m)
	}
	testutil.AssertEqual(t, s.Plies(), 0)
	testutil.AssertEqual(t, s.FEN(), engine.InitialFEN)
	testutil.AssertEqual(t, sink.String(), before)
}

func TestMove_SinkFailure(t *testing.T) {
	s := mustNew(t, "")
	s.sink = failingWriter{}

	move, err := s.MoveUCI("d2d4")
	testutil.AssertTrue(t, errors.Is(err, io.ErrClosedPipe), "want the write error, got %v", err)
	testutil.AssertTrue(t, move != nil, "move should stand")
	testutil.AssertEqual(t, s.Plies(), 1)
}

func TestMove_CheckAndPromotion(t *testing.T) {
	s := mustNew(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")

	moves := play(t, s, "a7a8r")
	testutil.AssertEqual(t, moves[0].Text, "a8=R+")
	testutil.AssertEqual(t, moves[0].Promotion, chess.Rook)
}

func TestUndo(t *testing.T) {
	s := mustNew(t, "")
	play(t, s, "e2e4", "e7e5", "g1f3")
	log := s.History()

	testutil.AssertNoError(t, s.Undo(1), "Undo(1)")
	testutil.AssertEqual(t, s.FEN(), log[2])
	testutil.AssertEqual(t, s.Position().ToMove, chess.White)

	testutil.AssertErrorIs(t, s.Undo(3), chesserrors.ErrNothingToUndo)
	testutil.AssertErrorIs(t, s.Undo(0), chesserrors.ErrNothingToUndo)
	testutil.AssertEqual(t, s.Plies(), 2, "failed undo must not change the log")

	testutil.AssertNoError(t, s.Undo(2), "Undo(2)")
	testutil.AssertEqual(t, s.FEN(), engine.InitialFEN)
	testutil.AssertErrorIs(t, s.Undo(1), chesserrors.ErrNothingToUndo)

	// The game continues from the restored position.
	moves := play(t, s, "d2d4")
	testutil.AssertEqual(t, moves[0].Text, "d4")
	testutil.AssertEqual(t, s.Plies(), 1)
}

func TestUndoPair(t *testing.T) {
	s := mustNew(t, "")
	play(t, s, "e2e4", "e7e5", "g1f3")

	n, err := s.UndoPair()
	testutil.AssertNoError(t, err, "first UndoPair")
	testutil.AssertEqual(t, n, 2)
	testutil.AssertEqual(t, s.Plies(), 1)

	n, err = s.UndoPair()
	testutil.AssertNoError(t, err, "second UndoPair")
	testutil.AssertEqual(t, n, 1)
	testutil.AssertEqual(t, s.Plies(), 0)

	n, err = s.UndoPair()
	testutil.AssertErrorIs(t, err, chesserrors.ErrNothingToUndo)
	testutil.AssertEqual(t, n, 0)
}

func TestUndo_RewritesSink(t *testing.T) {
	sink := &memFile{}
	s := mustNew(t, "", WithSink(sink))
	play(t, s, "e2e4", "e7e5", "g1f3")

	testutil.AssertNoError(t, s.Undo(2), "Undo(2)")
	testutil.AssertEqual(t, sink.truncations, 1)
	want := strings.Join(testutil.FENLog(t, "", "e2e4"), "\n") + "\n"
	testutil.AssertEqual(t, sink.String(), want)

	play(t, s, "c7c5")
	want = strings.Join(testutil.FENLog(t, "", "e2e4", "c7c5"), "\n") + "\n"
	testutil.AssertEqual(t, sink.String(), want)
}

func TestUndo_PlainSinkUntouched(t *testing.T) {
	var sink bytes.Buffer
	s := mustNew(t, "", WithSink(&sink))
	play(t, s, "e2e4")
	before := sink.String()

	testutil.AssertNoError(t, s.Undo(1), "Undo(1)")
	testutil.AssertEqual(t, sink.String(), before)
}

func TestResume(t *testing.T) {
	log := testutil.FENLog(t, "", "e2e4", "e7e5")
	lines := []string{"", log[0], "  " + log[1] + "  ", "", log[2], ""}

	var sink bytes.Buffer
	s, err := Resume(lines, WithSink(&sink))
	testutil.AssertNoError(t, err, "Resume")
	testutil.AssertEqual(t, s.Plies(), 2)
	testutil.AssertEqual(t, s.FEN(), log[2])
	testutil.AssertEqual(t, sink.Len(), 0, "Resume must not write the sink")

	moves := play(t, s, "g1f3")
	testutil.AssertEqual(t, moves[0].Text, "Nf3")
	testutil.AssertEqual(t, sink.String(), moves[0].FEN+"\n")

	// Undo reaches back into the resumed part of the log.
	testutil.AssertNoError(t, s.Undo(3), "Undo(3)")
	testutil.AssertEqual(t, s.FEN(), engine.InitialFEN)
}

func TestResume_Errors(t *testing.T) {
	_, err := Resume([]string{engine.InitialFEN, "rnbqkbnr/pppppppp w"})
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
	testutil.AssertContains(t, err.Error(), "log line 2")

	_, err = Resume([]string{"", "   "})
	testutil.AssertErrorIs(t, err, chesserrors.ErrEmptyLog)
}

func TestLoad(t *testing.T) {
	text := testutil.FENLogText(t, "", "d2d4", "d7d5", "c2c4")
	s, err := Load(strings.NewReader(text))
	testutil.AssertNoError(t, err, "Load")
	testutil.AssertEqual(t, s.Plies(), 3)

	moves := play(t, s, "d5c4")
	testutil.AssertEqual(t, moves[0].Text, "dxc4")

	var out bytes.Buffer
	testutil.AssertNoError(t, s.WriteLog(&out), "WriteLog")
	testutil.AssertEqual(t, out.String(), testutil.FENLogText(t, "", "d2d4", "d7d5", "c2c4", "d5c4"))
}

func TestRepetition(t *testing.T) {
	s := mustNew(t, "")
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	testutil.AssertEqual(t, s.RepetitionCount(), 1)
	play(t, s, shuffle...)
	testutil.AssertEqual(t, s.RepetitionCount(), 2)
	testutil.AssertEqual(t, s.Status(), engine.Ongoing)

	play(t, s, shuffle...)
	testutil.AssertEqual(t, s.RepetitionCount(), 3)
	testutil.AssertEqual(t, s.Status(), engine.Repetition)

	testutil.AssertNoError(t, s.Undo(1), "Undo(1)")
	testutil.AssertEqual(t, s.RepetitionCount(), 2)
	testutil.AssertEqual(t, s.Status(), engine.Ongoing)
}

func TestRepetition_Resumed(t *testing.T) {
	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	s, err := Resume(testutil.FENLog(t, "", moves...))
	testutil.AssertNoError(t, err, "Resume")
	testutil.AssertEqual(t, s.Status(), engine.Repetition)
}

func TestStatus(t *testing.T) {
	s := mustNew(t, "")
	moves := play(t, s, "f2f3", "e7e5", "g2g4", "d8h4")

	testutil.AssertEqual(t, moves[3].Text, "Qh4#")
	testutil.AssertEqual(t, s.Status(), engine.Checkmate)

	_, err := s.MoveUCI("e1f2")
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)

	bare := mustNew(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertEqual(t, bare.Status(), engine.InsufficientMaterial)
}

func TestPGN(t *testing.T) {
	s := mustNew(t, "", WithClock(fixedNow))
	play(t, s, "e2e4", "e7e5", "g1f3")

	pgn, err := s.PGN()
	testutil.AssertNoError(t, err, "PGN")

	want := `[Event "Current Game"]
[Site "?"]
[Date "2024.01.02"]
[Round "?"]
[White "Player"]
[Black "AI"]
[Result "*"]

1. e4 e5 2. Nf3 *

`
	testutil.AssertEqual(t, pgn, want)
}

func TestPGN_ConfiguredHeaders(t *testing.T) {
	cfg := config.NewConfigBuilder().
		WithPlayers("Alice", "Stockfish").
		WithEvent("Club Night", "Home").
		Build()
	cfg.Headers.Date = "2025.06.01"

	s := mustNew(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", WithConfig(cfg), WithClock(fixedNow))
	play(t, s, "e2e4")

	pgn, err := s.PGN()
	testutil.AssertNoError(t, err, "PGN")
	for _, want := range []string{
		`[Event "Club Night"]`,
		`[Site "Home"]`,
		`[Date "2025.06.01"]`,
		`[White "Alice"]`,
		`[Black "Stockfish"]`,
		`[SetUp "1"]`,
		`[FEN "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"]`,
		"1. e4 *",
	} {
		testutil.AssertContains(t, pgn, want)
	}

	res, err := s.Game()
	testutil.AssertNoError(t, err, "Game")
	testutil.AssertEqual(t, res.Game.PlyCount(), 1)
	testutil.AssertEqual(t, len(res.Skipped), 0)
}
