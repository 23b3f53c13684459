// Package session keeps a game as an append-only log of FEN snapshots.
//
// Every committed half-move appends the resulting position to the log.
// Undo truncates the log and decodes the surviving last line again, so
// there is no reverse-move logic to get wrong. The same log is what
// notation.Reconstruct turns into PGN.
package session

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/config"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/engine"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/hashing"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/notation"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/output"
)

// Session is a game in progress. It is not safe for concurrent use.
type Session struct {
	pos  *chess.Position
	log  []string
	reps *hashing.RepetitionTable

	sink io.Writer
	cfg  *config.Config
	now  func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithSink copies every appended FEN line to w. If w can also seek and
// truncate (an *os.File, say) Undo rewrites it to match the log.
func WithSink(w io.Writer) Option {
	return func(s *Session) {
		s.sink = w
	}
}

// WithConfig supplies the headers and output settings used by PGN.
func WithConfig(cfg *config.Config) Option {
	return func(s *Session) {
		s.cfg = cfg
	}
}

// WithClock sets the clock used for the PGN Date header.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func newSession(opts []Option) *Session {
	s := &Session{
		reps: hashing.NewRepetitionTable(),
		cfg:  config.NewConfig(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New starts a game from fen, or from the initial position when fen is
// empty. The start position is the first line of the log and is written
// to the sink.
func New(fen string, opts ...Option) (*Session, error) {
	s := newSession(opts)

	pos := engine.NewInitialPosition()
	if fen != "" {
		var err error
		if pos, err = engine.NewPositionFromFEN(fen); err != nil {
			return nil, err
		}
	}
	s.pos = pos
	if err := s.record(engine.PositionToFEN(pos)); err != nil {
		return nil, err
	}
	return s, nil
}

// Resume continues a game from a saved log. Blank lines are ignored and
// every other line must decode. Nothing is written to the sink: it is
// assumed to hold the log already.
func Resume(lines []string, opts ...Option) (*Session, error) {
	s := newSession(opts)

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pos, err := engine.NewPositionFromFEN(line)
		if err != nil {
			return nil, errors.Wrapf(err, "log line %d", i+1)
		}
		s.pos = pos
		s.log = append(s.log, line)
		s.reps.Push(pos)
	}
	if s.pos == nil {
		return nil, errors.ErrEmptyLog
	}
	return s, nil
}

// Load reads a saved log, one FEN per line, and resumes it.
func Load(r io.Reader, opts ...Option) (*Session, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading FEN log")
	}
	return Resume(lines, opts...)
}

// Move plays from -> to for the side to move. The returned move carries
// its SAN text and the FEN of the resulting position. An illegal request
// leaves the session untouched. If only the sink write fails the move
// stands and the error is returned with it.
func (s *Session) Move(from, to chess.Square, promotion chess.PieceType) (*chess.Move, error) {
	prev := s.pos.Copy()
	move, err := engine.ApplyMove(s.pos, from, to, promotion)
	if err != nil {
		return nil, err
	}
	move.Text = notation.SAN(prev, move)
	move.FEN = engine.PositionToFEN(s.pos)
	return move, s.record(move.FEN)
}

// MoveUCI plays a move given in coordinate notation, as an engine would
// send it.
func (s *Session) MoveUCI(text string) (*chess.Move, error) {
	req, err := engine.ParseUCIMove(text)
	if err != nil {
		return nil, err
	}
	return s.Move(req.From, req.To, req.Promotion)
}

func (s *Session) record(fen string) error {
	s.log = append(s.log, fen)
	s.reps.Push(s.pos)
	if s.sink == nil {
		return nil
	}
	if _, err := io.WriteString(s.sink, fen+"\n"); err != nil {
		return errors.Wrap(err, "writing FEN log")
	}
	return nil
}

// Undo takes back plies half-moves. It fails with errors.ErrNothingToUndo,
// changing nothing, unless that many moves have been played.
func (s *Session) Undo(plies int) error {
	if plies < 1 || plies > s.Plies() {
		return errors.ErrNothingToUndo
	}

	keep := len(s.log) - plies
	pos, err := engine.NewPositionFromFEN(s.log[keep-1])
	if err != nil {
		return err
	}

	s.log = s.log[:keep]
	for i := 0; i < plies; i++ {
		s.reps.Pop()
	}
	s.pos = pos
	return s.rewriteSink()
}

// UndoPair takes back the last move of each side, or the single move
// played when only one exists. It returns the number of plies removed.
func (s *Session) UndoPair() (int, error) {
	plies := 2
	if s.Plies() < 2 {
		plies = s.Plies()
	}
	if err := s.Undo(plies); err != nil {
		return 0, err
	}
	return plies, nil
}

// rewritable is a sink that can be replaced wholesale.
type rewritable interface {
	io.Writer
	io.Seeker
	Truncate(size int64) error
}

func (s *Session) rewriteSink() error {
	rw, ok := s.sink.(rewritable)
	if !ok {
		return nil
	}
	if err := rw.Truncate(0); err != nil {
		return errors.Wrap(err, "truncating FEN log")
	}
	if _, err := rw.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "rewinding FEN log")
	}
	return s.WriteLog(rw)
}

// WriteLog writes the whole log, one FEN per line.
func (s *Session) WriteLog(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range s.log {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "writing FEN log")
	}
	return nil
}

// Position returns a copy of the current position.
func (s *Session) Position() *chess.Position {
	return s.pos.Copy()
}

// FEN returns the current position in FEN.
func (s *Session) FEN() string {
	return s.log[len(s.log)-1]
}

// History returns a copy of the log, oldest first.
func (s *Session) History() []string {
	return append([]string(nil), s.log...)
}

// Plies returns the number of half-moves recorded after the start
// position.
func (s *Session) Plies() int {
	return len(s.log) - 1
}

// RepetitionCount returns how often the current position has occurred,
// counting the current occurrence.
func (s *Session) RepetitionCount() int {
	return s.reps.Count(s.pos)
}

// Status reports whether the game can continue. Checkmate and stalemate
// come first, then a third occurrence of the position, then the draw
// rules engine.Status knows about.
func (s *Session) Status() engine.GameStatus {
	status := engine.Status(s.pos)
	if status == engine.Checkmate || status == engine.Stalemate {
		return status
	}
	if s.RepetitionCount() >= 3 {
		return engine.Repetition
	}
	return status
}

// Game reconstructs the game record from the log, with headers taken
// from the session's configuration.
func (s *Session) Game() (*notation.Result, error) {
	h := s.cfg.Headers
	opts := []notation.Option{
		notation.WithNow(s.now),
		notation.WithTag(chess.EventTag, h.Event),
		notation.WithTag(chess.SiteTag, h.Site),
		notation.WithTag(chess.RoundTag, h.Round),
		notation.WithTag(chess.WhiteTag, h.White),
		notation.WithTag(chess.BlackTag, h.Black),
	}
	if h.Date != "" {
		opts = append(opts, notation.WithTag(chess.DateTag, h.Date))
	}
	return notation.Reconstruct(s.log, opts...)
}

// PGN renders the game so far.
func (s *Session) PGN() (string, error) {
	res, err := s.Game()
	if err != nil {
		return "", err
	}
	return output.FormatPGN(res.Game, s.cfg), nil
}
