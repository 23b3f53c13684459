// Package notation recovers a game record from a log of FEN snapshots and
// renders moves in Standard Algebraic Notation.
//
// Each pair of consecutive snapshots is compared square by square. The
// squares that changed are explained as a single move: a king shifted two
// files is a castle, otherwise a vacated square is paired with a filled
// square holding the same piece, and a pawn that vanished from the seventh
// rank next to a new piece on the eighth is a promotion. Transitions that
// cannot be explained are skipped and reported.
package notation

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/engine"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
)

// Result is the outcome of a reconstruction.
type Result struct {
	// Game holds the headers and the recovered moves.
	Game *chess.Game

	// Final is the last snapshot that decoded successfully, or nil when no
	// line decoded.
	Final *chess.Position

	// Skipped holds one *errors.TransitionError per snapshot line that was
	// invalid or whose transition could not be resolved.
	Skipped []error
}

// Option configures a reconstruction.
type Option func(*options)

type options struct {
	tags   map[string]string
	now    func() time.Time
	source string
}

// WithTag sets a header tag, overriding the default value.
func WithTag(name, value string) Option {
	return func(o *options) {
		o.tags[name] = value
	}
}

// WithNow sets the clock used for the Date header.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithSource names the log in reported errors.
func WithSource(name string) Option {
	return func(o *options) {
		o.source = name
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		tags: map[string]string{
			chess.EventTag: "?",
			chess.SiteTag:  "?",
			chess.RoundTag: "?",
			chess.WhiteTag: "?",
			chess.BlackTag: "?",
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ReconstructReader reads one FEN per line from r and reconstructs the game.
func ReconstructReader(r io.Reader, opts ...Option) (*Result, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading FEN log")
	}
	return Reconstruct(lines, opts...)
}

// Reconstruct rebuilds a game from an ordered list of FEN snapshots. Blank
// lines are ignored. A line that is not valid FEN is reported and the
// comparison continues from the previous good snapshot. A log in which no
// line decodes gives an empty unfinished game with a nil Final. The error
// is always nil; it matches ReconstructReader, which can fail on I/O.
func Reconstruct(fens []string, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	res := &Result{Game: chess.NewGame()}

	var prev *chess.Position
	var startFEN string

	for i, line := range fens {
		lineNo := i + 1
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		curr, err := engine.NewPositionFromFEN(line)
		if err != nil {
			res.Skipped = append(res.Skipped, &errors.TransitionError{
				Err:    err,
				File:   o.source,
				Line:   lineNo,
				Reason: "invalid snapshot",
			})
			continue
		}

		if prev == nil {
			prev, startFEN = curr, line
			res.Game.StartFEN = line
			res.Game.FirstMover = curr.ToMove
			res.Game.FirstMoveNumber = curr.MoveNumber
			continue
		}

		move, reason := diffMove(prev, curr)
		switch {
		case move != nil:
			move.FEN = line
			res.Game.AppendMove(move)
		case reason != "":
			res.Skipped = append(res.Skipped, &errors.TransitionError{
				Err:    errors.ErrUnresolvedTransition,
				File:   o.source,
				Line:   lineNo,
				Reason: reason,
			})
		}
		prev = curr
	}

	if prev == nil {
		o.setTags(res.Game, "", nil)
		return res, nil
	}

	if len(res.Game.Moves) > 0 {
		first := res.Game.Moves[0]
		res.Game.FirstMover = first.Piece.Colour
		res.Game.FirstMoveNumber = first.Number
	}
	res.Final = prev
	o.setTags(res.Game, startFEN, prev)
	return res, nil
}

// setTags fills the seven tag roster, plus SetUp and FEN when the game does
// not begin from the standard starting position.
func (o *options) setTags(game *chess.Game, startFEN string, final *chess.Position) {
	for name, value := range o.tags {
		game.SetTag(name, value)
	}
	if !game.HasTag(chess.DateTag) {
		game.SetTag(chess.DateTag, o.now().Format("2006.01.02"))
	}
	if final == nil {
		game.SetTag(chess.ResultTag, chess.Unfinished)
		return
	}
	if !isStandardStart(startFEN) {
		game.SetTag(chess.SetupTag, "1")
		game.SetTag(chess.FENTag, startFEN)
	}
	game.SetTag(chess.ResultTag, engine.ResultFor(final))
}

// isStandardStart compares everything but the clocks with the initial
// position.
func isStandardStart(fen string) bool {
	got := strings.Fields(fen)
	want := strings.Fields(engine.InitialFEN)
	if len(got) < 2 {
		return false
	}
	for i := 0; i < 4; i++ {
		field := "-"
		if i < len(got) {
			field = got[i]
		}
		if field != want[i] {
			return false
		}
	}
	return true
}

// change is one square whose content differs between two snapshots.
type change struct {
	sq    chess.Square
	piece chess.Piece
}

// boardDiff lists the pieces that left a square and the pieces that arrived
// on one.
func boardDiff(prev, curr *chess.Board) (vacated, filled []change) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Square{Row: row, Col: col}
			before, after := prev.Get(sq), curr.Get(sq)
			if before == after {
				continue
			}
			if !before.IsEmpty() {
				vacated = append(vacated, change{sq, before})
			}
			if !after.IsEmpty() {
				filled = append(filled, change{sq, after})
			}
		}
	}
	return vacated, filled
}

// diffMove explains the step from prev to curr as one move. It returns a nil
// move and an empty reason when the placements are identical, and a nil
// move with a reason when the change cannot be explained.
func diffMove(prev, curr *chess.Position) (*chess.Move, string) {
	vacated, filled := boardDiff(&prev.Board, &curr.Board)
	if len(vacated) == 0 && len(filled) == 0 {
		return nil, ""
	}

	move := findCastle(prev, curr, vacated, filled)
	if move == nil {
		move = findPairedMove(prev, vacated, filled)
	}
	if move == nil {
		move = findPromotion(prev, vacated, filled)
	}
	if move == nil {
		return nil, "no moved piece found"
	}

	move.Number = prev.MoveNumber
	opponent := move.Piece.Colour.Opposite()
	switch {
	case engine.IsCheckmate(curr, opponent):
		move.CheckStatus = chess.Checkmate
	case engine.IsInCheck(curr, opponent):
		move.CheckStatus = chess.Check
	}
	move.Text = SAN(prev, move)
	return move, ""
}

// findCastle looks for a king that moved two files along its rank while the
// rook on that side left its home corner. A king that slid two files with
// its rook still at home is an ordinary move across a gap in the log.
func findCastle(prev, curr *chess.Position, vacated, filled []change) *chess.Move {
	for _, v := range vacated {
		if v.piece.Type != chess.King {
			continue
		}
		for _, f := range filled {
			if f.piece != v.piece || f.sq.Row != v.sq.Row || abs(f.sq.Col-v.sq.Col) != 2 {
				continue
			}
			side := chess.Kingside
			if f.sq.Col < v.sq.Col {
				side = chess.Queenside
			}
			colour := v.piece.Colour
			home := chess.RookHome(colour, side)
			if !prev.Board.Get(home).Is(colour, chess.Rook) || curr.Board.Get(home).Is(colour, chess.Rook) {
				continue
			}
			return &chess.Move{From: v.sq, To: f.sq, Piece: v.piece, IsCastle: true}
		}
	}
	return nil
}

// findPairedMove pairs a vacated square with a filled square holding the
// same piece.
func findPairedMove(prev *chess.Position, vacated, filled []change) *chess.Move {
	for _, v := range vacated {
		for _, f := range filled {
			if v.piece == f.piece {
				return buildMove(prev, v.sq, f.sq, v.piece)
			}
		}
	}
	return nil
}

// findPromotion pairs a pawn that left the rank before promotion with a new
// piece of its colour on the last rank.
func findPromotion(prev *chess.Position, vacated, filled []change) *chess.Move {
	for _, v := range vacated {
		if v.piece.Type != chess.Pawn {
			continue
		}
		colour := v.piece.Colour
		lastRow := chess.PromotionRow(colour)
		if v.sq.Row != lastRow-chess.Forward(colour) {
			continue
		}
		for _, f := range filled {
			if f.piece.Colour != colour || f.sq.Row != lastRow || abs(f.sq.Col-v.sq.Col) > 1 {
				continue
			}
			switch f.piece.Type {
			case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
				move := buildMove(prev, v.sq, f.sq, v.piece)
				move.IsPromotion = true
				move.Promotion = f.piece.Type
				return move
			}
		}
	}
	return nil
}

// buildMove fills in capture and en passant details from the position the
// move was played in.
func buildMove(prev *chess.Position, from, to chess.Square, piece chess.Piece) *chess.Move {
	move := &chess.Move{From: from, To: to, Piece: piece}

	target := prev.Board.Get(to)
	switch {
	case !target.IsEmpty() && target.Colour != piece.Colour:
		move.Captured = target
		move.IsCapture = true
	case piece.Type == chess.Pawn && from.Col != to.Col && target.IsEmpty():
		move.Captured = prev.Board.Get(chess.Square{Row: from.Row, Col: to.Col})
		move.IsCapture = true
		move.IsEnPassant = true
	}
	return move
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
