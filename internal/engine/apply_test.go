package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	chesserrors "github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
)

// playUCI applies a sequence of coordinate moves or aborts the test.
func playUCI(t *testing.T, pos *chess.Position, moves ...string) []*chess.Move {
	t.Helper()
	var played []*chess.Move
	for _, m := range moves {
		move, err := ApplyUCIMove(pos, m)
		if err != nil {
			t.Fatalf("ApplyUCIMove(%s) failed: %v", m, err)
		}
		played = append(played, move)
	}
	return played
}

func castlingField(fen string) string {
	return strings.Fields(fen)[2]
}

func TestApplyMove_OpeningPawnMoves(t *testing.T) {
	pos := NewInitialPosition()
	playUCI(t, pos, "e2e4", "e7e5")

	want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"
	if got := PositionToFEN(pos); got != want {
		t.Errorf("PositionToFEN() = %q, want %q", got, want)
	}
	if pos.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0", pos.HalfmoveClock)
	}
	if pos.MoveNumber != 2 {
		t.Errorf("MoveNumber = %d, want 2", pos.MoveNumber)
	}
}

func TestApplyMove_KnightDevelopment(t *testing.T) {
	pos := mustFEN(t, InitialFEN)
	move, err := ApplyMove(pos, sq("g1"), sq("f3"), chess.NoPiece)
	if err != nil {
		t.Fatalf("ApplyMove(g1f3) error = %v", err)
	}

	if move.Piece != chess.W(chess.Knight) || move.IsCapture {
		t.Errorf("move = %+v, want a quiet knight move", move)
	}
	if pos.Board.Get(sq("f3")) != chess.W(chess.Knight) || !pos.Board.IsEmpty(sq("g1")) {
		t.Error("knight not relocated")
	}
	if pos.HalfmoveClock != 1 {
		t.Errorf("HalfmoveClock = %d, want 1", pos.HalfmoveClock)
	}
	if pos.MoveNumber != 1 {
		t.Errorf("MoveNumber = %d, want 1", pos.MoveNumber)
	}
	if pos.ToMove != chess.Black {
		t.Errorf("ToMove = %v, want Black", pos.ToMove)
	}
	if got := castlingField(PositionToFEN(pos)); got != "KQkq" {
		t.Errorf("castling = %q, want KQkq", got)
	}
}

func TestApplyMove_EnPassantCapture(t *testing.T) {
	pos := mustFEN(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	move, err := ApplyMove(pos, sq("e5"), sq("d6"), chess.NoPiece)
	if err != nil {
		t.Fatalf("ApplyMove(e5d6) error = %v", err)
	}

	if !move.IsEnPassant || !move.IsCapture {
		t.Errorf("move flags = %+v, want en passant capture", move)
	}
	if move.Captured != chess.B(chess.Pawn) {
		t.Errorf("Captured = %v, want Black Pawn", move.Captured)
	}
	if !pos.Board.IsEmpty(sq("d5")) {
		t.Error("captured pawn still on d5")
	}
	if pos.Board.Get(sq("d6")) != chess.W(chess.Pawn) {
		t.Error("capturing pawn not on d6")
	}
	if pos.EnPassant {
		t.Error("en passant still available after the capture")
	}
	if got := pos.Captured[chess.White]; len(got) != 1 || got[0] != chess.B(chess.Pawn) {
		t.Errorf("Captured[White] = %v, want [Black Pawn]", got)
	}
	if pos.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0", pos.HalfmoveClock)
	}
}

func TestApplyMove_Castling(t *testing.T) {
	tests := []struct {
		name         string
		fen          string
		move         string
		wantFEN      string
		wantCastling string
	}{
		{
			name:    "white kingside",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "e1g1",
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name:    "white queenside",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "e1c1",
			wantFEN: "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1",
		},
		{
			name:    "black kingside",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 3 10",
			move:    "e8g8",
			wantFEN: "r4rk1/8/8/8/8/8/8/R3K2R w KQ - 4 11",
		},
		{
			name:    "black queenside",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:    "e8c8",
			wantFEN: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			moves := playUCI(t, pos, tt.move)
			if !moves[0].IsCastle {
				t.Error("IsCastle = false, want true")
			}
			if got := PositionToFEN(pos); got != tt.wantFEN {
				t.Errorf("PositionToFEN() = %q, want %q", got, tt.wantFEN)
			}
			colour := moves[0].Piece.Colour
			if pos.KingSquare(colour) != moves[0].To {
				t.Errorf("cached king square = %v, want %v", pos.KingSquare(colour), moves[0].To)
			}
		})
	}
}

func TestApplyMove_CastlingRights(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{"king move clears both", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1f1"}, "kq"},
		{"a1 rook move clears Q", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"a1b1"}, "Kkq"},
		{"h8 rook move clears k", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"h8h7"}, "KQq"},
		{"capture on a8 clears q", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"a1a8"}, "Kk"},
		{"capture on h1 clears K", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"h8h1"}, "Qq"},
		{"rook returning does not restore", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			[]string{"h1h2", "a8a7", "h2h1"}, "Qk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			playUCI(t, pos, tt.moves...)
			if got := castlingField(PositionToFEN(pos)); got != tt.want {
				t.Errorf("castling = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyMove_EnPassantTiming(t *testing.T) {
	pos := NewInitialPosition()

	playUCI(t, pos, "e2e4")
	if !pos.EnPassant || pos.EPSquare != sq("e3") {
		t.Fatalf("after e2e4: EnPassant=%v EPSquare=%v, want e3", pos.EnPassant, pos.EPSquare)
	}

	playUCI(t, pos, "g8f6")
	if pos.EnPassant {
		t.Error("en passant flag survived a non-pawn reply")
	}

	playUCI(t, pos, "e4e5", "d7d5")
	if !pos.EnPassant || pos.EPSquare != sq("d6") {
		t.Fatalf("after d7d5: EnPassant=%v EPSquare=%v, want d6", pos.EnPassant, pos.EPSquare)
	}

	playUCI(t, pos, "b1c3", "a7a6")
	if _, err := ApplyUCIMove(pos, "e5d6"); !errors.Is(err, chesserrors.ErrIllegalMove) {
		t.Errorf("late en passant error = %v, want ErrIllegalMove", err)
	}
}

func TestApplyMove_Counters(t *testing.T) {
	pos := NewInitialPosition()

	steps := []struct {
		move     string
		wantHalf int
		wantFull int
	}{
		{"g1f3", 1, 1},
		{"g8f6", 2, 2},
		{"f3g1", 3, 2},
		{"f6g8", 4, 3},
		{"e2e4", 0, 3},
		{"b8c6", 1, 4},
		{"f1b5", 2, 4},
		{"c6d4", 3, 5},
		{"b5d7", 0, 5},
	}

	for _, s := range steps {
		playUCI(t, pos, s.move)
		if pos.HalfmoveClock != s.wantHalf || pos.MoveNumber != s.wantFull {
			t.Errorf("after %s: clocks = (%d, %d), want (%d, %d)",
				s.move, pos.HalfmoveClock, pos.MoveNumber, s.wantHalf, s.wantFull)
		}
	}
}

func TestApplyMove_Promotion(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		promotion chess.PieceType
		want      chess.PieceType
	}{
		{"explicit knight", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", chess.Knight, chess.Knight},
		{"explicit rook", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", chess.Rook, chess.Rook},
		{"default queen", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", chess.NoPiece, chess.Queen},
		{"king is not a promotion piece", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", chess.King, chess.Queen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			move, err := ApplyMove(pos, sq("a7"), sq("a8"), tt.promotion)
			if err != nil {
				t.Fatalf("ApplyMove(a7a8) error = %v", err)
			}
			if !move.IsPromotion || move.Promotion != tt.want {
				t.Errorf("move promotion = (%v, %v), want (true, %v)", move.IsPromotion, move.Promotion, tt.want)
			}
			if got := pos.Board.Get(sq("a8")); got != chess.W(tt.want) {
				t.Errorf("a8 = %v, want White %v", got, tt.want)
			}
		})
	}

	// Black promotes on rank 1 by capture.
	pos := mustFEN(t, "4k3/8/8/8/8/8/6p1/4K2R b - - 0 1")
	move, err := ApplyMove(pos, sq("g2"), sq("h1"), chess.Queen)
	if err != nil {
		t.Fatalf("ApplyMove(g2h1) error = %v", err)
	}
	if !move.IsCapture || move.Captured != chess.W(chess.Rook) {
		t.Errorf("move = %+v, want capture of the h1 rook", move)
	}
	if pos.Board.Get(sq("h1")) != chess.B(chess.Queen) {
		t.Errorf("h1 = %v, want Black Queen", pos.Board.Get(sq("h1")))
	}

	// A promotion request on an ordinary move is ignored.
	pos = NewInitialPosition()
	move, err = ApplyMove(pos, sq("e2"), sq("e4"), chess.Queen)
	if err != nil {
		t.Fatalf("ApplyMove(e2e4) error = %v", err)
	}
	if move.IsPromotion || pos.Board.Get(sq("e4")) != chess.W(chess.Pawn) {
		t.Error("promotion applied to a non-promoting move")
	}
}

func TestApplyMove_CheckStatus(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  chess.CheckStatus
	}{
		{"quiet", InitialFEN, []string{"e2e4"}, chess.NoCheck},
		{"check", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", []string{"a1a8"}, chess.Check},
		{"fool's mate", InitialFEN, []string{"f2f3", "e7e5", "g2g4", "d8h4"}, chess.Checkmate},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", []string{"a1a8"}, chess.Checkmate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			played := playUCI(t, pos, tt.moves...)
			if got := played[len(played)-1].CheckStatus; got != tt.want {
				t.Errorf("CheckStatus = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyMove_IllegalLeavesPositionUntouched(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		to   string
	}{
		{"empty origin", InitialFEN, "e4", "e5"},
		{"wrong side", InitialFEN, "e7", "e5"},
		{"not a pawn move", InitialFEN, "e2", "e5"},
		{"own piece on target", InitialFEN, "a1", "a2"},
		{"pinned piece", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2", "d3"},
		{"castle through check", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", "e1", "g1"},
		{"off board", InitialFEN, "e2", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			before := PositionToFEN(pos)

			to, _ := chess.ParseSquare(tt.to)
			from, _ := chess.ParseSquare(tt.from)
			move, err := ApplyMove(pos, from, to, chess.NoPiece)
			if move != nil {
				t.Errorf("ApplyMove returned move %+v for an illegal request", move)
			}
			if !errors.Is(err, chesserrors.ErrIllegalMove) {
				t.Errorf("error = %v, want ErrIllegalMove", err)
			}
			var moveErr *chesserrors.MoveError
			if !errors.As(err, &moveErr) || moveErr.PlyNum != 1 {
				t.Errorf("error %v should be a *MoveError at ply 1", err)
			}
			if got := PositionToFEN(pos); got != before {
				t.Errorf("position changed from %q to %q", before, got)
			}
		})
	}
}

func TestApplyMove_CaptureTallies(t *testing.T) {
	pos := NewInitialPosition()
	playUCI(t, pos, "e2e4", "d7d5", "e4d5", "d8d5", "b1c3", "d5a2", "a1a2")

	if got := pos.Captured[chess.White]; len(got) != 2 || got[0] != chess.B(chess.Pawn) || got[1] != chess.B(chess.Queen) {
		t.Errorf("Captured[White] = %v, want [Black Pawn, Black Queen]", got)
	}
	if got := pos.Captured[chess.Black]; len(got) != 2 || got[0] != chess.W(chess.Pawn) || got[1] != chess.W(chess.Pawn) {
		t.Errorf("Captured[Black] = %v, want [White Pawn, White Pawn]", got)
	}
}

func TestIsFiftyMoveDraw(t *testing.T) {
	tests := []struct {
		fen  string
		want bool
	}{
		{"4k3/8/8/8/8/8/8/R3K3 w - - 98 80", false},
		{"4k3/8/8/8/8/8/8/R3K3 w - - 99 80", false},
		{"4k3/8/8/8/8/8/8/R3K3 w - - 100 80", true},
	}
	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			if got := IsFiftyMoveDraw(mustFEN(t, tt.fen)); got != tt.want {
				t.Errorf("IsFiftyMoveDraw() = %v, want %v", got, tt.want)
			}
		})
	}

	pos := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 99 80")
	playUCI(t, pos, "a1a2")
	if !IsFiftyMoveDraw(pos) {
		t.Errorf("after a quiet move at 99: IsFiftyMoveDraw() = false, clock %d", pos.HalfmoveClock)
	}
}
