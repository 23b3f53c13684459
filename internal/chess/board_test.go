package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				sq := Square{Row: row, Col: col}
				if got := b.Get(sq); got != Empty {
					t.Errorf("Get(%v) = %v; want Empty", sq, got)
				}
			}
		}
	})

	t.Run("off-board reads are empty", func(t *testing.T) {
		for _, sq := range []Square{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, NoSquare} {
			if got := b.Get(sq); got != Empty {
				t.Errorf("Get(%v) = %v; want Empty", sq, got)
			}
		}
	})
}

func TestNewInitialBoard(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name   string
		square string
		piece  Piece
	}{
		// White back rank
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white bishop f1", "f1", W(Bishop)},
		{"white knight g1", "g1", W(Knight)},
		{"white rook h1", "h1", W(Rook)},
		// Pawns
		{"white pawn a2", "a2", W(Pawn)},
		{"white pawn e2", "e2", W(Pawn)},
		{"black pawn a7", "a7", B(Pawn)},
		{"black pawn h7", "h7", B(Pawn)},
		// Black back rank
		{"black rook a8", "a8", B(Rook)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black rook h8", "h8", B(Rook)},
		// Empty middle
		{"empty e4", "e4", Empty},
		{"empty d5", "d5", Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, ok := ParseSquare(tt.square)
			if !ok {
				t.Fatalf("ParseSquare(%q) failed", tt.square)
			}
			if got := b.Get(sq); got != tt.piece {
				t.Errorf("Get(%s) = %v; want %v", tt.square, got, tt.piece)
			}
		})
	}
}

func TestBoardSetClear(t *testing.T) {
	b := NewBoard()
	e4 := SquareAt('e', '4')

	b.Set(e4, W(Knight))
	if got := b.Get(e4); got != W(Knight) {
		t.Errorf("after Set, Get(e4) = %v; want White Knight", got)
	}
	if b.IsEmpty(e4) {
		t.Error("IsEmpty(e4) = true after Set")
	}

	b.Clear(e4)
	if !b.IsEmpty(e4) {
		t.Error("IsEmpty(e4) = false after Clear")
	}

	// Off-board writes must not panic or land anywhere.
	b.Set(Square{Row: 9, Col: 9}, W(Queen))
	if found := b.Find(W(Queen)); len(found) != 0 {
		t.Errorf("Find(White Queen) = %v after off-board Set; want none", found)
	}
}

func TestBoardIsValueType(t *testing.T) {
	a := NewInitialBoard()
	b := a
	b.Clear(SquareAt('e', '2'))

	if a.IsEmpty(SquareAt('e', '2')) {
		t.Error("modifying a copy changed the original board")
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in     string
		want   Square
		wantOK bool
	}{
		{"a8", Square{Row: 0, Col: 0}, true},
		{"h1", Square{Row: 7, Col: 7}, true},
		{"e4", Square{Row: 4, Col: 4}, true},
		{"d6", Square{Row: 2, Col: 3}, true},
		{"i1", NoSquare, false},
		{"a9", NoSquare, false},
		{"a0", NoSquare, false},
		{"e", NoSquare, false},
		{"e44", NoSquare, false},
		{"", NoSquare, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSquare(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseSquare(%q) ok = %v; want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.in, got, tt.want)
			}
			if ok && got.String() != tt.in {
				t.Errorf("String() = %q; want %q", got.String(), tt.in)
			}
		})
	}
}

func TestSquareString(t *testing.T) {
	if got := NoSquare.String(); got != "-" {
		t.Errorf("NoSquare.String() = %q; want \"-\"", got)
	}
	if got := (Square{Row: 7, Col: 0}).Offset(-1, 1).String(); got != "b2" {
		t.Errorf("a1.Offset(-1,1) = %q; want b2", got)
	}
}

func TestPieceFENLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(Pawn), 'P'},
		{W(Knight), 'N'},
		{W(King), 'K'},
		{B(Queen), 'q'},
		{B(Bishop), 'b'},
		{B(Rook), 'r'},
	}

	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			if got := tt.piece.FENLetter(); got != tt.want {
				t.Errorf("FENLetter() = %c; want %c", got, tt.want)
			}
			if got := PieceTypeFromLetter(tt.want); got != tt.piece.Type {
				t.Errorf("PieceTypeFromLetter(%c) = %v; want %v", tt.want, got, tt.piece.Type)
			}
		})
	}

	if got := PieceTypeFromLetter('x'); got != NoPiece {
		t.Errorf("PieceTypeFromLetter('x') = %v; want NoPiece", got)
	}
}

func TestPositionCopy(t *testing.T) {
	p := NewPosition()
	p.SetupInitialPosition()
	p.Captured[White] = append(p.Captured[White], B(Pawn))

	cp := p.Copy()
	cp.Board.Clear(SquareAt('e', '2'))
	cp.Captured[White][0] = B(Queen)
	cp.KingMoved[White] = true

	if p.Board.IsEmpty(SquareAt('e', '2')) {
		t.Error("Copy shares board with original")
	}
	if p.Captured[White][0] != B(Pawn) {
		t.Error("Copy shares capture tally with original")
	}
	if p.KingMoved[White] {
		t.Error("Copy shares castling flags with original")
	}
}

func TestPositionCanCastle(t *testing.T) {
	p := NewPosition()
	if p.CanCastle(White, Kingside) {
		t.Error("empty position should have no castling rights")
	}

	p.SetupInitialPosition()
	for _, c := range []Colour{White, Black} {
		for _, side := range []int{Kingside, Queenside} {
			if !p.CanCastle(c, side) {
				t.Errorf("CanCastle(%v, %d) = false in initial position", c, side)
			}
		}
	}

	p.RookMoved[Black][Queenside] = true
	if p.CanCastle(Black, Queenside) {
		t.Error("CanCastle(Black, Queenside) = true after rook moved")
	}
	if !p.CanCastle(Black, Kingside) {
		t.Error("CanCastle(Black, Kingside) = false; only queenside rook moved")
	}
}

func TestHomeSquares(t *testing.T) {
	if got := KingHome(White).String(); got != "e1" {
		t.Errorf("KingHome(White) = %s; want e1", got)
	}
	if got := RookHome(Black, Queenside).String(); got != "a8" {
		t.Errorf("RookHome(Black, Queenside) = %s; want a8", got)
	}
	if got := RookHome(White, Kingside).String(); got != "h1" {
		t.Errorf("RookHome(White, Kingside) = %s; want h1", got)
	}
}

func TestMoveUCI(t *testing.T) {
	m := &Move{From: SquareAt('e', '7'), To: SquareAt('e', '8'), IsPromotion: true, Promotion: Queen}
	if got := m.UCI(); got != "e7e8q" {
		t.Errorf("UCI() = %q; want e7e8q", got)
	}
	m = &Move{From: SquareAt('e', '1'), To: SquareAt('g', '1'), IsCastle: true}
	if !m.IsKingsideCastle() || m.IsQueensideCastle() {
		t.Error("e1g1 castle not classified as kingside")
	}
}

func TestGameTags(t *testing.T) {
	g := &Game{}
	if g.HasTag(ResultTag) {
		t.Error("new game should have no Result tag")
	}
	g.SetTag(ResultTag, WhiteWins)
	if got := g.Result(); got != WhiteWins {
		t.Errorf("Result() = %q; want %q", got, WhiteWins)
	}
	if g.LastMove() != nil {
		t.Error("LastMove() on empty game should be nil")
	}
	g.AppendMove(&Move{Text: "e4"})
	if g.PlyCount() != 1 || g.LastMove().Text != "e4" {
		t.Errorf("after AppendMove: PlyCount=%d LastMove=%v", g.PlyCount(), g.LastMove())
	}
}

func TestIsSevenTagRosterTag(t *testing.T) {
	for _, tag := range SevenTagRoster {
		if !IsSevenTagRosterTag(tag) {
			t.Errorf("IsSevenTagRosterTag(%q) = false", tag)
		}
	}
	if IsSevenTagRosterTag(FENTag) {
		t.Error("FEN is not a roster tag")
	}
}
