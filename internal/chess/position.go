package chess

// Position holds the full game state: the board plus everything FEN records
// and the per-game bookkeeping needed to apply moves.
type Position struct {
	// The piece grid.
	Board Board

	// Who has the next move.
	ToMove Colour

	// Cached king squares, indexed by colour.
	Kings [2]Square

	// One-way castling flags. Once set they are never cleared.
	KingMoved [2]bool
	RookMoved [2][2]bool // [colour][Kingside|Queenside]

	// Is an en passant capture possible? If so EPSquare is the square
	// the capturing pawn lands on.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number.
	MoveNumber int

	// Pieces captured by each colour, in capture order.
	Captured [2][]Piece
}

// NewPosition creates an empty position with white to move and no castling rights.
func NewPosition() *Position {
	return &Position{
		ToMove:     White,
		MoveNumber: 1,
		Kings:      [2]Square{NoSquare, NoSquare},
		KingMoved:  [2]bool{true, true},
		RookMoved:  [2][2]bool{{true, true}, {true, true}},
		EPSquare:   NoSquare,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (p *Position) SetupInitialPosition() {
	p.Board = NewInitialBoard()
	p.ToMove = White
	p.Kings = [2]Square{{Row: 7, Col: 4}, {Row: 0, Col: 4}}
	p.KingMoved = [2]bool{}
	p.RookMoved = [2][2]bool{}
	p.EnPassant = false
	p.EPSquare = NoSquare
	p.HalfmoveClock = 0
	p.MoveNumber = 1
	p.Captured = [2][]Piece{}
}

// KingSquare returns the cached square of the colour's king.
func (p *Position) KingSquare(c Colour) Square {
	return p.Kings[c]
}

// CanCastle reports whether the castling right for the colour and side
// still holds, i.e. neither the king nor that rook has moved.
func (p *Position) CanCastle(c Colour, side int) bool {
	return !p.KingMoved[c] && !p.RookMoved[c][side]
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	cp := *p
	for c := range p.Captured {
		if p.Captured[c] != nil {
			cp.Captured[c] = append([]Piece(nil), p.Captured[c]...)
		}
	}
	return &cp
}

// RookHome returns the starting square of the colour's rook on the given side.
func RookHome(c Colour, side int) Square {
	col := 7
	if side == Queenside {
		col = 0
	}
	return Square{Row: HomeRow(c), Col: col}
}

// KingHome returns the starting square of the colour's king.
func KingHome(c Colour) Square {
	return Square{Row: HomeRow(c), Col: 4}
}
