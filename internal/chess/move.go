package chess

// Move represents a single chess move with all associated data.
type Move struct {
	// The move text in SAN (e.g., "Nf3", "exd6", "O-O"), filled in by
	// whoever renders the move.
	Text string

	// Source and destination squares.
	From Square
	To   Square

	// The piece being moved.
	Piece Piece

	// The piece captured (Empty if no capture). For en passant this is the
	// pawn removed from beside the destination.
	Captured Piece

	IsCapture   bool
	IsCastle    bool
	IsEnPassant bool
	IsPromotion bool

	// The piece type promoted to (NoPiece if not a promotion).
	Promotion PieceType

	// Whether this move gives check or checkmate.
	CheckStatus CheckStatus

	// Fullmove number the move was played in.
	Number int

	// FEN of the position after this move, when known.
	FEN string
}

// IsKingsideCastle returns true if this move castles towards the h-file.
func (m *Move) IsKingsideCastle() bool {
	return m.IsCastle && m.To.Col > m.From.Col
}

// IsQueensideCastle returns true if this move castles towards the a-file.
func (m *Move) IsQueensideCastle() bool {
	return m.IsCastle && m.To.Col < m.From.Col
}

// UCI returns the coordinate form of the move, e.g. "e2e4" or "e7e8q".
func (m *Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion {
		s += string(Piece{Type: m.Promotion, Colour: Black}.FENLetter())
	}
	return s
}
