package chess

// Square is a board coordinate. Row 0 is rank 8, column 0 is file a.
type Square struct {
	Row int
	Col int
}

// NoSquare is returned where a square is required but none applies.
var NoSquare = Square{Row: -1, Col: -1}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by the given row and column deltas.
// The result may be off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// File returns the file letter 'a'..'h'.
func (s Square) File() byte {
	return byte(FirstFile + s.Col)
}

// Rank returns the rank digit '1'..'8'.
func (s Square) Rank() byte {
	return byte(LastRank - s.Row)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	file, rank := s[0], s[1]
	if file < FirstFile || file > LastFile || rank < FirstRank || rank > LastRank {
		return NoSquare, false
	}
	return Square{Row: int(LastRank - rank), Col: int(file - FirstFile)}, true
}

// SquareAt builds a square from file and rank characters ('a'..'h', '1'..'8').
// The result is invalid if either character is out of range.
func SquareAt(file, rank byte) Square {
	sq, ok := ParseSquare(string([]byte{file, rank}))
	if !ok {
		return NoSquare
	}
	return sq
}

// Board is the raw 8x8 piece grid. It carries no game state.
// Board is a value type; assigning it copies every square.
type Board struct {
	squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() Board {
	return Board{}
}

// NewInitialBoard returns a board holding the standard starting arrangement.
func NewInitialBoard() Board {
	var b Board
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.squares[0][col] = B(backRank[col])
		b.squares[1][col] = B(Pawn)
		b.squares[6][col] = W(Pawn)
		b.squares[7][col] = W(backRank[col])
	}
	return b
}

// Get returns the piece on sq, or Empty if sq is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.squares[sq.Row][sq.Col]
}

// Set places a piece on sq. Setting an off-board square is a no-op.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b.squares[sq.Row][sq.Col] = p
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Empty)
}

// IsEmpty reports whether sq is on the board and vacant.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.Valid() && b.squares[sq.Row][sq.Col].IsEmpty()
}

// Find returns every square holding the given piece, in row-major order.
func (b *Board) Find(p Piece) []Square {
	var found []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.squares[row][col] == p {
				found = append(found, Square{Row: row, Col: col})
			}
		}
	}
	return found
}

// ForEach calls fn for every occupied square in row-major order.
func (b *Board) ForEach(fn func(sq Square, p Piece)) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; !p.IsEmpty() {
				fn(Square{Row: row, Col: col}, p)
			}
		}
	}
}
