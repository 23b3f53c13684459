package chess

// Game is a game record: tags plus the moves recovered or played.
type Game struct {
	// Tags for this game (e.g., Event, Site, Date, White, Black, Result).
	Tags map[string]string

	// FEN of the starting position.
	StartFEN string

	// The move list of the game, in play order.
	Moves []*Move

	// The colour that made the first move in Moves.
	FirstMover Colour

	// The fullmove number of the first move in Moves.
	FirstMoveNumber int
}

// NewGame creates a new empty game.
func NewGame() *Game {
	return &Game{
		Tags:            make(map[string]string),
		FirstMover:      White,
		FirstMoveNumber: 1,
	}
}

// GetTag returns a tag value, or empty string if not present.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *Game) SetTag(name, value string) {
	g.ensureTags()
	g.Tags[name] = value
}

// HasTag returns true if the tag is present.
func (g *Game) HasTag(name string) bool {
	_, ok := g.Tags[name]
	return ok
}

// ensureTags initializes the Tags map if it is nil.
func (g *Game) ensureTags() {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
}

// Result returns the game result.
func (g *Game) Result() string {
	return g.GetTag("Result")
}

// FEN returns the FEN string if present.
func (g *Game) FEN() string {
	return g.GetTag("FEN")
}

// PlyCount returns the number of half-moves in the game.
func (g *Game) PlyCount() int {
	return len(g.Moves)
}

// LastMove returns the last move in the game, or nil if no moves.
func (g *Game) LastMove() *Move {
	if len(g.Moves) == 0 {
		return nil
	}
	return g.Moves[len(g.Moves)-1]
}

// AppendMove adds a move to the end of the game.
func (g *Game) AppendMove(m *Move) {
	g.Moves = append(g.Moves, m)
}
