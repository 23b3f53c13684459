package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/config"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result,omitempty"`
	PlyCount   int               `json:"plyCount,omitempty"`
	FinalFEN   string            `json:"finalFEN,omitempty"`
	InitialFEN string            `json:"initialFEN,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci,omitempty"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Piece      string `json:"piece,omitempty"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Check      string `json:"check,omitempty"` // "check" or "checkmate"
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGamesJSON outputs multiple games as a JSON array.
func OutputGamesJSON(games []*chess.Game, cfg *config.Config, w io.Writer) error {
	jsonGames := make([]*JSONGame, len(games))
	for i, game := range games {
		jsonGames[i] = GameToJSON(game, cfg)
	}
	return encodeJSON(w, &JSONOutput{Games: jsonGames})
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// GameToJSON converts a game record to JSON format.
func GameToJSON(game *chess.Game, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		Tags:       copyTags(game.Tags),
		Result:     gameResult(game),
		PlyCount:   game.PlyCount(),
		InitialFEN: game.GetTag(chess.FENTag),
		Moves:      make([]JSONMove, 0, len(game.Moves)),
	}

	for _, move := range game.Moves {
		jm := convertMove(move, cfg.Output)
		if cfg.Annotation.AddFENComments {
			jm.FEN = move.FEN
		}
		jg.Moves = append(jg.Moves, jm)
	}

	if cfg.Annotation.OutputFEN {
		jg.FinalFEN = game.StartFEN
		if last := game.LastMove(); last != nil && last.FEN != "" {
			jg.FinalFEN = last.FEN
		}
	}

	return jg
}

// copyTags copies game tags and ensures the seven tag roster has values.
func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags)+len(chess.SevenTagRoster))
	for k, v := range tags {
		result[k] = v
	}
	for _, tag := range chess.SevenTagRoster {
		if _, ok := result[tag]; !ok {
			result[tag] = "?"
		}
	}
	return result
}

func convertMove(move *chess.Move, out *config.OutputConfig) JSONMove {
	jm := JSONMove{
		MoveNumber: move.Number,
		Color:      strings.ToLower(move.Piece.Colour.String()),
		SAN:        formatMove(move, out),
		UCI:        move.UCI(),
		From:       move.From.String(),
		To:         move.To.String(),
		Piece:      pieceTypeName(move.Piece.Type),
	}
	if move.IsCapture {
		jm.Captured = pieceTypeName(move.Captured.Type)
	}
	if move.IsPromotion {
		jm.Promotion = pieceTypeName(move.Promotion)
	}
	switch move.CheckStatus {
	case chess.Check:
		jm.Check = "check"
	case chess.Checkmate:
		jm.Check = "checkmate"
	}
	return jm
}

// pieceTypeName returns the piece type as a lowercase word.
func pieceTypeName(t chess.PieceType) string {
	if t == chess.NoPiece {
		return ""
	}
	return strings.ToLower(t.String())
}
