package output

import (
	"io"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/config"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (PGN, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *chess.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer cfg selects: JSON when
// cfg.Output.JSONFormat is set, PGN otherwise.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewPGNWriter(w, cfg)
}

// PGNWriter writes games in PGN format.
type PGNWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, cfg *config.Config) *PGNWriter {
	return &PGNWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(game *chess.Game) error {
	writePGN(pw.w, game, pw.cfg)
	return nil
}

// Flush is a no-op; PGN is written immediately.
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w     io.Writer
	cfg   *config.Config
	games []*chess.Game
}

// NewJSONWriter creates a JSON writer that batches games into one array.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame buffers a game for JSON output.
func (jw *JSONWriter) WriteGame(game *chess.Game) error {
	jw.games = append(jw.games, game)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}
	err := OutputGamesJSON(jw.games, jw.cfg, jw.w)
	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
