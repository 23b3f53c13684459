package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/config"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/notation"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/parser"
)

// Stats counts what a run converted.
type Stats struct {
	Games     int
	Positions int
	Failed    int
}

// Converter plays PGN games and writes each one's FEN log.
type Converter struct {
	cfg   *config.Config
	dir   string
	stats Stats
}

// NewConverter creates a converter writing to cfg.OutputFile, or to one
// file per game under dir when dir is not empty.
func NewConverter(cfg *config.Config, dir string) *Converter {
	return &Converter{cfg: cfg, dir: dir}
}

// Stats returns the counts so far.
func (c *Converter) Stats() Stats {
	return c.stats
}

// Convert reads every game in r. A game that stops at an unplayable move
// still has the positions before that move written; it is counted as failed.
func (c *Converter) Convert(r io.Reader, source string) error {
	p := parser.NewParser(r, c.cfg)
	for {
		game, err := p.ParseGame()
		if err != nil {
			return errors.Wrapf(err, "reading %s", source)
		}
		if game == nil {
			return nil
		}
		c.stats.Games++

		fens, err := notation.PlaySAN(game)
		if err != nil {
			c.stats.Failed++
			c.cfg.Logf(1, "%s game %d: %v\n", source, c.stats.Games, err)
		} else {
			c.cfg.Logf(2, "%s game %d: %d plies\n", source, c.stats.Games, game.PlyCount())
		}

		if err := c.write(fens); err != nil {
			return err
		}
	}
}

// write emits one log. Logs sharing the output stream are separated by a
// blank line.
func (c *Converter) write(fens []string) error {
	if len(fens) == 0 {
		return nil
	}
	text := strings.Join(fens, "\n") + "\n"

	if c.dir != "" {
		name := filepath.Join(c.dir, fmt.Sprintf("game%03d.fen", c.stats.Games))
		if err := os.WriteFile(name, []byte(text), 0644); err != nil { //nolint:gosec // G306: logs are meant to be shared
			return err
		}
		c.stats.Positions += len(fens)
		return nil
	}

	if c.stats.Positions > 0 {
		text = "\n" + text
	}
	if _, err := io.WriteString(c.cfg.OutputFile, text); err != nil {
		return err
	}
	c.stats.Positions += len(fens)
	return nil
}
