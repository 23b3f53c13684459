package parser

import (
	"io"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/config"
)

// Parser parses PGN input into Game structures. Each parsed move holds only
// its Text; the position details are filled in when the game is played.
type Parser struct {
	lexer        *Lexer
	currentToken Token
	started      bool
	cfg          *config.Config
}

// NewParser creates a new parser for the given reader.
// If cfg is nil, a default config is created.
func NewParser(r io.Reader, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Parser{
		lexer: NewLexer(r, cfg),
		cfg:   cfg,
	}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseGame parses a single game from the input.
// Returns nil if no more games are available.
func (p *Parser) ParseGame() (*chess.Game, error) {
	if !p.started {
		p.nextToken()
		p.started = true
	}

	p.skipToNextGame()
	if p.currentToken.Type == EOFToken {
		return nil, p.lexer.Err()
	}

	game := chess.NewGame()
	p.parseOptTagList(game)
	p.parseMoveList(game)

	if result := p.parseResult(); result != "" {
		if r := game.GetTag(chess.ResultTag); r == "" || r == "?" {
			game.SetTag(chess.ResultTag, result)
		}
	}
	game.StartFEN = game.FEN()

	if err := p.lexer.Err(); err != nil {
		return game, err
	}
	return game, nil
}

// skipToNextGame skips tokens until the start of a game is found.
func (p *Parser) skipToNextGame() {
	for {
		switch p.currentToken.Type {
		case EOFToken, TagToken, MoveToken, MoveNumber, TerminatingResult:
			return
		default:
			p.nextToken()
		}
	}
}

// parseOptTagList parses zero or more tags.
func (p *Parser) parseOptTagList(game *chess.Game) {
	for {
		switch p.currentToken.Type {
		case TagToken:
			name := p.currentToken.Text
			p.nextToken()
			if p.currentToken.Type != StringToken {
				p.cfg.Logf(1, "Missing tag string for %s on line %d.\n", name, p.currentToken.Line)
				continue
			}
			game.SetTag(name, p.currentToken.Text)
			p.nextToken()
		case StringToken:
			p.cfg.Logf(1, "Missing tag name for %s on line %d.\n", p.currentToken.Text, p.currentToken.Line)
			p.nextToken()
		case CommentToken:
			p.nextToken()
		default:
			return
		}
	}
}

// parseMoveList parses the main line. Variations are read and dropped.
func (p *Parser) parseMoveList(game *chess.Game) {
	for {
		switch p.currentToken.Type {
		case MoveToken:
			game.AppendMove(&chess.Move{Text: p.currentToken.Text})
			p.nextToken()
		case MoveNumber, CheckSymbol, NAGToken, CommentToken:
			p.nextToken()
		case RAVStart:
			p.skipVariation()
		case RAVEnd:
			p.nextToken()
		default:
			return
		}
	}
}

// skipVariation consumes a parenthesised variation and any nested inside it.
func (p *Parser) skipVariation() {
	depth := 0
	for {
		switch p.currentToken.Type {
		case RAVStart:
			depth++
		case RAVEnd:
			depth--
			if depth == 0 {
				p.nextToken()
				return
			}
		case EOFToken, TagToken:
			p.cfg.Logf(1, "Missing ')' to close variation on line %d.\n", p.currentToken.Line)
			return
		}
		p.nextToken()
	}
}

// parseResult parses a game result.
func (p *Parser) parseResult() string {
	if p.currentToken.Type != TerminatingResult {
		return ""
	}
	result := p.currentToken.Text
	p.nextToken()
	return result
}

// ParseAllGames parses all games from the input.
func (p *Parser) ParseAllGames() ([]*chess.Game, error) {
	var games []*chess.Game
	for {
		game, err := p.ParseGame()
		if game != nil {
			games = append(games, game)
		}
		if err != nil {
			return games, err
		}
		if game == nil {
			return games, nil
		}
	}
}
