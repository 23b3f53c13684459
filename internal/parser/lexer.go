package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/config"
)

// Lexer tokenizes PGN input.
type Lexer struct {
	reader   *bufio.Reader
	line     string
	pos      int
	lineNum  int
	ravLevel int
	err      error
	cfg      *config.Config
}

// Character classification table
var chTab [256]charClass

// Move character classification table
var moveChars [256]bool

func init() {
	initLexTables()
}

// initLexTables initializes the character classification tables.
func initLexTables() {
	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = classWhitespace
	}

	chTab['['] = classTagStart
	chTab[']'] = classTagEnd
	chTab['"'] = classQuote
	chTab['{'] = classCommentStart
	chTab['}'] = classCommentEnd
	chTab[';'] = classLineComment

	chTab['$'] = classNAG
	chTab['!'] = classAnnotate
	chTab['?'] = classAnnotate
	chTab['+'] = classCheck
	chTab['#'] = classCheck
	chTab['.'] = classDot
	chTab['('] = classRAVStart
	chTab[')'] = classRAVEnd
	chTab['%'] = classPercent
	chTab['*'] = classStar
	chTab['-'] = classDash

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = classDigit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = classAlpha
		chTab[c+32] = classAlpha
	}

	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}
	for _, c := range []byte("KQRNBqrnxX:-=Oo") {
		moveChars[c] = true
	}
}

// NewLexer creates a new lexer for the given reader.
// If cfg is nil, a default config is created.
func NewLexer(r io.Reader, cfg *config.Config) *Lexer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		cfg:    cfg,
	}
}

// Err returns the first read error other than io.EOF.
func (l *Lexer) Err() error {
	return l.err
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			l.err = err
			return false
		}
		if line == "" {
			return false
		}
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// skipClass advances past a run of characters of the given class.
func (l *Lexer) skipClass(class charClass) {
	for l.pos < len(l.line) && chTab[l.currentChar()] == class {
		l.pos++
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			token.Line = l.lineNum
			return token
		}
	}
}

// getNextSymbol identifies the next symbol. It returns a NoToken when the
// input it consumed produces nothing for the parser.
func (l *Lexer) getNextSymbol() Token {
	if l.pos >= len(l.line) {
		if !l.readLine() {
			return Token{Type: EOFToken}
		}
		return Token{Type: NoToken}
	}

	ch := l.currentChar()
	start := l.pos
	l.pos++

	switch chTab[ch] {
	case classWhitespace:
		l.skipClass(classWhitespace)
	case classTagStart:
		return l.gatherTag()
	case classTagEnd:
	case classQuote:
		return l.gatherString()
	case classCommentStart:
		return l.gatherComment()
	case classCommentEnd:
		l.cfg.Logf(1, "Unmatched comment end on line %d.\n", l.lineNum)
	case classLineComment:
		text := strings.TrimSpace(l.line[l.pos:])
		l.pos = len(l.line)
		return Token{Type: CommentToken, Text: text}
	case classNAG:
		digits := l.pos
		for l.pos < len(l.line) && chTab[l.currentChar()] == classDigit {
			l.pos++
		}
		return Token{Type: NAGToken, Text: "$" + l.line[digits:l.pos]}
	case classAnnotate:
		l.skipClass(classAnnotate)
		return Token{Type: NAGToken, Text: annotationToNAG(l.line[start:l.pos])}
	case classCheck:
		l.skipClass(classCheck)
		return Token{Type: CheckSymbol, Text: l.line[start:l.pos]}
	case classDot:
		l.skipClass(classDot)
	case classRAVStart:
		l.ravLevel++
		return Token{Type: RAVStart}
	case classRAVEnd:
		if l.ravLevel > 0 {
			l.ravLevel--
			return Token{Type: RAVEnd}
		}
		l.cfg.Logf(1, "Too many ')' found on line %d.\n", l.lineNum)
	case classPercent:
		l.pos = len(l.line)
	case classAlpha:
		return l.gatherMove(start)
	case classDigit:
		return l.gatherNumeric(ch)
	case classStar:
		return Token{Type: TerminatingResult, Text: "*"}
	case classDash:
		if chTab[l.currentChar()] == classDash {
			l.pos++
			return Token{Type: MoveToken, Text: "--"}
		}
		l.cfg.Logf(1, "Single '-' not allowed on line %d.\n", l.lineNum)
	default:
		l.cfg.Logf(1, "Unknown character %c (0x%x) on line %d.\n", ch, ch, l.lineNum)
		l.skipClass(classError)
	}
	return Token{Type: NoToken}
}

// gatherTag gathers a tag name after '['.
func (l *Lexer) gatherTag() Token {
	l.skipClass(classWhitespace)

	start := l.pos
	for l.pos < len(l.line) && isTagChar(l.currentChar()) {
		l.pos++
	}

	if l.pos > start {
		return Token{Type: TagToken, Text: l.line[start:l.pos]}
	}
	return Token{Type: NoToken}
}

func isTagChar(c byte) bool {
	return chTab[c] == classAlpha || chTab[c] == classDigit || c == '_'
}

// gatherString gathers a quoted string.
func (l *Lexer) gatherString() Token {
	var sb strings.Builder
	escaped := false

	for l.pos < len(l.line) {
		ch := l.currentChar()
		l.pos++

		switch {
		case escaped:
			sb.WriteByte(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			return Token{Type: StringToken, Text: sb.String()}
		default:
			sb.WriteByte(ch)
		}
	}

	l.cfg.Logf(1, "Missing closing quote on line %d.\n", l.lineNum)
	return Token{Type: StringToken, Text: strings.TrimRight(sb.String(), "\r\n")}
}

// gatherComment gathers a brace comment, which may span lines.
func (l *Lexer) gatherComment() Token {
	var sb strings.Builder

	for {
		if end := strings.IndexByte(l.line[l.pos:], '}'); end >= 0 {
			sb.WriteString(l.line[l.pos : l.pos+end])
			l.pos += end + 1
			return Token{Type: CommentToken, Text: strings.TrimSpace(sb.String())}
		}
		sb.WriteString(l.line[l.pos:])
		l.pos = len(l.line)
		if !l.readLine() {
			break
		}
	}

	l.cfg.Logf(1, "Missing end of comment.\n")
	return Token{Type: CommentToken, Text: strings.TrimSpace(sb.String())}
}

// gatherMove gathers a run of move characters starting at start.
func (l *Lexer) gatherMove(start int) Token {
	if !moveChars[l.line[start]] {
		l.cfg.Logf(1, "Unknown character %c (0x%x) on line %d.\n", l.line[start], l.line[start], l.lineNum)
		return Token{Type: NoToken}
	}

	for l.pos < len(l.line) && moveChars[l.currentChar()] {
		l.pos++
	}

	text := l.line[start:l.pos]
	if _, err := DecodeMove(text); err != nil {
		l.cfg.Logf(1, "Unknown move text %s on line %d.\n", text, l.lineNum)
		return Token{Type: NoToken}
	}
	return Token{Type: MoveToken, Text: text}
}

// gatherNumeric handles numeric tokens (move numbers, results, castling).
func (l *Lexer) gatherNumeric(initialDigit byte) Token {
	remaining := l.line[l.pos:]

	switch initialDigit {
	case '0':
		switch {
		case strings.HasPrefix(remaining, "-1"):
			l.pos += 2
			return Token{Type: TerminatingResult, Text: "0-1"}
		case strings.HasPrefix(remaining, "-0-0"):
			l.pos += 4
			return Token{Type: MoveToken, Text: "O-O-O"}
		case strings.HasPrefix(remaining, "-0"):
			l.pos += 2
			return Token{Type: MoveToken, Text: "O-O"}
		}
	case '1':
		switch {
		case strings.HasPrefix(remaining, "-0"):
			l.pos += 2
			return Token{Type: TerminatingResult, Text: "1-0"}
		case strings.HasPrefix(remaining, "/2"):
			l.pos += 2
			if strings.HasPrefix(l.line[l.pos:], "-1/2") {
				l.pos += 4
			}
			return Token{Type: TerminatingResult, Text: "1/2-1/2"}
		}
	}

	return l.gatherMoveNumber()
}

// gatherMoveNumber parses a move number and the dots after it.
func (l *Lexer) gatherMoveNumber() Token {
	start := l.pos - 1
	for l.pos < len(l.line) && chTab[l.currentChar()] == classDigit {
		l.pos++
	}
	n, _ := strconv.Atoi(l.line[start:l.pos]) //nolint:errcheck // digits only
	l.skipClass(classDot)
	return Token{Type: MoveNumber, MoveNum: n}
}

// annotationToNAG converts annotation symbols to NAG strings.
func annotationToNAG(text string) string {
	switch text {
	case "!":
		return "$1"
	case "?":
		return "$2"
	case "!!":
		return "$3"
	case "??":
		return "$4"
	case "!?":
		return "$5"
	case "?!":
		return "$6"
	default:
		return "$0"
	}
}
