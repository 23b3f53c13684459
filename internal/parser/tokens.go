// Package parser reads PGN text into games whose moves still carry only
// their SAN text. Variations, comments and NAGs are read and dropped.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	TagToken
	StringToken
	CommentToken
	NAGToken
	CheckSymbol
	MoveNumber
	RAVStart
	RAVEnd
	MoveToken
	TerminatingResult
	NoToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	TagToken:          "TAG",
	StringToken:       "STRING",
	CommentToken:      "COMMENT",
	NAGToken:          "NAG",
	CheckSymbol:       "CHECK_SYMBOL",
	MoveNumber:        "MOVE_NUMBER",
	RAVStart:          "RAV_START",
	RAVEnd:            "RAV_END",
	MoveToken:         "MOVE",
	TerminatingResult: "TERMINATING_RESULT",
	NoToken:           "NO_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text is the tag name, string, comment, NAG, move or result.
	Text string

	// MoveNum holds move numbers
	MoveNum int

	// Line is the input line the token ended on.
	Line int
}

// charClass classifies a single input byte for the lexer.
type charClass int

const (
	classError charClass = iota
	classWhitespace
	classTagStart
	classTagEnd
	classQuote
	classCommentStart
	classCommentEnd
	classLineComment
	classNAG
	classAnnotate
	classCheck
	classDot
	classRAVStart
	classRAVEnd
	classPercent
	classAlpha
	classDigit
	classStar
	classDash
)
