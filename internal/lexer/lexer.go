// Package lexer splits calculator input lines into numbers, operator runs
// and unrecognised characters.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a Token.
type Kind int

const (
	Number    Kind = iota // -?[0-9]+
	Operators             // run of characters from "=^*/+-%d#r"
	Unknown               // any other single non-space rune
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Operators:
		return "Operators"
	case Unknown:
		return "Unknown"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexeme of a line: a number, a run of operator characters,
// or a single unrecognised rune.
type Token struct {
	Kind Kind
	Text string
}

func (t Token) String() string {
	return fmt.Sprintf("%v: %q", t.Kind, t.Text)
}

// IsCommentDelim reports whether t is a lone '#'.
func (t Token) IsCommentDelim() bool {
	return t.Kind == Operators && t.Text == string(CommentDelim)
}

// StripComments removes everything from the first '#' on line through the
// last one, delimiters included. A line with a single '#' is unchanged.
func StripComments(line string) string {
	i := strings.IndexByte(line, CommentDelim)
	j := strings.LastIndexByte(line, CommentDelim)
	if i < 0 || i == j {
		return line
	}
	return line[:i] + line[j+1:]
}

// Lexer yields the tokens of one line on demand.
type Lexer struct {
	input string
	pos   int
}

// New returns a Lexer positioned at the start of line.
func New(line string) *Lexer {
	return &Lexer{input: line}
}

// Next returns the next token, or false at the end of the line.
func (l *Lexer) Next() (Token, bool) {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return Token{}, false
	}
	start := l.pos
	ch := l.input[l.pos]
	switch {
	case isDigit(ch) || (ch == '-' && isDigit(l.peek())):
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
		return Token{Kind: Number, Text: l.input[start:l.pos]}, true
	case isOperatorChar(ch):
		for l.pos < len(l.input) && isOperatorChar(l.input[l.pos]) {
			l.pos++
		}
		return Token{Kind: Operators, Text: l.input[start:l.pos]}, true
	default:
		_, size := utf8.DecodeRuneInString(l.input[l.pos:])
		l.pos += size
		return Token{Kind: Unknown, Text: l.input[start:l.pos]}, true
	}
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

func (l *Lexer) peek() byte {
	if l.pos+1 < len(l.input) {
		return l.input[l.pos+1]
	}
	return ' '
}

// Tokens drains a Lexer over line.
func Tokens(line string) []Token {
	toks := make([]Token, 0, 8)
	lex := New(line)
	for tok, ok := lex.Next(); ok; tok, ok = lex.Next() {
		toks = append(toks, tok)
	}
	return toks
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isOperatorChar(b byte) bool {
	if b == CommentDelim {
		return true
	}
	_, ok := Lookup(b)
	return ok
}
