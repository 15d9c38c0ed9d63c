// Package scanner converts raw source text into an ordered token sequence
// in a single left-to-right pass. Lexical errors are recoverable: they are
// recorded on the scan's Result and never stop the scan.
package scanner

import (
	"fmt"
	"os"
	"strconv"

	"github.com/k0kubun/pp"
	"github.com/karupanerura/golox/internal/token"
)

var scannerDebugLog = false

func init() {
	if v, err := strconv.ParseBool(os.Getenv("GOLOX_SCANNER_DEBUG")); v && err == nil {
		scannerDebugLog = true
	}
}

// Result is everything one scan produced: the ordered token sequence,
// terminated by exactly one EOF token, and the lexical errors encountered
// along the way.
type Result struct {
	Tokens      []token.Token `json:"tokens" yaml:"tokens"`
	Diagnostics []Diagnostic  `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

func (r Result) HadError() bool {
	return len(r.Diagnostics) != 0
}

// scanner state is owned by a single Scan call, so concurrent scans of
// independent sources never share anything.
type scanner struct {
	source    string
	tokens    []token.Token
	diags     []Diagnostic
	start     int
	current   int
	line      int
	startLine int
}

// Scan walks source once, left to right, and returns every token it could
// recognize. O(n) in the source length, at most one character of lookahead
// beyond the cursor plus one more inside the number sub-scan.
func Scan(source string) Result {
	s := &scanner{source: source, line: 1}
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.Token{Kind: token.EOF, Line: s.line})

	res := Result{Tokens: s.tokens, Diagnostics: s.diags}
	if scannerDebugLog {
		pp.Println(res)
	}
	return res
}

// action is the closed set of lexical actions one consumed character can
// trigger. classify is total over bytes, so scanToken's dispatch covers
// every input.
type action int

const (
	actionSkip action = iota
	actionNewline
	actionSingle
	actionCompare
	actionSlash
	actionString
	actionNumber
	actionIdentifier
	actionUnexpected
)

// classify maps the consumed character to its lexical action. Any further
// lookahead is taken by the action itself, never here.
func classify(c byte) action {
	switch c {
	case ' ', '\r', '\t':
		return actionSkip
	case '\n':
		return actionNewline
	case '(', ')', '{', '}', ',', '.', '-', '+', ';', '*':
		return actionSingle
	case '!', '=', '<', '>':
		return actionCompare
	case '/':
		return actionSlash
	case '"':
		return actionString
	default:
		switch {
		case isDigit(c):
			return actionNumber
		case isAlpha(c):
			return actionIdentifier
		}
		return actionUnexpected
	}
}

var singleKinds = map[byte]token.Kind{
	'(': token.LeftParen,
	')': token.RightParen,
	'{': token.LeftBrace,
	'}': token.RightBrace,
	',': token.Comma,
	'.': token.Dot,
	'-': token.Minus,
	'+': token.Plus,
	';': token.Semicolon,
	'*': token.Star,
}

var compareKinds = map[byte]struct{ bare, withEqual token.Kind }{
	'!': {token.Bang, token.BangEqual},
	'=': {token.Equal, token.EqualEqual},
	'<': {token.Less, token.LessEqual},
	'>': {token.Greater, token.GreaterEqual},
}

func (s *scanner) scanToken() {
	c := s.advance()
	switch classify(c) {
	case actionSkip:
		// whitespace produces nothing
	case actionNewline:
		s.line++
	case actionSingle:
		s.addToken(singleKinds[c], nil)
	case actionCompare:
		kinds := compareKinds[c]
		if s.match('=') {
			s.addToken(kinds.withEqual, nil)
		} else {
			s.addToken(kinds.bare, nil)
		}
	case actionSlash:
		if s.match('/') {
			// line comment: consume up to, not including, the newline
			for s.peek() != '\n' && !s.isAtEnd() {
				s.current++
			}
		} else {
			s.addToken(token.Slash, nil)
		}
	case actionString:
		s.scanString()
	case actionNumber:
		s.scanNumber()
	case actionIdentifier:
		s.scanIdentifier()
	case actionUnexpected:
		s.diag("Unexpected character %q.", c)
	}
}

// scanString runs from just after the opening quote to just after the
// closing one. The literal is exactly the text between the quotes; there
// is no escape processing.
func (s *scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.current++
	}
	if s.isAtEnd() {
		s.diag("Unterminated string.")
		return
	}

	s.current++ // closing quote
	s.addToken(token.String, s.source[s.start+1:s.current-1])
}

// scanNumber consumes a maximal digit run with one optional fractional
// part. No exponent, no leading sign: a leading '-' was already emitted as
// the minus operator.
func (s *scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.current++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.current++
		for isDigit(s.peek()) {
			s.current++
		}
	}

	lexeme := s.source[s.start:s.current]
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		panic(fmt.Sprintf("should not reach here: lexeme=%q: %v", lexeme, err))
	}
	s.addToken(token.Number, value)
}

// scanIdentifier consumes a maximal alphanumeric run, then decides between
// a reserved word and an ordinary identifier.
func (s *scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.current++
	}
	if kind, ok := token.LookupKeyword(s.source[s.start:s.current]); ok {
		s.addToken(kind, nil)
		return
	}
	s.addToken(token.Identifier, nil)
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

// match consumes the next character only when it equals expected.
func (s *scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

// peek returns the next unread character without consuming it, NUL at end
// of input.
func (s *scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

// peekNext returns the character after the next unread one, NUL when it
// does not exist.
func (s *scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *scanner) addToken(kind token.Kind, literal any) {
	s.tokens = append(s.tokens, token.Token{
		Kind:    kind,
		Lexeme:  s.source[s.start:s.current],
		Literal: literal,
		Line:    s.startLine,
	})
}

func (s *scanner) diag(format string, args ...any) {
	s.diags = append(s.diags, Diagnostic{Line: s.line, Message: fmt.Sprintf(format, args...)})
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
