// Package tokenizer splits a JSONPath expression string into lexical tokens.
//
// The token stream is deliberately permissive: it only knows about token
// boundaries (punctuation, name runs, quoted strings, spaces). All structural
// validation, escape decoding and integer checking happen in the parser.
package tokenizer

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// TokenIterator uses the Go 1.23 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// Tokenizer scans a path expression and returns tokens via an iterator
type Tokenizer struct {
	input string
}

// New creates a Tokenizer for the given expression string
func New(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokens returns an iterator of tokens. The iterator ends after yielding
// either an EOF token or an error.
func (t *Tokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		s := &scanner{input: t.input, line: 1}
		s.readChar()

		for {
			token, err := s.nextToken()
			if err != nil {
				yield(Token{}, err)
				return
			}

			if !yield(token, nil) {
				return
			}

			if token.Type == EOF {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice, including the trailing EOF token.
// Scanning stops at the first error.
func (t *Tokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 16)

	for token, err := range t.Tokens() {
		if err != nil {
			return tokens, err
		}

		tokens = append(tokens, token)
	}

	return tokens, nil
}

// Internal scanner implementation
type scanner struct {
	input    string
	position int // byte position after current
	offset   int // byte offset of current
	line     int
	column   int // rune column of current, 1-based
	current  rune
}

func (s *scanner) nextToken() (Token, error) {
	switch s.current {
	case 0:
		if s.offset < len(s.input) {
			// a literal NUL byte, not end of input
			return Token{}, &ScanError{Err: ErrUnexpectedCharacter, Position: s.pos()}
		}

		return s.newToken(EOF, ""), nil
	case ' ':
		return s.readSpaces(), nil
	case '$':
		return s.single(ROOT), nil
	case '.':
		if s.peekChar() == '.' {
			token := s.newToken(DOT_DOT, "..")
			s.readChar()
			s.readChar()
			return token, nil
		}
		return s.single(DOT), nil
	case '*':
		return s.single(STAR), nil
	case '[':
		return s.single(BRACKET_OPEN), nil
	case ']':
		return s.single(BRACKET_CLOSE), nil
	case ',':
		return s.single(COMMA), nil
	case ':':
		return s.single(COLON), nil
	case '\'', '"':
		return s.readString(s.current)
	default:
		if isNameChar(s.current) {
			return s.readName(), nil
		}

		return Token{}, &ScanError{Err: ErrUnexpectedCharacter, Position: s.pos()}
	}
}

// isNameChar reports whether r may appear in an unquoted child name:
// '-', ASCII digit, ASCII letter, '_' or any code point at or above U+0080.
func isNameChar(r rune) bool {
	switch {
	case r == '-' || r == '_':
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r >= 0x80:
		return true
	}

	return false
}

func (s *scanner) pos() Position {
	return Position{Line: s.line, Column: s.column, Offset: s.offset}
}

func (s *scanner) newToken(tokenType TokenType, value string) Token {
	return Token{Type: tokenType, Value: value, Position: s.pos()}
}

func (s *scanner) single(tokenType TokenType) Token {
	token := s.newToken(tokenType, string(s.current))
	s.readChar()

	return token
}

// readChar advances to the next rune
func (s *scanner) readChar() {
	if s.position >= len(s.input) {
		s.current = 0
		s.offset = len(s.input)
		s.column++
		return
	}

	r, w := utf8.DecodeRuneInString(s.input[s.position:])
	s.current = r
	s.offset = s.position
	s.position += w
	s.column++
}

// peekChar looks ahead at the next rune
func (s *scanner) peekChar() rune {
	if s.position >= len(s.input) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(s.input[s.position:])

	return r
}

// readSpaces reads a run of ASCII spaces. Only ' ' is whitespace here; any
// other blank character is an unexpected character.
func (s *scanner) readSpaces() Token {
	var builder strings.Builder

	start := s.pos()
	for s.current == ' ' {
		builder.WriteRune(s.current)
		s.readChar()
	}

	return Token{Type: WHITESPACE, Value: builder.String(), Position: start}
}

// readName reads a run of unquoted child-name characters
func (s *scanner) readName() Token {
	var builder strings.Builder

	start := s.pos()
	for isNameChar(s.current) {
		builder.WriteRune(s.current)
		s.readChar()
	}

	return Token{Type: NAME, Value: builder.String(), Position: start}
}

// readString reads a quoted string literal. The token value keeps the
// surrounding quotes and raw escape sequences; the parser decodes them.
func (s *scanner) readString(delimiter rune) (Token, error) {
	var builder strings.Builder

	start := s.pos()

	builder.WriteRune(delimiter)
	s.readChar()

	for s.current != delimiter {
		if s.current == 0 {
			return Token{}, &ScanError{Err: ErrUnterminatedString, Position: start}
		}

		if s.current == '\\' {
			builder.WriteRune(s.current)
			s.readChar()

			if s.current == 0 {
				return Token{}, &ScanError{Err: ErrUnterminatedString, Position: start}
			}
		}

		builder.WriteRune(s.current)
		s.readChar()
	}

	builder.WriteRune(delimiter)
	s.readChar()

	return Token{Type: STRING, Value: builder.String(), Position: start}, nil
}
