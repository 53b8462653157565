package pavalang

import (
	"fmt"
	"unicode"
)

// Tokenizer scans one source line. The cursor is an explicit rune index so
// the tokens-consumed-so-far state is visible to tests.
type Tokenizer struct {
	source *Source
	line   int // 1-based
	runes  []rune
	idx    int
}

func NewTokenizer(source *Source, line int) *Tokenizer {
	var text string
	if line >= 1 && line <= len(source.Lines) {
		text = source.Lines[line-1]
	}
	return &Tokenizer{
		source: source,
		line:   line,
		runes:  []rune(text),
	}
}

// Tokens scans the whole line. Patterns are tried at each cursor position in
// a fixed priority order: number, string, identifier, operator, parenthesis,
// whitespace, comment. First match wins, not longest match.
func (t *Tokenizer) Tokens() ([]*Token, error) {
	var tokens []*Token
	for t.idx < len(t.runes) {
		pos := t.pos()
		r := t.runes[t.idx]

		switch {
		case unicode.IsDigit(r):
			tokens = append(tokens, t.lexNumber(pos))

		case r == '"' || r == '\'':
			tok, ok := t.lexString(r, pos)
			if !ok {
				return nil, WithPos(fmt.Errorf("%w: unterminated string", ErrLex), pos)
			}
			tokens = append(tokens, tok)

		case r == '_' || unicode.IsLetter(r):
			tokens = append(tokens, t.lexIdentifier(pos))

		case isOperator(r):
			t.idx++
			tokens = append(tokens, &Token{Kind: TokenOperator, Text: string(r), Pos: pos})

		case r == '(' || r == ')':
			t.idx++
			tokens = append(tokens, &Token{Kind: TokenParen, Text: string(r), Pos: pos})

		case unicode.IsSpace(r):
			t.idx++

		case r == '#':
			// comment runs to end of line
			t.idx = len(t.runes)

		default:
			return nil, WithPos(fmt.Errorf("%w: unexpected character %q", ErrLex, r), pos)
		}
	}
	return tokens, nil
}

func (t *Tokenizer) pos() Pos {
	return Pos{
		Source: t.source,
		Line:   t.line,
		Column: t.idx + 1,
	}
}

func (t *Tokenizer) lexNumber(pos Pos) *Token {
	start := t.idx
	for t.idx < len(t.runes) && unicode.IsDigit(t.runes[t.idx]) {
		t.idx++
	}
	return &Token{
		Kind: TokenNumber,
		Text: string(t.runes[start:t.idx]),
		Pos:  pos,
	}
}

// lexString keeps the quote characters in the lexeme; the value constructor
// strips them. No escape sequences, no embedded quotes.
func (t *Tokenizer) lexString(quote rune, pos Pos) (*Token, bool) {
	start := t.idx
	t.idx++
	for t.idx < len(t.runes) {
		if t.runes[t.idx] == quote {
			t.idx++
			return &Token{
				Kind: TokenString,
				Text: string(t.runes[start:t.idx]),
				Pos:  pos,
			}, true
		}
		t.idx++
	}
	t.idx = start
	return nil, false
}

func (t *Tokenizer) lexIdentifier(pos Pos) *Token {
	start := t.idx
	for t.idx < len(t.runes) {
		r := t.runes[t.idx]
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		t.idx++
	}
	return &Token{
		Kind: TokenIdentifier,
		Text: string(t.runes[start:t.idx]),
		Pos:  pos,
	}
}

func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '=', ',':
		return true
	}
	return false
}
