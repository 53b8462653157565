package pavalang

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindString:
		return "String"
	}
	return "invalid"
}

// Value is a tagged union. Operators construct new values, never mutate.
type Value struct {
	Kind Kind
	Int  int64
	Str  string
}

func IntValue(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NewIntValue parses a base-10 literal. Any non-digit character is a
// ValueError, stricter than strconv alone which would admit a sign.
func NewIntValue(lexeme string) (Value, error) {
	for _, r := range lexeme {
		if r < '0' || r > '9' {
			return Value{}, fmt.Errorf("%w: invalid integer literal %q", ErrValue, lexeme)
		}
	}
	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: invalid integer literal %q", ErrValue, lexeme)
	}
	return IntValue(i), nil
}

// NewStringValue strips exactly one matching pair of surrounding quotes,
// double or single.
func NewStringValue(lexeme string) (Value, error) {
	if len(lexeme) >= 2 {
		if strings.HasPrefix(lexeme, `"`) && strings.HasSuffix(lexeme, `"`) ||
			strings.HasPrefix(lexeme, `'`) && strings.HasSuffix(lexeme, `'`) {
			return StringValue(lexeme[1 : len(lexeme)-1]), nil
		}
	}
	return Value{}, fmt.Errorf("%w: invalid string literal %q", ErrValue, lexeme)
}

// Render is the text form used by print and the REPL: decimal digits for
// Int, the unquoted content for String.
func (v Value) Render() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindString:
		return v.Str
	}
	return ""
}
