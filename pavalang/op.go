package pavalang

import (
	"fmt"
	"strings"
)

type opKey struct {
	Op    string
	Left  Kind
	Right Kind
}

type opFunc func(a, b Value) (Value, error)

// newOpTable builds the binary operator dispatch table, keyed by
// (operator, left variant, right variant). There is no implicit coercion:
// a missing entry means the pairing is a TypeError.
func newOpTable() map[opKey]opFunc {
	return map[opKey]opFunc{
		{"+", KindInt, KindInt}: func(a, b Value) (Value, error) {
			return IntValue(a.Int + b.Int), nil
		},
		{"-", KindInt, KindInt}: func(a, b Value) (Value, error) {
			return IntValue(a.Int - b.Int), nil
		},
		{"*", KindInt, KindInt}: func(a, b Value) (Value, error) {
			return IntValue(a.Int * b.Int), nil
		},
		{"/", KindInt, KindInt}: func(a, b Value) (Value, error) {
			if b.Int == 0 {
				return Value{}, fmt.Errorf("integer division by zero")
			}
			return IntValue(a.Int / b.Int), nil
		},
		{"+", KindString, KindString}: func(a, b Value) (Value, error) {
			return StringValue(a.Str + b.Str), nil
		},
		{"-", KindString, KindString}: stringMinus,
	}
}

// stringMinus removes characters as a multiset: for each character of the
// right operand in order, the first remaining occurrence in the left operand
// is dropped.
func stringMinus(a, b Value) (Value, error) {
	left := []rune(a.Str)
	for _, r := range b.Str {
		for i, l := range left {
			if l == r {
				left = append(left[:i], left[i+1:]...)
				break
			}
		}
	}
	var sb strings.Builder
	for _, r := range left {
		sb.WriteRune(r)
	}
	return StringValue(sb.String()), nil
}
