package debugs

import (
	"testing"

	"github.com/reusee/pava/pavalang"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool true", true, starlark.True},
		{"bool false", false, starlark.False},
		{"string", "hello", starlark.String("hello")},
		{"int", int(42), starlark.MakeInt(42)},
		{"int64", int64(42), starlark.MakeInt64(42)},
		{"float64", float64(3.14), starlark.Float(3.14)},
		{"int value", pavalang.IntValue(42), starlark.MakeInt64(42)},
		{"string value", pavalang.StringValue("hi"), starlark.String("hi")},
		{"zero value", pavalang.Value{}, starlark.None},
		{"[]any", []any{1, "a", true}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a"), starlark.True})},
		{"map[string]any", map[string]any{"a": 1, "b": "c"}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			d.SetKey(starlark.String("b"), starlark.String("c"))
			return d
		}()},
		{"env snapshot", map[string]pavalang.Value{
			"x": pavalang.IntValue(5),
			"s": pavalang.StringValue("abc"),
		}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("x"), starlark.MakeInt64(5))
			d.SetKey(starlark.String("s"), starlark.String("abc"))
			return d
		}()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		v := toStarlarkValue(func(name string) string { return name })
		if _, ok := v.(starlark.Callable); !ok {
			t.Fatalf("got %T", v)
		}
	})

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
