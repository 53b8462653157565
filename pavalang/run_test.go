package pavalang

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRunScript(t *testing.T) {
	interp, buf := newTestInterp()
	ctx := context.Background()

	script := strings.Join([]string{
		"# a small program",
		"Int x = 2 + 3",
		"",
		"Int y = x * 4",
		`String greeting = "hi"`,
		"print(greeting, y)",
	}, "\n")

	if err := interp.Run(ctx, NewSource("script.pava", script)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hi 20\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestRunAbortsOnFirstError(t *testing.T) {
	interp, buf := newTestInterp()
	ctx := context.Background()

	script := strings.Join([]string{
		`print("before")`,
		"boom + 1",
		`print("after")`,
	}, "\n")

	err := interp.Run(ctx, NewSource("script.pava", script))
	if !errors.Is(err, ErrName) {
		t.Fatalf("expected name error, got %v", err)
	}
	// the failing line stops the run, later lines never execute
	if buf.String() != "before\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestRunKeepsEarlierBindings(t *testing.T) {
	interp, _ := newTestInterp()
	ctx := context.Background()

	script := strings.Join([]string{
		"Int x = 1",
		"Int y = x +",
	}, "\n")

	err := interp.Run(ctx, NewSource("script.pava", script))
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	// bindings committed before the error are not rolled back
	if v, ok := interp.Env().Get("x"); !ok || v != IntValue(1) {
		t.Fatalf("got %#v", v)
	}
	if _, ok := interp.Env().Get("y"); ok {
		t.Fatal("y should not be bound")
	}
}

func TestRunErrorPosition(t *testing.T) {
	interp, _ := newTestInterp()
	ctx := context.Background()

	script := strings.Join([]string{
		"Int x = 1",
		"Int y = 2",
		"x = @",
	}, "\n")

	err := interp.Run(ctx, NewSource("script.pava", script))
	var posErr PosError
	if !errors.As(err, &posErr) {
		t.Fatalf("expected position info, got %v", err)
	}
	if posErr.Pos.Line != 3 {
		t.Fatalf("expected line 3, got %d", posErr.Pos.Line)
	}
	if posErr.Pos.Column != 5 {
		t.Fatalf("expected column 5, got %d", posErr.Pos.Column)
	}
	if !strings.Contains(err.Error(), "script.pava") {
		t.Fatalf("error does not name the source: %v", err)
	}
}

func TestEnvFreshPerInterp(t *testing.T) {
	ctx := context.Background()

	first, _ := newTestInterp()
	if _, _, err := first.EvalString(ctx, "test", "Int x = 1"); err != nil {
		t.Fatal(err)
	}

	second, _ := newTestInterp()
	_, _, err := second.EvalString(ctx, "test", "x")
	if !errors.Is(err, ErrName) {
		t.Fatalf("expected name error, got %v", err)
	}
}

func TestEvalStringMultiLine(t *testing.T) {
	interp, buf := newTestInterp()
	ctx := context.Background()

	// every line runs, the last statement's value is reported
	code := strings.Join([]string{
		"Int x = 2",
		"print(x)",
		"x + 1",
	}, "\n")
	res, hasValue, err := interp.EvalString(ctx, "-e", code)
	if err != nil {
		t.Fatal(err)
	}
	if !hasValue || res != IntValue(3) {
		t.Fatalf("got %#v", res)
	}
	if buf.String() != "2\n" {
		t.Fatalf("got %q", buf.String())
	}

	// a trailing call yields no value
	_, hasValue, err = interp.EvalString(ctx, "-e", "Int y = 1\nprint(y)")
	if err != nil {
		t.Fatal(err)
	}
	if hasValue {
		t.Fatal("unexpected value")
	}

	// aborts on the first error, later lines never run
	_, _, err = interp.EvalString(ctx, "-e", "Int a = 1\nboom\nInt b = 2")
	if !errors.Is(err, ErrName) {
		t.Fatalf("expected name error, got %v", err)
	}
	if _, ok := interp.Env().Get("a"); !ok {
		t.Fatal("a should be bound")
	}
	if _, ok := interp.Env().Get("b"); ok {
		t.Fatal("b should not be bound")
	}
}

func TestErrorColumnNonASCII(t *testing.T) {
	interp, _ := newTestInterp()
	ctx := context.Background()

	// the dangling + fails at end of line; the column counts runes, not bytes
	_, _, err := interp.EvalString(ctx, "test", `x = "héllo" +`)
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	var posErr PosError
	if !errors.As(err, &posErr) {
		t.Fatalf("expected position info, got %v", err)
	}
	if posErr.Pos.Column != 14 {
		t.Fatalf("expected column 14, got %d", posErr.Pos.Column)
	}
}

func TestEvalStringBlank(t *testing.T) {
	interp, _ := newTestInterp()
	ctx := context.Background()

	for _, input := range []string{"", "   ", "# comment only"} {
		_, hasValue, err := interp.EvalString(ctx, "test", input)
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if hasValue {
			t.Fatalf("%q: unexpected value", input)
		}
	}
}
