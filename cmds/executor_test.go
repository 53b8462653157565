package cmds

import (
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestArity(t *testing.T) {
	executor := NewExecutor()
	executor.Define("none", Func(func() {}))
	executor.Define("one", Func(func(string) {}))
	executor.Define("two", Func(func(int, *string) {}))

	if n, ok := executor.Arity("none"); !ok || n != 0 {
		t.Fatalf("got %d %v", n, ok)
	}
	if n, ok := executor.Arity("one"); !ok || n != 1 {
		t.Fatalf("got %d %v", n, ok)
	}
	if n, ok := executor.Arity("two"); !ok || n != 2 {
		t.Fatalf("got %d %v", n, ok)
	}
	if _, ok := executor.Arity("nope"); ok {
		t.Fatal("should not be defined")
	}
}

func TestAlias(t *testing.T) {
	executor := NewExecutor()
	var n int
	executor.Define("foo", Func(func() {
		n++
	}).Alias("bar", "baz"))

	if err := executor.Execute([]string{
		"foo", "bar", "baz",
	}); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatal()
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

}
