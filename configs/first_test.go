package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, "test.cue", `str: "bar"`),
	}, testSchema)

	str := First[string](loader, "str")
	if str != "bar" {
		t.Fatalf("got %v", str)
	}

	// absent paths yield the zero value
	if missing := First[string](loader, "nope"); missing != "" {
		t.Fatalf("got %v", missing)
	}

}
