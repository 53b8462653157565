package logs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestToJournalKey(t *testing.T) {
	tests := map[string]string{
		"logs.run": "LOGS_RUN",
		"foo":      "FOO",
		"a-b c":    "A_B_C",
		"x1":       "X1",
	}
	for in, out := range tests {
		if got := toJournalKey(in); got != out {
			t.Fatalf("%q: got %q", in, got)
		}
	}
}
