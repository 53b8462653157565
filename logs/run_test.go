package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewRun(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newRun NewRun,
		logger Logger,
	) {
		ctx := context.Background()

		ctx, run := newRun(ctx)
		if run == "" {
			t.Fatal("empty run id")
		}

		logger.InfoContext(ctx, "within run")

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "logs.run="+string(run)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.run="+string(run)) {
			t.Fatalf("got %v", lines[1])
		}

		// a second run gets a fresh id
		_, run2 := newRun(context.Background())
		if run2 == run {
			t.Fatal("run id reused")
		}

	})
}

func TestWrapRun(t *testing.T) {
	base := errors.New("boom")

	// without a run in the context the error passes through
	if err := WrapRun(context.Background(), base); err != base {
		t.Fatalf("got %v", err)
	}

	ctx := context.WithValue(context.Background(), RunKey, Run("abc"))
	err := WrapRun(ctx, base)
	if !errors.Is(err, base) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "run: abc") {
		t.Fatalf("got %v", err)
	}
}
