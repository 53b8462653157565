package logs

import (
	"context"
	"crypto/rand"
)

// Run identifies one interpreter run in the logs.
type Run string

type runKeyType struct{}

var RunKey runKeyType

type NewRun func(ctx context.Context) (context.Context, Run)

func (Module) NewRun(
	logger Logger,
) NewRun {
	return func(ctx context.Context) (context.Context, Run) {
		run := Run(rand.Text())
		ctx = context.WithValue(ctx, RunKey, run)
		logger.InfoContext(ctx, "new run")
		return ctx, run
	}
}
