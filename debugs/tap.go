package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/pava/logs"
	"github.com/reusee/pava/pavalang"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap drops into a starlark REPL over a snapshot of the interpreter
// environment, for post-run inspection.
type Tap func(ctx context.Context, what string, env *pavalang.Env)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, env *pavalang.Env) {
		snapshot := env.Snapshot()
		logger.InfoContext(ctx, "tap: "+what,
			"vars", slices.Sorted(maps.Keys(snapshot)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		mappings["env"] = toStarlarkValue(snapshot)
		mappings["kind"] = toStarlarkValue(func(name string) string {
			v, ok := env.Get(name)
			if !ok {
				return ""
			}
			return v.Kind.String()
		})
		mappings["render"] = toStarlarkValue(func(name string) string {
			v, _ := env.Get(name)
			return v.Render()
		})

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
