package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/pava/cmds"
	"github.com/reusee/pava/configs"
	"github.com/reusee/pava/debugs"
	"github.com/reusee/pava/logs"
	"github.com/reusee/pava/pavalang"
	"golang.org/x/term"
)

var (
	evalCode = cmds.Var[string]("-e")
	inspect  = cmds.Switch("-inspect")
)

// splitArgs separates the script path from executor commands. Defined
// commands keep their argument slots, so a flag value is never mistaken for
// the script path.
func splitArgs(args []string) (scriptPath string, rest []string) {
	for len(args) > 0 {
		arg := args[0]
		args = args[1:]
		if n, ok := cmds.GlobalExecutor.Arity(arg); ok {
			rest = append(rest, arg)
			for ; n > 0 && len(args) > 0; n-- {
				rest = append(rest, args[0])
				args = args[1:]
			}
			continue
		}
		if scriptPath == "" && !strings.HasPrefix(arg, "-") {
			scriptPath = arg
			continue
		}
		// unknown command, let Execute report it
		rest = append(rest, arg)
	}
	return
}

func main() {

	scriptPath, rest := splitArgs(os.Args[1:])
	cmds.MustExecute(rest)

	ctx := context.Background()

	scope := dscope.New(
		new(Module),
	)

	scope.Call(func(
		logger logs.Logger,
		config configs.Config,
		newRun logs.NewRun,
		tap debugs.Tap,
		functions pavalang.Functions,
	) {

		if config.Trace {
			cmds.MustExecute([]string{"-log-debug"})
		}

		interp := pavalang.NewInterp(functions, logger)
		ctx, _ := newRun(ctx)

		var runErr error
		switch {

		case *evalCode != "":
			res, hasValue, err := interp.EvalString(ctx, "-e", *evalCode)
			if err == nil && hasValue {
				fmt.Println(res.Render())
			}
			runErr = err

		case scriptPath != "":
			if _, err := os.Stat(scriptPath); err != nil {
				fmt.Fprintf(os.Stderr, "Error: file '%s' does not exist.\n", scriptPath)
				os.Exit(1)
			}
			content, err := os.ReadFile(scriptPath)
			ce(err)
			runErr = interp.Run(ctx, pavalang.NewSource(scriptPath, string(content)))

		case !term.IsTerminal(int(os.Stdin.Fd())):
			content, err := io.ReadAll(os.Stdin)
			ce(err)
			runErr = interp.Run(ctx, pavalang.NewSource("stdin", string(content)))

		default:
			runREPL(ctx, interp, config)
		}

		if *inspect {
			tap(ctx, "environment", interp.Env())
		}

		if runErr != nil {
			runErr = logs.WrapRun(ctx, runErr)
			logger.ErrorContext(ctx, "run failed", "error", runErr)
			os.Stderr.WriteString(runErr.Error())
			os.Stderr.WriteString("\n")
			os.Exit(-1)
		}

	})

}
