package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/reusee/pava/configs"
	"github.com/reusee/pava/pavalang"
)

// runREPL evaluates one statement per submitted line against a persistent
// environment. Unlike a script run, an error does not end the session.
func runREPL(ctx context.Context, interp *pavalang.Interp, config configs.Config) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      config.Prompt,
		HistoryFile: config.HistoryFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		res, hasValue, err := interp.EvalString(ctx, "repl", line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		} else if hasValue {
			fmt.Println(res.Render())
		}
	}
}
