package pavalang

import (
	"context"
	"log/slog"
	"strings"
)

// Interp runs pava sources. The type, function, and operator registries are
// built once at construction and never mutated afterwards; the environment
// is fresh per Interp and mutated only by assignments.
type Interp struct {
	env       *Env
	types     map[string]Kind
	functions Functions
	ops       map[opKey]opFunc
	logger    *slog.Logger
}

func NewInterp(functions Functions, logger *slog.Logger) *Interp {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Interp{
		env: NewEnv(),
		types: map[string]Kind{
			"Int":    KindInt,
			"String": KindString,
		},
		functions: functions,
		ops:       newOpTable(),
		logger:    logger,
	}
}

func (in *Interp) Env() *Env {
	return in.env
}

// Run executes a source line by line, strictly in order. Lines that are
// blank or start with # are skipped without lexing. The first error aborts
// the run; bindings committed by earlier lines are not rolled back.
func (in *Interp) Run(ctx context.Context, src *Source) error {
	for i := range src.Lines {
		line := i + 1
		trimmed := strings.TrimSpace(src.Lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if _, _, err := in.evalLine(ctx, src, line); err != nil {
			return err
		}
	}
	return nil
}

// EvalString runs a code fragment against the persistent environment,
// reporting the last statement's value if it produced one. Used by the REPL
// and -e; multi-line fragments run like a script, aborting on first error.
func (in *Interp) EvalString(ctx context.Context, name string, code string) (Value, bool, error) {
	src := NewSource(name, code)
	var value Value
	var hasValue bool
	for i := range src.Lines {
		trimmed := strings.TrimSpace(src.Lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		v, ok, err := in.evalLine(ctx, src, i+1)
		if err != nil {
			return Value{}, false, err
		}
		value, hasValue = v, ok
	}
	return value, hasValue, nil
}

func (in *Interp) evalLine(ctx context.Context, src *Source, line int) (Value, bool, error) {
	tokens, err := NewTokenizer(src, line).Tokens()
	if err != nil {
		return Value{}, false, err
	}

	// columns are rune-indexed, matching the tokenizer
	eofPos := Pos{
		Source: src,
		Line:   line,
		Column: len([]rune(src.Lines[line-1])) + 1,
	}
	parser := NewParser(NewSliceTokenStream(tokens, eofPos), in.types)
	node, err := parser.ParseStatement()
	if err != nil {
		return Value{}, false, err
	}

	in.logger.DebugContext(ctx, "statement",
		"source", src.Name,
		"line", line,
	)

	return in.evalStatement(node)
}
