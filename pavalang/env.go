package pavalang

import "maps"

// Env is the run-scoped variable binding table. The language has no lexical
// scoping, so there is no parent chain: one flat map per run.
type Env struct {
	vars map[string]Value
}

func NewEnv() *Env {
	return &Env{
		vars: make(map[string]Value),
	}
}

func (e *Env) Get(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Env) Def(name string, v Value) {
	e.vars[name] = v
}

// Snapshot copies the current bindings, for the inspection tap.
func (e *Env) Snapshot() map[string]Value {
	return maps.Clone(e.vars)
}
