package pavalang

// Function is one entry of the externally supplied function table. Arguments
// arrive fully evaluated, in call order.
type Function interface {
	FunctionName() string
	Call(args []Value) error
}

type Functions map[string]Function

func NewFunctions(fns ...Function) Functions {
	functions := make(Functions, len(fns))
	for _, fn := range fns {
		functions[fn.FunctionName()] = fn
	}
	return functions
}
