package pavalang

import (
	"fmt"
	"io"
)

// Print is the console output sink: arguments rendered variant-appropriately,
// separated by single spaces, terminated by a newline.
type Print struct {
	Output io.Writer
}

var _ Function = Print{}

func (p Print) FunctionName() string {
	return "print"
}

func (p Print) Call(args []Value) error {
	for i, arg := range args {
		if i > 0 {
			if _, err := io.WriteString(p.Output, " "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(p.Output, arg.Render()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.Output)
	return err
}
