package pavalang

import "fmt"

// eval walks an expression subtree to exactly one Value.
func (in *Interp) eval(node Node) (Value, error) {
	switch node := node.(type) {

	case *NumberNode:
		v, err := NewIntValue(node.Text)
		if err != nil {
			return Value{}, WithPos(err, node.Pos)
		}
		return v, nil

	case *StringNode:
		v, err := NewStringValue(node.Text)
		if err != nil {
			return Value{}, WithPos(err, node.Pos)
		}
		return v, nil

	case *IdentifierNode:
		v, ok := in.env.Get(node.Name)
		if !ok {
			return Value{}, WithPos(
				fmt.Errorf("%w: variable %q is not defined", ErrName, node.Name),
				node.Pos,
			)
		}
		return v, nil

	case *BinaryNode:
		// strict left-to-right, no short circuit
		left, err := in.eval(node.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := in.eval(node.Right)
		if err != nil {
			return Value{}, err
		}
		fn, ok := in.ops[opKey{Op: node.Op, Left: left.Kind, Right: right.Kind}]
		if !ok {
			return Value{}, WithPos(
				fmt.Errorf("%w: operator %q not defined for %v, %v",
					ErrType, node.Op, left.Kind, right.Kind),
				node.Pos,
			)
		}
		v, err := fn(left, right)
		if err != nil {
			return Value{}, WithPos(err, node.Pos)
		}
		return v, nil

	case *AssignNode:
		v, err := in.eval(node.Expr)
		if err != nil {
			return Value{}, err
		}
		in.env.Def(node.Name, v)
		return v, nil
	}

	return Value{}, WithPos(
		fmt.Errorf("%w: cannot evaluate %T", ErrSyntax, node),
		node.NodePos(),
	)
}

// evalStatement evaluates one parsed statement. A function call produces a
// side effect and no value; everything else produces a value.
func (in *Interp) evalStatement(node Node) (Value, bool, error) {
	switch node := node.(type) {

	case *CallNode:
		args := make([]Value, 0, len(node.Args))
		for _, argNode := range node.Args {
			arg, err := in.eval(argNode)
			if err != nil {
				return Value{}, false, err
			}
			args = append(args, arg)
		}
		fn, ok := in.functions[node.Name]
		if !ok {
			return Value{}, false, WithPos(
				fmt.Errorf("%w: unknown function %q", ErrName, node.Name),
				node.Pos,
			)
		}
		if err := fn.Call(args); err != nil {
			return Value{}, false, WithPos(err, node.Pos)
		}
		return Value{}, false, nil

	case *IdentifierNode:
		// Re-evaluating an existing binding commits back only when the
		// variant still matches; a mismatch is discarded without error.
		v, err := in.eval(node)
		if err != nil {
			return Value{}, false, err
		}
		in.commitReeval(node.Name, v)
		return v, true, nil
	}

	v, err := in.eval(node)
	if err != nil {
		return Value{}, false, err
	}
	return v, true, nil
}

// commitReeval stores a re-evaluated binding only when the variant matches
// the previous one. A mismatch is dropped, not an error.
func (in *Interp) commitReeval(name string, v Value) {
	if prev, ok := in.env.Get(name); ok && prev.Kind == v.Kind {
		in.env.Def(name, v)
	}
}
