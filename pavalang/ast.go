package pavalang

// Node is one tagged case per syntactic form. Children are ordered
// left-to-right and exclusively owned by their parent.
type Node interface {
	NodePos() Pos
}

type NumberNode struct {
	Text string
	Pos  Pos
}

type StringNode struct {
	Text string // quotes still attached, stripped by the value constructor
	Pos  Pos
}

type IdentifierNode struct {
	Name string
	Pos  Pos
}

type BinaryNode struct {
	Op    string
	Left  Node
	Right Node
	Pos   Pos
}

type AssignNode struct {
	Name string
	Expr Node
	Pos  Pos
}

type CallNode struct {
	Name string
	Args []Node
	Pos  Pos
}

func (n *NumberNode) NodePos() Pos     { return n.Pos }
func (n *StringNode) NodePos() Pos     { return n.Pos }
func (n *IdentifierNode) NodePos() Pos { return n.Pos }
func (n *BinaryNode) NodePos() Pos     { return n.Pos }
func (n *AssignNode) NodePos() Pos     { return n.Pos }
func (n *CallNode) NodePos() Pos       { return n.Pos }
