package pavalang

import "fmt"

// Parser is a recursive-descent parser with precedence climbing: expression
// handles + and -, term handles * and /, factor handles operands. One token
// of lookahead beyond the current token is enough for every production.
type Parser struct {
	stream TokenStream
	curr   *Token
	next   *Token

	// type registry: identifiers recognized as TYPE_NAME inside factor
	types map[string]Kind
}

func NewParser(stream TokenStream, types map[string]Kind) *Parser {
	p := &Parser{
		stream: stream,
		types:  types,
	}
	p.next = stream.Current()
	stream.Consume()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.curr = p.next
	p.next = p.stream.Current()
	p.stream.Consume()
}

func (p *Parser) atEnd() bool {
	return p.curr.Kind == TokenEOF
}

func (p *Parser) is(kind TokenKind, text string) bool {
	return p.curr.Kind == kind && p.curr.Text == text
}

func (p *Parser) consume(kind TokenKind, text string) error {
	if p.is(kind, text) {
		p.advance()
		return nil
	}
	return WithPos(
		fmt.Errorf("%w: expected %q, got %q", ErrSyntax, text, p.curr.Text),
		p.curr.Pos,
	)
}

// ParseStatement parses exactly one statement and requires the stream to be
// exhausted afterwards; trailing tokens are a SyntaxError.
func (p *Parser) ParseStatement() (Node, error) {
	node, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, WithPos(
			fmt.Errorf("%w: unexpected trailing token %q", ErrSyntax, p.curr.Text),
			p.curr.Pos,
		)
	}
	return node, nil
}

func (p *Parser) parseStatement() (Node, error) {
	if p.curr.Kind == TokenIdentifier {
		if p.next.Kind == TokenParen && p.next.Text == "(" {
			return p.parseFunctionCall()
		}
		if p.next.Kind == TokenOperator && p.next.Text == "=" {
			return p.parseAssignment()
		}
	}
	return p.parseExpression()
}

func (p *Parser) parseFunctionCall() (Node, error) {
	call := &CallNode{
		Name: p.curr.Text,
		Pos:  p.curr.Pos,
	}
	p.advance() // name
	p.advance() // (

	if !p.is(TokenParen, ")") {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
			if !p.is(TokenOperator, ",") {
				break
			}
			p.advance()
		}
	}

	if err := p.consume(TokenParen, ")"); err != nil {
		return nil, err
	}
	return call, nil
}

func (p *Parser) parseAssignment() (Node, error) {
	assign := &AssignNode{
		Name: p.curr.Text,
		Pos:  p.curr.Pos,
	}
	p.advance() // name
	p.advance() // =

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	assign.Expr = expr
	return assign, nil
}

func (p *Parser) parseExpression() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.is(TokenOperator, "+") || p.is(TokenOperator, "-") {
		op := p.curr
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{
			Op:    op.Text,
			Left:  left,
			Right: right,
			Pos:   op.Pos,
		}
	}
	return left, nil
}

func (p *Parser) parseTerm() (Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.is(TokenOperator, "*") || p.is(TokenOperator, "/") {
		op := p.curr
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{
			Op:    op.Text,
			Left:  left,
			Right: right,
			Pos:   op.Pos,
		}
	}
	return left, nil
}

func (p *Parser) parseFactor() (Node, error) {
	switch p.curr.Kind {

	case TokenParen:
		if p.curr.Text == "(" {
			p.advance()
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.consume(TokenParen, ")"); err != nil {
				return nil, err
			}
			return expr, nil
		}

	case TokenNumber:
		node := &NumberNode{Text: p.curr.Text, Pos: p.curr.Pos}
		p.advance()
		return node, nil

	case TokenString:
		node := &StringNode{Text: p.curr.Text, Pos: p.curr.Pos}
		p.advance()
		return node, nil

	case TokenIdentifier:
		// A typed declaration is a legal operand, so "Int x = 1 + 2" and
		// nested forms like "print(Int x = 1)" both parse.
		if _, isType := p.types[p.curr.Text]; isType && p.next.Kind == TokenIdentifier {
			return p.parseDeclaration()
		}
		node := &IdentifierNode{Name: p.curr.Text, Pos: p.curr.Pos}
		p.advance()
		return node, nil
	}

	return nil, WithPos(
		fmt.Errorf("%w: unexpected token %q", ErrSyntax, p.curr.Text),
		p.curr.Pos,
	)
}

// parseDeclaration handles TYPE_NAME IDENTIFIER '=' expression. The declared
// type only drives recognition; the result is a plain assignment node.
func (p *Parser) parseDeclaration() (Node, error) {
	p.advance() // type name
	assign := &AssignNode{
		Name: p.curr.Text,
		Pos:  p.curr.Pos,
	}
	p.advance() // name
	if err := p.consume(TokenOperator, "="); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	assign.Expr = expr
	return assign, nil
}
