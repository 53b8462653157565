package pavalang

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenNumber
	TokenString
	TokenIdentifier
	TokenOperator
	TokenParen
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenIdentifier:
		return "identifier"
	case TokenOperator:
		return "operator"
	case TokenParen:
		return "parenthesis"
	case TokenEOF:
		return "end of line"
	}
	return "invalid"
}

type Pos struct {
	Source *Source
	Line   int
	Column int
}
