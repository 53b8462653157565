package pavalang

type TokenStream interface {
	Current() *Token
	Consume()
}

type SliceTokenStream struct {
	tokens []*Token
	idx    int
	eofPos Pos
}

func NewSliceTokenStream(tokens []*Token, eofPos Pos) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
		eofPos: eofPos,
	}
}

func (s *SliceTokenStream) Current() *Token {
	if s.idx >= len(s.tokens) {
		return &Token{Kind: TokenEOF, Pos: s.eofPos}
	}
	return s.tokens[s.idx]
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}
