package calculator

import (
	"strconv"

	"github.com/edwingeng/deque"
)

type TokenType int

const (
	TokenInt TokenType = iota
	TokenVar
	TokenOp
)

func (t TokenType) String() string {
	switch t {
	case TokenInt:
		return "int"
	case TokenVar:
		return "var"
	case TokenOp:
		return "op"
	}
	return "unknown"
}

type OpKind int

const (
	OpAdd OpKind = iota
	OpSub
	OpMult
	OpDiv
	OpLet
)

var opNames = map[OpKind]string{
	OpAdd:  "add",
	OpSub:  "sub",
	OpMult: "mult",
	OpDiv:  "div",
	OpLet:  "let",
}

var opKinds = map[string]OpKind{
	"add":  OpAdd,
	"sub":  OpSub,
	"mult": OpMult,
	"div":  OpDiv,
	"let":  OpLet,
}

func (k OpKind) String() string {
	if s, ok := opNames[k]; ok {
		return s
	}
	return "unknown"
}

// Token is an immutable lexeme: an integer literal, a single letter variable
// or an operator.
type Token struct {
	t  TokenType
	n  int64
	s  string
	op OpKind
}

func IntToken(n int64) Token {
	return Token{t: TokenInt, n: n}
}

func VarToken(name string) Token {
	return Token{t: TokenVar, s: name}
}

func OpToken(op OpKind) Token {
	return Token{t: TokenOp, op: op}
}

func (tok Token) Type() TokenType { return tok.t }

func (tok Token) Int() int64 { return tok.n }

func (tok Token) Name() string { return tok.s }

func (tok Token) Op() OpKind { return tok.op }

func (tok Token) String() string {
	switch tok.t {
	case TokenInt:
		return strconv.FormatInt(tok.n, 10)
	case TokenVar:
		return tok.s
	case TokenOp:
		return tok.op.String()
	}
	return "?"
}

// Sequence holds the tokens of one expression with the outermost operator at
// the front.
type Sequence struct {
	d deque.Deque
}

func NewSequence() *Sequence {
	return &Sequence{d: deque.NewDeque()}
}

func (s *Sequence) Len() int {
	return s.d.Len()
}

// Push puts tok on the front of the sequence, so it is the next one popped.
func (s *Sequence) Push(tok Token) {
	s.d.PushFront(tok)
}

// Pop removes the front token. ok is false if the sequence is empty.
func (s *Sequence) Pop() (tok Token, ok bool) {
	if s.d.Empty() {
		return Token{}, false
	}
	tok = s.d.Front().(Token)
	s.d.PopFront()
	return tok, true
}

// Tokens returns the tokens front to back without consuming them.
func (s *Sequence) Tokens() []Token {
	n := s.d.Len()
	toks := make([]Token, 0, n)
	for i := 0; i < n; i++ {
		tok := s.d.Front().(Token)
		s.d.PopFront()
		toks = append(toks, tok)
		s.d.PushBack(tok)
	}
	return toks
}

func (s *Sequence) String() string {
	var buf []byte
	for i, tok := range s.Tokens() {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, tok.String()...)
	}
	return string(buf)
}
