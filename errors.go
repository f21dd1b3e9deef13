package calculator

import (
	"fmt"
)

// LexError reports a raw token that is neither an operator, a variable nor
// an integer literal.
type LexError struct {
	Element string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("element: %q is not a valid element type", e.Element)
}

type ErrorKind int

const (
	KindUnexpectedEndOfInput ErrorKind = iota
	KindMalformedLet
	KindUnboundVariable
	KindDivisionByZero
	KindMissingOperand
	KindOverflow
	KindNoAnswer
	KindNestingTooDeep
)

var kindMessages = map[ErrorKind]string{
	KindUnexpectedEndOfInput: "unexpected end of input",
	KindMalformedLet:         "malformed let",
	KindUnboundVariable:      "unbound variable",
	KindDivisionByZero:       "division by zero",
	KindMissingOperand:       "missing operand",
	KindOverflow:             "integer overflow",
	KindNoAnswer:             "no answer could be evaluated",
	KindNestingTooDeep:       "expression nested too deeply",
}

func (k ErrorKind) String() string {
	if s, ok := kindMessages[k]; ok {
		return s
	}
	return fmt.Sprintf("error kind %d", int(k))
}

// EvalError is returned for every failure after lexing. Two EvalErrors
// match under errors.Is when their kinds are equal.
type EvalError struct {
	Kind  ErrorKind
	Token string
	Err   error
}

var (
	ErrUnexpectedEndOfInput = &EvalError{Kind: KindUnexpectedEndOfInput}
	ErrMalformedLet         = &EvalError{Kind: KindMalformedLet}
	ErrUnboundVariable      = &EvalError{Kind: KindUnboundVariable}
	ErrDivisionByZero       = &EvalError{Kind: KindDivisionByZero}
	ErrMissingOperand       = &EvalError{Kind: KindMissingOperand}
	ErrOverflow             = &EvalError{Kind: KindOverflow}
	ErrNoAnswer             = &EvalError{Kind: KindNoAnswer}
	ErrNestingTooDeep       = &EvalError{Kind: KindNestingTooDeep}
)

func newError(kind ErrorKind, token string, cause error) *EvalError {
	return &EvalError{Kind: kind, Token: token, Err: cause}
}

func (e *EvalError) Error() string {
	msg := e.Kind.String()
	if e.Token != "" {
		msg += ": " + e.Token
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

func (e *EvalError) Is(target error) bool {
	t, ok := target.(*EvalError)
	return ok && t.Kind == e.Kind
}
