package calculator

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Ft int

const (
	FtSpecial Ft = iota
	FtBuiltin
)

// Fn applies an arithmetic operator to two resolved operands.
type Fn func(x, y int64) (int64, error)

// specialFn drives the sequence itself and returns the value of the form.
type specialFn func(m *machine, op Token, depth int) (int64, error)

type FnInfo struct {
	ft      Ft
	fn      Fn
	special specialFn
}

var ops map[OpKind]FnInfo

func makeFn(fn Fn) FnInfo {
	return FnInfo{ft: FtBuiltin, fn: fn}
}

func makeSpecial(fn specialFn) FnInfo {
	return FnInfo{ft: FtSpecial, special: fn}
}

func init() {
	ops = make(map[OpKind]FnInfo)
	ops[OpAdd] = makeFn(doAdd)
	ops[OpSub] = makeFn(doSub)
	ops[OpMult] = makeFn(doMult)
	ops[OpDiv] = makeFn(doDiv)
	ops[OpLet] = makeSpecial(doLet)
}

const DefaultMaxDepth = 1000

type Evaluator struct {
	log      logrus.FieldLogger
	maxDepth int
}

type Option func(*Evaluator)

// WithLogger sets the sink for diagnostic entries. Logging never changes
// the result of an evaluation.
func WithLogger(log logrus.FieldLogger) Option {
	return func(ev *Evaluator) {
		if log != nil {
			ev.log = log
		}
	}
}

// WithMaxDepth limits how deeply operators may nest.
func WithMaxDepth(n int) Option {
	return func(ev *Evaluator) {
		if n > 0 {
			ev.maxDepth = n
		}
	}
}

func NewEvaluator(opts ...Option) *Evaluator {
	l := logrus.New()
	l.Out = io.Discard
	ev := &Evaluator{
		log:      l,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// Evaluate consumes seq and returns the value of the expression it holds.
func (ev *Evaluator) Evaluate(seq *Sequence) (int64, error) {
	return ev.EvaluateEnv(NewEnv(), seq)
}

// EvaluateEnv is like Evaluate but binds variables in env, which the caller
// may inspect afterwards.
func (ev *Evaluator) EvaluateEnv(env *Env, seq *Sequence) (int64, error) {
	m := &machine{
		ev:  ev,
		env: env,
		seq: seq,
	}
	ret, err := m.run()
	if err != nil {
		ev.log.WithError(err).Debug("evaluation failed")
		return 0, err
	}
	ev.log.WithField("answer", ret).Debug("evaluation finished")
	return ret, nil
}

// Eval builds and evaluates expression.
func Eval(expression string, opts ...Option) (int64, error) {
	seq, err := Build(expression)
	if err != nil {
		return 0, err
	}
	return NewEvaluator(opts...).Evaluate(seq)
}

type machine struct {
	ev  *Evaluator
	env *Env
	seq *Sequence
}

func (m *machine) run() (int64, error) {
	for m.seq.Len() > 1 {
		tok, _ := m.seq.Pop()
		if tok.Type() != TokenOp {
			// a value with more tokens behind it can never be reduced
			return 0, newError(KindNoAnswer, tok.String(), nil)
		}
		m.ev.log.WithField("op", tok.String()).Debug("dispatch")
		if tok.Op() == OpLet {
			if err := m.bind(1); err != nil {
				return 0, err
			}
			continue
		}
		v, err := m.call(tok, 1)
		if err != nil {
			return 0, err
		}
		m.seq.Push(IntToken(v))
	}

	tok, ok := m.seq.Pop()
	if !ok {
		return 0, newError(KindNoAnswer, "", nil)
	}
	switch tok.Type() {
	case TokenInt:
		return tok.Int(), nil
	case TokenVar:
		return m.lookup(tok)
	}
	return 0, newError(KindNoAnswer, tok.String(), nil)
}

func (m *machine) call(op Token, depth int) (int64, error) {
	if depth > m.ev.maxDepth {
		return 0, newError(KindNestingTooDeep, op.String(), nil)
	}
	info := ops[op.Op()]
	if info.ft == FtSpecial {
		return info.special(m, op, depth)
	}

	x, err := m.operand(op, depth)
	if err != nil {
		return 0, err
	}
	y, err := m.operand(op, depth)
	if err != nil {
		return 0, err
	}
	ret, err := info.fn(x, y)
	if err != nil {
		return 0, err
	}
	m.ev.log.WithFields(logrus.Fields{
		"op": op.String(),
		"x":  x,
		"y":  y,
	}).Debugf("result %d", ret)
	return ret, nil
}

func (m *machine) operand(op Token, depth int) (int64, error) {
	tok, ok := m.seq.Pop()
	if !ok {
		return 0, newError(KindMissingOperand, op.String(), ErrUnexpectedEndOfInput)
	}
	return m.resolve(tok, depth)
}

func (m *machine) resolve(tok Token, depth int) (int64, error) {
	switch tok.Type() {
	case TokenInt:
		return tok.Int(), nil
	case TokenVar:
		return m.lookup(tok)
	}
	return m.call(tok, depth+1)
}

func (m *machine) lookup(tok Token) (int64, error) {
	v, ok := m.env.Get(tok.Name())
	if !ok {
		return 0, newError(KindUnboundVariable, tok.Name(), nil)
	}
	return v, nil
}

// bind consumes the variable and value expression following a let.
func (m *machine) bind(depth int) error {
	name, ok := m.seq.Pop()
	if !ok {
		return newError(KindUnexpectedEndOfInput, "let", nil)
	}
	if name.Type() != TokenVar {
		return newError(KindMalformedLet, name.String(), nil)
	}
	tok, ok := m.seq.Pop()
	if !ok {
		return newError(KindUnexpectedEndOfInput, "let", nil)
	}
	v, err := m.resolve(tok, depth)
	if err != nil {
		return err
	}
	m.env.Set(name.Name(), v)
	m.ev.log.WithField("var", name.Name()).Debugf("bound to %d", v)
	return nil
}

func doLet(m *machine, op Token, depth int) (int64, error) {
	if err := m.bind(depth); err != nil {
		return 0, err
	}
	body, ok := m.seq.Pop()
	if !ok {
		return 0, newError(KindUnexpectedEndOfInput, op.String(), nil)
	}
	return m.resolve(body, depth)
}

func checked(op string, v int64) (int64, error) {
	if v < MinInt || v > MaxInt {
		return 0, newError(KindOverflow, op, nil)
	}
	return v, nil
}

func doAdd(x, y int64) (int64, error) {
	return checked("add", x+y)
}

func doSub(x, y int64) (int64, error) {
	return checked("sub", x-y)
}

func doMult(x, y int64) (int64, error) {
	return checked("mult", x*y)
}

func doDiv(x, y int64) (int64, error) {
	if y == 0 {
		return 0, newError(KindDivisionByZero, "div", nil)
	}
	return checked("div", x/y)
}
