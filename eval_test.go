package calculator

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "42", want: 42},
		{input: "-17", want: -17},
		{input: "add(1, 2)", want: 3},
		{input: "add(1, mult(2, 3))", want: 7},
		{input: "mult(add(2, 2), div(9, 3))", want: 12},
		{input: "sub(3, 10)", want: -7},
		{input: "div(7, -2)", want: -3},
		{input: "let(a, 5, add(a, a))", want: 10},
		{input: "let(a, 5, let(b, mult(a, 10), add(b, a)))", want: 55},
		{input: "let(a, let(b, 10, add(b, b)), let(b, 20, add(a, b)))", want: 40},
		{input: "let(a, 1, A)", want: 1},
		{input: "add(let(a, 2, mult(a, a)), a)", want: 6},
		{input: "add(1, let(a, 5, a))", want: 6},
		{input: "let(a, 1, let(a, add(a, 1), a))", want: 2},
		{input: "add(2147483646, 1)", want: 2147483647},
		{input: "sub(-2147483647, 1)", want: -2147483648},
	}
	for _, test := range tests {
		got, err := Eval(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("want %d for %q but got %d", test.want, test.input, got)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{input: "", want: ErrNoAnswer},
		{input: "()", want: ErrNoAnswer},
		{input: "add", want: ErrNoAnswer},
		{input: "1, 2", want: ErrNoAnswer},
		{input: "let(a, 5)", want: ErrNoAnswer},
		{input: "div(5, 0)", want: ErrDivisionByZero},
		{input: "div(5, sub(2, 2))", want: ErrDivisionByZero},
		{input: "add(x, 1)", want: ErrUnboundVariable},
		{input: "let(a, b, a)", want: ErrUnboundVariable},
		{input: "let(1, 2, 3)", want: ErrMalformedLet},
		{input: "let(add, 2, 3)", want: ErrMalformedLet},
		{input: "let", want: ErrNoAnswer},
		{input: "let(a)", want: ErrUnexpectedEndOfInput},
		{input: "add(1, let(a, 2))", want: ErrUnexpectedEndOfInput},
		{input: "add(1)", want: ErrMissingOperand},
		{input: "add(1)", want: ErrUnexpectedEndOfInput},
		{input: "mult(65536, 65536)", want: ErrOverflow},
		{input: "add(2147483647, 1)", want: ErrOverflow},
		{input: "sub(-2147483648, 1)", want: ErrOverflow},
		{input: "div(-2147483648, -1)", want: ErrOverflow},
	}
	for _, test := range tests {
		got, err := Eval(test.input)
		if err == nil {
			t.Errorf("%q: want %v but got %d", test.input, test.want, got)
			continue
		}
		if !errors.Is(err, test.want) {
			t.Errorf("%q: want %v but got %v", test.input, test.want, err)
		}
		if got != 0 {
			t.Errorf("%q: got partial result %d", test.input, got)
		}
	}
}

func TestEvalErrorDetail(t *testing.T) {
	_, err := Eval("add(q, 1)")
	var evalErr *EvalError
	if !errors.As(err, &evalErr) {
		t.Fatalf("want an EvalError but got %v", err)
	}
	if evalErr.Kind != KindUnboundVariable || evalErr.Token != "q" {
		t.Errorf("unexpected error %#v", evalErr)
	}
	if errors.Is(err, ErrDivisionByZero) {
		t.Error("kinds must not match each other")
	}
}

func TestFlatScope(t *testing.T) {
	seq, err := Build("add(let(a, 3, a), let(b, a, mult(a, b)))")
	if err != nil {
		t.Fatal(err)
	}
	env := NewEnv()
	got, err := NewEvaluator().EvaluateEnv(env, seq)
	if err != nil {
		t.Fatal(err)
	}
	if got != 12 {
		t.Errorf("want 12 but got %d", got)
	}
	if diff := cmp.Diff([]string{"a", "b"}, env.Names()); diff != "" {
		t.Error(diff)
	}
	if v, _ := env.Get("b"); v != 3 {
		t.Errorf("want b bound to 3 but got %d", v)
	}
}

func TestMaxDepth(t *testing.T) {
	expr := "add(1, add(2, add(3, 4)))"
	if _, err := Eval(expr, WithMaxDepth(3)); err != nil {
		t.Fatal(err)
	}
	_, err := Eval(expr, WithMaxDepth(2))
	if !errors.Is(err, ErrNestingTooDeep) {
		t.Errorf("want %v but got %v", ErrNestingTooDeep, err)
	}
}

func TestDeterministic(t *testing.T) {
	expr := "let(a, 5, let(b, mult(a, 10), add(b, a)))"
	first, err := Eval(expr)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		got, err := Eval(expr)
		if err != nil || got != first {
			t.Fatalf("run %d: got %d, %v", i, got, err)
		}
	}
}

func TestLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	got, err := Eval("let(a, 2, mult(a, 3))", WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	if got != 6 {
		t.Errorf("want 6 but got %d", got)
	}
	if len(hook.AllEntries()) == 0 {
		t.Fatal("want debug entries")
	}
	last := hook.LastEntry()
	if last.Data["answer"] != int64(6) {
		t.Errorf("unexpected last entry %v", last.Data)
	}

	plain, err := Eval("let(a, 2, mult(a, 3))")
	if err != nil || plain != got {
		t.Errorf("logging changed the result: %d, %v", plain, err)
	}
}
