package calculator

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	// MinInt and MaxInt bound literals and every intermediate result.
	MinInt = math.MinInt32
	MaxInt = math.MaxInt32
)

var separators = regexp.MustCompile(`[,()]+`)

// Build splits expression into validated tokens and stacks them so that the
// first Pop yields the outermost operator or value.
func Build(expression string) (*Sequence, error) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expression)
	s = separators.ReplaceAllString(s, " ")

	var raw []string
	for _, elem := range strings.Split(s, " ") {
		if elem != "" {
			raw = append(raw, strings.ToLower(elem))
		}
	}

	toks := make([]Token, len(raw))
	for i, elem := range raw {
		tok, err := classify(elem)
		if err != nil {
			return nil, err
		}
		toks[i] = tok
	}

	seq := NewSequence()
	for i := len(toks) - 1; i >= 0; i-- {
		seq.Push(toks[i])
	}
	return seq, nil
}

func classify(elem string) (Token, error) {
	if op, ok := opKinds[elem]; ok {
		return OpToken(op), nil
	}
	if isVariable(elem) {
		return VarToken(elem), nil
	}
	if n, err := strconv.ParseInt(elem, 10, 32); err == nil {
		return IntToken(n), nil
	}
	return Token{}, &LexError{Element: elem}
}

func isVariable(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
