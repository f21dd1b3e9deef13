package calculator

import (
	"sort"
)

// Env maps variable names to their values for one evaluation. Bindings are
// flat: a name bound by let stays visible for the rest of the evaluation,
// including outside the let body.
type Env struct {
	vars map[string]int64
}

func NewEnv() *Env {
	return &Env{
		vars: make(map[string]int64),
	}
}

func (e *Env) Get(name string) (int64, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Env) Set(name string, v int64) {
	e.vars[name] = v
}

func (e *Env) Len() int {
	return len(e.vars)
}

// Names returns the bound names in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
