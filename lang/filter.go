package lang

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expr-lang predicate over a case.
//
// The predicate sees these variables:
//
//	case      int       case number, from 1
//	input     string    the raw expression
//	tokens    []string  its tokens
//	accepted  bool      whether the expression was accepted
//	free      []string  free variable occurrences (empty if rejected)
//
// For example: accepted && len(free) > 0 && "x" in free.
type Filter struct {
	source  string
	program *vm.Program
}

func filterEnv(k int, r *Result) map[string]any {
	env := map[string]any{
		"case":     k,
		"input":    "",
		"tokens":   []string{},
		"accepted": false,
		"free":     []string{},
	}

	if r != nil {
		env["input"] = r.Input
		env["tokens"] = r.Tokens
		env["accepted"] = r.Accepted

		if r.Free != nil {
			env["free"] = r.Free
		}
	}

	return env
}

// CompileFilter compiles source. An empty source yields a nil filter, which
// matches every case.
func CompileFilter(source string) (*Filter, error) {
	if source == "" {
		return nil, nil //nolint:nilnil
	}

	program, err := expr.Compile(source, expr.Env(filterEnv(0, nil)), expr.AsBool())
	if err != nil {
		return nil, ErrFilter.Wrap(err).With(slog.String("source", source))
	}

	return &Filter{source: source, program: program}, nil
}

// String returns the predicate source.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}

	return f.source
}

// Match evaluates the predicate for case k with result r.
func (f *Filter) Match(k int, r *Result) (bool, error) {
	if f == nil {
		return true, nil
	}

	out, err := expr.Run(f.program, filterEnv(k, r))
	if err != nil {
		return false, ErrFilter.Wrap(err).With(
			slog.String("source", f.source),
			slog.Int("case", k),
		)
	}

	ok, _ := out.(bool)

	return ok, nil
}
