package grammar

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"
)

// Grammar construction errors.
var (
	ErrNotCNF          = errors.New("rule is not in Chomsky normal form")
	ErrUndefinedSymbol = errors.New("undefined symbol")
	ErrNoStartRule     = errors.New("start symbol has no rules")
)

// Rule is a production in Chomsky normal form: either LHS -> terminal or
// LHS -> Left Right.
type Rule struct {
	LHS         Symbol
	Term        *Matcher
	Left, Right Symbol
}

// Terminal returns the rule lhs -> pattern.
func Terminal(lhs Symbol, pattern string) Rule {
	m := NewMatcher(pattern)

	return Rule{LHS: lhs, Term: &m}
}

// Binary returns the rule lhs -> left right.
func Binary(lhs, left, right Symbol) Rule {
	return Rule{LHS: lhs, Left: left, Right: right}
}

// IsTerminal reports whether r produces a single token.
func (r Rule) IsTerminal() bool { return r.Term != nil }

func (r Rule) String() string {
	if r.IsTerminal() {
		return r.LHS.String() + " -> " + r.Term.String()
	}

	return r.LHS.String() + " -> " + r.Left.String() + " " + r.Right.String()
}

// Grammar is an immutable grammar in Chomsky normal form.
// It is safe for concurrent use.
type Grammar struct {
	rules    []Rule
	terminal []int
	binary   []int
	possible [symbolCount]Set
	start    Symbol
	scope    Symbol
}

// New validates rules and returns the grammar with the given start symbol.
// Nodes labeled scope introduce a bound-variable scope during analysis.
func New(start, scope Symbol, rules ...Rule) (*Grammar, error) {
	g := &Grammar{
		rules: slices.Clone(rules),
		start: start,
		scope: scope,
	}

	var defined Set

	for i, r := range g.rules {
		switch {
		case !r.LHS.Valid():
			return nil, fmt.Errorf("%w: rule %d lhs %d", ErrUndefinedSymbol, i, r.LHS)

		case r.IsTerminal():
			g.terminal = append(g.terminal, i)

		case !r.Left.Valid() || !r.Right.Valid():
			return nil, fmt.Errorf("%w: rule %d (%s)", ErrNotCNF, i, r)

		default:
			g.binary = append(g.binary, i)
			g.possible[r.LHS] = g.possible[r.LHS].Add(r.Left).Add(r.Right)
		}

		defined = defined.Add(r.LHS)
	}

	if !start.Valid() || !defined.Has(start) {
		return nil, fmt.Errorf("%w: %s", ErrNoStartRule, start)
	}

	for _, i := range g.binary {
		r := g.rules[i]
		for _, sym := range []Symbol{r.Left, r.Right} {
			if !defined.Has(sym) {
				return nil, fmt.Errorf("%w: %s in rule %q", ErrUndefinedSymbol, sym, r)
			}
		}
	}

	return g, nil
}

// Identifier is the terminal pattern for variable names.
const Identifier = `(?!lambda)[a-zA-Z]+(-[a-zA-Z]+)*`

// Lambda returns the grammar of parenthesized lambda expressions:
//
//	S -> A B | E F | identifier
//	A -> C S      B -> S D      C -> "("      D -> ")"
//	E -> C G      F -> H B      G -> "lambda" H -> A D
//
// F is the scope symbol: its left subtree (H) names the bound variable and
// its right subtree (B) is the body.
var Lambda = sync.OnceValue(func() *Grammar {
	g, err := New(S, F,
		Binary(S, A, B),
		Binary(S, E, F),
		Terminal(S, Identifier),
		Binary(A, C, S),
		Binary(B, S, D),
		Terminal(C, "("),
		Terminal(D, ")"),
		Binary(E, C, G),
		Binary(F, H, B),
		Terminal(G, "lambda"),
		Binary(H, A, D),
	)
	if err != nil {
		panic(err)
	}

	return g
})

// Start returns the start symbol.
func (g *Grammar) Start() Symbol { return g.start }

// Scope returns the symbol that introduces a bound-variable scope.
func (g *Grammar) Scope() Symbol { return g.scope }

// Len returns the number of rules.
func (g *Grammar) Len() int { return len(g.rules) }

// Rule returns the i'th rule.
func (g *Grammar) Rule(i int) Rule { return g.rules[i] }

// Rules returns all rules with their indices, in declaration order.
func (g *Grammar) Rules() iter.Seq2[int, Rule] {
	return g.seq(nil)
}

// BinaryRules returns the rules of the form LHS -> Left Right.
func (g *Grammar) BinaryRules() iter.Seq2[int, Rule] {
	return g.seq(g.binary)
}

// TerminalRules returns the rules of the form LHS -> terminal.
func (g *Grammar) TerminalRules() iter.Seq2[int, Rule] {
	return g.seq(g.terminal)
}

func (g *Grammar) seq(index []int) iter.Seq2[int, Rule] {
	return func(yield func(int, Rule) bool) {
		if index == nil {
			for i, r := range g.rules {
				if !yield(i, r) {
					return
				}
			}

			return
		}

		for _, i := range index {
			if !yield(i, g.rules[i]) {
				return
			}
		}
	}
}

// Terminals returns every symbol with a terminal rule matching token.
func (g *Grammar) Terminals(token string) Set {
	var s Set

	for _, r := range g.TerminalRules() {
		if r.Term.Match(token) {
			s = s.Add(r.LHS)
		}
	}

	return s
}

// MatchTerminal returns the index of the first terminal rule for lhs that
// matches token.
func (g *Grammar) MatchTerminal(lhs Symbol, token string) (int, bool) {
	for i, r := range g.TerminalRules() {
		if r.LHS == lhs && r.Term.Match(token) {
			return i, true
		}
	}

	return -1, false
}

// Produces returns the index of the rule lhs -> left right.
func (g *Grammar) Produces(lhs, left, right Symbol) (int, bool) {
	for i, r := range g.BinaryRules() {
		if r.LHS == lhs && r.Left == left && r.Right == right {
			return i, true
		}
	}

	return -1, false
}

// Possible returns every symbol appearing on the right-hand side of a binary
// rule for sym.
func (g *Grammar) Possible(sym Symbol) Set {
	if !sym.Valid() {
		return 0
	}

	return g.possible[sym]
}

func (g *Grammar) String() string {
	var sb strings.Builder

	for _, r := range g.Rules() {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
