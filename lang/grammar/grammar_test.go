package grammar

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestMatcher_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		token   string
		want    bool
	}{
		{name: "literal paren", pattern: "(", token: "(", want: true},
		{name: "literal paren mismatch", pattern: "(", token: ")", want: false},
		{name: "close paren", pattern: ")", token: ")", want: true},
		{name: "keyword", pattern: "lambda", token: "lambda", want: true},
		{name: "keyword prefix", pattern: "lambda", token: "lambdas", want: false},
		{name: "identifier", pattern: Identifier, token: "x", want: true},
		{name: "hyphenated identifier", pattern: Identifier, token: "foo-bar", want: true},
		{name: "trailing hyphen", pattern: Identifier, token: "foo-", want: false},
		{name: "identifier excludes keyword", pattern: Identifier, token: "lambda", want: false},
		{name: "identifier with keyword prefix", pattern: Identifier, token: "lambdax", want: false},
		{name: "identifier partial match", pattern: Identifier, token: "x1", want: false},
		{name: "empty token", pattern: Identifier, token: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewMatcher(tt.pattern)
			if got := m.Match(tt.token); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMatcher_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		want    string
		regex   bool
	}{
		{pattern: "(", want: `"("`, regex: false},
		{pattern: "lambda", want: `"lambda"`, regex: true},
		{pattern: Identifier, want: "/" + Identifier + "/", regex: true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			t.Parallel()

			m := NewMatcher(tt.pattern)
			if got := m.String(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}

			if m.IsPattern() != tt.regex {
				t.Errorf("expected IsPattern %v, got %v", tt.regex, m.IsPattern())
			}
		})
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := NewSet(H, A, F, A)

	if s.Len() != 3 {
		t.Fatalf("expected 3 members, got %d", s.Len())
	}

	if got := s.String(); got != "{A F H}" {
		t.Errorf("expected {A F H}, got %s", got)
	}

	first, ok := s.First()
	if !ok || first != A {
		t.Errorf("expected first A, got %v (%v)", first, ok)
	}

	if s.Has(S) {
		t.Error("expected S absent")
	}

	if got := s.Intersect(NewSet(F, G)); got != NewSet(F) {
		t.Errorf("expected {F}, got %s", got)
	}

	if _, ok := Set(0).First(); ok {
		t.Error("expected empty set to have no first member")
	}
}

func TestParseSymbol(t *testing.T) {
	t.Parallel()

	var names strings.Builder
	for sym := range Symbols() {
		names.WriteString(sym.String())
	}

	if got := names.String(); got != "SABCDEFGH" {
		t.Errorf("expected %q, got %q", "SABCDEFGH", got)
	}

	if got := Symbol(symbolCount).String(); got != "Symbol(9)" {
		t.Errorf("expected %q, got %q", "Symbol(9)", got)
	}

	for sym := range Symbols() {
		got, ok := ParseSymbol(sym.String())
		if !ok || got != sym {
			t.Errorf("expected %s, got %s (%v)", sym, got, ok)
		}
	}

	for _, name := range []string{"", "I", "SA", "s"} {
		if _, ok := ParseSymbol(name); ok {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}

func TestLambda_Terminals(t *testing.T) {
	t.Parallel()

	g := Lambda()

	tests := []struct {
		token string
		want  Set
	}{
		{token: "(", want: NewSet(C)},
		{token: ")", want: NewSet(D)},
		{token: "lambda", want: NewSet(G)},
		{token: "x", want: NewSet(S)},
		{token: "marmota", want: NewSet(S)},
		{token: "1", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()

			if got := g.Terminals(tt.token); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestLambda_Possible(t *testing.T) {
	t.Parallel()

	g := Lambda()

	tests := []struct {
		sym  Symbol
		want Set
	}{
		{sym: S, want: NewSet(A, B, E, F)},
		{sym: A, want: NewSet(C, S)},
		{sym: B, want: NewSet(S, D)},
		{sym: E, want: NewSet(C, G)},
		{sym: F, want: NewSet(H, B)},
		{sym: H, want: NewSet(A, D)},
		{sym: C, want: 0},
		{sym: Symbol(symbolCount), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.sym.String(), func(t *testing.T) {
			t.Parallel()

			if got := g.Possible(tt.sym); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestLambda_Produces(t *testing.T) {
	t.Parallel()

	g := Lambda()

	i, ok := g.Produces(F, H, B)
	if !ok {
		t.Fatal("expected F -> H B")
	}

	if r := g.Rule(i); r.String() != "F -> H B" {
		t.Errorf("expected F -> H B, got %s", r)
	}

	if _, ok := g.Produces(S, B, A); ok {
		t.Error("expected S -> B A to be absent")
	}

	if g.Start() != S || g.Scope() != F {
		t.Errorf("expected start S scope F, got %s %s", g.Start(), g.Scope())
	}

	var binary []string
	for _, r := range g.BinaryRules() {
		binary = append(binary, r.String())
	}

	want := []string{
		"S -> A B", "S -> E F", "A -> C S", "B -> S D",
		"E -> C G", "F -> H B", "H -> A D",
	}
	if !slices.Equal(binary, want) {
		t.Errorf("expected %v, got %v", want, binary)
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start Symbol
		rules []Rule
		want  error
	}{
		{
			name:  "not cnf",
			start: S,
			rules: []Rule{Terminal(S, "x"), Binary(S, A, Symbol(symbolCount))},
			want:  ErrNotCNF,
		},
		{
			name:  "undefined rhs",
			start: S,
			rules: []Rule{Terminal(S, "x"), Binary(S, A, A)},
			want:  ErrUndefinedSymbol,
		},
		{
			name:  "undefined lhs",
			start: S,
			rules: []Rule{{LHS: Symbol(symbolCount) + 1, Left: S, Right: S}},
			want:  ErrUndefinedSymbol,
		},
		{
			name:  "no start rule",
			start: H,
			rules: []Rule{Terminal(S, "x")},
			want:  ErrNoStartRule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.start, F, tt.rules...)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
