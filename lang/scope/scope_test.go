package scope

import (
	"context"
	"slices"
	"testing"

	"github.com/ardnew/cykscope/lang/cyk"
	"github.com/ardnew/cykscope/lang/grammar"
	"github.com/ardnew/cykscope/lang/lexer"
	"github.com/ardnew/cykscope/lang/tree"
)

func parse(t *testing.T, input string) *tree.Node {
	t.Helper()

	g := grammar.Lambda()

	tbl, ok := cyk.Recognize(context.Background(), g, lexer.Tokenize(input))
	if !ok {
		t.Fatalf("expected %q to be accepted", input)
	}

	root, err := tree.Build(context.Background(), g, tbl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return root
}

func TestFree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{input: "x", want: []string{"x"}},
		{input: "marmota", want: []string{"marmota"}},
		{input: "(lambda (x) x)", want: []string{}},
		{input: "(lambda(x)x)", want: []string{}},
		{input: "(lambda (x) y)", want: []string{"y"}},
		{input: "(a b)", want: []string{"a", "b"}},
		{input: "(x x)", want: []string{"x", "x"}},
		{input: "((a b) c)", want: []string{"a", "b", "c"}},
		{input: "(a (b c))", want: []string{"a", "b", "c"}},
		{input: "(foo-bar baz)", want: []string{"foo-bar", "baz"}},
		{input: "(lambda (x) (lambda (y) x))", want: []string{}},
		{input: "(lambda (x) (lambda (x) x))", want: []string{}},
		{input: "(lambda (x) (x y))", want: []string{"y"}},
		{input: "(lambda (y) (x y))", want: []string{"x"}},
		{input: "(lambda (x) (x x))", want: []string{}},
		{input: "(lambda (y) (lambda (z) (x (y z))))", want: []string{"x"}},
		{input: "((lambda(x)x)(x y))", want: []string{"x", "y"}},
		{input: "(lambda (f) (f (lambda (x) (g x))))", want: []string{"g"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := Free(grammar.Lambda(), parse(t, tt.input))
			if got == nil {
				t.Fatal("expected non-nil result")
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCollect_Idempotent(t *testing.T) {
	t.Parallel()

	root := parse(t, "((lambda (x) (x y)) (lambda (y) (x (y z))))")

	first := Collect(root, grammar.F)
	for range 3 {
		if got := Collect(root, grammar.F); !slices.Equal(got, first) {
			t.Fatalf("expected %q, got %q", first, got)
		}
	}

	if want := []string{"y", "x", "z"}; !slices.Equal(first, want) {
		t.Errorf("expected %q, got %q", want, first)
	}
}

func TestCollect_Nil(t *testing.T) {
	t.Parallel()

	if got := Collect(nil, grammar.F); got == nil || len(got) != 0 {
		t.Errorf("expected empty slice, got %#v", got)
	}
}

func TestBindings(t *testing.T) {
	t.Parallel()

	root := parse(t, "(lambda (x) (lambda (y) (x z)))")
	got := Bindings(root, grammar.F)

	if len(got) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(got))
	}

	outer, inner := got[0], got[1]

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{name: "outer bound", got: outer.Bound, want: []string{"x"}},
		{name: "outer body", got: outer.Body, want: []string{"x", "z"}},
		{name: "outer free", got: outer.Free, want: []string{"z"}},
		{name: "inner bound", got: inner.Bound, want: []string{"y"}},
		{name: "inner body", got: inner.Body, want: []string{"x", "z"}},
		{name: "inner free", got: inner.Free, want: []string{"x", "z"}},
	}

	for _, tt := range tests {
		if !slices.Equal(tt.got, tt.want) {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, tt.got)
		}
	}

	if outer.Start >= inner.Start || outer.End <= inner.End {
		t.Errorf("expected inner scope (%d,%d) nested in outer (%d,%d)",
			inner.Start, inner.End, outer.Start, outer.End)
	}
}
