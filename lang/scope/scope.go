// Package scope computes free variable occurrences of a parse tree.
//
// A node labeled with the scope symbol binds the names found in its left
// subtree within its right subtree. Binding is by exact name: there is no
// environment chain and no renaming, so each scope filters the already
// filtered occurrences of the scopes nested inside it.
package scope

import (
	"slices"

	"github.com/ardnew/cykscope/lang/grammar"
	"github.com/ardnew/cykscope/lang/tree"
)

// Collect returns the free variable occurrences under n in left-to-right
// order, duplicates included. Nodes labeled lambda remove from their right
// subtree's occurrences every name occurring in their left subtree.
func Collect(n *tree.Node, lambda grammar.Symbol) []string {
	if n == nil {
		return []string{}
	}

	if n.Symbol == lambda {
		bound := Collect(n.Left, lambda)
		body := Collect(n.Right, lambda)

		free := body[:0]
		for _, v := range body {
			if !slices.Contains(bound, v) {
				free = append(free, v)
			}
		}

		return free
	}

	out := append(Collect(n.Left, lambda), Collect(n.Right, lambda)...)
	if n.Terminal != "" {
		out = append(out, n.Terminal)
	}

	return out
}

// Free returns the free variable occurrences of root under g's scope symbol.
func Free(g *grammar.Grammar, root *tree.Node) []string {
	return Collect(root, g.Scope())
}

// Binding reports the effect of a single scope node.
type Binding struct {
	Start int      `json:"start" yaml:"start"`
	End   int      `json:"end"   yaml:"end"`
	Bound []string `json:"bound" yaml:"bound"`
	Body  []string `json:"body"  yaml:"body"`
	Free  []string `json:"free"  yaml:"free"`
}

// Bindings returns one [Binding] per node labeled lambda, in pre-order.
func Bindings(root *tree.Node, lambda grammar.Symbol) []Binding {
	var bs []Binding

	for n := range root.Walk() {
		if n.Symbol != lambda {
			continue
		}

		bs = append(bs, Binding{
			Start: n.Span.Start,
			End:   n.Span.End,
			Bound: Collect(n.Left, lambda),
			Body:  Collect(n.Right, lambda),
			Free:  Collect(n, lambda),
		})
	}

	return bs
}
