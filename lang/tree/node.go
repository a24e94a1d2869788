package tree

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ardnew/cykscope/lang/cyk"
	"github.com/ardnew/cykscope/lang/grammar"
)

// Node is a parse tree node. A node with no children is a leaf.
type Node struct {
	Symbol grammar.Symbol
	// Terminal is the token of a single-token leaf derived through the start
	// symbol. Structural leaves such as parentheses leave it empty.
	Terminal string
	Span     cyk.Span
	Left     *Node
	Right    *Node
	// Possible is the set of symbols on the right-hand sides of Symbol's
	// rules, used to filter candidate children.
	Possible grammar.Set
}

func newNode(g *grammar.Grammar, sym grammar.Symbol, span cyk.Span) *Node {
	return &Node{Symbol: sym, Span: span, Possible: g.Possible(sym)}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Walk returns the nodes of the tree rooted at n in pre-order.
func (n *Node) Walk() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if n == nil {
		return true
	}

	return yield(n) && n.Left.walk(yield) && n.Right.walk(yield)
}

// Leaves returns the leaves of the tree rooted at n from left to right.
func (n *Node) Leaves() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for m := range n.Walk() {
			if m.IsLeaf() && !yield(m) {
				return
			}
		}
	}
}

// String returns the tree in bracketed form, e.g. "S(A(C a) B(b D))".
func (n *Node) String() string {
	var sb strings.Builder

	n.format(&sb)

	return sb.String()
}

func (n *Node) format(sb *strings.Builder) {
	switch {
	case n == nil:
		sb.WriteString("<nil>")

	case n.IsLeaf() && n.Terminal != "":
		sb.WriteString(n.Terminal)

	case n.IsLeaf():
		sb.WriteString(n.Symbol.String())

	default:
		sb.WriteString(n.Symbol.String())
		sb.WriteByte('(')
		n.Left.format(sb)
		sb.WriteByte(' ')
		n.Right.format(sb)
		sb.WriteByte(')')
	}
}

// Print writes the tree rooted at n one node per line, each level indented
// by indent more than its parent.
func (n *Node) Print(w io.Writer, indent string) error {
	return n.print(w, indent, 0)
}

func (n *Node) print(w io.Writer, indent string, depth int) error {
	if n == nil {
		return nil
	}

	line := strings.Repeat(indent, depth) + n.Symbol.String() + " " + n.Span.String()
	if n.Terminal != "" {
		line += fmt.Sprintf(" %q", n.Terminal)
	}

	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return err
	}

	if err := n.Left.print(w, indent, depth+1); err != nil {
		return err
	}

	return n.Right.print(w, indent, depth+1)
}

// Export is the serializable form of a [Node].
type Export struct {
	Symbol   string  `json:"symbol"             yaml:"symbol"`
	Terminal string  `json:"terminal,omitempty" yaml:"terminal,omitempty"`
	Start    int     `json:"start"              yaml:"start"`
	End      int     `json:"end"                yaml:"end"`
	Left     *Export `json:"left,omitempty"     yaml:"left,omitempty"`
	Right    *Export `json:"right,omitempty"    yaml:"right,omitempty"`
}

// Export returns the serializable form of the tree rooted at n.
func (n *Node) Export() *Export {
	if n == nil {
		return nil
	}

	return &Export{
		Symbol:   n.Symbol.String(),
		Terminal: n.Terminal,
		Start:    n.Span.Start,
		End:      n.Span.End,
		Left:     n.Left.Export(),
		Right:    n.Right.Export(),
	}
}
