// Package tree reconstructs a parse tree from an accepted CYK table.
//
// Reconstruction is breadth-first over a FIFO worklist. Each node spanning
// more than one token is split into a left and right child whose spans
// partition its own and whose symbols form one of its rules. Single-token
// children are leaves; those carrying the start symbol keep their token.
package tree

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/ardnew/cykscope/lang/cyk"
	"github.com/ardnew/cykscope/lang/grammar"
	"github.com/ardnew/cykscope/log"
)

var (
	// ErrNotAccepted is returned when the table does not derive its input.
	ErrNotAccepted = errors.New("table not accepted")
	// ErrReconstruct is returned when an accepted table yields no consistent
	// derivation.
	ErrReconstruct = errors.New("tree reconstruction failed")
)

// Error describes a reconstruction failure at a single node.
type Error struct {
	Symbol grammar.Symbol
	Span   cyk.Span
	Reason string
}

// Error describes the failure without repeating [ErrReconstruct], which
// callers reach through Unwrap.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s%s", e.Reason, e.Symbol, e.Span)
}

// Unwrap returns [ErrReconstruct].
func (e *Error) Unwrap() error { return ErrReconstruct }

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", ErrReconstruct.Error()),
		slog.String("reason", e.Reason),
		slog.String("symbol", e.Symbol.String()),
		slog.String("span", e.Span.String()),
	)
}

type config struct {
	logger   log.Logger
	strategy Strategy
}

// Option configures reconstruction.
type Option func(*config)

// WithStrategy selects the child search strategy.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithLogger sets the logger used for trace output.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// expander returns the two children of an internal node.
type expander func(n *Node) (left, right *Node, err error)

// Build returns the parse tree of the accepted table t.
//
// The root carries the first symbol deriving the whole input. No partial
// tree is returned on error.
func Build(
	ctx context.Context,
	g *grammar.Grammar,
	t *cyk.Table,
	opts ...Option,
) (*Node, error) {
	cfg := config{strategy: DefaultStrategy}
	for _, opt := range opts {
		opt(&cfg)
	}

	if t == nil || !t.Accepted() {
		return nil, ErrNotAccepted
	}

	n := t.Len()
	full := cyk.Span{Start: 0, End: n - 1}

	sym, _ := t.At(full.Start, full.End).First()
	root := newNode(g, sym, full)

	if n == 1 {
		root.Terminal = t.Token(0)

		return root, nil
	}

	var expand expander

	switch cfg.strategy {
	case NearestNeighbor:
		expand = nearest(g, t)
	default:
		expand = backpointer(g, t)
	}

	queue := arraylist.New(root)

	for !queue.Empty() {
		v, _ := queue.Get(0)
		queue.Remove(0)

		node, _ := v.(*Node)

		left, right, err := expand(node)
		if err != nil {
			return nil, err
		}

		if err := check(g, node, left, right); err != nil {
			return nil, err
		}

		node.Left, node.Right = left, right

		if cfg.logger.Enabled(ctx, log.LevelTrace) {
			cfg.logger.TraceContext(ctx, "expand",
				slog.String("node", node.Symbol.String()+node.Span.String()),
				slog.String("left", left.Symbol.String()+left.Span.String()),
				slog.String("right", right.Symbol.String()+right.Span.String()),
			)
		}

		for _, child := range []*Node{left, right} {
			if !child.Span.Single() {
				queue.Add(child)

				continue
			}

			if child.Symbol == g.Start() {
				child.Terminal = t.Token(child.Span.Start)
			}
		}
	}

	return root, nil
}

// check verifies that left and right partition the span of n and that
// n -> left right is a rule of g.
func check(g *grammar.Grammar, n, left, right *Node) error {
	fail := func(reason string) error {
		return &Error{Symbol: n.Symbol, Span: n.Span, Reason: reason}
	}

	switch {
	case left.Span.Start != n.Span.Start:
		return fail("left child " + left.Span.String() + " does not start the span")

	case right.Span.End != n.Span.End:
		return fail("right child " + right.Span.String() + " does not end the span")

	case left.Span.End+1 != right.Span.Start:
		return fail("children " + left.Span.String() + " " + right.Span.String() +
			" do not partition the span")
	}

	if _, ok := g.Produces(n.Symbol, left.Symbol, right.Symbol); !ok {
		return fail("no rule " + n.Symbol.String() + " -> " +
			left.Symbol.String() + " " + right.Symbol.String())
	}

	return nil
}

func backpointer(g *grammar.Grammar, t *cyk.Table) expander {
	return func(n *Node) (*Node, *Node, error) {
		bp, ok := t.Back(n.Span, n.Symbol)
		if !ok || bp.Split < 0 {
			return nil, nil, &Error{Symbol: n.Symbol, Span: n.Span, Reason: "no binary backpointer"}
		}

		r := g.Rule(bp.Rule)
		left := newNode(g, r.Left, cyk.Span{Start: n.Span.Start, End: bp.Split})
		right := newNode(g, r.Right, cyk.Span{Start: bp.Split + 1, End: n.Span.End})

		return left, right, nil
	}
}

// nearest scans row Start from the longest proper prefix down for the left
// child, and column End from the longest proper suffix down for the right
// child. Each takes the first symbol in enumeration order that is possible
// under the node.
func nearest(g *grammar.Grammar, t *cyk.Table) expander {
	return func(n *Node) (*Node, *Node, error) {
		i, j := n.Span.Start, n.Span.End

		var left, right *Node

		for k := j - 1; k >= i; k-- {
			if sym, ok := t.At(i, k).Intersect(n.Possible).First(); ok {
				left = newNode(g, sym, cyk.Span{Start: i, End: k})

				break
			}
		}

		if left == nil {
			return nil, nil, &Error{Symbol: n.Symbol, Span: n.Span, Reason: "no left child"}
		}

		for k := i + 1; k <= j; k++ {
			if sym, ok := t.At(k, j).Intersect(n.Possible).First(); ok {
				right = newNode(g, sym, cyk.Span{Start: k, End: j})

				break
			}
		}

		if right == nil {
			return nil, nil, &Error{Symbol: n.Symbol, Span: n.Span, Reason: "no right child"}
		}

		return left, right, nil
	}
}
