package lang

import (
	"context"
	"log/slog"

	"github.com/ardnew/cykscope/lang/cyk"
	"github.com/ardnew/cykscope/lang/grammar"
	"github.com/ardnew/cykscope/lang/lexer"
	"github.com/ardnew/cykscope/lang/scope"
	"github.com/ardnew/cykscope/lang/tree"
	"github.com/ardnew/cykscope/log"
)

// Result is the analysis of a single expression.
type Result struct {
	Input    string
	Tokens   []string
	Accepted bool
	// Free holds the free variable occurrences of an accepted expression.
	// It is nil when the expression is rejected.
	Free []string
	// Table is set only with [WithRetainTable].
	Table *cyk.Table
	// Tree is set only with [WithRetainTree] and only when accepted.
	Tree *tree.Node

	grammar *grammar.Grammar
}

// Err returns nil if r was accepted. Otherwise it returns [ErrEmptyInput]
// or [ErrRejected] with the input attached.
func (r *Result) Err() error {
	switch {
	case r.Accepted:
		return nil
	case len(r.Tokens) == 0:
		return ErrEmptyInput.With(slog.String("input", r.Input))
	default:
		return ErrRejected.With(
			slog.String("input", r.Input),
			slog.Int("tokens", len(r.Tokens)),
		)
	}
}

// Bindings returns the per-scope report of the retained tree.
func (r *Result) Bindings() []scope.Binding {
	if r.Tree == nil || r.grammar == nil {
		return nil
	}

	return scope.Bindings(r.Tree, r.grammar.Scope())
}

type options struct {
	grammar     *grammar.Grammar
	strategy    tree.Strategy
	logger      log.Logger
	retainTable bool
	retainTree  bool
	cache       bool
}

// Option configures analysis.
type Option func(*options)

// WithGrammar sets the grammar. The default is [grammar.Lambda].
func WithGrammar(g *grammar.Grammar) Option {
	return func(o *options) {
		o.grammar = g
	}
}

// WithStrategy sets the tree reconstruction strategy.
func WithStrategy(s tree.Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRetainTable keeps the CYK table in the [Result].
func WithRetainTable(retain bool) Option {
	return func(o *options) {
		o.retainTable = retain
	}
}

// WithRetainTree keeps the parse tree in the [Result].
func WithRetainTree(retain bool) Option {
	return func(o *options) {
		o.retainTree = retain
	}
}

func makeOptions(opts ...Option) options {
	o := options{strategy: tree.DefaultStrategy}

	for _, opt := range opts {
		opt(&o)
	}

	if o.grammar == nil {
		o.grammar = grammar.Lambda()
	}

	return o
}

// Analyze tokenizes, recognizes, reconstructs and scope-analyzes input.
//
// A rejected expression is not an error: the result has Accepted false and
// no free list. The only error is [ErrReconstruct], returned when an
// accepted table yields no consistent parse tree.
func Analyze(ctx context.Context, input string, opts ...Option) (*Result, error) {
	o := makeOptions(opts...)
	if o.cache {
		return analyzeCached(ctx, input, o)
	}

	return analyze(ctx, input, o)
}

func analyze(ctx context.Context, input string, o options) (*Result, error) {
	res := &Result{
		Input:   input,
		Tokens:  lexer.Tokenize(input),
		grammar: o.grammar,
	}

	o.logger.TraceContext(ctx, "analyze start",
		slog.String("input", input),
		slog.Int("tokens", len(res.Tokens)),
	)

	tbl, ok := cyk.Recognize(ctx, o.grammar, res.Tokens, cyk.WithLogger(o.logger))

	res.Accepted = ok
	if o.retainTable {
		res.Table = tbl
	}

	if !ok {
		o.logger.DebugContext(ctx, "expression rejected", slog.String("input", input))

		return res, nil
	}

	root, err := tree.Build(ctx, o.grammar, tbl,
		tree.WithStrategy(o.strategy),
		tree.WithLogger(o.logger),
	)
	if err != nil {
		return nil, ErrReconstruct.Wrap(err).With(
			slog.String("input", input),
			slog.String("strategy", o.strategy.String()),
		)
	}

	if o.retainTree {
		res.Tree = root
	}

	res.Free = scope.Free(o.grammar, root)

	o.logger.DebugContext(ctx, "expression accepted",
		slog.String("input", input),
		slog.Any("free", res.Free),
	)

	return res, nil
}
