// Package cyk implements the Cocke-Younger-Kasami recognizer for grammars in
// Chomsky normal form.
//
// [Recognize] fills a triangular [Table] holding, for every token span, the
// set of nonterminals deriving it. Each (span, symbol) pair also records the
// first rule and split point that introduced it, so a derivation can be
// recovered without searching the table.
package cyk

import (
	"context"
	"log/slog"

	"github.com/ardnew/cykscope/lang/grammar"
	"github.com/ardnew/cykscope/log"
)

type config struct {
	logger log.Logger
}

// Option configures recognition.
type Option func(*config)

// WithLogger sets the logger used for trace output.
// The zero logger discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Recognize fills the CYK table for tokens under g and reports whether the
// start symbol derives the whole sequence. An empty sequence is rejected
// with a nil table.
//
// Runs in O(n³·R) time for n tokens and R binary rules.
func Recognize(
	ctx context.Context,
	g *grammar.Grammar,
	tokens []string,
	opts ...Option,
) (*Table, bool) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(tokens)
	if n == 0 {
		cfg.logger.TraceContext(ctx, "recognize empty input")

		return nil, false
	}

	t := newTable(g.Start(), tokens)

	for i, tok := range tokens {
		for ri, r := range g.TerminalRules() {
			if r.Term.Match(tok) {
				t.add(Span{Start: i, End: i}, r.LHS, Backpointer{Rule: ri, Split: -1})
			}
		}

		cfg.trace(ctx, t, Span{Start: i, End: i})
	}

	for length := 2; length <= n; length++ {
		for i := 0; i+length <= n; i++ {
			span := Span{Start: i, End: i + length - 1}

			for k := span.Start; k < span.End; k++ {
				left, right := t.At(i, k), t.At(k+1, span.End)
				if left.Empty() || right.Empty() {
					continue
				}

				for ri, r := range g.BinaryRules() {
					if left.Has(r.Left) && right.Has(r.Right) {
						t.add(span, r.LHS, Backpointer{Rule: ri, Split: k})
					}
				}
			}

			cfg.trace(ctx, t, span)
		}
	}

	accepted := t.Accepted()

	cfg.logger.TraceContext(ctx, "recognize done",
		slog.Int("tokens", n),
		slog.Bool("accepted", accepted),
	)

	return t, accepted
}

func (c *config) trace(ctx context.Context, t *Table, span Span) {
	if !c.logger.Enabled(ctx, log.LevelTrace) {
		return
	}

	if set := t.at(span); !set.Empty() {
		c.logger.TraceContext(ctx, "cell",
			slog.String("span", span.String()),
			slog.String("symbols", set.String()),
		)
	}
}
