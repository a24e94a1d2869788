package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/cykscope/lang"
	"github.com/ardnew/cykscope/lang/tree"
	"github.com/ardnew/cykscope/log"
)

// Run analyzes case-count input and prints the free variables of each
// accepted case.
type Run struct {
	Jobs     int           `default:"0"           help:"Maximum concurrent analyses (0 for no limit)"                                    short:"j"`
	Strategy tree.Strategy `default:"backpointer" help:"Parse tree reconstruction strategy (${strategies})"`
	Where    string        `help:"Print only cases matching an expr predicate over case, input, tokens, accepted and free" placeholder:"EXPR"`
	Rejected bool          `help:"Print \"Case #k: rejected\" for rejected cases"`
	Cache    bool          `default:"true"        help:"Reuse the analysis of repeated expressions"                                      negatable:""`
}

// Run executes the run command.
//
// Each source holds its own case count and is processed in turn, with
// standard input read when no source is given. Cases read before a
// truncated source ends are still printed before the error is returned.
func (r *Run) Run(ctx context.Context) error {
	filter, err := lang.CompileFilter(r.Where)
	if err != nil {
		return err
	}

	out := outputFrom(ctx)

	srcs := sourceFilesFrom(ctx)
	if srcs == nil {
		return r.process(ctx, out, stdinSource, os.Stdin, filter)
	}

	for name, in := range srcs.All() {
		if err := r.process(ctx, out, name, in, filter); err != nil {
			return err
		}
	}

	return nil
}

func (r *Run) options(ctx context.Context) []lang.Option {
	return analyzeOptions(ctx,
		lang.WithStrategy(r.Strategy),
		lang.WithCache(r.Cache),
		lang.WithLogger(log.Default()),
	)
}

func (r *Run) process(
	ctx context.Context,
	out io.Writer,
	name string,
	in io.Reader,
	filter *lang.Filter,
) error {
	cases, readErr := lang.ReadCases(ctx, in)

	log.DebugContext(ctx, "cases read",
		slog.String("source", name),
		slog.Int("count", len(cases)),
		slog.Bool("complete", readErr == nil),
	)

	results, err := lang.AnalyzeAll(ctx, cases, r.Jobs, r.options(ctx)...)
	if err != nil {
		return lang.WrapError(err).With(slog.String("source", name))
	}

	for i, res := range results {
		c := cases[i]

		ok, err := filter.Match(c.Number, res)
		if err != nil {
			return err
		}

		var line string

		switch {
		case !ok:
			continue

		case res.Accepted:
			line = c.Line(res.Free)

		case r.Rejected:
			line = lang.FormatCase(c.Number, nil) + "rejected"

		default:
			log.DebugContext(ctx, "case rejected",
				slog.Int("case", c.Number),
				slog.String("input", c.Input),
			)

			continue
		}

		if _, err := fmt.Fprintln(out, line); err != nil {
			return ErrWriteOutput.Wrap(err).With(slog.Int("case", c.Number))
		}
	}

	if readErr != nil {
		return lang.WrapError(readErr).With(slog.String("source", name))
	}

	return nil
}
