package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/cykscope/lang"
	"github.com/ardnew/cykscope/lang/tree"
	"github.com/ardnew/cykscope/log"
)

// Check reports whether each expression is accepted, and its free variables.
type Check struct {
	Exprs    []string      `arg:""                help:"Expressions to analyze"                                   name:"expr"`
	Strategy tree.Strategy `default:"backpointer" help:"Parse tree reconstruction strategy (${strategies})"`
	Format   string        `default:"text"        enum:"text,json,yaml"                                           help:"Output format" short:"f"`
}

// Run executes the check command.
//
// The text format prints one line per expression: "accepted" followed by
// the free variables, or "rejected".
func (c *Check) Run(ctx context.Context) error {
	out := outputFrom(ctx)
	reports := make([]lang.Report, 0, len(c.Exprs))

	for i, expr := range c.Exprs {
		res, err := lang.Analyze(ctx, expr, analyzeOptions(ctx,
			lang.WithStrategy(c.Strategy),
			lang.WithLogger(log.Default()),
		)...)
		if err != nil {
			return err
		}

		if c.Format != formatText {
			reports = append(reports, res.Report(i+1))

			continue
		}

		line := "rejected"
		if res.Accepted {
			line = strings.TrimSpace("accepted " + strings.Join(res.Free, " "))
		}

		if _, err := fmt.Fprintln(out, line); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	if c.Format == formatText {
		return nil
	}

	return encode(ctx, out, c.Format, reports)
}
