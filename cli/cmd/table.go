package cmd

import (
	"context"

	"github.com/ardnew/cykscope/lang"
	"github.com/ardnew/cykscope/log"
)

// Table dumps the filled recognition table of an expression, whether or not
// it is accepted.
type Table struct {
	Expr   string `arg:""        help:"Expression to recognize"`
	Format string `default:"csv" enum:"csv,json,yaml"          help:"Output format" short:"f"`
}

// Run executes the table command. An expression without tokens is an error.
func (t *Table) Run(ctx context.Context) error {
	res, err := lang.Analyze(ctx, t.Expr, analyzeOptions(ctx,
		lang.WithRetainTable(true),
		lang.WithLogger(log.Default()),
	)...)
	if err != nil {
		return err
	}

	if res.Table == nil {
		return res.Err()
	}

	out := outputFrom(ctx)

	if t.Format != formatCSV {
		return encode(ctx, out, t.Format, res.Table.Entries())
	}

	if err := res.Table.WriteCSV(out); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
