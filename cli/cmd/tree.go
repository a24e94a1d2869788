package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ardnew/cykscope/lang"
	"github.com/ardnew/cykscope/lang/tree"
	"github.com/ardnew/cykscope/log"
)

// treeIndent indents each level of the text tree.
const treeIndent = "  "

// Tree prints the parse tree of an accepted expression.
type Tree struct {
	Expr     string        `arg:""                help:"Expression to parse"`
	Strategy tree.Strategy `default:"backpointer" help:"Parse tree reconstruction strategy (${strategies})"`
	Format   string        `default:"text"        enum:"text,json,yaml"                                    help:"Output format" short:"f"`
}

// Run executes the tree command. A rejected expression is an error.
func (t *Tree) Run(ctx context.Context) error {
	res, err := lang.Analyze(ctx, t.Expr, analyzeOptions(ctx,
		lang.WithStrategy(t.Strategy),
		lang.WithRetainTree(true),
		lang.WithLogger(log.Default()),
	)...)
	if err != nil {
		return err
	}

	if err := res.Err(); err != nil {
		return err
	}

	out := outputFrom(ctx)

	if t.Format != formatText {
		return encode(ctx, out, t.Format, res.Report(0))
	}

	if err := writeTree(out, res); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// writeTree prints the indented tree, then one line per lambda scope and the
// free variables of the whole expression.
func writeTree(w io.Writer, res *lang.Result) error {
	if err := res.Tree.Print(w, treeIndent); err != nil {
		return err
	}

	for _, b := range res.Bindings() {
		_, err := fmt.Fprintf(w, "lambda (%d,%d): bound [%s] body [%s] free [%s]\n",
			b.Start, b.End,
			strings.Join(b.Bound, " "),
			strings.Join(b.Body, " "),
			strings.Join(b.Free, " "),
		)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "free [%s]\n", strings.Join(res.Free, " "))

	return err
}
