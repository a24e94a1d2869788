package repl

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/cykscope/lang"
	"github.com/ardnew/cykscope/lang/tree"
	"github.com/ardnew/cykscope/log"
)

// settings control how each expression is analyzed and reported.
type settings struct {
	strategy  tree.Strategy
	showTree  bool
	showTable bool
}

// evaluate analyzes input and returns the text to print: the free variables
// of an accepted expression, optionally preceded by its recognition table and
// parse tree. A rejected expression yields the error of its result along with
// the table, if one was requested.
func (s settings) evaluate(
	ctx context.Context,
	input string,
	logger log.Logger,
) (string, error) {
	res, err := lang.Analyze(ctx, input,
		lang.WithStrategy(s.strategy),
		lang.WithRetainTree(s.showTree),
		lang.WithRetainTable(s.showTable),
		lang.WithLogger(logger),
	)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	if res.Table != nil {
		if err := res.Table.WriteCSV(&sb); err != nil {
			return "", err
		}
	}

	if !res.Accepted {
		return strings.TrimSuffix(sb.String(), "\n"), res.Err()
	}

	if res.Tree != nil {
		if err := res.Tree.Print(&sb, "  "); err != nil {
			return "", err
		}

		for _, b := range res.Bindings() {
			fmt.Fprintf(&sb, "lambda (%d,%d) binds [%s]\n",
				b.Start, b.End, strings.Join(b.Bound, " "))
		}
	}

	sb.WriteString("free [" + strings.Join(res.Free, " ") + "]")

	return sb.String(), nil
}
