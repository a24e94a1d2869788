package cmd

import (
	"context"

	"github.com/ardnew/cykscope/cli/cmd/repl"
	"github.com/ardnew/cykscope/lang/tree"
	"github.com/ardnew/cykscope/log"
)

// Repl starts an interactive prompt that analyzes one expression per line.
type Repl struct {
	Strategy tree.Strategy `default:"backpointer" help:"Parse tree reconstruction strategy (${strategies})"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	var cacheDir string

	if ktx := kongContextFrom(ctx); ktx != nil {
		cacheDir = ktx.Model.Vars()[CacheIdentifier]
	}

	return repl.Run(ctx, cacheDir, r.Strategy, log.Default())
}
