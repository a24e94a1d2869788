package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/cykscope/cli/cmd"
	"github.com/ardnew/cykscope/lang/tree"
	"github.com/ardnew/cykscope/pkg"
)

// CLI is the top-level command-line interface for cykscope.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Source []string `help:"Case input file(s) or '-' for stdin" name:"source" short:"s" type:"existingfile"`

	Run   cmd.Run   `cmd:"" default:"1" help:"Print the free variables of each case (default)"`
	Check cmd.Check `cmd:""             help:"Report whether expressions are accepted"`
	Tree  cmd.Tree  `cmd:""             help:"Print the parse tree of an expression"`
	Table cmd.Table `cmd:""             help:"Dump the recognition table of an expression"`
	Repl  cmd.Repl  `cmd:""             help:"Analyze expressions interactively"`
	Init  cmd.Init  `cmd:""             help:"Initialize configuration file"`
}

// Run executes the cykscope CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier:   configFilePath + ".yaml",
		cmd.CacheIdentifier:    cacheDir(),
		cmd.StrategyIdentifier: strings.Join(tree.Strategies, ", "),
		"version":              pkg.Name + " " + pkg.Version(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so that messages logged while parsing already
	// use them, regardless of flag position.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve(baseConfig), configFilePath+".yaml"),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSourceFiles(ctx, cli.Source)

	defer cli.Log.start(ctx)()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
