// Package cmd implements the cykscope subcommands.
//
// Each command is a kong command struct with a Run(ctx) method. Commands
// read the parsed [kong.Context] from ctx ([WithContext]), their inputs
// from [WithSourceFiles] or arguments, and write results to the writer set
// by [WithOutput] (standard output by default).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path
	// of the YAML configuration file written by [Init].
	ConfigIdentifier = "config"

	// StrategyIdentifier is the kong variable identifier listing the tree
	// reconstruction strategies.
	StrategyIdentifier = "strategies"
)
