// Package cli contains the command line interface for cykscope.
//
// # Usage
//
// By default cykscope reads case-count input from standard input or the
// files named with --source, and prints one line per accepted case:
//
//	$ printf '2\n(lambda (x) (x y))\nfoo\n' | cykscope
//	Case #1: y
//	Case #2: foo
//
// Other commands inspect single expressions:
//
//	cykscope check '(lambda (x) y)' '(x'
//	cykscope tree --format=yaml '(a b)'
//	cykscope table '(lambda (x) x)'
//	cykscope repl
//
// # Configuration
//
// Flag values are read from config.json and config.yaml in the user config
// directory (for example ~/.config/cykscope). The YAML loader flattens
// nested mappings, so
//
//	log:
//	  level: debug
//	jobs: 4
//
// is equivalent to --log-level=debug --jobs=4. Command-line flags override
// both files. The init command writes the current flag values to
// config.yaml.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// Trace level logs every filled table cell and every reconstructed node.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default
//     ~/.cache/cykscope/pprof)
package cli
