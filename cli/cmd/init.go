package cmd

import (
	"context"
	"encoding"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/cykscope/lang"
	"github.com/ardnew/cykscope/log"
	"github.com/ardnew/cykscope/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}
	defer file.Close()

	err = lang.FormatYAML(ctx, file, i.buildConfig(ctx), defaultConfigIndent)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// configIgnore lists flag name prefixes never written to the configuration.
var configIgnore = []string{"help", "force", profile.Tag}

// buildConfig returns the current value of every application and command
// flag, keyed by flag name in declaration order. Flags shared by several
// commands appear once.
func (i *Init) buildConfig(ctx context.Context) yaml.MapSlice {
	ktx := kongContextFrom(ctx)

	flags := slices.Clone(ktx.Model.Flags)
	for _, child := range ktx.Model.Children {
		flags = append(flags, child.Flags...)
	}

	var (
		config yaml.MapSlice
		seen   = make(map[string]bool)
	)

	for _, flag := range flags {
		if flag.Hidden || seen[flag.Name] ||
			slices.ContainsFunc(configIgnore, func(s string) bool {
				return strings.HasPrefix(flag.Name, s)
			}) {
			continue
		}

		seen[flag.Name] = true

		if val := flagValue(ktx, flag); val != nil {
			config = append(config, yaml.MapItem{Key: flag.Name, Value: val})
		}
	}

	return config
}

// flagValue returns the YAML value of a flag, or nil if it is unset or
// empty.
func flagValue(ktx *kong.Context, flag *kong.Flag) any {
	val := ktx.FlagValue(flag)

	switch v := val.(type) {
	case nil:
		return nil

	case string:
		if v == "" {
			return nil
		}

		return v

	case []string:
		if len(v) == 0 {
			return nil
		}

		return v

	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			return nil
		}

		return string(text)

	default:
		return v
	}
}
