package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/cykscope/lang"
)

// Output formats shared by the inspection commands.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatCSV  = "csv"
)

// outputIndent is the indentation width of JSON and YAML output.
const outputIndent = 2

// encode writes v to w as JSON or YAML.
func encode(ctx context.Context, w io.Writer, format string, v any) error {
	var err error

	switch format {
	case formatJSON:
		err = lang.FormatJSON(ctx, w, v, outputIndent)

	case formatYAML:
		err = lang.FormatYAML(ctx, w, v, outputIndent)

	default:
		return ErrBadFormat.With(slog.String("format", format))
	}

	if err != nil {
		return ErrMarshal.Wrap(err).With(slog.String("format", format))
	}

	return nil
}
