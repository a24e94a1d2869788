package cli

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/cykscope/log"
)

// resolve returns a [kong.ConfigurationLoader] for YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve("config"), "/path/to/config.yaml")
//
// The document is converted as follows:
//   - If the top-level mapping has a key equal to name holding a mapping,
//     only that mapping is used; otherwise the whole document is
//   - Nested mappings are flattened by joining keys with "-", so that
//     log: {level: debug} sets --log-level
//   - Keys may use underscores in place of hyphens (e.g., "log_level")
//   - Numbers are passed to kong as strings
//   - Sequences are passed as lists of strings
//
// Example config file:
//
//	log:
//	  level: debug
//	  format: json
//	jobs: 4
//	strategy: nearest
//
// Command-line flags override config file values. A file that is not a YAML
// mapping is ignored with a warning.
func resolve(name string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		err := yaml.NewDecoder(r).Decode(&doc)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Warn("ignoring configuration file", slog.String("error", err.Error()))
			}

			return config{}, nil
		}

		if sub, ok := doc[name].(map[string]any); ok {
			doc = sub
		}

		cfg := make(config)
		cfg.flatten("", doc)

		return cfg, nil
	}
}

// config implements [kong.Resolver] over flattened flag names.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Not found: nil lets kong use the default.
	return r[flag.Name], nil
}

func (r config) flatten(prefix string, m map[string]any) {
	for key, value := range m {
		key = strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := value.(map[string]any); ok {
			r.flatten(key, sub)

			continue
		}

		r[key] = scalar(value)
	}
}

// scalar converts a decoded YAML value to the form kong parses: numbers
// become strings, and sequences lists of scalars.
func scalar(value any) any {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)

	case int64:
		return strconv.FormatInt(v, 10)

	case uint64:
		return strconv.FormatUint(v, 10)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case []any:
		list := make([]any, len(v))
		for i, e := range v {
			list[i] = scalar(e)
		}

		return list

	default:
		return v
	}
}
