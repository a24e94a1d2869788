//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version returns the semantic version of the cykscope module embedded at
// build time.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "cykscope"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "CYK recognizer and free-variable analyzer for lambda expressions"
)
