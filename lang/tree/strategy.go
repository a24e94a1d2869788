package tree

//go:generate go tool stringer --linecomment --type Strategy --output strategy_string.go

import (
	"fmt"
	"strings"
)

// Strategy selects how child spans are recovered from the table.
type Strategy uint8

const (
	// Backpointer expands each node from the rule and split recorded by the
	// recognizer.
	Backpointer Strategy = iota // backpointer
	// NearestNeighbor searches the table for the longest left constituent and
	// longest right constituent carrying one of the node's possible symbols.
	// It relies on the lambda grammar deriving each span in one way.
	NearestNeighbor // nearest
)

// DefaultStrategy is used when no strategy is given.
const DefaultStrategy = Backpointer

// Strategies lists the names accepted by [ParseStrategy].
var Strategies = []string{Backpointer.String(), NearestNeighbor.String()}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "backpointer", "back":
		return Backpointer, nil
	case "nearest", "nearest-neighbor", "nn":
		return NearestNeighbor, nil
	default:
		return DefaultStrategy, fmt.Errorf("unknown strategy %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}

	*s = v

	return nil
}
