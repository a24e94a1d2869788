package grammar

//go:generate go tool stringer --linecomment --type Symbol --output symbol_string.go

import (
	"iter"
	"math/bits"
	"strings"
)

// Symbol is a nonterminal of the lambda grammar.
type Symbol uint8

// The nonterminals, in the order used for every deterministic choice.
//
//	S  expression (start symbol)
//	A  "(" expression
//	B  expression ")"
//	C  "("
//	D  ")"
//	E  "(" "lambda"
//	F  lambda scope: binder, body
//	G  "lambda"
//	H  "(" expression ")"
const (
	S Symbol = iota // S
	A               // A
	B               // B
	C               // C
	D               // D
	E               // E
	F               // F
	G               // G
	H               // H
)

// symbolCount is the number of defined symbols.
const symbolCount = int(H) + 1

const symbolNames = "SABCDEFGH"

// Symbols returns every defined symbol in order.
func Symbols() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for s := range Symbol(symbolCount) {
			if !yield(s) {
				return
			}
		}
	}
}

// ParseSymbol returns the symbol with the given one-letter name.
func ParseSymbol(name string) (Symbol, bool) {
	if len(name) != 1 {
		return 0, false
	}

	i := strings.IndexByte(symbolNames, name[0])
	if i < 0 {
		return 0, false
	}

	return Symbol(i), true
}

// Valid reports whether s is a defined symbol.
func (s Symbol) Valid() bool { return int(s) < symbolCount }

// Set is a set of symbols.
type Set uint16

// NewSet returns the set containing syms.
func NewSet(syms ...Symbol) Set {
	var s Set
	for _, sym := range syms {
		s = s.Add(sym)
	}

	return s
}

// Add returns s with sym included.
func (s Set) Add(sym Symbol) Set { return s | 1<<sym }

// Has reports whether sym is in s.
func (s Set) Has(sym Symbol) bool { return s&(1<<sym) != 0 }

// Intersect returns the symbols present in both s and o.
func (s Set) Intersect(o Set) Set { return s & o }

// Empty reports whether s has no members.
func (s Set) Empty() bool { return s == 0 }

// Len returns the number of members.
func (s Set) Len() int { return bits.OnesCount16(uint16(s)) }

// First returns the lowest-ordered member of s.
func (s Set) First() (Symbol, bool) {
	if s.Empty() {
		return 0, false
	}

	return Symbol(bits.TrailingZeros16(uint16(s))), true
}

// All returns the members of s in symbol order.
func (s Set) All() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for sym := range Symbols() {
			if s.Has(sym) && !yield(sym) {
				return
			}
		}
	}
}

// Strings returns the member names in symbol order.
func (s Set) Strings() []string {
	names := make([]string, 0, s.Len())
	for sym := range s.All() {
		names = append(names, sym.String())
	}

	return names
}

func (s Set) String() string {
	return "{" + strings.Join(s.Strings(), " ") + "}"
}
