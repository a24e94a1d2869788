// Package lexer splits expression text into grammar tokens.
//
// A token is "(", ")", the keyword "lambda", or an identifier of letters
// optionally joined by single hyphens. Characters that begin no token, such
// as whitespace and digits, are skipped without error.
package lexer

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Pattern is the token pattern, matched leftmost-first.
const Pattern = `[()]|lambda|[a-zA-Z]+(?:-[a-zA-Z]+)*`

var tokenRE = regexp2.MustCompile(Pattern, regexp2.None)

// Token is a single token and its position in the input.
type Token struct {
	Text string
	// Offset is the index of the first rune of Text in the input.
	Offset int
}

func (t Token) String() string { return fmt.Sprintf("%q@%d", t.Text, t.Offset) }

// Scan returns every token in input in order.
func Scan(input string) []Token {
	var toks []Token

	m, err := tokenRE.FindStringMatch(input)
	for err == nil && m != nil {
		toks = append(toks, Token{Text: m.String(), Offset: m.Index})
		m, err = tokenRE.FindNextMatch(m)
	}

	return toks
}

// Tokenize returns the text of every token in input in order.
func Tokenize(input string) []string {
	return Texts(Scan(input))
}

// Texts returns the text of each token.
func Texts(toks []Token) []string {
	text := make([]string, len(toks))
	for i, t := range toks {
		text[i] = t.Text
	}

	return text
}
