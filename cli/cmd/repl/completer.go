package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/cykscope/lang/grammar"
	"github.com/ardnew/cykscope/lang/lexer"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "tree", "table", "strategy", "clear", "quit"}

// keywords are offered in eval mode before any identifier.
var keywords = []string{"lambda"}

// isWordBoundary reports whether r delimits a completion word. Hyphens are
// not boundaries because identifiers may contain them (e.g. add-one).
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '(', ')':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input. Returns an empty word when the cursor sits on a
// boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// vocabulary is the set of identifiers seen in evaluated expressions, in
// first-seen order.
type vocabulary struct {
	names []string
	seen  map[string]struct{}
}

func newVocabulary() *vocabulary {
	return &vocabulary{seen: make(map[string]struct{})}
}

// addInput records every identifier token of input.
func (v *vocabulary) addInput(input string) {
	g := grammar.Lambda()

	for _, tok := range lexer.Tokenize(input) {
		if !g.Terminals(tok).Has(g.Start()) {
			continue
		}

		if _, ok := v.seen[tok]; ok {
			continue
		}

		v.seen[tok] = struct{}{}
		v.names = append(v.names, tok)
	}
}

// Len returns the number of identifiers.
func (v *vocabulary) Len() int { return len(v.names) }

// candidates returns the keywords followed by the identifiers.
func (v *vocabulary) candidates() []string {
	return append(keywords[:len(keywords):len(keywords)], v.names...)
}

// computeMatches returns the fuzzy matches for the word at the cursor, ranked
// best-first, with the word boundaries. An empty word has no matches.
func (m model) computeMatches() (matches fuzzy.Matches, wordStart, wordEnd int) {
	word, wordStart, wordEnd := wordBounds(m.input.Value(), m.input.Position())
	if word == "" {
		return nil, wordStart, wordEnd
	}

	candidates := ctrlCommands
	if m.mode == modeEval {
		candidates = m.vocab.candidates()
	}

	return fuzzy.Find(word, candidates), wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. The selected candidate (when tabbing) uses
// the selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		last := i == len(matches)-1

		reserve := ellipsisWidth
		if last {
			reserve = 0
		}

		if i > 0 && used+entryWidth+reserve > width {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(highlightStyle.Render(string(r)))
		} else {
			b.WriteString(baseStyle.Render(string(r)))
		}
	}

	return b.String()
}
