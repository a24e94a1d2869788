package cyk

import (
	"encoding/csv"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/ardnew/cykscope/lang/grammar"
)

// Span is the inclusive token range [Start, End].
type Span struct {
	Start, End int
}

// Len returns the number of tokens covered by s.
func (s Span) Len() int { return s.End - s.Start + 1 }

// Single reports whether s covers exactly one token.
func (s Span) Single() bool { return s.Start == s.End }

func (s Span) String() string {
	return "(" + strconv.Itoa(s.Start) + "," + strconv.Itoa(s.End) + ")"
}

// Backpointer records how a symbol was first derived over a span.
//
// Rule is the grammar rule index. Split is the last token of the left
// constituent, or -1 when Rule is a terminal rule.
type Backpointer struct {
	Rule  int
	Split int
}

type entry struct {
	span Span
	sym  grammar.Symbol
}

// Table is a filled CYK membership table with backpointers.
type Table struct {
	tokens []string
	cells  []grammar.Set
	back   map[entry]Backpointer
	start  grammar.Symbol
}

func newTable(start grammar.Symbol, tokens []string) *Table {
	n := len(tokens)

	return &Table{
		tokens: tokens,
		cells:  make([]grammar.Set, n*n),
		back:   make(map[entry]Backpointer),
		start:  start,
	}
}

// add records sym over span. The first backpointer for each symbol wins.
func (t *Table) add(span Span, sym grammar.Symbol, bp Backpointer) {
	t.cells[span.Start*len(t.tokens)+span.End] = t.at(span).Add(sym)

	key := entry{span: span, sym: sym}
	if _, ok := t.back[key]; !ok {
		t.back[key] = bp
	}
}

func (t *Table) at(span Span) grammar.Set {
	return t.cells[span.Start*len(t.tokens)+span.End]
}

// Len returns the number of tokens.
func (t *Table) Len() int { return len(t.tokens) }

// Token returns the i'th token.
func (t *Table) Token(i int) string { return t.tokens[i] }

// Tokens returns a copy of the recognized tokens.
func (t *Table) Tokens() []string {
	return append([]string(nil), t.tokens...)
}

// At returns the symbols deriving tokens i through j. Spans outside the
// table are empty.
func (t *Table) At(i, j int) grammar.Set {
	if i < 0 || j < i || j >= len(t.tokens) {
		return 0
	}

	return t.at(Span{Start: i, End: j})
}

// Has reports whether sym derives span.
func (t *Table) Has(span Span, sym grammar.Symbol) bool {
	return t.At(span.Start, span.End).Has(sym)
}

// Back returns the backpointer recorded for sym over span.
func (t *Table) Back(span Span, sym grammar.Symbol) (Backpointer, bool) {
	bp, ok := t.back[entry{span: span, sym: sym}]

	return bp, ok
}

// Accepted reports whether the start symbol derives the whole input.
func (t *Table) Accepted() bool {
	n := len(t.tokens)

	return n > 0 && t.At(0, n-1).Has(t.start)
}

// Spans returns every non-empty cell, shortest spans first and then by start.
func (t *Table) Spans() iter.Seq2[Span, grammar.Set] {
	return func(yield func(Span, grammar.Set) bool) {
		n := len(t.tokens)
		for length := 1; length <= n; length++ {
			for i := 0; i+length <= n; i++ {
				span := Span{Start: i, End: i + length - 1}
				if set := t.at(span); !set.Empty() && !yield(span, set) {
					return
				}
			}
		}
	}
}

// Entry is the exported form of a table cell.
type Entry struct {
	Start   int      `json:"start"   yaml:"start"`
	End     int      `json:"end"     yaml:"end"`
	Text    string   `json:"text"    yaml:"text"`
	Symbols []string `json:"symbols" yaml:"symbols"`
}

// Entries returns the non-empty cells in the order of [Table.Spans].
func (t *Table) Entries() []Entry {
	var entries []Entry

	for span, set := range t.Spans() {
		entries = append(entries, Entry{
			Start:   span.Start,
			End:     span.End,
			Text:    strings.Join(t.tokens[span.Start:span.End+1], " "),
			Symbols: set.Strings(),
		})
	}

	return entries
}

// WriteCSV writes the table as an n-by-n matrix. Row i, column j holds the
// space-separated symbols deriving tokens i through j. The header row and
// column give the token index and text.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	n := len(t.tokens)

	header := make([]string, n+1)
	for j, tok := range t.tokens {
		header[j+1] = strconv.Itoa(j) + ":" + tok
	}

	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range n {
		row := make([]string, n+1)
		row[0] = header[i+1]

		for j := i; j < n; j++ {
			row[j+1] = strings.Join(t.At(i, j).Strings(), " ")
		}

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
