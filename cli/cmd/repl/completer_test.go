package repl

import (
	"context"
	"slices"
	"testing"

	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/cykscope/log"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "foo", 3, "foo", 0, 3},
		{"after_paren", "(fo", 3, "fo", 1, 3},
		{"after_space", "(lambda (x) fo", 14, "fo", 12, 14},
		{"before_paren", "(foo)", 4, "foo", 1, 4},
		{"empty_at_boundary", "(x ", 3, "", 3, 3},
		{"mid_word", "foobar", 3, "foobar", 0, 6},
		{"at_start", "foo", 0, "foo", 0, 3},
		{"cursor_past_end", "foo", 9, "foo", 0, 3},
		// Hyphens are part of identifiers, not word boundaries.
		{"hyphenated", "(add-one x", 8, "add-one", 1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestVocabulary(t *testing.T) {
	t.Parallel()

	v := newVocabulary()
	v.addInput("(lambda (x) (add-one x))")
	v.addInput("(y x)")

	want := []string{"lambda", "x", "add-one", "y"}
	if got := v.candidates(); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if v.Len() != 3 {
		t.Errorf("expected 3 identifiers, got %d", v.Len())
	}

	// candidates must not alias the keyword list.
	_ = append(v.candidates(), "z")
	if got := v.candidates(); !slices.Equal(got, want) {
		t.Errorf("expected %v after append, got %v", want, got)
	}
}

func testModel(t *testing.T) model {
	t.Helper()

	vocab := newVocabulary()
	vocab.addInput("(foo fob (bar quux))")

	return newModel(context.Background(), NewHistory(t.TempDir()+"/"+baseHistory),
		vocab, settings{}, log.Logger{})
}

func typeText(m model, text string) model {
	for _, r := range text {
		m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	return m
}

func TestModelCompletion(t *testing.T) {
	t.Parallel()

	m := typeText(testModel(t), "(fo")

	if len(m.matches) != 2 {
		t.Fatalf("expected 2 matches, got %v", m.matches)
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	if !m.tabActive || m.input.Value() != "("+m.matches[0].Str {
		t.Fatalf("expected first candidate inserted, got %q", m.input.Value())
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	if m.input.Value() != "("+m.matches[1].Str {
		t.Errorf("expected second candidate inserted, got %q", m.input.Value())
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.tabActive || m.input.Value() != "(fo" {
		t.Errorf("expected tab cycling undone, got %q", m.input.Value())
	}
}

func TestModelSingleCompletion(t *testing.T) {
	t.Parallel()

	m := typeText(testModel(t), "(qu")

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	if m.input.Value() != "(quux" {
		t.Errorf("expected %q, got %q", "(quux", m.input.Value())
	}

	if m.matches != nil || m.tabActive {
		t.Errorf("expected completion confirmed, got matches %v", m.matches)
	}
}

func TestModelToggleMode(t *testing.T) {
	t.Parallel()

	m := typeText(testModel(t), "(x")

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeCtrl || m.input.Value() != "" {
		t.Fatalf("expected empty control mode, got mode %d input %q", m.mode, m.input.Value())
	}

	m = typeText(m, "tre")
	if !slices.ContainsFunc(m.matches, func(f fuzzy.Match) bool { return f.Str == "tree" }) {
		t.Errorf("expected command completion, got %v", m.matches)
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeEval || m.input.Value() != "(x" {
		t.Errorf("expected eval input restored, got mode %d input %q", m.mode, m.input.Value())
	}
}

func TestModelExecute(t *testing.T) {
	t.Parallel()

	m := typeText(testModel(t), "(lambda (q) q)")

	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected output command")
	}

	if m.input.Value() != "" {
		t.Errorf("expected input cleared, got %q", m.input.Value())
	}

	if m.history.Len() != 1 || m.vocab.Len() != 5 {
		t.Errorf("expected 1 history entry and 5 identifiers, got %d and %d",
			m.history.Len(), m.vocab.Len())
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	m = typeText(m, "strategy nearest")

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if m.settings.strategy.String() != "nearest" {
		t.Errorf("expected strategy nearest, got %s", m.settings.strategy)
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyUp})
	if m.mode != modeCtrl || m.input.Value() != "strategy nearest" {
		t.Errorf("expected last command recalled, got %q", m.input.Value())
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyUp})
	if m.mode != modeEval || m.input.Value() != "(lambda (q) q)" {
		t.Errorf("expected expression recalled in eval mode, got mode %d input %q",
			m.mode, m.input.Value())
	}
}
