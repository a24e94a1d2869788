package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/cykscope/lang"
	"github.com/ardnew/cykscope/lang/tree"
)

func TestCheckRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		exprs []string
		want  string
	}{
		{"free", []string{"(lambda (x) y)"}, "accepted y\n"},
		{"closed", []string{"(lambda (x) x)"}, "accepted\n"},
		{"mixed", []string{"x", "(x", "", "(a b)"}, "accepted x\nrejected\nrejected\naccepted a b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			c := &Check{Exprs: tt.exprs, Strategy: tree.NearestNeighbor, Format: formatText}
			if err := c.Run(WithOutput(context.Background(), &out)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCheckRunJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	c := &Check{Exprs: []string{"x", "(x"}, Format: formatJSON}
	if err := c.Run(WithOutput(context.Background(), &out)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var reports []lang.Report
	if err := json.Unmarshal(out.Bytes(), &reports); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}

	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}

	if r := reports[0]; r.Case != 1 || !r.Accepted || len(r.Free) != 1 || r.Free[0] != "x" {
		t.Errorf("unexpected first report %+v", r)
	}

	if r := reports[1]; r.Case != 2 || r.Accepted || len(r.Free) != 0 {
		t.Errorf("unexpected second report %+v", r)
	}
}

func TestTreeRun(t *testing.T) {
	t.Parallel()

	want := strings.Join([]string{
		`S (0,6)`,
		`  E (0,1)`,
		`    C (0,0)`,
		`    G (1,1)`,
		`  F (2,6)`,
		`    H (2,4)`,
		`      A (2,3)`,
		`        C (2,2)`,
		`        S (3,3) "x"`,
		`      D (4,4)`,
		`    B (5,6)`,
		`      S (5,5) "y"`,
		`      D (6,6)`,
		`lambda (2,6): bound [x] body [y] free [y]`,
		`free [y]`,
		``,
	}, "\n")

	for _, s := range []tree.Strategy{tree.Backpointer, tree.NearestNeighbor} {
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			cmd := &Tree{Expr: "(lambda (x) y)", Strategy: s, Format: formatText}
			if err := cmd.Run(WithOutput(context.Background(), &out)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := out.String(); got != want {
				t.Errorf("expected\n%s\ngot\n%s", want, got)
			}
		})
	}
}

func TestTreeRunYAML(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cmd := &Tree{Expr: "x", Format: formatYAML}
	if err := cmd.Run(WithOutput(context.Background(), &out)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range []string{"input: x", "accepted: true", "symbol: S", "terminal: x"} {
		if !strings.Contains(out.String(), s) {
			t.Errorf("expected output to contain %q, got %q", s, out.String())
		}
	}
}

func TestTreeRunRejected(t *testing.T) {
	t.Parallel()

	tests := map[string]error{
		"(x":         lang.ErrRejected,
		"lambda(x)x": lang.ErrRejected,
		"  ":         lang.ErrEmptyInput,
	}

	for expr, want := range tests {
		var out bytes.Buffer

		err := (&Tree{Expr: expr, Format: formatText}).Run(WithOutput(context.Background(), &out))
		if !errors.Is(err, want) {
			t.Errorf("%q: expected %v, got %v", expr, want, err)
		}

		if out.Len() != 0 {
			t.Errorf("%q: expected no output, got %q", expr, out.String())
		}
	}
}

func TestTableRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		expr   string
		format string
		want   string
	}{
		{"csv", "x", formatCSV, ",0:x\n0:x,S\n"},
		{"csv_rejected", "x y", formatCSV, ",0:x,1:y\n0:x,S,\n1:y,,S\n"},
		{"json", "x", formatJSON, "[\n  {\n    \"start\": 0,\n    \"end\": 0,\n    \"text\": \"x\",\n    \"symbols\": [\n      \"S\"\n    ]\n  }\n]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			cmd := &Table{Expr: tt.expr, Format: tt.format}
			if err := cmd.Run(WithOutput(context.Background(), &out)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTableRunEmpty(t *testing.T) {
	t.Parallel()

	err := (&Table{Expr: "", Format: formatCSV}).Run(WithOutput(context.Background(), &bytes.Buffer{}))
	if !errors.Is(err, lang.ErrEmptyInput) {
		t.Errorf("expected %v, got %v", lang.ErrEmptyInput, err)
	}
}

func TestEncodeBadFormat(t *testing.T) {
	t.Parallel()

	err := encode(context.Background(), &bytes.Buffer{}, "toml", nil)
	if !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected %v, got %v", ErrBadFormat, err)
	}
}
