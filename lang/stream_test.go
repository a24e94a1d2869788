package lang

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestReadCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{
			name:  "two cases",
			input: "2\n(a b)\nx\n",
			want:  []string{"(a b)", "x"},
		},
		{
			name:  "crlf",
			input: "2\r\n(a b)\r\nx\r\n",
			want:  []string{"(a b)", "x"},
		},
		{
			name:  "empty line is a case",
			input: "3\nx\n\ny",
			want:  []string{"x", "", "y"},
		},
		{
			name:  "extra lines ignored",
			input: " 1 \nx\ny\n",
			want:  []string{"x"},
		},
		{
			name:    "truncated",
			input:   "3\nx\ny\n",
			want:    []string{"x", "y"},
			wantErr: ErrTruncatedInput,
		},
		{name: "no input", input: "", wantErr: ErrCaseCount},
		{name: "not a number", input: "two\nx\n", wantErr: ErrCaseCount},
		{name: "zero", input: "0\n", wantErr: ErrCaseCount},
		{name: "negative", input: "-1\nx\n", wantErr: ErrCaseCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cases, err := ReadCases(context.Background(), strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}

			if len(cases) != len(tt.want) {
				t.Fatalf("expected %d cases, got %d", len(tt.want), len(cases))
			}

			for i, c := range cases {
				if c.Number != i+1 {
					t.Errorf("expected case %d, got %d", i+1, c.Number)
				}

				if c.Input != tt.want[i] {
					t.Errorf("expected %q, got %q", tt.want[i], c.Input)
				}
			}
		})
	}
}

func TestCases_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadCases(ctx, strings.NewReader("1\nx\n"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFormatCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		k    int
		free []string
		want string
	}{
		{k: 1, free: []string{"x"}, want: "Case #1: x"},
		{k: 2, free: []string{}, want: "Case #2: "},
		{k: 10, free: []string{"x", "y", "x"}, want: "Case #10: x y x"},
	}

	for _, tt := range tests {
		if got := FormatCase(tt.k, tt.free); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}

	if got := (Case{Number: 3}).Line([]string{"a"}); got != "Case #3: a" {
		t.Errorf("expected %q, got %q", "Case #3: a", got)
	}
}
