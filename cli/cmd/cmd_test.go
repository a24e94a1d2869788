package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// readSources concatenates every source in order, separating them with "|".
func readSources(t *testing.T, srcs SourceFiles) string {
	t.Helper()

	var part []string

	for name, r := range srcs.All() {
		data, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("reading source %s: %v", name, err)
		}

		part = append(part, string(data))
	}

	return strings.Join(part, "|")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

// pipeStdin replaces os.Stdin with a pipe holding content.
func pipeStdin(t *testing.T, content string) {
	t.Helper()

	old := os.Stdin

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	os.Stdin = r

	t.Cleanup(func() {
		os.Stdin = old
		r.Close()
	})

	go func() {
		defer w.Close()
		io.WriteString(w, content)
	}()
}

func TestWithSourceFilesEmpty(t *testing.T) {
	for _, sources := range [][]string{nil, {}} {
		ctx := WithSourceFiles(context.Background(), sources)
		if srcs := sourceFilesFrom(ctx); srcs != nil {
			t.Errorf("expected nil sources for %v, got %v", sources, srcs)
		}
	}
}

func TestWithSourceFiles(t *testing.T) {
	dir := t.TempDir()

	first := writeFile(t, dir, "first.in", "first")
	second := writeFile(t, dir, "second.in", "second")

	link := filepath.Join(dir, "link.in")
	if err := os.Symlink(first, link); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		sources []string
		want    string
	}{
		{"single", []string{first}, "first"},
		{"ordered", []string{second, first}, "second|first"},
		{"duplicate", []string{first, first, first}, "first"},
		{"symlink", []string{first, link}, "first"},
		{"missing_skipped", []string{"/nonexistent/a.in", first, "/nonexistent/b.in"}, "first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srcs := sourceFilesFrom(WithSourceFiles(context.Background(), tt.sources))
			if srcs == nil {
				t.Fatal("expected sources, got nil")
			}

			if got := readSources(t, srcs); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestWithSourceFilesRelative(t *testing.T) {
	dir := t.TempDir()
	abs := writeFile(t, dir, "case.in", "content")

	t.Chdir(dir)

	srcs := sourceFilesFrom(WithSourceFiles(context.Background(), []string{"case.in", abs}))
	if srcs == nil {
		t.Fatal("expected sources, got nil")
	}

	if got := readSources(t, srcs); got != "content" {
		t.Errorf("expected %q, got %q", "content", got)
	}
}

func TestWithSourceFilesAllMissing(t *testing.T) {
	ctx := WithSourceFiles(context.Background(), []string{
		"/nonexistent/path/a.in",
		"/nonexistent/path/b.in",
	})

	if srcs := sourceFilesFrom(ctx); srcs != nil {
		t.Errorf("expected nil sources, got %v", srcs)
	}
}

func TestWithSourceFilesStdinLast(t *testing.T) {
	file := writeFile(t, t.TempDir(), "file.in", "file")

	pipeStdin(t, "stdin")

	srcs := sourceFilesFrom(WithSourceFiles(context.Background(), []string{"-", file, "-"}))
	if srcs == nil {
		t.Fatal("expected sources, got nil")
	}

	if srcs.Stdin() == nil {
		t.Error("expected stdin to be included")
	}

	var names []string
	for name := range srcs.All() {
		names = append(names, name)
	}

	if len(names) != 2 || names[1] != stdinSource {
		t.Fatalf("expected stdin named %q last, got %v", stdinSource, names)
	}

	if got := readSources(t, srcs); got != "file|stdin" {
		t.Errorf("expected %q, got %q", "file|stdin", got)
	}
}

func TestOutputFrom(t *testing.T) {
	t.Parallel()

	if w := outputFrom(context.Background()); w != os.Stdout {
		t.Errorf("expected os.Stdout, got %v", w)
	}

	var buf bytes.Buffer
	if w := outputFrom(WithOutput(context.Background(), &buf)); w != &buf {
		t.Errorf("expected buffer, got %v", w)
	}
}
