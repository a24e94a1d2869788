package cmd

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/cykscope/lang"
	"github.com/ardnew/cykscope/log"
)

type contextKey struct{}

// WithContext returns a new context.Context carrying ktx, from which commands
// read the parsed flag values and kong variables.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type outputKey struct{}

// WithOutput returns a new context.Context whose commands write their
// results to w instead of standard output.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

type analyzeOptionsKey struct{}

// WithAnalyzeOptions returns a new context.Context whose commands apply opts
// to every analysis after the options taken from their flags.
func WithAnalyzeOptions(ctx context.Context, opts ...lang.Option) context.Context {
	return context.WithValue(ctx, analyzeOptionsKey{}, opts)
}

// analyzeOptions appends the options stored by WithAnalyzeOptions to opts.
func analyzeOptions(ctx context.Context, opts ...lang.Option) []lang.Option {
	extra, _ := ctx.Value(analyzeOptionsKey{}).([]lang.Option)

	return append(opts, extra...)
}

type sourceFilesKey struct{}

// SourceFiles is the set of case inputs named on the command line.
type SourceFiles interface {
	IsZero() bool
	Stdin() io.Reader
	All() iter.Seq2[string, io.Reader]
}

// stdinSource names standard input on the command line.
const stdinSource = "-"

// sourceFiles holds the resolved paths of the named inputs. Files are opened
// only while they are being read.
type sourceFiles struct {
	paths    []string
	hasStdin bool
}

func (s *sourceFiles) IsZero() bool { return len(s.paths) == 0 && !s.hasStdin }

// Stdin returns os.Stdin if it was named as a source, or nil otherwise.
func (s *sourceFiles) Stdin() io.Reader {
	if s.hasStdin {
		return os.Stdin
	}

	return nil
}

// All yields each source with its name in order, stdin (named "-") last.
// A file is closed once the loop body for it returns; files that can no
// longer be opened are logged and skipped.
func (s *sourceFiles) All() iter.Seq2[string, io.Reader] {
	return func(yield func(string, io.Reader) bool) {
		for _, path := range s.paths {
			file, err := os.Open(path)
			if err != nil {
				log.Warn("skipping source", slog.String("path", path), slog.Any("error", err))

				continue
			}

			more := yield(path, file)

			file.Close()

			if !more {
				return
			}
		}

		if s.hasStdin {
			yield(stdinSource, os.Stdin)
		}
	}
}

// fileKey identifies a file by device and inode, so that one file named
// through different paths or links is read once.
type fileKey struct {
	dev uint64
	ino uint64
}

// WithSourceFiles returns a new context.Context containing the given source
// files, deduplicated by file identity. Every "-" collapses into a single
// stdin source read after the regular files.
func WithSourceFiles(ctx context.Context, sources []string) context.Context {
	return context.WithValue(ctx, sourceFilesKey{}, buildSourceFiles(sources))
}

func buildSourceFiles(sources []string) SourceFiles {
	if len(sources) == 0 {
		return nil
	}

	srcs := sourceFiles{paths: make([]string, 0, len(sources))}
	seen := make(map[fileKey]struct{})

	stdinInfo, _ := os.Stdin.Stat()
	stdinKey, _ := makeFileKey(stdinInfo)

	for _, src := range sources {
		if src == stdinSource {
			seen[stdinKey] = struct{}{}

			continue
		}

		if path, ok := resolveUnique(src, seen); ok {
			srcs.paths = append(srcs.paths, path)
		}
	}

	// A file that is stdin itself counts as "-".
	_, srcs.hasStdin = seen[stdinKey]

	if srcs.IsZero() {
		return nil
	}

	return &srcs
}

// resolveUnique returns the real path of a file not yet in seen, and records
// it. Missing files and duplicates report false.
func resolveUnique(path string, seen map[fileKey]struct{}) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", false
	}

	key, ok := makeFileKey(info)
	if !ok {
		return "", false
	}

	if _, dup := seen[key]; dup {
		return "", false
	}

	seen[key] = struct{}{}

	return resolved, true
}

func makeFileKey(info os.FileInfo) (fileKey, bool) {
	if info == nil {
		return fileKey{}, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileKey{}, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}

func sourceFilesFrom(ctx context.Context) SourceFiles {
	r, _ := ctx.Value(sourceFilesKey{}).(SourceFiles)

	return r
}
