package lang

import (
	"bufio"
	"context"
	"io"
	"iter"
	"log/slog"
	"strconv"
	"strings"

	"github.com/klauspost/readahead"
)

// Case is a numbered expression read from case-count input.
type Case struct {
	Number int
	Input  string
}

// Line returns the output line for the case's free variable occurrences.
func (c Case) Line(free []string) string {
	return FormatCase(c.Number, free)
}

// FormatCase returns "Case #k: " followed by the space-separated free list.
func FormatCase(k int, free []string) string {
	return "Case #" + strconv.Itoa(k) + ": " + strings.Join(free, " ")
}

// Cases returns the cases of r, which holds a positive case count on its
// first line followed by one expression per line. Cases are numbered from 1.
//
// The sequence yields a nil-case error and stops on the first failure:
// [ErrCaseCount] for a missing or invalid count, [ErrReadInput] for a read
// error, [ErrTruncatedInput] if r ends early, or the context's error if ctx
// is done. Lines after the last announced case are ignored.
func Cases(ctx context.Context, r io.Reader) iter.Seq2[Case, error] {
	return func(yield func(Case, error) bool) {
		// Read-ahead fills the next buffer while the consumer handles the
		// lines already scanned.
		ra := readahead.NewReader(r)
		defer ra.Close()

		sc := bufio.NewScanner(ra)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				yield(Case{}, ErrReadInput.Wrap(err))

				return
			}

			yield(Case{}, ErrCaseCount.With(slog.String("reason", "no input")))

			return
		}

		text := strings.TrimSpace(sc.Text())

		count, err := strconv.Atoi(text)
		if err != nil || count <= 0 {
			e := ErrCaseCount.With(slog.String("count", text))
			if err != nil {
				e = e.Wrap(err)
			}

			yield(Case{}, e)

			return
		}

		for k := 1; k <= count; k++ {
			if err := ctx.Err(); err != nil {
				yield(Case{}, err)

				return
			}

			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					yield(Case{}, ErrReadInput.Wrap(err).With(slog.Int("case", k)))

					return
				}

				yield(Case{}, ErrTruncatedInput.With(
					slog.Int("expected", count),
					slog.Int("actual", k-1),
				))

				return
			}

			c := Case{Number: k, Input: strings.TrimRight(sc.Text(), "\r")}
			if !yield(c, nil) {
				return
			}
		}
	}
}

// ReadCases collects [Cases]. On error it returns the cases read before the
// failure together with the error.
func ReadCases(ctx context.Context, r io.Reader) ([]Case, error) {
	var cases []Case

	for c, err := range Cases(ctx, r) {
		if err != nil {
			return cases, err
		}

		cases = append(cases, c)
	}

	return cases, nil
}
