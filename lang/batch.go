package lang

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// AnalyzeAll analyzes cases with at most jobs analyses in flight and returns
// the results in case order. A jobs value less than 1 means no limit.
//
// The first error cancels the remaining cases and is returned with a nil
// slice.
func AnalyzeAll(
	ctx context.Context,
	cases []Case,
	jobs int,
	opts ...Option,
) ([]*Result, error) {
	o := makeOptions(opts...)
	results := make([]*Result, len(cases))

	if jobs < 1 {
		jobs = -1
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)

	for i, c := range cases {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var (
				res *Result
				err error
			)

			if o.cache {
				res, err = analyzeCached(ctx, c.Input, o)
			} else {
				res, err = analyze(ctx, c.Input, o)
			}

			if err != nil {
				return WrapError(err).With(slog.Int("case", c.Number))
			}

			results[i] = res

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
