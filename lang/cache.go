package lang

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"

	"github.com/ardnew/cykscope/lang/grammar"
)

// resultCache stores analyses keyed by (input hash, option bits).
//
//nolint:gochecknoglobals
var resultCache sync.Map

type cacheKey struct {
	hash uint64
	opts uint8
}

// cacheEntry holds a single analysis, computed once.
type cacheEntry struct {
	once  sync.Once
	input string
	res   *Result
	err   error
}

// WithCache enables memoization of results across calls for the default
// grammar. Retained tables and trees are shared between callers and must not
// be modified.
func WithCache(enable bool) Option {
	return func(o *options) {
		o.cache = enable
	}
}

// optionBits encodes the options that affect a result.
func (o options) optionBits() uint8 {
	bits := uint8(o.strategy) << 2
	if o.retainTable {
		bits |= 1
	}

	if o.retainTree {
		bits |= 2
	}

	return bits
}

func analyzeCached(ctx context.Context, input string, o options) (*Result, error) {
	if o.grammar != grammar.Lambda() {
		o.logger.TraceContext(ctx, "cache bypass", slog.String("reason", "custom grammar"))

		return analyze(ctx, input, o)
	}

	key := cacheKey{hash: xxh3.HashString(input), opts: o.optionBits()}

	value, hit := resultCache.LoadOrStore(key, &cacheEntry{input: input})

	entry, ok := value.(*cacheEntry)
	if !ok || entry.input != input {
		o.logger.TraceContext(ctx, "cache bypass", slog.String("reason", "hash collision"))

		return analyze(ctx, input, o)
	}

	o.logger.TraceContext(ctx, "cache lookup",
		slog.String("hash", strconv.FormatUint(key.hash, 16)),
		slog.Bool("cache_hit", hit),
	)

	entry.once.Do(func() {
		entry.res, entry.err = analyze(ctx, input, o)
	})

	if entry.err != nil {
		return nil, entry.err
	}

	res := *entry.res
	res.Tokens = slices.Clone(res.Tokens)
	res.Free = slices.Clone(res.Free)

	return &res, nil
}

// ClearCache removes all memoized results.
// This is primarily useful for testing or when memory needs to be reclaimed.
func ClearCache() {
	resultCache.Clear()
}
