package generate

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/unasync/errors"
	"github.com/wippyai/unasync/rewrite"
	"github.com/wippyai/unasync/syntax"
	"github.com/wippyai/unasync/textual"
)

// Mode is the feature toggle deciding whether units are rewritten at all.
type Mode int

const (
	// ModeSync applies exactly one transform per unit that needs it.
	ModeSync Mode = iota
	// ModeAsync keeps the asynchronous code: input passes through
	// byte-identical.
	ModeAsync
)

func (m Mode) String() string {
	if m == ModeAsync {
		return "async"
	}
	return "sync"
}

// ParseMode converts a mode name from configuration into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "sync":
		return ModeSync, nil
	case "async":
		return ModeAsync, nil
	}
	return ModeSync, errors.InvalidInput(errors.PhaseGenerate, "mode must be sync or async, got "+strconv.Quote(s))
}

// FromFeatures returns the mode a build feature list selects: the
// presence of the "async" feature keeps units asynchronous, anything
// else selects the synchronous rewrite.
func FromFeatures(features []string) Mode {
	for _, f := range features {
		if f == "async" {
			return ModeAsync
		}
	}
	return ModeSync
}

// Options configures how units are transformed.
type Options struct {
	// Mode is the feature toggle. ModeAsync disables all transforms.
	Mode Mode
	// Textual selects units handed to the textual fallback instead of
	// the structural rewriter. Nil applies the structural rewriter
	// everywhere.
	Textual UnitMatcher
	// Only restricts transforms to matched units. Nil transforms every
	// unit that needs one.
	Only UnitMatcher
	// Cache memoizes per-unit results between calls. Optional.
	Cache *Cache
}

// File rewrites every function-shaped unit of a source file that needs
// it and returns the reassembled file. Text between units is never
// touched, and a file with nothing to rewrite comes back byte-identical.
func File(src string, opts Options) (string, error) {
	if opts.Mode == ModeAsync {
		return src, nil
	}
	file, err := syntax.ParseFile(src)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	last := 0
	for _, fn := range file.Funcs {
		out, ok := transformUnit(src, fn, opts)
		if !ok {
			continue
		}
		b.WriteString(src[last:fn.DocsPos])
		b.WriteString(out)
		last = fn.Span.End
	}
	b.WriteString(src[last:])
	return b.String(), nil
}

// Apply transforms a single function-shaped unit. Input that is not
// function-shaped fails with an error naming the item kind; a unit with
// nothing to rewrite comes back byte-identical.
func Apply(src string, opts Options) (string, error) {
	if opts.Mode == ModeAsync {
		return src, nil
	}
	fn, err := syntax.ParseFunc(src)
	if err != nil {
		return "", err
	}
	out, ok := transformUnit(src, fn, opts)
	if !ok {
		return src, nil
	}
	var b strings.Builder
	b.WriteString(src[:fn.DocsPos])
	b.WriteString(out)
	b.WriteString(src[fn.Span.End:])
	return b.String(), nil
}

// transformUnit produces the replacement text for fn's [DocsPos,
// Span.End) range, or ok=false when the unit stays as written.
func transformUnit(src string, fn *syntax.Func, opts Options) (string, bool) {
	if opts.Only != nil && !opts.Only.MatchUnit(fn.Name()) {
		return "", false
	}
	unit := src[fn.DocsPos:fn.Span.End]
	if opts.Textual != nil && opts.Textual.MatchUnit(fn.Name()) {
		unitLine := 1 + strings.Count(src[:fn.DocsPos], "\n")
		for _, h := range textual.Audit(unit) {
			Logger().Warn("textual strip will corrupt a token",
				zap.String("unit", fn.Name()),
				zap.String("token", h.Token),
				zap.Int("line", unitLine+h.Line-1))
		}
		return memoized(opts.Cache, kindTextual, fn.Indent, unit, func() string {
			return textual.Strip(unit)
		}), true
	}
	report := rewrite.Analyze(fn)
	if report.OpaqueAwaits {
		Logger().Warn("await inside macro arguments is out of the rewriter's reach",
			zap.String("unit", fn.Name()),
			zap.Int("line", fn.Line))
	}
	if !report.NeedsRewrite {
		return "", false
	}
	Logger().Debug("rewriting unit",
		zap.String("unit", fn.Name()),
		zap.Int("line", fn.Line),
		zap.Int("awaits", report.Awaits),
		zap.Int("async_blocks", report.AsyncBlocks),
		zap.Int("async_closures", report.AsyncClosures))
	return memoized(opts.Cache, kindStructural, fn.Indent, unit, func() string {
		return rewrite.Func(fn).Text()
	}), true
}

func memoized(c *Cache, kind byte, indent, unit string, compute func() string) string {
	if c == nil {
		return compute()
	}
	key := unitKey(kind, indent, unit)
	if out, ok := c.lookup(key); ok {
		return out
	}
	out := compute()
	c.store(key, out)
	return out
}
