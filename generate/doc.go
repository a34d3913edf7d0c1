// Package generate drives the rewrite over source files at build time.
//
// # Overview
//
// The core transforms work one function unit at a time; this package is
// the host plumbing around them. File parses a source file, picks out
// every function-shaped unit, applies the configured transform to the
// units that need one, and splices the replacements back over their
// original byte ranges. Everything between units, and every unit that is
// already synchronous, is preserved byte for byte.
//
// # Feature Toggle
//
// Mode mirrors the build-feature switch of the original workflow: when a
// build wants the asynchronous code, nothing may change.
//
//	out, err := generate.File(src, generate.Options{
//	    Mode: generate.FromFeatures(features),
//	})
//
// With ModeAsync, out == src holds byte-identical; with ModeSync each
// unit gets exactly one transform: the structural rewriter by default,
// the textual fallback for units the Textual matcher selects.
//
// # Selecting Units
//
// Matchers choose units by name, the same way the build-time attribute
// would be placed on individual functions:
//
//	opts := generate.Options{
//	    Textual: generate.NewNameMatcher([]string{"print_status"}),
//	    Only:    generate.NewWildcardMatcher([]string{"fetch_*"}),
//	}
//
// # Caching
//
// An optional Cache memoizes results keyed by unit content, indentation
// and transform kind. Transforms are pure, so entries never invalidate
// and hits are independent of invocation order.
//
// Progress and hazard reporting goes through a package logger that is
// a no-op unless SetLogger installs one.
package generate
