// Package unasync rewrites async Rust-syntax source into synchronous
// source.
//
// The same codebase can serve async and blocking callers when the
// blocking variant is generated rather than maintained by hand: write
// the async functions once, then let a build step clear the async
// qualifiers and unwrap the .await suspension points. This library is
// that build step.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	unasync/             Root package with the two transform entry points
//	├── syntax/          Function-unit lexer, parser and canonical printer
//	├── rewrite/         Structural rewriter: clears async, unwraps .await
//	├── textual/         Literal-substring fallback transform and its audit
//	├── generate/        File driver: feature toggle, matchers, splicing
//	├── errors/          Structured error types for diagnostics
//	└── cmd/unasync/     Command-line tool and interactive TUI
//
// # Quick Start
//
// Rewrite one function unit:
//
//	out, err := unasync.Source(`async fn fetch() -> String {
//	    get_string().await
//	}`)
//	// out == "fn fetch() -> String {\n    get_string()\n}"
//
// Drive a whole file with a feature toggle:
//
//	out, err := generate.File(src, generate.Options{
//	    Mode: generate.FromFeatures(features),
//	})
//
// # The Two Transforms
//
// The structural rewriter parses the unit, walks the tree, and prints
// it back: precedence survives, macro argument regions stay verbatim,
// and an .await inside one is left alone by policy. The textual
// fallback deletes the literal substrings "async" and ".await" with no
// structural awareness at all; it reaches where the rewriter will not,
// and corrupts identifiers that happen to contain those spellings. Use
// Source unless a macro argument forces Strip, and audit first.
package unasync
