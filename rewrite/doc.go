// Package rewrite converts async functions into synchronous ones.
//
// # Overview
//
// The rewriter takes one function-shaped unit (a free function, a method
// or a trait method signature), clears the async qualifier from its
// signature and unwraps every suspension expression in its body:
//
//	let string = get_string().await;    becomes    let string = get_string();
//
// The unwrap happens on the tree, not the text, so precedence and
// grouping of the inner expression are preserved at any nesting depth.
// Async blocks become plain blocks, and async closures are rewritten the
// same way their enclosing function is: qualifier cleared, body unwrapped.
//
// # Opaque Regions
//
// Macro argument regions are never entered. A suspension expression
// inside one, such as
//
//	println!("{}", get_string().await);
//
// keeps its .await, silently. Analyze flags these via OpaqueAwaits so
// callers can restructure the code (bind the awaited value to a local
// first) or hand the unit to the textual fallback instead.
//
// # Usage
//
//	out, err := rewrite.Source(src)
//
// parses, rewrites and prints in one step. Callers that already hold a
// parsed unit use Func, which never fails and never modifies its input:
//
//	f, _ := syntax.ParseFunc(src)
//	if rewrite.Analyze(f).NeedsRewrite {
//	    src = rewrite.Func(f).Text()
//	}
package rewrite
