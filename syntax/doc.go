// Package syntax provides lexing, parsing and printing for the
// function-level subset of Rust surface syntax that asynchrony removal
// operates on.
//
// The package deliberately parses less than a compiler front end would.
// Expression structure is modeled fully, because that is where suspension
// expressions live, while every region that cannot contain one is kept as
// verbatim source text: generic parameter lists, function parameters,
// return types, where clauses, patterns, doc comments, attributes and
// macro argument tokens. Verbatim regions survive a parse/print round
// trip byte for byte, and the rewriter never needs to understand them.
//
// # Parsing
//
// Parse a single function-shaped unit (a free function, a method, or a
// trait method signature):
//
//	f, err := syntax.ParseFunc(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Parse a whole file, collecting every function found at the top level
// and inside trait, impl, mod and extern blocks:
//
//	file, err := syntax.ParseFile(src)
//	for _, f := range file.Funcs {
//	    fmt.Println(f.Name(), f.Sig.Async)
//	}
//
// Input that is not function-shaped is rejected by ParseFunc with an
// error naming the item kind found, so callers can report exactly what
// they were given.
//
// # Opaque Regions
//
// Macro invocations are the hard boundary: the token grammar inside
// path!(...) belongs to the invoked macro, not to the language, so the
// parser records the argument region as raw text and nothing ever
// descends into it. An .await spelled inside a macro argument is part of
// that macro's vocabulary and is preserved untouched.
//
// # Printing
//
// Func.Text renders a unit in canonical form: four-space indent steps on
// top of the unit's base indentation, one statement per line. Printing a
// file is a splicing operation, each rewritten unit replaces its recorded
// byte span and all surrounding text keeps its original bytes.
package syntax
