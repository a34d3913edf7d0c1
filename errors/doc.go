// Package errors provides structured error types for the unasync toolchain.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the source line and the name of the
// function unit being processed when those are known.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindSyntax).
//		Line(12).
//		Unit("fetch_user").
//		Detail("unterminated block").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedItem(1, "struct")
//	err := errors.UnexpectedToken(3, "'{'", "';'")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
