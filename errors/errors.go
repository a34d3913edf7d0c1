package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse    Phase = "parse"    // source tokenizing and tree building
	PhaseRewrite  Phase = "rewrite"  // structural transformation
	PhaseGenerate Phase = "generate" // file assembly and toggle dispatch
)

// Kind categorizes the error
type Kind string

const (
	KindSyntax          Kind = "syntax"           // malformed source text
	KindUnsupportedItem Kind = "unsupported_item" // input is not a function-shaped unit
	KindUnexpectedToken Kind = "unexpected_token"
	KindInvalidInput    Kind = "invalid_input"
)

// Error is the structured error type used throughout the rewriter.
// A rewrite either completes or fails with one of these; no partial
// output accompanies an Error.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Unit   string // function name, when known
	Detail string
	Line   int // 1-based source line, 0 when unknown
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.Unit != "" {
		b.WriteString(" in ")
		b.WriteString(e.Unit)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Line sets the 1-based source line
func (b *Builder) Line(line int) *Builder {
	b.err.Line = line
	return b
}

// Unit sets the function name the error belongs to
func (b *Builder) Unit(name string) *Builder {
	b.err.Unit = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Syntax creates a syntax error at a source line
func Syntax(line int, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindSyntax,
		Line:   line,
		Detail: detail,
	}
}

// UnexpectedToken creates an unexpected-token error
func UnexpectedToken(line int, want, got string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnexpectedToken,
		Line:   line,
		Detail: fmt.Sprintf("expected %s, got %s", want, got),
	}
}

// UnsupportedItem creates the usage error raised when the annotated input
// is not a function-shaped unit. The item kind names what was found instead.
func UnsupportedItem(line int, itemKind string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnsupportedItem,
		Line:   line,
		Detail: fmt.Sprintf("only functions and trait methods are supported, found %s", itemKind),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
