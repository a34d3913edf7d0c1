package rewrite

import (
	"github.com/wippyai/unasync/syntax"
)

// Report describes what rewriting would change in one function unit.
type Report struct {
	// AsyncFns counts function-shaped units carrying the async
	// qualifier, nested function items included.
	AsyncFns int
	// Awaits counts structurally reachable suspension expressions.
	Awaits        int
	AsyncBlocks   int
	AsyncClosures int
	// OpaqueAwaits reports whether any .await is spelled inside a macro
	// argument region. The rewriter never touches those; callers that
	// need them removed have to restructure the code or fall back to
	// the textual transform.
	OpaqueAwaits bool
	NeedsRewrite bool
}

// Analyze walks f and reports whether rewriting would change it.
func Analyze(f *syntax.Func) *Report {
	a := &analyzer{}
	a.fn(f)
	return &Report{
		AsyncFns:      a.asyncFns,
		Awaits:        a.awaits,
		AsyncBlocks:   a.asyncBlocks,
		AsyncClosures: a.asyncClosures,
		OpaqueAwaits:  a.opaqueAwaits,
		NeedsRewrite:  a.asyncFns > 0 || a.awaits > 0 || a.asyncBlocks > 0 || a.asyncClosures > 0,
	}
}

type analyzer struct {
	asyncFns      int
	awaits        int
	asyncBlocks   int
	asyncClosures int
	opaqueAwaits  bool
}

func (a *analyzer) fn(f *syntax.Func) {
	if f.Sig.Async {
		a.asyncFns++
	}
	a.block(f.Body)
}

func (a *analyzer) block(b *syntax.Block) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		a.stmt(s)
	}
}

func (a *analyzer) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.LetStmt:
		a.expr(s.Init)
		a.block(s.Else)
	case *syntax.ExprStmt:
		a.expr(s.X)
	case *syntax.FuncStmt:
		a.fn(s.Fn)
	}
}

func (a *analyzer) expr(e syntax.Expr) {
	if e == nil {
		return
	}
	switch e := e.(type) {
	case *syntax.Await:
		a.awaits++
		a.expr(e.X)
	case *syntax.Ref:
		a.expr(e.X)
	case *syntax.Unary:
		a.expr(e.X)
	case *syntax.Binary:
		a.expr(e.L)
		a.expr(e.R)
	case *syntax.Range:
		a.expr(e.Low)
		a.expr(e.High)
	case *syntax.Cast:
		a.expr(e.X)
	case *syntax.Call:
		a.expr(e.Fn)
		a.exprs(e.Args)
	case *syntax.MethodCall:
		a.expr(e.Recv)
		a.exprs(e.Args)
	case *syntax.Field:
		a.expr(e.X)
	case *syntax.Index:
		a.expr(e.X)
		a.expr(e.Idx)
	case *syntax.Try:
		a.expr(e.X)
	case *syntax.Paren:
		a.expr(e.X)
	case *syntax.Tuple:
		a.exprs(e.Elems)
	case *syntax.ArrayLit:
		a.exprs(e.Elems)
		a.expr(e.Repeat)
	case *syntax.StructLit:
		for _, f := range e.Fields {
			a.expr(f.Value)
		}
		a.expr(e.Rest)
	case *syntax.BlockExpr:
		a.block(e.Body)
	case *syntax.AsyncBlock:
		a.asyncBlocks++
		a.block(e.Body)
	case *syntax.UnsafeBlock:
		a.block(e.Body)
	case *syntax.If:
		a.expr(e.Cond)
		a.block(e.Then)
		a.expr(e.Else)
	case *syntax.While:
		a.expr(e.Cond)
		a.block(e.Body)
	case *syntax.Loop:
		a.block(e.Body)
	case *syntax.For:
		a.expr(e.Iter)
		a.block(e.Body)
	case *syntax.Match:
		a.expr(e.X)
		for _, arm := range e.Arms {
			a.expr(arm.Guard)
			a.expr(arm.Body)
		}
	case *syntax.Closure:
		if e.Async {
			a.asyncClosures++
		}
		a.expr(e.Body)
	case *syntax.Macro:
		if rawHasAwait(e.Raw) {
			a.opaqueAwaits = true
		}
	case *syntax.Return:
		a.expr(e.X)
	case *syntax.Break:
		a.expr(e.X)
	}
}

func (a *analyzer) exprs(list []syntax.Expr) {
	for _, e := range list {
		a.expr(e)
	}
}

// rawHasAwait scans a macro argument region for a lexical ".await". The
// region tokenizes cleanly because it is a slice of already tokenized
// source.
func rawHasAwait(raw string) bool {
	toks, err := syntax.Tokenize(raw)
	if err != nil {
		return false
	}
	for i := 1; i < len(toks); i++ {
		if toks[i].Type == syntax.Ident && toks[i].Value == "await" &&
			toks[i-1].Type == syntax.Punct && toks[i-1].Value == "." {
			return true
		}
	}
	return false
}
