package rewrite

import (
	"github.com/wippyai/unasync/syntax"
)

// Func returns a synchronous copy of f: the async qualifier is cleared
// from the signature and every structurally reachable suspension
// expression in the body is replaced by its inner expression, at every
// depth. The unwrap is structural, so grouping and operator precedence
// of the inner expression survive exactly as written.
//
// Async blocks are demoted to plain blocks and async closures lose their
// qualifier the same way the enclosing function does. Macro argument
// regions are copied verbatim: an .await spelled inside one belongs to
// the macro's own grammar and is left alone.
//
// The input tree is not modified. Identical input always produces
// identical output.
func Func(f *syntax.Func) *syntax.Func {
	out := *f
	out.Sig.Async = false
	out.Body = block(f.Body)
	return &out
}

// Source parses src as a single function or trait method, rewrites it and
// returns the replacement text. Doc comments and attributes ride along
// unchanged ahead of the signature. Anything that is not function-shaped
// fails with an error naming the item kind.
func Source(src string) (string, error) {
	f, err := syntax.ParseFunc(src)
	if err != nil {
		return "", err
	}
	return Func(f).Text(), nil
}

func block(b *syntax.Block) *syntax.Block {
	if b == nil {
		return nil
	}
	out := &syntax.Block{Stmts: make([]syntax.Stmt, len(b.Stmts))}
	for i, s := range b.Stmts {
		out.Stmts[i] = stmt(s)
	}
	return out
}

func stmt(s syntax.Stmt) syntax.Stmt {
	switch s := s.(type) {
	case *syntax.LetStmt:
		return &syntax.LetStmt{
			Pattern: s.Pattern,
			Type:    s.Type,
			Init:    expr(s.Init),
			Else:    block(s.Else),
		}
	case *syntax.ExprStmt:
		return &syntax.ExprStmt{X: expr(s.X), Semi: s.Semi}
	case *syntax.FuncStmt:
		return &syntax.FuncStmt{Fn: Func(s.Fn)}
	case *syntax.RawStmt:
		return &syntax.RawStmt{Text: s.Text}
	case *syntax.EmptyStmt:
		return &syntax.EmptyStmt{}
	default:
		return s
	}
}

// expr rewrites one expression node. One case per shape; shapes that hold
// verbatim text (paths, literals, macro arguments, patterns) pass it
// through untouched, every other case recurses into each child position
// the shape exposes.
func expr(e syntax.Expr) syntax.Expr {
	if e == nil {
		return nil
	}
	switch e := e.(type) {
	case *syntax.Await:
		return expr(e.X)
	case *syntax.Lit:
		return &syntax.Lit{Text: e.Text}
	case *syntax.Path:
		return &syntax.Path{Text: e.Text}
	case *syntax.Ref:
		return &syntax.Ref{Mut: e.Mut, X: expr(e.X)}
	case *syntax.Unary:
		return &syntax.Unary{Op: e.Op, X: expr(e.X)}
	case *syntax.Binary:
		return &syntax.Binary{Op: e.Op, L: expr(e.L), R: expr(e.R)}
	case *syntax.Range:
		return &syntax.Range{Low: expr(e.Low), High: expr(e.High), Inclusive: e.Inclusive}
	case *syntax.Cast:
		return &syntax.Cast{X: expr(e.X), Type: e.Type}
	case *syntax.Call:
		return &syntax.Call{Fn: expr(e.Fn), Args: exprs(e.Args)}
	case *syntax.MethodCall:
		return &syntax.MethodCall{
			Recv:     expr(e.Recv),
			Name:     e.Name,
			Generics: e.Generics,
			Args:     exprs(e.Args),
		}
	case *syntax.Field:
		return &syntax.Field{X: expr(e.X), Name: e.Name}
	case *syntax.Index:
		return &syntax.Index{X: expr(e.X), Idx: expr(e.Idx)}
	case *syntax.Try:
		return &syntax.Try{X: expr(e.X)}
	case *syntax.Paren:
		return &syntax.Paren{X: expr(e.X)}
	case *syntax.Tuple:
		return &syntax.Tuple{Elems: exprs(e.Elems)}
	case *syntax.ArrayLit:
		return &syntax.ArrayLit{Elems: exprs(e.Elems), Repeat: expr(e.Repeat)}
	case *syntax.StructLit:
		out := &syntax.StructLit{Path: e.Path, Rest: expr(e.Rest)}
		if len(e.Fields) > 0 {
			out.Fields = make([]syntax.FieldInit, len(e.Fields))
			for i, f := range e.Fields {
				out.Fields[i] = syntax.FieldInit{Name: f.Name, Value: expr(f.Value)}
			}
		}
		return out
	case *syntax.BlockExpr:
		return &syntax.BlockExpr{Body: block(e.Body)}
	case *syntax.AsyncBlock:
		// The async wrapper goes away entirely; a capture qualifier has
		// no meaning on a plain block.
		return &syntax.BlockExpr{Body: block(e.Body)}
	case *syntax.UnsafeBlock:
		return &syntax.UnsafeBlock{Body: block(e.Body)}
	case *syntax.If:
		return &syntax.If{
			Pattern: e.Pattern,
			Cond:    expr(e.Cond),
			Then:    block(e.Then),
			Else:    expr(e.Else),
		}
	case *syntax.While:
		return &syntax.While{
			Label:   e.Label,
			Pattern: e.Pattern,
			Cond:    expr(e.Cond),
			Body:    block(e.Body),
		}
	case *syntax.Loop:
		return &syntax.Loop{Label: e.Label, Body: block(e.Body)}
	case *syntax.For:
		return &syntax.For{
			Label:   e.Label,
			Pattern: e.Pattern,
			Iter:    expr(e.Iter),
			Body:    block(e.Body),
		}
	case *syntax.Match:
		out := &syntax.Match{X: expr(e.X)}
		if len(e.Arms) > 0 {
			out.Arms = make([]syntax.MatchArm, len(e.Arms))
			for i, arm := range e.Arms {
				out.Arms[i] = syntax.MatchArm{
					Pattern: arm.Pattern,
					Guard:   expr(arm.Guard),
					Body:    expr(arm.Body),
				}
			}
		}
		return out
	case *syntax.Closure:
		return &syntax.Closure{
			Move:   e.Move,
			Async:  false,
			Params: e.Params,
			Ret:    e.Ret,
			Body:   expr(e.Body),
		}
	case *syntax.Macro:
		return &syntax.Macro{Path: e.Path, Delim: e.Delim, Raw: e.Raw}
	case *syntax.Return:
		return &syntax.Return{X: expr(e.X)}
	case *syntax.Break:
		return &syntax.Break{Label: e.Label, X: expr(e.X)}
	case *syntax.Continue:
		return &syntax.Continue{Label: e.Label}
	default:
		return e
	}
}

func exprs(list []syntax.Expr) []syntax.Expr {
	if len(list) == 0 {
		return nil
	}
	out := make([]syntax.Expr, len(list))
	for i, e := range list {
		out[i] = expr(e)
	}
	return out
}
