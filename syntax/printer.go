package syntax

import "strings"

const indentUnit = "    "

// Text renders the unit in canonical form, docs included: four-space
// indent steps on top of the unit's base indentation, one statement per
// line. The result replaces the unit's [DocsPos, Span.End) range when a
// file is spliced.
func (f *Func) Text() string {
	var pr printer
	pr.base = f.Indent
	pr.unit(f)
	return pr.b.String()
}

type printer struct {
	b     strings.Builder
	base  string
	depth int
}

func (pr *printer) w(parts ...string) {
	for _, s := range parts {
		pr.b.WriteString(s)
	}
}

func (pr *printer) nl() {
	pr.b.WriteByte('\n')
	pr.b.WriteString(pr.base)
	for i := 0; i < pr.depth; i++ {
		pr.b.WriteString(indentUnit)
	}
}

func (pr *printer) unit(f *Func) {
	if f.Docs != "" {
		pr.w(f.Docs)
		pr.nl()
	}
	pr.sig(&f.Sig)
	if f.Body == nil {
		pr.w(";")
		return
	}
	pr.w(" ")
	pr.block(f.Body)
}

func (pr *printer) sig(s *Signature) {
	if s.Vis != "" {
		pr.w(s.Vis, " ")
	}
	if s.Const {
		pr.w("const ")
	}
	if s.Async {
		pr.w("async ")
	}
	if s.Unsafe {
		pr.w("unsafe ")
	}
	if s.Extern != "" {
		pr.w(s.Extern, " ")
	}
	pr.w("fn ", s.Name, s.Generics, "(", s.Params, ")")
	if s.Ret != "" {
		pr.w(" -> ", s.Ret)
	}
	if s.Where != "" {
		pr.w(" ", s.Where)
	}
}

func (pr *printer) block(b *Block) {
	if len(b.Stmts) == 0 {
		pr.w("{}")
		return
	}
	pr.w("{")
	pr.depth++
	for _, st := range b.Stmts {
		pr.nl()
		pr.stmt(st)
	}
	pr.depth--
	pr.nl()
	pr.w("}")
}

func (pr *printer) stmt(st Stmt) {
	switch st := st.(type) {
	case *LetStmt:
		pr.w("let ", st.Pattern)
		if st.Type != "" {
			pr.w(": ", st.Type)
		}
		if st.Init != nil {
			pr.w(" = ")
			pr.expr(st.Init)
		}
		if st.Else != nil {
			pr.w(" else ")
			pr.block(st.Else)
		}
		pr.w(";")
	case *ExprStmt:
		pr.expr(st.X)
		if st.Semi {
			pr.w(";")
		}
	case *FuncStmt:
		pr.unit(st.Fn)
	case *RawStmt:
		pr.w(st.Text)
	case *EmptyStmt:
		pr.w(";")
	}
}

func (pr *printer) list(exprs []Expr) {
	for i, e := range exprs {
		if i > 0 {
			pr.w(", ")
		}
		pr.expr(e)
	}
}

func (pr *printer) expr(e Expr) {
	switch e := e.(type) {
	case *Await:
		pr.expr(e.X)
		pr.w(".await")
	case *Lit:
		pr.w(e.Text)
	case *Path:
		pr.w(e.Text)
	case *Ref:
		pr.w("&")
		if e.Mut {
			pr.w("mut ")
		}
		pr.expr(e.X)
	case *Unary:
		pr.w(e.Op)
		pr.expr(e.X)
	case *Binary:
		pr.expr(e.L)
		pr.w(" ", e.Op, " ")
		pr.expr(e.R)
	case *Range:
		if e.Low != nil {
			pr.expr(e.Low)
		}
		if e.Inclusive {
			pr.w("..=")
		} else {
			pr.w("..")
		}
		if e.High != nil {
			pr.expr(e.High)
		}
	case *Cast:
		pr.expr(e.X)
		pr.w(" as ", e.Type)
	case *Call:
		pr.expr(e.Fn)
		pr.w("(")
		pr.list(e.Args)
		pr.w(")")
	case *MethodCall:
		pr.expr(e.Recv)
		pr.w(".", e.Name, e.Generics, "(")
		pr.list(e.Args)
		pr.w(")")
	case *Field:
		pr.expr(e.X)
		pr.w(".", e.Name)
	case *Index:
		pr.expr(e.X)
		pr.w("[")
		pr.expr(e.Idx)
		pr.w("]")
	case *Try:
		pr.expr(e.X)
		pr.w("?")
	case *Paren:
		pr.w("(")
		pr.expr(e.X)
		pr.w(")")
	case *Tuple:
		pr.w("(")
		pr.list(e.Elems)
		if len(e.Elems) == 1 {
			pr.w(",")
		}
		pr.w(")")
	case *ArrayLit:
		pr.w("[")
		pr.list(e.Elems)
		if e.Repeat != nil {
			pr.w("; ")
			pr.expr(e.Repeat)
		}
		pr.w("]")
	case *StructLit:
		pr.structLit(e)
	case *BlockExpr:
		pr.block(e.Body)
	case *AsyncBlock:
		pr.w("async ")
		if e.Move {
			pr.w("move ")
		}
		pr.block(e.Body)
	case *UnsafeBlock:
		pr.w("unsafe ")
		pr.block(e.Body)
	case *If:
		pr.ifExpr(e)
	case *While:
		if e.Label != "" {
			pr.w(e.Label, ": ")
		}
		pr.w("while ")
		if e.Pattern != "" {
			pr.w("let ", e.Pattern, " = ")
		}
		pr.expr(e.Cond)
		pr.w(" ")
		pr.block(e.Body)
	case *Loop:
		if e.Label != "" {
			pr.w(e.Label, ": ")
		}
		pr.w("loop ")
		pr.block(e.Body)
	case *For:
		if e.Label != "" {
			pr.w(e.Label, ": ")
		}
		pr.w("for ", e.Pattern, " in ")
		pr.expr(e.Iter)
		pr.w(" ")
		pr.block(e.Body)
	case *Match:
		pr.matchExpr(e)
	case *Closure:
		if e.Async {
			pr.w("async ")
		}
		if e.Move {
			pr.w("move ")
		}
		pr.w("|", e.Params, "|")
		if e.Ret != "" {
			pr.w(" -> ", e.Ret)
		}
		pr.w(" ")
		pr.expr(e.Body)
	case *Macro:
		pr.w(e.Path, "!")
		switch e.Delim {
		case '(':
			pr.w("(", e.Raw, ")")
		case '[':
			pr.w("[", e.Raw, "]")
		case '{':
			pr.w("{", e.Raw, "}")
		}
	case *Return:
		pr.w("return")
		if e.X != nil {
			pr.w(" ")
			pr.expr(e.X)
		}
	case *Break:
		pr.w("break")
		if e.Label != "" {
			pr.w(" ", e.Label)
		}
		if e.X != nil {
			pr.w(" ")
			pr.expr(e.X)
		}
	case *Continue:
		pr.w("continue")
		if e.Label != "" {
			pr.w(" ", e.Label)
		}
	}
}

func (pr *printer) structLit(e *StructLit) {
	pr.w(e.Path, " {")
	wrote := false
	for i, fi := range e.Fields {
		if i == 0 {
			pr.w(" ")
		} else {
			pr.w(", ")
		}
		pr.w(fi.Name)
		if fi.Value != nil {
			pr.w(": ")
			pr.expr(fi.Value)
		}
		wrote = true
	}
	if e.Rest != nil {
		if wrote {
			pr.w(", ..")
		} else {
			pr.w(" ..")
		}
		pr.expr(e.Rest)
		wrote = true
	}
	if wrote {
		pr.w(" }")
	} else {
		pr.w("}")
	}
}

func (pr *printer) ifExpr(e *If) {
	pr.w("if ")
	if e.Pattern != "" {
		pr.w("let ", e.Pattern, " = ")
	}
	pr.expr(e.Cond)
	pr.w(" ")
	pr.block(e.Then)
	if e.Else != nil {
		pr.w(" else ")
		pr.expr(e.Else)
	}
}

func (pr *printer) matchExpr(e *Match) {
	pr.w("match ")
	pr.expr(e.X)
	pr.w(" ")
	if len(e.Arms) == 0 {
		pr.w("{}")
		return
	}
	pr.w("{")
	pr.depth++
	for _, arm := range e.Arms {
		pr.nl()
		pr.w(arm.Pattern)
		if arm.Guard != nil {
			pr.w(" if ")
			pr.expr(arm.Guard)
		}
		pr.w(" => ")
		pr.expr(arm.Body)
		pr.w(",")
	}
	pr.depth--
	pr.nl()
	pr.w("}")
}
