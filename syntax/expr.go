package syntax

import (
	"github.com/wippyai/unasync/errors"
)

// Operator binding powers, loosest first. Postfix operators (call,
// method, field, index, ?, .await) always bind tighter than any prefix
// or infix operator and are handled outside the climber.
const (
	precMin = iota
	precAssign
	precRange
	precOr
	precAnd
	precCmp
	precBitOr
	precBitXor
	precBitAnd
	precShift
	precAdd
	precMul
	precCast
)

var binPrec = map[string]int{
	"||": precOr,
	"&&": precAnd,
	"==": precCmp, "!=": precCmp, "<": precCmp, ">": precCmp, "<=": precCmp, ">=": precCmp,
	"|": precBitOr,
	"^": precBitXor,
	"&": precBitAnd,
	"<<": precShift, ">>": precShift,
	"+": precAdd, "-": precAdd,
	"*": precMul, "/": precMul, "%": precMul,
}

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, ">>=": true,
}

// parseBlock parses a brace-delimited statement sequence. Struct literal
// suppression does not cross a brace boundary.
func (p *parser) parseBlock() (*Block, error) {
	open, err := p.expect("{")
	if err != nil {
		return nil, err
	}
	saved := p.noStruct
	p.noStruct = false
	defer func() { p.noStruct = saved }()

	blk := &Block{}
	for {
		if p.peek().Type == EOF {
			return nil, errors.Syntax(open.Line, "unterminated block")
		}
		docs, docsPos, err := p.parseDocs()
		if err != nil {
			return nil, err
		}
		if p.funcAhead() {
			f, err := p.parseFunc(docs, docsPos)
			if err != nil {
				return nil, err
			}
			blk.Stmts = append(blk.Stmts, &FuncStmt{Fn: f})
			continue
		}
		if docs != "" {
			// Statement attributes and stray doc lines ride along as raw
			// text on their own line.
			blk.Stmts = append(blk.Stmts, &RawStmt{Text: docs})
		}
		if p.eat("}") {
			return blk, nil
		}
		st, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		blk.Stmts = append(blk.Stmts, st)
	}
}

func (p *parser) parseStmt() (Stmt, error) {
	t := p.peek()
	switch t.Value {
	case ";":
		p.next()
		return &EmptyStmt{}, nil
	case "let":
		return p.parseLet()
	case "impl", "trait", "mod":
		return nil, errors.Syntax(t.Line, "%s items inside function bodies are not supported", t.Value)
	case "use", "static", "type", "struct", "enum", "macro_rules":
		from := t.Pos
		if err := p.skipItem(); err != nil {
			return nil, err
		}
		return &RawStmt{Text: p.src[from:p.prevEnd()]}, nil
	case "union":
		// Contextual keyword: an item only when a braced or generic type
		// name follows, otherwise a plain identifier expression.
		if p.tokAt(p.pos+1).Type == Ident {
			next := p.tokAt(p.pos + 2).Value
			if next == "{" || next == "<" {
				from := t.Pos
				if err := p.skipItem(); err != nil {
					return nil, err
				}
				return &RawStmt{Text: p.src[from:p.prevEnd()]}, nil
			}
		}
	case "const":
		// A const block cannot suspend, so it stays verbatim too.
		from := t.Pos
		if p.tokAt(p.pos+1).Value == "{" {
			p.next()
			if _, _, err := p.rawGroup(); err != nil {
				return nil, err
			}
		} else if err := p.skipItem(); err != nil {
			return nil, err
		}
		p.eat(";")
		return &RawStmt{Text: p.src[from:p.prevEnd()]}, nil
	}

	e, err := p.parseExpr(precMin)
	if err != nil {
		return nil, err
	}
	if p.eat(";") {
		return &ExprStmt{X: e, Semi: true}, nil
	}
	if p.is("}") {
		return &ExprStmt{X: e}, nil
	}
	if blockish(e) {
		return &ExprStmt{X: e}, nil
	}
	t = p.peek()
	return nil, errors.UnexpectedToken(t.Line, ";", tokenDesc(t))
}

// blockish reports whether an expression statement may stand without a
// trailing semicolon.
func blockish(e Expr) bool {
	switch e := e.(type) {
	case *If, *Match, *Loop, *While, *For, *BlockExpr, *UnsafeBlock, *AsyncBlock:
		return true
	case *Macro:
		return e.Delim == '{'
	}
	return false
}

func (p *parser) parseLet() (Stmt, error) {
	p.next()
	pat, err := p.rawUntil(func(t Token) bool {
		return t.Value == ":" || t.Value == "=" || t.Value == ";"
	})
	if err != nil {
		return nil, err
	}
	ls := &LetStmt{Pattern: pat}
	if p.eat(":") {
		ls.Type, err = p.rawUntil(func(t Token) bool {
			return t.Value == "=" || t.Value == ";"
		})
		if err != nil {
			return nil, err
		}
	}
	if p.eat("=") {
		ls.Init, err = p.parseExpr(precMin)
		if err != nil {
			return nil, err
		}
		if p.eat("else") {
			ls.Else, err = p.parseBlock()
			if err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(";"); err != nil {
		return nil, err
	}
	return ls, nil
}

func (p *parser) parseExpr(min int) (Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	return p.parseInfix(left, min)
}

func (p *parser) parseInfix(left Expr, min int) (Expr, error) {
	for {
		t := p.peek()
		if t.Type != Punct && !(t.Type == Ident && t.Value == "as") {
			return left, nil
		}
		switch {
		case t.Value == "as":
			if precCast < min {
				return left, nil
			}
			p.next()
			typ, err := p.rawType()
			if err != nil {
				return nil, err
			}
			left = &Cast{X: left, Type: typ}
		case t.Value == ".." || t.Value == "..=":
			if precRange < min {
				return left, nil
			}
			p.next()
			r := &Range{Low: left, Inclusive: t.Value == "..="}
			if p.canStartExpr() {
				high, err := p.parseExpr(precRange + 1)
				if err != nil {
					return nil, err
				}
				r.High = high
			}
			left = r
		case assignOps[t.Value]:
			if precAssign < min {
				return left, nil
			}
			p.next()
			// Assignment is right associative.
			rhs, err := p.parseExpr(precAssign)
			if err != nil {
				return nil, err
			}
			left = &Binary{Op: t.Value, L: left, R: rhs}
		default:
			prec, ok := binPrec[t.Value]
			if !ok || prec < min {
				return left, nil
			}
			p.next()
			rhs, err := p.parseExpr(prec + 1)
			if err != nil {
				return nil, err
			}
			left = &Binary{Op: t.Value, L: left, R: rhs}
		}
	}
}

func (p *parser) parsePrefix() (Expr, error) {
	t := p.peek()
	switch t.Value {
	case "&", "&&":
		p.next()
		mut := p.eat("mut")
		x, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		if t.Value == "&&" {
			// A double reference lexes as one token.
			return &Ref{X: &Ref{Mut: mut, X: x}}, nil
		}
		return &Ref{Mut: mut, X: x}, nil
	case "*", "-", "!":
		p.next()
		x, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: t.Value, X: x}, nil
	case "..", "..=":
		p.next()
		r := &Range{Inclusive: t.Value == "..="}
		if p.canStartExpr() {
			high, err := p.parseExpr(precRange + 1)
			if err != nil {
				return nil, err
			}
			r.High = high
		}
		return r, nil
	case "return":
		p.next()
		r := &Return{}
		if p.canStartExpr() {
			x, err := p.parseExpr(precMin)
			if err != nil {
				return nil, err
			}
			r.X = x
		}
		return r, nil
	case "break":
		p.next()
		b := &Break{}
		if p.peek().Type == Lifetime {
			b.Label = p.next().Value
		}
		if p.canStartExpr() {
			x, err := p.parseExpr(precMin)
			if err != nil {
				return nil, err
			}
			b.X = x
		}
		return b, nil
	case "continue":
		p.next()
		c := &Continue{}
		if p.peek().Type == Lifetime {
			c.Label = p.next().Value
		}
		return c, nil
	}
	return p.parsePostfixChain()
}

func (p *parser) parsePostfixChain() (Expr, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.Type != Punct {
			return x, nil
		}
		switch t.Value {
		case ".":
			p.next()
			n := p.next()
			switch {
			case n.Type == Ident && n.Value == "await":
				x = &Await{X: x}
			case n.Type == Number:
				x = &Field{X: x, Name: n.Value}
			case n.Type == Ident:
				member, err := p.parseMember(x, n)
				if err != nil {
					return nil, err
				}
				x = member
			default:
				return nil, errors.UnexpectedToken(n.Line, "method, field or await", tokenDesc(n))
			}
		case "?":
			p.next()
			x = &Try{X: x}
		case "(":
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			x = &Call{Fn: x, Args: args}
		case "[":
			p.next()
			saved := p.noStruct
			p.noStruct = false
			idx, err := p.parseExpr(precMin)
			p.noStruct = saved
			if err != nil {
				return nil, err
			}
			if _, err := p.expect("]"); err != nil {
				return nil, err
			}
			x = &Index{X: x, Idx: idx}
		default:
			return x, nil
		}
	}
}

// parseMember finishes a `.name` postfix: a field access, a method call,
// or a turbofished method call.
func (p *parser) parseMember(recv Expr, name Token) (Expr, error) {
	if p.is("::") {
		from := p.peek().Pos
		p.next()
		if !p.is("<") {
			t := p.peek()
			return nil, errors.UnexpectedToken(t.Line, "<", tokenDesc(t))
		}
		if _, err := p.rawAngles(); err != nil {
			return nil, err
		}
		generics := p.src[from:p.prevEnd()]
		if !p.is("(") {
			t := p.peek()
			return nil, errors.UnexpectedToken(t.Line, "(", tokenDesc(t))
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &MethodCall{Recv: recv, Name: name.Value, Generics: generics, Args: args}, nil
	}
	if p.is("(") {
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &MethodCall{Recv: recv, Name: name.Value, Args: args}, nil
	}
	return &Field{X: recv, Name: name.Value}, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	t := p.peek()
	switch t.Type {
	case Str, Char, Number:
		p.next()
		return &Lit{Text: t.Value}, nil
	case Lifetime:
		label := p.next().Value
		if _, err := p.expect(":"); err != nil {
			return nil, err
		}
		switch p.peek().Value {
		case "loop":
			return p.parseLoop(label)
		case "while":
			return p.parseWhile(label)
		case "for":
			return p.parseFor(label)
		}
		n := p.peek()
		return nil, errors.Syntax(n.Line, "expected loop, while or for after label %s", label)
	}
	switch t.Value {
	case "(":
		return p.parseParenExpr()
	case "[":
		return p.parseArrayExpr()
	case "{":
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &BlockExpr{Body: body}, nil
	case "unsafe":
		p.next()
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &UnsafeBlock{Body: body}, nil
	case "async":
		p.next()
		mv := p.eat("move")
		if p.is("|") || p.is("||") {
			return p.parseClosure(mv, true)
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &AsyncBlock{Move: mv, Body: body}, nil
	case "move":
		p.next()
		if !p.is("|") && !p.is("||") {
			n := p.peek()
			return nil, errors.UnexpectedToken(n.Line, "closure parameters", tokenDesc(n))
		}
		return p.parseClosure(true, false)
	case "|", "||":
		return p.parseClosure(false, false)
	case "if":
		return p.parseIf()
	case "while":
		return p.parseWhile("")
	case "loop":
		return p.parseLoop("")
	case "for":
		return p.parseFor("")
	case "match":
		return p.parseMatch()
	case "true", "false":
		p.next()
		return &Lit{Text: t.Value}, nil
	}
	if t.Type == Ident || t.Value == "::" || t.Value == "<" {
		return p.parsePathExpr()
	}
	return nil, errors.UnexpectedToken(t.Line, "expression", tokenDesc(t))
}

func (p *parser) parseParenExpr() (Expr, error) {
	p.next()
	saved := p.noStruct
	p.noStruct = false
	defer func() { p.noStruct = saved }()

	if p.eat(")") {
		return &Tuple{}, nil
	}
	first, err := p.parseExpr(precMin)
	if err != nil {
		return nil, err
	}
	if p.is(",") {
		tup := &Tuple{Elems: []Expr{first}}
		for p.eat(",") {
			if p.is(")") {
				break
			}
			e, err := p.parseExpr(precMin)
			if err != nil {
				return nil, err
			}
			tup.Elems = append(tup.Elems, e)
		}
		if _, err := p.expect(")"); err != nil {
			return nil, err
		}
		return tup, nil
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	return &Paren{X: first}, nil
}

func (p *parser) parseArrayExpr() (Expr, error) {
	p.next()
	saved := p.noStruct
	p.noStruct = false
	defer func() { p.noStruct = saved }()

	if p.eat("]") {
		return &ArrayLit{}, nil
	}
	first, err := p.parseExpr(precMin)
	if err != nil {
		return nil, err
	}
	if p.eat(";") {
		repeat, err := p.parseExpr(precMin)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect("]"); err != nil {
			return nil, err
		}
		return &ArrayLit{Elems: []Expr{first}, Repeat: repeat}, nil
	}
	arr := &ArrayLit{Elems: []Expr{first}}
	for p.eat(",") {
		if p.is("]") {
			break
		}
		e, err := p.parseExpr(precMin)
		if err != nil {
			return nil, err
		}
		arr.Elems = append(arr.Elems, e)
	}
	if _, err := p.expect("]"); err != nil {
		return nil, err
	}
	return arr, nil
}

// parseArgs parses a parenthesized, comma-separated argument list. The
// cursor sits on the opening parenthesis; struct literal suppression
// does not cross it.
func (p *parser) parseArgs() ([]Expr, error) {
	p.next()
	saved := p.noStruct
	p.noStruct = false
	defer func() { p.noStruct = saved }()

	var args []Expr
	for !p.is(")") {
		e, err := p.parseExpr(precMin)
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		if !p.eat(",") {
			break
		}
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	return args, nil
}

// parsePathExpr parses a path and whatever the path introduces: a macro
// invocation, a struct literal (unless suppressed by an enclosing
// condition), or the path itself. Turbofish segments stay verbatim
// inside the path text.
func (p *parser) parsePathExpr() (Expr, error) {
	from := p.peek().Pos
	if p.is("<") {
		// Qualified form <Type as Trait>::path.
		if _, err := p.rawAngles(); err != nil {
			return nil, err
		}
		if !p.is("::") {
			t := p.peek()
			return nil, errors.UnexpectedToken(t.Line, "::", tokenDesc(t))
		}
	} else {
		p.eat("::")
		if _, err := p.expectIdent(); err != nil {
			return nil, err
		}
	}
	for p.is("::") {
		nt := p.tokAt(p.pos + 1)
		if nt.Value == "<" {
			p.next()
			if _, err := p.rawAngles(); err != nil {
				return nil, err
			}
			continue
		}
		if nt.Type != Ident {
			break
		}
		p.next()
		p.next()
	}
	path := p.src[from:p.prevEnd()]

	if p.is("!") {
		p.next()
		d := p.peek()
		if d.Value != "(" && d.Value != "[" && d.Value != "{" {
			return nil, errors.UnexpectedToken(d.Line, "macro delimiter", tokenDesc(d))
		}
		raw, _, err := p.rawGroup()
		if err != nil {
			return nil, err
		}
		return &Macro{Path: path, Delim: d.Value[0], Raw: raw}, nil
	}
	if p.is("{") && !p.noStruct {
		return p.parseStructLit(path)
	}
	return &Path{Text: path}, nil
}

func (p *parser) parseStructLit(path string) (Expr, error) {
	p.next()
	saved := p.noStruct
	p.noStruct = false
	defer func() { p.noStruct = saved }()

	lit := &StructLit{Path: path}
	for !p.is("}") {
		if p.eat("..") {
			rest, err := p.parseExpr(precMin)
			if err != nil {
				return nil, err
			}
			lit.Rest = rest
			break
		}
		name := p.next()
		if name.Type != Ident && name.Type != Number {
			return nil, errors.UnexpectedToken(name.Line, "field name", tokenDesc(name))
		}
		fi := FieldInit{Name: name.Value}
		if p.eat(":") {
			val, err := p.parseExpr(precMin)
			if err != nil {
				return nil, err
			}
			fi.Value = val
		}
		lit.Fields = append(lit.Fields, fi)
		if !p.eat(",") {
			break
		}
	}
	if _, err := p.expect("}"); err != nil {
		return nil, err
	}
	return lit, nil
}

func (p *parser) parseIf() (Expr, error) {
	p.next()
	node := &If{}
	if p.eat("let") {
		pat, err := p.rawUntil(func(t Token) bool { return t.Value == "=" })
		if err != nil {
			return nil, err
		}
		node.Pattern = pat
		if _, err := p.expect("="); err != nil {
			return nil, err
		}
	}
	cond, err := p.exprNoStruct()
	if err != nil {
		return nil, err
	}
	node.Cond = cond
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Then = then
	if p.eat("else") {
		if p.is("if") {
			els, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			node.Else = els
		} else {
			blk, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			node.Else = &BlockExpr{Body: blk}
		}
	}
	return node, nil
}

func (p *parser) parseWhile(label string) (Expr, error) {
	p.next()
	node := &While{Label: label}
	if p.eat("let") {
		pat, err := p.rawUntil(func(t Token) bool { return t.Value == "=" })
		if err != nil {
			return nil, err
		}
		node.Pattern = pat
		if _, err := p.expect("="); err != nil {
			return nil, err
		}
	}
	cond, err := p.exprNoStruct()
	if err != nil {
		return nil, err
	}
	node.Cond = cond
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Body = body
	return node, nil
}

func (p *parser) parseLoop(label string) (Expr, error) {
	p.next()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &Loop{Label: label, Body: body}, nil
}

func (p *parser) parseFor(label string) (Expr, error) {
	p.next()
	node := &For{Label: label}
	pat, err := p.rawUntil(func(t Token) bool {
		return t.Type == Ident && t.Value == "in"
	})
	if err != nil {
		return nil, err
	}
	node.Pattern = pat
	if _, err := p.expect("in"); err != nil {
		return nil, err
	}
	iter, err := p.exprNoStruct()
	if err != nil {
		return nil, err
	}
	node.Iter = iter
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Body = body
	return node, nil
}

func (p *parser) parseMatch() (Expr, error) {
	matchTok := p.next()
	x, err := p.exprNoStruct()
	if err != nil {
		return nil, err
	}
	m := &Match{X: x}
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}
	saved := p.noStruct
	p.noStruct = false
	defer func() { p.noStruct = saved }()

	for !p.is("}") {
		if p.peek().Type == EOF {
			return nil, errors.Syntax(matchTok.Line, "unterminated match")
		}
		pat, err := p.rawUntil(func(t Token) bool {
			return t.Value == "=>" || t.Type == Ident && t.Value == "if"
		})
		if err != nil {
			return nil, err
		}
		arm := MatchArm{Pattern: pat}
		if p.eat("if") {
			guard, err := p.parseExpr(precMin)
			if err != nil {
				return nil, err
			}
			arm.Guard = guard
		}
		if _, err := p.expect("=>"); err != nil {
			return nil, err
		}
		body, err := p.parseExpr(precMin)
		if err != nil {
			return nil, err
		}
		arm.Body = body
		m.Arms = append(m.Arms, arm)
		p.eat(",")
	}
	p.next()
	return m, nil
}

func (p *parser) parseClosure(move, isAsync bool) (Expr, error) {
	c := &Closure{Move: move, Async: isAsync}
	open := p.next()
	if open.Value == "|" {
		from := p.peek().Pos
		for {
			pt := p.peek()
			if pt.Type == EOF {
				return nil, errors.Syntax(open.Line, "unterminated closure parameters")
			}
			if pt.Type == Punct {
				if pt.Value == "|" {
					break
				}
				if pt.Value == "(" || pt.Value == "[" || pt.Value == "{" {
					if _, _, err := p.rawGroup(); err != nil {
						return nil, err
					}
					continue
				}
				if pt.Value == "<" {
					if _, err := p.rawAngles(); err != nil {
						return nil, err
					}
					continue
				}
			}
			p.next()
		}
		if p.peek().Pos > from {
			c.Params = p.src[from:p.prevEnd()]
		}
		p.next()
	}
	if p.eat("->") {
		ret, err := p.rawUntil(func(t Token) bool { return t.Value == "{" })
		if err != nil {
			return nil, err
		}
		c.Ret = ret
	}
	body, err := p.parseExpr(precMin)
	if err != nil {
		return nil, err
	}
	c.Body = body
	return c, nil
}

// exprNoStruct parses a control-flow condition. Struct literals need
// parentheses there; a bare brace after the condition opens the body.
func (p *parser) exprNoStruct() (Expr, error) {
	saved := p.noStruct
	p.noStruct = true
	x, err := p.parseExpr(precMin)
	p.noStruct = saved
	return x, err
}

// canStartExpr reports whether the current token can begin an expression
// operand; open range ends and bare returns and breaks use it to decide
// whether anything follows.
func (p *parser) canStartExpr() bool {
	t := p.peek()
	switch t.Type {
	case EOF:
		return false
	case Str, Char, Number, Lifetime:
		return true
	}
	switch t.Value {
	case ")", "]", "}", ",", ";", "=>":
		return false
	case "{":
		return !p.noStruct
	}
	return true
}

// rawType consumes one type at the cursor, returning its verbatim text.
// Cast targets are structurally simple: references, raw pointers, paths
// with generics, tuples, arrays and fn pointers. Trait-object sums
// appear only inside parentheses, so a bare + after the type belongs to
// the surrounding expression.
func (p *parser) rawType() (string, error) {
	from := p.peek().Pos
	for {
		t := p.peek()
		if t.Value == "&" || t.Value == "&&" {
			p.next()
			if p.peek().Type == Lifetime {
				p.next()
			}
			p.eat("mut")
			continue
		}
		if t.Value == "*" {
			p.next()
			if !p.eat("const") {
				p.eat("mut")
			}
			continue
		}
		if t.Value == "dyn" || t.Value == "impl" {
			p.next()
			continue
		}
		break
	}
	t := p.peek()
	switch {
	case t.Value == "(" || t.Value == "[":
		if _, _, err := p.rawGroup(); err != nil {
			return "", err
		}
	case t.Value == "fn":
		p.next()
		if p.is("(") {
			if _, _, err := p.rawGroup(); err != nil {
				return "", err
			}
		}
		if p.eat("->") {
			if _, err := p.rawType(); err != nil {
				return "", err
			}
		}
	case t.Type == Ident:
		p.next()
		for {
			if p.is("<") {
				if _, err := p.rawAngles(); err != nil {
					return "", err
				}
			}
			if !p.eat("::") {
				break
			}
			if p.is("<") {
				if _, err := p.rawAngles(); err != nil {
					return "", err
				}
			} else if _, err := p.expectIdent(); err != nil {
				return "", err
			}
		}
		// Parenthesized Fn-style arguments can follow a path.
		if p.is("(") {
			if _, _, err := p.rawGroup(); err != nil {
				return "", err
			}
			if p.eat("->") {
				if _, err := p.rawType(); err != nil {
					return "", err
				}
			}
		}
	default:
		return "", errors.UnexpectedToken(t.Line, "type", tokenDesc(t))
	}
	return p.src[from:p.prevEnd()], nil
}
