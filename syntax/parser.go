package syntax

import (
	"strings"

	"github.com/wippyai/unasync/errors"
)

// ParseFunc parses a single function-shaped unit: a free function, a
// method, or a trait method signature ending in a semicolon. Input that
// is not function-shaped is rejected with an unsupported-item error
// naming the kind of item found.
func ParseFunc(src string) (*Func, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := newParser(src, tokens)
	docs, docsPos, err := p.parseDocs()
	if err != nil {
		return nil, err
	}
	if !p.funcAhead() {
		return nil, errors.UnsupportedItem(p.peek().Line, p.itemKind())
	}
	f, err := p.parseFunc(docs, docsPos)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.Type != EOF {
		return nil, errors.Syntax(t.Line, "unexpected %q after function", t.Value)
	}
	return f, nil
}

// ParseFile parses a whole source file, collecting every function-shaped
// unit in source order, including methods inside impl, trait, mod and
// extern blocks. Other items are tolerated and skipped; their text never
// changes because output files are produced by splicing unit spans.
func ParseFile(src string) (*File, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := newParser(src, tokens)
	file := &File{Source: src}
	if err := p.parseItems(file, 0); err != nil {
		return nil, err
	}
	return file, nil
}

// parser walks the token stream produced by Tokenize. Free-form regions
// that cannot contain suspension expressions (generics, parameters,
// types, patterns, doc comments, macro arguments) are sliced out of the
// source verbatim instead of being parsed.
type parser struct {
	src      string
	tokens   []Token
	pos      int
	noStruct bool
	eofLine  int
}

func newParser(src string, tokens []Token) *parser {
	line := 1
	if len(tokens) > 0 {
		line = tokens[len(tokens)-1].Line
	}
	return &parser{src: src, tokens: tokens, eofLine: line}
}

func (p *parser) peek() Token {
	return p.tokAt(p.pos)
}

// tokAt returns the token at an absolute index, or a synthetic EOF token
// past the end of the stream.
func (p *parser) tokAt(i int) Token {
	if i >= len(p.tokens) {
		return Token{Type: EOF, Line: p.eofLine, Pos: len(p.src), End: len(p.src)}
	}
	return p.tokens[i]
}

func (p *parser) next() Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

// prevEnd is the byte offset just past the most recently consumed token.
func (p *parser) prevEnd() int {
	if p.pos == 0 {
		return 0
	}
	return p.tokens[p.pos-1].End
}

func (p *parser) is(value string) bool {
	t := p.peek()
	return t.Type != EOF && t.Type != Str && t.Type != Char && t.Value == value
}

func (p *parser) eat(value string) bool {
	if p.is(value) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(value string) (Token, error) {
	t := p.next()
	if t.Type == EOF || t.Value != value {
		return t, errors.UnexpectedToken(t.Line, value, tokenDesc(t))
	}
	return t, nil
}

func (p *parser) expectIdent() (Token, error) {
	t := p.next()
	if t.Type != Ident {
		return t, errors.UnexpectedToken(t.Line, "identifier", tokenDesc(t))
	}
	return t, nil
}

func tokenDesc(t Token) string {
	if t.Type == EOF {
		return "end of input"
	}
	return t.Value
}

// parseDocs consumes doc comments and outer attributes, returning the
// verbatim region and its starting byte offset (-1 when there is none).
// Inner attributes and inner doc comments attach to the enclosing module,
// but excluding them would split the region, so the region simply covers
// every doc-shaped token up to the item.
func (p *parser) parseDocs() (string, int, error) {
	start, end := -1, 0
	for {
		t := p.peek()
		switch {
		case t.Type == DocLine:
			p.next()
		case t.Value == "#" && p.tokAt(p.pos+1).Value == "[":
			p.next()
			if _, _, err := p.rawGroup(); err != nil {
				return "", 0, err
			}
		case t.Value == "#" && p.tokAt(p.pos+1).Value == "!" && p.tokAt(p.pos+2).Value == "[":
			p.next()
			p.next()
			if _, _, err := p.rawGroup(); err != nil {
				return "", 0, err
			}
		default:
			if start < 0 {
				return "", -1, nil
			}
			return p.src[start:end], start, nil
		}
		if start < 0 {
			start = t.Pos
		}
		end = p.prevEnd()
	}
}

// funcAhead reports whether the tokens at the cursor begin a function
// item: an optional qualifier run ending in fn.
func (p *parser) funcAhead() bool {
	i := p.pos
	if p.tokAt(i).Value == "pub" {
		i++
		if p.tokAt(i).Value == "(" {
			depth := 1
			for i++; depth > 0; i++ {
				switch p.tokAt(i).Value {
				case "(":
					depth++
				case ")":
					depth--
				}
				if p.tokAt(i).Type == EOF {
					return false
				}
			}
		}
	}
	if p.tokAt(i).Value == "const" {
		i++
	}
	if p.tokAt(i).Value == "async" {
		i++
	}
	if p.tokAt(i).Value == "unsafe" {
		i++
	}
	if p.tokAt(i).Value == "extern" {
		i++
		if p.tokAt(i).Type == Str {
			i++
		}
	}
	return p.tokAt(i).Value == "fn"
}

// itemKind names the item at the cursor for unsupported-item errors.
func (p *parser) itemKind() string {
	t := p.peek()
	if t.Type == EOF {
		return "empty input"
	}
	switch t.Value {
	case "struct", "enum", "union", "trait", "impl", "mod", "use", "static":
		return t.Value
	case "const":
		return "const item"
	case "type":
		return "type alias"
	case "extern":
		return "extern block"
	case "macro_rules":
		return "macro definition"
	case "pub":
		p.next()
		if p.is("(") {
			if _, _, err := p.rawGroup(); err != nil {
				return "unrecognized item"
			}
		}
		return p.itemKind()
	}
	return "unrecognized item"
}

// parseFunc parses one function-shaped unit. The caller has already
// consumed the doc region and verified that a function follows.
func (p *parser) parseFunc(docs string, docsPos int) (*Func, error) {
	f := &Func{Docs: docs}
	f.Span.Start = p.peek().Pos
	if docsPos < 0 {
		f.DocsPos = f.Span.Start
	} else {
		f.DocsPos = docsPos
	}

	if p.is("pub") {
		vis := p.next()
		f.Sig.Vis = "pub"
		if p.is("(") {
			_, closing, err := p.rawGroup()
			if err != nil {
				return nil, err
			}
			f.Sig.Vis = p.src[vis.Pos:closing.End]
		}
	}
	f.Sig.Const = p.eat("const")
	f.Sig.Async = p.eat("async")
	f.Sig.Unsafe = p.eat("unsafe")
	if p.is("extern") {
		ext := p.next()
		f.Sig.Extern = "extern"
		if p.peek().Type == Str {
			abi := p.next()
			f.Sig.Extern = p.src[ext.Pos:abi.End]
		}
	}

	fnTok, err := p.expect("fn")
	if err != nil {
		return nil, err
	}
	f.Line = fnTok.Line

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	f.Sig.Name = name.Value

	if p.is("<") {
		f.Sig.Generics, err = p.rawAngles()
		if err != nil {
			return nil, err
		}
	}
	if !p.is("(") {
		t := p.peek()
		return nil, errors.UnexpectedToken(t.Line, "(", tokenDesc(t))
	}
	params, _, err := p.rawGroup()
	if err != nil {
		return nil, err
	}
	f.Sig.Params = strings.TrimSpace(params)

	if p.eat("->") {
		ret, err := p.rawUntil(func(t Token) bool {
			return t.Value == "{" || t.Value == ";" || t.Value == "where"
		})
		if err != nil {
			return nil, err
		}
		f.Sig.Ret = ret
	}
	if p.is("where") {
		whereTok := p.next()
		if _, err := p.rawUntil(func(t Token) bool {
			return t.Value == "{" || t.Value == ";"
		}); err != nil {
			return nil, err
		}
		f.Sig.Where = p.src[whereTok.Pos:p.prevEnd()]
	}

	switch {
	case p.is("{"):
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		f.Body = body
		f.Span.End = p.prevEnd()
	case p.is(";"):
		semi := p.next()
		f.Span.End = semi.End
	default:
		t := p.peek()
		return nil, errors.UnexpectedToken(t.Line, "function body or ;", tokenDesc(t))
	}

	f.Indent = indentAt(p.src, f.Span.Start)
	return f, nil
}

// parseItems scans one brace level of items. Depth 0 is the file top
// level; trait, impl, mod and extern bodies recurse so methods are found
// wherever they live.
func (p *parser) parseItems(file *File, depth int) error {
	for {
		docs, docsPos, err := p.parseDocs()
		if err != nil {
			return err
		}
		t := p.peek()
		switch {
		case t.Type == EOF:
			if depth > 0 {
				return errors.Syntax(t.Line, "missing closing brace")
			}
			return nil
		case depth > 0 && t.Value == "}":
			p.next()
			return nil
		case t.Value == ";":
			// Stray item-level semicolon.
			p.next()
		case p.funcAhead():
			f, err := p.parseFunc(docs, docsPos)
			if err != nil {
				return err
			}
			file.Funcs = append(file.Funcs, f)
		case t.Value == "pub":
			// Visibility on a non-function item. Peel it and dispatch on
			// the keyword behind it.
			p.next()
			if p.is("(") {
				if _, _, err := p.rawGroup(); err != nil {
					return err
				}
			}
		case t.Value == "impl" || t.Value == "trait" || t.Value == "mod" || t.Value == "unsafe":
			if t.Value == "unsafe" {
				p.next()
			}
			p.next()
			body, err := p.skipToBody()
			if err != nil {
				return err
			}
			if body.Value == "{" {
				if err := p.parseItems(file, depth+1); err != nil {
					return err
				}
			}
		case t.Value == "extern":
			p.next()
			if p.peek().Type == Str {
				p.next()
			}
			body, err := p.skipToBody()
			if err != nil {
				return err
			}
			if body.Value == "{" {
				if err := p.parseItems(file, depth+1); err != nil {
					return err
				}
			}
		case isItemKeyword(t.Value):
			if err := p.skipItem(); err != nil {
				return err
			}
		case t.Type == Ident:
			if err := p.skipItemMacro(); err != nil {
				return err
			}
		default:
			return errors.Syntax(t.Line, "expected an item, found %q", t.Value)
		}
	}
}

func isItemKeyword(v string) bool {
	switch v {
	case "struct", "enum", "union", "use", "static", "const", "type", "macro_rules", "macro":
		return true
	}
	return false
}

// skipItem advances past one non-function item. Items end at a top-level
// semicolon, or at a brace group when the keyword introduces a braced
// body directly (struct, enum, union, macro definitions); initializer
// blocks behind an equals sign do not end const, static or type items.
func (p *parser) skipItem() error {
	kw := p.next()
	braced := false
	switch kw.Value {
	case "struct", "enum", "union", "macro_rules", "macro":
		braced = true
	}
	for {
		t := p.peek()
		switch {
		case t.Type == EOF:
			return errors.Syntax(kw.Line, "unterminated %s item", kw.Value)
		case t.Value == ";":
			p.next()
			return nil
		case t.Value == "<":
			if _, err := p.rawAngles(); err != nil {
				return err
			}
		case t.Value == "(" || t.Value == "[":
			if _, _, err := p.rawGroup(); err != nil {
				return err
			}
		case t.Value == "{":
			if _, _, err := p.rawGroup(); err != nil {
				return err
			}
			if braced {
				return nil
			}
		default:
			p.next()
		}
	}
}

// skipItemMacro advances past an item-position macro invocation such as
// lazy_static! { ... } or a cfg-style generator call ending in ;.
func (p *parser) skipItemMacro() error {
	start := p.peek()
	if _, err := p.expectIdent(); err != nil {
		return err
	}
	for p.eat("::") {
		if _, err := p.expectIdent(); err != nil {
			return err
		}
	}
	if !p.eat("!") {
		return errors.Syntax(start.Line, "expected an item, found %q", start.Value)
	}
	t := p.peek()
	if t.Value != "(" && t.Value != "[" && t.Value != "{" {
		return errors.UnexpectedToken(t.Line, "macro delimiter", tokenDesc(t))
	}
	if _, _, err := p.rawGroup(); err != nil {
		return err
	}
	p.eat(";")
	return nil
}

// skipToBody advances through an item header to its body-opening brace or
// terminating semicolon, skipping delimiter and angle regions whole.
// Returns the brace or semicolon token, consumed.
func (p *parser) skipToBody() (Token, error) {
	for {
		t := p.peek()
		switch {
		case t.Type == EOF:
			return t, errors.Syntax(t.Line, "unterminated item header")
		case t.Value == "{" || t.Value == ";":
			return p.next(), nil
		case t.Value == "<":
			if _, err := p.rawAngles(); err != nil {
				return Token{}, err
			}
		case t.Value == "(" || t.Value == "[":
			if _, _, err := p.rawGroup(); err != nil {
				return Token{}, err
			}
		default:
			p.next()
		}
	}
}

// rawGroup consumes a (), [] or {} group starting at the opening
// delimiter. Returns the inner text verbatim and the closing token.
// Counting only the same delimiter kind is enough: other kinds are
// balanced within well-formed groups, and string and comment contents
// were atomized by the lexer.
func (p *parser) rawGroup() (string, Token, error) {
	open := p.next()
	closer := ""
	switch open.Value {
	case "(":
		closer = ")"
	case "[":
		closer = "]"
	case "{":
		closer = "}"
	default:
		return "", open, errors.UnexpectedToken(open.Line, "opening delimiter", tokenDesc(open))
	}
	depth := 1
	for {
		t := p.next()
		if t.Type == EOF {
			return "", t, errors.Syntax(open.Line, "unterminated %q group", open.Value)
		}
		if t.Type != Punct {
			continue
		}
		switch t.Value {
		case open.Value:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return p.src[open.End:t.Pos], t, nil
			}
		}
	}
}

// rawAngles consumes a balanced <...> region starting at the current "<"
// token and returns it including the angle brackets. Shift tokens count
// double, and (), [], {} groups are skipped whole so const-generic
// expressions cannot disturb the balance.
func (p *parser) rawAngles() (string, error) {
	open := p.next()
	depth := 1
	for {
		t := p.peek()
		if t.Type == EOF {
			return "", errors.Syntax(open.Line, "unterminated angle brackets")
		}
		if t.Value == "(" || t.Value == "[" || t.Value == "{" {
			if _, _, err := p.rawGroup(); err != nil {
				return "", err
			}
			continue
		}
		p.next()
		if t.Type != Punct {
			continue
		}
		switch t.Value {
		case "<":
			depth++
		case "<<":
			depth += 2
		case ">":
			depth--
		case ">>":
			depth -= 2
		}
		if depth <= 0 {
			return p.src[open.Pos:t.End], nil
		}
	}
}

// rawUntil consumes tokens until stop matches a top-level token, skipping
// delimiter groups and angle regions whole. The stopping token is not
// consumed; the region up to it is returned verbatim. Reaching the end of
// input stops the region and leaves the error to the caller's next
// expectation.
func (p *parser) rawUntil(stop func(Token) bool) (string, error) {
	from := p.peek().Pos
	end := from
	for {
		t := p.peek()
		if t.Type == EOF || t.Type == Punct && stop(t) || t.Type == Ident && stop(t) {
			if end <= from {
				return "", nil
			}
			return p.src[from:end], nil
		}
		switch t.Value {
		case "(", "[", "{":
			if _, _, err := p.rawGroup(); err != nil {
				return "", err
			}
		case "<":
			if _, err := p.rawAngles(); err != nil {
				return "", err
			}
		default:
			p.next()
		}
		end = p.prevEnd()
	}
}

// indentAt returns the whitespace between the start of the line holding
// pos and pos itself, or "" when anything else precedes it on the line.
func indentAt(src string, pos int) string {
	start := strings.LastIndexByte(src[:pos], '\n') + 1
	ws := src[start:pos]
	for i := 0; i < len(ws); i++ {
		if ws[i] != ' ' && ws[i] != '\t' {
			return ""
		}
	}
	return ws
}
