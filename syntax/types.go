package syntax

// Span is a half-open byte range into the source text a node was parsed
// from. File splicing replaces exactly this range.
type Span struct {
	Start int
	End   int
}

// Func is a function-shaped source unit: a free function, an inherent or
// trait-impl method, or a trait method signature (which has no body).
type Func struct {
	// Docs holds the attached doc comment and attribute region verbatim,
	// exactly as it appeared in the source. Empty when none.
	Docs string
	Sig  Signature
	// Body is nil for trait method signatures declared with a ";".
	Body *Block

	// Span covers the signature through the body (or the terminating
	// semicolon); Docs lie immediately before it. DocsPos is the byte
	// offset where the doc region begins and equals Span.Start when there
	// are no docs, so [DocsPos, Span.End) always covers the whole unit.
	// Line is the 1-based line of the fn keyword. Indent is the leading
	// whitespace of the signature's line, used to print nested methods
	// in place.
	Span    Span
	DocsPos int
	Line    int
	Indent  string
}

// Name returns the function's identifier.
func (f *Func) Name() string { return f.Sig.Name }

// Signature is a function signature. Everything except the qualifiers and
// the name is kept as verbatim source text: parameter patterns, types,
// generics and where clauses cannot contain suspension expressions, so the
// rewriter never needs to see inside them.
type Signature struct {
	Vis      string // "", "pub", "pub(crate)", ...
	Const    bool
	Async    bool
	Unsafe   bool
	Extern   string // `extern "C"` clause, "" when absent
	Name     string
	Generics string // "<...>" including brackets, "" when absent
	Params   string // text between the parentheses
	Ret      string // return type after "->", "" when absent
	Where    string // "where ..." clause, "" when absent
}

// File is a parsed source file. Funcs lists every function-shaped unit
// found at the top level and inside trait, impl and mod blocks, in source
// order. All other text is left to the original source; output files are
// produced by splicing rewritten units over their spans.
type File struct {
	Source string
	Funcs  []*Func
}

// Block is a brace-delimited sequence of statements.
type Block struct {
	Stmts []Stmt
}

// Stmt is implemented by all statement nodes.
type Stmt interface{ stmtNode() }

// LetStmt is `let <pattern> (: <type>)? (= <expr>)? (else { ... })?;`.
type LetStmt struct {
	Pattern string // verbatim
	Type    string // verbatim, "" when absent
	Init    Expr   // nil when absent
	Else    *Block // let-else diverging block, nil when absent
}

// ExprStmt is an expression in statement position. Semi records whether a
// semicolon followed; the final expression of a block may omit it.
type ExprStmt struct {
	X    Expr
	Semi bool
}

// FuncStmt is a nested function item inside a block.
type FuncStmt struct {
	Fn *Func
}

// RawStmt is block-level text the rewriter has no interest in, kept
// verbatim: nested non-function items (use, const, static, type, struct,
// enum) and statement attributes. Items whose bodies could hold suspension
// expressions (impl, trait, mod) are rejected at parse time instead of
// being skipped silently.
type RawStmt struct {
	Text string
}

// EmptyStmt is a stray semicolon.
type EmptyStmt struct{}

func (*LetStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()  {}
func (*FuncStmt) stmtNode()  {}
func (*RawStmt) stmtNode()   {}
func (*EmptyStmt) stmtNode() {}

// Expr is implemented by all expression nodes. The rewriter dispatches on
// the concrete type; the set below is the complete list of shapes the
// system distinguishes, everything else surfaces as a parse error rather
// than a silently skipped region.
type Expr interface{ exprNode() }

// Await is the suspension expression `<inner>.await`.
type Await struct {
	X Expr
}

// Lit is a literal: string, char, number, bool.
type Lit struct {
	Text string
}

// Path is a possibly qualified path, including any turbofish segment:
// `foo`, `foo::bar`, `Vec::<u8>::new`. Kept verbatim.
type Path struct {
	Text string
}

// Ref is `&x` or `&mut x`.
type Ref struct {
	Mut bool
	X   Expr
}

// Unary is a prefix operator expression: `-x`, `!x`, `*x`.
type Unary struct {
	Op string
	X  Expr
}

// Binary covers arithmetic, comparison, logical and assignment operators.
type Binary struct {
	Op   string
	L, R Expr
}

// Range is `a..b`, `a..=b` or any open-ended form; Low and High may be nil.
type Range struct {
	Low       Expr
	High      Expr
	Inclusive bool
}

// Cast is `x as T`; the type is verbatim text.
type Cast struct {
	X    Expr
	Type string
}

// Call is `callee(args...)`.
type Call struct {
	Fn   Expr
	Args []Expr
}

// MethodCall is `recv.name::<...>(args...)`.
type MethodCall struct {
	Recv     Expr
	Name     string
	Generics string // turbofish including "::<>", "" when absent
	Args     []Expr
}

// Field is `x.name` or a tuple index `x.0`.
type Field struct {
	X    Expr
	Name string
}

// Index is `x[i]`.
type Index struct {
	X   Expr
	Idx Expr
}

// Try is the `?` operator.
type Try struct {
	X Expr
}

// Paren is a parenthesized expression.
type Paren struct {
	X Expr
}

// Tuple is `(a, b, ...)`; a one-element tuple keeps its trailing comma.
type Tuple struct {
	Elems []Expr
}

// ArrayLit is `[a, b, c]` or the repeat form `[x; n]`.
type ArrayLit struct {
	Elems  []Expr
	Repeat Expr // repeat count; nil for the list form
}

// StructLit is `Path { field: value, ..rest }`.
type StructLit struct {
	Path   string
	Fields []FieldInit
	Rest   Expr // expression after "..", nil when absent
}

// FieldInit is one field initializer; Value is nil for shorthand fields.
type FieldInit struct {
	Name  string
	Value Expr
}

// BlockExpr is a block in expression position.
type BlockExpr struct {
	Body *Block
}

// AsyncBlock is `async { ... }` or `async move { ... }`.
type AsyncBlock struct {
	Move bool
	Body *Block
}

// UnsafeBlock is `unsafe { ... }`.
type UnsafeBlock struct {
	Body *Block
}

// If is `if cond { ... } else ...`. Pattern is set for `if let`; Else is
// nil, another *If, or a *BlockExpr.
type If struct {
	Pattern string // "" unless if-let
	Cond    Expr
	Then    *Block
	Else    Expr
}

// While is `while cond { ... }`; Pattern is set for `while let`.
type While struct {
	Label   string
	Pattern string
	Cond    Expr
	Body    *Block
}

// Loop is `loop { ... }`.
type Loop struct {
	Label string
	Body  *Block
}

// For is `for pat in iter { ... }`.
type For struct {
	Label   string
	Pattern string
	Iter    Expr
	Body    *Block
}

// Match is `match x { arms... }`.
type Match struct {
	X    Expr
	Arms []MatchArm
}

// MatchArm is `pattern (if guard)? => body`.
type MatchArm struct {
	Pattern string
	Guard   Expr
	Body    Expr
}

// Closure is `|params| body` with optional move/async qualifiers and an
// optional return type. Closures are FunctionDefinition-shaped: they carry
// their own asynchrony qualifier.
type Closure struct {
	Move   bool
	Async  bool
	Params string // text between the pipes, verbatim
	Ret    string // return type after "->", "" when absent
	Body   Expr
}

// Macro is a macro invocation `path!(...)`, `path![...]` or `path!{...}`.
// Raw is the argument region between the delimiters, copied verbatim: its
// grammar belongs to the invoked macro, so the rewriter never descends
// into it. Delim is the opening delimiter byte.
type Macro struct {
	Path  string
	Delim byte
	Raw   string
}

// Return is `return x?`.
type Return struct {
	X Expr // nil when absent
}

// Break is `break 'label x?`.
type Break struct {
	Label string
	X     Expr // nil when absent
}

// Continue is `continue 'label?`.
type Continue struct {
	Label string
}

func (*Await) exprNode()       {}
func (*Lit) exprNode()         {}
func (*Path) exprNode()        {}
func (*Ref) exprNode()         {}
func (*Unary) exprNode()       {}
func (*Binary) exprNode()      {}
func (*Range) exprNode()       {}
func (*Cast) exprNode()        {}
func (*Call) exprNode()        {}
func (*MethodCall) exprNode()  {}
func (*Field) exprNode()       {}
func (*Index) exprNode()       {}
func (*Try) exprNode()         {}
func (*Paren) exprNode()       {}
func (*Tuple) exprNode()       {}
func (*ArrayLit) exprNode()    {}
func (*StructLit) exprNode()   {}
func (*BlockExpr) exprNode()   {}
func (*AsyncBlock) exprNode()  {}
func (*UnsafeBlock) exprNode() {}
func (*If) exprNode()          {}
func (*While) exprNode()       {}
func (*Loop) exprNode()        {}
func (*For) exprNode()         {}
func (*Match) exprNode()       {}
func (*Closure) exprNode()     {}
func (*Macro) exprNode()       {}
func (*Return) exprNode()      {}
func (*Break) exprNode()       {}
func (*Continue) exprNode()    {}
