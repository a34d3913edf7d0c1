package syntax

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wippyai/unasync/errors"
)

// TokenType represents the kind of lexical token.
type TokenType int

const (
	EOF TokenType = iota
	Ident
	Lifetime
	Number
	Str
	Char
	Punct
	DocLine
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "end of input"
	case Ident:
		return "identifier"
	case Lifetime:
		return "lifetime"
	case Number:
		return "number"
	case Str:
		return "string"
	case Char:
		return "char"
	case Punct:
		return "punctuation"
	case DocLine:
		return "doc comment"
	}
	return "unknown"
}

// Token is one lexical token with its position in the source text.
// Pos and End are byte offsets; raw regions are sliced from the source
// using them, so the lexer never normalizes token text.
type Token struct {
	Value string
	Type  TokenType
	Line  int
	Pos   int
	End   int
}

// Multi-byte operators, longest first. Lookup order matters: the lexer
// takes the first prefix match.
var puncts = []string{
	"<<=", ">>=", "..=", "...",
	"::", "->", "=>", "==", "!=", "<=", ">=", "&&", "||", "<<", ">>",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "..",
	"+", "-", "*", "/", "%", "=", "<", ">", "&", "|", "^", "!", "?",
	"@", "#", "$", ".", ",", ";", ":", "(", ")", "[", "]", "{", "}",
}

// Tokenize splits source text into tokens. Ordinary comments are dropped;
// doc comments become DocLine tokens so item parsing can locate the
// attached documentation region. Keywords are Ident tokens, matching on
// Value, the way the WAT grammar matches clause words.
func Tokenize(src string) ([]Token, error) {
	var tokens []Token
	line := 1
	i := 0
	n := len(src)

	for i < n {
		c := src[i]

		if c == '\n' {
			line++
			i++
			continue
		}
		if c == ' ' || c == '\t' || c == '\r' {
			i++
			continue
		}

		// Line comment or doc line
		if c == '/' && i+1 < n && src[i+1] == '/' {
			start := i
			for i < n && src[i] != '\n' {
				i++
			}
			text := src[start:i]
			if strings.HasPrefix(text, "///") || strings.HasPrefix(text, "//!") {
				tokens = append(tokens, Token{Value: text, Type: DocLine, Line: line, Pos: start, End: i})
			}
			continue
		}

		// Block comment (nested) or doc block
		if c == '/' && i+1 < n && src[i+1] == '*' {
			start := i
			startLine := line
			depth := 1
			i += 2
			for i < n && depth > 0 {
				if src[i] == '/' && i+1 < n && src[i+1] == '*' {
					depth++
					i += 2
				} else if src[i] == '*' && i+1 < n && src[i+1] == '/' {
					depth--
					i += 2
				} else {
					if src[i] == '\n' {
						line++
					}
					i++
				}
			}
			if depth > 0 {
				return nil, errors.Syntax(startLine, "unterminated block comment")
			}
			text := src[start:i]
			if strings.HasPrefix(text, "/**") || strings.HasPrefix(text, "/*!") {
				tokens = append(tokens, Token{Value: text, Type: DocLine, Line: startLine, Pos: start, End: i})
			}
			continue
		}

		// String literals, including byte and raw forms
		if c == '"' || (c == 'b' && i+1 < n && src[i+1] == '"') {
			start := i
			if c == 'b' {
				i++
			}
			end, endLine, err := scanString(src, i, line)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Value: src[start:end], Type: Str, Line: line, Pos: start, End: end})
			line = endLine
			i = end
			continue
		}
		if c == 'r' || (c == 'b' && i+1 < n && src[i+1] == 'r') {
			if tok, end, endLine, ok := scanRaw(src, i, line); ok {
				tokens = append(tokens, tok)
				line = endLine
				i = end
				continue
			}
		}

		// Char literal, byte char literal or lifetime
		if c == '\'' || c == 'b' && i+1 < n && src[i+1] == '\'' {
			if c == '\'' && isLifetime(src, i) {
				start := i
				i++
				for i < n && isIdentByte(src, i) {
					i++
				}
				tokens = append(tokens, Token{Value: src[start:i], Type: Lifetime, Line: line, Pos: start, End: i})
				continue
			}
			start := i
			if c == 'b' {
				i++
			}
			i++
			for i < n {
				if src[i] == '\\' {
					i += 2
					continue
				}
				if src[i] == '\'' {
					i++
					break
				}
				if src[i] == '\n' {
					return nil, errors.Syntax(line, "unterminated char literal")
				}
				i++
			}
			if i > n {
				return nil, errors.Syntax(line, "unterminated char literal")
			}
			tokens = append(tokens, Token{Value: src[start:i], Type: Char, Line: line, Pos: start, End: i})
			continue
		}

		// Number, including prefixes, underscores, exponents and suffixes
		if c >= '0' && c <= '9' {
			start := i
			i++
			if i < n && (src[i] == 'x' || src[i] == 'o' || src[i] == 'b') && src[start] == '0' {
				i++
				for i < n && (isHexByte(src[i]) || src[i] == '_') {
					i++
				}
			} else {
				for i < n {
					d := src[i]
					if d >= '0' && d <= '9' || d == '_' {
						i++
						continue
					}
					// A dot starts a fractional part only when a digit
					// follows; `1..2` and `1.sqrt()` stop here.
					if d == '.' && i+1 < n && src[i+1] >= '0' && src[i+1] <= '9' {
						i++
						continue
					}
					if (d == 'e' || d == 'E') && i+1 < n && (src[i+1] >= '0' && src[i+1] <= '9' || src[i+1] == '+' || src[i+1] == '-') {
						i += 2
						continue
					}
					break
				}
			}
			// Type suffix: u8, i64, f32, usize...
			for i < n && isIdentByte(src, i) {
				i++
			}
			tokens = append(tokens, Token{Value: src[start:i], Type: Number, Line: line, Pos: start, End: i})
			continue
		}

		// Identifier or keyword (unicode-aware, like Rust identifiers)
		if isIdentStart(src, i) {
			start := i
			for i < n && isIdentByte(src, i) {
				_, size := utf8.DecodeRuneInString(src[i:])
				i += size
			}
			tokens = append(tokens, Token{Value: src[start:i], Type: Ident, Line: line, Pos: start, End: i})
			continue
		}

		// Operator or delimiter
		if p := matchPunct(src[i:]); p != "" {
			tokens = append(tokens, Token{Value: p, Type: Punct, Line: line, Pos: i, End: i + len(p)})
			i += len(p)
			continue
		}

		return nil, errors.Syntax(line, "unexpected character %q", src[i])
	}

	return tokens, nil
}

// scanString scans a plain double-quoted string starting at the quote.
// Returns the offset past the closing quote and the updated line count.
func scanString(src string, i, line int) (int, int, error) {
	startLine := line
	i++ // opening quote
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
		case '\n':
			line++
			i++
		case '"':
			return i + 1, line, nil
		default:
			i++
		}
	}
	return 0, 0, errors.Syntax(startLine, "unterminated string literal")
}

// scanRaw scans raw strings (r"..", r#".."#, br".."), and raw identifiers
// (r#name). Reports ok=false when the text at i is a plain identifier that
// merely starts with r or br.
func scanRaw(src string, i, line int) (Token, int, int, bool) {
	start := i
	j := i
	if src[j] == 'b' {
		j++
	}
	if j >= len(src) || src[j] != 'r' {
		return Token{}, 0, 0, false
	}
	j++
	hashes := 0
	for j < len(src) && src[j] == '#' {
		hashes++
		j++
	}
	if j < len(src) && src[j] == '"' {
		// Raw string: ends at " followed by the same number of hashes.
		endLine := line
		j++
		closer := `"` + strings.Repeat("#", hashes)
		for j < len(src) {
			if src[j] == '\n' {
				endLine++
			}
			if strings.HasPrefix(src[j:], closer) {
				j += len(closer)
				return Token{Value: src[start:j], Type: Str, Line: line, Pos: start, End: j}, j, endLine, true
			}
			j++
		}
		return Token{}, 0, 0, false
	}
	if hashes == 1 && j < len(src) && isIdentStart(src, j) && src[start] != 'b' {
		// Raw identifier: r#async and friends.
		for j < len(src) && isIdentByte(src, j) {
			j++
		}
		return Token{Value: src[start:j], Type: Ident, Line: line, Pos: start, End: j}, j, line, true
	}
	return Token{}, 0, 0, false
}

// isLifetime reports whether the quote at i begins a lifetime rather than
// a char literal: 'ident not closed by a quote.
func isLifetime(src string, i int) bool {
	j := i + 1
	if j >= len(src) || !isIdentStart(src, j) {
		return false
	}
	for j < len(src) && isIdentByte(src, j) {
		j++
	}
	return j >= len(src) || src[j] != '\''
}

func isIdentStart(src string, i int) bool {
	c := src[i]
	if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
		return true
	}
	if c < utf8.RuneSelf {
		return false
	}
	r, _ := utf8.DecodeRuneInString(src[i:])
	return unicode.IsLetter(r)
}

func isIdentByte(src string, i int) bool {
	c := src[i]
	if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
		return true
	}
	if c < utf8.RuneSelf {
		return false
	}
	r, _ := utf8.DecodeRuneInString(src[i:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isHexByte(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func matchPunct(s string) string {
	for _, p := range puncts {
		if strings.HasPrefix(s, p) {
			return p
		}
	}
	return ""
}
