// Package textual is the last-resort transform for units the structural
// rewriter cannot fully handle, most commonly an .await inside a macro
// argument region. It operates on raw text with no structural awareness:
// Strip deletes every literal "async" and ".await" substring, wherever
// they appear. That reaches inside macro arguments, but also inside
// identifiers and string literals, so Audit should be run first to list
// the tokens a Strip would corrupt.
package textual

import (
	"fmt"
	"strings"

	"github.com/wippyai/unasync/syntax"
)

// Strip deletes every literal "async" substring, then every literal
// ".await" substring. It always succeeds; correctness is the caller's
// responsibility.
func Strip(src string) string {
	out := strings.ReplaceAll(src, "async", "")
	return strings.ReplaceAll(out, ".await", "")
}

// Hazard is a token Strip would corrupt.
type Hazard struct {
	Line  int
	Token string
}

func (h Hazard) String() string {
	return fmt.Sprintf("line %d: %q", h.Line, h.Token)
}

// Audit lexes src and returns the tokens Strip would damage beyond the
// intended keyword removals: identifiers and lifetimes containing
// "async", string literals containing either substring, and field or
// method names that extend "await" after a dot. Exact `async` keywords
// and `.await` operators are the point of Strip and are not reported.
//
// Text that does not lex is not audited; Strip accepts it regardless.
func Audit(src string) []Hazard {
	toks, err := syntax.Tokenize(src)
	if err != nil {
		return nil
	}
	var hazards []Hazard
	for i, tok := range toks {
		switch tok.Type {
		case syntax.Ident:
			if strings.Contains(tok.Value, "async") && tok.Value != "async" {
				hazards = append(hazards, Hazard{Line: tok.Line, Token: tok.Value})
				continue
			}
			if strings.HasPrefix(tok.Value, "await") && tok.Value != "await" && dotBefore(toks, i) {
				hazards = append(hazards, Hazard{Line: tok.Line, Token: "." + tok.Value})
			}
		case syntax.Lifetime:
			if strings.Contains(tok.Value, "async") {
				hazards = append(hazards, Hazard{Line: tok.Line, Token: tok.Value})
			}
		case syntax.Str:
			if strings.Contains(tok.Value, "async") || strings.Contains(tok.Value, ".await") {
				hazards = append(hazards, Hazard{Line: tok.Line, Token: tok.Value})
			}
		}
	}
	return hazards
}

// dotBefore reports whether the token before toks[i] ends with a dot that
// touches it, with no whitespace in between. Strip only matches ".await"
// when the two are adjacent in the text.
func dotBefore(toks []syntax.Token, i int) bool {
	if i == 0 {
		return false
	}
	prev := toks[i-1]
	return prev.Type == syntax.Punct &&
		strings.HasSuffix(prev.Value, ".") &&
		prev.End == toks[i].Pos
}
