package syntax

import (
	"strings"
	"testing"
)

func kinds(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Value
	}
	return out
}

func TestTokenize(t *testing.T) {
	t.Run("function_header", func(t *testing.T) {
		tokens, err := Tokenize("fn add(a: u32) -> u32 { a + 1 }")
		if err != nil {
			t.Fatalf("Tokenize failed: %v", err)
		}
		want := []string{"fn", "add", "(", "a", ":", "u32", ")", "->", "u32", "{", "a", "+", "1", "}"}
		got := values(tokens)
		if len(got) != len(want) {
			t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("token %d: expected %q, got %q", i, want[i], got[i])
			}
		}
		if tokens[0].Type != Ident || tokens[7].Type != Punct || tokens[12].Type != Number {
			t.Errorf("unexpected token types: %v", kinds(tokens))
		}
	})

	t.Run("multi_char_puncts", func(t *testing.T) {
		tokens, err := Tokenize("a >>= b ..= c :: d != e")
		if err != nil {
			t.Fatalf("Tokenize failed: %v", err)
		}
		want := []string{"a", ">>=", "b", "..=", "c", "::", "d", "!=", "e"}
		got := values(tokens)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("token %d: expected %q, got %q", i, want[i], got[i])
			}
		}
	})

	t.Run("doc_comments_kept_plain_dropped", func(t *testing.T) {
		src := "/// summary\n// plain\nfn f() {}\n//! inner\n/** block */\n"
		tokens, err := Tokenize(src)
		if err != nil {
			t.Fatalf("Tokenize failed: %v", err)
		}
		var docs []string
		for _, tok := range tokens {
			if tok.Type == DocLine {
				docs = append(docs, tok.Value)
			}
		}
		if len(docs) != 3 {
			t.Fatalf("expected 3 doc tokens, got %d: %v", len(docs), docs)
		}
		if docs[0] != "/// summary" || docs[1] != "//! inner" || docs[2] != "/** block */" {
			t.Errorf("unexpected doc tokens: %v", docs)
		}
		for _, tok := range tokens {
			if strings.HasPrefix(tok.Value, "// plain") {
				t.Error("plain comment survived tokenizing")
			}
		}
	})

	t.Run("strings", func(t *testing.T) {
		tests := []struct {
			name, src, want string
		}{
			{"escaped_quote", `"a\"b"`, `"a\"b"`},
			{"byte_string", `b"bytes"`, `b"bytes"`},
			{"raw_string", `r#"has "quotes" inside"#`, `has "quotes"`},
			{"raw_byte_string", `br"raw"`, `br"raw"`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				tokens, err := Tokenize(tt.src)
				if err != nil {
					t.Fatalf("Tokenize failed: %v", err)
				}
				if len(tokens) != 1 || tokens[0].Type != Str {
					t.Fatalf("expected one string token, got %v", values(tokens))
				}
				if !strings.Contains(tokens[0].Value, tt.want) {
					t.Errorf("token %q missing %q", tokens[0].Value, tt.want)
				}
			})
		}
	})

	t.Run("raw_identifier", func(t *testing.T) {
		tokens, err := Tokenize("let r#async = 1;")
		if err != nil {
			t.Fatalf("Tokenize failed: %v", err)
		}
		if tokens[1].Type != Ident || tokens[1].Value != "r#async" {
			t.Errorf("expected raw identifier r#async, got %q (%v)", tokens[1].Value, tokens[1].Type)
		}
	})

	t.Run("lifetime_vs_char", func(t *testing.T) {
		tokens, err := Tokenize(`&'a str + 'x' + b'y'`)
		if err != nil {
			t.Fatalf("Tokenize failed: %v", err)
		}
		if tokens[1].Type != Lifetime || tokens[1].Value != "'a" {
			t.Errorf("expected lifetime 'a, got %q (%v)", tokens[1].Value, tokens[1].Type)
		}
		if tokens[4].Type != Char || tokens[4].Value != "'x'" {
			t.Errorf("expected char 'x', got %q (%v)", tokens[4].Value, tokens[4].Type)
		}
		if tokens[6].Type != Char || tokens[6].Value != "b'y'" {
			t.Errorf("expected byte char b'y', got %q (%v)", tokens[6].Value, tokens[6].Type)
		}
	})

	t.Run("numbers", func(t *testing.T) {
		tests := []struct {
			src  string
			want []string
		}{
			{"1..2", []string{"1", "..", "2"}},
			{"1.5e3", []string{"1.5e3"}},
			{"0xFF_u8", []string{"0xFF_u8"}},
			{"2.0_f64", []string{"2.0_f64"}},
			{"1.sqrt()", []string{"1", ".", "sqrt", "(", ")"}},
			{"10usize", []string{"10usize"}},
		}
		for _, tt := range tests {
			tokens, err := Tokenize(tt.src)
			if err != nil {
				t.Fatalf("Tokenize(%q) failed: %v", tt.src, err)
			}
			got := values(tokens)
			if len(got) != len(tt.want) {
				t.Errorf("Tokenize(%q): expected %v, got %v", tt.src, tt.want, got)
				continue
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Tokenize(%q) token %d: expected %q, got %q", tt.src, i, tt.want[i], got[i])
				}
			}
		}
	})

	t.Run("offsets_slice_back_to_values", func(t *testing.T) {
		src := `async fn f<'a>(s: &'a str) -> String {
    let n = s.len(); // count
    println!("{} {:?}", n, b"x");
    format!("{}", 1.5)
}`
		tokens, err := Tokenize(src)
		if err != nil {
			t.Fatalf("Tokenize failed: %v", err)
		}
		for i, tok := range tokens {
			if src[tok.Pos:tok.End] != tok.Value {
				t.Errorf("token %d: value %q but span slices to %q", i, tok.Value, src[tok.Pos:tok.End])
			}
		}
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name, src, wantErr string
		}{
			{"unterminated_string", `"abc`, "unterminated string"},
			{"unterminated_block_comment", "/* abc", "unterminated block comment"},
			{"unterminated_char", "'\n", "unterminated char"},
			{"stray_byte", "a \\ b", "unexpected character"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Tokenize(tt.src)
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q missing %q", err, tt.wantErr)
				}
			})
		}
	})
}

func TestTokenType_String(t *testing.T) {
	if EOF.String() == "" || Ident.String() == "" || Punct.String() == "" {
		t.Error("token type names should be non-empty")
	}
}
