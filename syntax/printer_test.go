package syntax

import "testing"

// reprint parses the unit, renders it, reparses the rendering and renders
// again. Canonical text must be a fixed point of the parse/print cycle.
func reprint(t *testing.T, src string) string {
	t.Helper()
	f, err := ParseFunc(src)
	if err != nil {
		t.Fatalf("ParseFunc failed: %v", err)
	}
	text := f.Text()
	again, err := ParseFunc(text)
	if err != nil {
		t.Fatalf("reparse of printed text failed: %v\n%s", err, text)
	}
	if again.Text() != text {
		t.Fatalf("printing is not stable:\nfirst:\n%s\nsecond:\n%s", text, again.Text())
	}
	return text
}

func TestText(t *testing.T) {
	t.Run("canonical_round_trip", func(t *testing.T) {
		src := `fn get_string_len() -> usize {
    let string = get_string();
    println!("{}", string);
    string.len()
}`
		if got := reprint(t, src); got != src {
			t.Errorf("expected source unchanged, got:\n%s", got)
		}
	})

	t.Run("async_signature_preserved", func(t *testing.T) {
		src := "async fn to_impl(&mut self) -> String;"
		if got := reprint(t, src); got != src {
			t.Errorf("expected %q, got %q", src, got)
		}
	})

	t.Run("verbatim_regions_keep_their_spacing", func(t *testing.T) {
		src := "fn f<T : Copy>(a :T, b: [u8 ; 4]) -> T where T : Sized { a }"
		want := `fn f<T : Copy>(a :T, b: [u8 ; 4]) -> T where T : Sized {
    a
}`
		if got := reprint(t, src); got != want {
			t.Errorf("expected:\n%s\ngot:\n%s", want, got)
		}
	})

	t.Run("normalizes_compact_source", func(t *testing.T) {
		src := "fn f(){let x=1;x}"
		want := `fn f() {
    let x = 1;
    x
}`
		if got := reprint(t, src); got != want {
			t.Errorf("expected:\n%s\ngot:\n%s", want, got)
		}
	})

	t.Run("match_and_guards", func(t *testing.T) {
		src := `fn classify(n: u32) -> &'static str {
    match n {
        0 => "zero",
        x if x < 10 => "small",
        _ => "big",
    }
}`
		if got := reprint(t, src); got != src {
			t.Errorf("expected source unchanged, got:\n%s", got)
		}
	})

	t.Run("if_else_and_struct_literal", func(t *testing.T) {
		src := `fn pick() -> Config {
    if ready {
        base()
    } else {
        Config { x: 1, ..rest() }
    }
}`
		if got := reprint(t, src); got != src {
			t.Errorf("expected source unchanged, got:\n%s", got)
		}
	})

	t.Run("async_block_in_let", func(t *testing.T) {
		src := `fn f() {
    let t = async move {
        go().await
    };
}`
		if got := reprint(t, src); got != src {
			t.Errorf("expected source unchanged, got:\n%s", got)
		}
	})

	t.Run("tuples_and_unit", func(t *testing.T) {
		src := `fn f() {
    let u = ();
    let single = (a,);
    let pair = (a, b);
}`
		if got := reprint(t, src); got != src {
			t.Errorf("expected source unchanged, got:\n%s", got)
		}
	})

	t.Run("method_base_indent", func(t *testing.T) {
		src := `impl C {
    fn m(&self) -> u32 {
        self.x
    }
}`
		file, err := ParseFile(src)
		if err != nil {
			t.Fatalf("ParseFile failed: %v", err)
		}
		m := file.Funcs[0]
		if got, want := m.Text(), src[m.Span.Start:m.Span.End]; got != want {
			t.Errorf("expected:\n%s\ngot:\n%s", want, got)
		}
	})

	t.Run("docs_precede_signature", func(t *testing.T) {
		src := `/// Greets.
#[inline]
fn hello() {
    greet()
}`
		if got := reprint(t, src); got != src {
			t.Errorf("expected source unchanged, got:\n%s", got)
		}
	})
}
