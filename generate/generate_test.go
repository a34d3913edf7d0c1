package generate

import (
	"strings"
	"testing"
)

func TestFile(t *testing.T) {
	t.Run("rewrites_units_in_place", func(t *testing.T) {
		src := `use std::fmt;

/// Fetches the payload.
pub async fn fetch(url: &str) -> String {
    let body = client().get(url).await;
    body.text().await
}

fn untouched(x: u32) -> u32 {
    x + 1
}

impl Config {
    async fn load() -> Config {
        read_file("config.toml").await
    }
}
`
		want := `use std::fmt;

/// Fetches the payload.
pub fn fetch(url: &str) -> String {
    let body = client().get(url);
    body.text()
}

fn untouched(x: u32) -> u32 {
    x + 1
}

impl Config {
    fn load() -> Config {
        read_file("config.toml")
    }
}
`
		got, err := File(src, Options{})
		if err != nil {
			t.Fatalf("File() error: %v", err)
		}
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("trait_blocks", func(t *testing.T) {
		src := `trait Payload {
    async fn to_impl(&mut self) -> String;

    async fn describe(&self) -> String {
        self.to_impl().await
    }
}
`
		want := `trait Payload {
    fn to_impl(&mut self) -> String;

    fn describe(&self) -> String {
        self.to_impl()
    }
}
`
		got, err := File(src, Options{})
		if err != nil {
			t.Fatalf("File() error: %v", err)
		}
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("async_mode_is_byte_identical", func(t *testing.T) {
		src := `pub async fn fetch() -> String {
    get_string().await
}
`
		got, err := File(src, Options{Mode: ModeAsync})
		if err != nil {
			t.Fatalf("File() error: %v", err)
		}
		if got != src {
			t.Errorf("pass-through changed bytes:\ngot:\n%s\nwant:\n%s", got, src)
		}
	})

	t.Run("synchronous_file_is_byte_identical", func(t *testing.T) {
		src := `// no async anywhere,   spacing preserved

fn one(  ) ->   u32 { 1 }

struct Keep { field: u32 }
`
		got, err := File(src, Options{})
		if err != nil {
			t.Fatalf("File() error: %v", err)
		}
		if got != src {
			t.Errorf("untouched file changed bytes:\ngot:\n%s\nwant:\n%s", got, src)
		}
	})

	t.Run("textual_fallback_for_matched_units", func(t *testing.T) {
		src := `async fn print_status() {
    println!("status: {}", fetch_status().await);
}
`
		want := ` fn print_status() {
    println!("status: {}", fetch_status());
}
`
		got, err := File(src, Options{
			Textual: NewNameMatcher([]string{"print_status"}),
		})
		if err != nil {
			t.Fatalf("File() error: %v", err)
		}
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("textual_fallback_on_trait_and_impl_units", func(t *testing.T) {
		src := `trait Payload {
    async fn to_impl(&mut self) -> String;

    async fn default_impl(&mut self) -> String {
        self.to_impl().await
    }
}

impl Payload for Container {
    async fn to_impl(&mut self) -> String {
        self.body.clone()
    }
}
`
		want := `trait Payload {
     fn to_impl(&mut self) -> String;

     fn default_impl(&mut self) -> String {
        self.to_impl()
    }
}

impl Payload for Container {
     fn to_impl(&mut self) -> String {
        self.body.clone()
    }
}
`
		got, err := File(src, Options{
			Textual: NewWildcardMatcher([]string{"*"}),
		})
		if err != nil {
			t.Fatalf("File() error: %v", err)
		}
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("structural_rewrite_leaves_macro_awaits", func(t *testing.T) {
		src := `async fn print_status() {
    println!("status: {}", fetch_status().await);
}
`
		want := `fn print_status() {
    println!("status: {}", fetch_status().await);
}
`
		got, err := File(src, Options{})
		if err != nil {
			t.Fatalf("File() error: %v", err)
		}
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("only_matcher_limits_scope", func(t *testing.T) {
		src := `async fn first() {
    a().await;
}

async fn second() {
    b().await;
}
`
		want := `fn first() {
    a();
}

async fn second() {
    b().await;
}
`
		got, err := File(src, Options{
			Only: NewNameMatcher([]string{"first"}),
		})
		if err != nil {
			t.Fatalf("File() error: %v", err)
		}
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("parse_errors_propagate", func(t *testing.T) {
		_, err := File(`fn broken( {`, Options{})
		if err == nil {
			t.Fatal("expected error for unterminated parameter list")
		}
		if !strings.Contains(err.Error(), "unterminated") {
			t.Errorf("error = %v", err)
		}
	})
}

func TestApply(t *testing.T) {
	t.Run("rewrites_one_unit", func(t *testing.T) {
		src := `async fn print_string() {
    let string = get_string().await;
    println!("{}", string);
}`
		want := `fn print_string() {
    let string = get_string();
    println!("{}", string);
}`
		got, err := Apply(src, Options{})
		if err != nil {
			t.Fatalf("Apply() error: %v", err)
		}
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("async_mode_is_byte_identical", func(t *testing.T) {
		src := `async fn ping() { pong().await; }`
		got, err := Apply(src, Options{Mode: ModeAsync})
		if err != nil {
			t.Fatalf("Apply() error: %v", err)
		}
		if got != src {
			t.Errorf("pass-through changed bytes: %q", got)
		}
	})

	t.Run("synchronous_unit_keeps_its_formatting", func(t *testing.T) {
		src := `fn compact(){already_done()}`
		got, err := Apply(src, Options{})
		if err != nil {
			t.Fatalf("Apply() error: %v", err)
		}
		if got != src {
			t.Errorf("unit with nothing to rewrite changed: %q", got)
		}
	})

	t.Run("rejects_non_functions", func(t *testing.T) {
		_, err := Apply(`enum Side { Left, Right }`, Options{})
		if err == nil {
			t.Fatal("expected error for non-function input")
		}
		if !strings.Contains(err.Error(), "found enum") {
			t.Errorf("error %v does not name the item kind", err)
		}
	})
}

func TestFromFeatures(t *testing.T) {
	tests := []struct {
		name     string
		features []string
		want     Mode
	}{
		{name: "empty_selects_sync", features: nil, want: ModeSync},
		{name: "async_feature_selected", features: []string{"std", "async"}, want: ModeAsync},
		{name: "name_must_match_exactly", features: []string{"asynchronous"}, want: ModeSync},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromFeatures(tt.features); got != tt.want {
				t.Errorf("FromFeatures(%v) = %v, want %v", tt.features, got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("sync"); err != nil || m != ModeSync {
		t.Errorf("ParseMode(sync) = %v, %v", m, err)
	}
	if m, err := ParseMode("async"); err != nil || m != ModeAsync {
		t.Errorf("ParseMode(async) = %v, %v", m, err)
	}
	if _, err := ParseMode("tokio"); err == nil || !strings.Contains(err.Error(), "mode must be sync or async") {
		t.Errorf("ParseMode(tokio) error = %v", err)
	}
}

func TestMode_String(t *testing.T) {
	if ModeSync.String() != "sync" || ModeAsync.String() != "async" {
		t.Errorf("got %q and %q", ModeSync, ModeAsync)
	}
}
