package rewrite

import (
	"strings"
	"testing"

	"github.com/wippyai/unasync/syntax"
)

func rewriteSource(t *testing.T, src string) string {
	t.Helper()
	out, err := Source(src)
	if err != nil {
		t.Fatalf("Source() error: %v", err)
	}
	return out
}

func TestSource(t *testing.T) {
	t.Run("clears_async_qualifier", func(t *testing.T) {
		src := `async fn get_string() -> String {
    "hello world".to_string()
}`
		want := `fn get_string() -> String {
    "hello world".to_string()
}`
		if got := rewriteSource(t, src); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("unwraps_awaited_call", func(t *testing.T) {
		src := `async fn print_string() {
    let string = get_string().await;
    println!("{}", string);
}`
		want := `fn print_string() {
    let string = get_string();
    println!("{}", string);
}`
		if got := rewriteSource(t, src); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("macro_arguments_keep_await", func(t *testing.T) {
		src := `async fn print_string() {
    println!("{}", get_string().await);
}`
		want := `fn print_string() {
    println!("{}", get_string().await);
}`
		if got := rewriteSource(t, src); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("unwraps_nested_awaits", func(t *testing.T) {
		src := `async fn combine() -> u32 {
    join(first().await, second(inner().await)?).await
}`
		want := `fn combine() -> u32 {
    join(first(), second(inner())?)
}`
		if got := rewriteSource(t, src); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("keeps_precedence_of_inner_expression", func(t *testing.T) {
		src := `async fn calc(c: u32) -> u32 {
    (base().await + bump().await) * c
}`
		want := `fn calc(c: u32) -> u32 {
    (base() + bump()) * c
}`
		if got := rewriteSource(t, src); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("chained_awaits_with_try", func(t *testing.T) {
		src := `async fn fetch_json(url: &str) -> Result<Value, Error> {
    client().get(url).send().await?.json().await
}`
		want := `fn fetch_json(url: &str) -> Result<Value, Error> {
    client().get(url).send()?.json()
}`
		if got := rewriteSource(t, src); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("trait_method_signature", func(t *testing.T) {
		got := rewriteSource(t, `async fn to_impl(&mut self) -> String;`)
		want := `fn to_impl(&mut self) -> String;`
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("async_block_becomes_plain_block", func(t *testing.T) {
		src := `async fn run() {
    let fut = async move { fetch().await };
    fut
}`
		want := `fn run() {
    let fut = {
        fetch()
    };
    fut
}`
		if got := rewriteSource(t, src); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("awaited_async_block_unwraps_in_one_pass", func(t *testing.T) {
		src := `async fn basic() {
    let result = async {
        println!("goodbye world");
        true
    }
    .await;
    assert_eq!(result, true);
}`
		want := `fn basic() {
    let result = {
        println!("goodbye world");
        true
    };
    assert_eq!(result, true);
}`
		if got := rewriteSource(t, src); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("async_closure_loses_qualifier", func(t *testing.T) {
		src := `async fn spawn_all() {
    let f = async move |x| helper(x).await;
    f(1);
}`
		want := `fn spawn_all() {
    let f = move |x| helper(x);
    f(1);
}`
		if got := rewriteSource(t, src); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("nested_function_items", func(t *testing.T) {
		src := `async fn outer() {
    async fn inner() -> u32 {
        fetch().await
    }
    inner();
}`
		want := `fn outer() {
    fn inner() -> u32 {
        fetch()
    }
    inner();
}`
		if got := rewriteSource(t, src); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("docs_and_attributes_ride_along", func(t *testing.T) {
		src := `/// Fetches the name.
#[inline]
async fn name() -> String {
    lookup().await
}`
		want := `/// Fetches the name.
#[inline]
fn name() -> String {
    lookup()
}`
		if got := rewriteSource(t, src); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})
}

func TestSource_ControlFlow(t *testing.T) {
	src := `async fn drain(rx: Receiver<u32>) -> u32 {
    let Some(seed) = prime(&rx).await else {
        return 0;
    };
    let mut total = seed;
    while let Some(x) = rx.recv().await {
        if x > limit().await {
            continue;
        }
        total += x;
    }
    for extra in leftovers(&rx).await {
        total += match classify(extra).await {
            Class::Keep if verify(extra).await => extra,
            _ => 0,
        };
    }
    total
}`
	want := `fn drain(rx: Receiver<u32>) -> u32 {
    let Some(seed) = prime(&rx) else {
        return 0;
    };
    let mut total = seed;
    while let Some(x) = rx.recv() {
        if x > limit() {
            continue;
        }
        total += x;
    }
    for extra in leftovers(&rx) {
        total += match classify(extra) {
            Class::Keep if verify(extra) => extra,
            _ => 0,
        };
    }
    total
}`
	if got := rewriteSource(t, src); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSource_Idempotent(t *testing.T) {
	src := `async fn print_string() {
    let string = get_string().await;
    println!("{}", string);
}`
	once := rewriteSource(t, src)
	twice := rewriteSource(t, once)
	if once != twice {
		t.Errorf("second pass changed output:\nfirst:\n%s\nsecond:\n%s", once, twice)
	}
}

func TestSource_RejectsNonFunctions(t *testing.T) {
	_, err := Source(`struct NotAFunction;`)
	if err == nil {
		t.Fatal("expected error for non-function input")
	}
	if !strings.Contains(err.Error(), "found struct") {
		t.Errorf("error %q does not name the item kind", err)
	}
}

func TestFunc_DoesNotModifyInput(t *testing.T) {
	f, err := syntax.ParseFunc(`async fn poll() { ready().await; }`)
	if err != nil {
		t.Fatalf("ParseFunc() error: %v", err)
	}
	out := Func(f)
	if out.Sig.Async {
		t.Error("output signature still async")
	}
	if !f.Sig.Async {
		t.Error("input signature was modified")
	}
	es, ok := f.Body.Stmts[0].(*syntax.ExprStmt)
	if !ok {
		t.Fatalf("input statement is %T", f.Body.Stmts[0])
	}
	if _, ok := es.X.(*syntax.Await); !ok {
		t.Errorf("input await was modified, now %T", es.X)
	}
}
