package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/wippyai/unasync/generate"
	"github.com/wippyai/unasync/rewrite"
	"github.com/wippyai/unasync/syntax"
)

func main() {
	var (
		mode        = flag.String("mode", "", "Rewrite mode: sync or async (async passes files through)")
		features    = flag.String("features", "", "Build features (comma-separated); the async feature selects async mode")
		textualPats = flag.String("textual", "", "Unit names stripped with the textual fallback (comma-separated, * wildcards)")
		onlyPats    = flag.String("only", "", "Restrict rewriting to matching unit names (comma-separated, * wildcards)")
		write       = flag.Bool("write", false, "Rewrite files in place instead of printing to stdout")
		list        = flag.Bool("list", false, "List function units and what a rewrite would change, then exit")
		debug       = flag.Bool("debug", false, "Log every rewrite decision")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: unasync [flags] <file.rs> [file.rs ...]")
		fmt.Fprintln(os.Stderr, "       unasync -list <file.rs>")
		fmt.Fprintln(os.Stderr, "       unasync -i <file.rs>  (interactive mode)")
		os.Exit(1)
	}

	opts, err := buildOptions(*mode, *features, *textualPats, *onlyPats)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		logger, lerr := zap.NewDevelopment()
		if lerr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", lerr)
			os.Exit(1)
		}
		generate.SetLogger(logger)
		defer func() { _ = logger.Sync() }()
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(files[0], opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *list {
		if err := listUnits(files); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(files, opts, *write); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildOptions(mode, features, textualPats, onlyPats string) (generate.Options, error) {
	var opts generate.Options
	if mode != "" {
		m, err := generate.ParseMode(mode)
		if err != nil {
			return opts, err
		}
		opts.Mode = m
	} else if features != "" {
		opts.Mode = generate.FromFeatures(splitList(features))
	}
	if textualPats != "" {
		opts.Textual = generate.NewWildcardMatcher(splitList(textualPats))
	}
	if onlyPats != "" {
		opts.Only = generate.NewWildcardMatcher(splitList(onlyPats))
	}
	opts.Cache = generate.NewCache()
	return opts, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// run rewrites the files in parallel. Each file is an independent pure
// computation, so ordering does not matter; output is still emitted in
// argument order.
func run(files []string, opts generate.Options, write bool) error {
	outputs := make([]string, len(files))
	var g errgroup.Group
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}
			out, err := generate.File(string(data), opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range files {
		if write {
			if err := os.WriteFile(path, []byte(outputs[i]), 0o644); err != nil {
				return fmt.Errorf("write file: %w", err)
			}
			continue
		}
		if len(files) > 1 {
			fmt.Printf("--- %s\n", path)
		}
		fmt.Print(outputs[i])
	}
	return nil
}

func listUnits(files []string) error {
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		file, err := syntax.ParseFile(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Printf("%s:\n", path)
		for _, fn := range file.Funcs {
			fmt.Printf("  %4d %s  %s\n", fn.Line, fn.Name(), strings.Join(unitNotes(fn), ", "))
		}
	}
	return nil
}

func unitNotes(fn *syntax.Func) []string {
	rep := rewrite.Analyze(fn)
	var notes []string
	if fn.Sig.Async {
		notes = append(notes, "async")
	}
	if rep.Awaits > 0 {
		notes = append(notes, fmt.Sprintf("awaits=%d", rep.Awaits))
	}
	if rep.AsyncBlocks > 0 {
		notes = append(notes, fmt.Sprintf("async-blocks=%d", rep.AsyncBlocks))
	}
	if rep.AsyncClosures > 0 {
		notes = append(notes, fmt.Sprintf("async-closures=%d", rep.AsyncClosures))
	}
	if rep.OpaqueAwaits {
		notes = append(notes, "await in macro args")
	}
	if len(notes) == 0 {
		notes = append(notes, "unchanged")
	}
	return notes
}
