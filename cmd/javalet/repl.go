package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"javalet/interpreter-go/pkg/driver"
	"javalet/interpreter-go/pkg/interpreter"
	"javalet/interpreter-go/pkg/parser"
	"javalet/interpreter-go/pkg/runtime"
)

const replHelp = `REPL commands:
  :help    Show this help
  :scope   List global variables and methods
  :reset   Discard all declarations
  :quit    Exit the REPL`

func runRepl(args []string, cfg *driver.Config, opts globalOptions) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "javalet repl does not take arguments (received %s)\n", strings.Join(args, " "))
		return 1
	}

	session, err := newCLISession(cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "javalet repl: %v\n", err)
		return 1
	}
	defer func() { session.Close() }()

	probe, err := parser.NewFragmentParser()
	if err != nil {
		fmt.Fprintf(os.Stderr, "javalet repl: %v\n", err)
		return 1
	}
	defer probe.Close()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	loadHistory(ln, cfg.HistoryFile)
	defer saveHistory(ln, cfg.HistoryFile)

	fmt.Fprintf(os.Stdout, "%s REPL. Type :help for commands, Ctrl+D to exit.\n", cliToolVersion)
	for {
		source, ok := readFragment(ln, probe, cfg.Prompt, cfg.ContinuationPrompt)
		if !ok {
			fmt.Fprintln(os.Stdout)
			return 0
		}
		trimmed := strings.TrimSpace(source)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(source)

		switch trimmed {
		case ":quit", ":exit", ":q":
			return 0
		case ":help":
			fmt.Fprintln(os.Stdout, replHelp)
			continue
		case ":scope":
			printScope(session.interp.GlobalScope())
			continue
		case ":reset":
			fresh, err := newCLISession(cfg, opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "javalet repl: %v\n", err)
				continue
			}
			session.Close()
			session = fresh
			continue
		}
		session.evaluate(source, "", 0)
	}
}

// readFragment reads lines until they form a fragment. An empty line while continuing
// submits what has been typed so far.
func readFragment(ln *liner.State, probe *parser.FragmentParser, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		current := prompt
		if b.Len() > 0 {
			current = cont
		}
		line, err := ln.Prompt(current)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			if strings.TrimSpace(line) == "" {
				return b.String(), true
			}
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !probe.Incomplete(src) {
			return src, true
		}
	}
}

func printScope(scope *runtime.Scope) {
	names := scope.Names()
	if len(names) == 0 {
		fmt.Fprintln(os.Stdout, "(empty)")
		return
	}
	for _, name := range names {
		entity, _ := scope.Lookup(name)
		switch e := entity.(type) {
		case *runtime.Variable:
			fmt.Fprintf(os.Stdout, "%s %s = %s\n", e.Type, e.Name, interpreter.FormatValue(e.Value))
		case *runtime.Method:
			params := make([]string, len(e.Params))
			for i, p := range e.Params {
				params[i] = fmt.Sprintf("%s %s", p.Type, p.Name)
			}
			fmt.Fprintf(os.Stdout, "%s %s(%s)\n", e.ReturnType, e.Name, strings.Join(params, ", "))
		}
	}
}

func loadHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	if f, err := os.Open(path); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
}

func saveHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	if f, err := os.Create(path); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
}
