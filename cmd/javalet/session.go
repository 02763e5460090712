package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"javalet/interpreter-go/pkg/driver"
	"javalet/interpreter-go/pkg/interpreter"
)

// cliSession pairs an interpreter with the CLI settings that shape its output.
type cliSession struct {
	interp *interpreter.Interpreter
	cfg    *driver.Config
	trace  bool
	out    io.Writer
	errOut io.Writer
}

// newCLISession creates an interpreter and evaluates the configured preload fragments.
func newCLISession(cfg *driver.Config, opts globalOptions) (*cliSession, error) {
	s := &cliSession{
		interp: interpreter.New(),
		cfg:    cfg,
		trace:  opts.trace,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for idx, fragment := range cfg.Preload {
		if _, err := s.interp.Interpret(fragment); err != nil {
			s.interp.Close()
			return nil, fmt.Errorf("preload[%d]: %s", idx, interpreter.DescribeError(err))
		}
	}
	return s, nil
}

func (s *cliSession) Close() {
	s.interp.Close()
}

// evaluate interprets one fragment and prints its result. Diagnostics are shifted by
// lineOffset and attributed to path so they point into the originating file.
func (s *cliSession) evaluate(source, path string, lineOffset int) bool {
	res, kind, err := s.interp.InterpretFragment(source)
	if s.trace && err == nil {
		fmt.Fprintf(s.errOut, "trace: %s %q\n", kind, strings.TrimSpace(source))
	}
	if err != nil {
		s.report(err, path, lineOffset)
		return false
	}
	if interpreter.IsVoid(res) {
		if s.cfg.ShowVoid {
			fmt.Fprintln(s.out, "(no result)")
		}
		return true
	}
	text, err := interpreter.FormatResult(res)
	if err != nil {
		s.report(err, path, lineOffset)
		return false
	}
	fmt.Fprintln(s.out, text)
	return true
}

func (s *cliSession) report(err error, path string, lineOffset int) {
	diag := interpreter.DiagnosticFor(err)
	if path != "" || lineOffset != 0 {
		diag = diag.Shift(path, lineOffset)
	}
	fmt.Fprintln(s.errOut, interpreter.DescribeDiagnostic(diag))
}
