package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"javalet/interpreter-go/pkg/parser"
)

// DiagnosticLocation references a position in the evaluated source.
type DiagnosticLocation struct {
	Path   string
	Line   int
	Column int
}

// Diagnostic is the structured form of a fragment failure.
type Diagnostic struct {
	Stage    string
	Kind     ErrorKind
	Message  string
	Location DiagnosticLocation
}

// DiagnosticFor extracts a diagnostic from an error returned by Interpret or Evaluate.
func DiagnosticFor(err error) Diagnostic {
	diag := Diagnostic{Stage: "runtime"}
	if err == nil {
		return diag
	}
	diag.Kind, _ = KindOf(err)
	diag.Message = err.Error()

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		diag.Stage = "parser"
		diag.Message = parseErr.Message
		diag.Location = DiagnosticLocation{Line: parseErr.Location.Line, Column: parseErr.Location.Column}
		return diag
	}
	var rtErr *RuntimeError
	if errors.As(err, &rtErr) {
		diag.Message = rtErr.Message
		diag.Location = DiagnosticLocation{Line: rtErr.Span.Start.Line, Column: rtErr.Span.Start.Column}
	}
	return diag
}

// Shift moves the diagnostic down by the given number of lines and records the file it
// came from; used when fragments are cut out of a larger file.
func (d Diagnostic) Shift(path string, lines int) Diagnostic {
	d.Location.Path = path
	if d.Location.Line > 0 {
		d.Location.Line += lines
	}
	return d
}

// DescribeDiagnostic formats a diagnostic for CLI output.
func DescribeDiagnostic(diag Diagnostic) string {
	prefix := diag.Stage
	if prefix == "" {
		prefix = "runtime"
	}
	message := strings.TrimSpace(diag.Message)
	if strings.HasPrefix(message, prefix+":") {
		message = strings.TrimSpace(strings.TrimPrefix(message, prefix+":"))
	}
	if diag.Kind != "" && diag.Stage == "runtime" {
		message = fmt.Sprintf("%s: %s", diag.Kind, message)
	}
	location := formatDiagnosticLocation(diag.Location)
	if location != "" {
		return fmt.Sprintf("%s: %s %s", prefix, location, message)
	}
	return fmt.Sprintf("%s: %s", prefix, message)
}

// DescribeError formats any error returned by the interpreter.
func DescribeError(err error) string {
	if err == nil {
		return ""
	}
	return DescribeDiagnostic(DiagnosticFor(err))
}

func formatDiagnosticLocation(loc DiagnosticLocation) string {
	path := strings.TrimSpace(loc.Path)
	switch {
	case path != "" && loc.Line > 0 && loc.Column > 0:
		return fmt.Sprintf("%s:%d:%d", path, loc.Line, loc.Column)
	case path != "" && loc.Line > 0:
		return fmt.Sprintf("%s:%d", path, loc.Line)
	case path != "":
		return path
	case loc.Line > 0 && loc.Column > 0:
		return fmt.Sprintf("%d:%d", loc.Line, loc.Column)
	case loc.Line > 0:
		return fmt.Sprintf("line %d", loc.Line)
	default:
		return ""
	}
}
