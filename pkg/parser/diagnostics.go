package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

var (
	// ErrUnparseableInput marks a fragment that is neither an expression, a statement,
	// nor a body declaration.
	ErrUnparseableInput = errors.New("unparseable input")
	// ErrUnsupportedSyntax marks well-formed source using a construct the evaluator lacks.
	ErrUnsupportedSyntax = errors.New("unsupported syntax")
)

// SourceLocation captures a source span for parser diagnostics.
type SourceLocation struct {
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

func (l SourceLocation) String() string {
	if l.Line == 0 {
		return ""
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// ParseError includes a message plus a best-effort source location.
type ParseError struct {
	Message  string
	Location SourceLocation

	causes []error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() []error {
	return e.causes
}

func syntaxError(root *sitter.Node, lineOffset int) *ParseError {
	missing := findFirstMissingNode(root)
	errorNode := missing
	if errorNode == nil {
		errorNode = findFirstErrorNode(root)
	}
	if errorNode == nil {
		errorNode = root
	}
	location := SourceLocation{}
	if errorNode != nil {
		location = locationForNode(errorNode, lineOffset)
	}
	expected := ""
	if missing != nil {
		expected = formatExpectedKind(missing.Kind())
	}
	message := "parser: syntax error"
	if expected != "" {
		message = fmt.Sprintf("parser: syntax error: expected %s", expected)
	}
	return &ParseError{
		Message:  message,
		Location: location,
	}
}

func unsupportedSyntax(node *sitter.Node, lineOffset int, what string) *ParseError {
	return &ParseError{
		Message:  fmt.Sprintf("parser: unsupported syntax: %s", what),
		Location: locationForNode(node, lineOffset),
		causes:   []error{ErrUnsupportedSyntax, ErrUnparseableInput},
	}
}

func malformed(node *sitter.Node, lineOffset int, format string, args ...any) *ParseError {
	return &ParseError{
		Message:  "parser: " + fmt.Sprintf(format, args...),
		Location: locationForNode(node, lineOffset),
	}
}

// unparseable builds the final fallback error, keeping the most relevant attempt's detail.
func unparseable(detail *ParseError) *ParseError {
	err := &ParseError{
		Message: "parser: unparseable input",
		causes:  []error{ErrUnparseableInput},
	}
	if detail != nil {
		err.Message = fmt.Sprintf("parser: unparseable input (%s)", strings.TrimPrefix(detail.Message, "parser: "))
		err.Location = detail.Location
	}
	return err
}

func locationForNode(node *sitter.Node, lineOffset int) SourceLocation {
	if node == nil {
		return SourceLocation{}
	}
	start := node.StartPosition()
	end := node.EndPosition()
	return SourceLocation{
		Line:      clampLine(int(start.Row) + 1 - lineOffset),
		Column:    int(start.Column) + 1,
		EndLine:   clampLine(int(end.Row) + 1 - lineOffset),
		EndColumn: int(end.Column) + 1,
	}
}

func clampLine(line int) int {
	if line < 1 {
		return 1
	}
	return line
}

func findFirstMissingNode(root *sitter.Node) *sitter.Node {
	var best *sitter.Node
	walkNodes(root, func(node *sitter.Node) {
		if node == nil || !node.IsMissing() {
			return
		}
		if best == nil || node.StartByte() < best.StartByte() {
			best = node
		}
	})
	return best
}

func findFirstErrorNode(root *sitter.Node) *sitter.Node {
	var best *sitter.Node
	walkNodes(root, func(node *sitter.Node) {
		if node == nil || !node.IsError() {
			return
		}
		if best == nil || node.StartByte() < best.StartByte() {
			best = node
		}
	})
	return best
}

func walkNodes(root *sitter.Node, visit func(node *sitter.Node)) {
	if root == nil {
		return
	}
	visit(root)
	for i := uint(0); i < root.ChildCount(); i++ {
		child := root.Child(i)
		if child == nil {
			continue
		}
		walkNodes(child, visit)
	}
}

func formatExpectedKind(kind string) string {
	trimmed := strings.TrimSpace(kind)
	if trimmed == "" {
		return "token"
	}
	isSymbol := true
	for _, r := range trimmed {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			isSymbol = false
			break
		}
	}
	if len(trimmed) == 1 || isSymbol {
		return fmt.Sprintf("'%s'", trimmed)
	}
	return strings.ReplaceAll(trimmed, "_", " ")
}
