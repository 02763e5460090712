package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"javalet/interpreter-go/pkg/ast"
)

// parseContext carries the source being lowered. lineOffset is the number of synthetic
// lines placed before the fragment when it had to be wrapped to parse.
type parseContext struct {
	source     []byte
	lineOffset int
}

func newParseContext(source []byte, lineOffset int) *parseContext {
	return &parseContext{source: source, lineOffset: lineOffset}
}

func (ctx *parseContext) parseIdentifier(node *sitter.Node) (*ast.Identifier, error) {
	if node == nil || node.Kind() != "identifier" {
		return nil, ctx.malformed(node, "expected identifier")
	}
	id := ast.NewIdentifier(sliceContent(node, ctx.source))
	ctx.annotate(id, node)
	return id, nil
}

func (ctx *parseContext) annotate(target ast.Node, node *sitter.Node) {
	if target == nil || node == nil {
		return
	}
	ast.SetSpan(target, spanFromNode(node).ShiftLines(ctx.lineOffset))
}

func (ctx *parseContext) unsupported(node *sitter.Node, what string) error {
	return unsupportedSyntax(node, ctx.lineOffset, what)
}

func (ctx *parseContext) malformed(node *sitter.Node, format string, args ...any) error {
	return malformed(node, ctx.lineOffset, format, args...)
}

func sliceContent(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	start := int(node.StartByte())
	end := int(node.EndByte())
	if start < 0 || end < start || end > len(source) {
		return ""
	}
	return string(source[start:end])
}

func spanFromNode(node *sitter.Node) ast.Span {
	if node == nil {
		return ast.Span{}
	}
	start := node.StartPosition()
	end := node.EndPosition()
	return ast.Span{
		Start: ast.Position{Line: int(start.Row) + 1, Column: int(start.Column) + 1},
		End:   ast.Position{Line: int(end.Row) + 1, Column: int(end.Column) + 1},
	}
}

// significantChildren returns every child except comments, named or not.
func significantChildren(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	out := make([]*sitter.Node, 0, node.ChildCount())
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil || isIgnorableNode(child) {
			continue
		}
		out = append(out, child)
	}
	return out
}

func firstNamedChild(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil || isIgnorableNode(child) {
			continue
		}
		return child
	}
	return nil
}

func isIgnorableNode(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind() {
	case "comment", "line_comment", "block_comment":
		return true
	default:
		return false
	}
}

// describeKind turns a grammar node kind into words for diagnostics.
func describeKind(kind string) string {
	return strings.ReplaceAll(kind, "_", " ")
}
