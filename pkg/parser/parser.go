package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"javalet/interpreter-go/pkg/ast"
	"javalet/interpreter-go/pkg/parser/language"
)

// FragmentKind records which parse attempt accepted a fragment.
type FragmentKind int

const (
	FragmentExpression FragmentKind = iota + 1
	FragmentStatement
	FragmentDeclaration
)

func (k FragmentKind) String() string {
	switch k {
	case FragmentExpression:
		return "expression"
	case FragmentStatement:
		return "statement"
	case FragmentDeclaration:
		return "declaration"
	default:
		return "unknown"
	}
}

const (
	declarationWrapperOpen  = "class __Fragment {\n"
	declarationWrapperClose = "\n}"
	declarationWrapperLines = 1
)

// errWrongShape marks an attempt that failed because the text is not the kind of fragment
// being tried. Attempts failing for any other reason end the fallback.
var errWrongShape = errors.New("wrong fragment shape")

// FragmentParser wraps a tree-sitter parser configured for Java fragments. It is not safe
// for concurrent use.
type FragmentParser struct {
	parser *sitter.Parser
}

// NewFragmentParser constructs a parser with the Java language loaded.
func NewFragmentParser() (*FragmentParser, error) {
	lang := language.Java()
	if lang == nil {
		return nil, fmt.Errorf("parser: java language not available")
	}

	p := sitter.NewParser()
	if err := p.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	return &FragmentParser{parser: p}, nil
}

// Close releases parser resources.
func (p *FragmentParser) Close() {
	if p == nil || p.parser == nil {
		return
	}
	p.parser.Close()
}

// ParseFragment tries the source as an expression, then as a statement, then as a class
// body declaration, and returns the first tree that fits.
func (p *FragmentParser) ParseFragment(source string) (ast.Node, FragmentKind, error) {
	expr, err := p.ParseExpression(source)
	if err == nil {
		return expr, FragmentExpression, nil
	}
	if !errors.Is(err, errWrongShape) {
		return nil, 0, err
	}

	stmt, stmtErr := p.ParseStatement(source)
	if stmtErr == nil {
		return stmt, FragmentStatement, nil
	}
	if !errors.Is(stmtErr, errWrongShape) {
		return nil, 0, stmtErr
	}

	decl, err := p.ParseBodyDeclaration(source)
	if err == nil {
		return decl, FragmentDeclaration, nil
	}
	if !errors.Is(err, errWrongShape) {
		return nil, 0, err
	}

	var detail *ParseError
	errors.As(stmtErr, &detail)
	return nil, 0, unparseable(detail)
}

// ParseExpression parses source as a single expression.
func (p *FragmentParser) ParseExpression(source string) (ast.Expression, error) {
	text := []byte(source + "\n;")
	tree, err := p.parse(text)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, wrongShape(syntaxError(root, 0))
	}
	children := significantChildren(root)
	if len(children) != 1 || children[0].Kind() != "expression_statement" {
		return nil, wrongShape(malformed(root, 0, "not an expression"))
	}
	inner := firstNamedChild(children[0])
	if inner == nil {
		return nil, wrongShape(malformed(children[0], 0, "not an expression"))
	}

	ctx := newParseContext(text, 0)
	return ctx.parseExpression(inner)
}

// ParseStatement parses source as a single statement.
func (p *FragmentParser) ParseStatement(source string) (ast.Statement, error) {
	text := []byte(source)
	tree, err := p.parse(text)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, wrongShape(syntaxError(root, 0))
	}
	children := significantChildren(root)
	if len(children) != 1 {
		return nil, wrongShape(malformed(root, 0, "expected a single statement, found %d", len(children)))
	}
	if children[0].Kind() == "method_declaration" {
		return nil, wrongShape(malformed(children[0], 0, "method declaration is not a statement"))
	}

	ctx := newParseContext(text, 0)
	return ctx.parseStatement(children[0])
}

// ParseBodyDeclaration parses source as a single member of a class body. Only method
// declarations are supported.
func (p *FragmentParser) ParseBodyDeclaration(source string) (ast.Declaration, error) {
	text := []byte(declarationWrapperOpen + source + declarationWrapperClose)
	tree, err := p.parse(text)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, wrongShape(syntaxError(root, declarationWrapperLines))
	}
	children := significantChildren(root)
	if len(children) != 1 || children[0].Kind() != "class_declaration" {
		return nil, wrongShape(malformed(root, declarationWrapperLines, "not a body declaration"))
	}
	body := children[0].ChildByFieldName("body")
	members := make([]*sitter.Node, 0, 1)
	for _, child := range significantChildren(body) {
		if child.IsNamed() {
			members = append(members, child)
		}
	}
	if len(members) != 1 {
		return nil, wrongShape(malformed(body, declarationWrapperLines, "expected a single declaration, found %d", len(members)))
	}

	ctx := newParseContext(text, declarationWrapperLines)
	member := members[0]
	if member.Kind() != "method_declaration" {
		return nil, ctx.unsupported(member, describeKind(member.Kind()))
	}
	decl, err := ctx.parseMethodDeclaration(member)
	if err != nil {
		return nil, err
	}
	return decl, nil
}

// Incomplete reports whether source stops short of a fragment: a bracket is still open,
// or the parser ran out of input while a token such as a semicolon was still required.
// Callers reading line by line use it to decide whether to keep reading.
func (p *FragmentParser) Incomplete(source string) bool {
	trimmed := strings.TrimRightFunc(source, unicode.IsSpace)
	if trimmed == "" {
		return false
	}
	if openBrackets(trimmed) > 0 {
		return true
	}
	if _, _, err := p.ParseFragment(trimmed); err == nil {
		return false
	}
	tree, err := p.parse([]byte(trimmed))
	if err != nil {
		return false
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return false
	}
	end := uint(len(trimmed))
	incomplete := false
	walkNodes(root, func(node *sitter.Node) {
		if node.IsMissing() && node.StartByte() >= end {
			incomplete = true
		}
	})
	return incomplete
}

// openBrackets counts unclosed (, [ and { outside string and character literals and
// comments.
func openBrackets(source string) int {
	depth := 0
	for i := 0; i < len(source); i++ {
		switch c := source[i]; c {
		case '"', '\'':
			for i++; i < len(source) && source[i] != c && source[i] != '\n'; i++ {
				if source[i] == '\\' {
					i++
				}
			}
		case '/':
			if i+1 < len(source) && source[i+1] == '/' {
				for i < len(source) && source[i] != '\n' {
					i++
				}
			} else if i+1 < len(source) && source[i+1] == '*' {
				end := strings.Index(source[i+2:], "*/")
				if end < 0 {
					return depth + 1
				}
				i += end + 3
			}
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		}
	}
	return depth
}

func (p *FragmentParser) parse(text []byte) (*sitter.Tree, error) {
	if p == nil || p.parser == nil {
		return nil, fmt.Errorf("parser: nil parser")
	}
	tree := p.parser.Parse(text, nil)
	if tree == nil {
		return nil, fmt.Errorf("parser: parse produced no tree")
	}
	if root := tree.RootNode(); root == nil || root.Kind() != "program" {
		tree.Close()
		return nil, fmt.Errorf("parser: unexpected root node")
	}
	return tree, nil
}

func wrongShape(err *ParseError) *ParseError {
	err.causes = append(err.causes, errWrongShape)
	return err
}
