package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"javalet/interpreter-go/pkg/ast"
)

func (ctx *parseContext) parseExpression(node *sitter.Node) (ast.Expression, error) {
	if node == nil {
		return nil, ctx.malformed(node, "missing expression")
	}

	switch node.Kind() {
	case "identifier":
		return ctx.parseIdentifier(node)
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal":
		return ctx.parseIntegerLiteral(node, false)
	case "decimal_floating_point_literal", "hex_floating_point_literal":
		return ctx.parseFloatLiteral(node)
	case "string_literal":
		return ctx.parseStringLiteral(node)
	case "character_literal":
		return ctx.parseCharLiteral(node)
	case "true", "false":
		lit := ast.NewBooleanLiteral(node.Kind() == "true")
		ctx.annotate(lit, node)
		return lit, nil
	case "null_literal":
		lit := ast.NewNullLiteral()
		ctx.annotate(lit, node)
		return lit, nil
	case "parenthesized_expression":
		return ctx.parseExpression(firstNamedChild(node))
	case "binary_expression":
		return ctx.parseBinaryExpression(node)
	case "unary_expression":
		return ctx.parseUnaryExpression(node)
	case "update_expression":
		return ctx.parseUpdateExpression(node)
	case "assignment_expression":
		return ctx.parseAssignmentExpression(node)
	case "ternary_expression":
		return ctx.parseTernaryExpression(node)
	case "method_invocation":
		return ctx.parseMethodInvocation(node)
	default:
		return nil, ctx.unsupported(node, describeKind(node.Kind()))
	}
}

func (ctx *parseContext) parseBinaryExpression(node *sitter.Node) (ast.Expression, error) {
	left, err := ctx.parseExpression(node.ChildByFieldName("left"))
	if err != nil {
		return nil, err
	}
	right, err := ctx.parseExpression(node.ChildByFieldName("right"))
	if err != nil {
		return nil, err
	}
	operator := sliceContent(node.ChildByFieldName("operator"), ctx.source)
	if operator == "" {
		return nil, ctx.malformed(node, "binary expression missing operator")
	}
	expr := ast.NewBinaryExpression(operator, left, right)
	ctx.annotate(expr, node)
	return expr, nil
}

func (ctx *parseContext) parseUnaryExpression(node *sitter.Node) (ast.Expression, error) {
	operator := sliceContent(node.ChildByFieldName("operator"), ctx.source)
	operandNode := node.ChildByFieldName("operand")
	if operator == "" || operandNode == nil {
		return nil, ctx.malformed(node, "malformed unary expression")
	}
	var (
		operand ast.Expression
		err     error
	)
	if operator == "-" && operandNode.Kind() == "decimal_integer_literal" {
		// -2147483648 and -9223372036854775808L are only legal when negated.
		operand, err = ctx.parseIntegerLiteral(operandNode, true)
	} else {
		operand, err = ctx.parseExpression(operandNode)
	}
	if err != nil {
		return nil, err
	}
	expr := ast.NewUnaryExpression(operator, operand)
	ctx.annotate(expr, node)
	return expr, nil
}

func (ctx *parseContext) parseUpdateExpression(node *sitter.Node) (ast.Expression, error) {
	children := significantChildren(node)
	if len(children) != 2 {
		return nil, ctx.malformed(node, "malformed update expression")
	}
	prefix := !children[0].IsNamed()
	opNode, operandNode := children[1], children[0]
	if prefix {
		opNode, operandNode = children[0], children[1]
	}
	operand, err := ctx.parseExpression(operandNode)
	if err != nil {
		return nil, err
	}
	expr := ast.NewUpdateExpression(sliceContent(opNode, ctx.source), prefix, operand)
	ctx.annotate(expr, node)
	return expr, nil
}

func (ctx *parseContext) parseAssignmentExpression(node *sitter.Node) (ast.Expression, error) {
	left, err := ctx.parseExpression(node.ChildByFieldName("left"))
	if err != nil {
		return nil, err
	}
	right, err := ctx.parseExpression(node.ChildByFieldName("right"))
	if err != nil {
		return nil, err
	}
	operator := sliceContent(node.ChildByFieldName("operator"), ctx.source)
	if operator == "" {
		return nil, ctx.malformed(node, "assignment missing operator")
	}
	expr := ast.NewAssignmentExpression(operator, left, right)
	ctx.annotate(expr, node)
	return expr, nil
}

func (ctx *parseContext) parseTernaryExpression(node *sitter.Node) (ast.Expression, error) {
	condition, err := ctx.parseExpression(node.ChildByFieldName("condition"))
	if err != nil {
		return nil, err
	}
	consequence, err := ctx.parseExpression(node.ChildByFieldName("consequence"))
	if err != nil {
		return nil, err
	}
	alternative, err := ctx.parseExpression(node.ChildByFieldName("alternative"))
	if err != nil {
		return nil, err
	}
	expr := ast.NewConditionalExpression(condition, consequence, alternative)
	ctx.annotate(expr, node)
	return expr, nil
}

func (ctx *parseContext) parseMethodInvocation(node *sitter.Node) (ast.Expression, error) {
	if node.ChildByFieldName("object") != nil {
		return nil, ctx.unsupported(node, "method invocation on a receiver")
	}
	if node.ChildByFieldName("type_arguments") != nil {
		return nil, ctx.unsupported(node, "explicit type arguments")
	}
	name, err := ctx.parseIdentifier(node.ChildByFieldName("name"))
	if err != nil {
		return nil, err
	}
	argsNode := node.ChildByFieldName("arguments")
	args := make([]ast.Expression, 0)
	if argsNode != nil {
		for i := uint(0); i < argsNode.NamedChildCount(); i++ {
			child := argsNode.NamedChild(i)
			if child == nil || isIgnorableNode(child) {
				continue
			}
			arg, err := ctx.parseExpression(child)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	call := ast.NewMethodCall(name, args)
	ctx.annotate(call, node)
	return call, nil
}
