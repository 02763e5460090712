package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"javalet/interpreter-go/pkg/ast"
)

func (ctx *parseContext) parseStatement(node *sitter.Node) (ast.Statement, error) {
	if node == nil {
		return nil, ctx.malformed(node, "missing statement")
	}

	switch node.Kind() {
	case ";":
		stmt := ast.NewEmptyStatement()
		ctx.annotate(stmt, node)
		return stmt, nil
	case "expression_statement":
		expr, err := ctx.parseExpression(firstNamedChild(node))
		if err != nil {
			return nil, err
		}
		stmt := ast.NewExpressionStatement(expr)
		ctx.annotate(stmt, node)
		return stmt, nil
	case "local_variable_declaration":
		return ctx.parseVariableDeclaration(node)
	case "block":
		block, err := ctx.parseBlock(node)
		if err != nil {
			return nil, err
		}
		return block, nil
	case "return_statement":
		var argument ast.Expression
		if inner := firstNamedChild(node); inner != nil {
			expr, err := ctx.parseExpression(inner)
			if err != nil {
				return nil, err
			}
			argument = expr
		}
		stmt := ast.NewReturnStatement(argument)
		ctx.annotate(stmt, node)
		return stmt, nil
	case "while_statement":
		return ctx.parseWhileStatement(node)
	case "if_statement":
		return ctx.parseIfStatement(node)
	default:
		return nil, ctx.unsupported(node, describeKind(node.Kind()))
	}
}

func (ctx *parseContext) parseBlock(node *sitter.Node) (*ast.Block, error) {
	if node == nil || node.Kind() != "block" {
		return nil, ctx.malformed(node, "expected block")
	}
	statements := make([]ast.Statement, 0)
	for _, child := range significantChildren(node) {
		switch child.Kind() {
		case "{", "}":
			continue
		}
		stmt, err := ctx.parseStatement(child)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	block := ast.NewBlock(statements)
	ctx.annotate(block, node)
	return block, nil
}

func (ctx *parseContext) parseWhileStatement(node *sitter.Node) (ast.Statement, error) {
	condition, err := ctx.parseExpression(node.ChildByFieldName("condition"))
	if err != nil {
		return nil, err
	}
	body, err := ctx.parseStatement(node.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	stmt := ast.NewWhileStatement(condition, body)
	ctx.annotate(stmt, node)
	return stmt, nil
}

func (ctx *parseContext) parseIfStatement(node *sitter.Node) (ast.Statement, error) {
	condition, err := ctx.parseExpression(node.ChildByFieldName("condition"))
	if err != nil {
		return nil, err
	}
	consequence, err := ctx.parseStatement(node.ChildByFieldName("consequence"))
	if err != nil {
		return nil, err
	}
	var alternative ast.Statement
	if altNode := node.ChildByFieldName("alternative"); altNode != nil {
		alternative, err = ctx.parseStatement(altNode)
		if err != nil {
			return nil, err
		}
	}
	stmt := ast.NewIfStatement(condition, consequence, alternative)
	ctx.annotate(stmt, node)
	return stmt, nil
}

func (ctx *parseContext) parseVariableDeclaration(node *sitter.Node) (ast.Statement, error) {
	typ, err := ctx.parseTypeReference(node.ChildByFieldName("type"))
	if err != nil {
		return nil, err
	}
	declarators := make([]*ast.VariableDeclarator, 0, 1)
	for i := uint(0); i < node.ChildCount(); i++ {
		if node.FieldNameForChild(uint32(i)) != "declarator" {
			continue
		}
		declarator, err := ctx.parseVariableDeclarator(node.Child(i))
		if err != nil {
			return nil, err
		}
		declarators = append(declarators, declarator)
	}
	if len(declarators) == 0 {
		return nil, ctx.malformed(node, "variable declaration without declarators")
	}
	decl := ast.NewVariableDeclaration(typ, declarators)
	ctx.annotate(decl, node)
	return decl, nil
}

func (ctx *parseContext) parseVariableDeclarator(node *sitter.Node) (*ast.VariableDeclarator, error) {
	if node == nil || node.Kind() != "variable_declarator" {
		return nil, ctx.malformed(node, "expected variable declarator")
	}
	if node.ChildByFieldName("dimensions") != nil {
		return nil, ctx.unsupported(node, "array declarator")
	}
	name, err := ctx.parseIdentifier(node.ChildByFieldName("name"))
	if err != nil {
		return nil, err
	}
	var initializer ast.Expression
	if valueNode := node.ChildByFieldName("value"); valueNode != nil {
		initializer, err = ctx.parseExpression(valueNode)
		if err != nil {
			return nil, err
		}
	}
	declarator := ast.NewVariableDeclarator(name, initializer)
	ctx.annotate(declarator, node)
	return declarator, nil
}

func (ctx *parseContext) parseTypeReference(node *sitter.Node) (*ast.TypeReference, error) {
	if node == nil {
		return nil, ctx.malformed(node, "missing type")
	}
	switch node.Kind() {
	case "integral_type", "floating_point_type", "boolean_type", "void_type",
		"type_identifier", "scoped_type_identifier", "generic_type":
		ref := ast.NewTypeReference(sliceContent(node, ctx.source))
		ctx.annotate(ref, node)
		return ref, nil
	default:
		return nil, ctx.unsupported(node, describeKind(node.Kind()))
	}
}

func (ctx *parseContext) parseMethodDeclaration(node *sitter.Node) (*ast.MethodDeclaration, error) {
	if node.ChildByFieldName("type_parameters") != nil {
		return nil, ctx.unsupported(node, "generic method")
	}
	if node.ChildByFieldName("dimensions") != nil {
		return nil, ctx.unsupported(node, "array return type")
	}
	returnType, err := ctx.parseTypeReference(node.ChildByFieldName("type"))
	if err != nil {
		return nil, err
	}
	name, err := ctx.parseIdentifier(node.ChildByFieldName("name"))
	if err != nil {
		return nil, err
	}
	params, err := ctx.parseFormalParameters(node.ChildByFieldName("parameters"))
	if err != nil {
		return nil, err
	}
	var body *ast.Block
	if bodyNode := node.ChildByFieldName("body"); bodyNode != nil {
		body, err = ctx.parseBlock(bodyNode)
		if err != nil {
			return nil, err
		}
	}
	decl := ast.NewMethodDeclaration(returnType, name, params, body)
	ctx.annotate(decl, node)
	return decl, nil
}

func (ctx *parseContext) parseFormalParameters(node *sitter.Node) ([]*ast.Parameter, error) {
	params := make([]*ast.Parameter, 0)
	if node == nil {
		return params, nil
	}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil || isIgnorableNode(child) {
			continue
		}
		if child.Kind() != "formal_parameter" {
			return nil, ctx.unsupported(child, describeKind(child.Kind()))
		}
		if child.ChildByFieldName("dimensions") != nil {
			return nil, ctx.unsupported(child, "array parameter")
		}
		typ, err := ctx.parseTypeReference(child.ChildByFieldName("type"))
		if err != nil {
			return nil, err
		}
		name, err := ctx.parseIdentifier(child.ChildByFieldName("name"))
		if err != nil {
			return nil, err
		}
		param := ast.NewParameter(name, typ)
		ctx.annotate(param, child)
		params = append(params, param)
	}
	return params, nil
}
