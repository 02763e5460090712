package ast

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Int(value int64) *IntegerLiteral {
	return NewIntegerLiteral(value, false)
}

func Long(value int64) *IntegerLiteral {
	return NewIntegerLiteral(value, true)
}

func Dbl(value float64) *FloatLiteral {
	return NewFloatLiteral(value, false)
}

func Flt(value float64) *FloatLiteral {
	return NewFloatLiteral(value, true)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Chr(value rune) *CharLiteral {
	return NewCharLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Null() *NullLiteral {
	return NewNullLiteral()
}

// Expression helpers.

func Bin(op string, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(op, left, right)
}

func Un(op string, operand Expression) *UnaryExpression {
	return NewUnaryExpression(op, operand)
}

func PostInc(operand Expression) *UpdateExpression {
	return NewUpdateExpression("++", false, operand)
}

func PostDec(operand Expression) *UpdateExpression {
	return NewUpdateExpression("--", false, operand)
}

func PreInc(operand Expression) *UpdateExpression {
	return NewUpdateExpression("++", true, operand)
}

func PreDec(operand Expression) *UpdateExpression {
	return NewUpdateExpression("--", true, operand)
}

func Assign(target Expression, value Expression) *AssignmentExpression {
	return NewAssignmentExpression("=", target, value)
}

func AssignOp(op string, target Expression, value Expression) *AssignmentExpression {
	return NewAssignmentExpression(op, target, value)
}

func Cond(condition, consequence, alternative Expression) *ConditionalExpression {
	return NewConditionalExpression(condition, consequence, alternative)
}

func Call(name string, args ...Expression) *MethodCall {
	return NewMethodCall(ID(name), args)
}

// Declaration helpers.

func Ty(name string) *TypeReference {
	return NewTypeReference(name)
}

func Declarator(name string, initializer Expression) *VariableDeclarator {
	return NewVariableDeclarator(ID(name), initializer)
}

func VarDecl(typeName string, declarators ...*VariableDeclarator) *VariableDeclaration {
	return NewVariableDeclaration(Ty(typeName), declarators)
}

// Var declares a single variable; a nil initializer leaves it at the type's zero value.
func Var(typeName, name string, initializer Expression) *VariableDeclaration {
	return VarDecl(typeName, Declarator(name, initializer))
}

func Param(typeName, name string) *Parameter {
	return NewParameter(ID(name), Ty(typeName))
}

func Method(returnType, name string, params []*Parameter, body *Block) *MethodDeclaration {
	return NewMethodDeclaration(Ty(returnType), ID(name), params, body)
}

// Statement helpers.

func Stmt(expr Expression) *ExpressionStatement {
	return NewExpressionStatement(expr)
}

func Blk(statements ...Statement) *Block {
	return NewBlock(statements)
}

func Ret(argument Expression) *ReturnStatement {
	return NewReturnStatement(argument)
}

func While(condition Expression, body Statement) *WhileStatement {
	return NewWhileStatement(condition, body)
}

func If(condition Expression, consequence, alternative Statement) *IfStatement {
	return NewIfStatement(condition, consequence, alternative)
}
