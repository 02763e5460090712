package ast

type NodeType string

const (
	NodeIdentifier            NodeType = "Identifier"
	NodeIntegerLiteral        NodeType = "IntegerLiteral"
	NodeFloatLiteral          NodeType = "FloatLiteral"
	NodeStringLiteral         NodeType = "StringLiteral"
	NodeCharLiteral           NodeType = "CharLiteral"
	NodeBooleanLiteral        NodeType = "BooleanLiteral"
	NodeNullLiteral           NodeType = "NullLiteral"
	NodeBinaryExpression      NodeType = "BinaryExpression"
	NodeUnaryExpression       NodeType = "UnaryExpression"
	NodeUpdateExpression      NodeType = "UpdateExpression"
	NodeAssignmentExpression  NodeType = "AssignmentExpression"
	NodeConditionalExpression NodeType = "ConditionalExpression"
	NodeMethodCall            NodeType = "MethodCall"
	NodeTypeReference         NodeType = "TypeReference"
	NodeVariableDeclarator    NodeType = "VariableDeclarator"
	NodeVariableDeclaration   NodeType = "VariableDeclaration"
	NodeExpressionStatement   NodeType = "ExpressionStatement"
	NodeBlock                 NodeType = "Block"
	NodeReturnStatement       NodeType = "ReturnStatement"
	NodeWhileStatement        NodeType = "WhileStatement"
	NodeIfStatement           NodeType = "IfStatement"
	NodeEmptyStatement        NodeType = "EmptyStatement"
	NodeParameter             NodeType = "Parameter"
	NodeMethodDeclaration     NodeType = "MethodDeclaration"
)

type Node interface {
	NodeType() NodeType
	Span() Span
	isNode()
}

type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

type nodeImpl struct {
	Type NodeType `json:"type"`
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Span() Span         { return n.span }
func (nodeImpl) isNode()              {}
func (n *nodeImpl) setSpan(span Span) { n.span = span }

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Declaration is a class-body member. Method declarations are the only kind.
type Declaration interface {
	Node
	declarationNode()
}

type declarationMarker struct{}

func (declarationMarker) declarationNode() {}

type Literal interface {
	Expression
	literalNode()
}

type literalMarker struct{}

func (literalMarker) literalNode() {}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

type IntegerLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value int64 `json:"value"`
	Long  bool  `json:"long,omitempty"`
}

func NewIntegerLiteral(value int64, long bool) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value, Long: long}
}

type FloatLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value  float64 `json:"value"`
	Single bool    `json:"single,omitempty"`
}

func NewFloatLiteral(value float64, single bool) *FloatLiteral {
	return &FloatLiteral{nodeImpl: newNodeImpl(NodeFloatLiteral), Value: value, Single: single}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type CharLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value rune `json:"value"`
}

func NewCharLiteral(value rune) *CharLiteral {
	return &CharLiteral{nodeImpl: newNodeImpl(NodeCharLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

type NullLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker
}

func NewNullLiteral() *NullLiteral {
	return &NullLiteral{nodeImpl: newNodeImpl(NodeNullLiteral)}
}

// Operators

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinaryExpression(operator string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

type UnaryExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Operand  Expression `json:"operand"`
}

func NewUnaryExpression(operator string, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

// UpdateExpression is `++`/`--` in prefix or postfix position.
type UpdateExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Prefix   bool       `json:"prefix"`
	Operand  Expression `json:"operand"`
}

func NewUpdateExpression(operator string, prefix bool, operand Expression) *UpdateExpression {
	return &UpdateExpression{nodeImpl: newNodeImpl(NodeUpdateExpression), Operator: operator, Prefix: prefix, Operand: operand}
}

type AssignmentExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewAssignmentExpression(operator string, left, right Expression) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(NodeAssignmentExpression), Operator: operator, Left: left, Right: right}
}

type ConditionalExpression struct {
	nodeImpl
	expressionMarker

	Condition   Expression `json:"condition"`
	Consequence Expression `json:"consequence"`
	Alternative Expression `json:"alternative"`
}

func NewConditionalExpression(condition, consequence, alternative Expression) *ConditionalExpression {
	return &ConditionalExpression{nodeImpl: newNodeImpl(NodeConditionalExpression), Condition: condition, Consequence: consequence, Alternative: alternative}
}

type MethodCall struct {
	nodeImpl
	expressionMarker

	Name      *Identifier  `json:"name"`
	Arguments []Expression `json:"arguments"`
}

func NewMethodCall(name *Identifier, args []Expression) *MethodCall {
	if args == nil {
		args = []Expression{}
	}
	return &MethodCall{nodeImpl: newNodeImpl(NodeMethodCall), Name: name, Arguments: args}
}

// Types and declarations

// TypeReference names a declared type as written in source (`int`, `String`, `var`).
type TypeReference struct {
	nodeImpl

	Name string `json:"name"`
}

func NewTypeReference(name string) *TypeReference {
	return &TypeReference{nodeImpl: newNodeImpl(NodeTypeReference), Name: name}
}

type VariableDeclarator struct {
	nodeImpl

	Name        *Identifier `json:"name"`
	Initializer Expression  `json:"initializer,omitempty"`
}

func NewVariableDeclarator(name *Identifier, initializer Expression) *VariableDeclarator {
	return &VariableDeclarator{nodeImpl: newNodeImpl(NodeVariableDeclarator), Name: name, Initializer: initializer}
}

type VariableDeclaration struct {
	nodeImpl
	statementMarker

	Type        *TypeReference        `json:"varType"`
	Declarators []*VariableDeclarator `json:"declarators"`
}

func NewVariableDeclaration(typ *TypeReference, declarators []*VariableDeclarator) *VariableDeclaration {
	return &VariableDeclaration{nodeImpl: newNodeImpl(NodeVariableDeclaration), Type: typ, Declarators: declarators}
}

type Parameter struct {
	nodeImpl

	Name *Identifier    `json:"name"`
	Type *TypeReference `json:"paramType"`
}

func NewParameter(name *Identifier, typ *TypeReference) *Parameter {
	return &Parameter{nodeImpl: newNodeImpl(NodeParameter), Name: name, Type: typ}
}

// MethodDeclaration has a nil Body when it is a bare signature (`int f(int x);`).
type MethodDeclaration struct {
	nodeImpl
	declarationMarker

	ReturnType *TypeReference `json:"returnType"`
	Name       *Identifier    `json:"name"`
	Parameters []*Parameter   `json:"parameters"`
	Body       *Block         `json:"body,omitempty"`
}

func NewMethodDeclaration(returnType *TypeReference, name *Identifier, params []*Parameter, body *Block) *MethodDeclaration {
	if params == nil {
		params = []*Parameter{}
	}
	return &MethodDeclaration{nodeImpl: newNodeImpl(NodeMethodDeclaration), ReturnType: returnType, Name: name, Parameters: params, Body: body}
}

// Statements

type ExpressionStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expr}
}

type Block struct {
	nodeImpl
	statementMarker

	Statements []Statement `json:"statements"`
}

func NewBlock(statements []Statement) *Block {
	if statements == nil {
		statements = []Statement{}
	}
	return &Block{nodeImpl: newNodeImpl(NodeBlock), Statements: statements}
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Argument Expression `json:"argument,omitempty"`
}

func NewReturnStatement(argument Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Argument: argument}
}

type WhileStatement struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Body      Statement  `json:"body"`
}

func NewWhileStatement(condition Expression, body Statement) *WhileStatement {
	return &WhileStatement{nodeImpl: newNodeImpl(NodeWhileStatement), Condition: condition, Body: body}
}

type IfStatement struct {
	nodeImpl
	statementMarker

	Condition   Expression `json:"condition"`
	Consequence Statement  `json:"consequence"`
	Alternative Statement  `json:"alternative,omitempty"`
}

func NewIfStatement(condition Expression, consequence, alternative Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Consequence: consequence, Alternative: alternative}
}

type EmptyStatement struct {
	nodeImpl
	statementMarker
}

func NewEmptyStatement() *EmptyStatement {
	return &EmptyStatement{nodeImpl: newNodeImpl(NodeEmptyStatement)}
}
