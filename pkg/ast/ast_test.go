package ast

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSetSpanAnnotatesNode(t *testing.T) {
	id := NewIdentifier("a")
	span := Span{Start: Position{Line: 2, Column: 3}, End: Position{Line: 2, Column: 4}}
	SetSpan(id, span)
	if got := id.Span(); got != span {
		t.Fatalf("span = %+v, want %+v", got, span)
	}
	if got := id.Span().String(); got != "2:3" {
		t.Fatalf("span string = %q, want 2:3", got)
	}
}

func TestSetSpanIgnoresNil(t *testing.T) {
	SetSpan(nil, Span{Start: Position{Line: 1, Column: 1}})
}

func TestShiftLinesClampsToFirstLine(t *testing.T) {
	span := Span{Start: Position{Line: 1, Column: 5}, End: Position{Line: 3, Column: 2}}
	shifted := span.ShiftLines(1)
	if shifted.Start.Line != 1 || shifted.End.Line != 2 {
		t.Fatalf("unexpected shifted span %+v", shifted)
	}
	if !ZeroSpan().ShiftLines(4).IsZero() {
		t.Fatalf("expected zero span to stay zero")
	}
}

func TestDSLBuildsExpectedShapes(t *testing.T) {
	method := Method("int", "abc", []*Parameter{Param("int", "x"), Param("int", "y")}, Blk(
		Var("int", "a", Int(5)),
		Ret(Bin("+", Bin("+", ID("a"), ID("x")), ID("y"))),
	))
	if method.NodeType() != NodeMethodDeclaration {
		t.Fatalf("node type = %s", method.NodeType())
	}
	if len(method.Parameters) != 2 || method.Parameters[1].Name.Name != "y" {
		t.Fatalf("unexpected parameters %#v", method.Parameters)
	}
	decl, ok := method.Body.Statements[0].(*VariableDeclaration)
	if !ok || decl.Type.Name != "int" || decl.Declarators[0].Name.Name != "a" {
		t.Fatalf("unexpected first statement %#v", method.Body.Statements[0])
	}
	ret, ok := method.Body.Statements[1].(*ReturnStatement)
	if !ok {
		t.Fatalf("expected return statement, got %#v", method.Body.Statements[1])
	}
	if bin, ok := ret.Argument.(*BinaryExpression); !ok || bin.Operator != "+" {
		t.Fatalf("unexpected return argument %#v", ret.Argument)
	}

	post := PostInc(ID("a"))
	if post.Prefix || post.Operator != "++" {
		t.Fatalf("unexpected update expression %#v", post)
	}
}

func TestEmptyListsEncodeAsArrays(t *testing.T) {
	cases := []struct {
		node Node
		want string
	}{
		{Call("tick"), `"arguments":[]`},
		{Method("void", "tick", nil, nil), `"parameters":[]`},
		{Blk(), `"statements":[]`},
	}
	for _, tc := range cases {
		data, err := json.Marshal(tc.node)
		if err != nil {
			t.Fatalf("marshal %s: %v", tc.node.NodeType(), err)
		}
		if !strings.Contains(string(data), tc.want) {
			t.Fatalf("%s encoded as %s, want %s", tc.node.NodeType(), data, tc.want)
		}
	}
}
