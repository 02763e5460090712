package parser

import (
	"encoding/json"
	"reflect"
	"testing"

	"javalet/interpreter-go/pkg/ast"
)

func checkSpan(t testing.TB, label string, span ast.Span, startLine, startCol, endLine, endCol int) {
	t.Helper()
	if span.Start.Line != startLine || span.Start.Column != startCol {
		t.Fatalf("%s start span mismatch: got (%d,%d), want (%d,%d)", label, span.Start.Line, span.Start.Column, startLine, startCol)
	}
	if span.End.Line != endLine || span.End.Column != endCol {
		t.Fatalf("%s end span mismatch: got (%d,%d), want (%d,%d)", label, span.End.Line, span.End.Column, endLine, endCol)
	}
}

// assertNodesEqual compares trees structurally; spans are not part of the JSON form.
func assertNodesEqual(t testing.TB, expected interface{}, actual interface{}) {
	t.Helper()
	wantJSON, _ := json.Marshal(expected)
	gotJSON, _ := json.Marshal(actual)
	var wantAny interface{}
	var gotAny interface{}
	_ = json.Unmarshal(wantJSON, &wantAny)
	_ = json.Unmarshal(gotJSON, &gotAny)
	if reflect.DeepEqual(wantAny, gotAny) {
		return
	}
	wantPretty, _ := json.MarshalIndent(wantAny, "", "  ")
	gotPretty, _ := json.MarshalIndent(gotAny, "", "  ")
	t.Fatalf("tree mismatch\nexpected: %s\n   actual: %s", wantPretty, gotPretty)
}

func newTestParser(t testing.TB) *FragmentParser {
	t.Helper()
	p, err := NewFragmentParser()
	if err != nil {
		t.Fatalf("NewFragmentParser error: %v", err)
	}
	t.Cleanup(p.Close)
	return p
}

func mustParseFragment(t testing.TB, p *FragmentParser, source string, wantKind FragmentKind) ast.Node {
	t.Helper()
	node, kind, err := p.ParseFragment(source)
	if err != nil {
		t.Fatalf("ParseFragment(%q) error: %v", source, err)
	}
	if kind != wantKind {
		t.Fatalf("ParseFragment(%q) kind = %s, want %s", source, kind, wantKind)
	}
	return node
}
