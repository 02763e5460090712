package interpreter

import (
	"sync"
	"testing"

	"javalet/interpreter-go/pkg/ast"
	"javalet/interpreter-go/pkg/parser"
	"javalet/interpreter-go/pkg/runtime"
)

func TestLiteralsEvaluateUnchanged(t *testing.T) {
	interp := newTestInterpreter(t)
	for _, n := range []int64{0, 1, -7, 42, 2147483647, -2147483648} {
		val := mustValue(t, mustEvaluate(t, interp, ast.Int(n)))
		if val != runtime.IntValue(n) {
			t.Fatalf("literal %d evaluated to %#v", n, val)
		}
	}
	for _, s := range []string{"", "hello", "tab\tand \"quotes\"", "ünïcödé"} {
		val := mustValue(t, mustEvaluate(t, interp, ast.Str(s)))
		if val != (runtime.StringValue{Val: s}) {
			t.Fatalf("literal %q evaluated to %#v", s, val)
		}
	}
}

func TestIntegerArithmeticAndComparison(t *testing.T) {
	interp := newTestInterpreter(t)
	pairs := [][2]int64{{3, 4}, {-5, 2}, {0, 0}, {100, -100}, {7, 7}}
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		sum := mustValue(t, mustEvaluate(t, interp, ast.Bin("+", ast.Int(a), ast.Int(b))))
		if sum != runtime.IntValue(a+b) {
			t.Fatalf("%d + %d = %#v", a, b, sum)
		}
		product := mustValue(t, mustEvaluate(t, interp, ast.Bin("*", ast.Int(a), ast.Int(b))))
		if product != runtime.IntValue(a*b) {
			t.Fatalf("%d * %d = %#v", a, b, product)
		}
		greater := mustValue(t, mustEvaluate(t, interp, ast.Bin(">", ast.Int(a), ast.Int(b))))
		if greater != (runtime.BoolValue{Val: a > b}) {
			t.Fatalf("%d > %d = %#v", a, b, greater)
		}
	}
}

func TestStringConcatenationEitherSide(t *testing.T) {
	interp := newTestInterpreter(t)
	cases := []struct {
		node ast.Expression
		want string
	}{
		{ast.Bin("+", ast.Int(5), ast.Str("s")), "5s"},
		{ast.Bin("+", ast.Str("s"), ast.Int(5)), "s5"},
		{ast.Bin("+", ast.Bool(true), ast.Str("!")), "true!"},
		{ast.Bin("+", ast.Str("x="), ast.Null()), "x=null"},
		{ast.Bin("+", ast.Dbl(1.5), ast.Str("")), "1.5"},
		{ast.Bin("+", ast.Chr('c'), ast.Str("har")), "char"},
		{ast.Bin("+", ast.Bin("+", ast.Int(1), ast.Int(2)), ast.Str("3")), "33"},
		{ast.Bin("+", ast.Str("1"), ast.Bin("+", ast.Int(2), ast.Int(3))), "15"},
	}
	for _, tc := range cases {
		val := mustValue(t, mustEvaluate(t, interp, tc.node))
		if val != (runtime.StringValue{Val: tc.want}) {
			t.Fatalf("concatenation = %#v, want %q", val, tc.want)
		}
	}
}

func TestDeclarationPersistsAcrossFragments(t *testing.T) {
	interp := newTestInterpreter(t)
	res := mustInterpret(t, interp, "int a = 5*5*5;")
	if res != nil {
		t.Fatalf("declaration produced %#v, want no result", res)
	}
	expectFormatted(t, interp, "a", "125")
	if _, ok := mustInterpret(t, interp, "a").(ReferenceResult); !ok {
		t.Fatalf("expected a name to evaluate to a reference")
	}
}

func TestMethodLocalsDoNotLeak(t *testing.T) {
	interp := newTestInterpreter(t)
	mustInterpret(t, interp, "int a = 100;")
	mustInterpret(t, interp, "int abc(int x, int y) { int a = 5; return a + x + y; }")
	expectFormatted(t, interp, "abc(6,7)", "18")
	expectFormatted(t, interp, "a", "100")
	if _, ok := interp.GlobalScope().Lookup("x"); ok {
		t.Fatalf("parameter x leaked into the global scope")
	}
}

func TestWhileCountdown(t *testing.T) {
	interp := newTestInterpreter(t)
	mustInterpret(t, interp, "int a = 20, b = 0;")
	res := mustInterpret(t, interp, "while (a > 1) { a--; b++; }")
	if res != nil {
		t.Fatalf("loop produced %#v, want no result", res)
	}
	if got := variableValue(t, interp, "a"); got != runtime.IntValue(1) {
		t.Fatalf("a = %#v, want 1", got)
	}
	if got := variableValue(t, interp, "b"); got != runtime.IntValue(19) {
		t.Fatalf("b = %#v, want 19", got)
	}
}

func TestReturnPropagatesOutOfLoop(t *testing.T) {
	interp := newTestInterpreter(t)
	mustInterpret(t, interp, "int seven() { while (true) { return 7; } }")
	expectFormatted(t, interp, "seven()", "7")

	mustInterpret(t, interp, "int firstOver(int limit) { int i = 0; while (i < 100) { if (i * i > limit) { return i; } i++; } return -1; }")
	expectFormatted(t, interp, "firstOver(50)", "8")
	expectFormatted(t, interp, "firstOver(100000)", "-1")
}

func TestLoopBodyScopeIsFreshPerIteration(t *testing.T) {
	interp := newTestInterpreter(t)
	body := ast.Blk(
		ast.Var("int", "tmp", ast.Int(1)),
		ast.Stmt(ast.AssignOp("+=", ast.ID("total"), ast.ID("tmp"))),
		ast.Stmt(ast.PostDec(ast.ID("n"))),
	)
	mustEvaluate(t, interp, ast.VarDecl("int", ast.Declarator("n", ast.Int(3)), ast.Declarator("total", ast.Int(0))))
	mustEvaluate(t, interp, ast.While(ast.Bin(">", ast.ID("n"), ast.Int(0)), body))
	if got := variableValue(t, interp, "total"); got != runtime.IntValue(3) {
		t.Fatalf("total = %#v, want 3", got)
	}
	if _, ok := interp.GlobalScope().Resolve("tmp"); ok {
		t.Fatalf("loop-local tmp leaked into the global scope")
	}
}

func TestCallErrors(t *testing.T) {
	interp := newTestInterpreter(t)
	mustInterpret(t, interp, "int add(int x, int y) { return x + y; }")

	_, err := interp.Interpret("add(1)")
	expectKind(t, err, ErrArityMismatch)

	_, err = interp.Interpret("missing(1, 2)")
	expectKind(t, err, ErrUnknownMethod)

	mustInterpret(t, interp, "int value = 3;")
	_, err = interp.Interpret("value()")
	expectKind(t, err, ErrUnknownMethod)
}

func TestIncrementSemantics(t *testing.T) {
	interp := newTestInterpreter(t)

	_, err := interp.Evaluate(ast.PostInc(ast.Int(5)))
	expectKind(t, err, ErrNotAssignable)

	mustInterpret(t, interp, "int i = 4;")
	expectFormatted(t, interp, "i++", "4")
	if got := variableValue(t, interp, "i"); got != runtime.IntValue(5) {
		t.Fatalf("i = %#v, want 5", got)
	}
	expectFormatted(t, interp, "++i", "6")
	expectFormatted(t, interp, "i--", "6")
	expectFormatted(t, interp, "--i", "4")

	_, err = interp.Interpret("undeclared++")
	expectKind(t, err, ErrUseOfUnresolvedName)

	mustInterpret(t, interp, `String s = "x";`)
	_, err = interp.Interpret("s++")
	expectKind(t, err, ErrTypeMismatch)
}

func TestDynamicScoping(t *testing.T) {
	interp := newTestInterpreter(t)
	mustInterpret(t, interp, "int readQ() { return q; }")

	_, err := interp.Interpret("readQ()")
	expectKind(t, err, ErrUseOfUnresolvedName)

	mustInterpret(t, interp, "int q = 3;")
	expectFormatted(t, interp, "readQ()", "3")

	mustInterpret(t, interp, "int shadow() { int q = 10; return readQ(); }")
	expectFormatted(t, interp, "shadow()", "10")
	expectFormatted(t, interp, "q", "3")
}

func TestRecursion(t *testing.T) {
	interp := newTestInterpreter(t)
	mustInterpret(t, interp, "int fact(int n) { if (n <= 1) { return 1; } return n * fact(n - 1); }")
	expectFormatted(t, interp, "fact(10)", "3628800")

	mustInterpret(t, interp, "int forever(int n) { return forever(n + 1); }")
	_, err := interp.Interpret("forever(0)")
	expectKind(t, err, ErrStackOverflow)
	expectFormatted(t, interp, "fact(3)", "6")
}

func TestVoidMethodProducesNoResult(t *testing.T) {
	interp := newTestInterpreter(t)
	mustInterpret(t, interp, "int counter = 0;")
	mustInterpret(t, interp, "void bump() { counter++; }")
	res := mustInterpret(t, interp, "bump()")
	if !IsVoid(res) {
		t.Fatalf("void call produced %#v", res)
	}
	expectFormatted(t, interp, "counter", "1")

	_, err := interp.Interpret("int x = bump();")
	expectKind(t, err, ErrTypeMismatch)
}

func TestBodilessMethodIsIgnored(t *testing.T) {
	interp := newTestInterpreter(t)
	res, err := interp.Evaluate(ast.Method("int", "sig", nil, nil))
	if err != nil || res != nil {
		t.Fatalf("bodiless method = (%#v, %v)", res, err)
	}
	if _, ok := interp.GlobalScope().Resolve("sig"); ok {
		t.Fatalf("bodiless method was registered")
	}
}

func TestDeclarationZeroValuesAndTypes(t *testing.T) {
	interp := newTestInterpreter(t)
	for _, decl := range []string{"int i;", "boolean flag;", "char c;", "double d;"} {
		mustInterpret(t, interp, decl)
	}
	if got := variableValue(t, interp, "i"); got != runtime.IntValue(0) {
		t.Fatalf("i = %#v", got)
	}
	if got := variableValue(t, interp, "flag"); got != (runtime.BoolValue{Val: false}) {
		t.Fatalf("flag = %#v", got)
	}
	if got := variableValue(t, interp, "c"); got != (runtime.CharValue{Val: 0}) {
		t.Fatalf("c = %#v", got)
	}
	if got := variableValue(t, interp, "d"); got != runtime.DoubleValue(0) {
		t.Fatalf("d = %#v", got)
	}

	_, err := interp.Interpret("Widget w;")
	expectKind(t, err, ErrUnresolvedTypeName)

	mustInterpret(t, interp, `String name = "javalet";`)
	expectFormatted(t, interp, "name", "javalet")

	mustInterpret(t, interp, "var inferred = 2L;")
	if got := runtime.TypeOf(variableValue(t, interp, "inferred")); got != runtime.TypeLong {
		t.Fatalf("inferred type = %s, want long", got)
	}

	mustInterpret(t, interp, "long widened = 3;")
	if got := variableValue(t, interp, "widened"); got != runtime.LongValue(3) {
		t.Fatalf("widened = %#v", got)
	}

	_, err = interp.Interpret(`boolean wrong = "yes";`)
	expectKind(t, err, ErrTypeMismatch)
}

func TestLaterDeclaratorsSeeEarlierOnes(t *testing.T) {
	interp := newTestInterpreter(t)
	mustInterpret(t, interp, "int a = 2, b = a * 10;")
	expectFormatted(t, interp, "b", "20")
}

func TestAssignment(t *testing.T) {
	interp := newTestInterpreter(t)
	mustInterpret(t, interp, "int a = 1;")
	expectFormatted(t, interp, "a = 9", "9")
	expectFormatted(t, interp, "a += 3", "12")
	expectFormatted(t, interp, "a <<= 2", "48")

	mustInterpret(t, interp, "byte small = 120;")
	expectFormatted(t, interp, "small += 10", "-126")

	mustInterpret(t, interp, "char big = 1e10;")
	expectFormatted(t, interp, "big + 0", "65535")

	_, err := interp.Interpret("nothing = 1")
	expectKind(t, err, ErrUseOfUnresolvedName)

	_, err = interp.Evaluate(ast.Assign(ast.Int(1), ast.Int(2)))
	expectKind(t, err, ErrNotAssignable)
}

func TestConditionsMustBeBoolean(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := interp.Interpret("while (1) { }")
	expectKind(t, err, ErrTypeMismatch)

	_, err = interp.Interpret("if (0) { }")
	expectKind(t, err, ErrTypeMismatch)

	expectFormatted(t, interp, `true ? "yes" : "no"`, "yes")
	_, err = interp.Interpret(`1 ? "yes" : "no"`)
	expectKind(t, err, ErrTypeMismatch)
}

func TestUnresolvedNameIsOnlyAnErrorWhenRead(t *testing.T) {
	interp := newTestInterpreter(t)
	res, err := interp.Interpret("ghost")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if _, ok := res.(UnresolvedResult); !ok {
		t.Fatalf("expected unresolved result, got %#v", res)
	}
	_, err = ValueOf(res)
	expectKind(t, err, ErrUseOfUnresolvedName)

	_, err = interp.Interpret("ghost + 1")
	expectKind(t, err, ErrUseOfUnresolvedName)
}

func TestFailedFragmentRollsBack(t *testing.T) {
	interp := newTestInterpreter(t)
	mustInterpret(t, interp, "int a = 1;")

	_, err := interp.Interpret("{ a = 50; int b = 2; int c = 1 / 0; }")
	expectKind(t, err, ErrDivisionByZero)

	expectFormatted(t, interp, "a", "1")
	if _, ok := interp.GlobalScope().Resolve("b"); ok {
		t.Fatalf("b survived a failed fragment")
	}
}

func TestTopLevelReturn(t *testing.T) {
	interp := newTestInterpreter(t)
	res := mustInterpret(t, interp, "return 5;")
	if ret, ok := res.(ReturnResult); !ok || ret.Value != runtime.IntValue(5) {
		t.Fatalf("return = %#v", res)
	}
	res = mustInterpret(t, interp, "return;")
	if !IsVoid(res) {
		t.Fatalf("bare return = %#v", res)
	}
}

func TestUnparseableInput(t *testing.T) {
	interp := newTestInterpreter(t)
	for _, source := range []string{"int a = ", "}{", "class Foo {}"} {
		_, err := interp.Interpret(source)
		expectKind(t, err, ErrUnparseableInput)
	}
}

func TestInterpretFragmentReportsKind(t *testing.T) {
	interp := newTestInterpreter(t)
	cases := map[string]parser.FragmentKind{
		"1 + 2":                       parser.FragmentExpression,
		"int a = 1;":                  parser.FragmentStatement,
		"int id(int x) { return x; }": parser.FragmentDeclaration,
	}
	for source, want := range cases {
		_, kind, err := interp.InterpretFragment(source)
		if err != nil {
			t.Fatalf("InterpretFragment(%q): %v", source, err)
		}
		if kind != want {
			t.Fatalf("InterpretFragment(%q) kind = %s, want %s", source, kind, want)
		}
	}
}

func TestConcurrentFragmentsAreSerialised(t *testing.T) {
	interp := newTestInterpreter(t)
	mustInterpret(t, interp, "int hits = 0;")
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 25; k++ {
				if _, err := interp.Interpret("hits++"); err != nil {
					t.Errorf("Interpret: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	expectFormatted(t, interp, "hits", "200")
}
