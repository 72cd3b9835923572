package parser

import (
	"testing"

	"github.com/chachacollins/pseudo/internal/ast"
)

// parseExpr parses a single expression by wrapping it in a write statement
func parseExpr(t *testing.T, input string) ast.Expression {
	t.Helper()
	prog, err := Parse("test.pseudo", "write("+input+");")
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	write, ok := prog.Statements[0].(*ast.WriteStmt)
	if !ok {
		t.Fatalf("expected write statement, got %T", prog.Statements[0])
	}
	return write.Expr
}

func TestExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"5", "5"},
		{"x", "x"},
		{"true", "true"},
		{"false", "false"},
		{`"hello"`, `"hello"`},
		{"1 + 2", "(+ 1 2)"},
		{"a - b", "(- a b)"},
		{"a == b", "(== a b)"},
		{"a != b", "(!= a b)"},
		{"a and b", "(and a b)"},
		{"a or b", "(or a b)"},
		{"10 % 3", "(% 10 3)"},
		{"f()", "(call f)"},
		{"f(1, 2)", "(call f 1 2)"},
		{"f(g(x))", "(call f (call g x))"},
		{`"a" + "b"`, `(+ "a" "b")`},
	}

	for _, tt := range tests {
		expr := parseExpr(t, tt.input)
		if got := ast.ExprString(expr); got != tt.expected {
			t.Errorf("input %q: expected %s, got %s", tt.input, tt.expected, got)
		}
	}
}

// There are no precedence levels: any trailing operator takes the entire
// remaining expression as its right-hand side, so every chain parses
// right-associative regardless of the operators involved.
func TestExpressionsAreRightAssociative(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(* 1 (+ 2 3))"},
		{"1 - 2 - 3", "(- 1 (- 2 3))"},
		{"a == b and c", "(== a (and b c))"},
		{"1 + 2 + 3 + 4", "(+ 1 (+ 2 (+ 3 4)))"},
	}

	for _, tt := range tests {
		expr := parseExpr(t, tt.input)
		if got := ast.ExprString(expr); got != tt.expected {
			t.Errorf("input %q: expected %s, got %s", tt.input, tt.expected, got)
		}
	}
}

func TestStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"write(5);", "(write 5)"},
		{"set x := 5;", "(set x unknown 5)"},
		{"set mut x := 5;", "(set mut x unknown 5)"},
		{"set x : int = 5;", "(set x int 5)"},
		{"set mut s : string = \"hi\";", `(set mut s string "hi")`},
		{"x = 5;", "(assign x 5)"},
		{"greet();", "(call greet)"},
		{"add(1, 2);", "(call add 1 2)"},
		{"if x then write(x); end", "(if x [(write x)])"},
	}

	for _, tt := range tests {
		prog, err := Parse("test.pseudo", tt.input)
		if err != nil {
			t.Fatalf("input %q: parse error: %s", tt.input, err)
		}
		if len(prog.Statements) != 1 {
			t.Fatalf("input %q: expected 1 statement, got %d", tt.input, len(prog.Statements))
		}
		if got := ast.StmtString(prog.Statements[0]); got != tt.expected {
			t.Errorf("input %q: expected %s, got %s", tt.input, tt.expected, got)
		}
	}
}

func TestFuncDefinition(t *testing.T) {
	input := `func add(a : int, b : int) : int start
    return a + b;
stop`

	prog, err := Parse("test.pseudo", input)
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}

	expected := "(def add (a:int b:int) int [(return (+ a b))])"
	if got := ast.StmtString(prog.Statements[0]); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestProcDefinition(t *testing.T) {
	input := `proc greet(name : string) start
    write(name);
stop`

	prog, err := Parse("test.pseudo", input)
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}

	expected := "(def greet (name:string) void [(write name)])"
	if got := ast.StmtString(prog.Statements[0]); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

// The else branch has no terminator of its own: its body runs until the
// enclosing block's stop keyword.
func TestElseRunsToEnclosingStop(t *testing.T) {
	input := `func main() : int start
    if x then
        write(1);
    end
    else
        write(2);
        return 0;
stop`

	prog, err := Parse("test.pseudo", input)
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}

	expected := "(def main () int [(if x [(write 1)]) (else [(write 2) (return 0)])])"
	if got := ast.StmtString(prog.Statements[0]); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"write(5)", `test.pseudo:1:9: error: expected ; but found eof`},
		{"set := 5;", `test.pseudo:1:5: error: expected identifier but found :=`},
		{"x 5;", `test.pseudo:1:1: error: expected ( or = after identifier "x"`},
		{"write(then);", `test.pseudo:1:7: error: could not parse then as an expression`},
		{"func f() : float start stop", `test.pseudo:1:12: error: unknown type identifier "float"`},
		{"set x := 5; )", `test.pseudo:1:13: error: unexpected )`},
	}

	for _, tt := range tests {
		prog, err := Parse("test.pseudo", tt.input)
		if err == nil {
			t.Fatalf("input %q: expected a syntax error, got none", tt.input)
		}
		if prog != nil {
			t.Fatalf("input %q: program should be nil on error", tt.input)
		}
		if got := err.Error(); got != tt.expected {
			t.Errorf("input %q:\nexpected %s\ngot      %s", tt.input, tt.expected, got)
		}
	}
}

func TestParseStopsAtFirstError(t *testing.T) {
	// Both statements are malformed; only the first is reported.
	_, err := Parse("test.pseudo", "write(5)\nset := 1;")
	if err == nil {
		t.Fatal("expected a syntax error, got none")
	}

	sErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if sErr.Pos.Row != 2 || sErr.Pos.Col != 1 {
		t.Errorf("expected error at 2:1, got %d:%d", sErr.Pos.Row, sErr.Pos.Col)
	}
}
