package ir

import (
	"testing"

	"github.com/nalgeon/be"

	"github.com/chachacollins/pseudo/internal/ast"
	"github.com/chachacollins/pseudo/internal/checker"
	"github.com/chachacollins/pseudo/internal/parser"
)

func lower(t *testing.T, source string) []Stmt {
	t.Helper()
	prog, err := parser.Parse("test.pseudo", source)
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}
	res, err := checker.Analyze(prog)
	if err != nil {
		t.Fatalf("analyze error: %s", err)
	}
	if res.Diagnostics.HasErrors() {
		t.Fatalf("semantic errors:\n%s", res.Diagnostics.Format())
	}
	return Lower(prog, res)
}

func TestLowerSubprogram(t *testing.T) {
	stmts := lower(t, `
func add(a : int, b : nat) : int start
    return a;
stop

func main() : int start
    return 0;
stop`)

	be.Equal(t, len(stmts), 2)

	def := stmts[0].(*SubprogramDef)
	be.Equal(t, def.Name, "add")
	be.Equal(t, def.ReturnType, CInt)
	be.Equal(t, def.Params, []CParam{{Name: "a", Type: CInt}, {Name: "b", Type: CUint}})

	ret := def.Body[0].(*ReturnStmt)
	be.Equal(t, ret.Value.(*VarRef).Name, "a")
	be.Equal(t, ret.Value.CType(), CInt)
}

func TestLowerInferredNumberTypes(t *testing.T) {
	stmts := lower(t, `
func main() : int start
    write(2147483647);
    write(2147483648);
    return 0;
stop`)

	body := stmts[0].(*SubprogramDef).Body

	first := body[0].(*WriteStmt)
	be.Equal(t, first.Type, CInt)
	be.Equal(t, first.Value.(*NumberLit).Value, uint64(2147483647))

	second := body[1].(*WriteStmt)
	be.Equal(t, second.Type, CUint)
	be.Equal(t, second.Value.(*NumberLit).Value, uint64(2147483648))
}

func TestLowerVariables(t *testing.T) {
	stmts := lower(t, `
func main() : int start
    set x := 5;
    set mut s : string = "hi";
    s = "bye";
    return x;
stop`)

	body := stmts[0].(*SubprogramDef).Body

	x := body[0].(*VariableDef)
	be.Equal(t, x.Name, "x")
	be.Equal(t, x.Type, CInt)
	be.Equal(t, x.Mutable, false)

	s := body[1].(*VariableDef)
	be.Equal(t, s.Type, CString)
	be.Equal(t, s.Mutable, true)

	assign := body[2].(*AssignStmt)
	be.Equal(t, assign.Name, "s")
	be.Equal(t, assign.Value.(*StringLit).Value, "bye")
}

func TestLowerIfElse(t *testing.T) {
	stmts := lower(t, `
proc branch() start
    if true then
        write(1);
    end
    else
        write(2);
        write(3);
stop

func main() : int start
    branch();
    return 0;
stop`)

	body := stmts[0].(*SubprogramDef).Body
	be.Equal(t, len(body), 2)

	ifStmt := body[0].(*IfStmt)
	be.Equal(t, ifStmt.Cond.(*BoolLit).Value, true)
	be.Equal(t, len(ifStmt.Body), 1)

	// The else body runs to the enclosing stop, so it carries both
	// writes that follow it.
	elseStmt := body[1].(*ElseStmt)
	be.Equal(t, len(elseStmt.Body), 2)
}

func TestLowerBinaryOpCarriesType(t *testing.T) {
	stmts := lower(t, `
func main() : int start
    write("a" + "b");
    return 1 + 2;
stop`)

	body := stmts[0].(*SubprogramDef).Body

	concat := body[0].(*WriteStmt).Value.(*BinaryOp)
	be.Equal(t, concat.Op, ast.OpAdd)
	be.Equal(t, concat.CType(), CString)
	be.Equal(t, concat.Lhs.CType(), CString)

	sum := body[1].(*ReturnStmt).Value.(*BinaryOp)
	be.Equal(t, sum.CType(), CInt)
}

func TestLowerCalls(t *testing.T) {
	stmts := lower(t, `
proc log(msg : string) start
    write(msg);
stop

func twice(n : int) : int start
    return n + n;
stop

func main() : int start
    log("hi");
    set x := twice(3);
    return x;
stop`)

	body := stmts[2].(*SubprogramDef).Body

	call := body[0].(*CallStmt)
	be.Equal(t, call.Name, "log")
	be.Equal(t, call.Args[0].(*StringLit).Value, "hi")

	def := body[1].(*VariableDef)
	callExpr := def.Value.(*Call)
	be.Equal(t, callExpr.Name, "twice")
	be.Equal(t, callExpr.CType(), CInt)
}

func TestCTypeSpelling(t *testing.T) {
	be.Equal(t, CInt.String(), "int32_t")
	be.Equal(t, CUint.String(), "uint32_t")
	be.Equal(t, CString.String(), "string_t")
	be.Equal(t, CBool.String(), "bool")
	be.Equal(t, CVoid.String(), "void")
}

func TestUnknownTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unresolved type")
		}
	}()
	CTypeOf(ast.TypeUnknown)
}
