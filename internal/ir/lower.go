package ir

import (
	"fmt"
	"strconv"

	"github.com/chachacollins/pseudo/internal/ast"
	"github.com/chachacollins/pseudo/internal/checker"
)

// Lower converts a checked program into the IR statement list. The input
// must have passed semantic analysis without errors: lowering is total and
// panics if an unresolved type reaches it.
func Lower(prog *ast.Program, res *checker.Result) []Stmt {
	l := &lowerer{types: res.ExprTypes}
	return l.lowerStmts(prog.Statements)
}

type lowerer struct {
	types map[ast.Expression]ast.Type
}

// CTypeOf maps a resolved source type to its C counterpart
func CTypeOf(t ast.Type) CType {
	switch t {
	case ast.TypeInt:
		return CInt
	case ast.TypeNat:
		return CUint
	case ast.TypeString:
		return CString
	case ast.TypeBool:
		return CBool
	case ast.TypeVoid:
		return CVoid
	default:
		panic(fmt.Sprintf("ir: unresolved type %s reached lowering", t))
	}
}

func (l *lowerer) exprType(expr ast.Expression) CType {
	t, ok := l.types[expr]
	if !ok {
		panic(fmt.Sprintf("ir: expression at %s has no resolved type", expr.Pos()))
	}
	return CTypeOf(t)
}

func (l *lowerer) lowerStmts(stmts []ast.Statement) []Stmt {
	out := make([]Stmt, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, l.lowerStmt(s))
	}
	return out
}

func (l *lowerer) lowerStmt(stmt ast.Statement) Stmt {
	switch s := stmt.(type) {
	case *ast.WriteStmt:
		return &WriteStmt{Type: CTypeOf(s.Type), Value: l.lowerValue(s.Expr)}
	case *ast.ReturnStmt:
		return &ReturnStmt{Value: l.lowerValue(s.Expr)}
	case *ast.SubprogramDef:
		params := make([]CParam, 0, len(s.Params))
		for _, p := range s.Params {
			params = append(params, CParam{Name: p.Name, Type: CTypeOf(p.Type)})
		}
		return &SubprogramDef{
			Name:       s.Name,
			Params:     params,
			ReturnType: CTypeOf(s.ReturnType),
			Body:       l.lowerStmts(s.Body),
		}
	case *ast.IfStmt:
		return &IfStmt{Cond: l.lowerValue(s.Cond), Body: l.lowerStmts(s.Body)}
	case *ast.ElseStmt:
		return &ElseStmt{Body: l.lowerStmts(s.Body)}
	case *ast.SetStmt:
		return &VariableDef{
			Name:    s.Name,
			Type:    CTypeOf(s.Type),
			Value:   l.lowerValue(s.Expr),
			Mutable: s.Mutable,
		}
	case *ast.AssignStmt:
		return &AssignStmt{Name: s.Name, Value: l.lowerValue(s.Expr)}
	case *ast.CallStmt:
		return &CallStmt{Name: s.Name, Args: l.lowerValues(s.Args)}
	default:
		panic(fmt.Sprintf("ir: unhandled statement %T", stmt))
	}
}

func (l *lowerer) lowerValues(exprs []ast.Expression) []CValue {
	out := make([]CValue, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, l.lowerValue(e))
	}
	return out
}

func (l *lowerer) lowerValue(expr ast.Expression) CValue {
	switch e := expr.(type) {
	case *ast.NumberLit:
		v, err := strconv.ParseUint(e.Text, 10, 64)
		if err != nil {
			panic(fmt.Sprintf("ir: unparseable number %q at %s", e.Text, e.Pos()))
		}
		return &NumberLit{Value: v, Type: l.exprType(e)}
	case *ast.StringLit:
		return &StringLit{Value: e.Value}
	case *ast.BoolLit:
		return &BoolLit{Value: e.Value}
	case *ast.VarRef:
		return &VarRef{Name: e.Name, Type: l.exprType(e)}
	case *ast.BinaryExpr:
		return &BinaryOp{
			Op:   e.Op,
			Lhs:  l.lowerValue(e.Lhs),
			Rhs:  l.lowerValue(e.Rhs),
			Type: l.exprType(e),
		}
	case *ast.CallExpr:
		return &Call{Name: e.Name, Args: l.lowerValues(e.Args), Type: l.exprType(e)}
	default:
		panic(fmt.Sprintf("ir: unhandled expression %T", expr))
	}
}
