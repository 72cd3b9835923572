package ast

import (
	"fmt"
	"strings"
)

// ExprString renders an expression as a compact s-expression, e.g.
// (+ 1 (* 2 3)). Tests use it to assert exact tree shapes.
func ExprString(expr Expression) string {
	switch e := expr.(type) {
	case *NumberLit:
		return e.Text
	case *StringLit:
		return fmt.Sprintf("%q", e.Value)
	case *BoolLit:
		return fmt.Sprintf("%t", e.Value)
	case *VarRef:
		return e.Name
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", e.Op, ExprString(e.Lhs), ExprString(e.Rhs))
	case *CallExpr:
		parts := make([]string, 0, len(e.Args)+1)
		parts = append(parts, "call "+e.Name)
		for _, arg := range e.Args {
			parts = append(parts, ExprString(arg))
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return "<?>"
	}
}

// StmtString renders a statement as a one-line s-expression
func StmtString(stmt Statement) string {
	switch s := stmt.(type) {
	case *WriteStmt:
		return fmt.Sprintf("(write %s)", ExprString(s.Expr))
	case *ReturnStmt:
		return fmt.Sprintf("(return %s)", ExprString(s.Expr))
	case *SetStmt:
		mut := ""
		if s.Mutable {
			mut = " mut"
		}
		return fmt.Sprintf("(set%s %s %s %s)", mut, s.Name, s.Type, ExprString(s.Expr))
	case *AssignStmt:
		return fmt.Sprintf("(assign %s %s)", s.Name, ExprString(s.Expr))
	case *SubprogramDef:
		params := make([]string, len(s.Params))
		for i, p := range s.Params {
			params[i] = p.Name + ":" + p.Type.String()
		}
		return fmt.Sprintf("(def %s (%s) %s %s)",
			s.Name, strings.Join(params, " "), s.ReturnType, stmtsString(s.Body))
	case *IfStmt:
		return fmt.Sprintf("(if %s %s)", ExprString(s.Cond), stmtsString(s.Body))
	case *ElseStmt:
		return fmt.Sprintf("(else %s)", stmtsString(s.Body))
	case *CallStmt:
		parts := make([]string, 0, len(s.Args)+1)
		parts = append(parts, "call "+s.Name)
		for _, arg := range s.Args {
			parts = append(parts, ExprString(arg))
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return "<?>"
	}
}

func stmtsString(stmts []Statement) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = StmtString(s)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
