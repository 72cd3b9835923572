package codegen

import (
	"fmt"
	"strings"

	"github.com/chachacollins/pseudo/internal/ast"
	"github.com/chachacollins/pseudo/internal/ir"
)

// Generate renders an IR statement list as C source text. The output
// depends on the pseudo runtime header for the print primitives, the
// string type and the garbage collector.
func Generate(stmts []ir.Stmt) string {
	g := &generator{}
	g.emitLine("#include <pseudo.h>")
	g.emitLine("static tgc_t gc;")
	g.generateStmts(stmts)
	return g.sb.String()
}

type generator struct {
	sb     strings.Builder
	indent int
	isMain bool
}

func (g *generator) emitLine(s string) {
	g.sb.WriteString(g.indentStr())
	g.sb.WriteString(s)
	g.sb.WriteString("\n")
}

func (g *generator) emitLinef(format string, args ...any) {
	g.emitLine(fmt.Sprintf(format, args...))
}

func (g *generator) incIndent() { g.indent++ }
func (g *generator) decIndent() { g.indent-- }

func (g *generator) indentStr() string {
	return strings.Repeat("    ", g.indent)
}

func (g *generator) generateStmts(stmts []ir.Stmt) {
	for _, stmt := range stmts {
		g.generateStmt(stmt)
	}
}

func (g *generator) generateStmt(s ir.Stmt) {
	switch stmt := s.(type) {
	case *ir.WriteStmt:
		g.generateWriteStmt(stmt)

	case *ir.ReturnStmt:
		if g.isMain {
			g.emitLine("tgc_stop(&gc);")
		}
		g.emitLinef("return %s;", g.generateValue(stmt.Value))

	case *ir.SubprogramDef:
		g.generateSubprogramDef(stmt)

	case *ir.IfStmt:
		g.emitLinef("if (%s) {", g.generateValue(stmt.Cond))
		g.incIndent()
		g.generateStmts(stmt.Body)
		g.decIndent()
		g.emitLine("}")

	case *ir.ElseStmt:
		g.emitLine("else {")
		g.incIndent()
		g.generateStmts(stmt.Body)
		g.decIndent()
		g.emitLine("}")

	case *ir.VariableDef:
		qual := ""
		if !stmt.Mutable {
			qual = "const "
		}
		g.emitLinef("%s%s %s = %s;", qual, stmt.Type, stmt.Name, g.generateValue(stmt.Value))

	case *ir.AssignStmt:
		g.emitLinef("%s = %s;", stmt.Name, g.generateValue(stmt.Value))

	case *ir.CallStmt:
		g.emitLinef("%s(%s);", stmt.Name, g.generateValues(stmt.Args))
	}
}

func (g *generator) generateWriteStmt(stmt *ir.WriteStmt) {
	switch stmt.Type {
	case ir.CInt:
		g.emitLinef("print_int(%s);", g.generateValue(stmt.Value))
	case ir.CUint:
		g.emitLinef("print_uint(%s);", g.generateValue(stmt.Value))
	case ir.CString:
		g.emitLinef("print_str(%s);", g.generateValue(stmt.Value))
	case ir.CBool:
		g.emitLinef("print_bool(%s);", g.generateValue(stmt.Value))
	case ir.CVoid:
		// Nothing to print. The checker has already warned about this;
		// evaluate the call for its effect only.
		g.emitLinef("%s;", g.generateValue(stmt.Value))
	}
}

func (g *generator) generateSubprogramDef(stmt *ir.SubprogramDef) {
	g.isMain = stmt.Name == "main"

	if g.isMain {
		g.emitLinef("%s %s(int argc, char** argv) {", stmt.ReturnType, stmt.Name)
	} else {
		params := make([]string, 0, len(stmt.Params))
		for _, p := range stmt.Params {
			params = append(params, fmt.Sprintf("%s %s", p.Type, p.Name))
		}
		g.emitLinef("%s %s(%s) {", stmt.ReturnType, stmt.Name, strings.Join(params, ", "))
	}

	g.incIndent()
	if g.isMain {
		g.emitLine("tgc_start(&gc, &argc);")
	}
	g.generateStmts(stmt.Body)
	g.decIndent()
	g.emitLine("}")

	g.isMain = false
}

func (g *generator) generateValues(vals []ir.CValue) string {
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		parts = append(parts, g.generateValue(v))
	}
	return strings.Join(parts, ", ")
}

func (g *generator) generateValue(v ir.CValue) string {
	switch val := v.(type) {
	case *ir.NumberLit:
		return fmt.Sprintf("%d", val.Value)

	case *ir.StringLit:
		return fmt.Sprintf("StrLit(%q)", val.Value)

	case *ir.BoolLit:
		if val.Value {
			return "true"
		}
		return "false"

	case *ir.VarRef:
		return val.Name

	case *ir.BinaryOp:
		lhs := g.generateValue(val.Lhs)
		rhs := g.generateValue(val.Rhs)
		if val.Op == ast.OpAdd && val.Lhs.CType() == ir.CString {
			return fmt.Sprintf("string_concat(&gc, &%s, &%s)", lhs, rhs)
		}
		return fmt.Sprintf("%s %s %s", lhs, mapOperator(val.Op), rhs)

	case *ir.Call:
		return fmt.Sprintf("%s(%s)", val.Name, g.generateValues(val.Args))

	default:
		panic(fmt.Sprintf("codegen: unhandled value %T", v))
	}
}

func mapOperator(op ast.Op) string {
	switch op {
	case ast.OpAdd:
		return "+"
	case ast.OpSub:
		return "-"
	case ast.OpMul:
		return "*"
	case ast.OpDiv:
		return "/"
	case ast.OpMod:
		return "%"
	case ast.OpEq:
		return "=="
	case ast.OpNe:
		return "!="
	case ast.OpAnd:
		return "&&"
	case ast.OpOr:
		return "||"
	default:
		return "?"
	}
}
