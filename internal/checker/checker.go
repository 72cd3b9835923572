package checker

import (
	"errors"
	"math"
	"strconv"

	"github.com/chachacollins/pseudo/internal/ast"
	"github.com/chachacollins/pseudo/internal/diagnostic"
)

// ErrMainNotFound is returned when the signature pass finds no main
// subprogram. It is fatal: the check pass never runs, since nothing
// downstream is meaningful without an entry point.
var ErrMainNotFound = errors.New("main function not found")

// Checker performs semantic analysis on the AST: symbol resolution,
// bidirectional type checking, mutability and return-contract enforcement.
// Errors accumulate; the check pass never aborts early.
type Checker struct {
	diag    *diagnostic.Diagnostics
	symbols *SymbolTable

	// Per-subprogram context
	inSubprogram   bool
	expectedReturn ast.Type

	// Resolved type of every checked expression, for IR lowering
	exprTypes map[ast.Expression]ast.Type
}

// Result holds the outcome of semantic analysis for downstream stages
type Result struct {
	Diagnostics *diagnostic.Diagnostics
	ExprTypes   map[ast.Expression]ast.Type
}

// Analyze runs both analysis passes over the program. The returned error
// is non-nil only for the fatal missing-main case; every other problem is
// batched into Result.Diagnostics.
func Analyze(prog *ast.Program) (*Result, error) {
	c := &Checker{
		diag:           diagnostic.New(),
		symbols:        NewSymbolTable(),
		expectedReturn: ast.TypeUnknown,
		exprTypes:      make(map[ast.Expression]ast.Type),
	}

	c.registerSubprograms(prog)
	res := &Result{Diagnostics: c.diag, ExprTypes: c.exprTypes}
	if c.symbols.LookupSubprogram("main") == nil {
		return res, ErrMainNotFound
	}

	for _, stmt := range prog.Statements {
		c.checkStmt(stmt)
	}
	return res, nil
}

// registerSubprograms is the signature pass: it records every top-level
// subprogram before any body is analyzed, so calls may reference
// subprograms defined later in the file.
func (c *Checker) registerSubprograms(prog *ast.Program) {
	for _, stmt := range prog.Statements {
		def, ok := stmt.(*ast.SubprogramDef)
		if !ok {
			continue
		}
		if c.symbols.LookupSubprogram(def.Name) != nil {
			c.diag.Errorf(def.Pos(), "redefinition of subprogram %s", def.Name)
			continue
		}
		if def.Name == "main" {
			if def.ReturnType == ast.TypeVoid {
				c.diag.Errorf(def.Pos(), "main should be a function not a procedure")
			} else if def.ReturnType != ast.TypeInt {
				c.diag.Errorf(def.Pos(), "main function must have return type int")
			}
			if len(def.Params) != 0 {
				c.diag.Errorf(def.Pos(), "main function does not take any arguments")
			}
		}
		paramTypes := make([]ast.Type, len(def.Params))
		for i, param := range def.Params {
			paramTypes[i] = param.Type
		}
		c.symbols.DefineSubprogram(&SubprogramInfo{
			Name:       def.Name,
			ParamTypes: paramTypes,
			ReturnType: def.ReturnType,
		})
	}
}

func (c *Checker) checkStmt(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.WriteStmt:
		s.Type = c.checkExpr(s.Expr, ast.TypeUnknown)
		if s.Type == ast.TypeVoid {
			c.diag.Warningf(s.Pos(), "write of a void value has no effect")
		}

	case *ast.ReturnStmt:
		got := c.checkExpr(s.Expr, ast.TypeUnknown)
		if got != c.expectedReturn {
			c.diag.Errorf(s.Expr.Pos(), "expected return type %s, found %s",
				c.expectedReturn, got)
		}
		s.Type = got

	case *ast.SetStmt:
		if c.symbols.HasVar(s.Name) {
			c.diag.Errorf(s.Pos(), "redefinition of variable %s", s.Name)
		}
		s.Type = c.checkExpr(s.Expr, s.Type)
		c.symbols.DefineVar(s.Name, &VarInfo{Type: s.Type, Mutable: s.Mutable})

	case *ast.AssignStmt:
		info := c.symbols.LookupVar(s.Name)
		switch {
		case info == nil:
			c.diag.Errorf(s.Pos(), "assignment to unknown variable %s", s.Name)
		case !info.Mutable:
			c.diag.Errorf(s.Pos(), "assignment to immutable variable %s", s.Name)
		default:
			c.checkExpr(s.Expr, info.Type)
		}

	case *ast.SubprogramDef:
		c.checkSubprogramDef(s)

	case *ast.CallStmt:
		info := c.symbols.LookupSubprogram(s.Name)
		if info == nil {
			c.diag.Errorf(s.Pos(), "subprogram %s is not defined", s.Name)
			return
		}
		c.checkArgs(s.Args, info.ParamTypes)
		if info.ReturnType != ast.TypeVoid {
			c.diag.Errorf(s.Pos(), "subprogram %s returns a value which is not used", s.Name)
		}

	case *ast.IfStmt:
		// Condition type is not constrained to bool.
		c.checkExpr(s.Cond, ast.TypeUnknown)
		for _, body := range s.Body {
			c.checkStmt(body)
		}

	case *ast.ElseStmt:
		for _, body := range s.Body {
			c.checkStmt(body)
		}
	}
}

// checkSubprogramDef analyzes one subprogram body. Parameters enter the
// local table as immutable; the table is flat, so if/else bodies see and
// extend the same set of locals. Non-void subprograms must have a return
// statement as a direct child of their body.
func (c *Checker) checkSubprogramDef(def *ast.SubprogramDef) {
	if c.inSubprogram {
		c.diag.Errorf(def.Pos(), "cannot define subprogram %s inside another subprogram", def.Name)
		return
	}
	c.inSubprogram = true
	c.expectedReturn = def.ReturnType

	for _, param := range def.Params {
		c.symbols.DefineVar(param.Name, &VarInfo{Type: param.Type, Mutable: false})
	}

	hasReturn := false
	for _, stmt := range def.Body {
		if _, ok := stmt.(*ast.ReturnStmt); ok {
			hasReturn = true
		}
		c.checkStmt(stmt)
	}
	if !hasReturn && def.ReturnType != ast.TypeVoid {
		c.diag.Errorf(def.Pos(), "subprogram %s does not have a return statement", def.Name)
	}

	c.symbols.ClearLocals()
	c.inSubprogram = false
	c.expectedReturn = ast.TypeUnknown
}

// checkArgs checks call arguments against the declared parameter types by
// position. There is no arity check: checking is bounded by the shorter
// of the two lists.
func (c *Checker) checkArgs(args []ast.Expression, paramTypes []ast.Type) {
	for i, arg := range args {
		if i >= len(paramTypes) {
			break
		}
		c.checkExpr(arg, paramTypes[i])
	}
}

// checkExpr checks an expression against an expected type and returns its
// resolved type. TypeUnknown as the expected type means "infer". The
// resolved type of every expression is recorded for IR lowering.
func (c *Checker) checkExpr(expr ast.Expression, expected ast.Type) ast.Type {
	var t ast.Type
	switch e := expr.(type) {
	case *ast.NumberLit:
		t = c.checkNumber(e, expected)

	case *ast.BoolLit:
		if expected == ast.TypeBool || expected == ast.TypeUnknown {
			t = ast.TypeBool
		} else {
			c.diag.Errorf(e.Pos(), "expected type %s, found boolean", expected)
			t = expected
		}

	case *ast.StringLit:
		if expected == ast.TypeString || expected == ast.TypeUnknown {
			t = ast.TypeString
		} else {
			c.diag.Errorf(e.Pos(), "expected type %s, found string literal", expected)
			t = expected
		}

	case *ast.VarRef:
		info := c.symbols.LookupVar(e.Name)
		if info == nil {
			c.diag.Errorf(e.Pos(), "use of unknown variable %s", e.Name)
			t = expected
		} else {
			t = info.Type
		}

	case *ast.CallExpr:
		info := c.symbols.LookupSubprogram(e.Name)
		if info == nil {
			c.diag.Errorf(e.Pos(), "subprogram %s is not defined", e.Name)
			t = expected
		} else {
			c.checkArgs(e.Args, info.ParamTypes)
			t = info.ReturnType
		}

	case *ast.BinaryExpr:
		lhs := c.checkExpr(e.Lhs, expected)
		rhs := c.checkExpr(e.Rhs, expected)
		if lhs != rhs {
			c.diag.Errorf(e.Pos(), "type mismatch in binary expression: left is %s, right is %s",
				lhs, rhs)
		}
		// The binary's own type is the left operand's resolved type,
		// comparisons included.
		t = lhs

	default:
		t = expected
	}

	c.exprTypes[expr] = t
	return t
}

// checkNumber resolves a numeric literal. With no expected type, a value
// that fits int32 infers int, else one that fits uint32 infers nat, else
// the literal fits nothing: that is an error recovering as nat. With an
// expected numeric type, the literal is range-checked against it and the
// expected type is assumed even when out of range.
func (c *Checker) checkNumber(lit *ast.NumberLit, expected ast.Type) ast.Type {
	value, err := strconv.ParseUint(lit.Text, 10, 64)
	fitsInt := err == nil && value <= math.MaxInt32
	fitsNat := err == nil && value <= math.MaxUint32

	switch expected {
	case ast.TypeUnknown:
		if fitsInt {
			return ast.TypeInt
		}
		if fitsNat {
			return ast.TypeNat
		}
		c.diag.Errorf(lit.Pos(), "number %s does not fit any numeric type", lit.Text)
		return ast.TypeNat
	case ast.TypeInt:
		if !fitsInt {
			c.diag.Errorf(lit.Pos(), "number too large to be represented by type int")
		}
		return ast.TypeInt
	case ast.TypeNat:
		if !fitsNat {
			c.diag.Errorf(lit.Pos(), "number too large to be represented by type nat")
		}
		return ast.TypeNat
	default:
		c.diag.Errorf(lit.Pos(), "expected type %s, found number", expected)
		return expected
	}
}
