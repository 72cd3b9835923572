package ast

import "github.com/chachacollins/pseudo/internal/diagnostic"

// Type represents a type in the pseudo type system. Unknown is a transient
// placeholder used during inference only; it must never survive past
// semantic analysis.
type Type int

const (
	TypeUnknown Type = iota
	TypeInt
	TypeNat
	TypeString
	TypeBool
	TypeVoid
)

// String returns the surface keyword for the type
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeNat:
		return "nat"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Op represents a binary operator
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpAnd
	OpOr
)

// String returns the source spelling of the operator
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return "?"
	}
}

// Node is the base interface for all AST nodes
type Node interface {
	Pos() diagnostic.Position
}

// Statement nodes
type Statement interface {
	Node
	stmtNode()
}

// Expression nodes
type Expression interface {
	Node
	exprNode()
}

// Program is the parsed statement list of one source file
type Program struct {
	Statements []Statement
}

// Param represents a subprogram parameter
type Param struct {
	Name string
	Type Type
}

// WriteStmt prints a value to standard output at runtime.
// Type is filled in by semantic analysis.
type WriteStmt struct {
	Expr     Expression
	Type     Type
	Position diagnostic.Position
}

func (w *WriteStmt) Pos() diagnostic.Position { return w.Position }
func (w *WriteStmt) stmtNode()                {}

// ReturnStmt returns a value from the enclosing subprogram.
// Type is filled in by semantic analysis.
type ReturnStmt struct {
	Expr     Expression
	Type     Type
	Position diagnostic.Position
}

func (r *ReturnStmt) Pos() diagnostic.Position { return r.Position }
func (r *ReturnStmt) stmtNode()                {}

// SetStmt declares a new local variable. Type is the declared type, or
// TypeUnknown when it is to be inferred from the initializer; semantic
// analysis replaces it with the resolved type either way.
type SetStmt struct {
	Name     string
	Mutable  bool
	Type     Type
	Expr     Expression
	Position diagnostic.Position
}

func (s *SetStmt) Pos() diagnostic.Position { return s.Position }
func (s *SetStmt) stmtNode()                {}

// AssignStmt assigns a new value to an existing mutable variable
type AssignStmt struct {
	Name     string
	Expr     Expression
	Position diagnostic.Position
}

func (a *AssignStmt) Pos() diagnostic.Position { return a.Position }
func (a *AssignStmt) stmtNode()                {}

// SubprogramDef defines a function or procedure. Procedures have
// ReturnType TypeVoid.
type SubprogramDef struct {
	Name       string
	ReturnType Type
	Params     []*Param
	Body       []Statement
	Position   diagnostic.Position
}

func (s *SubprogramDef) Pos() diagnostic.Position { return s.Position }
func (s *SubprogramDef) stmtNode()                {}

// IfStmt guards a statement list with a condition
type IfStmt struct {
	Cond     Expression
	Body     []Statement
	Position diagnostic.Position
}

func (i *IfStmt) Pos() diagnostic.Position { return i.Position }
func (i *IfStmt) stmtNode()                {}

// ElseStmt holds the alternative branch. It must syntactically follow an
// IfStmt; the tree does not enforce that structurally.
type ElseStmt struct {
	Body     []Statement
	Position diagnostic.Position
}

func (e *ElseStmt) Pos() diagnostic.Position { return e.Position }
func (e *ElseStmt) stmtNode()                {}

// CallStmt calls a subprogram for its effect, discarding any result
type CallStmt struct {
	Name     string
	Args     []Expression
	Position diagnostic.Position
}

func (c *CallStmt) Pos() diagnostic.Position { return c.Position }
func (c *CallStmt) stmtNode()                {}

// NumberLit is an integer literal. The digit text is kept verbatim and
// range-checked during semantic analysis.
type NumberLit struct {
	Text     string
	Position diagnostic.Position
}

func (n *NumberLit) Pos() diagnostic.Position { return n.Position }
func (n *NumberLit) exprNode()                {}

// StringLit is a string literal
type StringLit struct {
	Value    string
	Position diagnostic.Position
}

func (s *StringLit) Pos() diagnostic.Position { return s.Position }
func (s *StringLit) exprNode()                {}

// BoolLit is a boolean literal
type BoolLit struct {
	Value    bool
	Position diagnostic.Position
}

func (b *BoolLit) Pos() diagnostic.Position { return b.Position }
func (b *BoolLit) exprNode()                {}

// VarRef references a variable
type VarRef struct {
	Name     string
	Position diagnostic.Position
}

func (v *VarRef) Pos() diagnostic.Position { return v.Position }
func (v *VarRef) exprNode()                {}

// BinaryExpr is a binary operation
type BinaryExpr struct {
	Op       Op
	Lhs      Expression
	Rhs      Expression
	Position diagnostic.Position
}

func (b *BinaryExpr) Pos() diagnostic.Position { return b.Position }
func (b *BinaryExpr) exprNode()                {}

// CallExpr is a subprogram call used as a value
type CallExpr struct {
	Name     string
	Args     []Expression
	Position diagnostic.Position
}

func (c *CallExpr) Pos() diagnostic.Position { return c.Position }
func (c *CallExpr) exprNode()                {}
