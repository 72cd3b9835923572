package ir

import "github.com/chachacollins/pseudo/internal/ast"

// CType is a resolved target-language primitive type
type CType int

const (
	CInt CType = iota
	CUint
	CString
	CBool
	CVoid
)

// String returns the C spelling of the type
func (t CType) String() string {
	switch t {
	case CInt:
		return "int32_t"
	case CUint:
		return "uint32_t"
	case CString:
		return "string_t"
	case CBool:
		return "bool"
	case CVoid:
		return "void"
	default:
		return "void"
	}
}

// CParam is a C-facing subprogram parameter
type CParam struct {
	Name string
	Type CType
}

// CValue is the interface for all IR expression nodes. Every value knows
// its resolved type.
type CValue interface {
	CType() CType
	cvalueNode()
}

// NumberLit is a range-checked integer literal
type NumberLit struct {
	Value uint64
	Type  CType
}

func (n *NumberLit) CType() CType { return n.Type }
func (*NumberLit) cvalueNode()    {}

// StringLit is a string literal
type StringLit struct {
	Value string
}

func (*StringLit) CType() CType { return CString }
func (*StringLit) cvalueNode()  {}

// BoolLit is a boolean literal
type BoolLit struct {
	Value bool
}

func (*BoolLit) CType() CType { return CBool }
func (*BoolLit) cvalueNode()  {}

// VarRef references a variable
type VarRef struct {
	Name string
	Type CType
}

func (v *VarRef) CType() CType { return v.Type }
func (*VarRef) cvalueNode()    {}

// BinaryOp is a binary operation with an explicit operator tag
type BinaryOp struct {
	Op   ast.Op
	Lhs  CValue
	Rhs  CValue
	Type CType
}

func (b *BinaryOp) CType() CType { return b.Type }
func (*BinaryOp) cvalueNode()    {}

// Call is a subprogram call used as a value
type Call struct {
	Name string
	Args []CValue
	Type CType
}

func (c *Call) CType() CType { return c.Type }
func (*Call) cvalueNode()    {}

// Stmt is the interface for all IR statement nodes
type Stmt interface {
	stmtNode()
}

// WriteStmt prints a value via the runtime's typed print primitives
type WriteStmt struct {
	Type  CType
	Value CValue
}

func (*WriteStmt) stmtNode() {}

// ReturnStmt returns a value from the enclosing subprogram
type ReturnStmt struct {
	Value CValue
}

func (*ReturnStmt) stmtNode() {}

// SubprogramDef defines a subprogram with a resolved parameter list
type SubprogramDef struct {
	Name       string
	Params     []CParam
	ReturnType CType
	Body       []Stmt
}

func (*SubprogramDef) stmtNode() {}

// IfStmt guards a statement list with a condition
type IfStmt struct {
	Cond CValue
	Body []Stmt
}

func (*IfStmt) stmtNode() {}

// ElseStmt is the alternative branch of the preceding IfStmt
type ElseStmt struct {
	Body []Stmt
}

func (*ElseStmt) stmtNode() {}

// VariableDef declares a variable, const-qualified when immutable
type VariableDef struct {
	Name    string
	Type    CType
	Value   CValue
	Mutable bool
}

func (*VariableDef) stmtNode() {}

// AssignStmt assigns a new value to a variable
type AssignStmt struct {
	Name  string
	Value CValue
}

func (*AssignStmt) stmtNode() {}

// CallStmt calls a subprogram for its effect
type CallStmt struct {
	Name string
	Args []CValue
}

func (*CallStmt) stmtNode() {}
