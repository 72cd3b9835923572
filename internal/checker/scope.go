package checker

import "github.com/chachacollins/pseudo/internal/ast"

// SubprogramInfo holds a registered subprogram signature
type SubprogramInfo struct {
	Name       string
	ParamTypes []ast.Type
	ReturnType ast.Type
}

// VarInfo holds a local variable's resolved type and mutability
type VarInfo struct {
	Type    ast.Type
	Mutable bool
}

// SymbolTable holds the analyzer's two flat tables: subprogram signatures
// for the whole compilation unit, and locals for the subprogram currently
// being checked. If/else bodies share the enclosing subprogram's locals;
// there is no nested lexical scoping. A fresh table is built for every
// compilation.
type SymbolTable struct {
	subprograms map[string]*SubprogramInfo
	locals      map[string]*VarInfo
}

// NewSymbolTable creates an empty symbol table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		subprograms: make(map[string]*SubprogramInfo),
		locals:      make(map[string]*VarInfo),
	}
}

// DefineSubprogram registers a signature. Returns false if the name is
// already taken.
func (s *SymbolTable) DefineSubprogram(info *SubprogramInfo) bool {
	if _, exists := s.subprograms[info.Name]; exists {
		return false
	}
	s.subprograms[info.Name] = info
	return true
}

// LookupSubprogram resolves a subprogram by name, or nil
func (s *SymbolTable) LookupSubprogram(name string) *SubprogramInfo {
	return s.subprograms[name]
}

// DefineVar records a local variable. Redefinition is the caller's error
// to report; the newer entry wins either way.
func (s *SymbolTable) DefineVar(name string, info *VarInfo) {
	s.locals[name] = info
}

// LookupVar resolves a local variable by name, or nil
func (s *SymbolTable) LookupVar(name string) *VarInfo {
	return s.locals[name]
}

// HasVar reports whether a local variable is declared
func (s *SymbolTable) HasVar(name string) bool {
	_, ok := s.locals[name]
	return ok
}

// ClearLocals drops all local variables. Called when a subprogram's
// analysis completes.
func (s *SymbolTable) ClearLocals() {
	s.locals = make(map[string]*VarInfo)
}
