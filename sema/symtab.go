// Copyright © 2026 The XShaderCompiler authors

package sema

import (
	"fmt"

	"github.com/FrostEmmet/XShaderCompiler/ast"
)

// OnOverride decides whether a registration may replace an existing entry
// in the same scope. It is evaluated against the existing entry's node;
// returning true treats the registration as a permitted redeclaration.
type OnOverride func(existing ast.Node) bool

// SymbolTable maps identifier names to their declaring AST nodes across a
// stack of lexical scopes. Entries are non-owning references; the table
// never outlives the tree it indexes.
type SymbolTable struct {
	scopes []map[string]ast.Node
}

// NewSymbolTable returns a table with the global scope already open.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		scopes: []map[string]ast.Node{make(map[string]ast.Node)},
	}
}

// OpenScope pushes a new, empty scope frame.
func (st *SymbolTable) OpenScope() {
	st.scopes = append(st.scopes, make(map[string]ast.Node))
}

// CloseScope pops the innermost frame, discarding all entries registered
// in it. The global frame is never popped.
func (st *SymbolTable) CloseScope() {
	if len(st.scopes) > 1 {
		st.scopes = st.scopes[:len(st.scopes)-1]
	}
}

// Register adds name to the innermost scope. When the name is already
// registered in that scope, override decides whether the slot may be
// updated to the new node; otherwise Register reports a duplicate-symbol
// error and leaves the existing entry in place. Outer scopes are never
// searched: shadowing an outer-scope name is always permitted.
func (st *SymbolTable) Register(name string, node ast.Node, override OnOverride) error {
	top := st.scopes[len(st.scopes)-1]
	if existing, ok := top[name]; ok {
		if override == nil || !override(existing) {
			return fmt.Errorf("identifier %q already declared in this scope", name)
		}
	}
	top[name] = node
	return nil
}

// Fetch resolves name against the scope stack, innermost first. It
// returns nil when the name is not visible at the current position.
func (st *SymbolTable) Fetch(name string) ast.Node {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if node, ok := st.scopes[i][name]; ok {
			return node
		}
	}
	return nil
}
