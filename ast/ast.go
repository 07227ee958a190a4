// Copyright © 2026 The XShaderCompiler authors

// Package ast defines the abstract syntax tree for HLSL shader programs.
//
// Trees are produced by an external parser and decorated in place by the
// sema package. Every node owns its children exclusively; the only
// cross-links are symbol references (VarType.SymbolRef), which are
// non-owning back-references to the node that declared the referenced
// symbol and are populated during semantic analysis.
package ast

import "fmt"

// Pos is a source position. Line and Col start at 1 when tracked.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Node is implemented by every AST variant.
type Node interface {
	Pos() Pos
}

// Base carries the source position and the decoration flag set shared by
// all variants. Parsers embed it into every node they build.
type Base struct {
	Source Pos
	Flags  FlagSet
}

func (b *Base) Pos() Pos { return b.Source }

// Program is the root of a parsed shader source file.
type Program struct {
	Base
	GlobalDecls []Node
}

// CodeBlock is a braced statement list. It introduces a lexical scope.
type CodeBlock struct {
	Base
	Stmnts []Node
}

// Attribute is a declaration attribute such as [numthreads(8, 8, 1)].
type Attribute struct {
	Base
	Name      string
	Arguments []Node
}

// FunctionCall is a call with a possibly chained callee identifier.
type FunctionCall struct {
	Base
	Name      *VarIdent
	Arguments []Node
}

// Structure is a struct type, named or anonymous. AliasName is the name
// used to address the structure as a shader interface block; it is
// assigned during semantic analysis and the first successful write wins.
type Structure struct {
	Base
	Name      string
	AliasName string
	Members   []*VarDeclStmnt
}

// FunctionDecl is a global function declaration. CodeBlock is nil for a
// forward declaration.
type FunctionDecl struct {
	Base
	Attribs    []*Attribute
	ReturnType *VarType
	Name       string
	Parameters []*VarDeclStmnt
	CodeBlock  *CodeBlock
}

// BufferDecl is a buffer declaration such as cbuffer or tbuffer.
type BufferDecl struct {
	Base
	BufferType   string
	Name         string
	RegisterName string
	Members      []*VarDeclStmnt
}

// StructDecl is a structure declaration statement wrapping a Structure.
type StructDecl struct {
	Base
	Structure *Structure
}

// VarDeclStmnt declares zero or more variables of a common type.
type VarDeclStmnt struct {
	Base
	VarType  *VarType
	VarDecls []*VarDecl
}

// CtrlTransferStmnt is a break, continue, or discard statement.
type CtrlTransferStmnt struct {
	Base
	Instruction string
}

// ReturnStmnt returns from the enclosing function. Expr may be nil.
type ReturnStmnt struct {
	Base
	Expr Node
}

// ExprStmnt evaluates an expression for its side effects.
type ExprStmnt struct {
	Base
	Expr Node
}

// IfStmnt is a conditional. Else is either another *IfStmnt (else-if
// chain) or a *CodeBlock, and may be nil.
type IfStmnt struct {
	Base
	Condition Node
	Body      *CodeBlock
	Else      Node
}

// WhileLoopStmnt is a while loop.
type WhileLoopStmnt struct {
	Base
	Condition Node
	Body      *CodeBlock
}

// ForLoopStmnt is a for loop. InitStmnt, Condition, and Iteration may
// each be nil.
type ForLoopStmnt struct {
	Base
	InitStmnt Node
	Condition Node
	Iteration Node
	Body      *CodeBlock
}

// PackOffset is a packoffset register annotation.
type PackOffset struct {
	Base
	RegisterName    string
	VectorComponent string
}

// VarSemantic is a semantic annotation on a variable declarator, e.g.
// ": SV_Position" or ": register(c0)".
type VarSemantic struct {
	Base
	Semantic     string
	PackOffset   *PackOffset
	RegisterName string
}

// VarType names a variable's type, either by identifier (BaseType) or as
// an inline structure (StructType). SymbolRef is the non-owning reference
// to the declaration BaseType resolved to, if any; it is filled in by the
// semantic pass and stable once written.
type VarType struct {
	Base
	BaseType   string
	StructType *Structure
	SymbolRef  Node
}

// VarIdent is a possibly member-chained identifier with optional array
// indices, e.g. "light[i].color".
type VarIdent struct {
	Base
	Ident        string
	ArrayIndices []Node
	Next         *VarIdent
}

// VarDecl is a single declarator within a VarDeclStmnt.
type VarDecl struct {
	Base
	Name        string
	ArrayDims   []Node
	Semantics   []*VarSemantic
	Initializer Node
}
