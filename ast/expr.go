// Copyright © 2026 The XShaderCompiler authors

package ast

// Expression variants. None of these carry decoration rules; the semantic
// pass visits their children for completeness only.

// LiteralExpr is a literal token such as "1.0" or "true".
type LiteralExpr struct {
	Base
	Literal string
}

// UnaryExpr applies a prefix operator to an expression.
type UnaryExpr struct {
	Base
	Op   string
	Expr Node
}

// BinaryExpr applies an infix operator to two expressions.
type BinaryExpr struct {
	Base
	LHS Node
	Op  string
	RHS Node
}

// VarAccessExpr reads or assigns a variable. AssignOp and AssignExpr are
// empty/nil for a plain read.
type VarAccessExpr struct {
	Base
	VarIdent   *VarIdent
	AssignOp   string
	AssignExpr Node
}

// FunctionCallExpr wraps a FunctionCall in expression position.
type FunctionCallExpr struct {
	Base
	Call *FunctionCall
}

// CastExpr converts an expression to another type.
type CastExpr struct {
	Base
	CastType *VarType
	Expr     Node
}

// InitializerExpr is a braced initializer list.
type InitializerExpr struct {
	Base
	Exprs []Node
}
