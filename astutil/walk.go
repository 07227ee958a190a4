// Copyright © 2026 The XShaderCompiler authors

// Package astutil provides shared AST traversal utilities.
//
// These helpers are used by the sema package and by tooling that needs a
// generic walk over a decorated tree.
package astutil

import (
	"reflect"
	"strings"

	"github.com/FrostEmmet/XShaderCompiler/ast"
)

// FullName returns the dotted name of a chained identifier, e.g.
// "light.color" for a member-access chain. Array indices do not
// contribute to the name.
func FullName(ident *ast.VarIdent) string {
	if ident == nil {
		return ""
	}
	var sb strings.Builder
	for v := ident; v != nil; v = v.Next {
		if v != ident {
			sb.WriteByte('.')
		}
		sb.WriteString(v.Ident)
	}
	return sb.String()
}

// Inspect calls fn for node and then, if fn returns true, for each of the
// node's owned children, depth-first. Symbol references are back-links,
// not children, and are never followed.
func Inspect(node ast.Node, fn func(ast.Node) bool) {
	if node == nil || isNilNode(node) {
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range children(node) {
		Inspect(child, fn)
	}
}

// Find returns the first node in depth-first order for which pred returns
// true, or nil.
func Find(node ast.Node, pred func(ast.Node) bool) ast.Node {
	var found ast.Node
	Inspect(node, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// children enumerates a node's owned children in visit order.
func children(node ast.Node) []ast.Node {
	var out []ast.Node
	add := func(n ast.Node) {
		if n != nil && !isNilNode(n) {
			out = append(out, n)
		}
	}

	switch n := node.(type) {
	case *ast.Program:
		for _, decl := range n.GlobalDecls {
			add(decl)
		}
	case *ast.CodeBlock:
		for _, stmnt := range n.Stmnts {
			add(stmnt)
		}
	case *ast.Attribute:
		for _, arg := range n.Arguments {
			add(arg)
		}
	case *ast.FunctionCall:
		add(n.Name)
		for _, arg := range n.Arguments {
			add(arg)
		}
	case *ast.Structure:
		for _, member := range n.Members {
			add(member)
		}
	case *ast.FunctionDecl:
		for _, attrib := range n.Attribs {
			add(attrib)
		}
		add(n.ReturnType)
		for _, param := range n.Parameters {
			add(param)
		}
		add(n.CodeBlock)
	case *ast.BufferDecl:
		for _, member := range n.Members {
			add(member)
		}
	case *ast.StructDecl:
		add(n.Structure)
	case *ast.VarDeclStmnt:
		add(n.VarType)
		for _, decl := range n.VarDecls {
			add(decl)
		}
	case *ast.ReturnStmnt:
		add(n.Expr)
	case *ast.ExprStmnt:
		add(n.Expr)
	case *ast.IfStmnt:
		add(n.Condition)
		add(n.Body)
		add(n.Else)
	case *ast.WhileLoopStmnt:
		add(n.Condition)
		add(n.Body)
	case *ast.ForLoopStmnt:
		add(n.InitStmnt)
		add(n.Condition)
		add(n.Iteration)
		add(n.Body)
	case *ast.VarSemantic:
		add(n.PackOffset)
	case *ast.VarType:
		// SymbolRef is intentionally not a child.
		add(n.StructType)
	case *ast.VarIdent:
		for _, index := range n.ArrayIndices {
			add(index)
		}
		add(n.Next)
	case *ast.VarDecl:
		for _, dim := range n.ArrayDims {
			add(dim)
		}
		for _, semantic := range n.Semantics {
			add(semantic)
		}
		add(n.Initializer)
	case *ast.UnaryExpr:
		add(n.Expr)
	case *ast.BinaryExpr:
		add(n.LHS)
		add(n.RHS)
	case *ast.VarAccessExpr:
		add(n.VarIdent)
		add(n.AssignExpr)
	case *ast.FunctionCallExpr:
		add(n.Call)
	case *ast.CastExpr:
		add(n.CastType)
		add(n.Expr)
	case *ast.InitializerExpr:
		for _, expr := range n.Exprs {
			add(expr)
		}
	}
	return out
}

// isNilNode reports whether node is a typed nil pointer wrapped in the
// Node interface. All variants are pointer types.
func isNilNode(node ast.Node) bool {
	v := reflect.ValueOf(node)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
