// Copyright © 2026 The XShaderCompiler authors

// Package sema implements the semantic-analysis pass of the translator.
//
// The analyzer walks a parsed program once, resolves identifiers against
// a lexically scoped symbol table, and decorates the tree in place with
// the facts later passes need: which function is the shader entry point,
// which structures cross the shader input/output boundary, and which
// intrinsic families the program uses. Errors are reported to the
// configured logger and never abort the walk.
package sema

import (
	"fmt"

	"github.com/FrostEmmet/XShaderCompiler/ast"
	"github.com/FrostEmmet/XShaderCompiler/astutil"
	"github.com/FrostEmmet/XShaderCompiler/diagnostic"
)

// mulIntrinsic is tracked by direct name comparison; it maps to a single
// program-wide flag with no family grouping.
const mulIntrinsic = "mul"

// Analyzer decorates a program AST in place. An Analyzer holds per-run
// mutable state and must not be shared by concurrent Decorate calls.
type Analyzer struct {
	log diagnostic.Logger

	// Ambient context for the current run.
	entryPoint string
	target     ast.ShaderTarget
	version    ast.InputVersion

	program          *ast.Program
	symTable         *SymbolTable
	insideEntryPoint bool
	hasErrors        bool
}

// NewAnalyzer returns an analyzer that reports diagnostics to log. A nil
// log suppresses message output but still tracks the error result.
func NewAnalyzer(log diagnostic.Logger) *Analyzer {
	return &Analyzer{log: log}
}

// Decorate walks program once and decorates it for the given entry point
// and target. All internal state is reset first, so an Analyzer may be
// reused across sequential runs. It returns true iff no error was
// reported during this call.
func (a *Analyzer) Decorate(program *ast.Program, entryPoint string, target ast.ShaderTarget, version ast.InputVersion) bool {
	if program == nil {
		return false
	}

	a.entryPoint = entryPoint
	a.target = target
	a.version = version

	a.program = program
	a.symTable = NewSymbolTable()
	a.insideEntryPoint = false
	a.hasErrors = false

	a.visitProgram(program)

	return !a.hasErrors
}

// error records a non-fatal error and forwards it to the logger with the
// node's source position when one is given.
func (a *Analyzer) error(msg string, node ast.Node) {
	a.hasErrors = true
	if a.log == nil {
		return
	}
	if node != nil {
		a.log.Error(fmt.Sprintf("context error (%s) : %s", node.Pos(), msg))
	} else {
		a.log.Error("context error : " + msg)
	}
}

// register adds name to the current scope, converting a rejected
// registration into a diagnostic.
func (a *Analyzer) register(name string, node ast.Node, override OnOverride) {
	if err := a.symTable.Register(name, node, override); err != nil {
		a.error(err.Error(), node)
	}
}

// visit dispatches on the node's runtime variant. Statement and
// expression slices hold heterogeneous nodes, so children reach their
// visit methods through here.
func (a *Analyzer) visit(node ast.Node) {
	switch n := node.(type) {
	case nil:
	case *ast.Program:
		a.visitProgram(n)
	case *ast.CodeBlock:
		a.visitCodeBlock(n)
	case *ast.Attribute:
		a.visitAttribute(n)
	case *ast.FunctionCall:
		a.visitFunctionCall(n)
	case *ast.Structure:
		a.visitStructure(n)
	case *ast.FunctionDecl:
		a.visitFunctionDecl(n)
	case *ast.BufferDecl:
		a.visitBufferDecl(n)
	case *ast.StructDecl:
		a.visitStructDecl(n)
	case *ast.VarDeclStmnt:
		a.visitVarDeclStmnt(n)
	case *ast.CtrlTransferStmnt:
		// no decoration
	case *ast.ReturnStmnt:
		a.visit(n.Expr)
	case *ast.ExprStmnt:
		a.visit(n.Expr)
	case *ast.IfStmnt:
		a.visit(n.Condition)
		a.visitCodeBlock(n.Body)
		a.visit(n.Else)
	case *ast.WhileLoopStmnt:
		a.visit(n.Condition)
		a.visitCodeBlock(n.Body)
	case *ast.ForLoopStmnt:
		a.visit(n.InitStmnt)
		a.visit(n.Condition)
		a.visit(n.Iteration)
		a.visitCodeBlock(n.Body)
	case *ast.PackOffset:
		// leaf annotation
	case *ast.VarSemantic:
		// leaf annotation
	case *ast.VarType:
		a.visitVarType(n)
	case *ast.VarIdent:
		a.visitVarIdent(n)
	case *ast.VarDecl:
		a.visitVarDecl(n)
	case *ast.LiteralExpr:
		// leaf
	case *ast.UnaryExpr:
		a.visit(n.Expr)
	case *ast.BinaryExpr:
		a.visit(n.LHS)
		a.visit(n.RHS)
	case *ast.VarAccessExpr:
		a.visitVarIdent(n.VarIdent)
		a.visit(n.AssignExpr)
	case *ast.FunctionCallExpr:
		a.visitFunctionCall(n.Call)
	case *ast.CastExpr:
		a.visitVarType(n.CastType)
		a.visit(n.Expr)
	case *ast.InitializerExpr:
		for _, expr := range n.Exprs {
			a.visit(expr)
		}
	}
}

func (a *Analyzer) visitProgram(n *ast.Program) {
	for _, decl := range n.GlobalDecls {
		a.visit(decl)
	}
}

// visitCodeBlock opens a scope for the block's statements, so locals
// declared inside are invisible outside.
func (a *Analyzer) visitCodeBlock(n *ast.CodeBlock) {
	if n == nil {
		return
	}
	a.symTable.OpenScope()
	for _, stmnt := range n.Stmnts {
		a.visit(stmnt)
	}
	a.symTable.CloseScope()
}

func (a *Analyzer) visitAttribute(n *ast.Attribute) {
	if n == nil {
		return
	}
	for _, arg := range n.Arguments {
		a.visit(arg)
	}
}

// visitFunctionCall records program-wide intrinsic usage before analyzing
// the arguments. Overload resolution and arity checking are left to the
// type checker.
func (a *Analyzer) visitFunctionCall(n *ast.FunctionCall) {
	if n == nil {
		return
	}

	name := astutil.FullName(n.Name)
	if name == mulIntrinsic {
		a.program.Flags.Set(ast.MulIntrinsicUsed)
	} else {
		switch classifyIntrinsic(name) {
		case IntrinsicInterlocked:
			a.program.Flags.Set(ast.InterlockedIntrinsicsUsed)
		}
	}

	for _, arg := range n.Arguments {
		a.visit(arg)
	}
}

// visitStructure registers a named structure in the current scope. Only
// an existing structure declaration may be overridden, as a placeholder
// for forward-declaration support.
func (a *Analyzer) visitStructure(n *ast.Structure) {
	if n == nil {
		return
	}
	if n.Name != "" {
		a.register(n.Name, n, func(existing ast.Node) bool {
			_, ok := existing.(*ast.Structure)
			return ok
		})
	}
	for _, member := range n.Members {
		a.visitVarDeclStmnt(member)
	}
}

func (a *Analyzer) visitFunctionDecl(n *ast.FunctionDecl) {
	if n == nil {
		return
	}

	a.register(n.Name, n, func(existing ast.Node) bool {
		_, ok := existing.(*ast.FunctionDecl)
		return ok
	})

	for _, attrib := range n.Attribs {
		a.visitAttribute(attrib)
	}
	a.visitVarType(n.ReturnType)
	for _, param := range n.Parameters {
		a.visitVarDeclStmnt(param)
	}

	isEntryPoint := n.Name == a.entryPoint
	if isEntryPoint {
		n.Flags.Set(ast.IsEntryPoint)
		n.Flags.Set(ast.IsUsed)

		// The entry point's return type and parameters define the
		// shader's output and input interfaces.
		a.decorateEntryInOutType(n.ReturnType, false)
		for _, param := range n.Parameters {
			a.decorateEntryInOut(param, true)
		}
	}

	a.insideEntryPoint = isEntryPoint
	a.visitCodeBlock(n.CodeBlock)
	a.insideEntryPoint = false
}

func (a *Analyzer) visitBufferDecl(n *ast.BufferDecl) {
	if n == nil {
		return
	}
	if n.BufferType != "cbuffer" {
		a.error(fmt.Sprintf("buffer type %q currently not supported", n.BufferType), n)
	}
	// Members are decorated even for unsupported buffer kinds so later
	// passes see a fully decorated tree.
	for _, member := range n.Members {
		a.visitVarDeclStmnt(member)
	}
}

func (a *Analyzer) visitStructDecl(n *ast.StructDecl) {
	if n == nil {
		return
	}
	a.visitStructure(n.Structure)
}

func (a *Analyzer) visitVarDeclStmnt(n *ast.VarDeclStmnt) {
	if n == nil {
		return
	}
	a.visitVarType(n.VarType)
	for _, decl := range n.VarDecls {
		a.visitVarDecl(decl)
	}

	// A declaration like "VOut outp;" inside the entry point binds the
	// shader output interface block; record the declarator's name as the
	// structure's alias. The first successful write wins.
	if a.insideEntryPoint && len(n.VarDecls) > 0 && n.VarType != nil {
		if structType, ok := n.VarType.SymbolRef.(*ast.Structure); ok {
			if structType.Flags.Has(ast.IsShaderOutput) && structType.AliasName == "" {
				structType.AliasName = n.VarDecls[0].Name
			}
		}
	}
}

func (a *Analyzer) visitVarType(n *ast.VarType) {
	if n == nil {
		return
	}
	if n.BaseType != "" {
		// Unresolved base types are not an error here; they are left for
		// the type checker.
		if symbol := a.symTable.Fetch(n.BaseType); symbol != nil {
			n.SymbolRef = symbol
		}
	} else if n.StructType != nil {
		a.visitStructure(n.StructType)
	} else {
		a.error("missing variable type", n)
	}
}

func (a *Analyzer) visitVarIdent(n *ast.VarIdent) {
	if n == nil {
		return
	}
	for _, index := range n.ArrayIndices {
		a.visit(index)
	}
	a.visitVarIdent(n.Next)
}

func (a *Analyzer) visitVarDecl(n *ast.VarDecl) {
	if n == nil {
		return
	}
	for _, dim := range n.ArrayDims {
		a.visit(dim)
	}
	for _, semantic := range n.Semantics {
		a.visit(semantic)
	}
	a.visit(n.Initializer)
}

// decorateEntryInOut marks a declaration statement on the entry-point
// boundary and propagates the flag to the declared structure type.
func (a *Analyzer) decorateEntryInOut(stmnt *ast.VarDeclStmnt, input bool) {
	if stmnt == nil {
		return
	}

	flag := ast.IsShaderOutput
	if input {
		flag = ast.IsShaderInput
	}

	stmnt.Flags.Set(flag)

	varType := stmnt.VarType
	if varType == nil {
		return
	}
	if varType.StructType != nil {
		varType.StructType.Flags.Set(flag)
	}
	if structType, ok := varType.SymbolRef.(*ast.Structure); ok {
		structType.Flags.Set(flag)
		if flag == ast.IsShaderOutput && len(stmnt.VarDecls) > 0 && structType.AliasName == "" {
			structType.AliasName = stmnt.VarDecls[0].Name
		}
	}
}

// decorateEntryInOutType propagates the boundary flag to a bare type,
// used for the entry point's return type.
func (a *Analyzer) decorateEntryInOutType(varType *ast.VarType, input bool) {
	if varType == nil {
		return
	}

	flag := ast.IsShaderOutput
	if input {
		flag = ast.IsShaderInput
	}

	if varType.StructType != nil {
		varType.StructType.Flags.Set(flag)
	}
	if structType, ok := varType.SymbolRef.(*ast.Structure); ok {
		structType.Flags.Set(flag)
	}
}
