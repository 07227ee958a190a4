// Copyright © 2026 The XShaderCompiler authors

package sema

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrostEmmet/XShaderCompiler/ast"
	"github.com/FrostEmmet/XShaderCompiler/xsctest"
)

// --- Tree-building helpers ---

func ident(name string) *ast.VarIdent {
	return &ast.VarIdent{Ident: name}
}

func namedType(name string) *ast.VarType {
	return &ast.VarType{BaseType: name}
}

// callStmnt wraps a call to name in expression-statement position.
func callStmnt(name string, args ...ast.Node) ast.Node {
	return &ast.ExprStmnt{
		Expr: &ast.FunctionCallExpr{
			Call: &ast.FunctionCall{Name: ident(name), Arguments: args},
		},
	}
}

// declStmnt declares variables of a named type, e.g. "VOut a, b;".
func declStmnt(typeName string, names ...string) *ast.VarDeclStmnt {
	stmnt := &ast.VarDeclStmnt{VarType: namedType(typeName)}
	for _, name := range names {
		stmnt.VarDecls = append(stmnt.VarDecls, &ast.VarDecl{Name: name})
	}
	return stmnt
}

func structure(name string, memberNames ...string) *ast.Structure {
	s := &ast.Structure{Name: name}
	for _, member := range memberNames {
		s.Members = append(s.Members, declStmnt("float4", member))
	}
	return s
}

func function(name string, returnType *ast.VarType, params []*ast.VarDeclStmnt, stmnts ...ast.Node) *ast.FunctionDecl {
	return &ast.FunctionDecl{
		ReturnType: returnType,
		Name:       name,
		Parameters: params,
		CodeBlock:  &ast.CodeBlock{Stmnts: stmnts},
	}
}

func program(decls ...ast.Node) *ast.Program {
	return &ast.Program{GlobalDecls: decls}
}

// decorate runs a full vertex-shader analysis with entry point "main".
func decorate(t *testing.T, prog *ast.Program) (bool, *xsctest.Logger) {
	t.Helper()
	log := xsctest.NewLogger(t)
	a := NewAnalyzer(log)
	ok := a.Decorate(prog, "main", ast.VertexShader, ast.HLSL5)
	return ok, log
}

// --- Decorate ---

func TestDecorate_NilProgram(t *testing.T) {
	a := NewAnalyzer(nil)
	assert.False(t, a.Decorate(nil, "main", ast.VertexShader, ast.HLSL5))
}

func TestDecorate_EmptyProgram(t *testing.T) {
	ok, log := decorate(t, program())
	assert.True(t, ok)
	assert.Empty(t, log.Errors)
}

func TestDecorate_EntrySelection(t *testing.T) {
	main := function("main", namedType("float4"), nil)
	helper := function("helper", namedType("float4"), nil)
	other := function("mainHelper", namedType("float4"), nil)

	ok, _ := decorate(t, program(helper, main, other))
	require.True(t, ok)

	assert.True(t, main.Flags.Has(ast.IsEntryPoint))
	assert.True(t, main.Flags.Has(ast.IsUsed))
	assert.False(t, helper.Flags.Has(ast.IsEntryPoint))
	assert.False(t, helper.Flags.Has(ast.IsUsed))
	assert.False(t, other.Flags.Has(ast.IsEntryPoint))
	assert.False(t, other.Flags.Has(ast.IsUsed))
}

// --- Intrinsic tracking ---

func TestDecorate_MulIntrinsic(t *testing.T) {
	prog := program(function("main", namedType("float4"), nil,
		callStmnt("mul"),
	))
	ok, _ := decorate(t, prog)
	require.True(t, ok)
	assert.True(t, prog.Flags.Has(ast.MulIntrinsicUsed))
	assert.False(t, prog.Flags.Has(ast.InterlockedIntrinsicsUsed))
}

func TestDecorate_InterlockedIntrinsic(t *testing.T) {
	prog := program(function("main", namedType("float4"), nil,
		callStmnt("InterlockedAdd"),
	))
	ok, _ := decorate(t, prog)
	require.True(t, ok)
	assert.True(t, prog.Flags.Has(ast.InterlockedIntrinsicsUsed))
	assert.False(t, prog.Flags.Has(ast.MulIntrinsicUsed))
}

func TestDecorate_UnrelatedCallSetsNoFlags(t *testing.T) {
	prog := program(function("main", namedType("float4"), nil,
		callStmnt("sin"),
	))
	ok, _ := decorate(t, prog)
	require.True(t, ok)
	assert.False(t, prog.Flags.Has(ast.MulIntrinsicUsed))
	assert.False(t, prog.Flags.Has(ast.InterlockedIntrinsicsUsed))
}

func TestDecorate_ChainedCalleeIsNotMul(t *testing.T) {
	call := &ast.FunctionCall{
		Name: &ast.VarIdent{Ident: "helpers", Next: ident("mul")},
	}
	prog := program(function("main", namedType("float4"), nil,
		&ast.ExprStmnt{Expr: &ast.FunctionCallExpr{Call: call}},
	))
	ok, _ := decorate(t, prog)
	require.True(t, ok)
	assert.False(t, prog.Flags.Has(ast.MulIntrinsicUsed))
}

func TestDecorate_IntrinsicInNestedExpression(t *testing.T) {
	// mul used inside an initializer still sets the program flag.
	stmnt := declStmnt("float4", "v")
	stmnt.VarDecls[0].Initializer = &ast.FunctionCallExpr{
		Call: &ast.FunctionCall{Name: ident("mul")},
	}
	prog := program(function("main", namedType("float4"), nil, stmnt))
	ok, _ := decorate(t, prog)
	require.True(t, ok)
	assert.True(t, prog.Flags.Has(ast.MulIntrinsicUsed))
}

// --- Symbol registration ---

func TestDecorate_DuplicateSymbolReported(t *testing.T) {
	// A structure may not redeclare a name held by a function.
	fn := function("S", namedType("float4"), nil)
	dup := &ast.StructDecl{Structure: structure("S", "pos")}

	ok, log := decorate(t, program(fn, dup))
	assert.False(t, ok)
	require.Len(t, log.Errors, 1)
	assert.Contains(t, log.Errors[0], `identifier "S" already declared`)
}

func TestDecorate_StructRedeclarationPermitted(t *testing.T) {
	// The override predicate accepts an existing structure entry, the
	// placeholder for forward-declaration support.
	first := &ast.StructDecl{Structure: structure("S", "pos")}
	second := &ast.StructDecl{Structure: structure("S", "pos", "color")}

	ok, log := decorate(t, program(first, second))
	assert.True(t, ok)
	assert.Empty(t, log.Errors)

	// Later uses resolve to the second declaration.
	use := declStmnt("S", "x")
	ok, _ = decorate(t, program(first, second, use))
	require.True(t, ok)
	assert.Same(t, second.Structure, use.VarType.SymbolRef)
}

func TestDecorate_FunctionRedeclarationPermitted(t *testing.T) {
	first := function("helper", namedType("float4"), nil)
	second := function("helper", namedType("float4"), nil)

	ok, log := decorate(t, program(first, second))
	assert.True(t, ok)
	assert.Empty(t, log.Errors)
}

// --- Buffer declarations ---

func TestDecorate_UnsupportedBufferKind(t *testing.T) {
	decl := &ast.StructDecl{Structure: structure("S", "pos")}
	member := declStmnt("S", "data")
	buffer := &ast.BufferDecl{
		Base:       ast.Base{Source: ast.Pos{Line: 4, Col: 1}},
		BufferType: "tbuffer",
		Name:       "Settings",
		Members:    []*ast.VarDeclStmnt{member},
	}

	ok, log := decorate(t, program(decl, buffer))
	assert.False(t, ok)
	require.Len(t, log.Errors, 1)
	assert.Equal(t, `context error (4:1) : buffer type "tbuffer" currently not supported`, log.Errors[0])

	// The member is still visited and decorated.
	assert.Same(t, decl.Structure, member.VarType.SymbolRef)
}

func TestDecorate_ConstantBufferAccepted(t *testing.T) {
	buffer := &ast.BufferDecl{
		BufferType: "cbuffer",
		Name:       "Settings",
		Members:    []*ast.VarDeclStmnt{declStmnt("float4", "color")},
	}
	ok, log := decorate(t, program(buffer))
	assert.True(t, ok)
	assert.Empty(t, log.Errors)
}

// --- Entry input/output decoration ---

func TestDecorate_EntryOutputStructure(t *testing.T) {
	vout := structure("VOut", "position")
	main := function("main", namedType("VOut"), nil,
		declStmnt("VOut", "outp"),
		&ast.ReturnStmnt{Expr: &ast.VarAccessExpr{VarIdent: ident("outp")}},
	)

	ok, log := decorate(t, program(&ast.StructDecl{Structure: vout}, main))
	require.True(t, ok)
	assert.Empty(t, log.Errors)

	assert.True(t, vout.Flags.Has(ast.IsShaderOutput))
	assert.False(t, vout.Flags.Has(ast.IsShaderInput))
	assert.Equal(t, "outp", vout.AliasName)
}

func TestDecorate_EntryInputParameter(t *testing.T) {
	vin := structure("VIn", "position")
	param := declStmnt("VIn", "inp")
	main := function("main", namedType("float4"), []*ast.VarDeclStmnt{param})

	ok, _ := decorate(t, program(&ast.StructDecl{Structure: vin}, main))
	require.True(t, ok)

	assert.True(t, vin.Flags.Has(ast.IsShaderInput))
	assert.False(t, vin.Flags.Has(ast.IsShaderOutput))
	assert.True(t, param.Flags.Has(ast.IsShaderInput))
	// Input decoration never assigns the alias.
	assert.Equal(t, "", vin.AliasName)
}

func TestDecorate_InlineStructReturnType(t *testing.T) {
	inline := structure("", "position")
	main := function("main", &ast.VarType{StructType: inline}, nil)

	ok, _ := decorate(t, program(main))
	require.True(t, ok)
	assert.True(t, inline.Flags.Has(ast.IsShaderOutput))
}

func TestDecorate_AliasFirstWriteWins(t *testing.T) {
	vout := structure("VOut", "position")
	main := function("main", namedType("VOut"), nil,
		declStmnt("VOut", "first"),
		declStmnt("VOut", "second"),
	)

	ok, _ := decorate(t, program(&ast.StructDecl{Structure: vout}, main))
	require.True(t, ok)
	assert.Equal(t, "first", vout.AliasName)
}

func TestDecorate_AliasOnlyInsideEntryPoint(t *testing.T) {
	vout := structure("VOut", "position")
	main := function("main", namedType("VOut"), nil)
	helper := function("helper", namedType("float4"), nil,
		declStmnt("VOut", "tmp"),
	)

	ok, _ := decorate(t, program(&ast.StructDecl{Structure: vout}, main, helper))
	require.True(t, ok)

	// VOut is flagged as output via main's return type, but helper's
	// local does not name the interface block.
	assert.True(t, vout.Flags.Has(ast.IsShaderOutput))
	assert.Equal(t, "", vout.AliasName)
}

func TestDecorate_NonEntryFunctionsUndecorated(t *testing.T) {
	vout := structure("VOut", "position")
	param := declStmnt("VOut", "v")
	helper := function("helper", namedType("VOut"), []*ast.VarDeclStmnt{param})

	ok, _ := decorate(t, program(&ast.StructDecl{Structure: vout}, helper))
	require.True(t, ok)

	assert.False(t, vout.Flags.Has(ast.IsShaderInput))
	assert.False(t, vout.Flags.Has(ast.IsShaderOutput))
	assert.False(t, param.Flags.Has(ast.IsShaderInput))
}

// --- Variable types ---

func TestDecorate_MissingVariableType(t *testing.T) {
	stmnt := &ast.VarDeclStmnt{
		VarType:  &ast.VarType{Base: ast.Base{Source: ast.Pos{Line: 2, Col: 5}}},
		VarDecls: []*ast.VarDecl{{Name: "x"}},
	}
	ok, log := decorate(t, program(stmnt))
	assert.False(t, ok)
	require.Len(t, log.Errors, 1)
	assert.Equal(t, "context error (2:5) : missing variable type", log.Errors[0])
}

func TestDecorate_UnresolvedBaseTypeIsNotAnError(t *testing.T) {
	stmnt := declStmnt("UnknownType", "x")
	ok, log := decorate(t, program(stmnt))
	assert.True(t, ok)
	assert.Empty(t, log.Errors)
	assert.Nil(t, stmnt.VarType.SymbolRef)
}

// --- Scoping through the walk ---

func TestDecorate_InnermostDeclarationWins(t *testing.T) {
	outer := structure("S", "a")
	inner := structure("S", "b")
	innerUse := declStmnt("S", "x")
	outerUse := declStmnt("S", "y")

	prog := program(
		&ast.StructDecl{Structure: outer},
		function("helper", namedType("float4"), nil,
			&ast.StructDecl{Structure: inner},
			innerUse,
		),
		outerUse,
	)

	ok, log := decorate(t, prog)
	require.True(t, ok)
	assert.Empty(t, log.Errors)

	assert.Same(t, inner, innerUse.VarType.SymbolRef)
	assert.Same(t, outer, outerUse.VarType.SymbolRef)
}

func TestDecorate_LoopBodyScopeDiscarded(t *testing.T) {
	loopStruct := structure("L", "a")
	afterLoop := declStmnt("L", "x")

	prog := program(function("helper", namedType("float4"), nil,
		&ast.ForLoopStmnt{
			Body: &ast.CodeBlock{Stmnts: []ast.Node{
				&ast.StructDecl{Structure: loopStruct},
			}},
		},
		afterLoop,
	))

	ok, _ := decorate(t, prog)
	require.True(t, ok)
	assert.Nil(t, afterLoop.VarType.SymbolRef)
}

// --- Error accumulation ---

func TestDecorate_ErrorsAreMonotonic(t *testing.T) {
	prog := program(
		&ast.BufferDecl{BufferType: "tbuffer"},
		&ast.BufferDecl{BufferType: "rwbuffer"},
	)
	ok, log := decorate(t, prog)
	assert.False(t, ok)
	assert.Len(t, log.Errors, 2)
}

func TestDecorate_NilLoggerStillTracksErrors(t *testing.T) {
	a := NewAnalyzer(nil)
	prog := program(&ast.BufferDecl{BufferType: "tbuffer"})
	assert.False(t, a.Decorate(prog, "main", ast.VertexShader, ast.HLSL5))
}

func TestDecorate_StateResetBetweenRuns(t *testing.T) {
	log := xsctest.NewLogger(t)
	a := NewAnalyzer(log)

	bad := program(&ast.BufferDecl{BufferType: "tbuffer"})
	require.False(t, a.Decorate(bad, "main", ast.VertexShader, ast.HLSL5))

	good := program(function("main", namedType("float4"), nil))
	assert.True(t, a.Decorate(good, "main", ast.VertexShader, ast.HLSL5))
}

func TestDecorate_ResultMatchesReportedErrors(t *testing.T) {
	tests := []struct {
		name string
		prog *ast.Program
		ok   bool
	}{
		{"clean", program(function("main", namedType("float4"), nil)), true},
		{"bad buffer", program(&ast.BufferDecl{BufferType: "tbuffer"}), false},
		{"missing type", program(&ast.VarDeclStmnt{VarType: &ast.VarType{}}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, log := decorate(t, tt.prog)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, !tt.ok, len(log.Errors) > 0,
				fmt.Sprintf("result %v must match reported errors %d", ok, len(log.Errors)))
		})
	}
}
