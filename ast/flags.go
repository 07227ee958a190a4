// Copyright © 2026 The XShaderCompiler authors

package ast

// Flag is a single named boolean fact attached to a node by the semantic
// pass.
type Flag uint32

// FlagSet is a node's set of flags. Flags are only ever added; the
// semantic pass never clears one.
type FlagSet uint32

// Set adds f to the set.
func (fs *FlagSet) Set(f Flag) {
	*fs |= FlagSet(f)
}

// Has reports whether f is in the set.
func (fs FlagSet) Has(f Flag) bool {
	return fs&FlagSet(f) != 0
}

// Flag values are scoped to the node kind they decorate; distinct kinds
// may reuse the same bit.

// Program flags.
const (
	// MulIntrinsicUsed is set when the program calls the mul intrinsic
	// anywhere.
	MulIntrinsicUsed Flag = 1 << iota
	// InterlockedIntrinsicsUsed is set when the program calls any of the
	// Interlocked* atomic intrinsics anywhere.
	InterlockedIntrinsicsUsed
)

// FunctionDecl flags.
const (
	// IsEntryPoint marks the function configured as the shader entry point.
	IsEntryPoint Flag = 1 << iota
	// IsUsed marks a function that is reachable from the entry point.
	IsUsed
)

// Structure and VarDeclStmnt flags.
const (
	// IsShaderInput marks a type or declaration on the shader's input
	// boundary.
	IsShaderInput Flag = 1 << iota
	// IsShaderOutput marks a type or declaration on the shader's output
	// boundary.
	IsShaderOutput
)
