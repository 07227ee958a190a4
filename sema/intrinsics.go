// Copyright © 2026 The XShaderCompiler authors

package sema

// IntrinsicClass groups built-in functions that share translator-relevant
// semantics.
type IntrinsicClass int

const (
	// IntrinsicNone means the name is not an intrinsic this pass tracks.
	IntrinsicNone IntrinsicClass = iota
	// IntrinsicInterlocked covers the atomic Interlocked* family.
	IntrinsicInterlocked
)

// intrinsicClasses maps built-in function names to their class. The table
// is read-only and shared by all analyzer instances.
var intrinsicClasses = map[string]IntrinsicClass{
	"InterlockedAdd":             IntrinsicInterlocked,
	"InterlockedAnd":             IntrinsicInterlocked,
	"InterlockedOr":              IntrinsicInterlocked,
	"InterlockedXor":             IntrinsicInterlocked,
	"InterlockedMin":             IntrinsicInterlocked,
	"InterlockedMax":             IntrinsicInterlocked,
	"InterlockedCompareExchange": IntrinsicInterlocked,
	"InterlockedExchange":        IntrinsicInterlocked,
}

// classifyIntrinsic returns the class of an exact built-in name. Unknown
// names yield IntrinsicNone; that is not an error, merely uninteresting
// to this pass.
func classifyIntrinsic(name string) IntrinsicClass {
	return intrinsicClasses[name]
}
