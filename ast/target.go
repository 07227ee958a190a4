// Copyright © 2026 The XShaderCompiler authors

package ast

// ShaderTarget is the shader pipeline stage a program is translated for.
// The semantic pass stores the target as ambient context; it gates which
// decoration rules activate but is not otherwise interpreted there.
type ShaderTarget int

const (
	VertexShader ShaderTarget = iota
	PixelShader
	GeometryShader
	HullShader
	DomainShader
	ComputeShader
)

func (t ShaderTarget) String() string {
	switch t {
	case VertexShader:
		return "vertex"
	case PixelShader:
		return "pixel"
	case GeometryShader:
		return "geometry"
	case HullShader:
		return "hull"
	case DomainShader:
		return "domain"
	case ComputeShader:
		return "compute"
	default:
		return "unknown"
	}
}

// InputVersion is the HLSL version of the source being translated.
type InputVersion int

const (
	HLSL3 InputVersion = iota
	HLSL4
	HLSL5
)

func (v InputVersion) String() string {
	switch v {
	case HLSL3:
		return "HLSL 3.0"
	case HLSL4:
		return "HLSL 4.0"
	case HLSL5:
		return "HLSL 5.0"
	default:
		return "unknown"
	}
}
