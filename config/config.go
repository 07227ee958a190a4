// Copyright © 2026 The XShaderCompiler authors

// Package config loads the translator settings consumed by the semantic
// pass: the entry-point name, the target shader stage, the HLSL input
// version, and the console color mode.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/FrostEmmet/XShaderCompiler/ast"
	"github.com/FrostEmmet/XShaderCompiler/diagnostic"
)

// Config carries translator settings in their string form. Use the
// mapping methods to obtain the typed values.
type Config struct {
	EntryPoint string `mapstructure:"entry-point"`
	Target     string `mapstructure:"target"`
	Version    string `mapstructure:"version"`
	Color      string `mapstructure:"color"`
}

// Default returns the built-in settings: a vertex shader with entry
// point "main", HLSL 5 input, and automatic color detection.
func Default() *Config {
	return &Config{
		EntryPoint: "main",
		Target:     "vertex",
		Version:    "hlsl5",
		Color:      "auto",
	}
}

// Load reads settings from the YAML file at path, or from xsc.yaml in the
// working directory when path is empty. Environment variables prefixed
// XSC_ override file values (XSC_ENTRY_POINT, XSC_TARGET, ...). A missing
// default file is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("entry-point", defaults.EntryPoint)
	v.SetDefault("target", defaults.Target)
	v.SetDefault("version", defaults.Version)
	v.SetDefault("color", defaults.Color)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("xsc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("XSC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// ShaderTarget maps the configured target string onto the ast enum.
func (c *Config) ShaderTarget() (ast.ShaderTarget, error) {
	switch strings.ToLower(c.Target) {
	case "vertex":
		return ast.VertexShader, nil
	case "pixel", "fragment":
		return ast.PixelShader, nil
	case "geometry":
		return ast.GeometryShader, nil
	case "hull":
		return ast.HullShader, nil
	case "domain":
		return ast.DomainShader, nil
	case "compute":
		return ast.ComputeShader, nil
	}
	return 0, fmt.Errorf("unknown shader target %q", c.Target)
}

// InputVersion maps the configured version string onto the ast enum.
func (c *Config) InputVersion() (ast.InputVersion, error) {
	switch strings.ToLower(c.Version) {
	case "hlsl3":
		return ast.HLSL3, nil
	case "hlsl4":
		return ast.HLSL4, nil
	case "hlsl5":
		return ast.HLSL5, nil
	}
	return 0, fmt.Errorf("unknown input version %q", c.Version)
}

// ColorMode maps the configured color string onto the diagnostic enum.
func (c *Config) ColorMode() (diagnostic.ColorMode, error) {
	switch strings.ToLower(c.Color) {
	case "auto":
		return diagnostic.ColorAuto, nil
	case "always":
		return diagnostic.ColorAlways, nil
	case "never":
		return diagnostic.ColorNever, nil
	}
	return 0, fmt.Errorf("unknown color mode %q", c.Color)
}
