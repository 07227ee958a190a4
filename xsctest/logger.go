// Copyright © 2026 The XShaderCompiler authors

// Package xsctest provides test support for the translator packages.
package xsctest

import (
	"testing"

	"github.com/FrostEmmet/XShaderCompiler/diagnostic"
)

// Logger is a diagnostic.Logger that forwards every message to the test
// log and retains it for assertions.
type Logger struct {
	t testing.TB

	Infos    []string
	Warnings []string
	Errors   []string
}

var _ diagnostic.Logger = (*Logger)(nil)

func NewLogger(t testing.TB) *Logger {
	return &Logger{t: t}
}

func (l *Logger) Info(msg string) {
	l.t.Log(msg)
	l.Infos = append(l.Infos, msg)
}

func (l *Logger) Warning(msg string) {
	l.t.Log(msg)
	l.Warnings = append(l.Warnings, msg)
}

func (l *Logger) Error(msg string) {
	l.t.Log(msg)
	l.Errors = append(l.Errors, msg)
}
