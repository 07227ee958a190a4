// Copyright © 2026 The XShaderCompiler authors

package diagnostic

import (
	"io"
	"os"
)

// ColorMode controls when ANSI color codes are used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // detect based on terminal and NO_COLOR
	ColorAlways                  // always use colors
	ColorNever                   // never use colors
)

// palette holds the ANSI escape sequences for console output.
type palette struct {
	boldRed  string
	yellow   string
	boldCyan string
	reset    string
}

var ansiPalette = palette{
	boldRed:  "\033[1;31m",
	yellow:   "\033[33m",
	boldCyan: "\033[1;36m",
	reset:    "\033[0m",
}

var noPalette = palette{}

// severityColor returns the escape sequence used for a severity label.
func (p palette) severityColor(sev Severity) string {
	switch sev {
	case SeverityError:
		return p.boldRed
	case SeverityWarning:
		return p.yellow
	default:
		return p.boldCyan
	}
}

// choosePalette selects the color palette based on the mode and the
// output destination.
func choosePalette(mode ColorMode, w io.Writer) palette {
	switch mode {
	case ColorAlways:
		return ansiPalette
	case ColorNever:
		return noPalette
	default: // ColorAuto
		if os.Getenv("NO_COLOR") != "" {
			return noPalette
		}
		if !isTerminal(fileFromWriter(w)) {
			return noPalette
		}
		return ansiPalette
	}
}

// fileFromWriter returns w as an *os.File when it is one, else nil.
func fileFromWriter(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}

// isTerminal reports whether f is connected to a terminal.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
