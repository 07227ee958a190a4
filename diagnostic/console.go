// Copyright © 2026 The XShaderCompiler authors

package diagnostic

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// ConsoleLogger writes messages to a terminal with a colored severity
// label. The zero value writes uncolored output to stderr without
// wrapping.
type ConsoleLogger struct {
	// Out is the destination writer. Defaults to os.Stderr.
	Out io.Writer

	// Color controls ANSI color output. Default is ColorAuto.
	Color ColorMode

	// Width is the column at which long messages wrap. Zero disables
	// wrapping.
	Width int
}

var _ Logger = (*ConsoleLogger)(nil)

func (c *ConsoleLogger) Info(msg string) { c.write(SeverityInfo, msg) }

func (c *ConsoleLogger) Warning(msg string) { c.write(SeverityWarning, msg) }

func (c *ConsoleLogger) Error(msg string) { c.write(SeverityError, msg) }

func (c *ConsoleLogger) write(sev Severity, msg string) {
	out := c.Out
	if out == nil {
		out = os.Stderr
	}
	p := choosePalette(c.Color, out)

	if c.Width > 0 {
		msg = wordwrap.String(msg, c.Width)
		// Indent continuation lines under the message column.
		msg = strings.ReplaceAll(msg, "\n", "\n  ")
	}

	fmt.Fprintf(out, "%s%s:%s %s\n", p.severityColor(sev), sev, p.reset, msg)
}
