// Copyright © 2026 The XShaderCompiler authors

// Package diagnostic defines the logging contract between the translator
// passes and their output sink. It is intentionally independent of the
// ast package so that any component can report messages without creating
// import cycles.
package diagnostic

// Severity indicates the severity level of a message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Logger receives formatted messages from the translator passes. A pass
// tracks its own success/failure independently of whatever the sink does
// with the messages.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// Entry is a single recorded message.
type Entry struct {
	Severity Severity
	Message  string
}

// List collects messages in order of arrival. It implements Logger and
// is useful for tools that inspect diagnostics after a pass completes.
type List struct {
	Entries []Entry
}

var _ Logger = (*List)(nil)

func (l *List) Info(msg string) { l.add(SeverityInfo, msg) }

func (l *List) Warning(msg string) { l.add(SeverityWarning, msg) }

func (l *List) Error(msg string) { l.add(SeverityError, msg) }

func (l *List) add(sev Severity, msg string) {
	l.Entries = append(l.Entries, Entry{Severity: sev, Message: msg})
}

// HasErrors reports whether any error-severity message was recorded.
func (l *List) HasErrors() bool {
	for _, e := range l.Entries {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Messages returns the recorded message texts in order.
func (l *List) Messages() []string {
	msgs := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		msgs[i] = e.Message
	}
	return msgs
}
