/*
Package eserror provides an ECMAScript-style Error object for Go: a value
carrying a name, a message and a formatted stack trace, with
Error.captureStackTrace-style control over which frame becomes the top of
the trace.
*/
package eserror

import (
	"fmt"
	"strings"
)

// DefaultName is the error name used when none has been set.
const DefaultName = "Error"

// Error represents an ECMAScript-style error object. The zero value is
// usable; an empty Name reads as DefaultName wherever it is formatted.
// An Error belongs to one goroutine at a time: concurrent captures on the
// same value must be serialized by the caller.
type Error struct {
	Name    string // Error name (e.g. "Error", "TypeError")
	Message string // Error message
	Stack   string // Formatted stack trace, written by capture only

	rawTrace string       // unprocessed frame dump from the last capture
	intr     Introspector // stack facility, nil means the Go runtime
}

// New creates an Error with the given message and captures the current
// stack. Non-string messages are converted with fmt.Sprint and nil yields an
// empty message. The first frame of the captured trace is New's caller.
func New(message any) *Error {
	e := &Error{Name: DefaultName, Message: stringify(message)}
	e.capture(nil, 1)
	return e
}

// NewWith is New against a caller-supplied introspection facility. Later
// captures on the returned Error keep using intr.
func NewWith(intr Introspector, message any) *Error {
	e := &Error{Name: DefaultName, Message: stringify(message), intr: intr}
	e.capture(nil, 1)
	return e
}

// Error implements the error interface. It returns the captured stack when
// one is present, otherwise the header line alone.
func (e Error) Error() string {
	if e.Stack != "" {
		return e.Stack
	}
	return header(e.Name, e.Message)
}

// header builds the first line of a formatted trace: the error name,
// followed by ": message" only when the message is non-empty.
func header(name, message string) string {
	if name == "" {
		name = DefaultName
	}
	if message == "" {
		return name
	}
	return name + ": " + message
}

// formatStack renders the public stack text from a raw frame dump: the
// header line, then one "\tat " prefixed line per frame. A trailing newline
// in the dump does not produce an empty frame line.
func formatStack(name, message, rawTrace string) string {
	var b strings.Builder
	b.WriteString(header(name, message))
	lines := strings.Split(rawTrace, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for _, line := range lines {
		b.WriteString("\n\tat ")
		b.WriteString(line)
	}
	return b.String()
}

// stringify converts a message value to its string form.
func stringify(v any) string {
	switch m := v.(type) {
	case nil:
		return ""
	case string:
		return m
	default:
		return fmt.Sprint(m)
	}
}
