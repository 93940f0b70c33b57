package eserror

import "strings"

// CaptureStackTrace (re)captures e's stack trace from the current execution
// point, overwriting any previous capture. When origin is a function value
// whose frame appears in the dump, that frame and everything above it are
// removed, so a helper raising on behalf of its caller can hide itself from
// the trace. A nil origin, a non-function, or an origin that cannot be
// located in the dump leaves the dump untrimmed; capture never fails.
func CaptureStackTrace(e *Error, origin any) {
	e.capture(origin, 1)
}

// capture grabs a raw traceback, optionally trims it at origin's frame, and
// recomputes Stack. skip is the number of frames between capture's caller
// and the user-visible call site.
func (e *Error) capture(origin any, skip int) {
	intr := e.intr
	if intr == nil {
		intr = defaultIntrospector
	}
	raw := intr.Traceback(skip + 1)
	if origin != nil {
		raw = trimAtOrigin(raw, origin, intr)
	}
	e.rawTrace = raw
	e.Stack = formatStack(e.Name, e.Message, raw)
}

// trimAtOrigin removes the origin function's frame and every frame above it
// from raw. The frame is located with a literal substring search for the
// combined function-name + source-file token, so the source path needs no
// pattern escaping. An unresolvable origin or a dump without a matching
// frame returns raw unchanged.
func trimAtOrigin(raw string, origin any, intr Introspector) string {
	name, source, ok := intr.FuncInfo(origin)
	if !ok || name == "" {
		return raw
	}
	token := name + " (" + source + ":"
	i := strings.Index(raw, token)
	if i < 0 {
		return raw
	}
	nl := strings.IndexByte(raw[i:], '\n')
	if nl < 0 {
		// The origin frame is the last line of the dump.
		return ""
	}
	return raw[i+nl+1:]
}
