package eserror

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Introspector supplies the two host-runtime facilities capture needs: a
// textual call-stack dump and function metadata lookup. RuntimeIntrospector
// is the default; hosts embedding another execution environment can provide
// their own.
type Introspector interface {
	// Traceback returns a call-stack dump from the current execution point,
	// one frame per line in the form "funcName (file:line)", most recent
	// call first. skip is the number of frames to exclude beyond Traceback
	// itself; 0 means the dump starts at Traceback's caller.
	Traceback(skip int) string

	// FuncInfo reports the declared name and defining source file of the
	// function value fn. ok is false when fn is not a function or its
	// metadata cannot be resolved.
	FuncInfo(fn any) (name, source string, ok bool)
}

// maxTraceDepth bounds the number of frames recorded by a single capture.
const maxTraceDepth = 64

// RuntimeIntrospector implements Introspector on top of the Go runtime.
type RuntimeIntrospector struct{}

var defaultIntrospector Introspector = RuntimeIntrospector{}

// Traceback implements Introspector using runtime.Callers.
func (RuntimeIntrospector) Traceback(skip int) string {
	pc := make([]uintptr, maxTraceDepth)
	// +2 skips runtime.Callers itself and this method.
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pc[:n])
	var b strings.Builder
	for {
		fr, more := frames.Next()
		fmt.Fprintf(&b, "%s (%s:%d)\n", fr.Function, fr.File, fr.Line)
		if !more {
			break
		}
	}
	return b.String()
}

// FuncInfo implements Introspector using reflection and runtime.FuncForPC.
// The "-fm" suffix the runtime gives method-value wrappers is stripped from
// the reported name.
func (RuntimeIntrospector) FuncInfo(fn any) (string, string, bool) {
	if fn == nil {
		return "", "", false
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "", "", false
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "", "", false
	}
	file, _ := f.FileLine(f.Entry())
	name := strings.TrimSuffix(f.Name(), "-fm")
	if name == "" || file == "" {
		return "", "", false
	}
	return name, file, true
}
