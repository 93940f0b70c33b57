package eserror_test

import (
	"strings"
	"testing"

	eserror "github.com/buke/eserror-go"
	"github.com/stretchr/testify/require"
)

// tracebackAt forwards to RuntimeIntrospector.Traceback so the skip
// semantics can be observed from a known frame.
func tracebackAt(skip int) string {
	return eserror.RuntimeIntrospector{}.Traceback(skip)
}

// sampleOrigin exists only to be looked up through FuncInfo.
func sampleOrigin() {}

// TestTracebackFormat tests the one-frame-per-line dump format
func TestTracebackFormat(t *testing.T) {
	dump := tracebackAt(0)

	require.NotEmpty(t, dump)
	require.True(t, strings.HasSuffix(dump, "\n"))

	lines := strings.Split(strings.TrimSuffix(dump, "\n"), "\n")
	require.NotEmpty(t, lines)
	require.Contains(t, lines[0], "tracebackAt")
	require.Contains(t, lines[0], "introspect_test.go:")

	for _, line := range lines {
		require.Contains(t, line, " (")
		require.True(t, strings.HasSuffix(line, ")"), "frame line %q", line)
	}
}

// TestTracebackSkip tests that skip counts frames beyond Traceback's caller
func TestTracebackSkip(t *testing.T) {
	dump := tracebackAt(1)

	lines := strings.Split(dump, "\n")
	require.NotEmpty(t, lines)
	require.Contains(t, lines[0], "TestTracebackSkip")
	require.NotContains(t, dump, "tracebackAt")
}

// TestFuncInfo tests metadata lookup for resolvable and unresolvable values
func TestFuncInfo(t *testing.T) {
	intr := eserror.RuntimeIntrospector{}

	name, source, ok := intr.FuncInfo(sampleOrigin)
	require.True(t, ok)
	require.Contains(t, name, "sampleOrigin")
	require.True(t, strings.HasSuffix(source, "introspect_test.go"), "source %q", source)

	name, _, ok = intr.FuncInfo(strings.ToUpper)
	require.True(t, ok)
	require.EqualValues(t, "strings.ToUpper", name)
}

// TestFuncInfoUnresolvable tests the explicit unknown signal
func TestFuncInfoUnresolvable(t *testing.T) {
	var nilFn func()

	testCases := []struct {
		name string
		fn   any
	}{
		{"nil", nil},
		{"not_a_function", 42},
		{"string", "main"},
		{"nil_function_value", nilFn},
	}

	intr := eserror.RuntimeIntrospector{}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name, source, ok := intr.FuncInfo(tc.fn)
			require.False(t, ok)
			require.Empty(t, name)
			require.Empty(t, source)
		})
	}
}

// TestFuncInfoMethodValue tests that method values resolve without the
// runtime's wrapper suffix
func TestFuncInfoMethodValue(t *testing.T) {
	var b strings.Builder
	name, _, ok := eserror.RuntimeIntrospector{}.FuncInfo(b.WriteString)
	require.True(t, ok)
	require.NotContains(t, name, "-fm")
	require.Contains(t, name, "WriteString")
}
