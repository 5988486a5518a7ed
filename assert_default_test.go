//go:build !gassert_trace && !gassert_debug && !gassert_info && !gassert_warn && !gassert_fatal_debug && !gassert_fatal_info && !gassert_fatal_warn

package gassert_test

import (
	"testing"

	"github.com/gordian-engine/gassert"
	"github.com/gordian-engine/gassert/gasserttest"
	"github.com/stretchr/testify/require"
)

func TestDefaultBuild(t *testing.T) {
	require.Equal(t, gassert.LevelWarn, gassert.Threshold)
	require.Equal(t, gassert.LevelAlways, gassert.FatalFloor)

	require.False(t, gassert.TraceEnabled)
	require.False(t, gassert.DebugEnabled)
	require.False(t, gassert.InfoEnabled)
	require.True(t, gassert.WarnEnabled)

	logs := gasserttest.CaptureLogs(t)

	// A condition that would never return is fine when elided.
	gassert.Info(func() bool {
		for {
		}
	}, "never evaluated")
	require.Zero(t, logs.Len())

	gassert.Warn(func() bool { return false }, "w")
	require.Equal(t, 1, logs.Len())

	gasserttest.RequireFatal(t, func() {
		gassert.Always(func() bool { return false }, "a")
	})
	require.Equal(t, 2, logs.Len())
}

func TestDefaultBuild_messageArgs(t *testing.T) {
	logs := gasserttest.CaptureLogs(t)

	calls := 0
	expensive := func() int {
		calls++
		return calls
	}

	// Arguments are evaluated like any other call, even though Trace is elided.
	gassert.Trace(gasserttest.NeverCalled(t), "state %d", expensive())
	require.Equal(t, 1, calls)

	// Behind the constant gate, nothing is evaluated.
	if gassert.TraceEnabled {
		gassert.Trace(gasserttest.NeverCalled(t), "state %d", expensive())
	}
	require.Equal(t, 1, calls)

	require.Zero(t, logs.Len())
}
