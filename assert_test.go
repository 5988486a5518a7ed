package gassert_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gordian-engine/gassert"
	"github.com/gordian-engine/gassert/gasserttest"
	"github.com/stretchr/testify/require"
)

type assertFunc func(cond func() bool, format string, args ...any)

var assertFuncs = []struct {
	lvl gassert.Level
	fn  assertFunc
}{
	{lvl: gassert.LevelTrace, fn: gassert.Trace},
	{lvl: gassert.LevelDebug, fn: gassert.Debug},
	{lvl: gassert.LevelInfo, fn: gassert.Info},
	{lvl: gassert.LevelWarn, fn: gassert.Warn},
	{lvl: gassert.LevelAlways, fn: gassert.Always},
}

// These tests exercise whatever configuration the test binary was built with,
// so they hold for the default build and for every valid combination of tags.
// They do not run in parallel, because they replace the process-wide logger.

func TestAssert_passingCondition(t *testing.T) {
	for _, af := range assertFuncs {
		t.Run(af.lvl.String(), func(t *testing.T) {
			logs := gasserttest.CaptureLogs(t)
			cond, n := gasserttest.CountingCond(true)

			require.NotPanics(t, func() {
				af.fn(cond, "message %d", 1)
			})
			require.Zero(t, logs.Len())

			if gassert.BuildPolicy(af.lvl) == gassert.PolicyElided {
				require.Zero(t, n.Load())
			} else {
				require.Equal(t, int32(1), n.Load())
			}
		})
	}
}

func TestAssert_failingCondition(t *testing.T) {
	for _, af := range assertFuncs {
		t.Run(af.lvl.String(), func(t *testing.T) {
			logs := gasserttest.CaptureLogs(t)
			cond, n := gasserttest.CountingCond(false)

			switch p := gassert.BuildPolicy(af.lvl); p {
			case gassert.PolicyElided:
				require.NotPanics(t, func() {
					af.fn(gasserttest.NeverCalled(t), "unused")
				})
				require.Zero(t, logs.Len())

			case gassert.PolicyNonFatal:
				reached := false
				require.NotPanics(t, func() {
					af.fn(cond, "bad value %d", 42)
					reached = true
				})
				require.True(t, reached)
				require.Equal(t, int32(1), n.Load())

				recs := logs.Records()
				require.Len(t, recs, 1)
				require.Equal(t, slog.LevelWarn, recs[0].Level)
				require.Contains(t, logs.String(), "bad value 42")

			case gassert.PolicyFatal:
				reached := false
				err := gasserttest.RequireFatal(t, func() {
					af.fn(cond, "bad value %d", 42)
					reached = true
				})
				require.False(t, reached)
				require.Equal(t, int32(1), n.Load())

				require.Equal(t, af.lvl, err.Level)
				require.Equal(t, "bad value 42", err.Message)
				require.True(t, errors.Is(err, gassert.ErrAssertionFailed))

				recs := logs.Records()
				require.Len(t, recs, 1)
				require.Equal(t, slog.LevelError, recs[0].Level)

			default:
				t.Fatalf("unexpected policy %s", p)
			}
		})
	}
}

func TestAlways_reportsCallSite(t *testing.T) {
	gasserttest.CaptureLogs(t)

	err := gasserttest.RequireFatal(t, func() {
		gassert.Always(func() bool { return false }, "site check")
	})

	require.True(t, strings.HasSuffix(err.File, "assert_test.go"), err.File)
	require.NotZero(t, err.Line)
	require.Contains(t, err.Func, "TestAlways_reportsCallSite")
	require.Contains(t, err.Error(), "Always assertion failed at ")
	require.Contains(t, err.Error(), ": site check")
}

func TestAssert_messageWithoutArgs(t *testing.T) {
	gasserttest.CaptureLogs(t)

	// Without args, the format is used verbatim.
	err := gasserttest.RequireFatal(t, func() {
		gassert.Always(func() bool { return false }, "100% broken")
	})
	require.Equal(t, "100% broken", err.Message)
}

func TestSetLogger_nilRestoresDefault(t *testing.T) {
	gasserttest.CaptureLogs(t)
	require.NotEqual(t, slog.Default(), gassert.Logger())

	gassert.SetLogger(nil)
	require.Equal(t, slog.Default(), gassert.Logger())
}

func TestAssertionError_nil(t *testing.T) {
	t.Parallel()

	var err *gassert.AssertionError
	require.Equal(t, "assertion failed", err.Error())
}

func TestAssertionError_LogValue(t *testing.T) {
	logs := gasserttest.CaptureLogs(t)

	gasserttest.RequireFatal(t, func() {
		gassert.Always(func() bool { return false }, "grouped %s", "output")
	})

	out := logs.String()
	require.Contains(t, out, "assertion.level=Always")
	require.Contains(t, out, `assertion.msg="grouped output"`)
	require.Contains(t, out, "assertion.file=")
	require.Contains(t, out, "assertion.func=")
}
