//go:build !gassert_trace && !gassert_debug && !gassert_info && !gassert_warn && !gassert_fatal_debug && !gassert_fatal_info && !gassert_fatal_warn

package gassert_test

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTaggedBuilds reruns this package's tests under other valid configurations,
// so that a plain go test also covers the tag-specific tests.
func TestTaggedBuilds(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping tagged builds in short mode")
	}

	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command not found")
	}

	for _, tags := range []string{
		"gassert_info",
		"gassert_trace",
		"gassert_debug,gassert_fatal_warn",
		"gassert_trace,gassert_fatal_debug",
	} {
		t.Run(tags, func(t *testing.T) {
			t.Parallel()

			cmd := exec.Command(goBin, "test", "-count=1", "-tags", tags, ".")
			out, err := cmd.CombinedOutput()
			require.NoErrorf(t, err, "go test -tags %s:\n%s", tags, out)
			require.True(t, strings.HasPrefix(string(out), "ok"), string(out))
		})
	}
}
