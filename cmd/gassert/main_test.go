package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gordian-engine/gassert/gassertconfig"
	"github.com/gordian-engine/gassert/internal/gtest"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd(gtest.NewLogger(t))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestLevels(t *testing.T) {
	t.Parallel()

	out, err := runCmd(t, "levels", "--no-color", "--tags", "gassert_info,netgo")
	require.NoError(t, err)

	require.Contains(t, out, "threshold: Info")
	require.Contains(t, out, "fatal:     Always")
	require.Contains(t, out, "tags:      gassert_info")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	table := lines[len(lines)-5:]
	require.Equal(t, []string{"Trace", "Elided"}, strings.Fields(table[0]))
	require.Equal(t, []string{"Debug", "Elided"}, strings.Fields(table[1]))
	require.Equal(t, []string{"Info", "NonFatal"}, strings.Fields(table[2]))
	require.Equal(t, []string{"Warn", "NonFatal"}, strings.Fields(table[3]))
	require.Equal(t, []string{"Always", "Fatal"}, strings.Fields(table[4]))
}

func TestLevels_currentBuild(t *testing.T) {
	t.Parallel()

	out, err := runCmd(t, "levels", "--no-color")
	require.NoError(t, err)
	require.Contains(t, out, "threshold: "+gassertconfig.Current().Threshold.String())
}

func TestLevels_badTags(t *testing.T) {
	t.Parallel()

	_, err := runCmd(t, "levels", "--tags", "gassert_debug,gassert_warn")
	require.ErrorIs(t, err, gassertconfig.ErrConflictingTags)
}

func TestTags(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gassert.toml")
	require.NoError(t, os.WriteFile(path, []byte("threshold = \"debug\"\nfatal = \"warn\"\n"), 0o600))

	out, err := runCmd(t, "tags", path)
	require.NoError(t, err)
	require.Equal(t, "gassert_debug,gassert_fatal_warn\n", out)
}

func TestCheckTags(t *testing.T) {
	t.Parallel()

	out, err := runCmd(t, "check-tags", "gassert_trace,gassert_fatal_debug")
	require.NoError(t, err)
	require.Equal(t, "ok: threshold=Trace fatal=Debug\n", out)

	_, err = runCmd(t, "check-tags", "gassert_tarce")
	require.ErrorIs(t, err, gassertconfig.ErrUnknownTag)

	_, err = runCmd(t, "check-tags")
	require.Error(t, err)
}

func TestCheckTags_file(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tags.txt")
	require.NoError(t, os.WriteFile(path, []byte("# release build\ngassert_warn\n"), 0o600))

	out, err := runCmd(t, "check-tags", "--file", path)
	require.NoError(t, err)
	require.Equal(t, "ok: threshold=Warn fatal=Always\n", out)

	_, err = runCmd(t, "check-tags", "--file", path, "gassert_info")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, err := runCmd(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "gassert ")
	require.Contains(t, out, gassertconfig.Current().String())
}
