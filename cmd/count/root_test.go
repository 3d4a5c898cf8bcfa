package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/countwise/count/internal/testutil"
	"github.com/countwise/count/pkg/count"
)

// executeRoot runs the root command with the given args against fresh
// flag state, capturing stdout and stderr.
func executeRoot(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags := func(flags *pflag.FlagSet) {
		flags.Visit(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	resetFlags(rootCmd.Flags())
	resetFlags(rootCmd.PersistentFlags())
	cfgFile, verbose, csvList, csvMerged = "", false, false, false

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// TestRootVersionCommand verifies `count version` prints the version and
// touches no files.
func TestRootVersionCommand(t *testing.T) {
	stdout, _, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "count version dev\n", stdout)
}

// TestRootNormalMode verifies the end-to-end single-file scenario.
func TestRootNormalMode(t *testing.T) {
	path := testutil.WriteTestFile(t, t.TempDir(), "input.txt", "hello")

	stdout, _, err := executeRoot(t, "bytes", path)
	require.NoError(t, err)
	assert.Equal(t, "5\n", stdout)
}

// TestRootCsvListMode verifies the end-to-end manifest scenario.
func TestRootCsvListMode(t *testing.T) {
	manifest, paths := testutil.WriteManifest(t, t.TempDir(),
		[]string{"a.txt", "b.txt"}, map[string]string{"a.txt": "hi", "b.txt": "!"})

	stdout, _, err := executeRoot(t, "bytes", manifest, "--csv-list")
	require.NoError(t, err)
	assert.Equal(t, "2 "+paths[0]+"\n1 "+paths[1]+"\n", stdout)
}

// TestRootCsvMergedMode verifies the end-to-end merge scenario.
func TestRootCsvMergedMode(t *testing.T) {
	manifest, _ := testutil.WriteManifest(t, t.TempDir(),
		[]string{"a.txt", "b.txt"}, map[string]string{"a.txt": "hi", "b.txt": "!"})

	stdout, _, err := executeRoot(t, "bytes", manifest, "--csv-merged")
	require.NoError(t, err)
	assert.Equal(t, "3\n", stdout)
}

// TestRootUnrecognizedCommand verifies a command outside the closed set
// fails with a diagnostic naming it and prints no count.
func TestRootUnrecognizedCommand(t *testing.T) {
	stdout, _, err := executeRoot(t, "checksum", "whatever.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, count.ErrUnrecognizedCommand)
	assert.Contains(t, err.Error(), "checksum")
	assert.Empty(t, stdout)
}

// TestRootMissingFile verifies an unreadable target fails with a
// diagnostic naming the path and prints no count.
func TestRootMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	stdout, _, err := executeRoot(t, "bytes", missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, count.ErrReadFailed)
	assert.Contains(t, err.Error(), missing)
	assert.Empty(t, stdout)
}

// TestRootMissingFilename verifies that metric commands require a target.
func TestRootMissingFilename(t *testing.T) {
	_, _, err := executeRoot(t, "bytes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing filename")
}

// TestRootMutuallyExclusiveModes verifies --csv-list and --csv-merged
// cannot be combined.
func TestRootMutuallyExclusiveModes(t *testing.T) {
	path := testutil.WriteTestFile(t, t.TempDir(), "list.csv", "")

	_, _, err := executeRoot(t, "bytes", path, "--csv-list", "--csv-merged")
	require.Error(t, err)
}
