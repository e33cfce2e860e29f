package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with the given args and returns stdout.
func runCLI(args ...string) (string, error) {
	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// withData appends the shared YAML fixture to the given args.
func withData(args ...string) []string {
	return append(args, "--data", filepath.Join("testdata", "webstore.yaml"))
}

// assertGolden compares command output against a golden file.
func assertGolden(t *testing.T, name, output string) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(output))
}

func TestRootInvalidFormat(t *testing.T) {
	_, err := runCLI(withData("stock", "--format", "xml")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRootNoSource(t *testing.T) {
	_, err := runCLI("stock")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one of --db or --data is required")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRootBothSources(t *testing.T) {
	_, err := runCLI(withData("stock", "--db", "some.db")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRootNonExistentDatabase(t *testing.T) {
	_, err := runCLI("stock", "--db", "/nonexistent/path/webstore.db")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open database")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRootNonExistentDataset(t *testing.T) {
	_, err := runCLI("stock", "--data", "/nonexistent/path/webstore.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load dataset")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
