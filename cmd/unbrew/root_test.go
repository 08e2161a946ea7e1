package unbrew

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/unbrew/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type run struct {
	out    string
	errOut string
	err    error
}

func execute(t *testing.T, args ...string) run {
	t.Helper()
	// keep the user's own configuration out of the test
	t.Setenv("UNBREW_CONFIG_DIR", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return run{out: out.String(), errOut: errOut.String(), err: err}
}

func toolPrefix(t *testing.T) string {
	t.Helper()
	prefix := testutil.HomebrewPrefix(t, "bin/app", "Cellar/pkgA/1.0/bin/a")
	testutil.CreateFile(t, prefix, ".gitignore", "*\n!/bin/app\n!/Cellar\n!/.gitignore\n")
	return prefix
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := NewRootCmd()
	for _, tt := range []struct{ name, short string }{
		{"path", "p"},
		{"skip-cache-and-logs", ""},
		{"force", "f"},
		{"quiet", "q"},
		{"dry-run", "d"},
		{"verbose", "v"},
		{"no-color", ""},
		{"config", ""},
		{"manifest-url", ""},
	} {
		f := cmd.Flags().Lookup(tt.name)
		require.NotNil(t, f, tt.name)
		assert.Equal(t, tt.short, f.Shorthand, tt.name)
	}
}

func TestRootCmd_DryRun(t *testing.T) {
	prefix := toolPrefix(t)
	before := testutil.Snapshot(t, prefix)

	r := execute(t, "--path", prefix, "--skip-cache-and-logs", "--dry-run")
	require.NoError(t, r.err)
	assert.Equal(t, 0, ExitCode(r.err))

	assert.Equal(t, before, testutil.Snapshot(t, prefix))
	assert.Contains(t, r.errOut, "Warning: This script would remove:")
	assert.Contains(t, r.out, "Would delete "+filepath.Join(prefix, "Cellar"))
	assert.Contains(t, r.out, "Would delete "+filepath.Join(prefix, "bin", "app"))
}

func TestRootCmd_NonInteractiveRemoves(t *testing.T) {
	prefix := toolPrefix(t)

	r := execute(t, "-p", prefix, "--skip-cache-and-logs")
	require.NoError(t, r.err)

	assert.False(t, testutil.Exists(prefix), "the emptied prefix is pruned")
	assert.Contains(t, r.out, "Homebrew uninstalled!")
}

func TestRootCmd_Quiet(t *testing.T) {
	prefix := toolPrefix(t)

	r := execute(t, "-p", prefix, "--skip-cache-and-logs", "-q", "-f")
	require.NoError(t, r.err)
	assert.Empty(t, r.out)
	assert.Empty(t, r.errOut)
}

func TestRootCmd_PrefixNotFound(t *testing.T) {
	r := execute(t, "--path", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, r.err)
	assert.True(t, IsReported(r.err))
	assert.Equal(t, 1, ExitCode(r.err))
	assert.Contains(t, r.errOut, "Error:")
	assert.Contains(t, r.errOut, "failed to locate Homebrew!")
}

func TestRootCmd_ManifestURLOverride(t *testing.T) {
	prefix := testutil.HomebrewPrefix(t, "bin/app")

	r := execute(t, "--path", prefix, "--manifest-url", "http://127.0.0.1:1/.gitignore", "-f")
	require.Error(t, r.err)
	assert.Contains(t, r.errOut, "127.0.0.1:1")
	assert.True(t, testutil.Exists(filepath.Join(prefix, "bin", "app")))
}

func TestRootCmd_MissingExplicitConfig(t *testing.T) {
	prefix := toolPrefix(t)
	missing := filepath.Join(t.TempDir(), "missing.toml")

	r := execute(t, "--path", prefix, "--config", missing, "-f")
	require.Error(t, r.err)
	assert.True(t, IsReported(r.err))
	assert.Equal(t, 1, ExitCode(r.err))
	assert.Contains(t, r.errOut, missing)
	assert.True(t, testutil.Exists(filepath.Join(prefix, "bin", "app")))
}

func TestRootCmd_MissingDefaultConfigIsIgnored(t *testing.T) {
	prefix := toolPrefix(t)

	r := execute(t, "--path", prefix, "--skip-cache-and-logs", "--dry-run")
	require.NoError(t, r.err)
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	r := execute(t, "extra")
	require.Error(t, r.err)
	assert.False(t, IsReported(r.err))
	assert.Equal(t, 1, ExitCode(r.err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 3, ExitCode(&ExitError{Code: 3}))
}
