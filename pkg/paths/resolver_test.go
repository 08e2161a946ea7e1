// pkg/paths/resolver_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Test path classification, resolution and containment

package paths

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/unbrew/pkg/filesystem"
	"github.com/arthur-debert/unbrew/pkg/testutil"
	"github.com/arthur-debert/unbrew/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Kind(t *testing.T) {
	root := testutil.RealTempDir(t)
	testutil.CreateFile(t, root, "bin/brew", "#!/bin/sh")
	testutil.CreateDir(t, root, "Cellar")
	testutil.CreateSymlink(t, filepath.Join(root, "Cellar"), filepath.Join(root, "cellar-link"))
	testutil.CreateSymlink(t, filepath.Join(root, "nowhere"), filepath.Join(root, "dangling"))

	r := NewResolver(filesystem.NewOS())

	tests := []struct {
		name string
		path string
		want types.PathKind
	}{
		{"regular file", filepath.Join(root, "bin/brew"), types.KindFile},
		{"directory", filepath.Join(root, "Cellar"), types.KindDir},
		{"symlink to dir", filepath.Join(root, "cellar-link"), types.KindSymlink},
		{"dangling symlink", filepath.Join(root, "dangling"), types.KindSymlink},
		{"missing", filepath.Join(root, "missing"), types.KindMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Kind(tt.path))
			assert.Equal(t, tt.want != types.KindMissing, r.Exists(tt.path))
		})
	}

	assert.True(t, r.IsDir(filepath.Join(root, "cellar-link")), "IsDir follows symlinks")
	assert.True(t, r.IsSymlink(filepath.Join(root, "cellar-link")))
	assert.False(t, r.IsDir(filepath.Join(root, "dangling")))
}

func TestResolver_IsExecutable(t *testing.T) {
	root := testutil.RealTempDir(t)
	brew := testutil.CreateFile(t, root, "bin/brew", "#!/bin/sh")
	plain := testutil.CreateFile(t, root, "README.md", "docs")
	testutil.Chmod(t, brew, 0755)

	r := NewResolver(filesystem.NewOS())

	assert.True(t, r.IsExecutable(brew))
	assert.False(t, r.IsExecutable(plain))
	assert.False(t, r.IsExecutable(filepath.Join(root, "bin")), "directories are not executables")
	assert.False(t, r.IsExecutable(filepath.Join(root, "missing")))
}

func TestResolver_Resolve(t *testing.T) {
	root := testutil.RealTempDir(t)
	testutil.CreateFile(t, root, "Homebrew/bin/brew", "#!/bin/sh")
	testutil.CreateSymlink(t, filepath.Join(root, "Homebrew/bin/brew"), filepath.Join(root, "bin/brew"))

	r := NewResolver(filesystem.NewOS())

	got, err := r.Resolve(filepath.Join(root, "bin/brew"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "Homebrew/bin/brew"), got)

	_, err = r.Resolve(filepath.Join(root, "missing"))
	assert.Error(t, err)
}

func TestResolver_Owned(t *testing.T) {
	root := testutil.RealTempDir(t)
	testutil.CreateDir(t, root, ".git")
	r := NewResolver(filesystem.NewOS())

	owned, ok := r.Owned(filepath.Join(root, ".git") + "/")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, ".git"), owned.Path)
	assert.Equal(t, types.KindDir, owned.Kind)

	_, ok = r.Owned(filepath.Join(root, "nope"))
	assert.False(t, ok)
}

func TestWithin(t *testing.T) {
	tests := []struct {
		root, path string
		want       bool
	}{
		{"/opt/homebrew/Cellar", "/opt/homebrew/Cellar", true},
		{"/opt/homebrew/Cellar", "/opt/homebrew/Cellar/wget/1.21/bin/wget", true},
		{"/opt/homebrew/Cellar", "/opt/homebrew/Cellarx/wget", false},
		{"/opt/homebrew/Cellar", "/opt/homebrew", false},
		{"/opt/homebrew/Cellar", "/Applications/Firefox.app", false},
		{"/opt/homebrew/Cellar", "/opt/homebrew/Cellar/../bin", false},
		{"/opt/homebrew/Cellar", "/opt/homebrew/Cellar/..data", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Within(tt.root, tt.path))
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, ".cache", "Homebrew"), ExpandHome("~/.cache/Homebrew"))
	assert.Equal(t, "~other/x", ExpandHome("~other/x"))
	assert.Equal(t, "/Library/Caches/Homebrew", ExpandHome("/Library/Caches/Homebrew"))
	assert.Equal(t, "", ExpandHome(""))
}

func TestCacheAndLogDirs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvHomebrewCache, "/var/cache/brew")
	t.Setenv(EnvHomebrewLogs, "~/brew-logs")

	dirs := CacheAndLogDirs([]string{"~/Library/Caches/Homebrew", "", "/Library/Caches/Homebrew"})

	assert.Contains(t, dirs, filepath.Join(home, "Library", "Caches", "Homebrew"))
	assert.Contains(t, dirs, "/Library/Caches/Homebrew")
	assert.Contains(t, dirs, "/var/cache/brew")
	assert.Contains(t, dirs, filepath.Join(home, "brew-logs"))
	assert.NotContains(t, dirs, "")
}

func TestCacheAndLogDirs_RejectsUnsafeOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name  string
		cache string
		logs  string
	}{
		{"filesystem root", "/", "/"},
		{"home directory", home, "~"},
		{"home with trailing slash", home + "/", "~/"},
		{"relative path", "cache", "./logs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvHomebrewCache, tt.cache)
			t.Setenv(EnvHomebrewLogs, tt.logs)

			dirs := CacheAndLogDirs([]string{"/", "~", "/Library/Caches/Homebrew"})

			assert.NotContains(t, dirs, "/")
			assert.NotContains(t, dirs, home)
			assert.Contains(t, dirs, "/Library/Caches/Homebrew")
			for _, d := range dirs {
				assert.True(t, filepath.IsAbs(d), d)
			}
		})
	}
}

func TestCacheAndLogDirs_NoOverrides(t *testing.T) {
	t.Setenv(EnvHomebrewCache, "")
	t.Setenv(EnvHomebrewLogs, "")

	dirs := CacheAndLogDirs(nil)
	for _, d := range dirs {
		assert.Equal(t, HomebrewDirName, filepath.Base(d))
	}
}

func TestConfigFilePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvUnbrewConfigDir, dir)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), ConfigFilePath())

	t.Setenv(EnvUnbrewConfigDir, "")
	assert.Equal(t, AppDirName, filepath.Base(ConfigDir()))
}
