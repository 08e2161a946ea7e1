package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"/opt/homebrew", "/usr/local", "/home/linuxbrew/.linuxbrew", "~/.linuxbrew"}, cfg.Prefix.Defaults)
	assert.Equal(t, "bin/brew", cfg.Prefix.Executable)
	assert.Equal(t, ".gitignore", cfg.Manifest.FileName)
	assert.Equal(t, "https://raw.githubusercontent.com/Homebrew/brew/master/.gitignore", cfg.Manifest.URL)
	assert.Equal(t, 30*time.Second, cfg.Manifest.Timeout)
	assert.Equal(t, []string{"bin", "share", "share/doc"}, cfg.Manifest.Shared)
	assert.Contains(t, cfg.Removal.PruneDirs, "Cellar")
	assert.Equal(t, ".DS_Store", cfg.Removal.LitterFile)
	assert.Equal(t, "install-info", cfg.Removal.IndexTool)
	require.NotNil(t, cfg.InfoRegexp())
}

func TestInfoRegexp(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	re := cfg.InfoRegexp()

	tests := []struct {
		path  string
		match bool
	}{
		{"/opt/homebrew/share/info/make.info", true},
		{"/opt/homebrew/share/info/dir", true},
		{"/opt/homebrew/share/info/.hidden.info", false},
		{"/opt/homebrew/share/info/sub/make.info", false},
		{"/opt/homebrew/share/info/make.info-1", false},
		{"/opt/homebrew/share/doc/make.info", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.match, re.MatchString(tt.path))
		})
	}
}

func TestLoad_UserFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	userFile := filepath.Join(dir, "unbrew.toml")
	content := `
[manifest]
url = "https://example.test/.gitignore"
retries = 0

[removal]
litter_file = "Thumbs.db"
`
	require.NoError(t, os.WriteFile(userFile, []byte(content), 0644))

	cfg, err := Load(userFile, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/.gitignore", cfg.Manifest.URL)
	assert.Equal(t, 0, cfg.Manifest.Retries)
	assert.Equal(t, "Thumbs.db", cfg.Removal.LitterFile)
	// untouched keys keep their defaults
	assert.Equal(t, "install-info", cfg.Removal.IndexTool)
}

func TestLoad_MissingUserFileIsIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
	require.NoError(t, err)
	assert.Equal(t, ".gitignore", cfg.Manifest.FileName)
}

func TestLoadRequired_MissingUserFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	_, err := LoadRequired(missing, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.Equal(t, missing, errors.GetErrorDetails(err)["path"])
}

func TestLoadRequired_ExistingUserFile(t *testing.T) {
	userFile := filepath.Join(t.TempDir(), "unbrew.toml")
	require.NoError(t, os.WriteFile(userFile, []byte("[removal]\nlitter_file = \"Thumbs.db\"\n"), 0644))

	cfg, err := LoadRequired(userFile, nil)
	require.NoError(t, err)
	assert.Equal(t, "Thumbs.db", cfg.Removal.LitterFile)
}

func TestLoad_MalformedUserFile(t *testing.T) {
	userFile := filepath.Join(t.TempDir(), "unbrew.toml")
	require.NoError(t, os.WriteFile(userFile, []byte("[manifest\nurl ="), 0644))

	_, err := Load(userFile, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("UNBREW_MANIFEST__URL", "https://mirror.test/.gitignore")
	t.Setenv("UNBREW_REMOVAL__INDEX_TOOL", "ginstall-info")
	t.Setenv("UNBREW_PREFIX__DEFAULTS", "/a,/b")
	t.Setenv("UNBREW_CONFIG_DIR", "/ignored")

	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "https://mirror.test/.gitignore", cfg.Manifest.URL)
	assert.Equal(t, "ginstall-info", cfg.Removal.IndexTool)
	assert.Equal(t, []string{"/a", "/b"}, cfg.Prefix.Defaults)
}

func TestLoad_OverridesWinOverEnv(t *testing.T) {
	t.Setenv("UNBREW_MANIFEST__URL", "https://env.test/.gitignore")

	cfg, err := Load("", map[string]interface{}{"manifest.url": "https://flag.test/.gitignore"})
	require.NoError(t, err)
	assert.Equal(t, "https://flag.test/.gitignore", cfg.Manifest.URL)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  interface{}
	}{
		{"invalid info pattern", "removal.info_pattern", "([unclosed"},
		{"negative retries", "manifest.retries", -1},
		{"empty executable", "prefix.executable", ""},
		{"empty cellar glob", "removal.cellar_link_glob", ""},
		{"invalid cellar glob", "removal.cellar_link_glob", "Cellar/[unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("", map[string]interface{}{tt.key: tt.val})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "manifest.url", envKey("UNBREW_MANIFEST__URL"))
	assert.Equal(t, "removal.cellar_link_glob", envKey("UNBREW_REMOVAL__CELLAR_LINK_GLOB"))
	assert.Equal(t, "", envKey("UNBREW_CONFIG_DIR"))
}
