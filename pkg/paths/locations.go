package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/logging"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvHomebrewCache names Homebrew's cache directory when relocated
	EnvHomebrewCache = "HOMEBREW_CACHE"

	// EnvHomebrewLogs names Homebrew's log directory when relocated
	EnvHomebrewLogs = "HOMEBREW_LOGS"

	// EnvUnbrewConfigDir overrides the XDG config directory for unbrew
	EnvUnbrewConfigDir = "UNBREW_CONFIG_DIR"
)

const (
	// AppDirName is the directory name for unbrew-specific files
	AppDirName = "unbrew"

	// ConfigFileName is the user configuration file inside the config dir
	ConfigFileName = "unbrew.toml"

	// HomebrewDirName is the per-tool directory used by cache conventions
	HomebrewDirName = "Homebrew"
)

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv(EnvHome)
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory")
}

// ExpandHome expands a leading ~ to the home directory. Paths that cannot be
// expanded are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is not ours to expand
	return path
}

// CacheAndLogDirs returns the cache and log locations Homebrew may have
// written to: the configured conventional locations (with ~ expanded), the
// XDG cache home's Homebrew directory, and the HOMEBREW_CACHE and
// HOMEBREW_LOGS overrides when set. Order follows that list; duplicates are
// left for the surface builder to collapse. Relative paths, the filesystem
// root and the home directory are never returned.
func CacheAndLogDirs(conventional []string) []string {
	dirs := make([]string, 0, len(conventional)+3)
	add := func(dir, origin string) {
		if dir == "" {
			return
		}
		dir = filepath.Clean(ExpandHome(dir))
		if !safeCacheDir(dir) {
			logger := logging.GetLogger("paths")
			logger.Warn().
				Str("path", dir).
				Str("origin", origin).
				Msg("Ignoring unsafe cache or log location")
			return
		}
		dirs = append(dirs, dir)
	}

	for _, dir := range conventional {
		add(dir, "config")
	}

	if xdg.CacheHome != "" {
		add(filepath.Join(xdg.CacheHome, HomebrewDirName), "xdg")
	}

	for _, env := range []string{EnvHomebrewCache, EnvHomebrewLogs} {
		add(os.Getenv(env), env)
	}
	return dirs
}

// safeCacheDir rejects locations whose wholesale removal would take unrelated
// files with it.
func safeCacheDir(dir string) bool {
	if !filepath.IsAbs(dir) || dir == filepath.Dir(dir) {
		return false
	}
	if home, err := GetHomeDirectory(); err == nil && dir == filepath.Clean(home) {
		return false
	}
	return true
}

// ConfigDir returns unbrew's configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(EnvUnbrewConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the optional user configuration file path.
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
