// Package paths provides path classification and discovery for unbrew.
//
// The Resolver answers the questions every other component asks about a
// path (does it exist, is it a symlink, where does it really point, is it
// inside the Cellar) through a types.FS, so the same logic runs against the
// real disk and against test filesystems. It also walks directory trees in
// pre-order and post-order without following symlinks, which replaces the
// find(1) invocations a shell uninstaller would use.
//
// # Environment Variables
//
//   - HOME: the user's home directory, used to expand ~ in configured paths
//   - HOMEBREW_CACHE: an extra cache directory to remove
//   - HOMEBREW_LOGS: an extra log directory to remove
//   - UNBREW_CONFIG_DIR: overrides $XDG_CONFIG_HOME/unbrew
package paths
