// Package prefix locates the Homebrew installation to uninstall.
//
// Candidates are tried in order and evaluated lazily, so an expensive probe
// such as running `brew --prefix` only happens when every earlier candidate
// failed to qualify. The first qualifying candidate becomes the Prefix, from
// which the Repository and the Cellar are derived.
package prefix
