// Package platform holds the operating-system specific parts of the removal
// surface. A Platform is chosen once at startup.
package platform

import (
	"runtime"

	"github.com/arthur-debert/unbrew/pkg/paths"
)

// Platform describes what an operating system adds to an installation.
type Platform interface {
	// Name is the GOOS value the platform was built for
	Name() string

	// ApplicationDirs are the directories that may hold symlinked
	// application bundles pointing into the Cellar
	ApplicationDirs() []string
}

type darwin struct {
	appDirs []string
}

func (d darwin) Name() string { return "darwin" }

func (d darwin) ApplicationDirs() []string {
	out := make([]string, 0, len(d.appDirs))
	for _, dir := range d.appDirs {
		out = append(out, paths.ExpandHome(dir))
	}
	return out
}

type generic struct {
	name string
}

func (g generic) Name() string { return g.name }

func (g generic) ApplicationDirs() []string { return nil }

// For returns the platform for goos. appDirs is only used where application
// shims exist.
func For(goos string, appDirs []string) Platform {
	if goos == "darwin" {
		return darwin{appDirs: appDirs}
	}
	return generic{name: goos}
}

// Current returns the platform the binary runs on.
func Current(appDirs []string) Platform {
	return For(runtime.GOOS, appDirs)
}
