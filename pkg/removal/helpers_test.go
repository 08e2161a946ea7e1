package removal

import (
	"github.com/arthur-debert/unbrew/pkg/filesystem"
	"github.com/arthur-debert/unbrew/pkg/paths"
)

func newTestResolver() *paths.Resolver {
	return paths.NewResolver(filesystem.NewOS())
}
