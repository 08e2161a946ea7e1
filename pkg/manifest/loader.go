package manifest

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/unbrew/pkg/config"
	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/logging"
	"github.com/arthur-debert/unbrew/pkg/types"
)

// Sources returns the standard source chain for an installation: the
// repository's own manifest, then the published one.
func Sources(fsys types.FS, inst types.Installation, cfg config.Manifest) []Source {
	return []Source{
		LocalSource{FS: fsys, Path: filepath.Join(inst.Repository, cfg.FileName)},
		NewRemoteSource(cfg.URL, cfg.Timeout, cfg.Retries),
	}
}

// Load returns the manifest from the first source that has one.
func Load(ctx context.Context, sources []Source, shared []string) (Manifest, error) {
	logger := logging.GetLogger("manifest")

	for _, src := range sources {
		content, ok, err := src.Fetch(ctx)
		if err != nil {
			return Manifest{}, err
		}
		if !ok {
			logger.Debug().Str("source", src.Name()).Msg("Manifest source has nothing, trying next")
			continue
		}

		m, err := New(src.Name(), content, shared)
		if err != nil {
			return Manifest{}, err
		}
		logger.Info().Str("source", src.Name()).Int("entries", len(m.Entries)).Msg("Loaded manifest")
		return m, nil
	}

	return Manifest{}, errors.New(errors.ErrManifestNotFound, "failed to determine files to remove: no manifest found")
}
