package config

import (
	"regexp"
	"time"

	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// Prefix holds prefix discovery settings
type Prefix struct {
	Defaults   []string `koanf:"defaults"`
	Executable string   `koanf:"executable"`
	VCSDir     string   `koanf:"vcs_dir"`
	CellarDir  string   `koanf:"cellar_dir"`
	Probe      bool     `koanf:"probe"`
	Protected  []string `koanf:"protected"`
}

// Manifest holds ignore-manifest settings
type Manifest struct {
	FileName string        `koanf:"file_name"`
	URL      string        `koanf:"url"`
	Timeout  time.Duration `koanf:"timeout"`
	Retries  int           `koanf:"retries"`
	Shared   []string      `koanf:"shared"`
}

// Surface holds the fixed parts of the removal surface
type Surface struct {
	CacheAndLogs         []string `koanf:"cache_and_logs"`
	SplitRepositoryFiles []string `koanf:"split_repository_files"`
	Extra                []string `koanf:"extra"`
	ApplicationDirs      []string `koanf:"application_dirs"`
}

// Removal holds removal planner settings
type Removal struct {
	AuxDirs        []string `koanf:"aux_dirs"`
	PruneDirs      []string `koanf:"prune_dirs"`
	InfoPattern    string   `koanf:"info_pattern"`
	CellarLinkGlob string   `koanf:"cellar_link_glob"`
	LitterFile     string   `koanf:"litter_file"`
	IndexTool      string   `koanf:"index_tool"`
}

// Config is the main configuration structure
type Config struct {
	Prefix   Prefix   `koanf:"prefix"`
	Manifest Manifest `koanf:"manifest"`
	Surface  Surface  `koanf:"surface"`
	Removal  Removal  `koanf:"removal"`

	infoRe *regexp.Regexp
}

// InfoRegexp returns the compiled documentation-index file pattern.
func (c *Config) InfoRegexp() *regexp.Regexp {
	return c.infoRe
}

// validate checks required settings and compiles patterns
func (c *Config) validate() error {
	switch {
	case c.Prefix.Executable == "":
		return errors.New(errors.ErrConfigParse, "prefix.executable must not be empty")
	case c.Prefix.VCSDir == "":
		return errors.New(errors.ErrConfigParse, "prefix.vcs_dir must not be empty")
	case c.Prefix.CellarDir == "":
		return errors.New(errors.ErrConfigParse, "prefix.cellar_dir must not be empty")
	case c.Manifest.FileName == "":
		return errors.New(errors.ErrConfigParse, "manifest.file_name must not be empty")
	case c.Removal.CellarLinkGlob == "":
		return errors.New(errors.ErrConfigParse, "removal.cellar_link_glob must not be empty")
	}
	if c.Manifest.Retries < 0 {
		return errors.Newf(errors.ErrConfigParse, "manifest.retries must be >= 0, got %d", c.Manifest.Retries)
	}

	if !doublestar.ValidatePattern(c.Removal.CellarLinkGlob) {
		return errors.Newf(errors.ErrConfigParse, "invalid removal.cellar_link_glob %q", c.Removal.CellarLinkGlob)
	}

	re, err := regexp.Compile(c.Removal.InfoPattern)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "invalid removal.info_pattern %q", c.Removal.InfoPattern)
	}
	c.infoRe = re
	return nil
}
