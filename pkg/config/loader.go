package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of configuration environment variables.
// Sections and keys are separated by a double underscore:
// UNBREW_MANIFEST__URL sets manifest.url.
const EnvPrefix = "UNBREW_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Default returns the built-in configuration overlaid with the environment.
func Default() (*Config, error) {
	return Load("", nil)
}

// Load merges, in increasing precedence, the embedded defaults, the user file
// at userFile (skipped when empty or missing), UNBREW_ environment variables
// and overrides, whose keys are dotted paths such as "manifest.url".
func Load(userFile string, overrides map[string]interface{}) (*Config, error) {
	return load(userFile, false, overrides)
}

// LoadRequired is Load for a user file the caller named explicitly: a
// missing file is a CONFIG_LOAD error instead of being skipped.
func LoadRequired(userFile string, overrides map[string]interface{}) (*Config, error) {
	return load(userFile, true, overrides)
}

func load(userFile string, required bool, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User file
	if userFile != "" {
		if _, err := os.Stat(userFile); err == nil {
			if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", userFile)
			}
			logger.Debug().Str("path", userFile).Msg("Loaded user config")
		} else if required || !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config %s", userFile).
				WithDetail("path", userFile)
		} else {
			logger.Debug().Str("path", userFile).Msg("No user config, using defaults")
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command-line overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 6. Validate
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps UNBREW_REMOVAL__INDEX_TOOL to removal.index_tool.
// Variables without a section separator are not configuration and are
// dropped (UNBREW_CONFIG_DIR, for one).
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if !strings.Contains(key, "__") {
		return ""
	}
	return strings.ReplaceAll(key, "__", ".")
}
