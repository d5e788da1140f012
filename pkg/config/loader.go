package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	perrors "github.com/arthur-debert/gradlepatch/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes the environment variables read by Load. A double
// underscore separates nesting levels: GRADLEPATCH_PLUGIN__VERSION.
const EnvPrefix = "GRADLEPATCH_"

// ProjectConfigFile is looked up in the project directory
const ProjectConfigFile = ".gradlepatch.toml"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadOptions select the optional configuration layers
type LoadOptions struct {
	// ConfigFile is an explicit TOML file; it must exist when set
	ConfigFile string
	// ProjectDir is searched for ProjectConfigFile when ConfigFile is empty
	ProjectDir string
	// Overrides are applied last, keys use "." as delimiter
	Overrides map[string]interface{}
}

// Default returns the embedded defaults
func Default() *Config {
	cfg, err := Load(LoadOptions{})
	if err != nil {
		// The embedded defaults are part of the binary
		panic(err)
	}
	return cfg
}

// Load merges, in order: embedded defaults, the config file, GRADLEPATCH_
// environment variables and opts.Overrides
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Load config file if any
	path, err := configFilePath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, perrors.Wrapf(err, perrors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Load env vars
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Apply overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to load overrides")
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
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func configFilePath(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", perrors.Wrapf(err, perrors.ErrConfigLoad, "config file %s", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}
	if opts.ProjectDir == "" {
		return "", nil
	}
	path := filepath.Join(opts.ProjectDir, ProjectConfigFile)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}

func errMissingKey(key string) error {
	return perrors.Newf(perrors.ErrConfigLoad, "configuration key %q must be set", key).
		WithDetail("key", key)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
