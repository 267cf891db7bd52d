package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/extlinker/pkg/errors"
	"github.com/arthur-debert/extlinker/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables read as configuration.
const EnvPrefix = "EXTLINKER_"

// sections are the top level tables; env keys below them keep their
// underscores after the first separator.
var sections = []string{"link", "package_types", "manifest"}

// Options selects the sources Load reads.
type Options struct {
	// ConfigFile is an explicit file that must exist.
	ConfigFile string
	// WorkDir is searched for extlinker.toml. Defaults to ".".
	WorkDir string
	// Overrides are flat dotted keys applied last, e.g. "link.copy_on_failure".
	Overrides map[string]interface{}
}

// Load merges all configuration sources into a Config.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	configFile, err := findConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), parserFor(configFile)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile).
				WithDetail("path", configFile)
		}
	}

	// 3. Env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

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
	cfg.File = configFile

	if err := postProcessConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Defaults returns the configuration with nothing but the embedded defaults.
func Defaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal defaults")
	}
	if err := postProcessConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func findConfigFile(opts Options) (string, error) {
	if opts.ConfigFile != "" {
		path := paths.ExpandHome(opts.ConfigFile)
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path).
				WithDetail("path", path)
		}
		return path, nil
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	for _, candidate := range []string{
		filepath.Join(workDir, paths.LocalConfigFileName),
		paths.ConfigFilePath(),
	} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps EXTLINKER_LINK_COPY_ON_FAILURE to link.copy_on_failure.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range sections {
		if strings.HasPrefix(key, section+"_") {
			return section + "." + strings.TrimPrefix(key, section+"_")
		}
	}
	return key
}
