package config

import (
	"io/fs"
	"strconv"

	"github.com/arthur-debert/extlinker/pkg/errors"
	"github.com/arthur-debert/extlinker/pkg/packagetype"
	"github.com/arthur-debert/extlinker/pkg/paths"
)

// Config is the decoded configuration.
type Config struct {
	RootDir      string             `koanf:"root_dir"`
	Link         LinkConfig         `koanf:"link"`
	PackageTypes PackageTypesConfig `koanf:"package_types"`
	Manifest     ManifestConfig     `koanf:"manifest"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`

	dirMode fs.FileMode
}

type LinkConfig struct {
	CopyOnFailure bool   `koanf:"copy_on_failure"`
	DirMode       string `koanf:"dir_mode"`
}

type PackageTypesConfig struct {
	Prefix string   `koanf:"prefix"`
	Core   string   `koanf:"core"`
	System []string `koanf:"system"`
}

type ManifestConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// DirMode returns the parsed link.dir_mode.
func (c *Config) DirMode() fs.FileMode {
	return c.dirMode
}

// Classifier builds the package type classifier for the configured
// convention. Root suffixes are fixed.
func (c *Config) Classifier() packagetype.Classifier {
	classifier := packagetype.Default
	classifier.Prefix = c.PackageTypes.Prefix
	classifier.Core = c.PackageTypes.Core
	classifier.SystemTypes = append([]string(nil), c.PackageTypes.System...)
	return classifier
}

// ManifestPath returns the manifest location, or "" when recording is off.
func (c *Config) ManifestPath() string {
	if !c.Manifest.Enabled {
		return ""
	}
	if c.Manifest.Path != "" {
		return paths.ExpandHome(c.Manifest.Path)
	}
	return paths.ManifestPath()
}

func postProcessConfig(cfg *Config) error {
	mode, err := strconv.ParseUint(cfg.Link.DirMode, 8, 32)
	if err != nil || mode == 0 || mode > 0o777 {
		return errors.Newf(errors.ErrConfigParse, "link.dir_mode %q is not an octal permission", cfg.Link.DirMode).
			WithDetail("key", "link.dir_mode")
	}
	cfg.dirMode = fs.FileMode(mode)

	if cfg.PackageTypes.Prefix == "" {
		return errors.New(errors.ErrConfigParse, "package_types.prefix must not be empty").
			WithDetail("key", "package_types.prefix")
	}
	if cfg.RootDir == "" {
		cfg.RootDir = "."
	}
	return nil
}
