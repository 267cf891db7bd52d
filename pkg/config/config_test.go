package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/extlinker/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup location at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	work := t.TempDir()
	t.Setenv("EXTLINKER_CONFIG_DIR", filepath.Join(t.TempDir(), "config"))
	t.Setenv("EXTLINKER_STATE_DIR", filepath.Join(t.TempDir(), "state"))
	return work
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	work := isolate(t)

	cfg, err := Load(Options{WorkDir: work})
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.RootDir)
	assert.True(t, cfg.Link.CopyOnFailure)
	assert.Equal(t, fs.FileMode(0755), cfg.DirMode())
	assert.Equal(t, "typo3-cms-", cfg.PackageTypes.Prefix)
	assert.Equal(t, "typo3-cms-core", cfg.PackageTypes.Core)
	assert.Equal(t, []string{"typo3-cms-framework"}, cfg.PackageTypes.System)
	assert.True(t, cfg.Manifest.Enabled)
	assert.Empty(t, cfg.File)
	assert.Equal(t, filepath.Join(os.Getenv("EXTLINKER_STATE_DIR"), "manifest.toml"), cfg.ManifestPath())

	defaults, err := Defaults()
	require.NoError(t, err)
	assert.Equal(t, cfg.Link, defaults.Link)
	assert.Contains(t, DefaultsContent(), "copy_on_failure")
}

func TestLoad_LocalFile(t *testing.T) {
	work := isolate(t)
	writeConfig(t, filepath.Join(work, "extlinker.toml"), `
root_dir = "/srv/site"

[link]
copy_on_failure = false
dir_mode = "0750"
`)

	cfg, err := Load(Options{WorkDir: work})
	require.NoError(t, err)
	assert.Equal(t, "/srv/site", cfg.RootDir)
	assert.False(t, cfg.Link.CopyOnFailure)
	assert.Equal(t, fs.FileMode(0750), cfg.DirMode())
	assert.Equal(t, filepath.Join(work, "extlinker.toml"), cfg.File)
	// Untouched keys keep their defaults.
	assert.Equal(t, "typo3-cms-", cfg.PackageTypes.Prefix)
}

func TestLoad_UserConfigDir(t *testing.T) {
	work := isolate(t)
	writeConfig(t, filepath.Join(os.Getenv("EXTLINKER_CONFIG_DIR"), "config.toml"), `
[manifest]
enabled = false
`)

	cfg, err := Load(Options{WorkDir: work})
	require.NoError(t, err)
	assert.False(t, cfg.Manifest.Enabled)
	assert.Empty(t, cfg.ManifestPath())
}

func TestLoad_ExplicitYAML(t *testing.T) {
	work := isolate(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeConfig(t, path, `
package_types:
  prefix: acme-
  core: acme-kernel
  system:
    - acme-base
manifest:
  path: /var/lib/extlinker/manifest.toml
`)

	cfg, err := Load(Options{ConfigFile: path, WorkDir: work})
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/extlinker/manifest.toml", cfg.ManifestPath())

	classifier := cfg.Classifier()
	assert.True(t, classifier.Supports("acme-plugin"))
	assert.False(t, classifier.Supports("acme-kernel"))
	assert.True(t, classifier.IsSystem("acme-base"))
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	work := isolate(t)

	_, err := Load(Options{ConfigFile: filepath.Join(work, "nope.toml"), WorkDir: work})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_Precedence(t *testing.T) {
	work := isolate(t)
	writeConfig(t, filepath.Join(work, "extlinker.toml"), `
root_dir = "/from/file"

[link]
copy_on_failure = false
`)

	t.Setenv("EXTLINKER_LINK_COPY_ON_FAILURE", "true")
	t.Setenv("EXTLINKER_ROOT_DIR", "/from/env")
	t.Setenv("EXTLINKER_PACKAGE_TYPES_SYSTEM", "typo3-cms-framework,typo3-cms-install")

	cfg, err := Load(Options{WorkDir: work})
	require.NoError(t, err)
	assert.True(t, cfg.Link.CopyOnFailure, "env overrides file")
	assert.Equal(t, "/from/env", cfg.RootDir)
	assert.Equal(t, []string{"typo3-cms-framework", "typo3-cms-install"}, cfg.PackageTypes.System)

	cfg, err = Load(Options{
		WorkDir:   work,
		Overrides: map[string]interface{}{"root_dir": "/from/flag", "link.copy_on_failure": false},
	})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.RootDir, "overrides win over env")
	assert.False(t, cfg.Link.CopyOnFailure)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"non octal dir mode", "[link]\ndir_mode = \"rwx\"\n"},
		{"dir mode out of range", "[link]\ndir_mode = \"1777\"\n"},
		{"empty prefix", "[package_types]\nprefix = \"\"\n"},
		{"broken toml", "[link\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			work := isolate(t)
			writeConfig(t, filepath.Join(work, "extlinker.toml"), tt.content)

			_, err := Load(Options{WorkDir: work})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"EXTLINKER_ROOT_DIR":             "root_dir",
		"EXTLINKER_LINK_COPY_ON_FAILURE": "link.copy_on_failure",
		"EXTLINKER_LINK_DIR_MODE":        "link.dir_mode",
		"EXTLINKER_PACKAGE_TYPES_PREFIX": "package_types.prefix",
		"EXTLINKER_MANIFEST_ENABLED":     "manifest.enabled",
		"EXTLINKER_STATE_DIR":            "state_dir",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}
