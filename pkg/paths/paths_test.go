package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/extlinker/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"absolute path", "/var/www/app", "/var/www/app"},
		{"trailing slash is cleaned", "/var/www/app/", "/var/www/app"},
		{"dot segments are cleaned", "/var/www/../www/./app", "/var/www/app"},
		{"tilde expands", "~/sites/app", filepath.Join(homeDir, "sites", "app")},
		{"relative path becomes absolute", "public", filepath.Join(cwd, "public")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("empty path is invalid input", func(t *testing.T) {
		_, err := NormalizePath("")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestExpandHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", ExpandHome(""))
	assert.Equal(t, homeDir, ExpandHome("~"))
	assert.Equal(t, filepath.Join(homeDir, "x"), ExpandHome("~/x"))
	assert.Equal(t, "~other/x", ExpandHome("~other/x"))
	assert.Equal(t, "/abs", ExpandHome("/abs"))
}

func TestStateAndConfigDirs(t *testing.T) {
	t.Run("explicit overrides win", func(t *testing.T) {
		t.Setenv(EnvStateDir, "/custom/state")
		t.Setenv(EnvConfigDir, "/custom/config")

		assert.Equal(t, "/custom/state", StateDir())
		assert.Equal(t, "/custom/config", ConfigDir())
		assert.Equal(t, "/custom/state/manifest.toml", ManifestPath())
		assert.Equal(t, "/custom/state/extlinker.log", LogFilePath())
		assert.Equal(t, "/custom/config/config.toml", ConfigFilePath())
	})

	t.Run("xdg variables", func(t *testing.T) {
		t.Setenv(EnvStateDir, "")
		t.Setenv(EnvConfigDir, "")
		t.Setenv("XDG_STATE_HOME", "/xdg/state")
		t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

		assert.Equal(t, "/xdg/state/extlinker", StateDir())
		assert.Equal(t, "/xdg/config/extlinker", ConfigDir())
	})

	t.Run("xdg defaults", func(t *testing.T) {
		t.Setenv(EnvStateDir, "")
		t.Setenv("XDG_STATE_HOME", "")

		dir := StateDir()
		assert.True(t, filepath.IsAbs(dir))
		assert.Equal(t, AppDirName, filepath.Base(dir))
	})
}
