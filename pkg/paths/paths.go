// Package paths provides centralized path handling for extlinker.
// It implements XDG Base Directory specification compliance for extlinker's
// own files and the path normalization used for provisioning roots.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/extlinker/pkg/errors"
)

// Environment variable names
const (
	// EnvStateDir overrides the XDG state directory for extlinker
	EnvStateDir = "EXTLINKER_STATE_DIR"

	// EnvConfigDir overrides the XDG config directory for extlinker
	EnvConfigDir = "EXTLINKER_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for extlinker-specific files
	AppDirName = "extlinker"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LocalConfigFileName is looked up in the working directory first
	LocalConfigFileName = "extlinker.toml"

	// ManifestFileName is the name of the strategy manifest
	ManifestFileName = "manifest.toml"

	// LogFileName is the name of the log file
	LogFileName = "extlinker.log"
)

// StateDir returns the directory for state files (manifest, log).
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	// Read the variable live so overrides made after startup are honored.
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// ConfigDir returns the directory holding the user configuration file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the path of the user configuration file
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// ManifestPath returns the default location of the strategy manifest
func ManifestPath() string {
	return filepath.Join(StateDir(), ManifestFileName)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func NormalizePath(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}

	expanded := ExpandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %q", path)
	}

	return filepath.Clean(abs), nil
}

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
