// Package paths provides centralized path handling for extlinker.
//
// It handles:
//
//   - Path normalization and home expansion for user supplied paths
//   - XDG directory structure for extlinker's own state and config
//
// # Environment Variables
//
//   - EXTLINKER_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/extlinker)
//   - EXTLINKER_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/extlinker)
//
// # Usage
//
//	root, err := paths.NormalizePath("~/sites/app")  // /home/user/sites/app
//	manifest := paths.ManifestPath()                 // $XDG_STATE_HOME/extlinker/manifest.toml
package paths
