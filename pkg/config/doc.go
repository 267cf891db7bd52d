// Package config loads extlinker settings.
//
// Sources are layered with koanf, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. a config file: the explicit --config path, else ./extlinker.toml,
//     else $XDG_CONFIG_HOME/extlinker/config.toml (TOML, or YAML by extension)
//  3. EXTLINKER_* environment variables, e.g. EXTLINKER_LINK_COPY_ON_FAILURE
//  4. command-line overrides passed as a flat key map
package config
