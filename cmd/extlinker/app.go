package extlinker

import (
	"github.com/arthur-debert/extlinker/pkg/config"
	"github.com/arthur-debert/extlinker/pkg/filesystem"
	"github.com/arthur-debert/extlinker/pkg/linker"
	"github.com/arthur-debert/extlinker/pkg/logging"
	"github.com/arthur-debert/extlinker/pkg/manifest"
	"github.com/arthur-debert/extlinker/pkg/paths"
	"github.com/arthur-debert/extlinker/pkg/types"
	"github.com/arthur-debert/extlinker/pkg/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags.
type globalOptions struct {
	verbosity  int
	configFile string
	format     string
	rootDir    string
}

// app is the per-invocation wiring of config, output and manifest.
type app struct {
	cfg      *config.Config
	renderer ui.Renderer
	store    *manifest.Store
	logger   zerolog.Logger
}

func newApp(cmd *cobra.Command, opts *globalOptions, overrides map[string]interface{}) (*app, error) {
	if overrides == nil {
		overrides = make(map[string]interface{})
	}
	if opts.rootDir != "" {
		overrides["root_dir"] = opts.rootDir
	}

	cfg, err := config.Load(config.Options{
		ConfigFile: opts.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, err
	}

	format, err := ui.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		renderer: renderer,
		logger:   logging.GetLogger("cli"),
	}
	a.logger.Debug().Str("config", cfg.File).Str("root_dir", cfg.RootDir).Msg("Configuration loaded")
	return a, nil
}

// openManifest loads the strategy manifest when it is enabled. Only strict
// callers get an unreadable manifest as an error; the others log it and
// carry on without recording strategies.
func (a *app) openManifest(strict bool) error {
	path := a.cfg.ManifestPath()
	if path == "" {
		return nil
	}
	store, err := manifest.Open(path)
	if err != nil {
		if strict {
			return err
		}
		a.logger.Warn().Err(err).Str("path", path).Msg("Manifest unreadable, strategies will not be recorded")
		return nil
	}
	a.store = store
	return nil
}

// provisioner builds a Provisioner on the real filesystem. forceCopy
// disables symlinks so every target is copied.
func (a *app) provisioner(forceCopy bool) *linker.Provisioner {
	var fsys types.FS = filesystem.NewOS()
	if forceCopy {
		fsys = filesystem.NoSymlink(fsys)
	}
	opts := []linker.Option{linker.WithDirMode(a.cfg.DirMode())}
	if a.store != nil {
		opts = append(opts, linker.WithRecorder(a.store))
	}
	return linker.New(fsys, opts...)
}

// normalizeAll makes every CLI path absolute.
func normalizeAll(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		path, err := paths.NormalizePath(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, path)
	}
	return out, nil
}
