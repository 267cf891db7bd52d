package linker

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/extlinker/pkg/errors"
	"github.com/arthur-debert/extlinker/pkg/logging"
	"github.com/arthur-debert/extlinker/pkg/paths"
	"github.com/arthur-debert/extlinker/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultDirMode is the permission used for directories the provisioner creates.
const DefaultDirMode fs.FileMode = 0755

// Recorder persists which strategy materialized a target. It lets removal
// tell a discarded snapshot copy apart from a discarded link.
type Recorder interface {
	Record(spec types.LinkSpec, strategy types.Strategy) error
	Lookup(target string) (types.LinkRecord, bool)
	Forget(target string) error
}

// Provisioner establishes and removes links between package sources and
// application targets, copying when a symlink cannot be created.
type Provisioner struct {
	fs       types.FS
	logger   zerolog.Logger
	recorder Recorder
	dirMode  fs.FileMode
}

// Option configures a Provisioner
type Option func(*Provisioner)

// WithLogger replaces the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Provisioner) {
		p.logger = logger
	}
}

// WithRecorder enables strategy recording
func WithRecorder(recorder Recorder) Option {
	return func(p *Provisioner) {
		p.recorder = recorder
	}
}

// WithDirMode sets the permission for created directories
func WithDirMode(mode fs.FileMode) Option {
	return func(p *Provisioner) {
		if mode != 0 {
			p.dirMode = mode
		}
	}
}

// New creates a Provisioner working against fsys.
func New(fsys types.FS, opts ...Option) *Provisioner {
	p := &Provisioner{
		fs:      fsys,
		logger:  logging.GetLogger("linker"),
		dirMode: DefaultDirMode,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AllExist reports whether every path exists. An empty list is vacuously true.
func (p *Provisioner) AllExist(paths []string) bool {
	for _, path := range paths {
		if !p.exists(path) {
			return false
		}
	}
	return true
}

// AnyExist reports whether at least one path exists.
func (p *Provisioner) AnyExist(paths []string) bool {
	for _, path := range paths {
		if p.exists(path) {
			return true
		}
	}
	return false
}

// EstablishAll establishes every link of the set in source order, copying
// when symlinking fails. It stops at the first failure and does not roll
// back links established before it.
func (p *Provisioner) EstablishAll(links types.LinkSet) error {
	return p.EstablishSpecs(links.Specs())
}

// EstablishSpecs is EstablishAll for callers that need a specific order.
func (p *Provisioner) EstablishSpecs(specs []types.LinkSpec) error {
	_, err := p.Establish(specs, true)
	return err
}

// Establish links specs in order and returns the strategy used for each
// one. On failure it returns the strategies of the specs established before
// the failing one along with the error.
func (p *Provisioner) Establish(specs []types.LinkSpec, copyOnFailure bool) ([]types.Strategy, error) {
	done := logging.LogOperationStart(p.logger, "establish")
	defer done()

	strategies := make([]types.Strategy, 0, len(specs))
	for _, spec := range specs {
		strategy, err := p.Link(spec.Source, spec.Target, copyOnFailure)
		if err != nil {
			p.logger.Error().
				Err(err).
				Int("established", len(strategies)).
				Int("total", len(specs)).
				Msg("Establishing links aborted")
			return strategies, err
		}
		strategies = append(strategies, strategy)
	}
	return strategies, nil
}

// RemoveAll removes each target: files, symlinks (never what they point to)
// and whole directory trees. Targets that do not exist are skipped silently.
func (p *Provisioner) RemoveAll(targets types.RemovalSet) error {
	done := logging.LogOperationStart(p.logger, "remove")
	defer done()

	for _, target := range targets {
		logger := p.logger.With().Str("target", target).Logger()

		if p.recorder != nil {
			if record, ok := p.recorder.Lookup(target); ok && record.Strategy == types.StrategyCopy {
				logger.Warn().
					Str("source", record.Source).
					Msg("Removing a copy, not a link; changes made inside the target are lost")
			}
		}

		if err := p.fs.RemoveAll(target); err != nil {
			return errors.Wrapf(err, errors.ErrRemoveFailed, "failed to remove %q", target).
				WithDetail("target", target)
		}

		if p.recorder != nil {
			if err := p.recorder.Forget(target); err != nil {
				logger.Warn().Err(err).Msg("Failed to forget target in manifest")
			}
		}
		logger.Debug().Msg("Target removed")
	}
	return nil
}

// EstablishLink creates a symlink at target pointing to source. When the
// symlink cannot be created and copyOnFailure is set, source is copied to
// target instead.
func (p *Provisioner) EstablishLink(source, target string, copyOnFailure bool) error {
	_, err := p.Link(source, target, copyOnFailure)
	return err
}

// Link behaves like EstablishLink and also reports which strategy was used.
func (p *Provisioner) Link(source, target string, copyOnFailure bool) (types.Strategy, error) {
	logger := p.logger.With().Str("source", source).Str("target", target).Logger()

	if !p.exists(source) {
		return "", errors.Newf(errors.ErrSourceMissing, "the symlink source %q is not available", source).
			WithDetail("source", source).
			WithDetail("target", target)
	}
	if p.occupied(target) {
		return "", errors.Newf(errors.ErrTargetExists, "the symlink target %q already exists", target).
			WithDetail("source", source).
			WithDetail("target", target)
	}
	if paths.ContainsPath(source, target) {
		return "", nestedTarget(source, target)
	}

	linkErr := p.symlink(source, target)
	if linkErr == nil {
		logger.Info().Msg("Symlink established")
		p.record(source, target, types.StrategySymlink)
		return types.StrategySymlink, nil
	}

	if !copyOnFailure {
		return "", errors.Wrapf(linkErr, errors.ErrSymlinkCreate,
			"symlinking target %q to source %q failed", target, source).
			WithDetail("source", source).
			WithDetail("target", target)
	}

	logger.Debug().Err(linkErr).Msg("Symlink failed, falling back to copy")
	if err := p.Copy(source, target); err != nil {
		return "", errors.Wrapf(err, errors.ErrFallbackExhausted,
			"neither symlinking nor copying target %q to source %q worked", target, source).
			WithDetail("source", source).
			WithDetail("target", target).
			WithDetail("symlink_error", linkErr.Error())
	}

	logger.Warn().Msg("Symlink unavailable, source copied instead; later source changes will not show at target")
	p.record(source, target, types.StrategyCopy)
	return types.StrategyCopy, nil
}

// nestedTarget rejects a target inside its own source. A copy would descend
// into its own output, and a link would form a loop.
func nestedTarget(source, target string) error {
	return errors.Newf(errors.ErrInvalidInput, "the target %q lies inside its source %q", target, source).
		WithDetail("source", source).
		WithDetail("target", target)
}

// symlink creates the link, creating the target's parent first.
func (p *Provisioner) symlink(source, target string) error {
	if err := p.fs.MkdirAll(filepath.Dir(target), p.dirMode); err != nil {
		return err
	}
	return p.fs.Symlink(source, target)
}

func (p *Provisioner) record(source, target string, strategy types.Strategy) {
	if p.recorder == nil {
		return
	}
	spec := types.LinkSpec{Source: source, Target: target}
	if err := p.recorder.Record(spec, strategy); err != nil {
		p.logger.Warn().
			Err(err).
			Str("target", target).
			Str("strategy", string(strategy)).
			Msg("Failed to record strategy in manifest")
	}
}

// exists follows symlinks: a dangling link does not exist.
func (p *Provisioner) exists(path string) bool {
	_, err := p.fs.Stat(path)
	return err == nil
}

// occupied does not follow symlinks: a dangling link still occupies its path.
func (p *Provisioner) occupied(path string) bool {
	_, err := p.fs.Lstat(path)
	return err == nil
}
