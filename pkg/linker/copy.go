package linker

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/extlinker/pkg/errors"
	"github.com/arthur-debert/extlinker/pkg/paths"
)

// Copy duplicates source at target. Files are copied byte for byte, with
// their parent directory created as needed; directories are replicated
// recursively.
func (p *Provisioner) Copy(source, target string) error {
	info, err := p.fs.Stat(source)
	if err != nil {
		if _, lerr := p.fs.Lstat(source); lerr == nil {
			// A dangling symlink: present, but neither file nor directory.
			return errors.Newf(errors.ErrUnsupportedFileType,
				"the source %q is neither a file nor a directory", source).
				WithDetail("source", source)
		}
		return errors.Wrapf(err, errors.ErrSourceMissing,
			"the source %q does not exist and cannot be copied", source).
			WithDetail("source", source)
	}

	// Nothing is written before this check
	if info.IsDir() && paths.ContainsPath(source, target) {
		return nestedTarget(source, target)
	}

	switch {
	case info.Mode().IsRegular():
		if err := p.ensureDir(filepath.Dir(target)); err != nil {
			return err
		}
		return p.copyFile(source, target)
	case info.IsDir():
		return p.copyDirectory(source, target)
	}

	return errors.Newf(errors.ErrUnsupportedFileType,
		"the source %q is neither a file nor a directory", source).
		WithDetail("source", source).
		WithDetail("mode", info.Mode().String())
}

func (p *Provisioner) copyFile(source, target string) error {
	in, err := p.fs.Open(source)
	if err != nil {
		return copyFailed(err, source, target)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return copyFailed(err, source, target)
	}
	if !info.Mode().IsRegular() {
		return errors.Newf(errors.ErrUnsupportedFileType,
			"the source %q is not a regular file", source).
			WithDetail("source", source).
			WithDetail("mode", info.Mode().String())
	}

	out, err := p.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return copyFailed(err, source, target)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return copyFailed(err, source, target)
	}
	if err := out.Close(); err != nil {
		return copyFailed(err, source, target)
	}
	return nil
}

// copyDirectory replicates the tree under source into target, parents
// before children. Symlinks inside the tree are dereferenced: a linked file
// is copied as a file, a linked directory becomes a plain directory whose
// contents are not descended into.
func (p *Provisioner) copyDirectory(source, target string) error {
	if err := p.ensureDir(target); err != nil {
		return err
	}

	entries, err := p.fs.ReadDir(source)
	if err != nil {
		return copyFailed(err, source, target)
	}

	for _, entry := range entries {
		src := filepath.Join(source, entry.Name())
		dst := filepath.Join(target, entry.Name())

		if entry.Type()&fs.ModeSymlink != 0 {
			info, err := p.fs.Stat(src)
			if err != nil {
				return copyFailed(err, src, dst)
			}
			if info.IsDir() {
				p.logger.Debug().
					Str("source", src).
					Msg("Linked directory inside copied tree materialized without its contents")
				if err := p.ensureDir(dst); err != nil {
					return err
				}
				continue
			}
		} else if entry.IsDir() {
			if err := p.copyDirectory(src, dst); err != nil {
				return err
			}
			continue
		}

		if err := p.ensureDir(filepath.Dir(dst)); err != nil {
			return err
		}
		if err := p.copyFile(src, dst); err != nil {
			return err
		}
	}

	p.logger.Trace().Str("source", source).Str("target", target).Int("entries", len(entries)).Msg("Directory copied")
	return nil
}

func (p *Provisioner) ensureDir(path string) error {
	if err := p.fs.MkdirAll(path, p.dirMode); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %q", path).
			WithDetail("path", path)
	}
	return nil
}

func copyFailed(err error, source, target string) error {
	return errors.Wrapf(err, errors.ErrCopyFailed,
		"the source %q could not be copied to target %q", source, target).
		WithDetail("source", source).
		WithDetail("target", target)
}
