package testutil

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/extlinker/pkg/types"
)

// ErrInjected is the cause of every failure FailingFS injects.
var ErrInjected = errors.New("injected failure")

// FailingFS fails selected operations for paths under a prefix. An empty
// prefix disables injection for that operation.
type FailingFS struct {
	types.FS
	OpenFilePrefix string
	MkdirPrefix    string
	RemovePrefix   string
	SymlinkPrefix  string
}

func matches(prefix, path string) bool {
	return prefix != "" && strings.HasPrefix(path, prefix)
}

func (f *FailingFS) OpenFile(name string, flag int, perm fs.FileMode) (types.File, error) {
	if matches(f.OpenFilePrefix, name) {
		return nil, &os.PathError{Op: "open", Path: name, Err: ErrInjected}
	}
	return f.FS.OpenFile(name, flag, perm)
}

func (f *FailingFS) MkdirAll(path string, perm fs.FileMode) error {
	if matches(f.MkdirPrefix, path) {
		return &os.PathError{Op: "mkdir", Path: path, Err: ErrInjected}
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FailingFS) RemoveAll(path string) error {
	if matches(f.RemovePrefix, path) {
		return &os.PathError{Op: "remove", Path: path, Err: ErrInjected}
	}
	return f.FS.RemoveAll(path)
}

func (f *FailingFS) Symlink(oldname, newname string) error {
	if matches(f.SymlinkPrefix, newname) {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: ErrInjected}
	}
	return f.FS.Symlink(oldname, newname)
}
