package filesystem

import (
	"errors"
	"os"

	"github.com/arthur-debert/extlinker/pkg/types"
)

// ErrSymlinkDisabled is returned by filesystems wrapped with NoSymlink.
var ErrSymlinkDisabled = errors.New("symlinks disabled")

type noSymlinkFS struct {
	types.FS
}

// NoSymlink wraps fs so that every Symlink call fails. All other operations
// are delegated unchanged.
func NoSymlink(fs types.FS) types.FS {
	return &noSymlinkFS{FS: fs}
}

func (n *noSymlinkFS) Symlink(oldname, newname string) error {
	return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: ErrSymlinkDisabled}
}
