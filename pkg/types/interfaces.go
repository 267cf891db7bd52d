package types

import (
	"io"
	"io/fs"
)

// File is the subset of an open file the provisioner needs for byte copies.
type File interface {
	io.Reader
	io.Writer
	io.Closer
	Stat() (fs.FileInfo, error)
}

// FS is the filesystem interface required for provisioning operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (File, error)
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Lstat must not follow a trailing symlink. Backends without symlink
	// support may fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)
}
