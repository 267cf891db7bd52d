// Package filesystem provides filesystem implementations for extlinker.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem, an afero-backed filesystem used for in-memory
// tests, and a decorator that refuses symlinks so callers can force the
// copy fallback.
package filesystem
