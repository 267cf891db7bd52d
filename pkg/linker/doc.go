// Package linker provides the linkage provisioning engine for extlinker.
//
// A Provisioner makes a package's files reachable from a fixed application
// path. It symlinks the target to the source and, when the filesystem or
// platform refuses symlinks, copies the source tree instead. A copy is a
// snapshot: later changes to the source do not show at the target.
//
// Establishment never overwrites. A target that already exists is rejected
// before anything on disk changes, so re-provisioning means removing first:
//
//	p := linker.New(filesystem.NewOS())
//	_ = p.RemoveAll(types.RemovalSet{target})
//	err := p.EstablishLink(source, target, true)
//
// Batch establishment is fail-fast and does not roll back; removal tolerates
// missing targets, which makes uninstall-then-install safe to re-run.
package linker
