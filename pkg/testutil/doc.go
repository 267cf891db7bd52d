// Package testutil provides fixtures for testing extlinker components.
//
// Key components:
//   - TestEnvironment: an application tree on the memory or the real
//     filesystem, with state and config directories isolated per test
//   - FailingFS: a types.FS decorator injecting failures below path prefixes
//   - MemoryRecorder: an in-memory strategy recorder
//
// Memory environments refuse symlinks, which is the regime where the
// provisioner falls back to copying. Use EnvIsolated when a test needs real
// links.
package testutil
