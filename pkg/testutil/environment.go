package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/extlinker/pkg/filesystem"
	"github.com/arthur-debert/extlinker/pkg/paths"
	"github.com/arthur-debert/extlinker/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // in-memory, symlinks unavailable
	EnvIsolated                  // real filesystem in a temp directory
)

// TestEnvironment is an isolated place to provision into.
type TestEnvironment struct {
	// Root is the directory all fixture paths live under.
	Root      string
	StateDir  string
	ConfigDir string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates the environment and points the extlinker
// state and config directories at it for the duration of the test.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvMemoryOnly:
		env.Root = "/virtual"
		env.FS = filesystem.NewMemoryFS()
		// State and config are always real; only the application tree is virtual.
		tmp := t.TempDir()
		env.StateDir = filepath.Join(tmp, "state")
		env.ConfigDir = filepath.Join(tmp, "config")
	case EnvIsolated:
		env.Root = t.TempDir()
		env.FS = filesystem.NewOS()
		env.StateDir = filepath.Join(env.Root, "state")
		env.ConfigDir = filepath.Join(env.Root, "config")
	default:
		t.Fatalf("unknown environment type %d", envType)
	}

	t.Setenv(paths.EnvStateDir, env.StateDir)
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv("NO_COLOR", "1")

	if err := env.FS.MkdirAll(env.Root, 0755); err != nil {
		t.Fatalf("failed to create root %s: %v", env.Root, err)
	}
	return env
}

// Path joins elements below the environment root
func (env *TestEnvironment) Path(elem ...string) string {
	return filepath.Join(append([]string{env.Root}, elem...)...)
}

// WriteFile creates a file below the root, creating parents.
func (env *TestEnvironment) WriteFile(rel, content string) string {
	env.t.Helper()
	path := env.Path(rel)
	WriteFile(env.t, env.FS, path, content)
	return path
}

// BuildExtension creates a package source below the root: file.txt and
// sub/inner.txt.
func (env *TestEnvironment) BuildExtension(rel string) string {
	env.t.Helper()
	path := env.Path(rel)
	BuildExtension(env.t, env.FS, path)
	return path
}

// WriteFile creates a file with content through fsys, creating parents.
func WriteFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	if _, err := f.Write([]byte(content)); err != nil {
		_ = f.Close()
		t.Fatalf("failed to write %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close %s: %v", path, err)
	}
}

// ReadFile returns the content of path read through fsys.
func ReadFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	f, err := fsys.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// BuildExtension creates file.txt ("top level") and sub/inner.txt
// ("nested content") below root.
func BuildExtension(t *testing.T, fsys types.FS, root string) {
	t.Helper()
	WriteFile(t, fsys, filepath.Join(root, "file.txt"), "top level")
	WriteFile(t, fsys, filepath.Join(root, "sub", "inner.txt"), "nested content")
}
