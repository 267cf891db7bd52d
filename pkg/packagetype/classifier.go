// Package packagetype decides which packages are provisioned into the
// application and where their canonical roots are.
package packagetype

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/extlinker/pkg/errors"
	"github.com/arthur-debert/extlinker/pkg/paths"
	"github.com/arthur-debert/extlinker/pkg/types"
)

const (
	// Prefix is shared by every provisioned package type.
	Prefix = "typo3-cms-"
	// CoreType shares the prefix but is bootstrapped elsewhere.
	CoreType = "typo3-cms-core"
	// ExtensionSuffix is the extension root relative to the base directory.
	ExtensionSuffix = "typo3conf/ext"
	// SystemExtensionSuffix is the system-extension root relative to the base directory.
	SystemExtensionSuffix = "typo3/sysext"
)

// Classifier holds the naming convention packages are matched against.
type Classifier struct {
	Prefix                string
	Core                  string
	ExtensionSuffix       string
	SystemExtensionSuffix string
	// SystemTypes are installed below the system-extension root.
	SystemTypes []string
}

// Default is the TYPO3 convention.
var Default = Classifier{
	Prefix:                Prefix,
	Core:                  CoreType,
	ExtensionSuffix:       ExtensionSuffix,
	SystemExtensionSuffix: SystemExtensionSuffix,
	SystemTypes:           []string{"typo3-cms-framework"},
}

// Supports reports whether packageType is provisioned by Default.
func Supports(packageType string) bool {
	return Default.Supports(packageType)
}

// DeriveRoots computes the canonical roots below baseDirectory using Default.
// It touches no files; a relative baseDirectory is resolved against the
// process working directory.
func DeriveRoots(baseDirectory string) (types.RootPaths, error) {
	return Default.DeriveRoots(baseDirectory)
}

// InstallPath returns where Default places the package name of packageType.
func InstallPath(roots types.RootPaths, packageType, name string) (string, error) {
	return Default.InstallPath(roots, packageType, name)
}

// Supports is true when packageType carries the prefix and is not the core
// type.
func (c Classifier) Supports(packageType string) bool {
	return strings.HasPrefix(packageType, c.Prefix) && packageType != c.Core
}

// DeriveRoots normalizes baseDirectory and appends both suffixes. Only a
// relative input consults the process working directory.
func (c Classifier) DeriveRoots(baseDirectory string) (types.RootPaths, error) {
	base, err := paths.NormalizePath(baseDirectory)
	if err != nil {
		return types.RootPaths{}, err
	}
	return types.RootPaths{
		ExtensionDir:       filepath.Join(base, filepath.FromSlash(c.ExtensionSuffix)),
		SystemExtensionDir: filepath.Join(base, filepath.FromSlash(c.SystemExtensionSuffix)),
	}, nil
}

// IsSystem reports whether packageType belongs below the system-extension root.
func (c Classifier) IsSystem(packageType string) bool {
	for _, t := range c.SystemTypes {
		if t == packageType {
			return true
		}
	}
	return false
}

// InstallPath joins the matching root with the extension key name.
func (c Classifier) InstallPath(roots types.RootPaths, packageType, name string) (string, error) {
	if !c.Supports(packageType) {
		return "", errors.Newf(errors.ErrInvalidInput, "package type %q is not provisioned", packageType).
			WithDetail("type", packageType)
	}
	if err := paths.ValidateExtensionKey(name); err != nil {
		return "", err
	}

	root := roots.ExtensionDir
	if c.IsSystem(packageType) {
		root = roots.SystemExtensionDir
	}
	if root == "" {
		return "", errors.Newf(errors.ErrInvalidInput, "no root directory for package type %q", packageType).
			WithDetail("type", packageType)
	}
	return filepath.Join(root, name), nil
}
