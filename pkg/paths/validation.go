package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/extlinker/pkg/errors"
)

// maxPathLength is a common filesystem limit
const maxPathLength = 4096

// ValidatePath rejects empty paths, null bytes and overlong paths.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}
	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes").
			WithDetail("path", path)
	}
	if len(path) > maxPathLength {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length").
			WithDetail("path", path)
	}
	return nil
}

// ValidateExtensionKey ensures key can be used as a single directory name.
// Keys must:
// - Not be empty
// - Not contain path separators
// - Not be reserved names (. or ..)
// - Not contain characters some filesystems reject
func ValidateExtensionKey(key string) error {
	if key == "" {
		return errors.New(errors.ErrInvalidInput, "extension key cannot be empty")
	}
	if strings.ContainsAny(key, `/\`) {
		return errors.Newf(errors.ErrInvalidInput, "extension key %q cannot contain path separators", key).
			WithDetail("key", key)
	}
	if key == "." || key == ".." {
		return errors.New(errors.ErrInvalidInput, "extension key cannot be '.' or '..'")
	}

	invalidChars := ":*?\"<>|"
	if strings.ContainsAny(key, invalidChars) {
		return errors.Newf(errors.ErrInvalidInput,
			"extension key %q contains invalid characters: %s", key, invalidChars).
			WithDetail("key", key)
	}
	for _, r := range key {
		if r < 32 {
			return errors.Newf(errors.ErrInvalidInput, "extension key %q contains control characters", key).
				WithDetail("key", key)
		}
	}
	return nil
}

// ContainsPath reports whether child is parent or lies below it. Both paths
// are cleaned lexically; links are not resolved.
func ContainsPath(parent, child string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(child))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
