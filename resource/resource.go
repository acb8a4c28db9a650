// Package resource contains the Resource implementations for the file system, for archives and
// for literal names that could not be resolved.
package resource

import (
	"strings"
)

// applyRelativePath resolves the relative path against the given base path the way a URL is
// resolved: the last segment of the base is replaced unless the base ends with '/'.
func applyRelativePath(base, relativePath string) string {
	if i := strings.LastIndex(base, `/`); i >= 0 {
		nb := base[:i]
		if !strings.HasPrefix(relativePath, `/`) {
			nb += `/`
		}
		return nb + relativePath
	}
	return relativePath
}
