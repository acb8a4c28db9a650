package config

import (
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar"
	"github.com/lyraproj/locator/matcher"
)

// ExpandRoots returns the absolute paths of the given roots. Relative roots are joined with the
// base directory. A root that contains a wildcard is replaced by the paths that it matches,
// while a literal root is kept even when it does not exist. Matches of one root are sorted.
func ExpandRoots(base string, roots []string) ([]string, error) {
	expanded := make([]string, 0, len(roots))
	for _, r := range roots {
		rp := filepath.FromSlash(r)
		if !filepath.IsAbs(rp) {
			rp = filepath.Join(base, rp)
		}
		if !matcher.IsPattern(r) {
			expanded = append(expanded, rp)
			continue
		}
		matches, err := doublestar.Glob(rp)
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		expanded = append(expanded, matches...)
	}
	return expanded, nil
}
