package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lyraproj/locator/api"
	"github.com/lyraproj/locator/archive"
	"github.com/lyraproj/locator/resource"
)

// findAll returns every existing resource with the given name that is visible from the primary
// provider. The empty name also yields the root of every archive known to the provider chain.
func (r *Resolver) findAll(name string) *api.ResultSet {
	name = strings.TrimPrefix(name, `/`)
	result := api.NewResultSet(8)
	for _, res := range r.provider.ResolveAll(name) {
		result.Add(res)
	}
	if name == `` {
		r.addArchiveRoots(result)
	}
	r.logger.Trace(`resolved all resources with name`, `name`, name, `count`, result.Len())
	return result
}

func (r *Resolver) addArchiveRoots(result *api.ResultSet) {
	for p := r.provider; p != nil; p = p.Parent() {
		ai, ok := p.(api.ArchiveIntrospector)
		if !ok {
			r.logger.Debug(`provider cannot list its archives`, `provider`, p.Name())
			continue
		}
		urls, err := ai.ArchiveRoots()
		if err != nil {
			r.logger.Warn(`unable to list archives of provider`, `provider`, p.Name(), `error`, err)
			continue
		}
		var cache *archive.Cache
		if c, ok := p.(archive.Cached); ok {
			cache = c.Cache()
		}
		for _, u := range urls {
			path, err := archivePath(u)
			if err != nil {
				r.logger.Warn(`skipping archive with malformed location`, `location`, u, `error`, err)
				continue
			}
			root := resource.NewArchive(path, ``, cache)
			if root.Exists() {
				result.Add(root)
			}
		}
	}
}

// archivePath returns the absolute OS path of the archive denoted by the given URL. A URL that
// cannot be parsed is stripped of its file: scheme instead.
func archivePath(u string) (string, error) {
	p, err := api.ParseFileURL(u)
	if err != nil {
		return ``, err
	}
	if !filepath.IsAbs(p) {
		return ``, fmt.Errorf(`'%s' does not denote an absolute archive path`, u)
	}
	return p, nil
}
