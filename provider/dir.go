// Package provider contains the default api.Provider, a chain of providers that each look
// names up in an ordered list of directories and archive files.
package provider

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/locator/api"
	"github.com/lyraproj/locator/archive"
	"github.com/lyraproj/locator/location"
	"github.com/lyraproj/locator/resource"
)

// Option configures a Dir
type Option func(*Dir)

// WithBase sets the directory that relative roots and relative file: names are resolved
// against. The default is the current working directory.
func WithBase(dir string) Option {
	return func(d *Dir) { d.base = dir }
}

// WithVirtualFilesystem makes names with the vfs: prefix resolve to nodes of the given
// filesystem.
func WithVirtualFilesystem(fs api.VirtualFilesystem) Option {
	return func(d *Dir) { d.vfs = fs }
}

// WithCache makes archive resources created by the provider share connections from the
// given cache.
func WithCache(cache *archive.Cache) Option {
	return func(d *Dir) { d.cache = cache }
}

// WithLogger sets the logger of the provider
func WithLogger(logger hclog.Logger) Option {
	return func(d *Dir) { d.logger = logger }
}

// Dir is a provider that finds names in an ordered list of roots. A root is either a
// directory or an archive file.
type Dir struct {
	name   string
	parent api.Provider
	roots  []string
	base   string
	vfs    api.VirtualFilesystem
	cache  *archive.Cache
	logger hclog.Logger
}

// New creates a provider with the given name, parent and roots. The parent may be nil.
func New(name string, parent api.Provider, roots []string, opts ...Option) *Dir {
	d := &Dir{name: name, parent: parent}
	for _, o := range opts {
		o(d)
	}
	if d.base == `` {
		if wd, err := os.Getwd(); err == nil {
			d.base = wd
		}
	}
	if d.logger == nil {
		d.logger = hclog.Default()
	}
	d.logger = d.logger.Named(`provider`).With(`provider`, name)

	d.roots = make([]string, len(roots))
	for i, r := range roots {
		d.roots[i] = d.absolute(r)
	}
	return d
}

func (d *Dir) Name() string {
	return d.name
}

func (d *Dir) Parent() api.Provider {
	return d.parent
}

// Roots returns the absolute paths of the roots of this provider
func (d *Dir) Roots() []string {
	c := make([]string, len(d.roots))
	copy(c, d.roots)
	return c
}

// Resolve returns the resource for the given name. Names with a file:, archive: or vfs: prefix
// denote a resource directly. A classpath: prefix is stripped and the name is looked up in the
// roots of this provider and then in its parent chain. Names with any other prefix cannot be
// resolved. Resolve never fails; a name that cannot be found yields a resource that does not
// exist.
func (d *Dir) Resolve(name string) api.Resource {
	switch prefix := location.Prefix(name); prefix {
	case ``:
		return d.lookup(name)
	case api.ProviderPrefix:
		return d.lookup(name[len(prefix):])
	case api.FilePrefix:
		p, err := api.ParseFileURL(name)
		if err != nil {
			d.logger.Debug(`unable to parse file location`, `location`, name, `error`, err)
			return resource.NewUnresolved(name)
		}
		return resource.NewFile(d.absolute(p))
	case api.ArchivePrefix:
		return d.resolveArchive(name)
	case api.VirtualPrefix:
		if d.vfs == nil {
			d.logger.Debug(`no virtual filesystem available`, `location`, name)
			return resource.NewUnresolved(name)
		}
		return d.vfs.Resource(d.vfs.Node(name[len(prefix):]))
	default:
		return resource.NewUnresolved(name)
	}
}

// ResolveAll returns every existing resource for the given name, from the top of the parent
// chain down to this provider. The empty name yields the directory roots.
func (d *Dir) ResolveAll(name string) []api.Resource {
	name = strings.TrimPrefix(strings.TrimPrefix(name, api.ProviderPrefix), `/`)
	var all []api.Resource
	if d.parent != nil {
		all = d.parent.ResolveAll(name)
	}
	for _, root := range d.roots {
		if name == `` && d.isArchive(root) {
			continue
		}
		if r := d.candidate(root, name); r.Exists() {
			all = append(all, r)
		}
	}
	return all
}

// Cache returns the cache of archive connections, or nil
func (d *Dir) Cache() *archive.Cache {
	return d.cache
}

// ArchiveRoots returns the file: URLs of the archive roots of this provider
func (d *Dir) ArchiveRoots() ([]string, error) {
	var urls []string
	for _, root := range d.roots {
		if d.isArchive(root) {
			urls = append(urls, api.FileURL(root))
		}
	}
	return urls, nil
}

func (d *Dir) String() string {
	return fmt.Sprintf(`provider{name:%s, roots:%v}`, d.name, d.roots)
}

// lookup returns the first existing resource for the name in this provider's roots, or else
// in the parent chain. A provider literal that does not exist is returned when nothing is found.
func (d *Dir) lookup(name string) api.Resource {
	name = strings.TrimPrefix(name, `/`)
	for _, root := range d.roots {
		if r := d.candidate(root, name); r.Exists() {
			return r
		}
	}
	if d.parent != nil {
		if r := d.parent.Resolve(api.ProviderPrefix + name); r.Exists() {
			return r
		}
	}
	d.logger.Trace(`name not found`, `name`, name)
	return resource.NewLiteral(name)
}

func (d *Dir) candidate(root, name string) api.Resource {
	if d.isArchive(root) {
		return resource.NewArchive(root, name, d.cache)
	}
	return resource.NewFile(filepath.Join(root, filepath.FromSlash(name)))
}

// resolveArchive resolves an archive: name. An empty archive path denotes the first archive
// root of this provider.
func (d *Dir) resolveArchive(name string) api.Resource {
	rest := name[len(api.ArchivePrefix):]
	if strings.HasPrefix(rest, api.ArchiveSeparator) {
		for _, root := range d.roots {
			if d.isArchive(root) {
				return resource.NewArchive(root, rest[len(api.ArchiveSeparator):], d.cache)
			}
		}
		d.logger.Debug(`no archive root for location`, `location`, name)
		return resource.NewUnresolved(name)
	}
	r, err := resource.ParseArchive(name, d.cache)
	if err != nil {
		d.logger.Debug(`unable to parse archive location`, `location`, name, `error`, err)
		return resource.NewUnresolved(name)
	}
	if p := r.ArchivePath(); !filepath.IsAbs(p) {
		return resource.NewArchive(d.absolute(p), r.EntryPath(), d.cache)
	}
	return r
}

// isArchive returns true unless the root is a directory. A root that does not exist is an
// archive if its name has the extension of one.
func (d *Dir) isArchive(root string) bool {
	if fi, err := os.Stat(root); err == nil {
		return !fi.IsDir()
	}
	return archive.IsArchiveFile(root)
}

func (d *Dir) absolute(p string) string {
	if !filepath.IsAbs(p) {
		p = filepath.Join(d.base, p)
	}
	return filepath.Clean(p)
}
