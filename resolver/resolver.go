// Package resolver resolves location expressions that may contain Ant-style patterns to the
// resources that exist in the directories, archives and virtual filesystems visible from a
// provider.
package resolver

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/locator/api"
	"github.com/lyraproj/locator/archive"
	"github.com/lyraproj/locator/fswalk"
	"github.com/lyraproj/locator/location"
	"github.com/lyraproj/locator/matcher"
	"github.com/lyraproj/locator/resource"
	"github.com/lyraproj/locator/vfs"
)

// Option configures a Resolver
type Option func(*Resolver)

// WithMatcher sets the matcher used for all pattern matching. The default is matcher.Default.
func WithMatcher(m *matcher.Matcher) Option {
	return func(r *Resolver) { r.matcher = m }
}

// WithVirtualFilesystem enables resolution of patterns below vfs: roots
func WithVirtualFilesystem(fs api.VirtualFilesystem) Option {
	return func(r *Resolver) { r.vfs = fs }
}

// WithURLResolver sets a resolver that is applied to every root before it is searched
func WithURLResolver(u api.URLResolver) Option {
	return func(r *Resolver) { r.urlResolver = u }
}

// WithLogger sets the logger of the resolver and of the scanners it creates
func WithLogger(logger hclog.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// Resolver resolves location expressions using a primary provider. A Resolver holds no state
// beyond its configuration and is safe for concurrent use.
type Resolver struct {
	provider    api.Provider
	matcher     *matcher.Matcher
	vfs         api.VirtualFilesystem
	urlResolver api.URLResolver
	logger      hclog.Logger
	scanner     *archive.Scanner
	walker      *fswalk.Walker
}

// New creates a Resolver for the given primary provider
func New(p api.Provider, opts ...Option) *Resolver {
	r := &Resolver{provider: p}
	for _, o := range opts {
		o(r)
	}
	if r.matcher == nil {
		r.matcher = matcher.Default
	}
	if r.logger == nil {
		r.logger = hclog.Default()
	}
	r.scanner = archive.NewScanner(r.matcher, r.logger)
	r.walker = fswalk.New(r.matcher, r.logger)
	r.logger = r.logger.Named(`resolver`)
	return r
}

// Provider returns the primary provider
func (r *Resolver) Provider() api.Provider {
	return r.provider
}

// Matcher returns the matcher
func (r *Resolver) Matcher() *matcher.Matcher {
	return r.matcher
}

// IsPattern returns true if the given string contains a wildcard
func (r *Resolver) IsPattern(s string) bool {
	return r.matcher.IsPattern(s)
}

// DetermineRoot returns the literal root of the given expression
func (r *Resolver) DetermineRoot(expression string) string {
	return location.DetermineRoot(expression)
}

// Resource returns the resource for the given literal location as resolved by the primary
// provider. The resource may not exist.
func (r *Resolver) Resource(loc string) api.Resource {
	return r.provider.Resolve(loc)
}

// Resolve returns the resources denoted by the given expression. An expression without a
// pattern yields exactly one resource, unless it has the multi provider prefix in which case
// it yields every existing resource with that name. Resolve fails only with a
// *api.ResolutionIOError. Nothing is cached; every call reflects the current state of the
// backing stores.
func (r *Resolver) Resolve(expression string) (*api.ResultSet, error) {
	expr := location.Parse(expression)
	multi := expr.PrefixKind == location.MultiProvider

	if !expr.HasPattern() {
		if multi {
			return r.findAll(expr.Path()), nil
		}
		result := api.NewResultSet(1)
		result.Add(r.Resource(expression))
		return result, nil
	}

	var roots []api.Resource
	if multi {
		roots = r.findAll(expr.Root[len(expr.Prefix):]).Resources()
	} else {
		roots = []api.Resource{r.Resource(expr.Root)}
	}

	result := api.NewResultSet(16)
	for _, root := range roots {
		found, err := r.dispatch(r.resolveURL(root), expr.SubPattern)
		if err != nil {
			return nil, err
		}
		result.AddAll(found)
	}
	r.logger.Trace(`resolved location pattern`, `expression`, expression, `count`, result.Len())
	return result, nil
}

// Resources resolves each of the given expressions and returns the union of the results in
// order. The first error aborts the resolution.
func (r *Resolver) Resources(expressions ...string) (*api.ResultSet, error) {
	result := api.NewResultSet(16)
	for _, expression := range expressions {
		found, err := r.Resolve(expression)
		if err != nil {
			return nil, err
		}
		result.AddAll(found)
	}
	return result, nil
}

func (r *Resolver) resolveURL(root api.Resource) api.Resource {
	if r.urlResolver == nil {
		return root
	}
	resolved, ok, err := r.urlResolver.ResolveURL(root)
	if err != nil {
		r.logger.Warn(`unable to resolve root`, `location`, root.Location(), `error`, err)
		return root
	}
	if ok {
		return resolved
	}
	return root
}

// dispatch selects the search strategy for the root based on its kind
func (r *Resolver) dispatch(root api.Resource, subPattern string) (*api.ResultSet, error) {
	switch root.Kind() {
	case api.KindArchive:
		return r.scanner.Scan(root, subPattern)
	case api.KindVirtual:
		return r.findVirtual(root, subPattern)
	case api.KindFile:
		return r.findFiles(root, subPattern)
	default:
		if strings.HasPrefix(root.Location(), api.ProviderPrefix) {
			r.logger.Trace(`root does not exist`, `location`, root.Location())
		} else {
			r.logger.Warn(`cannot search for matching resources below root`, `location`, root.Location(), `kind`, root.Kind())
		}
		return nil, nil
	}
}

func (r *Resolver) findVirtual(root api.Resource, subPattern string) (*api.ResultSet, error) {
	if r.vfs == nil {
		r.logger.Warn(`no virtual filesystem available`, `location`, root.Location())
		return nil, nil
	}
	node := r.vfs.Node(strings.TrimPrefix(root.Location(), api.VirtualPrefix))
	found, err := vfs.FindMatching(r.vfs, node, subPattern, r.matcher)
	if err != nil {
		r.logger.Warn(`unable to search virtual filesystem`, `location`, root.Location(), `error`, err)
		return nil, nil
	}
	return found, nil
}

func (r *Resolver) findFiles(root api.Resource, subPattern string) (*api.ResultSet, error) {
	var dir string
	if fr, ok := root.(api.FileResource); ok {
		dir = fr.Path()
	} else {
		var err error
		if dir, err = api.ParseFileURL(root.Location()); err != nil {
			r.logger.Warn(`skipping root with malformed location`, `location`, root.Location(), `error`, err)
			return nil, nil
		}
	}
	paths := r.walker.Walk(dir, subPattern)
	result := api.NewResultSet(len(paths))
	for _, p := range paths {
		result.Add(resource.NewFile(p))
	}
	return result, nil
}
