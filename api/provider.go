package api

// A Provider is one level of a hierarchical lookup context. Providers form a chain
// through their parents.
type Provider interface {
	// Name returns a descriptive name of the provider. Used in log messages.
	Name() string

	// Parent returns the parent of this provider or nil if this is the top of the chain.
	Parent() Provider

	// Resolve returns a resource for the given name. It never fails. A name that cannot
	// be found yields a resource whose Exists method returns false.
	Resolve(name string) Resource

	// ResolveAll returns every existing resource for the given literal name that is
	// visible from this provider and its ancestors, in the order the providers were
	// visited.
	ResolveAll(name string) []Resource
}

// ArchiveIntrospector is an optional capability of a Provider that can list the archives
// that it is composed of.
type ArchiveIntrospector interface {
	// ArchiveRoots returns the location of every archive that constitutes the provider. A
	// location is either a file system path or a file: URL.
	ArchiveRoots() ([]string, error)
}

// URLResolver is an optional capability that converts a resource with a location that no
// resolution strategy understands into one that can be matched against.
type URLResolver interface {
	// ResolveURL returns the converted resource and true, or the given resource and false
	// when the resource is not handled by this resolver.
	ResolveURL(r Resource) (Resource, bool, error)
}
