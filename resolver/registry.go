package resolver

import (
	"sync"

	"github.com/lyraproj/locator/api"
)

// Registry keeps one Resolver per provider. It is safe for concurrent use.
type Registry struct {
	lock      sync.RWMutex
	resolvers map[api.Provider]*Resolver
	options   []Option
}

// NewRegistry creates a new empty Registry. Every Resolver created by the registry receives
// the given options.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{resolvers: make(map[api.Provider]*Resolver), options: opts}
}

// Of returns the Resolver for the given provider, creating it if it does not exist. The
// provider must be comparable.
func (g *Registry) Of(p api.Provider) *Resolver {
	g.lock.RLock()
	r, ok := g.resolvers[p]
	g.lock.RUnlock()
	if ok {
		return r
	}

	g.lock.Lock()
	defer g.lock.Unlock()

	// Must check again, another goroutine might have intervened
	if r, ok = g.resolvers[p]; ok {
		return r
	}
	r = New(p, g.options...)
	g.resolvers[p] = r
	return r
}

// Delete removes the Resolver for the given provider
func (g *Registry) Delete(p api.Provider) {
	g.lock.Lock()
	delete(g.resolvers, p)
	g.lock.Unlock()
}

// Len returns the number of resolvers in the registry
func (g *Registry) Len() int {
	g.lock.RLock()
	defer g.lock.RUnlock()
	return len(g.resolvers)
}
