package archive

import (
	"sync"

	"github.com/hashicorp/go-hclog"
)

// Cache keeps archives open so that several resolutions can share one connection. Readers
// obtained from a Cache are owned by the cache and closed by Close.
type Cache struct {
	lock    sync.Mutex
	readers map[string]Reader
	logger  hclog.Logger
}

// NewCache creates a new empty Cache
func NewCache() *Cache {
	return &Cache{readers: make(map[string]Reader), logger: hclog.Default().Named(`archive-cache`)}
}

// Get returns the cached reader for the archive at the given path, opening it if needed.
func (c *Cache) Get(path string) (Reader, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if r, ok := c.readers[path]; ok {
		return r, nil
	}
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	c.logger.Debug(`opened archive`, `path`, path)
	c.readers[path] = r
	return r, nil
}

// Len returns the number of open archives
func (c *Cache) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.readers)
}

// Close closes all cached readers. The first error encountered is returned.
func (c *Cache) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	var first error
	for p, r := range c.readers {
		if err := r.Close(); err != nil {
			c.logger.Warn(`unable to close archive`, `path`, p, `error`, err)
			if first == nil {
				first = err
			}
		}
		delete(c.readers, p)
	}
	return first
}
