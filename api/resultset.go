package api

import (
	"github.com/scylladb/go-set/strset"
)

// ResultSet is an insertion ordered set of resources, deduplicated by location.
type ResultSet struct {
	seen      *strset.Set
	resources []Resource
}

// NewResultSet creates a new empty ResultSet with the given initial capacity
func NewResultSet(capacity int) *ResultSet {
	return &ResultSet{seen: strset.NewWithSize(capacity), resources: make([]Resource, 0, capacity)}
}

// Add adds the resource unless a resource with the same location is already present. It
// returns true if the resource was added.
func (rs *ResultSet) Add(r Resource) bool {
	l := r.Location()
	if rs.seen.Has(l) {
		return false
	}
	rs.seen.Add(l)
	rs.resources = append(rs.resources, r)
	return true
}

// AddAll adds all resources of the given set, in order.
func (rs *ResultSet) AddAll(other *ResultSet) {
	if other == nil {
		return
	}
	for _, r := range other.resources {
		rs.Add(r)
	}
}

// Contains returns true if a resource with the given location is present
func (rs *ResultSet) Contains(location string) bool {
	return rs.seen.Has(location)
}

// Len returns the number of resources in the set
func (rs *ResultSet) Len() int {
	return len(rs.resources)
}

// Each calls the given function once for each resource, in insertion order
func (rs *ResultSet) Each(f func(Resource)) {
	for _, r := range rs.resources {
		f(r)
	}
}

// Resources returns a copy of the resources in insertion order
func (rs *ResultSet) Resources() []Resource {
	c := make([]Resource, len(rs.resources))
	copy(c, rs.resources)
	return c
}

// Locations returns the locations of the resources in insertion order
func (rs *ResultSet) Locations() []string {
	ls := make([]string, len(rs.resources))
	for i, r := range rs.resources {
		ls[i] = r.Location()
	}
	return ls
}
