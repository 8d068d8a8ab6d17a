// Package catalog links the NEO and close-approach datasets into a single
// queryable in-memory catalog.
//
// Construction is one-shot: New consumes the two already-parsed collections,
// binds every close approach to its NEO (and vice versa), and builds the
// designation and name lookup tables. The catalog is read-only afterwards;
// lookups and queries may be issued repeatedly from a single caller.
package catalog

import (
	"iter"
	"strings"

	"neo-scout/internal/models"
)

// Filter is a predicate over a single close approach. Implementations may
// inspect the approach's own fields or, through the linked NEO reference,
// the object's fields. See internal/filters for the concrete variants.
type Filter interface {
	Matches(*models.CloseApproach) bool
}

// Catalog holds the linked NEO and close-approach collections plus the two
// point-lookup indexes.
type Catalog struct {
	neos       []*models.NearEarthObject
	approaches []*models.CloseApproach

	byDesignation map[string]*models.NearEarthObject
	byName        map[string]*models.NearEarthObject
}

// New links the two collections and builds the lookup indexes.
//
// Matching is exact string equality after lowercasing both sides. Each NEO
// receives its approaches in dataset order; each matched approach gets its
// NEO back-reference set. An approach whose designation matches no NEO stays
// unlinked (nil NEO): it appears in no object's approach list but remains in
// the backing collection and is still surfaced by Query.
//
// Designations are assumed unique across the NEO dataset; the designation
// index is last-write-wins if the input violates that.
func New(neos []*models.NearEarthObject, approaches []*models.CloseApproach) *Catalog {
	// Bucket approaches by lowercased designation so linking is a single
	// pass over each collection instead of objects x events.
	buckets := make(map[string][]*models.CloseApproach)
	for _, ca := range approaches {
		key := strings.ToLower(ca.Designation)
		buckets[key] = append(buckets[key], ca)
	}

	c := &Catalog{
		neos:          neos,
		approaches:    approaches,
		byDesignation: make(map[string]*models.NearEarthObject, len(neos)),
		byName:        make(map[string]*models.NearEarthObject),
	}

	for _, neo := range neos {
		key := strings.ToLower(neo.Designation)
		neo.Approaches = buckets[key]
		for _, ca := range neo.Approaches {
			ca.NEO = neo
		}

		c.byDesignation[key] = neo
		if neo.Name != "" {
			c.byName[strings.ToLower(neo.Name)] = neo
		}
	}

	return c
}

// NEOByDesignation returns the NEO with the given primary designation, or
// nil if there is none. Matching is exact and case-insensitive.
func (c *Catalog) NEOByDesignation(designation string) *models.NearEarthObject {
	return c.byDesignation[strings.ToLower(designation)]
}

// NEOByName returns the NEO with the given IAU name, or nil if there is
// none. Unnamed objects are never indexed, so "" always misses.
func (c *Catalog) NEOByName(name string) *models.NearEarthObject {
	if name == "" {
		return nil
	}
	return c.byName[strings.ToLower(name)]
}

// NEOs returns the full NEO collection in dataset order.
func (c *Catalog) NEOs() []*models.NearEarthObject {
	return c.neos
}

// Approaches returns the full close-approach collection in dataset order,
// orphans included.
func (c *Catalog) Approaches() []*models.CloseApproach {
	return c.approaches
}

// Query returns a lazy stream of close approaches matching every supplied
// filter (logical AND). With no filters it yields the entire collection.
//
// Each call re-walks the backing collection from the start, in dataset
// order; the returned sequence can be ranged over more than once and
// abandoned early at no cost. Filters are evaluated per element, in the
// order given, stopping at the first mismatch. Filter panics are not
// caught.
func (c *Catalog) Query(filters ...Filter) iter.Seq[*models.CloseApproach] {
	return func(yield func(*models.CloseApproach) bool) {
		for _, ca := range c.approaches {
			if !matchesAll(ca, filters) {
				continue
			}
			if !yield(ca) {
				return
			}
		}
	}
}

func matchesAll(ca *models.CloseApproach, filters []Filter) bool {
	for _, f := range filters {
		if !f.Matches(ca) {
			return false
		}
	}
	return true
}
