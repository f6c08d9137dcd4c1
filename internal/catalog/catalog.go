// Package catalog holds the immutable restaurant catalog, the structured
// filter over it and the sources it can be loaded from.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"takeout-recommender/internal/models"
)

var ErrEmptyCatalog = errors.New("catalog has no restaurants")

// Catalog is safe for concurrent reads and never mutated after New.
type Catalog struct {
	restaurants []models.Restaurant
	byID        map[int]int
}

// New copies rs and checks that ids and names are unique.
func New(rs []models.Restaurant) (*Catalog, error) {
	if len(rs) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		restaurants: make([]models.Restaurant, len(rs)),
		byID:        make(map[int]int, len(rs)),
	}
	names := make(map[string]struct{}, len(rs))

	for i, r := range rs {
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate restaurant id %d", r.ID)
		}
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, fmt.Errorf("restaurant %d has no name", r.ID)
		}
		if _, dup := names[name]; dup {
			return nil, fmt.Errorf("duplicate restaurant name %q", name)
		}
		names[name] = struct{}{}
		c.byID[r.ID] = i
		c.restaurants[i] = r
	}
	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.restaurants)
}

// All returns a copy of the restaurants in catalog order.
func (c *Catalog) All() []models.Restaurant {
	out := make([]models.Restaurant, len(c.restaurants))
	copy(out, c.restaurants)
	return out
}

func (c *Catalog) Get(id int) (models.Restaurant, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Restaurant{}, false
	}
	return c.restaurants[i], true
}

// Cuisines returns the distinct cuisine labels, sorted.
func (c *Catalog) Cuisines() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range c.restaurants {
		if _, ok := seen[r.Cuisine]; ok {
			continue
		}
		seen[r.Cuisine] = struct{}{}
		out = append(out, r.Cuisine)
	}
	sort.Strings(out)
	return out
}

// TopRated returns the highest-rated restaurant; ties go to the earliest entry.
func (c *Catalog) TopRated() models.Restaurant {
	return TopRated(c.restaurants)
}

// TopRated returns the highest-rated entry of rs, earliest on ties. rs must
// not be empty.
func TopRated(rs []models.Restaurant) models.Restaurant {
	best := rs[0]
	for _, r := range rs[1:] {
		if r.Rating > best.Rating {
			best = r
		}
	}
	return best
}
