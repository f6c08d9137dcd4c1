// Package fallback picks a restaurant from the user's own words when the AI
// reply is unavailable.
package fallback

import (
	"takeout-recommender/internal/catalog"
	"takeout-recommender/internal/matching/constraints"
	"takeout-recommender/internal/models"
)

// Recommend narrows rs by the cuisines, barbecue signal and price window in
// message, in that order, and returns the top-rated survivor. Ties go to
// catalog order. When every restaurant is filtered out it returns the
// top-rated restaurant overall. rs must not be empty.
func Recommend(message string, rs []models.Restaurant) models.Restaurant {
	c := constraints.Extract(message)
	candidates := Narrow(c, rs)
	if len(candidates) == 0 {
		return catalog.TopRated(rs)
	}
	return catalog.TopRated(candidates)
}

// Narrow applies c to rs without reordering.
func Narrow(c constraints.Constraints, rs []models.Restaurant) []models.Restaurant {
	out := rs
	if len(c.Cuisines) > 0 {
		out = keep(out, func(r models.Restaurant) bool { return c.HasCuisine(r.Cuisine) })
	}
	if c.Barbecue {
		out = keep(out, func(r models.Restaurant) bool { return r.Mentions(constraints.BarbecueMarker) })
	}
	if c.Price != nil {
		out = keep(out, func(r models.Restaurant) bool { return c.Price.Contains(r.Price) })
	}
	return out
}

func keep(rs []models.Restaurant, pred func(models.Restaurant) bool) []models.Restaurant {
	var out []models.Restaurant
	for _, r := range rs {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
