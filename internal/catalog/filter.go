package catalog

import (
	"sort"
	"strings"

	"takeout-recommender/internal/models"
)

// Filter returns the restaurants satisfying every supplied bound, ordered by
// rating descending then price ascending. Empty strings count as absent.
func (c *Catalog) Filter(criteria models.FilterCriteria) []models.Restaurant {
	out := make([]models.Restaurant, 0, len(c.restaurants))
	for _, r := range c.restaurants {
		if Matches(r, criteria) {
			out = append(out, r)
		}
	}
	SortByRating(out)
	return out
}

// Matches reports whether r satisfies all bounds in criteria.
func Matches(r models.Restaurant, criteria models.FilterCriteria) bool {
	if criteria.Cuisine != nil && *criteria.Cuisine != "" && r.Cuisine != *criteria.Cuisine {
		return false
	}
	if criteria.MinPrice != nil && r.Price < *criteria.MinPrice {
		return false
	}
	if criteria.MaxPrice != nil && r.Price > *criteria.MaxPrice {
		return false
	}
	if criteria.MinRating != nil && r.Rating < *criteria.MinRating {
		return false
	}
	if criteria.MaxDeliveryTime != nil && r.DeliveryTime > *criteria.MaxDeliveryTime {
		return false
	}
	if criteria.Keyword != nil && *criteria.Keyword != "" {
		kw := strings.ToLower(*criteria.Keyword)
		if !strings.Contains(strings.ToLower(r.Name), kw) &&
			!strings.Contains(strings.ToLower(r.Description), kw) {
			return false
		}
	}
	return true
}

// SortByRating orders rs in place by rating descending, then price ascending.
// Entries equal on both keep their relative order.
func SortByRating(rs []models.Restaurant) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Rating != rs[j].Rating {
			return rs[i].Rating > rs[j].Rating
		}
		return rs[i].Price < rs[j].Price
	})
}
