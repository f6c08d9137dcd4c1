// Package reconcile maps a free-text AI reply back onto catalog restaurants.
package reconcile

import (
	"strings"

	"takeout-recommender/internal/catalog"
	"takeout-recommender/internal/matching/constraints"
	"takeout-recommender/internal/models"
)

const (
	// maxNamed is how many restaurants may be picked up by name.
	maxNamed = 1
	// minCandidates below which the reply's constraints are used to widen
	// the candidate list.
	minCandidates = 3
	// MaxCandidates caps the list.
	MaxCandidates = 5
)

// Reconcile returns between one and MaxCandidates restaurants, in priority
// order: an exact name mention, then barbecue-marked restaurants when the
// reply talks about barbecue, then restaurants in the reply's price window.
// When nothing matches, the top-rated restaurant is returned. rs must be
// non-empty and in catalog order.
func Reconcile(reply string, rs []models.Restaurant) []models.Restaurant {
	if len(rs) == 0 {
		return nil
	}

	var out []models.Restaurant
	picked := make(map[int]bool)
	add := func(r models.Restaurant) bool {
		if picked[r.ID] || len(out) >= MaxCandidates {
			return false
		}
		picked[r.ID] = true
		out = append(out, r)
		return true
	}

	for _, r := range rs {
		if strings.Contains(reply, r.Name) {
			add(r)
			if len(out) >= maxNamed {
				break
			}
		}
	}

	if len(out) < minCandidates {
		c := constraints.Extract(reply)
		if c.Barbecue {
			for _, r := range rs {
				if r.Mentions(constraints.BarbecueMarker) {
					add(r)
				}
			}
		}
		if c.Price != nil {
			for _, r := range rs {
				if c.Price.Contains(r.Price) {
					add(r)
				}
			}
		}
	}

	if len(out) == 0 {
		out = append(out, catalog.TopRated(rs))
	}
	return out
}

// Best is the head of Reconcile.
func Best(reply string, rs []models.Restaurant) (models.Restaurant, bool) {
	out := Reconcile(reply, rs)
	if len(out) == 0 {
		return models.Restaurant{}, false
	}
	return out[0], true
}
