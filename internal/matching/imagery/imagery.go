// Package imagery turns a restaurant's signature dishes into image-search URLs.
package imagery

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"takeout-recommender/internal/models"
)

const (
	// DefaultKeyword is used when a dish has no known search term.
	DefaultKeyword = "food"

	imageURLFormat = "https://source.unsplash.com/400x300/?%s&sig=%d"
	sigRange       = 1000
	sigOffsetStep  = 100
	maxDishes      = 2
)

var dishSeparators = regexp.MustCompile(`[、，,/\s]+`)

var exactKeywords = func() map[string]string {
	m := make(map[string]string, len(dishKeywords))
	for _, e := range dishKeywords {
		m[e.dish] = e.keyword
	}
	return m
}()

// Resolver builds image URLs. The zero value is not usable; use NewResolver.
type Resolver struct {
	intn func(n int) int
}

// NewResolver uses the process-wide random source for the sig parameter.
func NewResolver() *Resolver {
	return &Resolver{intn: rand.IntN}
}

// NewResolverWithRand is NewResolver with a caller-supplied source, for
// reproducible URLs.
func NewResolverWithRand(intn func(n int) int) *Resolver {
	return &Resolver{intn: intn}
}

// SplitDishes returns up to two trimmed dish names from a signature dish
// field, or [DefaultKeyword] when there are none.
func SplitDishes(signatureDish string) []string {
	var out []string
	for _, d := range dishSeparators.Split(signatureDish, -1) {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
			if len(out) == maxDishes {
				break
			}
		}
	}
	if len(out) == 0 {
		return []string{DefaultKeyword}
	}
	return out
}

// Resolve maps a dish name to a search term: exact entry first, then the
// first entry contained in the dish or containing it.
func Resolve(dish string) string {
	dish = strings.ToLower(strings.TrimSpace(dish))
	if dish == "" {
		return DefaultKeyword
	}
	if kw, ok := exactKeywords[dish]; ok {
		return kw
	}
	for _, e := range dishKeywords {
		if strings.Contains(dish, e.dish) || strings.Contains(e.dish, dish) {
			return e.keyword
		}
	}
	return DefaultKeyword
}

// URL returns the image URL for a dish. offset shifts the sig parameter so
// two images for the same dish differ.
func (r *Resolver) URL(dish string, offset int) string {
	sig := r.intn(sigRange) + 1 + offset*sigOffsetStep
	return fmt.Sprintf(imageURLFormat, Resolve(dish), sig)
}

// Enrich attaches two image URLs derived from the signature dish. With a
// single dish both images use it, with different offsets.
func (r *Resolver) Enrich(rest models.Restaurant) models.EnrichedRestaurant {
	dishes := SplitDishes(rest.SignatureDish)
	out := models.EnrichedRestaurant{Restaurant: rest}
	if len(dishes) >= 2 {
		out.Image1 = r.URL(dishes[0], 0)
		out.Image2 = r.URL(dishes[1], 0)
	} else {
		out.Image1 = r.URL(dishes[0], 0)
		out.Image2 = r.URL(dishes[0], 1)
	}
	return out
}

// EnrichAll applies Enrich to each restaurant, preserving order.
func (r *Resolver) EnrichAll(rs []models.Restaurant) []models.EnrichedRestaurant {
	out := make([]models.EnrichedRestaurant, 0, len(rs))
	for _, rest := range rs {
		out = append(out, r.Enrich(rest))
	}
	return out
}
