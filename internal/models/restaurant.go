// internal/models/restaurant.go
package models

import (
	"math"
	"strconv"
	"strings"
)

// Restaurant is a single catalog entry. Values are treated as read-only once
// the catalog has been built.
type Restaurant struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Cuisine       string  `json:"cuisine"`
	Price         float64 `json:"price"`
	Rating        float64 `json:"rating"`
	DeliveryTime  int     `json:"delivery_time"`
	Description   string  `json:"description"`
	SignatureDish string  `json:"signature_dish"`
	Reviews       string  `json:"reviews"`
}

// ReviewSeparator splits the reviews field.
const ReviewSeparator = "|"

// ReviewList returns the individual review snippets.
func (r Restaurant) ReviewList() []string {
	if r.Reviews == "" {
		return nil
	}
	parts := strings.Split(r.Reviews, ReviewSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Mentions reports whether marker appears in the name, description or
// signature dish.
func (r Restaurant) Mentions(marker string) bool {
	return strings.Contains(r.Name, marker) ||
		strings.Contains(r.Description, marker) ||
		strings.Contains(r.SignatureDish, marker)
}

// PriceLabel renders the price without trailing zeros: 45, 45.5.
func (r Restaurant) PriceLabel() string {
	return strconv.FormatFloat(r.Price, 'f', -1, 64)
}

// RatingLabel always keeps one decimal: 4.0, 4.5.
func (r Restaurant) RatingLabel() string {
	if r.Rating == math.Trunc(r.Rating) {
		return strconv.FormatFloat(r.Rating, 'f', 1, 64)
	}
	return strconv.FormatFloat(r.Rating, 'f', -1, 64)
}

// EnrichedRestaurant is a Restaurant with two derived image-search URLs.
type EnrichedRestaurant struct {
	Restaurant
	Image1 string `json:"image1"`
	Image2 string `json:"image2"`
}

// FilterCriteria holds optional structured bounds. Nil fields impose no
// constraint.
type FilterCriteria struct {
	Cuisine         *string  `json:"cuisine,omitempty"`
	MinPrice        *float64 `json:"min_price,omitempty"`
	MaxPrice        *float64 `json:"max_price,omitempty"`
	MinRating       *float64 `json:"min_rating,omitempty"`
	MaxDeliveryTime *int     `json:"max_delivery_time,omitempty"`
	Keyword         *string  `json:"keyword,omitempty"`
}

// RecommendationReason is a one-line pitch for a filtered restaurant.
type RecommendationReason struct {
	RestaurantID int    `json:"restaurant_id"`
	Name         string `json:"name"`
	Reason       string `json:"reason"`
}
