// internal/workers/recommendation/filter-restaurants/models.go
package filterrestaurants

import "takeout-recommender/internal/models"

// Input is the filter request; every field is optional.
type Input struct {
	models.FilterCriteria
}

type Output struct {
	Data            []models.Restaurant           `json:"data"`
	Recommendations []models.RecommendationReason `json:"recommendations"`
}
