package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestaurant_ReviewList(t *testing.T) {
	r := Restaurant{Reviews: "味道正宗| 分量很足 ||"}
	assert.Equal(t, []string{"味道正宗", "分量很足"}, r.ReviewList())
	assert.Nil(t, Restaurant{}.ReviewList())
}

func TestRestaurant_Mentions(t *testing.T) {
	assert.True(t, Restaurant{Name: "韩式烤肉"}.Mentions("烤"))
	assert.True(t, Restaurant{SignatureDish: "北京烤鸭"}.Mentions("烤"))
	assert.True(t, Restaurant{Description: "炭火烤制"}.Mentions("烤"))
	assert.False(t, Restaurant{Name: "小肥羊", Cuisine: "烤"}.Mentions("烤"))
}

func TestRestaurant_Labels(t *testing.T) {
	tests := []struct {
		price, rating     float64
		wantPrice, wantRt string
	}{
		{45, 4.5, "45", "4.5"},
		{45.5, 4, "45.5", "4.0"},
		{120, 4.8, "120", "4.8"},
	}
	for _, tt := range tests {
		r := Restaurant{Price: tt.price, Rating: tt.rating}
		assert.Equal(t, tt.wantPrice, r.PriceLabel())
		assert.Equal(t, tt.wantRt, r.RatingLabel())
	}
}

func TestRecommendationResult_Recommended(t *testing.T) {
	var nilResult *RecommendationResult
	_, ok := nilResult.Recommended()
	assert.False(t, ok)

	res := &RecommendationResult{Restaurants: []EnrichedRestaurant{{Restaurant: Restaurant{ID: 7}}}}
	got, ok := res.Recommended()
	assert.True(t, ok)
	assert.Equal(t, 7, got.ID)
}
