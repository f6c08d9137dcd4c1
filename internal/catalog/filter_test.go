package catalog

import (
	"testing"

	"takeout-recommender/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func names(rs []models.Restaurant) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func assertSorted(t *testing.T, rs []models.Restaurant) {
	t.Helper()
	for i := 1; i < len(rs); i++ {
		prev, cur := rs[i-1], rs[i]
		ok := prev.Rating > cur.Rating || (prev.Rating == cur.Rating && prev.Price <= cur.Price)
		assert.True(t, ok, "%s(%v,%v) before %s(%v,%v)", prev.Name, prev.Rating, prev.Price, cur.Name, cur.Rating, cur.Price)
	}
}

func TestFilter_Cuisine(t *testing.T) {
	got := Default().Filter(models.FilterCriteria{Cuisine: strPtr("火锅")})
	assert.Equal(t, []string{"大龙燚", "海底捞火锅", "小肥羊", "小龙坎", "呷哺呷哺"}, names(got))
}

func TestFilter_NoCriteriaKeepsMembership(t *testing.T) {
	c := Default()
	got := c.Filter(models.FilterCriteria{})
	require.Len(t, got, c.Len())
	assert.ElementsMatch(t, names(c.All()), names(got))
	assertSorted(t, got)
}

func TestFilter_BoundsAreInclusiveAndConjunctive(t *testing.T) {
	criteria := []models.FilterCriteria{
		{MinPrice: floatPtr(30), MaxPrice: floatPtr(60)},
		{MinRating: floatPtr(4.6)},
		{MaxDeliveryTime: intPtr(25)},
		{Cuisine: strPtr("快餐"), MaxPrice: floatPtr(30), MinRating: floatPtr(4.1)},
		{Keyword: strPtr("拉面")},
		{Cuisine: strPtr(""), Keyword: strPtr("")},
		{Cuisine: strPtr("不存在")},
	}

	c := Default()
	for _, cr := range criteria {
		got := c.Filter(cr)
		for _, r := range got {
			assert.True(t, Matches(r, cr), r.Name)
		}
		assertSorted(t, got)

		var expected int
		for _, r := range c.All() {
			if Matches(r, cr) {
				expected++
			}
		}
		assert.Len(t, got, expected)
	}

	edge := c.Filter(models.FilterCriteria{MinPrice: floatPtr(150), MaxPrice: floatPtr(150)})
	assert.Equal(t, []string{"全聚德"}, names(edge))

	assert.Empty(t, c.Filter(models.FilterCriteria{Cuisine: strPtr("不存在")}))
}

func TestFilter_KeywordIsCaseInsensitive(t *testing.T) {
	c, err := New([]models.Restaurant{
		{ID: 1, Name: "Pizza Hut", Description: "chain", Rating: 4.0, Price: 50},
		{ID: 2, Name: "Corner", Description: "Wood-fired PIZZA", Rating: 4.5, Price: 60},
		{ID: 3, Name: "Noodles", Description: "ramen", Rating: 4.9, Price: 20},
	})
	require.NoError(t, err)

	got := c.Filter(models.FilterCriteria{Keyword: strPtr("pIzZa")})
	assert.Equal(t, []string{"Corner", "Pizza Hut"}, names(got))
}

func TestSortByRating_TieBreakOnPrice(t *testing.T) {
	rs := []models.Restaurant{
		{Name: "a", Rating: 4.5, Price: 30},
		{Name: "b", Rating: 4.7, Price: 90},
		{Name: "c", Rating: 4.5, Price: 20},
		{Name: "d", Rating: 4.7, Price: 80},
	}
	SortByRating(rs)
	assert.Equal(t, []string{"d", "b", "c", "a"}, names(rs))
}
