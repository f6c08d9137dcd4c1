package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"takeout-recommender/internal/catalog"
	"takeout-recommender/internal/matching/constraints"
)

func TestRecommend(t *testing.T) {
	rs := catalog.Default().All()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "barbecue", message: "想吃烧烤", want: "全聚德"},
		{name: "no signal is top rated", message: "随便", want: "法式西餐"},
		{name: "cuisine and price, tie to catalog order", message: "想吃火锅，人均80左右", want: "海底捞火锅"},
		{name: "trigger only", message: "想吃寿司", want: "日式拉面屋"},
		{name: "price only", message: "便宜点，20块", want: "星巴克"},
		{name: "over-constrained falls back to top rated", message: "来点烧烤，人均30", want: "法式西餐"},
		{name: "roast duck within budget", message: "想吃烤鸭，人均90", want: "便宜坊"},
		{name: "full-width price", message: "火锅，人均８０左右", want: "海底捞火锅"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recommend(tt.message, rs).Name)
		})
	}
}

func TestRecommend_BarbecueResultCarriesMarker(t *testing.T) {
	rs := catalog.Default().All()
	for _, msg := range []string{"想吃烧烤", "烤肉", "韩式烤肉有吗"} {
		got := Recommend(msg, rs)
		assert.True(t, got.Mentions(constraints.BarbecueMarker), msg)
	}
}

func TestNarrow_KeepsCatalogOrder(t *testing.T) {
	rs := catalog.Default().All()
	got := Narrow(constraints.Extract("火锅"), rs)
	var names []string
	for _, r := range got {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"海底捞火锅", "小龙坎", "大龙燚", "呷哺呷哺", "小肥羊"}, names)

	assert.Len(t, Narrow(constraints.Constraints{}, rs), len(rs))
}
