// internal/workers/recommendation/filter-restaurants/reasons.go
package filterrestaurants

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"takeout-recommender/internal/common/genai"
	"takeout-recommender/internal/common/logger"
	"takeout-recommender/internal/common/metrics"
	"takeout-recommender/internal/models"
)

const reasonPromptTemplate = `你是一个专业的外卖推荐助手。为以下餐厅生成一段简洁的推荐理由（30字以内）：

餐厅：%s
菜系：%s
价格：%s元
评分：%s
配送时间：%d分钟
特色：%s

请给出推荐理由：`

// DefaultReason is used whenever no AI reason is available.
func DefaultReason(r models.Restaurant) string {
	return fmt.Sprintf("%s评分%s分，价格¥%s，配送%d分钟，值得一试！",
		r.Name, r.RatingLabel(), r.PriceLabel(), r.DeliveryTime)
}

func reasonPrompt(r models.Restaurant) string {
	return fmt.Sprintf(reasonPromptTemplate,
		r.Name, r.Cuisine, r.PriceLabel(), r.RatingLabel(), r.DeliveryTime, r.Description)
}

// reasons returns one entry per restaurant, in order. Each restaurant is
// handled independently; a failure only affects its own entry.
func (h *Handler) reasons(ctx context.Context, log logger.Logger, rs []models.Restaurant) []models.RecommendationReason {
	out := make([]models.RecommendationReason, len(rs))

	completer, err := h.provider.Get()
	if err != nil {
		log.Warn("AI unavailable, using default reasons", map[string]interface{}{
			"error": err.Error(),
			"count": len(rs),
		})
		for i, r := range rs {
			out[i] = newReason(r, DefaultReason(r))
		}
		return out
	}

	var wg sync.WaitGroup
	for i, r := range rs {
		wg.Add(1)
		go func(i int, r models.Restaurant) {
			defer wg.Done()
			out[i] = newReason(r, h.reason(ctx, log, completer, r))
		}(i, r)
	}
	wg.Wait()
	return out
}

func (h *Handler) reason(ctx context.Context, log logger.Logger, completer genai.Completer, r models.Restaurant) string {
	if h.cache != nil {
		cached, ok, err := h.cache.Get(ctx, r.ID)
		switch {
		case err != nil:
			metrics.ReasonCache.WithLabelValues("error").Inc()
			log.Warn("reason cache read failed", map[string]interface{}{
				"restaurantId": r.ID,
				"error":        err.Error(),
			})
		case ok:
			metrics.ReasonCache.WithLabelValues("hit").Inc()
			return cached
		default:
			metrics.ReasonCache.WithLabelValues("miss").Inc()
		}
	}

	text, err := completer.Complete(ctx, genai.CompletionRequest{
		Purpose:     genai.PurposeReason,
		Messages:    []genai.Message{{Role: string(models.RoleUser), Content: reasonPrompt(r)}},
		Temperature: h.config.Temperature,
		MaxTokens:   h.config.ReasonMaxTokens,
	})
	text = strings.TrimSpace(text)
	if err != nil || text == "" {
		fields := map[string]interface{}{"restaurantId": r.ID}
		if err != nil {
			fields["error"] = err.Error()
		}
		log.Warn("reason generation failed, using default", fields)
		return DefaultReason(r)
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, r.ID, text); err != nil {
			log.Warn("reason cache write failed", map[string]interface{}{
				"restaurantId": r.ID,
				"error":        err.Error(),
			})
		}
	}
	return text
}

func newReason(r models.Restaurant, reason string) models.RecommendationReason {
	return models.RecommendationReason{RestaurantID: r.ID, Name: r.Name, Reason: reason}
}
