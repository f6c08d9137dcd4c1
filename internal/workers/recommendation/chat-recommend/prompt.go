// internal/workers/recommendation/chat-recommend/prompt.go
package chatrecommend

import (
	"fmt"
	"strings"

	"takeout-recommender/internal/common/genai"
	"takeout-recommender/internal/matching/constraints"
	"takeout-recommender/internal/models"
)

const systemPromptTemplate = `你是一个专业的外卖推荐助手，位于%s。你的任务是理解用户的需求，并从以下餐厅列表中推荐合适的餐厅。

可用餐厅列表：
%s

重要提示：
1. 必须严格匹配用户的需求。如果用户说"烧烤"，只能推荐包含"烤"字的餐厅（如韩式烤肉、烤鸭等）
2. 如果用户提到价格范围（如"人均100左右"），必须推荐价格在范围内的餐厅
3. 优先推荐完全匹配的餐厅，如果没有完全匹配的，再考虑相似类型
4. **只推荐1家最符合需求的餐厅**（最重要的一条！）

请根据用户的对话内容，理解他们的需求（如菜系、价格、口味、配送时间等），然后：
1. 用自然、友好的语言回复用户
2. **只推荐1家最符合需求的餐厅**（必须严格匹配用户需求）
3. 说明推荐理由

回复格式要求：
- 第一段：理解用户需求并友好回复
- 第二段：推荐餐厅（必须在回复中明确提到餐厅名称，格式：餐厅名（菜系）- 价格 - 评分 - 配送时间 - 推荐理由）
- 保持对话自然流畅，像朋友聊天一样

如果用户的需求不明确，可以询问更多细节。`

// summaryRestaurants picks the restaurants shown to the model. A barbecue
// request puts marked restaurants first.
func (h *Handler) summaryRestaurants(message string, rs []models.Restaurant) []models.Restaurant {
	if !constraints.HasBarbecueSignal(message) {
		return head(rs, h.config.SummaryLimit)
	}

	var bbq, others []models.Restaurant
	for _, r := range rs {
		if r.Mentions(constraints.BarbecueMarker) {
			bbq = append(bbq, r)
		} else {
			others = append(others, r)
		}
	}
	out := make([]models.Restaurant, 0, h.config.BBQSummaryLimit+h.config.BBQOtherLimit)
	out = append(out, head(bbq, h.config.BBQSummaryLimit)...)
	return append(out, head(others, h.config.BBQOtherLimit)...)
}

func head(rs []models.Restaurant, n int) []models.Restaurant {
	if n < len(rs) {
		return rs[:n]
	}
	return rs
}

func summaryLine(i int, r models.Restaurant) string {
	dish := r.SignatureDish
	if dish == "" {
		dish = "无"
	}
	return fmt.Sprintf("%d. %s（%s）- ¥%s，评分%s，配送%d分钟 - %s - 招牌菜：%s",
		i+1, r.Name, r.Cuisine, r.PriceLabel(), r.RatingLabel(), r.DeliveryTime, r.Description, dish)
}

func systemPrompt(location string, rs []models.Restaurant) string {
	if strings.TrimSpace(location) == "" {
		location = DefaultLocation
	}
	lines := make([]string, len(rs))
	for i, r := range rs {
		lines[i] = summaryLine(i, r)
	}
	return fmt.Sprintf(systemPromptTemplate, location, strings.Join(lines, "\n"))
}

// buildMessages is the system prompt, the most recent history turns and the
// new user message.
func (h *Handler) buildMessages(input *Input, rs []models.Restaurant) []genai.Message {
	history := input.ConversationHistory
	if n := h.config.HistoryTurns; len(history) > n {
		history = history[len(history)-n:]
	}

	messages := make([]genai.Message, 0, len(history)+2)
	messages = append(messages, genai.Message{
		Role:    string(models.RoleSystem),
		Content: systemPrompt(input.Location, h.summaryRestaurants(input.Message, rs)),
	})
	for _, turn := range history {
		messages = append(messages, genai.Message{Role: string(turn.Role), Content: turn.Content})
	}
	return append(messages, genai.Message{Role: string(models.RoleUser), Content: input.Message})
}
