// internal/workers/recommendation/chat-recommend/models.go
package chatrecommend

import "takeout-recommender/internal/models"

type Input struct {
	Message             string                    `json:"message"`
	ConversationHistory []models.ConversationTurn `json:"conversation_history"`
	Location            string                    `json:"location"`
}

type Output struct {
	models.RecommendationResult
	RequestID string `json:"requestId,omitempty"`
}

// State of a single chat turn.
type State string

const (
	StateAIUnavailable State = "AI_UNAVAILABLE"
	StateCallingAI     State = "CALLING_AI"
	StateAISucceeded   State = "AI_SUCCEEDED"
	StateAIFailed      State = "AI_FAILED"
	StateEnriched      State = "ENRICHED"
)

const (
	MessageUnavailable = "抱歉，AI服务暂时不可用，请稍后重试。"
	MessageFallback    = "根据您的需求，我为您推荐以下餐厅："
	// MessageFallbackEcho is formatted with the user's message.
	MessageFallbackEcho = "根据您的需求「%s」，我为您推荐以下餐厅："
	// MessageFailure is formatted with the error when even the fallback fails.
	MessageFailure = "抱歉，处理您的请求时出现错误：%v。请稍后重试。"

	// DefaultLocation is used when the caller could not be located.
	DefaultLocation = "您所在的城市"
)
