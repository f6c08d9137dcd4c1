// internal/models/conversation.go
package models

// Role of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ConversationTurn is one message of a caller-supplied conversation.
type ConversationTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ResultType tags a RecommendationResult.
type ResultType string

const (
	ResultRecommendation ResultType = "recommendation"
	ResultError          ResultType = "error"
)

// RecommendationResult is the outcome of one chat turn. Restaurants holds at
// most one entry.
type RecommendationResult struct {
	Message     string               `json:"message"`
	Restaurants []EnrichedRestaurant `json:"restaurants"`
	Type        ResultType           `json:"type"`
}

// Recommended returns the single recommended restaurant, if any.
func (r *RecommendationResult) Recommended() (EnrichedRestaurant, bool) {
	if r == nil || len(r.Restaurants) == 0 {
		return EnrichedRestaurant{}, false
	}
	return r.Restaurants[0], true
}
