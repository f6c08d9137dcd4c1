// internal/workers/recommendation/chat-recommend/config.go
package chatrecommend

import (
	"time"

	"takeout-recommender/internal/common/config"
)

type Config struct {
	Timeout         time.Duration
	Temperature     float64
	MaxTokens       int
	HistoryTurns    int
	SummaryLimit    int
	BBQSummaryLimit int
	BBQOtherLimit   int
}

func DefaultConfig() *Config {
	return &Config{
		Timeout:         35 * time.Second,
		Temperature:     0.7,
		MaxTokens:       1000,
		HistoryTurns:    10,
		SummaryLimit:    30,
		BBQSummaryLimit: 20,
		BBQOtherLimit:   10,
	}
}

// LoadConfig reads the ai, recommend and workers.chat-recommend sections.
func LoadConfig(cfg *config.Config) *Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}

	if w := config.GetWorkerConfig(cfg, TaskType); w.Timeout > 0 {
		c.Timeout = config.GetDuration(w.Timeout)
	}
	if cfg.AI.Temperature > 0 {
		c.Temperature = cfg.AI.Temperature
	}
	if cfg.AI.MaxTokens > 0 {
		c.MaxTokens = cfg.AI.MaxTokens
	}
	if cfg.Recommend.HistoryTurns > 0 {
		c.HistoryTurns = cfg.Recommend.HistoryTurns
	}
	if cfg.Recommend.SummaryLimit > 0 {
		c.SummaryLimit = cfg.Recommend.SummaryLimit
	}
	if cfg.Recommend.BBQSummaryLimit > 0 {
		c.BBQSummaryLimit = cfg.Recommend.BBQSummaryLimit
	}
	if cfg.Recommend.BBQOtherLimit > 0 {
		c.BBQOtherLimit = cfg.Recommend.BBQOtherLimit
	}
	return c
}
