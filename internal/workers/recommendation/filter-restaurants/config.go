// internal/workers/recommendation/filter-restaurants/config.go
package filterrestaurants

import (
	"time"

	"takeout-recommender/internal/common/config"
)

type Config struct {
	Timeout         time.Duration
	ReasonLimit     int
	ReasonMaxTokens int
	Temperature     float64
	CacheTTL        time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Timeout:         35 * time.Second,
		ReasonLimit:     5,
		ReasonMaxTokens: 100,
		Temperature:     0.7,
		CacheTTL:        24 * time.Hour,
	}
}

func LoadConfig(cfg *config.Config) *Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}

	if w := config.GetWorkerConfig(cfg, TaskType); w.Timeout > 0 {
		c.Timeout = config.GetDuration(w.Timeout)
	}
	if cfg.Recommend.ReasonLimit > 0 {
		c.ReasonLimit = cfg.Recommend.ReasonLimit
	}
	if cfg.Recommend.ReasonCacheTTL > 0 {
		c.CacheTTL = cfg.Recommend.CacheTTL()
	}
	if cfg.AI.ReasonMaxTokens > 0 {
		c.ReasonMaxTokens = cfg.AI.ReasonMaxTokens
	}
	if cfg.AI.Temperature > 0 {
		c.Temperature = cfg.AI.Temperature
	}
	return c
}
