// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig               `mapstructure:"app"`
	Server    ServerConfig            `mapstructure:"server"`
	Catalog   CatalogConfig           `mapstructure:"catalog"`
	Database  DatabaseConfig          `mapstructure:"database"`
	AI        AIConfig                `mapstructure:"ai"`
	Recommend RecommendConfig         `mapstructure:"recommend"`
	Camunda   CamundaConfig           `mapstructure:"camunda"`
	Workers   map[string]WorkerConfig `mapstructure:"workers"`
	Logging   LoggingConfig           `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	ReadTimeout    int      `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout   int      `mapstructure:"write_timeout"` // milliseconds
	GeoLookupURL   string   `mapstructure:"geo_lookup_url"`
	DefaultCity    string   `mapstructure:"default_city"`
}

// CatalogConfig selects the restaurant data source.
type CatalogConfig struct {
	Source   string `mapstructure:"source"`
	FilePath string `mapstructure:"file_path"`
	Table    string `mapstructure:"table"`
	Index    string `mapstructure:"index"`
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
}

// RedisConfig is optional; an empty address disables the reason cache.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AIConfig configures the chat-completion collaborator. An empty APIKey is
// allowed here and surfaces later as a configuration error from the provider.
type AIConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	APIKey          string        `mapstructure:"api_key"`
	Model           string        `mapstructure:"model"`
	Timeout         int           `mapstructure:"timeout"` // milliseconds
	Temperature     float64       `mapstructure:"temperature"`
	MaxTokens       int           `mapstructure:"max_tokens"`
	ReasonMaxTokens int           `mapstructure:"reason_max_tokens"`
	Breaker         BreakerConfig `mapstructure:"breaker"`
}

type BreakerConfig struct {
	MaxFailures uint32 `mapstructure:"max_failures"`
	OpenTimeout int    `mapstructure:"open_timeout"` // milliseconds
}

// RecommendConfig holds the tunables of the chat and filter flows.
type RecommendConfig struct {
	HistoryTurns    int `mapstructure:"history_turns"`
	SummaryLimit    int `mapstructure:"summary_limit"`
	BBQSummaryLimit int `mapstructure:"bbq_summary_limit"`
	BBQOtherLimit   int `mapstructure:"bbq_other_limit"`
	ReasonLimit     int `mapstructure:"reason_limit"`
	ReasonCacheTTL  int `mapstructure:"reason_cache_ttl"` // seconds
}

type CamundaConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	BrokerAddress string `mapstructure:"broker_address"`
}

// WorkerConfig holds the core settings applicable to every job worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AITimeout returns the completion deadline.
func (c AIConfig) AITimeout() time.Duration {
	return GetDuration(c.Timeout)
}

// CacheTTL returns the reason cache expiry.
func (c RecommendConfig) CacheTTL() time.Duration {
	return time.Duration(c.ReasonCacheTTL) * time.Second
}
