// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"takeout-recommender/internal/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configs/config.yaml, merges config.<APP_ENVIRONMENT>.yaml and
// applies environment overrides.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // optional

	return finish(v)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return finish(v)
}

func finish(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrideEmptyConfig(&cfg)
	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			expanded := os.ExpandEnv(strVal)
			if expanded != strVal && expanded != "" {
				v.Set(key, expanded)
			}
		}
	}
}

// firstEnv returns the first non-empty environment variable of keys.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if val := os.Getenv(k); val != "" {
			return val
		}
	}
	return ""
}

func overrideEmptyConfig(cfg *Config) {
	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = firstEnv("DOUBAO_API_KEY", "AI_API_KEY")
	}
	if cfg.AI.BaseURL == "" {
		cfg.AI.BaseURL = firstEnv("DOUBAO_API_URL", "AI_BASE_URL")
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = firstEnv("DOUBAO_MODEL", "AI_MODEL")
	}

	if cfg.Database.Postgres.User == "" {
		cfg.Database.Postgres.User = os.Getenv("DB_USER")
	}
	if cfg.Database.Postgres.Password == "" {
		cfg.Database.Postgres.Password = os.Getenv("DB_PASSWORD")
	}

	if cfg.Server.Address == "" {
		if port := os.Getenv("PORT"); port != "" {
			cfg.Server.Address = ":" + port
		}
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "takeout-recommender"
	}

	// Server defaults
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8000"
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 60000
	}
	if cfg.Server.GeoLookupURL == "" {
		cfg.Server.GeoLookupURL = "https://ipapi.co"
	}
	if cfg.Server.DefaultCity == "" {
		cfg.Server.DefaultCity = "北京"
	}

	// Catalog defaults
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = string(models.CatalogSourceBuiltin)
	}
	if cfg.Catalog.Table == "" {
		cfg.Catalog.Table = "restaurants"
	}
	if cfg.Catalog.Index == "" {
		cfg.Catalog.Index = "restaurants"
	}

	// Database defaults
	if cfg.Database.Postgres.Port == 0 {
		cfg.Database.Postgres.Port = 5432
	}
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 10
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 2
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}

	// AI defaults
	if cfg.AI.BaseURL == "" {
		cfg.AI.BaseURL = "https://ark.cn-beijing.volces.com/api/v3"
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "ep-20251103145219-hzndr"
	}
	if cfg.AI.Timeout == 0 {
		cfg.AI.Timeout = 30000
	}
	if cfg.AI.Temperature == 0 {
		cfg.AI.Temperature = 0.7
	}
	if cfg.AI.MaxTokens == 0 {
		cfg.AI.MaxTokens = 1000
	}
	if cfg.AI.ReasonMaxTokens == 0 {
		cfg.AI.ReasonMaxTokens = 100
	}
	if cfg.AI.Breaker.MaxFailures == 0 {
		cfg.AI.Breaker.MaxFailures = 5
	}
	if cfg.AI.Breaker.OpenTimeout == 0 {
		cfg.AI.Breaker.OpenTimeout = 30000
	}

	// Recommendation defaults
	if cfg.Recommend.HistoryTurns == 0 {
		cfg.Recommend.HistoryTurns = 10
	}
	if cfg.Recommend.SummaryLimit == 0 {
		cfg.Recommend.SummaryLimit = 30
	}
	if cfg.Recommend.BBQSummaryLimit == 0 {
		cfg.Recommend.BBQSummaryLimit = 20
	}
	if cfg.Recommend.BBQOtherLimit == 0 {
		cfg.Recommend.BBQOtherLimit = 10
	}
	if cfg.Recommend.ReasonLimit == 0 {
		cfg.Recommend.ReasonLimit = 5
	}
	if cfg.Recommend.ReasonCacheTTL == 0 {
		cfg.Recommend.ReasonCacheTTL = 86400
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	for key, w := range cfg.Workers {
		if w.MaxJobsActive == 0 {
			w.MaxJobsActive = 5
		}
		if w.Timeout == 0 {
			w.Timeout = 35000
		}
		cfg.Workers[key] = w
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	source := models.CatalogSource(cfg.Catalog.Source)
	if !source.Valid() {
		return fmt.Errorf("catalog.source %q is not supported", cfg.Catalog.Source)
	}

	switch source {
	case models.CatalogSourceFile:
		if cfg.Catalog.FilePath == "" {
			return fmt.Errorf("catalog.file_path is required for the file source")
		}
	case models.CatalogSourcePostgres:
		if cfg.Database.Postgres.Host == "" {
			return fmt.Errorf("database.postgres.host is required")
		}
		if cfg.Database.Postgres.Database == "" {
			return fmt.Errorf("database.postgres.database is required")
		}
		if cfg.Database.Postgres.User == "" {
			return fmt.Errorf("database.postgres.user is required")
		}
	case models.CatalogSourceElasticsearch:
		if len(cfg.Database.Elasticsearch.Addresses) == 0 {
			return fmt.Errorf("database.elasticsearch.addresses is required")
		}
	}

	if cfg.Camunda.Enabled && cfg.Camunda.BrokerAddress == "" {
		return fmt.Errorf("camunda.broker_address is required when camunda is enabled")
	}

	if cfg.AI.Temperature < 0 || cfg.AI.Temperature > 2 {
		return fmt.Errorf("ai.temperature must be between 0 and 2")
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// GetWorkerConfig retrieves worker-specific configuration with fallback to defaults
func GetWorkerConfig(cfg *Config, workerName string) WorkerConfig {
	if w, exists := cfg.Workers[workerName]; exists {
		return w
	}

	return WorkerConfig{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       35000,
	}
}
